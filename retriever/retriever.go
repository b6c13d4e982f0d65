package retriever

import (
	"context"
)

// Chunk is one retrieved passage of the tax-law corpus. Read-only; owned by a
// single request.
type Chunk struct {
	ID     string
	Body   string
	Source string
	Score  float32 // similarity score when the backend reports one
}

// Retriever returns the top-K most similar corpus passages for a query.
// Backend failures propagate as-is; there is no local retry.
type Retriever interface {
	Retrieve(ctx context.Context, query string) ([]Chunk, error)
}
