package llm

import (
	"context"
	"fmt"

	"github.com/ollama/ollama/api"
)

// Embedder turns a query string into an embedding vector for nearest-neighbor
// search against the document index.
type Embedder interface {
	GetEmbedding(ctx context.Context, text string) ([]float32, error)
}

type OllamaEmbedder struct {
	client *api.Client
	model  string
}

func NewOllamaEmbedder(client *api.Client, model string) *OllamaEmbedder {
	return &OllamaEmbedder{client: client, model: model}
}

func (e *OllamaEmbedder) GetEmbedding(ctx context.Context, text string) ([]float32, error) {
	req := &api.EmbeddingRequest{
		Model:     e.model,
		Prompt:    text,
		KeepAlive: keepAlive,
	}

	resp, err := e.client.Embeddings(ctx, req) // blocking, non-streaming
	if err != nil {
		return nil, fmt.Errorf("embedding failed: %w", err)
	}

	emb64 := resp.Embedding // []float64
	emb32 := make([]float32, len(emb64))
	for i, v := range emb64 {
		emb32[i] = float32(v)
	}
	return emb32, nil
}
