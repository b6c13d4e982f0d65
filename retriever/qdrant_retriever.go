package retriever

import (
	"context"

	"github.com/JoisFe/llm-chatbot/llm"
	"github.com/qdrant/go-client/qdrant"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// QdrantRetriever searches a Qdrant collection holding the tax corpus
// embeddings. Chunk text and source live in the point payload.
type QdrantRetriever struct {
	client     *qdrant.Client
	embedder   llm.Embedder
	collection string
	topK       int
}

func NewQdrantRetriever(client *qdrant.Client, embedder llm.Embedder, collection string, topK int) *QdrantRetriever {
	return &QdrantRetriever{
		client:     client,
		embedder:   embedder,
		collection: collection,
		topK:       topK,
	}
}

func (r *QdrantRetriever) Retrieve(ctx context.Context, query string) ([]Chunk, error) {
	emb, err := r.embedder.GetEmbedding(ctx, query)
	if err != nil {
		return nil, status.Errorf(codes.Internal, "embed: %v", err)
	}

	limit := uint64(r.topK)
	points, err := r.client.Query(ctx, &qdrant.QueryPoints{
		CollectionName: r.collection,
		Query:          qdrant.NewQuery(emb...),
		Limit:          &limit,
		WithPayload:    qdrant.NewWithPayload(true),
	})
	if err != nil {
		return nil, status.Errorf(codes.Internal, "qdrant query: %v", err)
	}

	chunks := make([]Chunk, 0, len(points))
	for _, point := range points {
		payload := point.GetPayload()
		if payload == nil {
			continue
		}

		chunks = append(chunks, Chunk{
			ID:     payloadString(payload, "chunk_id"),
			Body:   payloadString(payload, "body"),
			Source: payloadString(payload, "source_uri"),
			Score:  point.GetScore(),
		})
	}

	return chunks, nil
}

func payloadString(payload map[string]*qdrant.Value, key string) string {
	val, ok := payload[key]
	if !ok || val == nil {
		return ""
	}
	return val.GetStringValue()
}
