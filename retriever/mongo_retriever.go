package retriever

import (
	"context"

	"github.com/JoisFe/llm-chatbot/db"
	"github.com/JoisFe/llm-chatbot/llm"
	"github.com/SaiNageswarS/go-api-boot/odm"
	"github.com/SaiNageswarS/go-collection-boot/async"
	"github.com/SaiNageswarS/go-collection-boot/linq"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// MongoRetriever searches the pre-built Atlas vector index over the tax
// corpus.
type MongoRetriever struct {
	collection odm.OdmCollectionInterface[db.TaxChunkModel]
	embedder   llm.Embedder
	indexName  string
	topK       int
}

func NewMongoRetriever(collection odm.OdmCollectionInterface[db.TaxChunkModel], embedder llm.Embedder, indexName string, topK int) *MongoRetriever {
	return &MongoRetriever{
		collection: collection,
		embedder:   embedder,
		indexName:  indexName,
		topK:       topK,
	}
}

func (r *MongoRetriever) Retrieve(ctx context.Context, query string) ([]Chunk, error) {
	emb, err := r.embedder.GetEmbedding(ctx, query)
	if err != nil {
		return nil, status.Errorf(codes.Internal, "embed: %v", err)
	}

	hits, err := async.Await(r.collection.VectorSearch(ctx, emb, odm.VectorSearchParams{
		IndexName:     r.indexName,
		Path:          "embedding",
		K:             r.topK,
		NumCandidates: r.topK * 25,
	}))
	if err != nil {
		return nil, status.Errorf(codes.Internal, "vector search: %v", err)
	}

	return linq.Map(hits, func(h odm.SearchHit[db.TaxChunkModel]) Chunk {
		return Chunk{
			ID:     h.Doc.ChunkID,
			Body:   h.Doc.Body,
			Source: h.Doc.SourceURI,
		}
	}), nil
}
