package db

import (
	"github.com/SaiNageswarS/go-api-boot/odm"
	"go.mongodb.org/mongo-driver/v2/bson"
)

// EmbeddingDimensions must match the embedding model used when the tax corpus
// was indexed (all-mpnet-base-v2 style, 768 dimensions).
const EmbeddingDimensions = 768

// TaxChunkModel is one markdown passage of the tax-law corpus together with
// its embedding. The corpus is indexed offline; this repo only reads it.
type TaxChunkModel struct {
	ChunkID   string      `json:"chunkId" bson:"_id"`
	Body      string      `json:"body" bson:"body"`           // passage text stuffed into the answer prompt
	SourceURI string      `json:"sourceUri" bson:"sourceUri"` // e.g., "file://tax-law.md#section-55"
	Embedding bson.Vector `json:"-" bson:"embedding"`
}

func (m TaxChunkModel) Id() string { return m.ChunkID }

func (m TaxChunkModel) CollectionName() string { return "tax_chunks" }

// Indexes
func (m TaxChunkModel) VectorIndexSpecs() []odm.VectorIndexSpec {
	return []odm.VectorIndexSpec{
		{
			Name:          "tax-markdown-index",
			Path:          "embedding",
			Type:          "vector",
			NumDimensions: EmbeddingDimensions,
			Similarity:    "cosine",
			Quantization:  "scalar",
		},
	}
}
