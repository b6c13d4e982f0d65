package appconfig

import (
	"github.com/SaiNageswarS/go-api-boot/config"
)

type AppConfig struct {
	config.BootConfig `ini:",extends"`

	ChatModel      string `env:"CHAT-MODEL" ini:"chat_model"`
	EmbeddingModel string `env:"EMBEDDING-MODEL" ini:"embedding_model"`

	VectorBackend    string `ini:"vector_backend"` // "mongo" or "qdrant"
	MongoDatabase    string `ini:"mongo_database"`
	VectorIndexName  string `ini:"vector_index_name"`
	QdrantHost       string `env:"QDRANT-HOST" ini:"qdrant_host"`
	QdrantPort       int    `ini:"qdrant_port"`
	QdrantCollection string `ini:"qdrant_collection"`

	// Model runtime knobs, handed to the serving layer unchanged.
	TopK        int     `ini:"top_k"`
	NumCtx      int     `ini:"num_ctx"`
	MaxTokens   int     `ini:"max_tokens"`
	Temperature float64 `ini:"temperature"`
	NumThreads  int     `ini:"num_threads"` // 0 = one per CPU

	// 0 keeps full history for the process lifetime.
	MaxHistoryTurns int `ini:"max_history_turns"`
}

// ApplyDefaults fills unset fields with the defaults the tax corpus was tuned
// with.
func (c *AppConfig) ApplyDefaults() {
	if c.ChatModel == "" {
		c.ChatModel = "llama-2-ko-7b"
	}
	if c.EmbeddingModel == "" {
		c.EmbeddingModel = "all-mpnet-base-v2"
	}
	if c.VectorBackend == "" {
		c.VectorBackend = "mongo"
	}
	if c.MongoDatabase == "" {
		c.MongoDatabase = "taxlaw"
	}
	if c.VectorIndexName == "" {
		c.VectorIndexName = "tax-markdown-index"
	}
	if c.QdrantCollection == "" {
		c.QdrantCollection = "tax_chunks"
	}
	if c.TopK <= 0 {
		c.TopK = 4
	}
	if c.NumCtx <= 0 {
		c.NumCtx = 4096
	}
	if c.MaxTokens <= 0 {
		c.MaxTokens = 512
	}
	if c.Temperature <= 0 {
		c.Temperature = 0.2
	}
}
