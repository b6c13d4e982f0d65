package appconfig

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestApplyDefaults(t *testing.T) {
	t.Run("fills reference defaults", func(t *testing.T) {
		cfg := &AppConfig{}
		cfg.ApplyDefaults()

		assert.Equal(t, "tax-markdown-index", cfg.VectorIndexName)
		assert.Equal(t, "mongo", cfg.VectorBackend)
		assert.Equal(t, 4, cfg.TopK)
		assert.Equal(t, 4096, cfg.NumCtx)
		assert.Equal(t, 512, cfg.MaxTokens)
		assert.Equal(t, 0.2, cfg.Temperature)
		assert.Equal(t, 0, cfg.MaxHistoryTurns)
	})

	t.Run("keeps explicit values", func(t *testing.T) {
		cfg := &AppConfig{TopK: 8, Temperature: 0.7, VectorBackend: "qdrant"}
		cfg.ApplyDefaults()

		assert.Equal(t, 8, cfg.TopK)
		assert.Equal(t, 0.7, cfg.Temperature)
		assert.Equal(t, "qdrant", cfg.VectorBackend)
	})
}
