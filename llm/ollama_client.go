package llm

import (
	"context"
	"fmt"
	"runtime"
	"time"

	"github.com/SaiNageswarS/go-api-boot/logger"
	"github.com/ollama/ollama/api"
)

// keep the model loaded between pipeline stages; every request makes
// several inference calls back to back.
var keepAlive = &api.Duration{Duration: 60 * time.Minute}

type OllamaClient struct {
	client *api.Client
	model  string
}

// NewOllamaClient connects to the Ollama host from the environment
// (OLLAMA_HOST, default localhost:11434).
func NewOllamaClient(model string) LLMClient {
	client, err := api.ClientFromEnvironment()
	if err != nil {
		// Providers are designed for dependency injection.
		// A missing serving endpoint is fatal at setup time.
		logger.Fatal("Failed to create Ollama client: " + err.Error())
		return nil
	}

	return &OllamaClient{client: client, model: model}
}

func NewOllamaClientWith(client *api.Client, model string) LLMClient {
	return &OllamaClient{client: client, model: model}
}

func (c *OllamaClient) GetModel() string {
	return c.model
}

func (c *OllamaClient) GenerateInference(ctx context.Context, messages []Message, callback func(chunk string) error, opts ...LLMOption) error {
	settings := LLMSettings{
		model:       c.model,
		temperature: 0.7,
		maxTokens:   4096,
	}

	for _, opt := range opts {
		opt(&settings)
	}

	chatMessages := make([]api.Message, 0, len(messages)+1)
	if settings.system != "" {
		chatMessages = append(chatMessages, api.Message{Role: "system", Content: settings.system})
	}
	for _, m := range messages {
		chatMessages = append(chatMessages, api.Message{Role: m.Role, Content: m.Content})
	}

	stream := settings.stream
	request := &api.ChatRequest{
		Model:     settings.model,
		Messages:  chatMessages,
		Stream:    &stream,
		Options:   buildRuntimeOptions(settings),
		KeepAlive: keepAlive,
	}

	err := c.client.Chat(ctx, request, func(resp api.ChatResponse) error {
		if resp.Message.Content == "" {
			return nil
		}
		return callback(resp.Message.Content)
	})

	if err != nil {
		return fmt.Errorf("ollama chat failed: %w", err)
	}

	return nil
}

// buildRuntimeOptions maps the settings onto Ollama runtime options. Knobs the
// caller did not set are left out so the serving defaults apply.
func buildRuntimeOptions(settings LLMSettings) map[string]any {
	options := map[string]any{
		"temperature": settings.temperature,
	}

	if settings.maxTokens > 0 {
		options["num_predict"] = settings.maxTokens
	}
	if settings.numCtx > 0 {
		options["num_ctx"] = settings.numCtx
	}

	threads := settings.numThreads
	if threads <= 0 {
		threads = runtime.NumCPU()
	}
	options["num_thread"] = threads

	return options
}
