package llm

import (
	"context"
)

// LLMClient is the single surface the chat pipeline needs from a language
// model. Fragments are delivered through the callback in generation order; a
// callback error aborts the stream and is returned to the caller.
type LLMClient interface {
	GenerateInference(
		ctx context.Context,
		messages []Message,
		callback func(chunk string) error,
		opts ...LLMOption,
	) error

	GetModel() string
}

type LLMSettings struct {
	model       string  // model name
	temperature float64 // randomness (0.0 to 1.0)
	maxTokens   int     // maximum tokens to generate
	numCtx      int     // context window size
	numThreads  int     // inference thread count, 0 = runtime default
	system      string  // system prompt
	stream      bool    // whether to stream response
}

type LLMOption func(*LLMSettings)

// Common options for all LLM providers. Runtime knobs (context window,
// thread count) are handed to the serving layer unchanged.
func WithTemperature(temp float64) LLMOption {
	return func(s *LLMSettings) { s.temperature = temp }
}

func WithMaxTokens(tokens int) LLMOption {
	return func(s *LLMSettings) { s.maxTokens = tokens }
}

func WithNumCtx(numCtx int) LLMOption {
	return func(s *LLMSettings) { s.numCtx = numCtx }
}

func WithThreads(threads int) LLMOption {
	return func(s *LLMSettings) { s.numThreads = threads }
}

func WithSystemPrompt(prompt string) LLMOption {
	return func(s *LLMSettings) { s.system = prompt }
}

func WithStreaming(stream bool) LLMOption {
	return func(s *LLMSettings) { s.stream = stream }
}

type Message struct {
	Role    string `json:"role"`    // "user", "assistant", "system"
	Content string `json:"content"` // the message content
}
