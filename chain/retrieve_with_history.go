package chain

import (
	"context"
	"strings"

	"github.com/JoisFe/llm-chatbot/llm"
	"github.com/JoisFe/llm-chatbot/prompts"
	"github.com/JoisFe/llm-chatbot/retriever"
)

// retrieveWithHistory is the history-aware retrieval unit: it rewrites the
// question into a standalone query using the conversation history, then fetches
// the top-K chunks for that query. Returns the effective query alongside the
// chunks.
func (c *Chain) retrieveWithHistory(ctx context.Context, history []llm.Message, question string) (string, []retriever.Chunk, error) {
	query, err := c.contextualizeQuestion(ctx, history, question)
	if err != nil {
		return "", nil, err
	}

	chunks, err := c.config.Retriever.Retrieve(ctx, query)
	if err != nil {
		return query, nil, err
	}

	return query, chunks, nil
}

// contextualizeQuestion asks the model for a standalone form of the question.
// The model is instructed to return the input as-is when it does not depend on
// history, and to never answer it.
func (c *Chain) contextualizeQuestion(ctx context.Context, history []llm.Message, question string) (string, error) {
	systemPrompt, err := prompts.ContextualizeSystemPrompt()
	if err != nil {
		return "", err
	}

	messages := make([]llm.Message, 0, len(history)+1)
	messages = append(messages, history...)
	messages = append(messages, llm.Message{Role: "user", Content: question})

	var standalone strings.Builder
	err = c.config.LLM.GenerateInference(
		ctx,
		messages,
		func(chunk string) error {
			standalone.WriteString(chunk)
			return nil
		},
		append(c.runtimeOptions(), llm.WithSystemPrompt(systemPrompt))...,
	)
	if err != nil {
		return "", err
	}

	query := strings.TrimSpace(standalone.String())
	if query == "" {
		return question, nil
	}
	return query, nil
}
