package chain

import (
	"context"
	"fmt"
	"strings"

	"github.com/JoisFe/llm-chatbot/llm"
	"github.com/JoisFe/llm-chatbot/prompts"
	"github.com/JoisFe/llm-chatbot/retriever"
)

// generateAnswer streams the grounded answer. Prompt layout: persona system
// prompt with the stuffed context, few-shot sample turns, prior history, then
// the current question.
func (c *Chain) generateAnswer(ctx context.Context, history []llm.Message, question string, chunks []retriever.Chunk, onChunk func(chunk string) error) (string, error) {
	systemPrompt, err := prompts.QASystemPrompt(buildContext(chunks))
	if err != nil {
		return "", err
	}

	messages := renderExamples(c.config.Examples)
	messages = append(messages, history...)
	messages = append(messages, llm.Message{Role: "user", Content: question})

	var answer strings.Builder
	err = c.config.LLM.GenerateInference(
		ctx,
		messages,
		func(chunk string) error {
			if err := onChunk(chunk); err != nil {
				return err
			}
			answer.WriteString(chunk)
			return nil
		},
		append(c.runtimeOptions(),
			llm.WithSystemPrompt(systemPrompt),
			llm.WithStreaming(true),
		)...,
	)
	if err != nil {
		return "", err
	}

	return answer.String(), nil
}

// buildContext renders the chunks with deduplicated source footnotes.
func buildContext(chunks []retriever.Chunk) string {
	if len(chunks) == 0 {
		return ""
	}

	var out strings.Builder

	sourceIndex := make(map[string]int) // Source -> footnote index
	footnoteCounter := 1
	footnotes := []string{} // Ordered list of unique sources

	// Write body with reused footnote references
	for _, chunk := range chunks {
		index, exists := sourceIndex[chunk.Source]
		if !exists {
			sourceIndex[chunk.Source] = footnoteCounter
			index = footnoteCounter
			footnoteCounter++
			footnotes = append(footnotes, chunk.Source)
		}
		fmt.Fprintf(&out, "%s[^%d]\n\n", chunk.Body, index)
	}

	out.WriteString("### Sources\n")
	for i, source := range footnotes {
		fmt.Fprintf(&out, "[^%d]: %s\n", i+1, source)
	}

	return out.String()
}
