package chain

import (
	"context"
	"strings"

	"github.com/JoisFe/llm-chatbot/llm"
	"github.com/JoisFe/llm-chatbot/prompts"
	"github.com/SaiNageswarS/go-collection-boot/linq"
)

// normalizeQuestion rewrites dictionary-listed surface forms in the question
// through a single non-streaming model call. The contract is probabilistic:
// the model is instructed to echo the question verbatim when no entry applies,
// but the output is model-dependent, not a deterministic string replace.
func (c *Chain) normalizeQuestion(ctx context.Context, question string) (string, error) {
	dictionary := linq.Map(c.config.Dictionary, func(e TermEntry) string {
		return e.Pattern + " -> " + e.Replacement
	})

	prompt, err := prompts.DictionaryPrompt(dictionary, question)
	if err != nil {
		return "", err
	}

	var rewritten strings.Builder
	err = c.config.LLM.GenerateInference(
		ctx,
		[]llm.Message{{Role: "user", Content: prompt}},
		func(chunk string) error {
			rewritten.WriteString(chunk)
			return nil
		},
		c.runtimeOptions()...,
	)
	if err != nil {
		return "", err
	}

	normalized := strings.TrimSpace(rewritten.String())
	if normalized == "" {
		return question, nil
	}
	return normalized, nil
}
