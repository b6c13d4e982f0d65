package chain

import (
	"context"

	"github.com/JoisFe/llm-chatbot/llm"
	"github.com/JoisFe/llm-chatbot/memory"
	"github.com/JoisFe/llm-chatbot/retriever"
	"github.com/SaiNageswarS/go-api-boot/logger"
	"go.uber.org/zap"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// ChainConfig holds the collaborators and model knobs of the pipeline.
type ChainConfig struct {
	LLM        llm.LLMClient
	Retriever  retriever.Retriever
	Store      memory.SessionStore
	Examples   []AnswerExample
	Dictionary []TermEntry
	Reporter   Reporter

	NumCtx      int
	MaxTokens   int
	Temperature float64
	NumThreads  int
}

// Chain is the conversational pipeline: term normalization, history-aware
// retrieval, grounded answer generation, session history persistence.
type Chain struct {
	config ChainConfig
}

func NewChain(config ChainConfig) *Chain {
	if config.Reporter == nil {
		config.Reporter = &NoOpReporter{}
	}
	return &Chain{config: config}
}

// Ask runs one request through the pipeline. Fragments are delivered to
// onChunk in generation order; the returned string is their concatenation.
//
// The session turn is recorded only after the stream fully drains. If onChunk
// returns an error or ctx is cancelled, generation is aborted and no turn is
// appended.
func (c *Chain) Ask(ctx context.Context, sessionID, userMessage string, onChunk func(chunk string) error) (string, error) {
	if sessionID == "" {
		return "", status.Error(codes.InvalidArgument, "session id is required")
	}
	if onChunk == nil {
		onChunk = func(string) error { return nil }
	}

	rep := c.config.Reporter

	// history as it stood at request start
	history := c.config.Store.History(sessionID)

	rep.Stage("normalizing")
	normalized, err := c.normalizeQuestion(ctx, userMessage)
	if err != nil {
		rep.Error("NORMALIZATION_FAILED", err.Error())
		return "", err
	}

	rep.Stage("retrieving")
	query, chunks, err := c.retrieveWithHistory(ctx, history, normalized)
	if err != nil {
		rep.Error("RETRIEVAL_FAILED", err.Error())
		return "", err
	}
	rep.Query(query)
	rep.Chunks(chunks)

	rep.Stage("generating")
	answer, err := c.generateAnswer(ctx, history, normalized, chunks, onChunk)
	if err != nil {
		rep.Error("GENERATION_FAILED", err.Error())
		return "", err
	}

	// The normalized question is what retrieval and generation actually saw,
	// so that is the form recorded in history.
	c.config.Store.AppendTurn(sessionID, normalized, answer)

	logger.Info("Answered question",
		zap.String("sessionId", sessionID),
		zap.String("query", query),
		zap.Int("chunks", len(chunks)))

	rep.Final(answer)
	return answer, nil
}

func (c *Chain) runtimeOptions() []llm.LLMOption {
	return []llm.LLMOption{
		llm.WithTemperature(c.config.Temperature),
		llm.WithMaxTokens(c.config.MaxTokens),
		llm.WithNumCtx(c.config.NumCtx),
		llm.WithThreads(c.config.NumThreads),
	}
}
