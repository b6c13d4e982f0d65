package chain

import (
	"github.com/JoisFe/llm-chatbot/llm"
	"github.com/JoisFe/llm-chatbot/memory"
	"github.com/JoisFe/llm-chatbot/retriever"
)

type ChainBuilder struct {
	config ChainConfig
}

func NewChainBuilder() *ChainBuilder {
	return &ChainBuilder{
		config: ChainConfig{
			Examples:   DefaultAnswerExamples(),
			Dictionary: DefaultDictionary(),
		},
	}
}

func (b *ChainBuilder) WithLLM(client llm.LLMClient) *ChainBuilder {
	b.config.LLM = client
	return b
}

func (b *ChainBuilder) WithRetriever(r retriever.Retriever) *ChainBuilder {
	b.config.Retriever = r
	return b
}

func (b *ChainBuilder) WithStore(store memory.SessionStore) *ChainBuilder {
	b.config.Store = store
	return b
}

func (b *ChainBuilder) WithExamples(examples []AnswerExample) *ChainBuilder {
	b.config.Examples = examples
	return b
}

func (b *ChainBuilder) WithDictionary(dictionary []TermEntry) *ChainBuilder {
	b.config.Dictionary = dictionary
	return b
}

func (b *ChainBuilder) WithReporter(rep Reporter) *ChainBuilder {
	b.config.Reporter = rep
	return b
}

func (b *ChainBuilder) WithNumCtx(numCtx int) *ChainBuilder {
	b.config.NumCtx = numCtx
	return b
}

func (b *ChainBuilder) WithMaxTokens(max int) *ChainBuilder {
	b.config.MaxTokens = max
	return b
}

func (b *ChainBuilder) WithTemperature(temp float64) *ChainBuilder {
	b.config.Temperature = temp
	return b
}

func (b *ChainBuilder) WithThreads(threads int) *ChainBuilder {
	b.config.NumThreads = threads
	return b
}

func (b *ChainBuilder) Build() *Chain {
	return NewChain(b.config)
}
