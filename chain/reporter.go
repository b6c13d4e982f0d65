package chain

import (
	"github.com/JoisFe/llm-chatbot/retriever"
)

// Reporter receives diagnostic pipeline events. Answer fragments always go
// through the caller's chunk callback, never the reporter, so reporters cannot
// reorder or buffer the stream.
type Reporter interface {
	Stage(stage string)
	Query(q string)
	Chunks(chunks []retriever.Chunk)
	Error(code, msg string)
	Final(answer string)
}

// NoOpReporter implements Reporter with no-op operations
type NoOpReporter struct{}

func (r *NoOpReporter) Stage(stage string) {}

func (r *NoOpReporter) Query(q string) {}

func (r *NoOpReporter) Chunks(chunks []retriever.Chunk) {}

func (r *NoOpReporter) Error(code, msg string) {}

func (r *NoOpReporter) Final(answer string) {}
