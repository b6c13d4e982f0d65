package memory

import (
	"github.com/JoisFe/llm-chatbot/llm"
)

// Conversation is the ordered message history of one chat session. Order is
// chronological and semantically significant: the reformulation and answer
// prompts replay it as-is.
type Conversation struct {
	ID       string
	Messages []llm.Message
}

func (c *Conversation) AddUserMessage(content string) {
	c.Messages = append(c.Messages, llm.Message{Role: "user", Content: content})
}

func (c *Conversation) AddAssistantMessage(content string) {
	c.Messages = append(c.Messages, llm.Message{Role: "assistant", Content: content})
}
