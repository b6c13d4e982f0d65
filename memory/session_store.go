package memory

import (
	"sync"

	"github.com/JoisFe/llm-chatbot/llm"
)

// SessionStore owns all conversation histories. A session is created lazily on
// first reference and lives for the process lifetime.
//
// History returns a snapshot: concurrent requests against the same session can
// still interleave their AppendTurn side effects non-deterministically, so
// callers needing strict per-session ordering must serialize requests
// themselves.
type SessionStore interface {
	// History returns the messages of the session as they stand right now.
	History(sessionID string) []llm.Message

	// AppendTurn records one completed (question, answer) exchange.
	AppendTurn(sessionID, question, answer string)
}

// InMemoryStore is a mutex-guarded session map. With maxTurns > 0 each session
// keeps only the most recent maxTurns exchanges; 0 keeps everything, matching
// the unbounded growth of the reference behavior.
type InMemoryStore struct {
	mu       sync.RWMutex
	sessions map[string]*Conversation
	maxTurns int
}

func NewInMemoryStore(maxTurns int) *InMemoryStore {
	return &InMemoryStore{
		sessions: make(map[string]*Conversation),
		maxTurns: maxTurns,
	}
}

func (s *InMemoryStore) History(sessionID string) []llm.Message {
	s.mu.Lock()
	defer s.mu.Unlock()

	conversation := s.getOrCreate(sessionID)

	snapshot := make([]llm.Message, len(conversation.Messages))
	copy(snapshot, conversation.Messages)
	return snapshot
}

func (s *InMemoryStore) AppendTurn(sessionID, question, answer string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	conversation := s.getOrCreate(sessionID)
	conversation.AddUserMessage(question)
	conversation.AddAssistantMessage(answer)
	conversation.Messages = s.trim(conversation.Messages)
}

// getOrCreate must be called with the lock held.
func (s *InMemoryStore) getOrCreate(sessionID string) *Conversation {
	if conversation, ok := s.sessions[sessionID]; ok {
		return conversation
	}

	conversation := &Conversation{ID: sessionID}
	s.sessions[sessionID] = conversation
	return conversation
}

// trim keeps the messages of the last maxTurns user messages. Walks backward
// and drops everything before the maxTurns-th user message from the end.
func (s *InMemoryStore) trim(msgs []llm.Message) []llm.Message {
	if s.maxTurns <= 0 || len(msgs) == 0 {
		return msgs
	}

	usersSeen := 0
	start := 0 // default: keep all if we don't exceed maxTurns users
	for i := len(msgs) - 1; i >= 0; i-- {
		if msgs[i].Role == "user" {
			usersSeen++
			if usersSeen == s.maxTurns {
				start = i
				break
			}
		}
	}

	return msgs[start:]
}
