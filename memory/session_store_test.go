package memory

import (
	"testing"

	"github.com/JoisFe/llm-chatbot/llm"
	"github.com/stretchr/testify/assert"
)

func TestInMemoryStore_History(t *testing.T) {
	t.Run("first access returns empty history", func(t *testing.T) {
		store := NewInMemoryStore(0)

		history := store.History("fresh-session")
		assert.Empty(t, history)
	})

	t.Run("repeated access resolves to the same session", func(t *testing.T) {
		store := NewInMemoryStore(0)

		store.History("s1")
		store.AppendTurn("s1", "질문", "답변")

		history := store.History("s1")
		assert.Len(t, history, 2)
		assert.Equal(t, "user", history[0].Role)
		assert.Equal(t, "질문", history[0].Content)
		assert.Equal(t, "assistant", history[1].Role)
		assert.Equal(t, "답변", history[1].Content)
	})

	t.Run("sessions are isolated", func(t *testing.T) {
		store := NewInMemoryStore(0)

		store.AppendTurn("s1", "q", "a")
		assert.Empty(t, store.History("s2"))
	})

	t.Run("history is a snapshot", func(t *testing.T) {
		store := NewInMemoryStore(0)
		store.AppendTurn("s1", "q", "a")

		snapshot := store.History("s1")
		store.AppendTurn("s1", "q2", "a2")

		assert.Len(t, snapshot, 2)
		assert.Len(t, store.History("s1"), 4)
	})
}

func TestInMemoryStore_AppendTurn(t *testing.T) {
	t.Run("appends exactly one user and one assistant message", func(t *testing.T) {
		store := NewInMemoryStore(0)

		store.AppendTurn("s1", "거주자가 뭐야?", "소득세법 (제1조의2)에 따르면 거주자는 국내에 주소를 둔 개인입니다.")

		history := store.History("s1")
		assert.Len(t, history, 2)
	})

	t.Run("unbounded by default", func(t *testing.T) {
		store := NewInMemoryStore(0)

		for i := 0; i < 50; i++ {
			store.AppendTurn("s1", "q", "a")
		}
		assert.Len(t, store.History("s1"), 100)
	})
}

func TestInMemoryStore_trim(t *testing.T) {
	tests := []struct {
		name     string
		maxTurns int
		turns    int
		expected int
	}{
		{name: "window disabled", maxTurns: 0, turns: 5, expected: 10},
		{name: "under window", maxTurns: 3, turns: 2, expected: 4},
		{name: "at window", maxTurns: 3, turns: 3, expected: 6},
		{name: "over window", maxTurns: 3, turns: 7, expected: 6},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := NewInMemoryStore(tt.maxTurns)
			for i := 0; i < tt.turns; i++ {
				store.AppendTurn("s1", "q", "a")
			}

			history := store.History("s1")
			assert.Len(t, history, tt.expected)
			if len(history) > 0 {
				// windowing must never leave a dangling assistant message
				assert.Equal(t, "user", history[0].Role)
			}
		})
	}
}

func TestConversation_AddMessages(t *testing.T) {
	conversation := &Conversation{ID: "s1"}
	conversation.AddUserMessage("안녕하세요")
	conversation.AddAssistantMessage("무엇을 도와드릴까요?")

	assert.Equal(t, []llm.Message{
		{Role: "user", Content: "안녕하세요"},
		{Role: "assistant", Content: "무엇을 도와드릴까요?"},
	}, conversation.Messages)
}
