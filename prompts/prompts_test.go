package prompts

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDictionaryPrompt(t *testing.T) {
	prompt, err := DictionaryPrompt(
		[]string{"사람을 나타내는 표현 -> 거주자"},
		"소득세를 내야 하는 사람은 누구인가요?",
	)

	assert.NoError(t, err)
	assert.Contains(t, prompt, "사전: [사람을 나타내는 표현 -> 거주자]")
	assert.Contains(t, prompt, "질문: 소득세를 내야 하는 사람은 누구인가요?")
	assert.Contains(t, prompt, "질문만 그대로 리턴해주세요")
}

func TestDictionaryPrompt_MultipleEntries(t *testing.T) {
	prompt, err := DictionaryPrompt(
		[]string{"a -> b", "c -> d"},
		"질문",
	)

	assert.NoError(t, err)
	assert.Contains(t, prompt, "[a -> b, c -> d]")
}

func TestContextualizeSystemPrompt(t *testing.T) {
	prompt, err := ContextualizeSystemPrompt()

	assert.NoError(t, err)
	assert.Contains(t, prompt, "standalone question")
	assert.Contains(t, prompt, "Do NOT answer the question")
}

func TestQASystemPrompt(t *testing.T) {
	prompt, err := QASystemPrompt("제55조(세율) 거주자의 종합소득에 대한 소득세는...")

	assert.NoError(t, err)
	assert.Contains(t, prompt, "당신은 소득세법 전문가입니다")
	assert.Contains(t, prompt, "소득세법 (XX조) 에 따르면")
	assert.Contains(t, prompt, "제55조(세율)")
}
