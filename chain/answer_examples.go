package chain

import (
	"github.com/JoisFe/llm-chatbot/llm"
)

// TermEntry is one "surface form -> replacement" dictionary line. The
// dictionary is rendered into the normalization prompt; matching is done by
// the model, not by string replacement.
type TermEntry struct {
	Pattern     string
	Replacement string
}

// AnswerExample is a worked (question, answer) pair steering the answer style.
// Loaded once, shared read-only across all requests.
type AnswerExample struct {
	Question string
	Answer   string
}

func DefaultDictionary() []TermEntry {
	return []TermEntry{
		{Pattern: "사람을 나타내는 표현", Replacement: "거주자"},
	}
}

func DefaultAnswerExamples() []AnswerExample {
	return []AnswerExample{
		{
			Question: "소득세의 과세 기간은 어떻게 되나요?",
			Answer:   "소득세법 (제5조)에 따르면, 소득세의 과세기간은 1월 1일부터 12월 31일까지 1년입니다. 거주자가 사망한 경우에는 1월 1일부터 사망일까지, 출국하는 경우에는 1월 1일부터 출국일까지입니다.",
		},
		{
			Question: "거주자란 무엇인가요?",
			Answer:   "소득세법 (제1조의2)에 따르면, 거주자는 국내에 주소를 두거나 183일 이상의 거소를 둔 개인을 말합니다. 거주자는 국내외의 모든 소득에 대하여 소득세 납세의무를 집니다.",
		},
		{
			Question: "연봉 5천만원인 직장인의 소득세는 얼마인가요?",
			Answer:   "소득세법 (제55조)에 따르면, 연봉 5천만원에 대한 산출세액은 기본세율 구간을 적용하여 계산합니다. 다만 개인별 공제 항목에 따라 실제 세액은 달라질 수 있습니다.",
		},
	}
}

// renderExamples turns the example set into alternating user and assistant
// sample turns, placed before the real conversation history.
func renderExamples(examples []AnswerExample) []llm.Message {
	messages := make([]llm.Message, 0, len(examples)*2)
	for _, example := range examples {
		messages = append(messages,
			llm.Message{Role: "user", Content: example.Question},
			llm.Message{Role: "assistant", Content: example.Answer},
		)
	}
	return messages
}
