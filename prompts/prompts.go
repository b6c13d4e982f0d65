package prompts

import (
	"bytes"
	"embed"
	"strings"
	"text/template"
)

//go:embed templates/*
var templatesFS embed.FS

func loadPrompt(templatePath string, data interface{}) (string, error) {
	tmpl, err := template.ParseFS(templatesFS, templatePath)
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	err = tmpl.Execute(&buf, data)
	if err != nil {
		return "", err
	}

	return buf.String(), nil
}

// DictionaryPrompt renders the term-normalization prompt. Entries are
// "surface form -> replacement" lines; the model is instructed to substitute
// only dictionary-listed phrases and otherwise echo the question verbatim.
func DictionaryPrompt(dictionary []string, question string) (string, error) {
	return loadPrompt("templates/dictionary_rewrite.md", map[string]string{
		"Dictionary": "[" + strings.Join(dictionary, ", ") + "]",
		"Question":   question,
	})
}

// ContextualizeSystemPrompt renders the standalone-question instruction used
// by history-aware retrieval.
func ContextualizeSystemPrompt() (string, error) {
	return loadPrompt("templates/contextualize_question_system.md", map[string]string{})
}

// QASystemPrompt renders the income-tax expert persona with the retrieved
// context stuffed in.
func QASystemPrompt(context string) (string, error) {
	return loadPrompt("templates/qa_system.md", map[string]string{
		"Context": context,
	})
}
