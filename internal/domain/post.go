package domain

import (
	"strings"
	"unicode/utf8"
)

const DefaultLanguage = "English"

// ErrorPrefix - префикс текста поста, когда генерация не удалась.
// Ошибка отдается как обычный текст, а не как error.
const ErrorPrefix = "Error generating post: "

type GenerationRequest struct {
	Topic    string
	Language string
}

// NewGenerationRequest подставляет DefaultLanguage, если язык пустой или из одних пробелов.
func NewGenerationRequest(topic, language string) GenerationRequest {
	language = strings.TrimSpace(language)
	if language == "" {
		language = DefaultLanguage
	}
	return GenerationRequest{
		Topic:    strings.TrimSpace(topic),
		Language: language,
	}
}

func (r GenerationRequest) Validate() error {
	if strings.TrimSpace(r.Topic) == "" {
		return ErrEmptyTopic
	}
	return nil
}

type GenerationResult struct {
	Topic          string
	Language       string
	Post           string
	WordCount      int
	CharacterCount int
	Failed         bool
}

// NewGenerationResult считает метрики по post как есть, в том числе для текста ошибки.
// failed задает вызывающий по факту ошибки, текст поста не анализируется.
func NewGenerationResult(topic, language, post string, failed bool) GenerationResult {
	return GenerationResult{
		Topic:          topic,
		Language:       language,
		Post:           post,
		WordCount:      CountWords(post),
		CharacterCount: CountCharacters(post),
		Failed:         failed,
	}
}

func CountWords(s string) int {
	return len(strings.Fields(s))
}

func CountCharacters(s string) int {
	return utf8.RuneCountInString(s)
}

func FailureText(err error) string {
	return ErrorPrefix + err.Error()
}
