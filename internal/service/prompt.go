package service

import (
	"strings"
	"text/template"
)

const SystemPrompt = "You are a professional LinkedIn content creator who writes engaging, insightful posts for a professional audience."

var postPromptTemplate = template.Must(template.New("post").Parse(`Create an engaging, professional LinkedIn post about the following topic.

Topic: {{.Topic}}
Language: {{.Language}}

Requirements:
- Write 2-4 well-structured paragraphs
- Use a professional yet conversational tone
- Include relevant insights or perspectives
- Make it engaging and thought-provoking
- Separate paragraphs with a blank line
- Write ENTIRELY in {{.Language}}
- Do not include hashtags or emojis unless they fit naturally

Generate the LinkedIn post:`))

type promptData struct {
	Topic    string
	Language string
}

func BuildPostPrompt(topic, language string) (string, error) {
	var sb strings.Builder
	if err := postPromptTemplate.Execute(&sb, promptData{Topic: topic, Language: language}); err != nil {
		return "", err
	}
	return sb.String(), nil
}
