package cli

import (
	"fmt"
	"strings"

	"github.com/kitbuilder587/linkedin-agent/internal/domain"
)

const ruleWidth = 60

func Rule() string {
	return strings.Repeat("=", ruleWidth)
}

func FormatBanner() string {
	var sb strings.Builder
	sb.WriteString(Rule() + "\n")
	sb.WriteString("LinkedIn Post Generator - AI Agent\n")
	sb.WriteString(Rule() + "\n\n")
	return sb.String()
}

func FormatHeading(title string) string {
	return "\n" + Rule() + "\n" + title + "\n" + Rule() + "\n\n"
}

func FormatResult(res domain.GenerationResult) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("📝 Topic: %s\n", res.Topic))
	sb.WriteString(fmt.Sprintf("🌐 Language: %s\n", res.Language))
	sb.WriteString(fmt.Sprintf("📊 Word Count: %d\n", res.WordCount))
	sb.WriteString(fmt.Sprintf("📏 Character Count: %d\n", res.CharacterCount))
	sb.WriteString(FormatHeading("Generated LinkedIn Post:"))
	sb.WriteString(res.Post)
	sb.WriteString("\n\n")
	sb.WriteString(Rule() + "\n")
	return sb.String()
}

func FormatConfigError(err error) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("\n❌ Configuration Error: %v\n", err))
	sb.WriteString("\nPlease ensure you have:\n")
	sb.WriteString("1. Created a .env file in the project directory\n")
	sb.WriteString("2. Added your GitHub token: GITHUB_TOKEN=your_token_here\n")
	return sb.String()
}

func FormatError(err error) string {
	return fmt.Sprintf("\n❌ Error: %v\n", err)
}
