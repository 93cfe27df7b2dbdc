package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/kitbuilder587/linkedin-agent/internal/domain"
	"github.com/kitbuilder587/linkedin-agent/internal/service"
)

type Options struct {
	// непустые значения пропускают соответствующий вопрос
	Topic    string
	Language string
}

type Session struct {
	in        *bufio.Reader
	out       io.Writer
	generator service.PostGenerator
}

func NewSession(in io.Reader, out io.Writer, generator service.PostGenerator) *Session {
	return &Session{
		in:        bufio.NewReader(in),
		out:       out,
		generator: generator,
	}
}

// Run возвращает ошибку только при сбое ввода-вывода; неудачная генерация
// печатается как обычный пост.
func (s *Session) Run(ctx context.Context, opts Options) error {
	s.print(FormatBanner())

	topic := strings.TrimSpace(opts.Topic)
	if topic == "" {
		var err error
		topic, err = s.ask("Enter the topic for your LinkedIn post:")
		if err != nil {
			return err
		}
	}

	req := domain.NewGenerationRequest(topic, opts.Language)
	if err := req.Validate(); err != nil {
		s.print("Error: Topic cannot be empty.\n")
		return nil
	}

	if strings.TrimSpace(opts.Language) == "" {
		language, err := s.ask("\nEnter the language for your post (e.g., English, Spanish, Bengali):")
		if err != nil {
			return err
		}
		req = domain.NewGenerationRequest(topic, language)
		if strings.TrimSpace(language) == "" {
			s.print(fmt.Sprintf("Using default language: %s\n", req.Language))
		}
	}

	s.print(FormatHeading("Generating your LinkedIn post..."))

	res := s.generator.GenerateWithDetails(ctx, req.Topic, req.Language)
	s.print(FormatResult(res))
	return nil
}

func (s *Session) ask(question string) (string, error) {
	s.print(question + "\n> ")
	line, err := s.in.ReadString('\n')
	if err != nil && err != io.EOF {
		return "", fmt.Errorf("read input: %w", err)
	}
	return strings.TrimSpace(line), nil
}

func (s *Session) print(text string) {
	fmt.Fprint(s.out, text)
}
