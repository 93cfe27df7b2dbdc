package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/kitbuilder587/linkedin-agent/internal/domain"
	"github.com/kitbuilder587/linkedin-agent/internal/llm"
	"github.com/kitbuilder587/linkedin-agent/internal/metrics"
)

type PostGenerator interface {
	// Generate никогда не возвращает ошибку: сбой приходит текстом с domain.ErrorPrefix.
	Generate(ctx context.Context, topic, language string) string
	GenerateWithDetails(ctx context.Context, topic, language string) domain.GenerationResult
}

type PostServiceDeps struct {
	LLM      llm.Client
	Provider string
	Logger   *zap.Logger
	Metrics  *metrics.Metrics
}

type postService struct {
	llm      llm.Client
	provider string
	logger   *zap.Logger
	metrics  *metrics.Metrics
}

func NewPostService(deps PostServiceDeps) PostGenerator {
	if deps.Logger == nil {
		deps.Logger = zap.NewNop()
	}
	if deps.Provider == "" {
		deps.Provider = "unknown"
	}
	return &postService{
		llm:      deps.LLM,
		provider: deps.Provider,
		logger:   deps.Logger,
		metrics:  deps.Metrics,
	}
}

func (s *postService) Generate(ctx context.Context, topic, language string) string {
	post, err := s.generate(ctx, topic, language)
	if err != nil {
		return domain.FailureText(err)
	}
	return post
}

func (s *postService) GenerateWithDetails(ctx context.Context, topic, language string) domain.GenerationResult {
	post, err := s.generate(ctx, topic, language)
	if err != nil {
		return domain.NewGenerationResult(topic, language, domain.FailureText(err), true)
	}

	res := domain.NewGenerationResult(topic, language, post, false)
	if s.metrics != nil {
		s.metrics.ObservePostWords(res.WordCount)
	}
	return res
}

// generate - один запрос к модели с логированием; ошибку в текст превращают вызывающие
func (s *postService) generate(ctx context.Context, topic, language string) (string, error) {
	log := s.logger.With(
		zap.String("request_id", uuid.NewString()),
		zap.String("provider", s.provider),
	)

	post, err := s.complete(ctx, topic, language)
	if err != nil {
		log.Warn("post generation failed", zap.Error(err))
		return "", err
	}

	log.Info("post generated",
		zap.String("language", language),
		zap.Int("chars", domain.CountCharacters(post)),
	)
	return post, nil
}

func (s *postService) complete(ctx context.Context, topic, language string) (string, error) {
	if s.llm == nil {
		return "", fmt.Errorf("%w: no llm client configured", llm.ErrRequestFailed)
	}

	prompt, err := BuildPostPrompt(topic, language)
	if err != nil {
		return "", fmt.Errorf("build prompt: %w", err)
	}

	start := time.Now()
	content, err := s.llm.CompleteWithSystem(ctx, SystemPrompt, prompt)
	post := strings.TrimSpace(content)
	if err == nil && post == "" {
		err = llm.ErrEmptyResponse
	}
	s.record(err, time.Since(start))
	if err != nil {
		return "", err
	}
	return post, nil
}

func (s *postService) record(err error, duration time.Duration) {
	if s.metrics == nil {
		return
	}
	status := metrics.StatusSuccess
	if err != nil {
		status = metrics.StatusError
	}
	s.metrics.RecordGeneration(s.provider, status, duration)
}
