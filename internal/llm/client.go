package llm

import (
	"context"
	"errors"
	"time"
)

var (
	ErrMissingCredential = errors.New("missing API credential")
	ErrAuthFailed        = errors.New("authentication failed")
	ErrRequestFailed     = errors.New("request failed")
	ErrEmptyResponse     = errors.New("empty response")
	ErrRateLimit         = errors.New("rate limit exceeded")
)

// GitHub Models, OpenAI-совместимый endpoint
const (
	DefaultBaseURL     = "https://models.github.ai/inference"
	DefaultModel       = "openai/gpt-4o-mini"
	DefaultTemperature = 0.5
	DefaultTimeout     = 60 * time.Second
)

type Client interface {
	CompleteWithSystem(ctx context.Context, system, prompt string) (string, error)
}
