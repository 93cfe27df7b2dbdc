// Package openaisdk talks to the same OpenAI-compatible endpoint as
// githubmodels, but through the go-openai SDK instead of raw HTTP.
package openaisdk

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	openai "github.com/sashabaranov/go-openai"
	"go.uber.org/zap"

	"github.com/kitbuilder587/linkedin-agent/internal/llm"
)

// chatAPI - минимальное подмножество openai.Client, легко подменить в тестах
type chatAPI interface {
	CreateChatCompletion(ctx context.Context, req openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error)
}

type Config struct {
	APIKey      string
	Model       string
	BaseURL     string
	Temperature float64
	Timeout     time.Duration
}

type Client struct {
	api         chatAPI
	model       string
	temperature float32
	logger      *zap.Logger
}

func New(cfg Config, logger *zap.Logger) (*Client, error) {
	if cfg.APIKey == "" {
		return nil, llm.ErrMissingCredential
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = llm.DefaultBaseURL
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = llm.DefaultTimeout
	}

	sdkCfg := openai.DefaultConfig(cfg.APIKey)
	sdkCfg.BaseURL = cfg.BaseURL
	sdkCfg.HTTPClient = &http.Client{Timeout: cfg.Timeout}

	return newWithAPI(openai.NewClientWithConfig(sdkCfg), cfg, logger), nil
}

func newWithAPI(api chatAPI, cfg Config, logger *zap.Logger) *Client {
	if cfg.Model == "" {
		cfg.Model = llm.DefaultModel
	}
	if cfg.Temperature == 0 {
		cfg.Temperature = llm.DefaultTemperature
	}
	return &Client{
		api:         api,
		model:       cfg.Model,
		temperature: float32(cfg.Temperature),
		logger:      logger,
	}
}

func (c *Client) CompleteWithSystem(ctx context.Context, system, prompt string) (string, error) {
	resp, err := c.api.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: system},
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
		Temperature: c.temperature,
	})
	if err != nil {
		return "", c.mapError(err)
	}

	if len(resp.Choices) == 0 || resp.Choices[0].Message.Content == "" {
		return "", llm.ErrEmptyResponse
	}
	return resp.Choices[0].Message.Content, nil
}

// mapError сводит ошибки SDK к общим ошибкам пакета llm
func (c *Client) mapError(err error) error {
	status := 0

	var apiErr *openai.APIError
	var reqErr *openai.RequestError
	switch {
	case errors.As(err, &apiErr):
		status = apiErr.HTTPStatusCode
	case errors.As(err, &reqErr):
		status = reqErr.HTTPStatusCode
	}

	switch status {
	case http.StatusUnauthorized:
		return fmt.Errorf("%w: %v", llm.ErrAuthFailed, err)
	case http.StatusTooManyRequests:
		return fmt.Errorf("%w: %v", llm.ErrRateLimit, err)
	case 0:
		return fmt.Errorf("%w: %v", llm.ErrRequestFailed, err)
	default:
		c.logger.Error("openai-sdk request failed",
			zap.Int("status", status),
			zap.Error(err),
		)
		return fmt.Errorf("%w: %v", llm.ErrRequestFailed, err)
	}
}

var _ llm.Client = (*Client)(nil)
