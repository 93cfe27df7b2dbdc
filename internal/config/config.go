package config

import (
	"errors"
	"os"
	"strconv"
	"time"

	"github.com/kitbuilder587/linkedin-agent/internal/llm"
)

var (
	ErrMissingToken       = errors.New("GITHUB_TOKEN environment variable not set. Please provide a GitHub token")
	ErrInvalidProvider    = errors.New("invalid LLM provider")
	ErrInvalidTemperature = errors.New("temperature must be greater than 0 and at most 2")
)

const (
	ProviderGitHub    = "github"
	ProviderOpenAISDK = "openai-sdk"
	ProviderMock      = "mock"
)

type Config struct {
	LLM     LLMConfig
	Log     LogConfig
	Metrics MetricsConfig
}

type LLMConfig struct {
	Provider    string
	Token       string
	BaseURL     string
	Model       string
	Temperature float64
	Timeout     time.Duration
}

type LogConfig struct {
	Level string
}

type MetricsConfig struct {
	Addr string
}

func Load() (*Config, error) {
	cfg := &Config{
		LLM: LLMConfig{
			Provider:    getEnvOrDefault("LLM_PROVIDER", ProviderGitHub),
			Token:       os.Getenv("GITHUB_TOKEN"),
			BaseURL:     getEnvOrDefault("GITHUB_MODELS_BASE_URL", llm.DefaultBaseURL),
			Model:       getEnvOrDefault("GITHUB_MODELS_MODEL", llm.DefaultModel),
			Temperature: getEnvFloatOrDefault("LLM_TEMPERATURE", llm.DefaultTemperature),
			Timeout:     time.Duration(getEnvIntOrDefault("LLM_TIMEOUT_SEC", int(llm.DefaultTimeout/time.Second))) * time.Second,
		},
		Log: LogConfig{
			Level: getEnvOrDefault("LOG_LEVEL", "warn"),
		},
		Metrics: MetricsConfig{
			Addr: os.Getenv("METRICS_ADDR"),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) Validate() error {
	switch c.LLM.Provider {
	case ProviderGitHub, ProviderOpenAISDK:
		if c.LLM.Token == "" {
			return ErrMissingToken
		}
	case ProviderMock:
		// токен не нужен
	default:
		return ErrInvalidProvider
	}
	// 0 провайдеры трактуют как "не задано" и подставляют дефолт
	if c.LLM.Temperature <= 0 || c.LLM.Temperature > 2 {
		return ErrInvalidTemperature
	}
	return nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvFloatOrDefault(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if f, err := strconv.ParseFloat(value, 64); err == nil {
			return f
		}
	}
	return defaultValue
}
