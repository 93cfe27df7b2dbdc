package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"net/http"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	flag "github.com/spf13/pflag"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/kitbuilder587/linkedin-agent/internal/cli"
	"github.com/kitbuilder587/linkedin-agent/internal/config"
	"github.com/kitbuilder587/linkedin-agent/internal/llm"
	"github.com/kitbuilder587/linkedin-agent/internal/llm/githubmodels"
	"github.com/kitbuilder587/linkedin-agent/internal/llm/mock"
	"github.com/kitbuilder587/linkedin-agent/internal/llm/openaisdk"
	"github.com/kitbuilder587/linkedin-agent/internal/metrics"
	"github.com/kitbuilder587/linkedin-agent/internal/service"
)

const (
	ExitOK    = 0
	ExitUsage = 1
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	flags := flag.NewFlagSet("linkedin-agent", flag.ContinueOnError)
	flags.SetOutput(stderr)
	envFile := flags.String("env-file", ".env", "Environment file with GITHUB_TOKEN and other settings")
	topic := flags.StringP("topic", "t", "", "Post topic (asked interactively when empty)")
	language := flags.StringP("language", "l", "", "Post language (asked interactively when empty)")
	metricsAddr := flags.String("metrics-addr", "", "Serve Prometheus metrics on this address while running")
	logLevel := flags.String("log-level", "", "Log level: debug, info, warn, error")

	flags.Usage = func() {
		fmt.Fprintf(stderr, `Usage: linkedin-agent [options]

Description:
  Generate a LinkedIn post for a topic in the chosen language using GitHub Models.

Options:
`)
		flags.PrintDefaults()
	}

	if err := flags.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return ExitOK
		}
		return ExitUsage
	}

	loadEnvFile(*envFile, flags.Changed("env-file"), stderr)

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprint(stdout, cli.FormatConfigError(err))
		return ExitOK
	}
	if *logLevel != "" {
		cfg.Log.Level = *logLevel
	}
	if *metricsAddr != "" {
		cfg.Metrics.Addr = *metricsAddr
	}

	logger, err := config.NewLogger(cfg.Log)
	if err != nil {
		fmt.Fprint(stdout, cli.FormatError(err))
		return ExitOK
	}
	defer logger.Sync()

	client, err := newLLMClient(cfg.LLM, logger)
	if err != nil {
		fmt.Fprint(stdout, cli.FormatConfigError(err))
		return ExitOK
	}

	reg := prometheus.NewRegistry()
	generator := service.NewPostService(service.PostServiceDeps{
		LLM:      client,
		Provider: cfg.LLM.Provider,
		Logger:   logger,
		Metrics:  metrics.New(reg),
	})
	session := cli.NewSession(stdin, stdout, generator)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	g, gctx := errgroup.WithContext(ctx)
	if cfg.Metrics.Addr != "" {
		serveMetrics(gctx, g, cfg.Metrics.Addr, reg, logger)
	}
	g.Go(func() error {
		defer cancel()
		return session.Run(gctx, cli.Options{Topic: *topic, Language: *language})
	})

	if err := g.Wait(); err != nil {
		fmt.Fprint(stdout, cli.FormatError(err))
	}
	return ExitOK
}

// loadEnvFile молчит об отсутствии .env по умолчанию, но не о файле, заданном явно
func loadEnvFile(path string, explicit bool, stderr io.Writer) {
	err := godotenv.Load(path)
	switch {
	case err == nil:
	case errors.Is(err, fs.ErrNotExist):
		if explicit {
			fmt.Fprintf(stderr, "Warning: env file %s not found\n", path)
		}
	default:
		fmt.Fprintf(stderr, "Warning: cannot load %s: %v\n", path, err)
	}
}

func newLLMClient(cfg config.LLMConfig, logger *zap.Logger) (llm.Client, error) {
	switch cfg.Provider {
	case config.ProviderOpenAISDK:
		return openaisdk.New(openaisdk.Config{
			APIKey:      cfg.Token,
			Model:       cfg.Model,
			BaseURL:     cfg.BaseURL,
			Temperature: cfg.Temperature,
			Timeout:     cfg.Timeout,
		}, logger)
	case config.ProviderMock:
		return mock.New(), nil
	default:
		return githubmodels.New(githubmodels.Config{
			APIKey:      cfg.Token,
			Model:       cfg.Model,
			BaseURL:     cfg.BaseURL,
			Temperature: cfg.Temperature,
			Timeout:     cfg.Timeout,
		}, logger)
	}
}

// serveMetrics живет, пока жива сессия; ошибка сервера метрик сессию не роняет
func serveMetrics(ctx context.Context, g *errgroup.Group, addr string, reg *prometheus.Registry, logger *zap.Logger) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", metrics.Handler(reg))
	srv := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	g.Go(func() error {
		logger.Info("metrics server started", zap.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("metrics server failed", zap.Error(err))
		}
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})
}
