package bootstrap

import (
	"log/slog"
	"time"

	"github.com/filewise-ai/filewise/internal/config"
	"github.com/filewise-ai/filewise/internal/core/usecase"
	"github.com/filewise-ai/filewise/internal/infrastructure/llm/ollama"
	"github.com/filewise-ai/filewise/internal/infrastructure/preview"
	"github.com/filewise-ai/filewise/internal/infrastructure/resilience"
	"github.com/filewise-ai/filewise/internal/observability/logging"
	"github.com/filewise-ai/filewise/internal/observability/metrics"
)

type App struct {
	Config config.Config
	Log    *slog.Logger

	Workflow  *usecase.Workflow
	Extractor *preview.Extractor
	Metrics   *metrics.HTTPServerMetrics
}

func New(cfg config.Config, service string) *App {
	log := logging.NewJSONLogger(service, cfg.LogLevel)
	slog.SetDefault(log)

	exec := resilience.NewExecutor(resilience.Config{
		BreakerEnabled:          cfg.BreakerEnabled,
		BreakerMinRequests:      uint32(cfg.BreakerMinRequests),
		BreakerFailureRatio:     cfg.BreakerFailureRatio,
		BreakerOpenTimeout:      time.Duration(cfg.BreakerOpenTimeoutSecs) * time.Second,
		BreakerHalfOpenMaxCalls: uint32(cfg.BreakerHalfOpenMaxCalls),
	})

	completion := ollama.New(
		cfg.CompletionURL,
		cfg.CompletionModel,
		time.Duration(cfg.CompletionTimeoutSeconds)*time.Second,
		exec,
	)

	return &App{
		Config:    cfg,
		Log:       log,
		Workflow:  usecase.NewWorkflow(completion, log),
		Extractor: preview.NewExtractor(cfg.PreviewMaxBytes),
		Metrics:   metrics.NewHTTPServerMetrics(service),
	}
}
