package di

import (
	"fmt"

	"MarketBell/internal/domain/market"
	"MarketBell/internal/domain/repository"
	"MarketBell/internal/handler/api"
	"MarketBell/internal/handler/command"
	"MarketBell/internal/scheduler"
	"MarketBell/internal/service/finnhub"
	"MarketBell/internal/service/ratelimit"
	"MarketBell/internal/service/telegram"
	"MarketBell/internal/usecase"
	"MarketBell/pkg/config"
	xhttp "MarketBell/pkg/http"
	"MarketBell/pkg/logger"
	"MarketBell/pkg/metrics"
	"MarketBell/pkg/server"
)

// ProvideLogger creates the application logger.
func ProvideLogger(cfg *config.Config) (*logger.Logger, error) {
	l, err := logger.New(&logger.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		Output: cfg.Log.Output,
	})
	if err != nil {
		return nil, fmt.Errorf("logger: %w", err)
	}
	return l, nil
}

// ProvideMetrics creates a Prometheus metrics recorder.
func ProvideMetrics() repository.Metrics {
	return metrics.New()
}

// ProvideMarketRegistry loads the tracked market sessions and their timezones.
func ProvideMarketRegistry() (*market.Registry, error) {
	registry, err := market.NewRegistry()
	if err != nil {
		return nil, fmt.Errorf("market registry: %w", err)
	}
	return registry, nil
}

// ProvideTelegramClient creates the Telegram Bot API client.
func ProvideTelegramClient(cfg *config.Config) *telegram.Client {
	return telegram.New(
		cfg.Telegram.Token,
		cfg.Telegram.BaseURL,
		cfg.Telegram.Timeout(),
		cfg.Telegram.PollTimeout(),
	)
}

// ProvideMessenger exposes the Telegram client as the outbound messenger.
func ProvideMessenger(client *telegram.Client) repository.Messenger {
	return client
}

// ProvideUpdateSource exposes the Telegram client as the update poll source.
func ProvideUpdateSource(client *telegram.Client) repository.UpdateSource {
	return client
}

// ProvideMarketData creates the Finnhub REST client.
func ProvideMarketData(cfg *config.Config) repository.MarketData {
	return finnhub.New(cfg.Finnhub.APIKey, cfg.Finnhub.BaseURL, cfg.Finnhub.Timeout())
}

// ProvideRateLimiter creates the per-chat token bucket for outbound messages.
func ProvideRateLimiter(cfg *config.Config) *ratelimit.Limiter {
	return ratelimit.New(cfg.Dispatch.Burst, cfg.Dispatch.PerSecond)
}

// ProvideDispatcher creates the outbound message dispatcher.
func ProvideDispatcher(
	messenger repository.Messenger,
	limiter *ratelimit.Limiter,
	m repository.Metrics,
	l *logger.Logger,
	cfg *config.Config,
) *usecase.Dispatcher {
	return usecase.NewDispatcher(messenger, limiter, m, l, cfg.Telegram.ChannelID)
}

// ProvideJobs creates the scheduled notification jobs.
func ProvideJobs(
	dispatcher *usecase.Dispatcher,
	data repository.MarketData,
	registry *market.Registry,
	m repository.Metrics,
	l *logger.Logger,
	cfg *config.Config,
) *usecase.Jobs {
	return usecase.NewJobs(dispatcher, data, registry, m, l, cfg.Schedule.Symbols, cfg.Schedule.NewsLimit)
}

// ProvideScheduler creates the cron scheduler with the full trigger table registered.
func ProvideScheduler(m repository.Metrics, l *logger.Logger, jobs *usecase.Jobs) (*scheduler.Scheduler, error) {
	s := scheduler.New(m, l)
	if err := scheduler.Plan(s, jobs); err != nil {
		return nil, fmt.Errorf("schedule plan: %w", err)
	}
	return s, nil
}

// ProvideCommandHandler creates the Telegram command poller.
func ProvideCommandHandler(
	source repository.UpdateSource,
	dispatcher *usecase.Dispatcher,
	registry *market.Registry,
	m repository.Metrics,
	l *logger.Logger,
) *command.Handler {
	return command.NewHandler(source, dispatcher, registry, m, l)
}

// ProvideStatusHandler creates the HTTP handler for health and session status.
func ProvideStatusHandler(l *logger.Logger, registry *market.Registry) xhttp.Handler {
	return api.NewStatusHandler(l, registry)
}

// ProvideApp creates the application server.
func ProvideApp(
	cfg *config.Config,
	l *logger.Logger,
	sched *scheduler.Scheduler,
	poller *command.Handler,
	httpHandler xhttp.Handler,
) *server.App {
	return server.New(cfg, l, sched, poller, httpHandler)
}
