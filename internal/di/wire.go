//go:build wireinject
// +build wireinject

package di

import (
	"MarketBell/pkg/config"
	"MarketBell/pkg/server"

	"github.com/google/wire"
)

// InitializeApp wires up all dependencies and returns the application.
// Wire will generate the implementation of this function.
func InitializeApp(cfg *config.Config) (*server.App, error) {
	wire.Build(
		// Observability
		ProvideLogger,
		ProvideMetrics,

		// Market calendar
		ProvideMarketRegistry,

		// Provider clients
		ProvideTelegramClient,
		ProvideMessenger,
		ProvideUpdateSource,
		ProvideMarketData,

		// Use cases
		ProvideRateLimiter,
		ProvideDispatcher,
		ProvideJobs,

		// Entry points
		ProvideScheduler,
		ProvideCommandHandler,
		ProvideStatusHandler,

		// Application server
		ProvideApp,
	)
	return &server.App{}, nil
}
