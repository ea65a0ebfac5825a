package server

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"MarketBell/internal/handler/command"
	"MarketBell/internal/scheduler"
	"MarketBell/pkg/config"
	xhttp "MarketBell/pkg/http"
	applogger "MarketBell/pkg/logger"
)

// App encapsulates the entire application lifecycle: the notification
// scheduler, the Telegram command poller and the ops HTTP server.
type App struct {
	cfg         *config.Config
	logger      *applogger.Logger
	scheduler   *scheduler.Scheduler
	poller      *command.Handler
	httpHandler xhttp.Handler
	httpServer  *xhttp.Server
}

// New creates a new App instance with all dependencies.
func New(
	cfg *config.Config,
	logger *applogger.Logger,
	sched *scheduler.Scheduler,
	poller *command.Handler,
	httpHandler xhttp.Handler,
) *App {
	return &App{
		cfg:         cfg,
		logger:      logger,
		scheduler:   sched,
		poller:      poller,
		httpHandler: httpHandler,
	}
}

// Run starts the application and blocks until interrupted.
func (a *App) Run() error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	opts := []xhttp.ServerOption{
		xhttp.WithHost(a.cfg.Server.Host),
		xhttp.WithPort(a.cfg.Server.Port),
		xhttp.WithTimeouts(a.cfg.Server.ReadTimeout(), a.cfg.Server.WriteTimeout(), a.cfg.Server.ShutdownTimeout()),
		xhttp.WithLogger(a.logger),
	}
	if len(a.cfg.Server.CORSOrigins) > 0 {
		opts = append(opts, xhttp.WithCORS(a.cfg.Server.CORSOrigins))
	}
	a.httpServer = xhttp.NewServer(a.httpHandler, opts...)

	a.scheduler.Start(ctx)
	a.logger.Info("scheduler running",
		applogger.Int("jobs", a.scheduler.Len()),
		applogger.Int("zones", a.scheduler.Zones()),
	)

	if a.poller != nil && a.cfg.Telegram.PollingEnabled() {
		go a.poller.Run(ctx)
		a.logger.Info("command poller started")
	} else {
		a.logger.Info("command polling disabled")
	}

	if err := a.httpServer.Start(); err != nil {
		a.logger.Error("http server start error", applogger.Error(err))
		return err
	}
	a.logger.Info("notifier running",
		applogger.String("channel", a.cfg.Telegram.ChannelID),
		applogger.Strings("symbols", a.cfg.Schedule.Symbols),
	)

	// Wait for interrupt
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	<-sigCh

	a.logger.Info("shutdown signal received")
	cancel()
	return a.shutdown()
}

// shutdown gracefully stops all services.
func (a *App) shutdown() error {
	// The run context is cancelled by now, stopping the poller and any
	// in-flight jobs. The scheduler stop waits for running jobs.
	a.scheduler.Stop()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), a.cfg.Server.ShutdownTimeout())
	defer cancel()
	if err := a.httpServer.Stop(shutdownCtx); err != nil {
		a.logger.Error("http shutdown error", applogger.Error(err))
	}

	a.logger.Info("shutdown complete")
	return nil
}
