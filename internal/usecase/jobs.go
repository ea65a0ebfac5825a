package usecase

import (
	"context"
	"fmt"
	"time"

	"MarketBell/internal/domain/compose"
	"MarketBell/internal/domain/market"
	"MarketBell/internal/domain/models"
	drepo "MarketBell/internal/domain/repository"
	"MarketBell/internal/domain/signal"
	"MarketBell/pkg/logger"
)

// Jobs holds the handlers behind every scheduled notification. Each handler
// fetches what it needs, composes the text and hands it to the dispatcher.
// Handlers return an error for the scheduler to record; they never panic on
// provider failures.
type Jobs struct {
	dispatcher *Dispatcher
	data       drepo.MarketData
	registry   *market.Registry
	metrics    drepo.Metrics
	logger     *logger.Logger
	symbols    []string
	newsLimit  int
	nyLoc      *time.Location
	now        func() time.Time
}

// NewJobs creates the job handlers. symbols drives the signal run order;
// newsLimit caps both the fetch and the rendered headlines.
func NewJobs(
	dispatcher *Dispatcher,
	data drepo.MarketData,
	registry *market.Registry,
	metrics drepo.Metrics,
	log *logger.Logger,
	symbols []string,
	newsLimit int,
) *Jobs {
	nyLoc := time.UTC
	if d, ok := registry.Get("newyork"); ok {
		nyLoc = d.Location
	}
	return &Jobs{
		dispatcher: dispatcher,
		data:       data,
		registry:   registry,
		metrics:    metrics,
		logger:     log,
		symbols:    symbols,
		newsLimit:  newsLimit,
		nyLoc:      nyLoc,
		now:        time.Now,
	}
}

// Morning sends the daily greeting.
func (j *Jobs) Morning(ctx context.Context) error {
	return j.dispatcher.Send(ctx, "morning", compose.Morning(j.now().In(j.nyLoc)))
}

// MarketOpen announces the session open for the market under key.
func (j *Jobs) MarketOpen(ctx context.Context, key string) error {
	def, ok := j.registry.Get(key)
	if !ok {
		return fmt.Errorf("market open: unknown market %q", key)
	}
	return j.dispatcher.Send(ctx, "market_open", compose.MarketOpen(def, j.now()))
}

// MarketClose announces the session close for the market under key.
func (j *Jobs) MarketClose(ctx context.Context, key string) error {
	def, ok := j.registry.Get(key)
	if !ok {
		return fmt.Errorf("market close: unknown market %q", key)
	}
	return j.dispatcher.Send(ctx, "market_close", compose.MarketClose(def, j.now()))
}

// Signals fetches a fresh quote per configured symbol and sends the summary.
// A symbol whose fetch fails or classifies to no signal is skipped; the
// message goes out only when at least one line remains.
func (j *Jobs) Signals(ctx context.Context) error {
	signals := make([]models.Signal, 0, len(j.symbols))
	for _, sym := range j.symbols {
		start := time.Now()
		q, err := j.data.Quote(ctx, sym)
		if err != nil {
			j.metrics.RecordError("quote")
			j.logger.Warn("quote fetch failed",
				logger.String("symbol", sym),
				logger.Error(err),
			)
			continue
		}
		j.metrics.RecordLatency("quote_fetch", time.Since(start).Seconds())
		j.metrics.RecordLastPrice(sym, q.Current)

		s, ok := signal.Calculate(q)
		if !ok {
			j.logger.Debug("no signal for symbol", logger.String("symbol", sym))
			continue
		}
		signals = append(signals, s)
	}

	if len(signals) == 0 {
		return nil
	}
	return j.dispatcher.Send(ctx, "signals", compose.Signals(signals, j.now().In(j.nyLoc)))
}

// News sends the latest headlines. An empty feed sends nothing.
func (j *Jobs) News(ctx context.Context) error {
	start := time.Now()
	items, err := j.data.News(ctx, j.newsLimit)
	if err != nil {
		j.metrics.RecordError("news")
		return fmt.Errorf("news job: %w", err)
	}
	j.metrics.RecordLatency("news_fetch", time.Since(start).Seconds())

	if len(items) == 0 {
		return nil
	}
	return j.dispatcher.Send(ctx, "news", compose.News(items, j.newsLimit))
}

// Events sends the high impact reminder for the current weekday. Weekends
// are a no-op.
func (j *Jobs) Events(ctx context.Context) error {
	msg, ok := compose.Events(j.now().In(j.nyLoc))
	if !ok {
		return nil
	}
	return j.dispatcher.Send(ctx, "events", msg)
}
