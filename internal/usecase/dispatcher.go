package usecase

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"MarketBell/internal/domain/models"
	drepo "MarketBell/internal/domain/repository"
	"MarketBell/internal/service/ratelimit"
	"MarketBell/pkg/logger"
	"MarketBell/pkg/util"
)

// maxMessageLen is the Telegram text limit.
const maxMessageLen = 4096

// Dispatcher delivers composed text to Telegram. Channel broadcasts and
// command replies share the rate limit, keyed per destination chat. A send
// denied by the limiter is dropped and logged, never queued.
type Dispatcher struct {
	messenger drepo.Messenger
	limiter   *ratelimit.Limiter
	metrics   drepo.Metrics
	logger    *logger.Logger
	channelID string
}

// NewDispatcher creates a Dispatcher bound to the broadcast channel.
func NewDispatcher(
	messenger drepo.Messenger,
	limiter *ratelimit.Limiter,
	metrics drepo.Metrics,
	log *logger.Logger,
	channelID string,
) *Dispatcher {
	return &Dispatcher{
		messenger: messenger,
		limiter:   limiter,
		metrics:   metrics,
		logger:    log,
		channelID: channelID,
	}
}

// Send delivers text to the broadcast channel on behalf of the named job.
func (d *Dispatcher) Send(ctx context.Context, job, text string) error {
	return d.deliver(ctx, job, d.channelID, text)
}

// Reply delivers text to the chat that issued a command.
func (d *Dispatcher) Reply(ctx context.Context, chatID int64, text string) error {
	return d.deliver(ctx, "command", strconv.FormatInt(chatID, 10), text)
}

func (d *Dispatcher) deliver(ctx context.Context, job, chatID, text string) error {
	if !d.limiter.Allow(chatID) {
		d.metrics.RecordError("rate_limited")
		d.logger.Warn("message dropped by rate limit",
			logger.String("job", job),
			logger.String("chat_id", chatID),
		)
		return nil
	}

	start := time.Now()
	msg := &models.Message{
		ChatID:    chatID,
		Text:      util.Truncate(text, maxMessageLen),
		ParseMode: models.ParseModeMarkdown,
	}
	if err := d.messenger.Send(ctx, msg); err != nil {
		d.metrics.RecordError("telegram_send")
		return fmt.Errorf("dispatch %s: %w", job, err)
	}

	d.metrics.RecordMessageSent(job)
	d.metrics.RecordLatency("send_message", time.Since(start).Seconds())
	d.logger.Debug("message delivered",
		logger.String("job", job),
		logger.Int("bytes", len(msg.Text)),
	)
	return nil
}
