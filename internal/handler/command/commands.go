package command

import (
	"context"
	"strings"
	"time"

	"MarketBell/internal/domain/compose"
	"MarketBell/internal/domain/market"
	"MarketBell/internal/domain/models"
	drepo "MarketBell/internal/domain/repository"
	"MarketBell/internal/usecase"
	"MarketBell/pkg/logger"
)

// Handler long-polls Telegram for updates and answers /start and /status in
// the originating chat. Anything else is ignored. Poll failures back off for
// errSleep and the loop continues until the context is cancelled.
type Handler struct {
	source     drepo.UpdateSource
	dispatcher *usecase.Dispatcher
	registry   *market.Registry
	metrics    drepo.Metrics
	logger     *logger.Logger
	errSleep   time.Duration
	now        func() time.Time
}

// NewHandler creates the command poller.
func NewHandler(
	source drepo.UpdateSource,
	dispatcher *usecase.Dispatcher,
	registry *market.Registry,
	metrics drepo.Metrics,
	log *logger.Logger,
) *Handler {
	return &Handler{
		source:     source,
		dispatcher: dispatcher,
		registry:   registry,
		metrics:    metrics,
		logger:     log,
		errSleep:   5 * time.Second,
		now:        time.Now,
	}
}

// Run polls until ctx is cancelled. The confirmed offset advances past every
// received update, including ones that carry no command.
func (h *Handler) Run(ctx context.Context) {
	var offset int64
	for {
		select {
		case <-ctx.Done():
			return
		default:
		}

		updates, err := h.source.Updates(ctx, offset)
		if err != nil {
			if ctx.Err() != nil {
				return
			}
			h.metrics.RecordError("telegram_poll")
			h.logger.Error("update poll failed", logger.Error(err))
			select {
			case <-ctx.Done():
				return
			case <-time.After(h.errSleep):
			}
			continue
		}

		for _, u := range updates {
			if u.ID >= offset {
				offset = u.ID + 1
			}
			h.handle(ctx, u)
		}
	}
}

func (h *Handler) handle(ctx context.Context, u models.Update) {
	var text string
	switch command(u.Text) {
	case "start":
		text = compose.StartReply()
	case "status":
		text = compose.Status(market.Statuses(h.registry, h.now()))
	default:
		return
	}

	if err := h.dispatcher.Reply(ctx, u.ChatID, text); err != nil {
		h.logger.Error("command reply failed",
			logger.Int64("chat_id", u.ChatID),
			logger.Error(err),
		)
	}
}

// command extracts the lowercase command name from a message, tolerating the
// /cmd@botname form and trailing arguments.
func command(text string) string {
	if !strings.HasPrefix(text, "/") {
		return ""
	}
	fields := strings.Fields(text)
	cmd := strings.TrimPrefix(fields[0], "/")
	if i := strings.Index(cmd, "@"); i >= 0 {
		cmd = cmd[:i]
	}
	return strings.ToLower(cmd)
}
