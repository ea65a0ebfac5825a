package repository

import (
	"context"

	"MarketBell/internal/domain/models"
)

// MarketData fetches point-in-time quotes and recent headlines from the
// upstream provider. Both calls are bounded by the provider client's timeout.
type MarketData interface {
	Quote(ctx context.Context, symbol string) (*models.Quote, error)
	News(ctx context.Context, max int) ([]models.NewsItem, error)
}

// Messenger delivers one outbound message. Each send is self-contained;
// concurrent sends are allowed.
type Messenger interface {
	Send(ctx context.Context, msg *models.Message) error
}

// UpdateSource long-polls the provider for inbound command updates.
type UpdateSource interface {
	Updates(ctx context.Context, offset int64) ([]models.Update, error)
}

type Metrics interface {
	RecordMessageSent(job string)
	RecordError(kind string)
	RecordJobRun(job, status string)
	RecordLastPrice(symbol string, price float64)
	RecordLatency(op string, seconds float64)
}
