package market

import (
	"time"

	"MarketBell/internal/domain/models"
)

// IsOpen reports whether the market's session covers the given instant.
// The comparison runs in the market's own zone at minute resolution over the
// half-open interval [open, close): the opening minute counts, the closing
// minute does not. Weekends are always closed.
func IsOpen(def models.MarketDefinition, at time.Time) bool {
	local := at.In(def.Location)
	switch local.Weekday() {
	case time.Saturday, time.Sunday:
		return false
	}
	minute := local.Hour()*60 + local.Minute()
	return minute >= def.Open.Minutes() && minute < def.Close.Minutes()
}
