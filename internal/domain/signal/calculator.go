package signal

import (
	"math"

	"MarketBell/internal/domain/models"
)

// Calculate classifies a quote's move against its previous close. The second
// return is false when no previous close is available (zero or negative),
// which callers treat as "no signal for this symbol".
//
// A flat move (zero percent) is reported as bearish.
func Calculate(q *models.Quote) (models.Signal, bool) {
	if q == nil || q.PreviousClose <= 0 {
		return models.Signal{}, false
	}
	pct := (q.Current - q.PreviousClose) / q.PreviousClose * 100
	dir := models.DirectionBearish
	if pct > 0 {
		dir = models.DirectionBullish
	}
	return models.Signal{
		Symbol:    q.Symbol,
		Direction: dir,
		Pct:       math.Round(math.Abs(pct)*100) / 100,
	}, true
}
