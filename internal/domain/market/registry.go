package market

import (
	"fmt"
	"time"

	"MarketBell/internal/domain/models"
	"MarketBell/pkg/util"
)

// Registry holds the fixed set of tracked markets. Built once at startup,
// never mutated.
type Registry struct {
	defs  []models.MarketDefinition
	byKey map[string]models.MarketDefinition
}

type seed struct {
	key   string
	name  string
	flag  string
	zone  string
	open  string
	close string
}

var seeds = []seed{
	{"tokyo", "🇯🇵 Tokyo (Asia)", "🌏", "Asia/Tokyo", "09:00", "15:30"},
	{"london", "🇬🇧 London", "🌍", "Europe/London", "08:00", "16:30"},
	{"newyork", "🇺🇸 New York (NYSE/NASDAQ)", "🌎", "America/New_York", "09:30", "16:00"},
}

// NewRegistry resolves the zone and clock strings of the built-in markets.
func NewRegistry() (*Registry, error) {
	r := &Registry{byKey: make(map[string]models.MarketDefinition, len(seeds))}
	for _, s := range seeds {
		loc, err := time.LoadLocation(s.zone)
		if err != nil {
			return nil, fmt.Errorf("market %s: %w", s.key, err)
		}
		oh, om, err := util.ParseClock(s.open)
		if err != nil {
			return nil, fmt.Errorf("market %s open: %w", s.key, err)
		}
		ch, cm, err := util.ParseClock(s.close)
		if err != nil {
			return nil, fmt.Errorf("market %s close: %w", s.key, err)
		}
		def := models.MarketDefinition{
			Key:      s.key,
			Name:     s.name,
			Flag:     s.flag,
			Zone:     s.zone,
			Location: loc,
			Open:     models.ClockTime{Hour: oh, Minute: om},
			Close:    models.ClockTime{Hour: ch, Minute: cm},
		}
		r.defs = append(r.defs, def)
		r.byKey[s.key] = def
	}
	return r, nil
}

// Definitions returns markets in registration order.
func (r *Registry) Definitions() []models.MarketDefinition { return r.defs }

// Get looks up a market by key.
func (r *Registry) Get(key string) (models.MarketDefinition, bool) {
	def, ok := r.byKey[key]
	return def, ok
}

// Statuses derives the session view of every market at the given instant.
func Statuses(r *Registry, at time.Time) []models.SessionStatus {
	out := make([]models.SessionStatus, 0, len(r.defs))
	for _, def := range r.defs {
		out = append(out, Status(def, at))
	}
	return out
}

// Status derives the session view of one market at the given instant.
func Status(def models.MarketDefinition, at time.Time) models.SessionStatus {
	return models.SessionStatus{
		Key:       def.Key,
		Name:      def.Name,
		Flag:      def.Flag,
		IsOpen:    IsOpen(def, at),
		LocalTime: util.FormatClockZone(at.In(def.Location)),
	}
}
