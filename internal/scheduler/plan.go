package scheduler

import (
	"context"

	"MarketBell/internal/usecase"
)

const (
	zoneTokyo   = "Asia/Tokyo"
	zoneLondon  = "Europe/London"
	zoneNewYork = "America/New_York"
)

// Plan registers the production trigger table. Open and close alerts fire
// on the market's own clock every day; signals, news and the morning
// greeting follow New York; the events reminder runs weekdays only.
func Plan(s *Scheduler, jobs *usecase.Jobs) error {
	open := func(key string) func(context.Context) error {
		return func(ctx context.Context) error { return jobs.MarketOpen(ctx, key) }
	}
	closed := func(key string) func(context.Context) error {
		return func(ctx context.Context) error { return jobs.MarketClose(ctx, key) }
	}

	regs := []struct {
		trig Trigger
		fn   func(context.Context) error
	}{
		{Trigger{Name: "morning", Zone: zoneNewYork, Hours: []int{6}}, jobs.Morning},

		{Trigger{Name: "market_open_tokyo", Zone: zoneTokyo, Hours: []int{9}}, open("tokyo")},
		{Trigger{Name: "market_close_tokyo", Zone: zoneTokyo, Hours: []int{15}, Minute: 30}, closed("tokyo")},
		{Trigger{Name: "market_open_london", Zone: zoneLondon, Hours: []int{8}}, open("london")},
		{Trigger{Name: "market_close_london", Zone: zoneLondon, Hours: []int{16}, Minute: 30}, closed("london")},
		{Trigger{Name: "market_open_newyork", Zone: zoneNewYork, Hours: []int{9}, Minute: 30}, open("newyork")},
		{Trigger{Name: "market_close_newyork", Zone: zoneNewYork, Hours: []int{16}}, closed("newyork")},

		{Trigger{Name: "signals", Zone: zoneNewYork, Hours: []int{10, 12, 14, 16}}, jobs.Signals},
		{Trigger{Name: "news", Zone: zoneNewYork, Hours: []int{7, 10, 13, 16}}, jobs.News},
		{Trigger{Name: "events", Zone: zoneNewYork, Hours: []int{8}, Weekdays: true}, jobs.Events},
	}

	for _, r := range regs {
		if err := s.Register(r.trig, r.fn); err != nil {
			return err
		}
	}
	return nil
}
