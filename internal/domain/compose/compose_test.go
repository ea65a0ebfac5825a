package compose

import (
	"strings"
	"testing"
	"time"

	"MarketBell/internal/domain/models"
)

func tokyoDef(t *testing.T) models.MarketDefinition {
	t.Helper()
	loc, err := time.LoadLocation("Asia/Tokyo")
	if err != nil {
		t.Fatalf("load zone: %v", err)
	}
	return models.MarketDefinition{
		Key:      "tokyo",
		Name:     "🇯🇵 Tokyo (Asia)",
		Flag:     "🌏",
		Zone:     "Asia/Tokyo",
		Location: loc,
	}
}

// 2025-03-03 is a Monday.
func TestMorning(t *testing.T) {
	now := time.Date(2025, 3, 3, 6, 0, 0, 0, time.UTC)
	want := "🌅 *Good Morning — MarketBell Team!*\n\n" +
		"📅 Monday, March 03 2025\n\n" +
		"Today's market sessions:\n" +
		"🌏 Tokyo:    09:00 – 15:30 JST\n" +
		"🌍 London:   08:00 – 16:30 GMT\n" +
		"🌎 New York: 09:30 – 16:00 EST\n\n" +
		"Stay focused, trade smart. Let's have a great day! 💼📈"
	if got := Morning(now); got != want {
		t.Errorf("morning message mismatch:\ngot:  %q\nwant: %q", got, want)
	}
}

func TestMarketOpen(t *testing.T) {
	d := tokyoDef(t)
	// 00:00 UTC projects to 09:00 JST.
	now := time.Date(2025, 3, 3, 0, 0, 0, 0, time.UTC)
	want := "🌏 *MARKET OPEN — 🇯🇵 Tokyo (Asia)*\n\n" +
		"🟢 The 🇯🇵 Tokyo (Asia) session has just opened!\n" +
		"🕐 Local time: 09:00 JST\n\n" +
		"Watch for early momentum and liquidity. Good luck traders! 📊"
	if got := MarketOpen(d, now); got != want {
		t.Errorf("open message mismatch:\ngot:  %q\nwant: %q", got, want)
	}
}

func TestMarketClose(t *testing.T) {
	d := tokyoDef(t)
	now := time.Date(2025, 3, 3, 6, 30, 0, 0, time.UTC)
	want := "🌏 *MARKET CLOSE — 🇯🇵 Tokyo (Asia)*\n\n" +
		"🔴 The 🇯🇵 Tokyo (Asia) session has closed.\n" +
		"🕐 Local time: 15:30 JST\n\n" +
		"Review your trades and prepare for the next session. 📋"
	if got := MarketClose(d, now); got != want {
		t.Errorf("close message mismatch:\ngot:  %q\nwant: %q", got, want)
	}
}

func TestSignals(t *testing.T) {
	signals := []models.Signal{
		{Symbol: "SPY", Direction: models.DirectionBullish, Pct: 1.24},
		{Symbol: "EURUSD", Direction: models.DirectionBearish, Pct: 0.33},
	}
	now := time.Date(2025, 3, 3, 14, 5, 0, 0, time.UTC)
	want := "📊 *MarketBell — Market Signal Update*\n" +
		"🕐 14:05 EST\n\n" +
		"• *SPY*: 📈 BULLISH ▲ 1.24%\n" +
		"• *EURUSD*: 📉 BEARISH ▼ 0.33%" +
		"\n\n_Based on latest price vs previous close._"
	if got := Signals(signals, now); got != want {
		t.Errorf("signals message mismatch:\ngot:  %q\nwant: %q", got, want)
	}
}

func TestSignalsFlatMoveRendersBearish(t *testing.T) {
	signals := []models.Signal{{Symbol: "QQQ", Direction: models.DirectionBearish, Pct: 0}}
	got := Signals(signals, time.Date(2025, 3, 3, 10, 0, 0, 0, time.UTC))
	if !strings.Contains(got, "• *QQQ*: 📉 BEARISH ▼ 0.00%") {
		t.Errorf("flat move not rendered bearish: %q", got)
	}
}

func TestNewsCapsAtLimit(t *testing.T) {
	items := []models.NewsItem{
		{Headline: "one", Source: "a"},
		{Headline: "two", Source: "b"},
		{Headline: "three", Source: "c"},
		{Headline: "four", Source: "d"},
		{Headline: "five", Source: "e"},
		{Headline: "six", Source: "f"},
	}
	got := News(items, 4)
	if !strings.HasPrefix(got, "📰 *MarketBell — Breaking Financial News*\n\n") {
		t.Fatalf("missing header: %q", got)
	}
	if n := strings.Count(got, "• "); n != 4 {
		t.Errorf("rendered %d items, want 4", n)
	}
	if strings.Contains(got, "five") || strings.Contains(got, "six") {
		t.Errorf("items past the cap rendered: %q", got)
	}
	if !strings.HasSuffix(got, "_— d_\n\n") {
		t.Errorf("unexpected tail: %q", got)
	}
}

func TestNewsEmptyHeadlineCountsTowardCap(t *testing.T) {
	items := []models.NewsItem{
		{Headline: "", Source: "a"},
		{Headline: "kept", Source: "b"},
		{Headline: "dropped", Source: "c"},
	}
	got := News(items, 2)
	if !strings.Contains(got, "kept") {
		t.Errorf("second item missing: %q", got)
	}
	if strings.Contains(got, "dropped") {
		t.Errorf("item past the cap rendered: %q", got)
	}
	if n := strings.Count(got, "• "); n != 1 {
		t.Errorf("rendered %d items, want 1", n)
	}
}

func TestEvents(t *testing.T) {
	// 2025-03-07 is a Friday, 2025-03-08 a Saturday.
	friday := time.Date(2025, 3, 7, 8, 0, 0, 0, time.UTC)
	msg, ok := Events(friday)
	if !ok {
		t.Fatal("expected a reminder on Friday")
	}
	if !strings.Contains(msg, "High Impact Events Today — Friday") {
		t.Errorf("missing weekday header: %q", msg)
	}
	if !strings.Contains(msg, "• USD: Non-Farm Payrolls (NFP) 🔥\n• USD: Unemployment Rate") {
		t.Errorf("missing Friday events: %q", msg)
	}

	saturday := time.Date(2025, 3, 8, 8, 0, 0, 0, time.UTC)
	if msg, ok := Events(saturday); ok || msg != "" {
		t.Errorf("expected no reminder on Saturday, got %q", msg)
	}
}

func TestStartReply(t *testing.T) {
	got := StartReply()
	if !strings.HasPrefix(got, "👋 *MarketBell Trading Bot is active!*\n\n") {
		t.Errorf("unexpected greeting: %q", got)
	}
	if !strings.HasSuffix(got, "Use /status to check current market sessions.") {
		t.Errorf("unexpected tail: %q", got)
	}
}

func TestStatus(t *testing.T) {
	statuses := []models.SessionStatus{
		{Key: "tokyo", Name: "🇯🇵 Tokyo (Asia)", Flag: "🌏", IsOpen: false, LocalTime: "23:45 JST"},
		{Key: "london", Name: "🇬🇧 London", Flag: "🌍", IsOpen: true, LocalTime: "14:45 GMT"},
	}
	want := "📊 *Current Market Status*\n\n" +
		"🌏 *🇯🇵 Tokyo (Asia)*: 🔴 CLOSED\n   Local: 23:45 JST\n\n" +
		"🌍 *🇬🇧 London*: 🟢 OPEN\n   Local: 14:45 GMT\n\n"
	if got := Status(statuses); got != want {
		t.Errorf("status message mismatch:\ngot:  %q\nwant: %q", got, want)
	}
}
