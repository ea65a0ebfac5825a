// Package compose builds the Telegram Markdown text for every outbound
// notification. Functions here are pure so templates can be asserted in
// tests without network or clock dependencies.
package compose

import (
	"fmt"
	"strings"
	"time"

	"MarketBell/internal/domain/models"
	"MarketBell/pkg/util"
)

const (
	signalsFooter = "\n\n_Based on latest price vs previous close._"
	newsHeader    = "📰 *MarketBell — Breaking Financial News*\n\n"
	statusHeader  = "📊 *Current Market Status*\n\n"
)

// weekdayEvents lists the recurring high impact releases for each trading day.
var weekdayEvents = map[time.Weekday]string{
	time.Monday:    "• USD: Fed Member Speeches\n• EUR: Eurozone Sentix Index",
	time.Tuesday:   "• USD: Consumer Confidence\n• GBP: UK Claimant Count",
	time.Wednesday: "• USD: ADP Employment + Fed Minutes\n• EUR: CPI Flash Estimate",
	time.Thursday:  "• USD: Initial Jobless Claims\n• EUR: ECB Meeting (if scheduled)",
	time.Friday:    "• USD: Non-Farm Payrolls (NFP) 🔥\n• USD: Unemployment Rate",
}

// Morning builds the daily greeting with the fixed session table. The caller
// passes the current time already in the New York zone.
func Morning(now time.Time) string {
	var b strings.Builder
	b.WriteString("🌅 *Good Morning — MarketBell Team!*\n\n")
	fmt.Fprintf(&b, "📅 %s\n\n", util.FormatLongDate(now))
	b.WriteString("Today's market sessions:\n")
	b.WriteString("🌏 Tokyo:    09:00 – 15:30 JST\n")
	b.WriteString("🌍 London:   08:00 – 16:30 GMT\n")
	b.WriteString("🌎 New York: 09:30 – 16:00 EST\n\n")
	b.WriteString("Stay focused, trade smart. Let's have a great day! 💼📈")
	return b.String()
}

// MarketOpen announces the start of a session, timestamped on its local clock.
func MarketOpen(def models.MarketDefinition, now time.Time) string {
	return fmt.Sprintf(
		"%s *MARKET OPEN — %s*\n\n🟢 The %s session has just opened!\n🕐 Local time: %s\n\nWatch for early momentum and liquidity. Good luck traders! 📊",
		def.Flag, def.Name, def.Name, util.FormatClockZone(now.In(def.Location)),
	)
}

// MarketClose announces the end of a session, timestamped on its local clock.
func MarketClose(def models.MarketDefinition, now time.Time) string {
	return fmt.Sprintf(
		"%s *MARKET CLOSE — %s*\n\n🔴 The %s session has closed.\n🕐 Local time: %s\n\nReview your trades and prepare for the next session. 📋",
		def.Flag, def.Name, def.Name, util.FormatClockZone(now.In(def.Location)),
	)
}

// Signals renders one line per symbol under a timestamp header. The caller
// passes the current time already in the New York zone; the header always
// labels it EST.
func Signals(signals []models.Signal, now time.Time) string {
	lines := make([]string, 0, len(signals))
	for _, s := range signals {
		if s.Direction == models.DirectionBullish {
			lines = append(lines, fmt.Sprintf("• *%s*: 📈 BULLISH ▲ %.2f%%", s.Symbol, s.Pct))
		} else {
			lines = append(lines, fmt.Sprintf("• *%s*: 📉 BEARISH ▼ %.2f%%", s.Symbol, s.Pct))
		}
	}
	header := fmt.Sprintf("📊 *MarketBell — Market Signal Update*\n🕐 %s EST\n\n", now.Format("15:04"))
	return header + strings.Join(lines, "\n") + signalsFooter
}

// News renders up to limit headlines. Entries with an empty headline are
// skipped but still count toward the cap.
func News(items []models.NewsItem, limit int) string {
	var b strings.Builder
	b.WriteString(newsHeader)
	for i, item := range items {
		if i >= limit {
			break
		}
		if item.Headline == "" {
			continue
		}
		fmt.Fprintf(&b, "• %s\n  _— %s_\n\n", item.Headline, item.Source)
	}
	return b.String()
}

// Events returns the reminder for the given day. The second return is false
// on weekends, when no reminder goes out. The caller passes the current time
// already in the New York zone.
func Events(now time.Time) (string, bool) {
	body, ok := weekdayEvents[now.Weekday()]
	if !ok {
		return "", false
	}
	return fmt.Sprintf(
		"⚠️ *High Impact Events Today — %s*\n\n%s\n\n_Stay alert — these can cause high volatility!_ 📉📈",
		now.Weekday().String(), body,
	), true
}

// StartReply lists the notifications a subscribed chat receives.
func StartReply() string {
	return "👋 *MarketBell Trading Bot is active!*\n\n" +
		"You will receive:\n" +
		"🌅 Daily Good Morning at 6:00 AM\n" +
		"🟢 Market Open alerts\n" +
		"🔴 Market Close alerts\n" +
		"📊 Bullish/Bearish signals\n" +
		"📰 Breaking financial news\n" +
		"⚠️ High impact event reminders\n\n" +
		"Use /status to check current market sessions."
}

// Status summarizes every session with its open state and local clock.
func Status(statuses []models.SessionStatus) string {
	var b strings.Builder
	b.WriteString(statusHeader)
	for _, s := range statuses {
		state := "🔴 CLOSED"
		if s.IsOpen {
			state = "🟢 OPEN"
		}
		fmt.Fprintf(&b, "%s *%s*: %s\n   Local: %s\n\n", s.Flag, s.Name, state, s.LocalTime)
	}
	return b.String()
}
