package models

// ParseModeMarkdown is the Telegram parse_mode used for all outbound text.
const ParseModeMarkdown = "Markdown"

// Message is an outbound notification. It exists only between composition
// and the send call.
type Message struct {
	ChatID    string
	Text      string
	ParseMode string
}

// Update is an inbound command extracted from the Telegram update envelope.
type Update struct {
	ID     int64
	ChatID int64
	Text   string
}
