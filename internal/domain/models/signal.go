package models

// Quote is a point-in-time price snapshot for one symbol, fetched fresh for
// every signal run.
type Quote struct {
	Symbol        string
	Current       float64
	PreviousClose float64
}

// Direction classifies a price move relative to the previous close.
type Direction string

const (
	DirectionBullish Direction = "BULLISH"
	DirectionBearish Direction = "BEARISH"
)

// Signal is the classified move for one symbol.
type Signal struct {
	Symbol    string
	Direction Direction
	Pct       float64 // absolute percent move, rounded to two decimals
}

// NewsItem is one headline from the general news feed. Only headline and
// source are rendered; items with an empty headline are dropped.
type NewsItem struct {
	Headline string
	Source   string
	URL      string
}
