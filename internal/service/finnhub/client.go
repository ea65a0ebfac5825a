package finnhub

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"MarketBell/internal/domain/models"
	drepo "MarketBell/internal/domain/repository"
	xhttp "MarketBell/pkg/http"
)

// ErrInvalidQuote marks a 2xx quote response that lacks the current or
// previous close price. Callers skip the symbol instead of signalling on it.
var ErrInvalidQuote = errors.New("finnhub: quote missing price fields")

// Client implements MarketData over the Finnhub REST API.
type Client struct {
	apiKey  string
	baseURL string
	client  *xhttp.Client
}

// New creates a Finnhub MarketData client. Every request carries the API key
// as a token query parameter and is bounded by timeout.
func New(apiKey, baseURL string, timeout time.Duration) drepo.MarketData {
	return &Client{
		apiKey:  apiKey,
		baseURL: baseURL,
		client:  xhttp.NewClient(xhttp.WithTimeout(timeout)),
	}
}

type fhQuote struct {
	C  *float64 `json:"c"`  // current price
	Pc *float64 `json:"pc"` // previous close
}

type fhNewsItem struct {
	Headline string `json:"headline"`
	Source   string `json:"source"`
	URL      string `json:"url"`
}

// Quote fetches the latest quote for one symbol.
func (c *Client) Quote(ctx context.Context, symbol string) (*models.Quote, error) {
	var q fhQuote
	err := c.client.SendAndParse(ctx, &xhttp.RequestOptions{
		Method: xhttp.MethodGet,
		URL:    c.baseURL + "/quote",
		QueryParams: map[string][]string{
			"symbol": {symbol},
			"token":  {c.apiKey},
		},
	}, &q)
	if err != nil {
		return nil, fmt.Errorf("quote %s: %w", symbol, err)
	}
	if q.C == nil || q.Pc == nil {
		return nil, fmt.Errorf("quote %s: %w", symbol, ErrInvalidQuote)
	}
	return &models.Quote{Symbol: symbol, Current: *q.C, PreviousClose: *q.Pc}, nil
}

// News fetches up to max headlines from the general category. A 2xx body
// that is valid JSON but not an article list yields zero items, not an
// error.
func (c *Client) News(ctx context.Context, max int) ([]models.NewsItem, error) {
	var body []byte
	err := c.client.SendAndParse(ctx, &xhttp.RequestOptions{
		Method: xhttp.MethodGet,
		URL:    c.baseURL + "/news",
		QueryParams: map[string][]string{
			"category": {"general"},
			"token":    {c.apiKey},
		},
	}, &body)
	if err != nil {
		return nil, fmt.Errorf("news: %w", err)
	}

	var articles []fhNewsItem
	if err := json.Unmarshal(body, &articles); err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) {
			return nil, nil
		}
		return nil, fmt.Errorf("news: decode: %w", err)
	}

	if max >= 0 && len(articles) > max {
		articles = articles[:max]
	}
	items := make([]models.NewsItem, 0, len(articles))
	for _, a := range articles {
		items = append(items, models.NewsItem{Headline: a.Headline, Source: a.Source, URL: a.URL})
	}
	return items, nil
}
