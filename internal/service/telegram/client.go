package telegram

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"MarketBell/internal/domain/models"
	xhttp "MarketBell/pkg/http"
)

// Client talks to the Telegram Bot API. It implements both Messenger for
// outbound sends and UpdateSource for the command long poll. Sends and polls
// use separate HTTP clients because the poll blocks up to pollTimeout on the
// server side.
type Client struct {
	token       string
	baseURL     string
	pollTimeout time.Duration

	client *xhttp.Client
	poller *xhttp.Client
}

// New creates a Telegram client. timeout bounds sendMessage calls;
// pollTimeout is the server-side getUpdates hold, with the poll client
// allowed 10 extra seconds for transport.
func New(token, baseURL string, timeout, pollTimeout time.Duration) *Client {
	return &Client{
		token:       token,
		baseURL:     baseURL,
		pollTimeout: pollTimeout,
		client:      xhttp.NewClient(xhttp.WithTimeout(timeout)),
		poller:      xhttp.NewClient(xhttp.WithTimeout(pollTimeout + 10*time.Second)),
	}
}

type tgResponse struct {
	OK          bool            `json:"ok"`
	Description string          `json:"description"`
	Result      json.RawMessage `json:"result"`
}

type tgSendRequest struct {
	ChatID    string `json:"chat_id"`
	Text      string `json:"text"`
	ParseMode string `json:"parse_mode,omitempty"`
}

type tgChat struct {
	ID int64 `json:"id"`
}

type tgMessage struct {
	Chat tgChat `json:"chat"`
	Text string `json:"text"`
}

type tgUpdate struct {
	UpdateID int64      `json:"update_id"`
	Message  *tgMessage `json:"message"`
}

func (c *Client) methodURL(method string) string {
	return fmt.Sprintf("%s/bot%s/%s", c.baseURL, c.token, method)
}

// Send delivers one message. A response with ok=false is an error carrying
// the API description.
func (c *Client) Send(ctx context.Context, msg *models.Message) error {
	var resp tgResponse
	err := c.client.SendAndParse(ctx, &xhttp.RequestOptions{
		Method: xhttp.MethodPost,
		URL:    c.methodURL("sendMessage"),
		Body: tgSendRequest{
			ChatID:    msg.ChatID,
			Text:      msg.Text,
			ParseMode: msg.ParseMode,
		},
	}, &resp)
	if err != nil {
		return fmt.Errorf("send message: %w", err)
	}
	if !resp.OK {
		return fmt.Errorf("send message: telegram: %s", resp.Description)
	}
	return nil
}

// Updates long-polls for new updates starting at offset. Offset zero omits
// the parameter so the first poll picks up the oldest unconfirmed update.
// Updates without a message body come back with an empty Text; callers must
// still advance the offset past them.
func (c *Client) Updates(ctx context.Context, offset int64) ([]models.Update, error) {
	params := map[string][]string{
		"timeout": {strconv.Itoa(int(c.pollTimeout / time.Second))},
	}
	if offset != 0 {
		params["offset"] = []string{strconv.FormatInt(offset, 10)}
	}

	var resp tgResponse
	err := c.poller.SendAndParse(ctx, &xhttp.RequestOptions{
		Method:      xhttp.MethodGet,
		URL:         c.methodURL("getUpdates"),
		QueryParams: params,
	}, &resp)
	if err != nil {
		return nil, fmt.Errorf("get updates: %w", err)
	}
	if !resp.OK {
		return nil, fmt.Errorf("get updates: telegram: %s", resp.Description)
	}

	var raw []tgUpdate
	if err := json.Unmarshal(resp.Result, &raw); err != nil {
		return nil, fmt.Errorf("get updates: decode: %w", err)
	}

	updates := make([]models.Update, 0, len(raw))
	for _, u := range raw {
		upd := models.Update{ID: u.UpdateID}
		if u.Message != nil {
			upd.ChatID = u.Message.Chat.ID
			upd.Text = u.Message.Text
		}
		updates = append(updates, upd)
	}
	return updates, nil
}
