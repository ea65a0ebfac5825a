package telegram

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"MarketBell/internal/domain/models"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return New("test-token", srv.URL, 5*time.Second, 2*time.Second)
}

func TestSend(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/bottest-token/sendMessage" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if r.Method != http.MethodPost {
			t.Errorf("method = %s, want POST", r.Method)
		}
		var req tgSendRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Fatalf("decode request: %v", err)
		}
		if req.ChatID != "@markets" {
			t.Errorf("chat_id = %q, want @markets", req.ChatID)
		}
		if req.Text != "hello" {
			t.Errorf("text = %q, want hello", req.Text)
		}
		if req.ParseMode != "Markdown" {
			t.Errorf("parse_mode = %q, want Markdown", req.ParseMode)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"ok":true,"result":{"message_id":1}}`))
	})

	msg := &models.Message{ChatID: "@markets", Text: "hello", ParseMode: models.ParseModeMarkdown}
	if err := c.Send(context.Background(), msg); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestSendAPIRejection(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"ok":false,"description":"Bad Request: chat not found"}`))
	})

	err := c.Send(context.Background(), &models.Message{ChatID: "@nope", Text: "x"})
	if err == nil {
		t.Fatal("expected error on ok=false")
	}
	if !strings.Contains(err.Error(), "chat not found") {
		t.Errorf("error must carry the API description, got %v", err)
	}
}

func TestSendServerError(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "gateway timeout", http.StatusGatewayTimeout)
	})

	if err := c.Send(context.Background(), &models.Message{ChatID: "@markets", Text: "x"}); err == nil {
		t.Fatal("expected error on 504")
	}
}

func TestUpdates(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/bottest-token/getUpdates" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if got := r.URL.Query().Get("offset"); got != "42" {
			t.Errorf("offset = %q, want 42", got)
		}
		if got := r.URL.Query().Get("timeout"); got != "2" {
			t.Errorf("timeout = %q, want 2", got)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"ok":true,"result":[
			{"update_id":42,"message":{"chat":{"id":1001},"text":"/status"}},
			{"update_id":43,"edited_message":{"chat":{"id":1001},"text":"edit"}},
			{"update_id":44,"message":{"chat":{"id":1002},"text":"/start"}}
		]}`))
	})

	updates, err := c.Updates(context.Background(), 42)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(updates) != 3 {
		t.Fatalf("got %d updates, want 3", len(updates))
	}
	if updates[0].ID != 42 || updates[0].ChatID != 1001 || updates[0].Text != "/status" {
		t.Errorf("unexpected first update: %+v", updates[0])
	}
	// Non-message updates still appear so the offset can advance past them.
	if updates[1].ID != 43 || updates[1].Text != "" {
		t.Errorf("unexpected second update: %+v", updates[1])
	}
	if updates[2].ChatID != 1002 || updates[2].Text != "/start" {
		t.Errorf("unexpected third update: %+v", updates[2])
	}
}

func TestUpdatesOmitsZeroOffset(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Has("offset") {
			t.Errorf("offset must be omitted on first poll, got %q", r.URL.Query().Get("offset"))
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"ok":true,"result":[]}`))
	})

	updates, err := c.Updates(context.Background(), 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(updates) != 0 {
		t.Errorf("got %d updates, want 0", len(updates))
	}
}

func TestUpdatesAPIRejection(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"ok":false,"description":"Unauthorized"}`))
	})

	if _, err := c.Updates(context.Background(), 0); err == nil || !strings.Contains(err.Error(), "Unauthorized") {
		t.Fatalf("expected Unauthorized error, got %v", err)
	}
}
