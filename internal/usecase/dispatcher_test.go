package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"
	"unicode/utf8"

	"MarketBell/internal/service/ratelimit"
)

func newDispatcherEnv(t *testing.T, messenger *fakeMessenger, limiter *ratelimit.Limiter) (*Dispatcher, *recordingMetrics) {
	t.Helper()
	metrics := newRecordingMetrics()
	d := NewDispatcher(messenger, limiter, metrics, testLogger(t), "@markets")
	return d, metrics
}

func TestSendTruncatesLongText(t *testing.T) {
	messenger := &fakeMessenger{}
	d, _ := newDispatcherEnv(t, messenger, ratelimit.New(10, 0))

	long := strings.Repeat("a", 5000)
	if err := d.Send(context.Background(), "news", long); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(messenger.sent) != 1 {
		t.Fatalf("sent %d messages, want 1", len(messenger.sent))
	}
	if n := utf8.RuneCountInString(messenger.sent[0].Text); n != 4096 {
		t.Errorf("sent %d runes, want 4096", n)
	}
}

func TestSendDropsWhenRateLimited(t *testing.T) {
	messenger := &fakeMessenger{}
	d, metrics := newDispatcherEnv(t, messenger, ratelimit.New(1, 0))

	if err := d.Send(context.Background(), "signals", "first"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// The drop is silent toward the caller.
	if err := d.Send(context.Background(), "signals", "second"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(messenger.sent) != 1 {
		t.Fatalf("sent %d messages, want 1", len(messenger.sent))
	}
	if messenger.sent[0].Text != "first" {
		t.Errorf("wrong message delivered: %q", messenger.sent[0].Text)
	}
	if metrics.errors["rate_limited"] != 1 {
		t.Errorf("drop not counted: %v", metrics.errors)
	}
}

func TestSendReportsMessengerFailure(t *testing.T) {
	messenger := &fakeMessenger{err: errors.New("boom")}
	d, metrics := newDispatcherEnv(t, messenger, ratelimit.New(10, 0))

	err := d.Send(context.Background(), "morning", "hello")
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "dispatch morning") {
		t.Errorf("error must name the job: %v", err)
	}
	if metrics.errors["telegram_send"] != 1 {
		t.Errorf("send failure not counted: %v", metrics.errors)
	}
	if metrics.sent["morning"] != 0 {
		t.Errorf("failed send must not count as delivered: %v", metrics.sent)
	}
}

func TestReplyTargetsRequestingChat(t *testing.T) {
	messenger := &fakeMessenger{}
	d, metrics := newDispatcherEnv(t, messenger, ratelimit.New(10, 0))

	if err := d.Reply(context.Background(), 1001, "pong"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(messenger.sent) != 1 {
		t.Fatalf("sent %d messages, want 1", len(messenger.sent))
	}
	if messenger.sent[0].ChatID != "1001" {
		t.Errorf("chat = %q, want 1001", messenger.sent[0].ChatID)
	}
	if messenger.sent[0].ParseMode != "Markdown" {
		t.Errorf("parse mode = %q, want Markdown", messenger.sent[0].ParseMode)
	}
	if metrics.sent["command"] != 1 {
		t.Errorf("command send not counted: %v", metrics.sent)
	}
}

func TestChannelAndChatsHaveSeparateBuckets(t *testing.T) {
	messenger := &fakeMessenger{}
	d, _ := newDispatcherEnv(t, messenger, ratelimit.New(1, 0))

	if err := d.Send(context.Background(), "morning", "broadcast"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := d.Reply(context.Background(), 1001, "pong"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(messenger.sent) != 2 {
		t.Fatalf("sent %d messages, want 2", len(messenger.sent))
	}
}
