package market

import (
	"strings"
	"testing"
	"time"
)

func TestRegistryDefinitions(t *testing.T) {
	r := mustRegistry(t)
	defs := r.Definitions()
	if len(defs) != 3 {
		t.Fatalf("expected 3 markets, got %d", len(defs))
	}
	order := []string{"tokyo", "london", "newyork"}
	for i, key := range order {
		if defs[i].Key != key {
			t.Errorf("position %d: got %s, want %s", i, defs[i].Key, key)
		}
	}
}

func TestRegistryClocks(t *testing.T) {
	r := mustRegistry(t)

	ny := def(t, r, "newyork")
	if ny.Open.Hour != 9 || ny.Open.Minute != 30 {
		t.Errorf("newyork open %v", ny.Open)
	}
	if ny.Close.Hour != 16 || ny.Close.Minute != 0 {
		t.Errorf("newyork close %v", ny.Close)
	}
	if ny.Open.String() != "09:30" {
		t.Errorf("clock string %q", ny.Open.String())
	}
	if ny.Zone != "America/New_York" || ny.Location == nil {
		t.Errorf("newyork zone not resolved")
	}
}

func TestRegistryGetUnknown(t *testing.T) {
	r := mustRegistry(t)
	if _, ok := r.Get("sydney"); ok {
		t.Fatalf("unexpected market")
	}
}

func TestStatuses(t *testing.T) {
	r := mustRegistry(t)

	// Monday 14:00 UTC: Tokyo 23:00 (closed), London 14:00 (open), NY 09:00 (closed).
	at := time.Date(2025, 3, 3, 14, 0, 0, 0, time.UTC)
	statuses := Statuses(r, at)
	if len(statuses) != 3 {
		t.Fatalf("expected 3 statuses, got %d", len(statuses))
	}

	byKey := map[string]bool{}
	for _, s := range statuses {
		byKey[s.Key] = s.IsOpen
	}
	if byKey["tokyo"] || !byKey["london"] || byKey["newyork"] {
		t.Errorf("unexpected open set: %v", byKey)
	}

	for _, s := range statuses {
		if !strings.Contains(s.LocalTime, ":") {
			t.Errorf("%s local time %q", s.Key, s.LocalTime)
		}
	}
	if statuses[1].LocalTime != "14:00 GMT" {
		t.Errorf("london local time %q", statuses[1].LocalTime)
	}
}
