package models

import (
	"fmt"
	"time"
)

// ClockTime is a wall-clock time of day with minute resolution.
type ClockTime struct {
	Hour   int
	Minute int
}

// Minutes returns the offset from midnight in minutes.
func (c ClockTime) Minutes() int { return c.Hour*60 + c.Minute }

func (c ClockTime) String() string { return fmt.Sprintf("%02d:%02d", c.Hour, c.Minute) }

// MarketDefinition describes one trading session. The set of definitions is
// fixed for the process lifetime.
type MarketDefinition struct {
	Key      string
	Name     string // display name, includes the country flag
	Flag     string // globe glyph used in alert headers
	Zone     string // IANA zone name
	Location *time.Location
	Open     ClockTime
	Close    ClockTime
}

// SessionStatus is the derived open/closed view of one market at an instant.
type SessionStatus struct {
	Key       string `json:"key"`
	Name      string `json:"name"`
	Flag      string `json:"flag"`
	IsOpen    bool   `json:"is_open"`
	LocalTime string `json:"local_time"`
}
