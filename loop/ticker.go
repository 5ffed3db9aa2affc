// Package loop converts wall-clock time into discrete simulation ticks so
// the game core never reads the clock itself.
package loop

import "time"

// Ticker fires on a fixed period.
type Ticker struct {
	interval time.Duration
	last     time.Time
}

func NewTicker(interval time.Duration, now time.Time) *Ticker {
	return &Ticker{
		interval: interval,
		last:     now,
	}
}

// Due reports whether at least one period has elapsed since the last fire
// and, when it has, advances the ticker to now.
func (t *Ticker) Due(now time.Time) bool {
	if now.Sub(t.last) < t.interval {
		return false
	}
	t.last = now
	return true
}
