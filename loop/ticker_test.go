package loop

import (
	"testing"
	"time"
)

func TestDueFiresOnlyAfterInterval(t *testing.T) {
	start := time.Unix(0, 0)
	tk := NewTicker(200*time.Millisecond, start)

	if tk.Due(start.Add(100 * time.Millisecond)) {
		t.Error("fired before the interval elapsed")
	}
	if !tk.Due(start.Add(200 * time.Millisecond)) {
		t.Error("did not fire once the interval elapsed")
	}
	// The fire advanced the ticker; it must not fire again immediately.
	if tk.Due(start.Add(250 * time.Millisecond)) {
		t.Error("fired twice within one interval")
	}
	if !tk.Due(start.Add(400 * time.Millisecond)) {
		t.Error("did not fire on the next interval")
	}
}

func TestIndependentCadences(t *testing.T) {
	start := time.Unix(0, 0)
	move := NewTicker(200*time.Millisecond, start)
	countdown := NewTicker(time.Second, start)

	moves, countdowns := 0, 0
	for ms := 10; ms <= 1000; ms += 10 {
		now := start.Add(time.Duration(ms) * time.Millisecond)
		if move.Due(now) {
			moves++
		}
		if countdown.Due(now) {
			countdowns++
		}
	}

	if moves != 5 {
		t.Errorf("movement ticks in 1s = %d, want 5", moves)
	}
	if countdowns != 1 {
		t.Errorf("countdown ticks in 1s = %d, want 1", countdowns)
	}
}
