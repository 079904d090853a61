package core

import (
	"math"
	"testing"
	"time"
)

func TestFrameClockDelta(t *testing.T) {
	base := time.Unix(1000, 0)
	current := base
	clock := NewFrameClock(time.Second)
	clock.now = func() time.Time { return current }

	if got := clock.Delta(); got != 0 {
		t.Fatalf("first delta should be zero, got %f", got)
	}

	current = current.Add(50 * time.Millisecond)
	if got := clock.Delta(); math.Abs(got-0.05) > 1e-9 {
		t.Fatalf("expected 0.05s, got %f", got)
	}

	current = current.Add(5 * time.Second)
	if got := clock.Delta(); got != 1 {
		t.Fatalf("expected clamp to 1s, got %f", got)
	}

	clock.Reset()
	current = current.Add(time.Second)
	if got := clock.Delta(); got != 0 {
		t.Fatalf("delta after reset should be zero, got %f", got)
	}
}
