package clock

import (
	"testing"
	"time"
)

func TestFrozen_AdvanceAndSet(t *testing.T) {
	t.Parallel()

	start := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	frozen := NewFrozen(start)

	if !frozen.Now().Equal(start) {
		t.Errorf("expected %v, got %v", start, frozen.Now())
	}

	frozen.Advance(90 * time.Minute)
	if want := start.Add(90 * time.Minute); !frozen.Now().Equal(want) {
		t.Errorf("expected %v, got %v", want, frozen.Now())
	}

	frozen.AdvanceDays(3)
	if want := start.Add(90 * time.Minute).AddDate(0, 0, 3); !frozen.Now().Equal(want) {
		t.Errorf("expected %v, got %v", want, frozen.Now())
	}

	frozen.Set(start)
	if !frozen.Now().Equal(start) {
		t.Errorf("expected reset to %v, got %v", start, frozen.Now())
	}
}

func TestSystem_TracksWallClock(t *testing.T) {
	t.Parallel()

	before := time.Now()
	got := System().Now()
	after := time.Now()

	if got.Before(before) || got.After(after) {
		t.Errorf("system clock reading %v outside [%v, %v]", got, before, after)
	}
}
