package clock

import (
	"testing"
	"time"
)

func TestClockPauseFreezesTime(t *testing.T) {
	c := New()
	c.Advance(100 * time.Millisecond)
	c.Pause()
	c.Advance(time.Second)
	if c.Now() != 100*time.Millisecond {
		t.Fatalf("Expected frozen time 100ms, got %v", c.Now())
	}
	c.Resume()
	c.Advance(50 * time.Millisecond)
	if c.Now() != 150*time.Millisecond {
		t.Fatalf("Expected 150ms, got %v", c.Now())
	}
}

func TestAfterFiresOnce(t *testing.T) {
	c := New()
	s := NewScheduler(c)
	calls := 0
	s.After(300*time.Millisecond, func() { calls++ })

	c.Advance(299 * time.Millisecond)
	s.Poll()
	if calls != 0 {
		t.Fatalf("Expected no call before due, got %d", calls)
	}
	c.Advance(time.Millisecond)
	s.Poll()
	c.Advance(time.Second)
	s.Poll()
	if calls != 1 {
		t.Fatalf("Expected exactly one call, got %d", calls)
	}
	if s.Len() != 0 {
		t.Errorf("Expected empty scheduler, got %d", s.Len())
	}
}

func TestEveryCatchesUpWithoutDrift(t *testing.T) {
	c := New()
	s := NewScheduler(c)
	var at []time.Duration
	s.Every(900*time.Millisecond, func() { at = append(at, c.Now()) })

	c.Advance(1000 * time.Millisecond)
	s.Poll()
	c.Advance(1000 * time.Millisecond)
	s.Poll()
	if len(at) != 2 {
		t.Fatalf("Expected 2 ticks by 2000ms, got %d", len(at))
	}
	id := s.Every(time.Second, func() {})
	due, ok := s.Due(id)
	if !ok || due != 3*time.Second {
		t.Errorf("Expected new timer due at 3s, got %v", due)
	}
}

func TestCancelStopsRepeatingTimer(t *testing.T) {
	c := New()
	s := NewScheduler(c)
	calls := 0
	var id TimerID
	id = s.Every(100*time.Millisecond, func() {
		calls++
		if calls == 2 {
			s.Cancel(id)
		}
	})
	for i := 0; i < 10; i++ {
		c.Advance(100 * time.Millisecond)
		s.Poll()
	}
	if calls != 2 {
		t.Fatalf("Expected timer to stop after cancelling itself, got %d calls", calls)
	}
	if s.Cancel(id) {
		t.Error("Expected second cancel to report false")
	}
}

func TestPollOrdersByDueThenInsertion(t *testing.T) {
	c := New()
	s := NewScheduler(c)
	var order []string
	s.After(200*time.Millisecond, func() { order = append(order, "late") })
	s.After(100*time.Millisecond, func() { order = append(order, "a") })
	s.After(100*time.Millisecond, func() { order = append(order, "b") })
	c.Advance(time.Second)
	s.Poll()
	want := []string{"a", "b", "late"}
	if len(order) != len(want) {
		t.Fatalf("Expected %v, got %v", want, order)
	}
	for i := range want {
		if order[i] != want[i] {
			t.Fatalf("Expected %v, got %v", want, order)
		}
	}
}

func TestPausedClockHoldsTimers(t *testing.T) {
	c := New()
	s := NewScheduler(c)
	fired := false
	s.After(50*time.Millisecond, func() { fired = true })
	c.Pause()
	c.Advance(time.Second)
	s.Poll()
	if fired {
		t.Fatal("timer must not fire while paused")
	}
}

func TestClear(t *testing.T) {
	c := New()
	s := NewScheduler(c)
	s.After(time.Millisecond, func() { t.Fatal("cleared timer fired") })
	s.Every(time.Millisecond, func() { t.Fatal("cleared timer fired") })
	s.Clear()
	c.Advance(time.Second)
	s.Poll()
}
