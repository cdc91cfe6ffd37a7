package keyedlimit

import (
	"testing"
	"time"
)

func TestMemoryStore(t *testing.T) {
	now := time.Now()
	newStore := func(maxAttempts int, window time.Duration) (*memoryStore, *time.Time) {
		current := now
		s := &memoryStore{
			buckets:     make(map[string]*bucket),
			maxAttempts: maxAttempts,
			window:      window,
			now:         func() time.Time { return current },
		}
		return s, &current
	}

	t.Run("unknown key is not blocked", func(t *testing.T) {
		s, _ := newStore(3, time.Minute)
		if s.IsBlocked("k") {
			t.Error("expected unknown key to be unblocked")
		}
	})

	t.Run("blocks after max attempts within window", func(t *testing.T) {
		s, _ := newStore(3, time.Minute)
		s.Record("k")
		s.Record("k")
		if s.IsBlocked("k") {
			t.Error("expected key to be unblocked below the limit")
		}
		s.Record("k")
		if !s.IsBlocked("k") {
			t.Error("expected key to be blocked at the limit")
		}
	})

	t.Run("keys are independent", func(t *testing.T) {
		s, _ := newStore(1, time.Minute)
		s.Record("a")
		if s.IsBlocked("b") {
			t.Error("expected other keys to be unaffected")
		}
	})

	t.Run("window expiry unblocks", func(t *testing.T) {
		s, current := newStore(1, time.Minute)
		s.Record("k")
		if !s.IsBlocked("k") {
			t.Fatal("expected key to be blocked")
		}
		*current = now.Add(time.Minute + time.Second)
		if s.IsBlocked("k") {
			t.Error("expected key to be unblocked after the window")
		}
	})

	t.Run("record after expiry starts a fresh window", func(t *testing.T) {
		s, current := newStore(2, time.Minute)
		s.Record("k")
		s.Record("k")
		*current = now.Add(time.Minute + time.Second)
		s.Record("k")
		if s.IsBlocked("k") {
			t.Error("expected a fresh window with a single attempt")
		}
	})

	t.Run("reset clears the key", func(t *testing.T) {
		s, _ := newStore(1, time.Minute)
		s.Record("k")
		s.Reset("k")
		if s.IsBlocked("k") {
			t.Error("expected reset key to be unblocked")
		}
	})
}
