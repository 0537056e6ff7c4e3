package form

import (
	"testing"
	"time"
)

func TestTransactCreatesUpdatesRemoves(t *testing.T) {
	s := NewStore()

	s.Transact(1, func(sess *Session) *Session {
		if sess != nil {
			t.Fatalf("fresh id has session: %+v", sess)
		}
		return &Session{ID: 1, Answers: make(Answers)}
	})
	if s.Len() != 1 {
		t.Fatalf("Len = %d, want 1", s.Len())
	}

	s.Transact(1, func(sess *Session) *Session {
		sess.Cursor = 2
		return sess
	})
	got, ok := s.Peek(1)
	if !ok || got.Cursor != 2 {
		t.Fatalf("Peek = %+v ok=%v", got, ok)
	}

	s.Remove(1)
	if _, ok := s.Peek(1); ok {
		t.Error("session survived Remove")
	}
	if s.Len() != 0 {
		t.Errorf("Len = %d after remove", s.Len())
	}
}

func TestPeekReturnsCopy(t *testing.T) {
	s := NewStore()
	s.Transact(1, func(*Session) *Session {
		return &Session{ID: 1, Answers: make(Answers)}
	})

	got, _ := s.Peek(1)
	got.Cursor = 99

	again, _ := s.Peek(1)
	if again.Cursor != 0 {
		t.Errorf("Peek exposes internal state: cursor = %d", again.Cursor)
	}
}

func TestTransactTouchesSession(t *testing.T) {
	s := NewStore()
	s.Transact(1, func(*Session) *Session {
		return &Session{ID: 1, Answers: make(Answers)}
	})
	first, _ := s.Peek(1)
	if first.Touched.IsZero() {
		t.Fatal("Touched not set on create")
	}

	s.Transact(1, func(sess *Session) *Session { return sess })
	second, _ := s.Peek(1)
	if second.Touched.Before(first.Touched) {
		t.Error("Touched went backwards")
	}
}

func TestSweepEvictsOnlyIdleSessions(t *testing.T) {
	s := NewStore()
	s.Transact(1, func(*Session) *Session {
		return &Session{ID: 1, Answers: make(Answers)}
	})
	s.Transact(2, func(*Session) *Session {
		return &Session{ID: 2, Answers: make(Answers)}
	})

	// Age the first session past the TTL by hand.
	s.Transact(1, func(sess *Session) *Session { return sess })
	s.mu.Lock()
	s.slots[1].sess.Touched = time.Now().Add(-time.Hour)
	s.mu.Unlock()

	dropped := s.Sweep(time.Now(), 30*time.Minute)
	if dropped != 1 {
		t.Fatalf("dropped = %d, want 1", dropped)
	}
	if _, ok := s.Peek(1); ok {
		t.Error("idle session survived sweep")
	}
	if _, ok := s.Peek(2); !ok {
		t.Error("fresh session evicted")
	}
}

func TestTransactAfterEvictionStartsFresh(t *testing.T) {
	s := NewStore()
	s.Transact(1, func(*Session) *Session {
		return &Session{ID: 1, Cursor: 3, Answers: make(Answers)}
	})
	s.Sweep(time.Now().Add(time.Hour), time.Minute)

	var sawNil bool
	s.Transact(1, func(sess *Session) *Session {
		sawNil = sess == nil
		return &Session{ID: 1, Answers: make(Answers)}
	})
	if !sawNil {
		t.Error("evicted session still visible to Transact")
	}
}
