package form

import (
	"context"
	"sync"
	"time"

	"github.com/James202017/real-estate-bots/core/logger"

	"log/slog"
)

// Session is one chat's in-progress pass through a form.
type Session struct {
	ID      int64
	Cursor  int
	Answers Answers
	Touched time.Time
}

// slot carries the per-session lock. It outlives the session itself so two
// events for the same id are never applied concurrently, even around
// creation and removal.
type slot struct {
	mu   sync.Mutex
	sess *Session
	dead bool
}

// Store owns all sessions. Events for one session id are serialized through
// the slot mutex; distinct ids proceed in parallel.
type Store struct {
	mu    sync.RWMutex
	slots map[int64]*slot
}

// NewStore constructs an empty in-memory session store.
func NewStore() *Store {
	return &Store{slots: make(map[int64]*slot)}
}

func (s *Store) slotFor(id int64) *slot {
	s.mu.RLock()
	sl, ok := s.slots[id]
	s.mu.RUnlock()
	if ok {
		return sl
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if sl, ok = s.slots[id]; ok {
		return sl
	}
	sl = &slot{}
	s.slots[id] = sl
	return sl
}

// Transact runs fn with the session for id (nil when the conversation has
// not started) while holding the per-session lock. The returned session
// replaces the stored one; returning nil removes it. The whole
// read-modify-write cycle is atomic with respect to other events on the
// same id.
func (s *Store) Transact(id int64, fn func(sess *Session) *Session) {
	for {
		sl := s.slotFor(id)
		sl.mu.Lock()
		if sl.dead {
			// Evicted between lookup and lock; retry with a fresh slot.
			sl.mu.Unlock()
			continue
		}
		next := fn(sl.sess)
		if next != nil {
			next.Touched = time.Now()
		}
		sl.sess = next
		sl.mu.Unlock()
		return
	}
}

// Peek returns a copy of the session for id, if one exists. Absence is not
// an error: it means the conversation has not started.
func (s *Store) Peek(id int64) (Session, bool) {
	s.mu.RLock()
	sl, ok := s.slots[id]
	s.mu.RUnlock()
	if !ok {
		return Session{}, false
	}
	sl.mu.Lock()
	defer sl.mu.Unlock()
	if sl.sess == nil {
		return Session{}, false
	}
	return *sl.sess, true
}

// Remove drops the session for id, if any.
func (s *Store) Remove(id int64) {
	s.Transact(id, func(*Session) *Session { return nil })
}

// Len reports the number of active sessions.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	n := 0
	for _, sl := range s.slots {
		sl.mu.Lock()
		if sl.sess != nil {
			n++
		}
		sl.mu.Unlock()
	}
	return n
}

// Sweep evicts sessions idle longer than ttl and empty slots, returning the
// number of sessions dropped. Slots busy at sweep time are skipped and
// picked up on the next pass.
func (s *Store) Sweep(now time.Time, ttl time.Duration) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	dropped := 0
	for id, sl := range s.slots {
		if !sl.mu.TryLock() {
			continue
		}
		if sl.sess != nil && now.Sub(sl.sess.Touched) <= ttl {
			sl.mu.Unlock()
			continue
		}
		if sl.sess != nil {
			dropped++
		}
		sl.dead = true
		delete(s.slots, id)
		sl.mu.Unlock()
	}
	return dropped
}

// StartJanitor evicts abandoned sessions in the background until ctx is
// done. Without it every abandoned conversation would hold its entry
// forever.
func (s *Store) StartJanitor(ctx context.Context, ttl, every time.Duration) {
	if ttl <= 0 || every <= 0 {
		return
	}
	go func() {
		ticker := time.NewTicker(every)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case now := <-ticker.C:
				if dropped := s.Sweep(now, ttl); dropped > 0 {
					logger.Info(ctx, "form", "session.evicted",
						slog.String("status", "ok"),
						slog.Int("count", dropped),
					)
				}
			}
		}
	}()
}
