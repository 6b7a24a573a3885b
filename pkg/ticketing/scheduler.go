package ticketing

import (
	"sync"
	"time"
)

// Scheduler runs delayed work keyed by channel. Pending work can be cancelled until it starts.
type Scheduler struct {
	mut     sync.Mutex
	timers  map[string]*time.Timer
	stopped bool
}

// NewScheduler creates a new scheduler.
func NewScheduler() *Scheduler {
	return &Scheduler{
		timers: make(map[string]*time.Timer),
	}
}

// Schedule runs fn after the delay. It returns false if work is already pending for the key or the scheduler
// has been stopped.
func (s *Scheduler) Schedule(key string, after time.Duration, fn func()) bool {
	s.mut.Lock()
	defer s.mut.Unlock()

	if s.stopped {
		return false
	}
	if _, ok := s.timers[key]; ok {
		return false
	}

	var t *time.Timer
	t = time.AfterFunc(after, func() {
		s.mut.Lock()
		if cur, ok := s.timers[key]; !ok || cur != t {
			s.mut.Unlock()
			return
		}
		delete(s.timers, key)
		s.mut.Unlock()

		fn()
	})
	s.timers[key] = t
	return true
}

// Pending reports whether work is waiting for the key.
func (s *Scheduler) Pending(key string) bool {
	s.mut.Lock()
	defer s.mut.Unlock()
	_, ok := s.timers[key]
	return ok
}

// Cancel stops the pending work for the key. It returns false if nothing was pending.
func (s *Scheduler) Cancel(key string) bool {
	s.mut.Lock()
	defer s.mut.Unlock()

	t, ok := s.timers[key]
	if !ok {
		return false
	}
	t.Stop()
	delete(s.timers, key)
	return true
}

// Stop cancels all pending work. Nothing can be scheduled afterwards.
func (s *Scheduler) Stop() {
	s.mut.Lock()
	defer s.mut.Unlock()

	for key, t := range s.timers {
		t.Stop()
		delete(s.timers, key)
	}
	s.stopped = true
}

// keyedMutex serializes work per key.
type keyedMutex struct {
	mut   sync.Mutex
	locks map[string]*refMutex
}

type refMutex struct {
	sync.Mutex
	refs int
}

func newKeyedMutex() *keyedMutex {
	return &keyedMutex{
		locks: make(map[string]*refMutex),
	}
}

// Lock locks the key and returns the function that unlocks it.
func (k *keyedMutex) Lock(key string) func() {
	k.mut.Lock()
	m, ok := k.locks[key]
	if !ok {
		m = new(refMutex)
		k.locks[key] = m
	}
	m.refs++
	k.mut.Unlock()

	m.Lock()
	return func() {
		m.Unlock()

		k.mut.Lock()
		m.refs--
		if m.refs == 0 {
			delete(k.locks, key)
		}
		k.mut.Unlock()
	}
}
