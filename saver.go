package entitysdk

import (
	"log"
	"sync"
	"time"

	"go.uber.org/atomic"
)

// ──────────────────────────────────────────────
// Saver — debounced persistence writes
// ──────────────────────────────────────────────

// DefaultSaveDebounce is the coalescing window for persistence writes.
const DefaultSaveDebounce = 500 * time.Millisecond

// Saver coalesces rapid successive writes into one flush. Callers mark
// state dirty after each mutation; the flush function runs once the writes
// go quiet. Close flushes synchronously so no write is lost on a normal
// shutdown.
type Saver struct {
	mu       sync.Mutex
	timer    *time.Timer
	interval time.Duration
	flush    func()
	pending  atomic.Bool
	closed   atomic.Bool
}

// NewSaver creates a Saver with the given debounce interval. An interval
// <= 0 uses DefaultSaveDebounce.
func NewSaver(interval time.Duration, flush func()) *Saver {
	if interval <= 0 {
		interval = DefaultSaveDebounce
	}
	return &Saver{interval: interval, flush: flush}
}

// Mark schedules a flush after the debounce interval, resetting the window
// if one is already scheduled.
func (s *Saver) Mark() {
	if s.closed.Load() {
		return
	}
	s.pending.Store(true)
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.timer != nil {
		s.timer.Stop()
	}
	s.timer = time.AfterFunc(s.interval, s.fire)
}

func (s *Saver) fire() {
	if !s.pending.Swap(false) {
		return
	}
	s.flush()
}

// Flush runs the flush function immediately if a write is pending.
func (s *Saver) Flush() {
	s.mu.Lock()
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
	s.mu.Unlock()
	s.fire()
}

// Close flushes any pending write and stops the saver.
func (s *Saver) Close() {
	if s.closed.Swap(true) {
		return
	}
	s.Flush()
	log.Printf("[Saver] closed")
}
