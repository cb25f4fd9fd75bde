package waves

import (
	"sort"
	"sync"
	"time"

	"github.com/jonboulle/clockwork"
)

// DefaultFrameInterval approximates a 60 Hz display.
const DefaultFrameInterval = time.Second / 60

// ClockScheduler fires frames after a fixed interval on a clockwork clock.
type ClockScheduler struct {
	mu       sync.Mutex
	clock    clockwork.Clock
	interval time.Duration
	next     FrameHandle
	timers   map[FrameHandle]clockwork.Timer
}

// NewClockScheduler returns a scheduler firing every interval. A nil clock
// means the real clock.
func NewClockScheduler(clock clockwork.Clock, interval time.Duration) *ClockScheduler {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	if interval <= 0 {
		interval = DefaultFrameInterval
	}
	return &ClockScheduler{
		clock:    clock,
		interval: interval,
		timers:   make(map[FrameHandle]clockwork.Timer),
	}
}

func (s *ClockScheduler) RequestFrame(fn func()) FrameHandle {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.next++
	h := s.next
	s.timers[h] = s.clock.AfterFunc(s.interval, func() {
		s.mu.Lock()
		_, live := s.timers[h]
		delete(s.timers, h)
		s.mu.Unlock()
		if live {
			fn()
		}
	})
	return h
}

func (s *ClockScheduler) CancelFrame(h FrameHandle) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if t, ok := s.timers[h]; ok {
		t.Stop()
		delete(s.timers, h)
	}
}

// Pending reports how many frames are scheduled.
func (s *ClockScheduler) Pending() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.timers)
}

// ManualScheduler runs frames only when Step is called. Front-ends with
// their own event loop call Step from it; headless rendering calls it in a
// loop.
type ManualScheduler struct {
	mu      sync.Mutex
	next    FrameHandle
	pending map[FrameHandle]func()
}

func NewManualScheduler() *ManualScheduler {
	return &ManualScheduler{pending: make(map[FrameHandle]func())}
}

func (s *ManualScheduler) RequestFrame(fn func()) FrameHandle {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.next++
	s.pending[s.next] = fn
	return s.next
}

func (s *ManualScheduler) CancelFrame(h FrameHandle) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.pending, h)
}

// Step runs the frames pending at call time, oldest first, and returns how
// many ran. Frames requested by those callbacks wait for the next Step.
func (s *ManualScheduler) Step() int {
	s.mu.Lock()
	handles := make([]FrameHandle, 0, len(s.pending))
	for h := range s.pending {
		handles = append(handles, h)
	}
	sort.Slice(handles, func(i, j int) bool { return handles[i] < handles[j] })
	fns := make([]func(), 0, len(handles))
	for _, h := range handles {
		fns = append(fns, s.pending[h])
		delete(s.pending, h)
	}
	s.mu.Unlock()

	for _, fn := range fns {
		fn()
	}
	return len(fns)
}

// Pending reports how many frames are waiting.
func (s *ManualScheduler) Pending() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.pending)
}
