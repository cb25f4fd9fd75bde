package waves

import "sync"

// StaticHost is a Host with explicitly set sizes, used for headless
// rendering and by front-ends that learn their size from events.
type StaticHost struct {
	mu        sync.Mutex
	container [2]int
	viewport  [2]int
	next      int
	listeners map[int]func()
}

// NewStaticHost returns a host whose container and viewport are both w x h.
func NewStaticHost(w, h int) *StaticHost {
	return &StaticHost{
		container: [2]int{w, h},
		viewport:  [2]int{w, h},
		listeners: make(map[int]func()),
	}
}

func (h *StaticHost) ContainerSize() (int, int) {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.container[0], h.container[1]
}

func (h *StaticHost) ViewportSize() (int, int) {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.viewport[0], h.viewport[1]
}

func (h *StaticHost) OnResize(fn func()) func() {
	h.mu.Lock()
	defer h.mu.Unlock()
	id := h.next
	h.next++
	h.listeners[id] = fn
	return func() {
		h.mu.Lock()
		defer h.mu.Unlock()
		delete(h.listeners, id)
	}
}

// Listeners reports how many resize listeners are registered.
func (h *StaticHost) Listeners() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.listeners)
}

// SetContainer changes the container size without notifying listeners.
func (h *StaticHost) SetContainer(w, height int) {
	h.mu.Lock()
	h.container = [2]int{w, height}
	h.mu.Unlock()
}

// Resize changes the viewport (and container) size and notifies listeners.
func (h *StaticHost) Resize(w, height int) {
	h.mu.Lock()
	h.viewport = [2]int{w, height}
	h.container = [2]int{w, height}
	fns := make([]func(), 0, len(h.listeners))
	for _, fn := range h.listeners {
		fns = append(fns, fn)
	}
	h.mu.Unlock()

	for _, fn := range fns {
		fn()
	}
}
