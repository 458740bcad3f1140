package particles

import "sync"

// Hub is a Host that fans events out to registered listeners.
type Hub struct {
	mu      sync.Mutex
	nextID  int
	pointer map[int]func(x, y float64)
	resize  map[int]func(width, height float64)
}

var _ Host = (*Hub)(nil)

func NewHub() *Hub {
	return &Hub{
		pointer: map[int]func(x, y float64){},
		resize:  map[int]func(width, height float64){},
	}
}

func (h *Hub) OnPointerMove(fn func(x, y float64)) func() {
	h.mu.Lock()
	defer h.mu.Unlock()
	id := h.nextID
	h.nextID++
	h.pointer[id] = fn
	return func() {
		h.mu.Lock()
		defer h.mu.Unlock()
		delete(h.pointer, id)
	}
}

func (h *Hub) OnResize(fn func(width, height float64)) func() {
	h.mu.Lock()
	defer h.mu.Unlock()
	id := h.nextID
	h.nextID++
	h.resize[id] = fn
	return func() {
		h.mu.Lock()
		defer h.mu.Unlock()
		delete(h.resize, id)
	}
}

func (h *Hub) PointerMove(x, y float64) {
	for _, fn := range h.snapshotPointer() {
		fn(x, y)
	}
}

func (h *Hub) Resize(width, height float64) {
	for _, fn := range h.snapshotResize() {
		fn(width, height)
	}
}

// Listeners reports how many pointer and resize listeners are registered.
func (h *Hub) Listeners() (pointer, resize int) {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.pointer), len(h.resize)
}

func (h *Hub) snapshotPointer() []func(x, y float64) {
	h.mu.Lock()
	defer h.mu.Unlock()
	out := make([]func(x, y float64), 0, len(h.pointer))
	for _, fn := range h.pointer {
		out = append(out, fn)
	}
	return out
}

func (h *Hub) snapshotResize() []func(width, height float64) {
	h.mu.Lock()
	defer h.mu.Unlock()
	out := make([]func(width, height float64), 0, len(h.resize))
	for _, fn := range h.resize {
		out = append(out, fn)
	}
	return out
}
