package particles

import "sync"

// Host delivers pointer and resize events. Each registration returns a
// function that removes it.
type Host interface {
	OnPointerMove(func(x, y float64)) (release func())
	OnResize(func(width, height float64)) (release func())
}

// Mount ties a simulator to a host until Stop is called.
type Mount struct {
	sim      *Simulator
	mu       sync.Mutex
	releases []func()
	stopped  bool
	once     sync.Once
}

func (s *Simulator) Mount(host Host) *Mount {
	m := &Mount{sim: s}
	m.releases = append(m.releases,
		host.OnPointerMove(func(x, y float64) {
			m.mu.Lock()
			defer m.mu.Unlock()
			if !m.stopped {
				s.PointerMoved(x, y)
			}
		}),
		host.OnResize(func(width, height float64) {
			m.mu.Lock()
			defer m.mu.Unlock()
			if !m.stopped {
				s.Resize(width, height)
			}
		}),
	)
	return m
}

// Frame steps the simulator; ok is false once the mount is stopped.
func (m *Mount) Frame() (Frame, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.stopped {
		return Frame{}, false
	}
	return m.sim.Step(), true
}

func (m *Mount) Active() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return !m.stopped
}

// Stop releases both host registrations. Calling it again does nothing.
func (m *Mount) Stop() {
	m.once.Do(func() {
		m.mu.Lock()
		m.stopped = true
		releases := m.releases
		m.releases = nil
		m.mu.Unlock()

		for _, release := range releases {
			if release != nil {
				release()
			}
		}
	})
}
