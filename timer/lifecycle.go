package timer

import "sync"

// LifecycleListener receives foreground transitions of the host program.
type LifecycleListener interface {
	OnForegroundLost()
	OnForegroundGained()
}

// Lifecycle is a source of foreground transitions.
type Lifecycle interface {
	// Subscribe registers l and returns a function that removes it.
	Subscribe(l LifecycleListener) (unsubscribe func())
}

// ForegroundSignal tracks whether the program is in the foreground and
// notifies listeners on transitions only. Repeated reports of the same state
// are ignored. The zero value is not usable; use NewForegroundSignal.
type ForegroundSignal struct {
	listeners map[int]LifecycleListener
	mu        sync.Mutex
	nextID    int
	active    bool
}

// NewForegroundSignal returns a signal that starts in the foreground.
func NewForegroundSignal() *ForegroundSignal {
	return &ForegroundSignal{
		active:    true,
		listeners: make(map[int]LifecycleListener),
	}
}

// Subscribe implements Lifecycle.
func (s *ForegroundSignal) Subscribe(l LifecycleListener) func() {
	s.mu.Lock()
	id := s.nextID
	s.nextID++
	s.listeners[id] = l
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		delete(s.listeners, id)
		s.mu.Unlock()
	}
}

// Active reports whether the program is currently in the foreground.
func (s *ForegroundSignal) Active() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.active
}

// Set records the current foreground state.
func (s *ForegroundSignal) Set(active bool) {
	s.mu.Lock()
	if s.active == active {
		s.mu.Unlock()
		return
	}

	s.active = active

	listeners := make([]LifecycleListener, 0, len(s.listeners))
	for _, l := range s.listeners {
		listeners = append(listeners, l)
	}
	s.mu.Unlock()

	for _, l := range listeners {
		if active {
			l.OnForegroundGained()
		} else {
			l.OnForegroundLost()
		}
	}
}
