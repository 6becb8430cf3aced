package gesture

import "github.com/ayusman/mudra/internal/touch"

// Manager owns a set of recognizers and fans every touch event out to all
// of them. Recognizers never see each other's state; each one reaches its
// own verdict on the same stream. Fan-out order is fixed: taps, long
// presses, swipes, edge swipes, pinches, rotations, pans, construction
// order within each kind.
//
// A manager is not safe for concurrent use. Callers deliver one event at
// a time; add and remove are not expected mid-gesture.
type Manager struct {
	config Config

	taps        []*TapRecognizer
	longPresses []*LongPressRecognizer
	swipes      []*SwipeRecognizer
	edgeSwipes  []*EdgeSwipeRecognizer
	pinches     []*PinchRecognizer
	rotations   []*RotationRecognizer
	pans        []*PanRecognizer
}

// NewManager creates a manager whose recognizers all share one config.
func NewManager(config Config) *Manager {
	return &Manager{config: config}
}

// NewDefaultManager creates a manager carrying the standard recognizer
// complement — single, double and triple tap, long press, swipes in all
// directions, pinch, rotation, one-or-two-finger pan and all four edge
// swipes — every one routed to the same callback.
func NewDefaultManager(config Config, cb Callback) *Manager {
	m := NewManager(config)
	m.AddTapRecognizer(1, cb)
	m.AddTapRecognizer(2, cb)
	m.AddTapRecognizer(3, cb)
	m.AddLongPressRecognizer(cb)
	m.AddSwipeRecognizer([]Direction{DirectionLeft, DirectionRight, DirectionUp, DirectionDown}, cb)
	m.AddEdgeSwipeRecognizer(EdgeLeft, cb)
	m.AddEdgeSwipeRecognizer(EdgeRight, cb)
	m.AddEdgeSwipeRecognizer(EdgeTop, cb)
	m.AddEdgeSwipeRecognizer(EdgeBottom, cb)
	m.AddPinchRecognizer(cb)
	m.AddRotationRecognizer(cb)
	m.AddPanRecognizer(1, 2, cb)
	return m
}

// Config returns the shared recognizer configuration.
func (m *Manager) Config() Config {
	return m.config
}

// AddTapRecognizer registers a tap recognizer and returns its handle.
func (m *Manager) AddTapRecognizer(requiredTaps int, cb Callback) *TapRecognizer {
	r := NewTapRecognizer(requiredTaps, m.config, cb)
	m.taps = append(m.taps, r)
	return r
}

// AddLongPressRecognizer registers a long press recognizer and returns its handle.
func (m *Manager) AddLongPressRecognizer(cb Callback) *LongPressRecognizer {
	r := NewLongPressRecognizer(m.config, cb)
	m.longPresses = append(m.longPresses, r)
	return r
}

// AddSwipeRecognizer registers a swipe recognizer for the given directions
// and returns its handle.
func (m *Manager) AddSwipeRecognizer(allowed []Direction, cb Callback) *SwipeRecognizer {
	r := NewSwipeRecognizer(allowed, m.config, cb)
	m.swipes = append(m.swipes, r)
	return r
}

// AddEdgeSwipeRecognizer registers an edge swipe recognizer for one edge
// and returns its handle.
func (m *Manager) AddEdgeSwipeRecognizer(edge Edge, cb Callback) *EdgeSwipeRecognizer {
	r := NewEdgeSwipeRecognizer(edge, m.config, cb)
	m.edgeSwipes = append(m.edgeSwipes, r)
	return r
}

// AddPinchRecognizer registers a pinch recognizer and returns its handle.
func (m *Manager) AddPinchRecognizer(cb Callback) *PinchRecognizer {
	r := NewPinchRecognizer(m.config, cb)
	m.pinches = append(m.pinches, r)
	return r
}

// AddRotationRecognizer registers a rotation recognizer and returns its handle.
func (m *Manager) AddRotationRecognizer(cb Callback) *RotationRecognizer {
	r := NewRotationRecognizer(m.config, cb)
	m.rotations = append(m.rotations, r)
	return r
}

// AddPanRecognizer registers a pan recognizer for the given touch-count
// range and returns its handle.
func (m *Manager) AddPanRecognizer(minTouches, maxTouches int, cb Callback) *PanRecognizer {
	r := NewPanRecognizer(minTouches, maxTouches, m.config, cb)
	m.pans = append(m.pans, r)
	return r
}

// RemoveTapRecognizer removes a previously added tap recognizer.
func (m *Manager) RemoveTapRecognizer(r *TapRecognizer) {
	for i, existing := range m.taps {
		if existing == r {
			m.taps = append(m.taps[:i], m.taps[i+1:]...)
			return
		}
	}
}

// RemoveLongPressRecognizer removes a previously added long press recognizer.
func (m *Manager) RemoveLongPressRecognizer(r *LongPressRecognizer) {
	for i, existing := range m.longPresses {
		if existing == r {
			m.longPresses = append(m.longPresses[:i], m.longPresses[i+1:]...)
			return
		}
	}
}

// RemoveSwipeRecognizer removes a previously added swipe recognizer.
func (m *Manager) RemoveSwipeRecognizer(r *SwipeRecognizer) {
	for i, existing := range m.swipes {
		if existing == r {
			m.swipes = append(m.swipes[:i], m.swipes[i+1:]...)
			return
		}
	}
}

// RemoveEdgeSwipeRecognizer removes a previously added edge swipe recognizer.
func (m *Manager) RemoveEdgeSwipeRecognizer(r *EdgeSwipeRecognizer) {
	for i, existing := range m.edgeSwipes {
		if existing == r {
			m.edgeSwipes = append(m.edgeSwipes[:i], m.edgeSwipes[i+1:]...)
			return
		}
	}
}

// RemovePinchRecognizer removes a previously added pinch recognizer.
func (m *Manager) RemovePinchRecognizer(r *PinchRecognizer) {
	for i, existing := range m.pinches {
		if existing == r {
			m.pinches = append(m.pinches[:i], m.pinches[i+1:]...)
			return
		}
	}
}

// RemoveRotationRecognizer removes a previously added rotation recognizer.
func (m *Manager) RemoveRotationRecognizer(r *RotationRecognizer) {
	for i, existing := range m.rotations {
		if existing == r {
			m.rotations = append(m.rotations[:i], m.rotations[i+1:]...)
			return
		}
	}
}

// RemovePanRecognizer removes a previously added pan recognizer.
func (m *Manager) RemovePanRecognizer(r *PanRecognizer) {
	for i, existing := range m.pans {
		if existing == r {
			m.pans = append(m.pans[:i], m.pans[i+1:]...)
			return
		}
	}
}

// HandleTouch delivers one touch event to every recognizer. All emissions
// happen synchronously before HandleTouch returns.
func (m *Manager) HandleTouch(ev touch.Event) {
	for _, r := range m.taps {
		r.HandleTouch(ev)
	}
	for _, r := range m.longPresses {
		r.HandleTouch(ev)
	}
	for _, r := range m.swipes {
		r.HandleTouch(ev)
	}
	for _, r := range m.edgeSwipes {
		r.HandleTouch(ev)
	}
	for _, r := range m.pinches {
		r.HandleTouch(ev)
	}
	for _, r := range m.rotations {
		r.HandleTouch(ev)
	}
	for _, r := range m.pans {
		r.HandleTouch(ev)
	}
}

// Update drives the polling path of every long press recognizer. Hosts
// that deliver stationary phase events must not also call Update, or the
// activation could fire twice.
func (m *Manager) Update(now int64) {
	for _, r := range m.longPresses {
		r.Update(now, r.currentPos)
	}
}

// LongPresses returns the registered long press recognizers, for hosts
// driving the polling path themselves.
func (m *Manager) LongPresses() []*LongPressRecognizer {
	return m.longPresses
}

// ResetAll returns every recognizer to the possible state.
func (m *Manager) ResetAll() {
	for _, r := range m.taps {
		r.Reset()
	}
	for _, r := range m.longPresses {
		r.Reset()
	}
	for _, r := range m.swipes {
		r.Reset()
	}
	for _, r := range m.edgeSwipes {
		r.Reset()
	}
	for _, r := range m.pinches {
		r.Reset()
	}
	for _, r := range m.rotations {
		r.Reset()
	}
	for _, r := range m.pans {
		r.Reset()
	}
}

// Len returns the total number of registered recognizers.
func (m *Manager) Len() int {
	return len(m.taps) + len(m.longPresses) + len(m.swipes) + len(m.edgeSwipes) +
		len(m.pinches) + len(m.rotations) + len(m.pans)
}
