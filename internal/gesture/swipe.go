package gesture

import "github.com/ayusman/mudra/internal/touch"

// SwipeRecognizer recognizes fast directional strokes. The verdict is made
// entirely at touch lift: the straight line from start to end must cover
// SwipeMinDistance within SwipeMaxDurationMs at SwipeMinVelocity or more,
// and the dominant direction must be in the recognizer's allow-list.
type SwipeRecognizer struct {
	core
	allowed map[Direction]bool
}

// NewSwipeRecognizer creates a swipe recognizer accepting the given
// directions. An empty allow-list accepts nothing.
func NewSwipeRecognizer(allowed []Direction, config Config, cb Callback) *SwipeRecognizer {
	set := make(map[Direction]bool, len(allowed))
	for _, d := range allowed {
		set[d] = true
	}
	t := TypeSwipeRight
	if len(allowed) > 0 {
		t = typeForDirection(allowed[0])
	}
	r := &SwipeRecognizer{
		core:    newCore(t, config),
		allowed: set,
	}
	r.callback = cb
	return r
}

func typeForDirection(d Direction) Type {
	switch d {
	case DirectionLeft:
		return TypeSwipeLeft
	case DirectionRight:
		return TypeSwipeRight
	case DirectionUp:
		return TypeSwipeUp
	case DirectionDown:
		return TypeSwipeDown
	}
	return TypeSwipeRight
}

// HandleTouch advances the swipe state machine with one touch event.
func (r *SwipeRecognizer) HandleTouch(ev touch.Event) {
	if !r.enabled {
		return
	}

	switch ev.Phase {
	case touch.PhaseBegan:
		p := ev.Primary()
		r.startTime = ev.Timestamp
		r.startPos = p.Point
		r.currentPos = p.Point
		r.touchCount = len(ev.Touches)
		r.state = StatePossible

	case touch.PhaseMoved:
		r.currentPos = ev.Primary().Point

	case touch.PhaseEnded:
		r.handleEnded(ev)

	case touch.PhaseCancelled:
		r.state = StateCancelled
		r.Reset()
	}
}

func (r *SwipeRecognizer) handleEnded(ev touch.Event) {
	if r.state != StatePossible {
		r.Reset()
		return
	}

	end := r.currentPos
	if len(ev.Touches) > 0 {
		end = ev.Touches[0].Point
	}

	// Step 1: distance and duration gates. A non-positive duration means
	// velocity is undefined, so the attempt fails.
	distance := r.startPos.Distance(end)
	durationMs := ev.Timestamp - r.startTime
	if distance < r.config.SwipeMinDistance || durationMs > r.config.SwipeMaxDurationMs || durationMs <= 0 {
		r.state = StateFailed
		r.Reset()
		return
	}

	// Step 2: velocity gate.
	seconds := float64(durationMs) / 1000.0
	velocity := touch.Point{
		X: (end.X - r.startPos.X) / seconds,
		Y: (end.Y - r.startPos.Y) / seconds,
	}
	if velocity.Magnitude() < r.config.SwipeMinVelocity {
		r.state = StateFailed
		r.Reset()
		return
	}

	// Step 3: direction gate. A disallowed direction is not a failure,
	// just not this recognizer's gesture.
	direction := DirectionFromVelocity(velocity.X, velocity.Y)
	if !r.allowed[direction] {
		r.Reset()
		return
	}

	r.gestureType = typeForDirection(direction)
	r.state = StateEnded
	r.emit(Data{Swipe: &SwipeData{
		Direction:     direction,
		Velocity:      velocity,
		StartPosition: r.startPos,
		EndPosition:   end,
	}}, ev.Timestamp)
	r.Reset()
}

// Reset returns the recognizer to possible.
func (r *SwipeRecognizer) Reset() {
	r.reset()
}

// Allowed reports whether the recognizer accepts the given direction.
func (r *SwipeRecognizer) Allowed(d Direction) bool {
	return r.allowed[d]
}
