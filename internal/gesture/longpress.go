package gesture

import "github.com/ayusman/mudra/internal/touch"

// LongPressRecognizer recognizes a touch held in place for at least
// LongPressMinDurationMs. It emits began when the duration threshold is
// reached and ended when the touch lifts; movement past
// LongPressMaxMovement before activation fails the attempt silently.
//
// Activation is driven either by stationary phase events or by polling
// Update — hosts pick one delivery mode, never both, or the transition
// could fire twice.
type LongPressRecognizer struct {
	core
	pressing bool
}

// NewLongPressRecognizer creates a long press recognizer.
func NewLongPressRecognizer(config Config, cb Callback) *LongPressRecognizer {
	r := &LongPressRecognizer{core: newCore(TypeLongPress, config)}
	r.callback = cb
	return r
}

// HandleTouch advances the long press state machine with one touch event.
func (r *LongPressRecognizer) HandleTouch(ev touch.Event) {
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
		r.pressing = true

	case touch.PhaseMoved:
		p := ev.Primary()
		r.currentPos = p.Point
		// Movement only disqualifies before activation. Once the press
		// has begun, finger drift is tolerated.
		if r.pressing && r.state == StatePossible &&
			p.Distance(r.startPos) > r.config.LongPressMaxMovement {
			r.state = StateFailed
		}

	case touch.PhaseStationary:
		r.tryActivate(ev.Timestamp, r.currentPos)

	case touch.PhaseEnded:
		if r.state == StateBegan {
			pos := r.currentPos
			if len(ev.Touches) > 0 {
				pos = ev.Touches[0].Point
			}
			r.state = StateEnded
			r.emit(Data{LongPress: &LongPressData{
				Position:   pos,
				DurationMs: ev.Timestamp - r.startTime,
			}}, ev.Timestamp)
		}
		r.Reset()

	case touch.PhaseCancelled:
		r.state = StateCancelled
		r.Reset()
	}
}

// Update is the polling variant of the stationary transition, for hosts
// that cannot deliver stationary phase events. It is a no-op unless a
// press is down and still possible. Callers must not run it concurrently
// with HandleTouch on the same recognizer.
func (r *LongPressRecognizer) Update(now int64, pos touch.Point) {
	if !r.enabled || !r.pressing || r.state != StatePossible {
		return
	}
	r.currentPos = pos
	r.tryActivate(now, pos)
}

func (r *LongPressRecognizer) tryActivate(now int64, pos touch.Point) {
	if !r.pressing || r.state != StatePossible {
		return
	}
	elapsed := now - r.startTime
	if elapsed < r.config.LongPressMinDurationMs {
		return
	}
	r.state = StateBegan
	r.emit(Data{LongPress: &LongPressData{Position: pos, DurationMs: elapsed}}, now)
}

// Reset returns the recognizer to possible and forgets the current press.
func (r *LongPressRecognizer) Reset() {
	r.reset()
	r.pressing = false
}

// Pressing reports whether a touch is currently down for this recognizer.
func (r *LongPressRecognizer) Pressing() bool {
	return r.pressing
}

// StartPosition returns the origin of the current press. Meaningful only
// while Pressing reports true.
func (r *LongPressRecognizer) StartPosition() touch.Point {
	return r.startPos
}
