package gesture

import "github.com/ayusman/mudra/internal/touch"

// PanRecognizer recognizes sustained drags with a touch count inside
// [minTouches, maxTouches]. Position is the arithmetic mean of the active
// touches. A pan activates only after PanMinDistance of travel, which
// keeps short taps from registering as tiny pans; leaving the touch-count
// range mid-gesture ends the pan at its last known position.
type PanRecognizer struct {
	core
	minTouches int
	maxTouches int

	tracking       bool
	previousPos    touch.Point
	lastUpdateTime int64
}

// NewPanRecognizer creates a pan recognizer for the given touch-count range.
func NewPanRecognizer(minTouches, maxTouches int, config Config, cb Callback) *PanRecognizer {
	r := &PanRecognizer{
		core:       newCore(TypePan, config),
		minTouches: minTouches,
		maxTouches: maxTouches,
	}
	r.callback = cb
	return r
}

// HandleTouch advances the pan state machine with one touch event.
func (r *PanRecognizer) HandleTouch(ev touch.Event) {
	if !r.enabled {
		return
	}

	n := len(ev.Touches)
	if n < r.minTouches || n > r.maxTouches {
		if r.state == StateBegan || r.state == StateChanged {
			r.forceEnd(ev.Timestamp)
		}
		return
	}

	pos := touch.Mean(ev.Touches)

	switch ev.Phase {
	case touch.PhaseBegan:
		r.startPos = pos
		r.previousPos = pos
		r.currentPos = pos
		r.startTime = ev.Timestamp
		r.lastUpdateTime = ev.Timestamp
		r.touchCount = n
		r.state = StatePossible
		r.tracking = true

	case touch.PhaseMoved:
		if !r.tracking {
			return
		}
		r.currentPos = pos
		if r.state == StatePossible {
			// Not a pan until the mean position travels PanMinDistance.
			if pos.Distance(r.startPos) < r.config.PanMinDistance {
				return
			}
			r.state = StateBegan
			r.emit(Data{Pan: &PanData{
				Translation: pos.Sub(r.startPos),
				Velocity:    touch.Point{},
				Position:    pos,
			}}, ev.Timestamp)
			r.previousPos = pos
			r.lastUpdateTime = ev.Timestamp
			return
		}
		if r.state == StateBegan || r.state == StateChanged {
			r.state = StateChanged
			r.emit(Data{Pan: &PanData{
				Translation: pos.Sub(r.startPos),
				Velocity:    r.velocitySince(pos, ev.Timestamp),
				Position:    pos,
			}}, ev.Timestamp)
			r.previousPos = pos
			r.lastUpdateTime = ev.Timestamp
		}

	case touch.PhaseEnded:
		if r.state == StateBegan || r.state == StateChanged {
			r.state = StateEnded
			r.emit(Data{Pan: &PanData{
				Translation: pos.Sub(r.startPos),
				Velocity:    r.velocitySince(pos, ev.Timestamp),
				Position:    pos,
			}}, ev.Timestamp)
		}
		r.Reset()

	case touch.PhaseCancelled:
		r.state = StateCancelled
		r.Reset()
	}
}

// velocitySince computes points-per-second velocity from the previous
// sample. A non-positive interval yields zero velocity.
func (r *PanRecognizer) velocitySince(pos touch.Point, timestamp int64) touch.Point {
	dt := timestamp - r.lastUpdateTime
	if dt <= 0 {
		return touch.Point{}
	}
	seconds := float64(dt) / 1000.0
	return touch.Point{
		X: (pos.X - r.previousPos.X) / seconds,
		Y: (pos.Y - r.previousPos.Y) / seconds,
	}
}

// forceEnd terminates an active pan at its last known mean position.
func (r *PanRecognizer) forceEnd(timestamp int64) {
	r.state = StateEnded
	r.emit(Data{Pan: &PanData{
		Translation: r.previousPos.Sub(r.startPos),
		Velocity:    touch.Point{},
		Position:    r.previousPos,
	}}, timestamp)
	r.Reset()
}

// Reset returns the recognizer to possible and stops tracking.
func (r *PanRecognizer) Reset() {
	r.reset()
	r.tracking = false
	r.previousPos = touch.Point{}
	r.lastUpdateTime = 0
}
