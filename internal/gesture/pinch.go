package gesture

import (
	"math"

	"github.com/ayusman/mudra/internal/touch"
)

// PinchRecognizer recognizes two-finger scale gestures. Scale is the ratio
// of the current finger distance to the distance at gesture start; updates
// are debounced by PinchMinScaleChange so sensor jitter does not flood the
// callback. Any event with a touch count other than two forcibly ends a
// pinch in progress.
type PinchRecognizer struct {
	core
	initialDistance  float64
	previousDistance float64
	lastUpdateTime   int64
	lastCenter       touch.Point
}

// NewPinchRecognizer creates a pinch recognizer.
func NewPinchRecognizer(config Config, cb Callback) *PinchRecognizer {
	r := &PinchRecognizer{core: newCore(TypePinch, config)}
	r.callback = cb
	return r
}

// HandleTouch advances the pinch state machine with one touch event.
func (r *PinchRecognizer) HandleTouch(ev touch.Event) {
	if !r.enabled {
		return
	}

	// Pinch is strictly a two-touch gesture: any other count ends an
	// active pinch at its last known scale and is otherwise ignored.
	if len(ev.Touches) != 2 {
		if r.state == StateBegan || r.state == StateChanged {
			r.forceEnd(ev.Timestamp)
		}
		return
	}

	t0, t1 := ev.Touches[0], ev.Touches[1]
	d := t0.Distance(t1.Point)
	center := touch.Midpoint(t0.Point, t1.Point)

	switch ev.Phase {
	case touch.PhaseBegan:
		r.initialDistance = d
		r.previousDistance = d
		r.lastCenter = center
		r.startTime = ev.Timestamp
		r.lastUpdateTime = ev.Timestamp
		r.touchCount = 2
		r.state = StateBegan
		r.emit(Data{Pinch: &PinchData{Scale: 1.0, Velocity: 0, Center: center}}, ev.Timestamp)

	case touch.PhaseMoved:
		if r.state != StateBegan && r.state != StateChanged {
			return
		}
		r.lastCenter = center
		if r.initialDistance <= 0 {
			return
		}
		delta := d - r.previousDistance
		if math.Abs(delta)/r.initialDistance < r.config.PinchMinScaleChange {
			return
		}
		velocity := 0.0
		if dt := ev.Timestamp - r.lastUpdateTime; dt > 0 {
			velocity = (delta / (float64(dt) / 1000.0)) / r.initialDistance
		}
		r.state = StateChanged
		r.emit(Data{Pinch: &PinchData{
			Scale:    d / r.initialDistance,
			Velocity: velocity,
			Center:   center,
		}}, ev.Timestamp)
		r.previousDistance = d
		r.lastUpdateTime = ev.Timestamp

	case touch.PhaseEnded:
		if r.state == StateBegan || r.state == StateChanged {
			scale := 1.0
			if r.initialDistance > 0 {
				scale = d / r.initialDistance
			}
			r.state = StateEnded
			r.emit(Data{Pinch: &PinchData{Scale: scale, Velocity: 0, Center: center}}, ev.Timestamp)
		}
		r.Reset()

	case touch.PhaseCancelled:
		r.state = StateCancelled
		r.Reset()
	}
}

// forceEnd terminates an active pinch at its last emitted scale.
func (r *PinchRecognizer) forceEnd(timestamp int64) {
	scale := 1.0
	if r.initialDistance > 0 {
		scale = r.previousDistance / r.initialDistance
	}
	r.state = StateEnded
	r.emit(Data{Pinch: &PinchData{Scale: scale, Velocity: 0, Center: r.lastCenter}}, timestamp)
	r.Reset()
}

// Reset returns the recognizer to possible and zeroes the tracked distances.
func (r *PinchRecognizer) Reset() {
	r.reset()
	r.initialDistance = 0
	r.previousDistance = 0
	r.lastUpdateTime = 0
	r.lastCenter = touch.Point{}
}
