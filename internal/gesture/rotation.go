package gesture

import (
	"math"

	"github.com/ayusman/mudra/internal/touch"
)

// RotationRecognizer recognizes two-finger rotate gestures. The angle
// between the touches is sampled with atan2; per-sample deltas are
// normalized across the ±π boundary, debounced by RotationMinAngleChange
// and accumulated into a running total. The same two-touch gating as
// pinch applies.
type RotationRecognizer struct {
	core
	initialAngle   float64
	previousAngle  float64
	totalRotation  float64
	lastUpdateTime int64
	lastCenter     touch.Point
}

// NewRotationRecognizer creates a rotation recognizer.
func NewRotationRecognizer(config Config, cb Callback) *RotationRecognizer {
	r := &RotationRecognizer{core: newCore(TypeRotation, config)}
	r.callback = cb
	return r
}

// touchAngle returns the atan2 angle of the segment between two touches.
func touchAngle(a, b touch.TouchPoint) float64 {
	return math.Atan2(b.Y-a.Y, b.X-a.X)
}

// normalizeDelta maps a raw angle difference into (-π, π], correcting a
// single wraparound at the ±π boundary. A sample jumping from +3.0 to
// -3.0 radians reads as a small positive rotation, not a near-2π spin.
func normalizeDelta(delta float64) float64 {
	if delta > math.Pi {
		delta -= 2 * math.Pi
	} else if delta <= -math.Pi {
		delta += 2 * math.Pi
	}
	return delta
}

// HandleTouch advances the rotation state machine with one touch event.
func (r *RotationRecognizer) HandleTouch(ev touch.Event) {
	if !r.enabled {
		return
	}

	if len(ev.Touches) != 2 {
		if r.state == StateBegan || r.state == StateChanged {
			r.forceEnd(ev.Timestamp)
		}
		return
	}

	t0, t1 := ev.Touches[0], ev.Touches[1]
	angle := touchAngle(t0, t1)
	center := touch.Midpoint(t0.Point, t1.Point)

	switch ev.Phase {
	case touch.PhaseBegan:
		r.initialAngle = angle
		r.previousAngle = angle
		r.totalRotation = 0
		r.lastCenter = center
		r.startTime = ev.Timestamp
		r.lastUpdateTime = ev.Timestamp
		r.touchCount = 2
		r.state = StateBegan
		r.emit(Data{Rotation: &RotationData{Angle: 0, Velocity: 0, Center: center}}, ev.Timestamp)

	case touch.PhaseMoved:
		if r.state != StateBegan && r.state != StateChanged {
			return
		}
		r.lastCenter = center
		delta := normalizeDelta(angle - r.previousAngle)
		if math.Abs(delta) < r.config.RotationMinAngleChange {
			return
		}
		r.totalRotation += delta
		velocity := 0.0
		if dt := ev.Timestamp - r.lastUpdateTime; dt > 0 {
			velocity = delta / (float64(dt) / 1000.0)
		}
		r.state = StateChanged
		r.emit(Data{Rotation: &RotationData{
			Angle:    r.totalRotation,
			Velocity: velocity,
			Center:   center,
		}}, ev.Timestamp)
		r.previousAngle = angle
		r.lastUpdateTime = ev.Timestamp

	case touch.PhaseEnded:
		if r.state == StateBegan || r.state == StateChanged {
			r.state = StateEnded
			r.emit(Data{Rotation: &RotationData{
				Angle:    r.totalRotation,
				Velocity: 0,
				Center:   center,
			}}, ev.Timestamp)
		}
		r.Reset()

	case touch.PhaseCancelled:
		r.state = StateCancelled
		r.Reset()
	}
}

// forceEnd terminates an active rotation at its accumulated angle.
func (r *RotationRecognizer) forceEnd(timestamp int64) {
	r.state = StateEnded
	r.emit(Data{Rotation: &RotationData{
		Angle:    r.totalRotation,
		Velocity: 0,
		Center:   r.lastCenter,
	}}, timestamp)
	r.Reset()
}

// Reset returns the recognizer to possible and zeroes the tracked angles.
func (r *RotationRecognizer) Reset() {
	r.reset()
	r.initialAngle = 0
	r.previousAngle = 0
	r.totalRotation = 0
	r.lastUpdateTime = 0
	r.lastCenter = touch.Point{}
}
