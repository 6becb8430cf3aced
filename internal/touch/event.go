package touch

// Phase represents the lifecycle phase of the touches in an event.
type Phase string

const (
	// PhaseBegan indicates touches that just made contact.
	PhaseBegan Phase = "began"
	// PhaseMoved indicates touches that changed position.
	PhaseMoved Phase = "moved"
	// PhaseStationary indicates touches held in place without movement.
	PhaseStationary Phase = "stationary"
	// PhaseEnded indicates touches lifted normally.
	PhaseEnded Phase = "ended"
	// PhaseCancelled indicates touches interrupted by the system.
	PhaseCancelled Phase = "cancelled"
)

// Valid reports whether p is one of the defined touch phases.
func (p Phase) Valid() bool {
	switch p {
	case PhaseBegan, PhaseMoved, PhaseStationary, PhaseEnded, PhaseCancelled:
		return true
	}
	return false
}

// TouchPoint represents a single finger contact at one instant.
// The ID stays stable across all events for one physical contact.
// Point is embedded so the JSON form stays flat: id, x, y, pressure, timestamp.
type TouchPoint struct {
	ID int `json:"id"`
	Point
	Pressure  float64 `json:"pressure"`
	Timestamp int64   `json:"timestamp"`
}

// Event represents a batch of touch points sharing one phase and timestamp.
// Events are produced by the host platform and never mutated by the engine.
type Event struct {
	Touches   []TouchPoint `json:"touches"`
	Phase     Phase        `json:"phase"`
	Timestamp int64        `json:"timestamp"`
}

// Primary returns the first touch in the batch, or a zero TouchPoint
// if the batch is empty. Single-touch recognizers track this one.
func (e Event) Primary() TouchPoint {
	if len(e.Touches) == 0 {
		return TouchPoint{}
	}
	return e.Touches[0]
}
