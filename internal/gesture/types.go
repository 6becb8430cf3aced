// Package gesture implements multi-touch gesture recognition as a set of
// independent state machines fed from a shared touch event stream.
package gesture

import (
	"github.com/ayusman/mudra/internal/touch"
)

// Type identifies a recognized gesture.
type Type string

const (
	// TypeTap is a single quick touch.
	TypeTap Type = "tap"
	// TypeDoubleTap is two taps in quick succession.
	TypeDoubleTap Type = "double_tap"
	// TypeTripleTap is three taps in quick succession.
	TypeTripleTap Type = "triple_tap"
	// TypeLongPress is a touch held in place past a duration threshold.
	TypeLongPress Type = "long_press"
	// TypeSwipeLeft is a fast leftward stroke.
	TypeSwipeLeft Type = "swipe_left"
	// TypeSwipeRight is a fast rightward stroke.
	TypeSwipeRight Type = "swipe_right"
	// TypeSwipeUp is a fast upward stroke.
	TypeSwipeUp Type = "swipe_up"
	// TypeSwipeDown is a fast downward stroke.
	TypeSwipeDown Type = "swipe_down"
	// TypePinch is a two-finger scale gesture.
	TypePinch Type = "pinch"
	// TypeRotation is a two-finger rotate gesture.
	TypeRotation Type = "rotation"
	// TypePan is a sustained drag.
	TypePan Type = "pan"
	// TypeEdgeSwipeLeft is a swipe starting at the left screen edge.
	TypeEdgeSwipeLeft Type = "edge_swipe_left"
	// TypeEdgeSwipeRight is a swipe starting at the right screen edge.
	TypeEdgeSwipeRight Type = "edge_swipe_right"
	// TypeEdgeSwipeTop is a swipe starting at the top screen edge.
	TypeEdgeSwipeTop Type = "edge_swipe_top"
	// TypeEdgeSwipeBottom is a swipe starting at the bottom screen edge.
	TypeEdgeSwipeBottom Type = "edge_swipe_bottom"
)

// Valid reports whether t is one of the defined gesture types.
func (t Type) Valid() bool {
	switch t {
	case TypeTap, TypeDoubleTap, TypeTripleTap, TypeLongPress,
		TypeSwipeLeft, TypeSwipeRight, TypeSwipeUp, TypeSwipeDown,
		TypePinch, TypeRotation, TypePan,
		TypeEdgeSwipeLeft, TypeEdgeSwipeRight, TypeEdgeSwipeTop, TypeEdgeSwipeBottom:
		return true
	}
	return false
}

// State represents where a recognizer is in its lifecycle.
type State string

const (
	// StatePossible means the recognizer is idle or evaluating a candidate.
	StatePossible State = "possible"
	// StateBegan means a continuous gesture has activated.
	StateBegan State = "began"
	// StateChanged means a continuous gesture produced an update.
	StateChanged State = "changed"
	// StateEnded means the gesture completed.
	StateEnded State = "ended"
	// StateCancelled means the touch stream was interrupted by the system.
	StateCancelled State = "cancelled"
	// StateFailed means the attempt did not qualify as this gesture.
	StateFailed State = "failed"
)

// Terminal reports whether s ends a recognition attempt.
func (s State) Terminal() bool {
	return s == StateEnded || s == StateCancelled || s == StateFailed
}

// Direction is the cardinal direction of a swipe.
type Direction string

const (
	DirectionLeft  Direction = "left"
	DirectionRight Direction = "right"
	DirectionUp    Direction = "up"
	DirectionDown  Direction = "down"
	DirectionNone  Direction = "none"
)

// DirectionFromVelocity derives the dominant cardinal direction from a
// velocity vector. The axis with the larger magnitude wins; Y grows
// downward, so positive vy maps to down. Returns DirectionNone only
// when both components are exactly zero.
func DirectionFromVelocity(vx, vy float64) Direction {
	if vx == 0 && vy == 0 {
		return DirectionNone
	}
	ax, ay := vx, vy
	if ax < 0 {
		ax = -ax
	}
	if ay < 0 {
		ay = -ay
	}
	if ax >= ay {
		if vx >= 0 {
			return DirectionRight
		}
		return DirectionLeft
	}
	if vy >= 0 {
		return DirectionDown
	}
	return DirectionUp
}

// Edge identifies a screen edge for edge swipe recognition.
type Edge string

const (
	EdgeLeft   Edge = "left"
	EdgeRight  Edge = "right"
	EdgeTop    Edge = "top"
	EdgeBottom Edge = "bottom"
)

// TapData carries the payload of a completed tap gesture.
type TapData struct {
	TapCount int         `json:"tap_count"`
	Position touch.Point `json:"position"`
}

// LongPressData carries the payload of a long press activation or release.
type LongPressData struct {
	Position   touch.Point `json:"position"`
	DurationMs int64       `json:"duration_ms"`
}

// SwipeData carries the payload of a completed swipe or edge swipe.
type SwipeData struct {
	Direction     Direction   `json:"direction"`
	Velocity      touch.Point `json:"velocity"` // Points per second
	StartPosition touch.Point `json:"start_position"`
	EndPosition   touch.Point `json:"end_position"`
}

// PinchData carries one update of a pinch gesture.
type PinchData struct {
	Scale    float64     `json:"scale"`    // Current distance / initial distance
	Velocity float64     `json:"velocity"` // Scale change per second
	Center   touch.Point `json:"center"`
}

// RotationData carries one update of a rotation gesture.
type RotationData struct {
	Angle    float64     `json:"angle"`    // Accumulated rotation in radians
	Velocity float64     `json:"velocity"` // Radians per second
	Center   touch.Point `json:"center"`
}

// PanData carries one update of a pan gesture.
type PanData struct {
	Translation touch.Point `json:"translation"` // Total displacement from start
	Velocity    touch.Point `json:"velocity"`    // Points per second
	Position    touch.Point `json:"position"`
}

// Data is the payload attached to a gesture event. Exactly one field is
// non-nil, matching the event's Type; edge swipes carry Swipe data. The
// wire and store encodings include only the live variant.
type Data struct {
	Tap       *TapData       `json:"tap,omitempty"`
	LongPress *LongPressData `json:"long_press,omitempty"`
	Swipe     *SwipeData     `json:"swipe,omitempty"`
	Pinch     *PinchData     `json:"pinch,omitempty"`
	Rotation  *RotationData  `json:"rotation,omitempty"`
	Pan       *PanData       `json:"pan,omitempty"`
}

// Event is the engine's single output type: one recognition decision.
// Timestamp is the event-stream time that produced the decision, never
// wall clock, so replayed streams reproduce identical events.
type Event struct {
	Type      Type  `json:"type"`
	State     State `json:"state"`
	Data      Data  `json:"data"`
	Timestamp int64 `json:"timestamp"`
}

// Callback receives recognized gesture events. Callbacks run synchronously
// on the goroutine delivering the touch event.
type Callback func(Event)
