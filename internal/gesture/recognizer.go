package gesture

import "github.com/ayusman/mudra/internal/touch"

// core holds the state shared by every recognizer. Concrete recognizers
// embed it and drive transitions from their HandleTouch methods.
//
// Recognizers are not safe for concurrent use; the caller delivers one
// event at a time (the app serializes the stream with a mutex). All time
// arithmetic uses event timestamps, never the wall clock, so a recorded
// stream replays to identical decisions.
type core struct {
	gestureType Type
	state       State
	enabled     bool
	callback    Callback
	config      Config

	startTime  int64
	startPos   touch.Point
	currentPos touch.Point
	touchCount int
}

func newCore(t Type, config Config) core {
	return core{
		gestureType: t,
		state:       StatePossible,
		enabled:     true,
		config:      config,
	}
}

// emit invokes the callback with the recognizer's current type and state.
func (c *core) emit(data Data, timestamp int64) {
	if c.callback == nil {
		return
	}
	c.callback(Event{
		Type:      c.gestureType,
		State:     c.state,
		Data:      data,
		Timestamp: timestamp,
	})
}

// reset returns the recognizer to possible and clears per-attempt state.
// Callback, config and enabled flag survive a reset.
func (c *core) reset() {
	c.state = StatePossible
	c.startTime = 0
	c.startPos = touch.Point{}
	c.currentPos = touch.Point{}
	c.touchCount = 0
}

// State returns the recognizer's current lifecycle state.
func (c *core) State() State {
	return c.state
}

// Enabled reports whether the recognizer is processing events.
func (c *core) Enabled() bool {
	return c.enabled
}

// SetEnabled turns event processing on or off. Disabling mid-gesture
// abandons the attempt without emitting.
func (c *core) SetEnabled(enabled bool) {
	c.enabled = enabled
	if !enabled {
		c.reset()
	}
}

// SetCallback replaces the recognizer's event callback.
func (c *core) SetCallback(cb Callback) {
	c.callback = cb
}

// Type returns the gesture type this recognizer currently reports.
func (c *core) Type() Type {
	return c.gestureType
}
