package replay

import "github.com/ayusman/mudra/internal/touch"

// DefaultRecorderCapacity bounds how many touch events a recorder keeps.
// At a typical 120Hz event rate this holds a bit over half a minute.
const DefaultRecorderCapacity = 4096

// Recorder keeps a bounded in-memory buffer of touch events. When the
// buffer is full the oldest event is dropped, so a long-running stream
// always leaves the most recent window available for snapshotting.
type Recorder struct {
	events   []touch.Event
	capacity int
}

// NewRecorder creates a recorder holding at most capacity events.
// Non-positive capacities fall back to DefaultRecorderCapacity.
func NewRecorder(capacity int) *Recorder {
	if capacity <= 0 {
		capacity = DefaultRecorderCapacity
	}
	return &Recorder{
		events:   make([]touch.Event, 0, capacity),
		capacity: capacity,
	}
}

// Record appends one event, evicting the oldest if the buffer is full.
func (r *Recorder) Record(ev touch.Event) {
	if len(r.events) >= r.capacity {
		// Shift left, dropping the oldest event
		copy(r.events, r.events[1:])
		r.events = r.events[:len(r.events)-1]
	}
	r.events = append(r.events, ev)
}

// Len returns the number of buffered events.
func (r *Recorder) Len() int {
	return len(r.events)
}

// Session snapshots the buffered events into a new named session. The
// recorder keeps recording; the snapshot is independent.
func (r *Recorder) Session(name string) *Session {
	events := make([]touch.Event, len(r.events))
	copy(events, r.events)
	return NewSession(name, events)
}

// Reset discards all buffered events.
func (r *Recorder) Reset() {
	r.events = r.events[:0]
}
