// Package replay records touch event streams and plays them back through
// a recognizer set. Because recognition depends only on event timestamps,
// replaying a session reproduces the exact gesture events of the original
// stream, which makes sessions the unit of regression testing and of the
// replay API.
package replay

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/ayusman/mudra/internal/touch"
)

// ErrEmptySession indicates a session with no recorded events.
var ErrEmptySession = errors.New("session has no events")

// Session is a named, ordered recording of touch events.
type Session struct {
	ID        string        `json:"id"`
	Name      string        `json:"name"`
	Events    []touch.Event `json:"events"`
	CreatedAt time.Time     `json:"created_at"`
}

// NewSession creates a session with a fresh ID around the given events.
func NewSession(name string, events []touch.Event) *Session {
	return &Session{
		ID:        uuid.New().String(),
		Name:      name,
		Events:    events,
		CreatedAt: time.Now(),
	}
}

// Validate checks that the session can be replayed: at least one event,
// valid phases, non-decreasing timestamps, and no empty touch batch
// except on cancellation (a cancel-all may carry no touches).
func (s *Session) Validate() error {
	if len(s.Events) == 0 {
		return ErrEmptySession
	}

	var prev int64
	for i, ev := range s.Events {
		if !ev.Phase.Valid() {
			return fmt.Errorf("event %d: invalid phase %q", i, ev.Phase)
		}
		if ev.Timestamp < prev {
			return fmt.Errorf("event %d: timestamp %d before %d", i, ev.Timestamp, prev)
		}
		if len(ev.Touches) == 0 && ev.Phase != touch.PhaseCancelled {
			return fmt.Errorf("event %d: no touches in %s event", i, ev.Phase)
		}
		prev = ev.Timestamp
	}
	return nil
}

// LoadSessionFile reads a session from a JSON file.
func LoadSessionFile(path string) (*Session, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read session file: %w", err)
	}

	var s Session
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parse session file %s: %w", path, err)
	}
	if err := s.Validate(); err != nil {
		return nil, fmt.Errorf("session file %s: %w", path, err)
	}
	return &s, nil
}

// WriteFile writes the session to a JSON file.
func (s *Session) WriteFile(path string) error {
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return fmt.Errorf("encode session: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write session file: %w", err)
	}
	return nil
}
