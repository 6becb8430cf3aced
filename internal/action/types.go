// Package action executes external programs bound to recognized gestures.
// Actions are the daemon's built-in gesture consumer: the engine only
// emits events, and this package decides what happens on the host when
// one fires.
package action

import (
	"encoding/json"

	"github.com/ayusman/mudra/internal/gesture"
)

// Manifest describes an action's metadata, read from action.json.
type Manifest struct {
	Name        string `json:"name"`
	Version     string `json:"version"`
	Description string `json:"description"`
	Executable  string `json:"executable"`
}

// Request is the JSON document piped to an action's stdin when a bound
// gesture fires. Params come from the binding, not the gesture.
type Request struct {
	Gesture   string          `json:"gesture"`
	State     string          `json:"state"`
	Data      gesture.Data    `json:"data"`
	Timestamp int64           `json:"timestamp"`
	Params    json.RawMessage `json:"params"`
}

// Response is parsed from the action's stdout after execution.
type Response struct {
	Success bool            `json:"success"`
	Error   string          `json:"error,omitempty"`
	Data    json.RawMessage `json:"data,omitempty"`
}

// Action is a discovered action with its manifest and location on disk.
type Action struct {
	Manifest   Manifest
	Path       string
	Executable string
}
