// Package main provides an event log action.
// It appends each recognized gesture as a line to a log file.
package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// Request represents the input from the action executor.
type Request struct {
	Gesture   string          `json:"gesture"`
	State     string          `json:"state"`
	Data      json.RawMessage `json:"data"`
	Timestamp int64           `json:"timestamp"`
	Params    json.RawMessage `json:"params"`
}

// Response represents the output to the action executor.
type Response struct {
	Success bool            `json:"success"`
	Error   string          `json:"error,omitempty"`
	Data    json.RawMessage `json:"data,omitempty"`
}

// LogParams defines parameters for the event log action.
type LogParams struct {
	Path string `json:"path"`
}

func main() {
	// Read request from stdin
	var req Request
	if err := json.NewDecoder(os.Stdin).Decode(&req); err != nil {
		writeErrorResponse(fmt.Sprintf("failed to decode request: %v", err))
		return
	}

	if err := appendEntry(req); err != nil {
		writeErrorResponse(fmt.Sprintf("event log failed: %v", err))
		return
	}

	writeSuccessResponse()
}

// appendEntry writes a single log line for the recognized gesture.
func appendEntry(req Request) error {
	path, err := logPath(req.Params)
	if err != nil {
		return err
	}

	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}
	defer f.Close()

	line := fmt.Sprintf("%s gesture=%s state=%s event_ts=%d data=%s\n",
		time.Now().Format(time.RFC3339), req.Gesture, req.State, req.Timestamp, compact(req.Data))
	if _, err := f.WriteString(line); err != nil {
		return fmt.Errorf("failed to write log line: %w", err)
	}
	return nil
}

// logPath resolves the log file path from params, falling back to
// gestures.log in the user's home directory.
func logPath(params json.RawMessage) (string, error) {
	var p LogParams
	if len(params) > 0 {
		if err := json.Unmarshal(params, &p); err != nil {
			return "", fmt.Errorf("failed to parse params: %w", err)
		}
	}
	if p.Path != "" {
		return p.Path, nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to resolve home directory: %w", err)
	}
	return filepath.Join(home, "gestures.log"), nil
}

// compact returns the raw data as a single-line JSON string.
func compact(data json.RawMessage) string {
	if len(data) == 0 {
		return "{}"
	}
	var buf json.RawMessage
	if err := json.Unmarshal(data, &buf); err != nil {
		return "{}"
	}
	out, err := json.Marshal(buf)
	if err != nil {
		return "{}"
	}
	return string(out)
}

// writeSuccessResponse writes a success response to stdout.
func writeSuccessResponse() {
	resp := Response{Success: true}
	json.NewEncoder(os.Stdout).Encode(resp)
}

// writeErrorResponse writes an error response to stdout.
func writeErrorResponse(msg string) {
	resp := Response{Success: false, Error: msg}
	json.NewEncoder(os.Stdout).Encode(resp)
}
