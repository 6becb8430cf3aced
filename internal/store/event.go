package store

import (
	"database/sql"
	"encoding/json"
	"time"

	"github.com/ayusman/mudra/internal/gesture"
)

// Event represents a recognized gesture event logged to the database,
// either from a live stream or a session replay. SessionID is nil for
// live events.
type Event struct {
	ID          int64     `json:"id"`
	SessionID   *string   `json:"session_id,omitempty"`
	Type        string    `json:"type"`
	State       string    `json:"state"`
	Data        string    `json:"data"`
	TimestampMs int64     `json:"timestamp_ms"`
	CreatedAt   time.Time `json:"created_at"`
}

// EventRepository provides operations on the gesture event log.
type EventRepository struct {
	db *sql.DB
}

// Events returns the gesture event repository for this store.
func (s *Store) Events() *EventRepository {
	return &EventRepository{db: s.db}
}

// Create logs one recognized gesture event. sessionID may be nil for
// events recognized on a live stream.
func (r *EventRepository) Create(ev gesture.Event, sessionID *string) (*Event, error) {
	data, err := json.Marshal(ev.Data)
	if err != nil {
		return nil, err
	}

	e := &Event{
		SessionID:   sessionID,
		Type:        string(ev.Type),
		State:       string(ev.State),
		Data:        string(data),
		TimestampMs: ev.Timestamp,
		CreatedAt:   time.Now(),
	}

	result, err := r.db.Exec(
		`INSERT INTO gesture_events (session_id, type, state, data, timestamp_ms, created_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		e.SessionID, e.Type, e.State, e.Data, e.TimestampMs, e.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	e.ID, err = result.LastInsertId()
	if err != nil {
		return nil, err
	}

	return e, nil
}

// ListBySession retrieves all events recognized during one session's
// replay, in stream order.
func (r *EventRepository) ListBySession(sessionID string) ([]*Event, error) {
	rows, err := r.db.Query(
		`SELECT id, session_id, type, state, data, timestamp_ms, created_at
		 FROM gesture_events
		 WHERE session_id = ?
		 ORDER BY timestamp_ms, id`,
		sessionID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanEvents(rows)
}

// ListRecent retrieves the newest events from the log, newest first.
func (r *EventRepository) ListRecent(limit int) ([]*Event, error) {
	if limit <= 0 {
		limit = 50
	}

	rows, err := r.db.Query(
		`SELECT id, session_id, type, state, data, timestamp_ms, created_at
		 FROM gesture_events
		 ORDER BY id DESC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanEvents(rows)
}

// CountByType returns how many logged events exist per gesture type.
func (r *EventRepository) CountByType() (map[string]int, error) {
	rows, err := r.db.Query(
		`SELECT type, COUNT(*) FROM gesture_events GROUP BY type`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	counts := make(map[string]int)
	for rows.Next() {
		var t string
		var n int
		if err := rows.Scan(&t, &n); err != nil {
			return nil, err
		}
		counts[t] = n
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return counts, nil
}

func scanEvents(rows *sql.Rows) ([]*Event, error) {
	var events []*Event
	for rows.Next() {
		e := &Event{}
		if err := rows.Scan(&e.ID, &e.SessionID, &e.Type, &e.State, &e.Data, &e.TimestampMs, &e.CreatedAt); err != nil {
			return nil, err
		}
		events = append(events, e)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return events, nil
}
