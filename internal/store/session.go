package store

import (
	"database/sql"
	"encoding/json"
	"errors"
	"time"

	"github.com/ayusman/mudra/internal/touch"
)

// ErrNotFound is returned when a requested resource does not exist.
var ErrNotFound = errors.New("not found")

// Session represents a recorded touch session stored in the database.
type Session struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	EventCount int       `json:"event_count"`
	CreatedAt  time.Time `json:"created_at"`
}

// SessionRepository provides CRUD operations for recorded sessions.
type SessionRepository struct {
	db *sql.DB
}

// Sessions returns the session repository for this store.
func (s *Store) Sessions() *SessionRepository {
	return &SessionRepository{db: s.db}
}

// Create inserts a session and its touch events in a single transaction.
func (r *SessionRepository) Create(sess *Session, events []touch.Event) error {
	sess.CreatedAt = time.Now()
	sess.EventCount = len(events)

	tx, err := r.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	_, err = tx.Exec(
		`INSERT INTO sessions (id, name, event_count, created_at) VALUES (?, ?, ?, ?)`,
		sess.ID, sess.Name, sess.EventCount, sess.CreatedAt,
	)
	if err != nil {
		return err
	}

	stmt, err := tx.Prepare(
		`INSERT INTO session_events (session_id, seq, phase, timestamp_ms, touches) VALUES (?, ?, ?, ?, ?)`,
	)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for i, ev := range events {
		touches, err := json.Marshal(ev.Touches)
		if err != nil {
			return err
		}
		if _, err := stmt.Exec(sess.ID, i, string(ev.Phase), ev.Timestamp, string(touches)); err != nil {
			return err
		}
	}

	return tx.Commit()
}

// GetByID retrieves a session's metadata by its ID.
func (r *SessionRepository) GetByID(id string) (*Session, error) {
	sess := &Session{}

	err := r.db.QueryRow(
		`SELECT id, name, event_count, created_at FROM sessions WHERE id = ?`,
		id,
	).Scan(&sess.ID, &sess.Name, &sess.EventCount, &sess.CreatedAt)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	return sess, nil
}

// List retrieves all sessions, newest first.
func (r *SessionRepository) List() ([]*Session, error) {
	rows, err := r.db.Query(
		`SELECT id, name, event_count, created_at FROM sessions ORDER BY created_at DESC`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var sessions []*Session
	for rows.Next() {
		sess := &Session{}
		if err := rows.Scan(&sess.ID, &sess.Name, &sess.EventCount, &sess.CreatedAt); err != nil {
			return nil, err
		}
		sessions = append(sessions, sess)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return sessions, nil
}

// Events reconstructs the session's recorded touch events in order.
func (r *SessionRepository) Events(id string) ([]touch.Event, error) {
	rows, err := r.db.Query(
		`SELECT phase, timestamp_ms, touches
		 FROM session_events
		 WHERE session_id = ?
		 ORDER BY seq`,
		id,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var events []touch.Event
	for rows.Next() {
		var ev touch.Event
		var phase, touches string
		if err := rows.Scan(&phase, &ev.Timestamp, &touches); err != nil {
			return nil, err
		}
		if err := json.Unmarshal([]byte(touches), &ev.Touches); err != nil {
			return nil, err
		}
		ev.Phase = touch.Phase(phase)
		events = append(events, ev)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return events, nil
}

// Delete removes a session and, via cascade, its recorded events.
func (r *SessionRepository) Delete(id string) error {
	result, err := r.db.Exec(`DELETE FROM sessions WHERE id = ?`, id)
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rowsAffected == 0 {
		return ErrNotFound
	}

	return nil
}
