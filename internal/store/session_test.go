package store

import (
	"errors"
	"testing"

	"github.com/google/uuid"

	"github.com/ayusman/mudra/internal/touch"
	"github.com/ayusman/mudra/internal/touchtest"
)

func TestSessionRepository_CreateAndGet(t *testing.T) {
	s := newTestStore(t)
	repo := s.Sessions()

	sess := &Session{ID: uuid.New().String(), Name: "swipe-right"}
	events := touchtest.SwipeRight(0)

	if err := repo.Create(sess, events); err != nil {
		t.Fatalf("failed to create session: %v", err)
	}
	if sess.EventCount != len(events) {
		t.Errorf("EventCount = %d, want %d", sess.EventCount, len(events))
	}

	got, err := repo.GetByID(sess.ID)
	if err != nil {
		t.Fatalf("failed to get session: %v", err)
	}
	if got.Name != "swipe-right" {
		t.Errorf("Name = %q, want %q", got.Name, "swipe-right")
	}
	if got.EventCount != len(events) {
		t.Errorf("EventCount = %d, want %d", got.EventCount, len(events))
	}
}

func TestSessionRepository_GetMissing(t *testing.T) {
	s := newTestStore(t)

	_, err := s.Sessions().GetByID("nonexistent")
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
}

func TestSessionRepository_EventsRoundTrip(t *testing.T) {
	s := newTestStore(t)
	repo := s.Sessions()

	sess := &Session{ID: uuid.New().String(), Name: "pinch"}
	events := touchtest.Pinch(touch.Point{X: 100, Y: 100}, 80, 160, 0, 300, 5)

	if err := repo.Create(sess, events); err != nil {
		t.Fatalf("failed to create session: %v", err)
	}

	got, err := repo.Events(sess.ID)
	if err != nil {
		t.Fatalf("failed to load events: %v", err)
	}
	if len(got) != len(events) {
		t.Fatalf("len(events) = %d, want %d", len(got), len(events))
	}

	for i, ev := range got {
		want := events[i]
		if ev.Phase != want.Phase {
			t.Errorf("event %d: Phase = %q, want %q", i, ev.Phase, want.Phase)
		}
		if ev.Timestamp != want.Timestamp {
			t.Errorf("event %d: Timestamp = %d, want %d", i, ev.Timestamp, want.Timestamp)
		}
		if len(ev.Touches) != len(want.Touches) {
			t.Fatalf("event %d: len(Touches) = %d, want %d", i, len(ev.Touches), len(want.Touches))
		}
		for j, tp := range ev.Touches {
			if tp != want.Touches[j] {
				t.Errorf("event %d touch %d: got %+v, want %+v", i, j, tp, want.Touches[j])
			}
		}
	}
}

func TestSessionRepository_List(t *testing.T) {
	s := newTestStore(t)
	repo := s.Sessions()

	for _, name := range []string{"first", "second"} {
		sess := &Session{ID: uuid.New().String(), Name: name}
		if err := repo.Create(sess, touchtest.Tap(10, 10, 0)); err != nil {
			t.Fatalf("failed to create session %q: %v", name, err)
		}
	}

	sessions, err := repo.List()
	if err != nil {
		t.Fatalf("failed to list sessions: %v", err)
	}
	if len(sessions) != 2 {
		t.Errorf("len(sessions) = %d, want 2", len(sessions))
	}
}

func TestSessionRepository_DeleteCascades(t *testing.T) {
	s := newTestStore(t)
	repo := s.Sessions()

	sess := &Session{ID: uuid.New().String(), Name: "doomed"}
	if err := repo.Create(sess, touchtest.Tap(10, 10, 0)); err != nil {
		t.Fatalf("failed to create session: %v", err)
	}

	if err := repo.Delete(sess.ID); err != nil {
		t.Fatalf("failed to delete session: %v", err)
	}

	if _, err := repo.GetByID(sess.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("GetByID after delete: err = %v, want ErrNotFound", err)
	}

	var count int
	err := s.DB().QueryRow(
		`SELECT COUNT(*) FROM session_events WHERE session_id = ?`, sess.ID,
	).Scan(&count)
	if err != nil {
		t.Fatalf("failed to count session events: %v", err)
	}
	if count != 0 {
		t.Errorf("session_events rows after delete = %d, want 0", count)
	}
}

func TestSessionRepository_DeleteMissing(t *testing.T) {
	s := newTestStore(t)

	err := s.Sessions().Delete("nonexistent")
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
}
