package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/ayusman/mudra/internal/app"
	"github.com/ayusman/mudra/internal/gesture"
	"github.com/ayusman/mudra/internal/replay"
	"github.com/ayusman/mudra/internal/store"
	"github.com/ayusman/mudra/internal/touch"
)

// SessionHandler handles HTTP requests for recorded touch sessions.
type SessionHandler struct {
	app *app.App
}

// NewSessionHandler creates a new SessionHandler over the given app.
func NewSessionHandler(a *app.App) *SessionHandler {
	return &SessionHandler{app: a}
}

// ServeHTTP routes session requests.
// Paths: /api/sessions, /api/sessions/{id}, /api/sessions/{id}/events,
// /api/sessions/{id}/replay.
func (h *SessionHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	path := strings.TrimPrefix(r.URL.Path, "/api/sessions")
	path = strings.TrimPrefix(path, "/")

	if path == "" {
		switch r.Method {
		case http.MethodGet:
			h.list(w, r)
		case http.MethodPost:
			h.create(w, r)
		default:
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		}
		return
	}

	id, sub, _ := strings.Cut(path, "/")

	switch sub {
	case "":
		switch r.Method {
		case http.MethodGet:
			h.get(w, r, id)
		case http.MethodDelete:
			h.delete(w, r, id)
		default:
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		}
	case "events":
		if r.Method != http.MethodGet {
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
			return
		}
		h.events(w, r, id)
	case "replay":
		if r.Method != http.MethodPost {
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
			return
		}
		h.replay(w, r, id)
	default:
		http.Error(w, "Not found", http.StatusNotFound)
	}
}

type createSessionRequest struct {
	Name   string        `json:"name"`
	Events []touch.Event `json:"events"`
}

type listSessionsResponse struct {
	Sessions []*store.Session `json:"sessions"`
}

// list handles GET /api/sessions.
func (h *SessionHandler) list(w http.ResponseWriter, r *http.Request) {
	sessions, err := h.app.Store().Sessions().List()
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to list sessions")
		return
	}

	if sessions == nil {
		sessions = []*store.Session{}
	}
	writeJSON(w, http.StatusOK, listSessionsResponse{Sessions: sessions})
}

// create handles POST /api/sessions: a client uploads a touch stream as
// a new session. The stream must validate as replayable.
func (h *SessionHandler) create(w http.ResponseWriter, r *http.Request) {
	var req createSessionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.Name == "" {
		writeError(w, http.StatusBadRequest, "Name is required")
		return
	}

	sess := &replay.Session{ID: uuid.New().String(), Name: req.Name, Events: req.Events}
	if err := sess.Validate(); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	meta := &store.Session{ID: sess.ID, Name: sess.Name}
	if err := h.app.Store().Sessions().Create(meta, sess.Events); err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to create session")
		return
	}

	writeJSON(w, http.StatusCreated, meta)
}

// get handles GET /api/sessions/{id}.
func (h *SessionHandler) get(w http.ResponseWriter, r *http.Request, id string) {
	sess, err := h.app.Store().Sessions().GetByID(id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeError(w, http.StatusNotFound, "Session not found")
			return
		}
		writeError(w, http.StatusInternalServerError, "Failed to get session")
		return
	}

	writeJSON(w, http.StatusOK, sess)
}

// delete handles DELETE /api/sessions/{id}.
func (h *SessionHandler) delete(w http.ResponseWriter, r *http.Request, id string) {
	if err := h.app.Store().Sessions().Delete(id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeError(w, http.StatusNotFound, "Session not found")
			return
		}
		writeError(w, http.StatusInternalServerError, "Failed to delete session")
		return
	}

	writeJSON(w, http.StatusNoContent, nil)
}

type sessionEventsResponse struct {
	Events []touch.Event `json:"events"`
}

// events handles GET /api/sessions/{id}/events and returns the recorded
// touch stream.
func (h *SessionHandler) events(w http.ResponseWriter, r *http.Request, id string) {
	if _, err := h.app.Store().Sessions().GetByID(id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeError(w, http.StatusNotFound, "Session not found")
			return
		}
		writeError(w, http.StatusInternalServerError, "Failed to get session")
		return
	}

	events, err := h.app.Store().Sessions().Events(id)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to load session events")
		return
	}

	if events == nil {
		events = []touch.Event{}
	}
	writeJSON(w, http.StatusOK, sessionEventsResponse{Events: events})
}

// replay handles POST /api/sessions/{id}/replay: the recorded stream is
// played through a fresh recognizer set and the recognized gesture
// events are returned and logged against the session.
func (h *SessionHandler) replay(w http.ResponseWriter, r *http.Request, id string) {
	recognized, err := h.app.ReplaySession(id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeError(w, http.StatusNotFound, "Session not found")
			return
		}
		if errors.Is(err, replay.ErrEmptySession) {
			writeError(w, http.StatusUnprocessableEntity, "Session has no events")
			return
		}
		writeError(w, http.StatusInternalServerError, "Failed to replay session")
		return
	}

	if recognized == nil {
		recognized = []gesture.Event{}
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"session_id": id,
		"events":     recognized,
	})
}
