package api

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/ayusman/mudra/internal/app"
	"github.com/ayusman/mudra/internal/gesture"
	"github.com/ayusman/mudra/internal/store"
)

// EventHandler serves the recognized gesture event log and the
// in-memory recent event history.
type EventHandler struct {
	app *app.App
}

// NewEventHandler creates a new EventHandler over the given app.
func NewEventHandler(a *app.App) *EventHandler {
	return &EventHandler{app: a}
}

// ServeHTTP routes event requests.
// Paths: /api/events, /api/events/recent, /api/events/counts.
func (h *EventHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	path := strings.TrimPrefix(r.URL.Path, "/api/events")
	path = strings.TrimPrefix(path, "/")

	switch path {
	case "":
		h.list(w, r)
	case "recent":
		h.recent(w, r)
	case "counts":
		h.counts(w, r)
	default:
		http.Error(w, "Not found", http.StatusNotFound)
	}
}

type listEventsResponse struct {
	Events []*store.Event `json:"events"`
}

// list handles GET /api/events?limit=N from the persistent log.
func (h *EventHandler) list(w http.ResponseWriter, r *http.Request) {
	limit := 50
	if v := r.URL.Query().Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			writeError(w, http.StatusBadRequest, "Invalid limit")
			return
		}
		limit = n
	}

	events, err := h.app.Store().Events().ListRecent(limit)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to list events")
		return
	}

	if events == nil {
		events = []*store.Event{}
	}
	writeJSON(w, http.StatusOK, listEventsResponse{Events: events})
}

type recentEventsResponse struct {
	Events []gesture.Event `json:"events"`
}

// recent handles GET /api/events/recent from the in-memory history,
// which also holds non-terminal updates the log never sees.
func (h *EventHandler) recent(w http.ResponseWriter, r *http.Request) {
	events := h.app.History()
	if events == nil {
		events = []gesture.Event{}
	}
	writeJSON(w, http.StatusOK, recentEventsResponse{Events: events})
}

// counts handles GET /api/events/counts.
func (h *EventHandler) counts(w http.ResponseWriter, r *http.Request) {
	counts, err := h.app.Store().Events().CountByType()
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to count events")
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"counts": counts})
}
