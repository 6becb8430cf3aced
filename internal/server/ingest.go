package server

import (
	"log"
	"net/http"

	"github.com/gorilla/websocket"

	"github.com/ayusman/mudra/internal/app"
	"github.com/ayusman/mudra/internal/touch"
)

// IngestHandler accepts a WebSocket connection on /api/touches carrying
// a stream of touch events as JSON messages. Each message is fully
// processed, with all recognition callbacks delivered, before the next
// message is read.
type IngestHandler struct {
	app *app.App
}

// NewIngestHandler creates an ingest handler feeding the given app.
func NewIngestHandler(a *app.App) *IngestHandler {
	return &IngestHandler{app: a}
}

// ServeHTTP upgrades the connection and consumes touch events until the
// client disconnects or sends something unreadable.
func (h *IngestHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("websocket upgrade error: %v", err)
		return
	}
	defer conn.Close()

	for {
		var ev touch.Event
		if err := conn.ReadJSON(&ev); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				log.Printf("touch ingest error: %v", err)
			}
			return
		}

		if !ev.Phase.Valid() {
			log.Printf("touch ingest: dropping event with invalid phase %q", ev.Phase)
			continue
		}

		h.app.HandleTouch(ev)
	}
}
