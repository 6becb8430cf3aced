package api

import (
	"encoding/json"
	"net/http"

	"github.com/ayusman/mudra/internal/app"
	"github.com/ayusman/mudra/internal/gesture"
)

// ConfigHandler serves and switches the active gesture configuration.
type ConfigHandler struct {
	app *app.App
}

// NewConfigHandler creates a new ConfigHandler over the given app.
func NewConfigHandler(a *app.App) *ConfigHandler {
	return &ConfigHandler{app: a}
}

type configResponse struct {
	Preset  string         `json:"preset"`
	Presets []string       `json:"presets"`
	Config  gesture.Config `json:"config"`
}

type updateConfigRequest struct {
	Preset string `json:"preset"`
}

// ServeHTTP handles GET and PUT on /api/config.
func (h *ConfigHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		h.get(w, r)
	case http.MethodPut:
		h.update(w, r)
	default:
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}

// get returns the active preset, all preset names and the full config.
func (h *ConfigHandler) get(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, configResponse{
		Preset:  h.app.Preset(),
		Presets: gesture.PresetNames(),
		Config:  h.app.GestureConfig(),
	})
}

// update switches the active preset, rebuilding the recognizer set.
func (h *ConfigHandler) update(w http.ResponseWriter, r *http.Request) {
	var req updateConfigRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := h.app.ApplyPreset(req.Preset); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, configResponse{
		Preset:  h.app.Preset(),
		Presets: gesture.PresetNames(),
		Config:  h.app.GestureConfig(),
	})
}
