// Package app wires the gesture engine to its surroundings: storage,
// recording, action dispatch, event history and the live touch stream.
package app

import (
	"fmt"
	"log"
	"sync"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/ayusman/mudra/internal/action"
	"github.com/ayusman/mudra/internal/gesture"
	"github.com/ayusman/mudra/internal/replay"
	"github.com/ayusman/mudra/internal/store"
	"github.com/ayusman/mudra/internal/touch"
)

const (
	// DefaultHistorySize is how many recent gesture events are kept in memory.
	DefaultHistorySize = 100
	// ActionTimeoutMs bounds how long a dispatched action may run.
	ActionTimeoutMs = 5000
	// IdlePollIntervalMs is the long press polling cadence with no touch down.
	IdlePollIntervalMs = 250
	// ActivePollIntervalMs is the polling cadence while a press is live.
	ActivePollIntervalMs = 50
)

// Config holds configuration options for the application.
type Config struct {
	Store       *store.Store
	ActionsDir  string
	Preset      string
	HistorySize int
}

// App owns one recognizer set fed from a live touch stream. It records
// the stream on demand, keeps a bounded history of recognized events,
// logs completed gestures to the store and dispatches bound actions.
//
// Live touch events must carry Unix millisecond timestamps; the long
// press polling path compares them against the wall clock. Recorded
// sessions are replayed through their own recognizer set and never
// polled, so their timestamps only need to be self-consistent.
type App struct {
	config Config

	manager    *gesture.Manager
	recorder   *replay.Recorder
	registry   *action.Registry
	dispatcher *action.Dispatcher
	history    *lru.Cache[int64, gesture.Event]

	// OnEvent, when set, observes every recognized gesture event after
	// the app's own bookkeeping. The WebSocket hub hangs off this.
	OnEvent gesture.Callback

	mu            sync.Mutex
	preset        string
	enabled       bool
	recording     bool
	recordingName string
	historySeq    int64
	pressDown     bool
	stopCh        chan struct{}
}

// New creates a new App instance with the given configuration. The
// active preset is restored from settings when a store is configured;
// Config.Preset is the fallback for a fresh database.
func New(config Config) (*App, error) {
	historySize := config.HistorySize
	if historySize <= 0 {
		historySize = DefaultHistorySize
	}

	history, err := lru.New[int64, gesture.Event](historySize)
	if err != nil {
		return nil, fmt.Errorf("create history cache: %w", err)
	}

	a := &App{
		config:   config,
		recorder: replay.NewRecorder(0),
		registry: action.NewRegistry(config.ActionsDir),
		history:  history,
		enabled:  true,
	}

	a.preset = a.restorePreset()
	cfg, _ := gesture.ConfigForPreset(a.preset)
	a.manager = gesture.NewDefaultManager(cfg, a.onGesture)

	if config.Store != nil {
		a.dispatcher = action.NewDispatcher(config.Store.Bindings(), a.registry, action.NewExecutor(ActionTimeoutMs))
		a.restoreEnabled()
	}

	return a, nil
}

// restorePreset resolves the initial preset name from settings, then the
// config, then the default.
func (a *App) restorePreset() string {
	if a.config.Store != nil {
		if name, err := a.config.Store.Settings().Get(store.SettingPreset); err == nil {
			if _, ok := gesture.ConfigForPreset(name); ok {
				return name
			}
		}
	}
	if _, ok := gesture.ConfigForPreset(a.config.Preset); ok && a.config.Preset != "" {
		return a.config.Preset
	}
	return "default"
}

func (a *App) restoreEnabled() {
	if value, err := a.config.Store.Settings().Get(store.SettingEnabled); err == nil {
		a.enabled = value != "false"
	}
}

// onGesture is the central callback shared by every recognizer.
func (a *App) onGesture(ev gesture.Event) {
	a.historySeq++
	a.history.Add(a.historySeq, ev)

	if ev.State.Terminal() && a.config.Store != nil {
		if _, err := a.config.Store.Events().Create(ev, nil); err != nil {
			log.Printf("Failed to log gesture event: %v", err)
		}
	}

	if a.dispatcher != nil {
		a.dispatcher.Dispatch(ev)
	}

	if a.OnEvent != nil {
		a.OnEvent(ev)
	}
}

// HandleTouch feeds one touch event through the recognizer set. Events
// are processed one at a time; every recognition decision and callback
// completes before the next event is accepted.
func (a *App) HandleTouch(ev touch.Event) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if !a.enabled {
		return
	}

	if a.recording {
		a.recorder.Record(ev)
	}

	a.manager.HandleTouch(ev)

	switch ev.Phase {
	case touch.PhaseBegan:
		a.pressDown = true
	case touch.PhaseEnded, touch.PhaseCancelled:
		a.pressDown = false
	}
}

// SetEnabled enables or disables gesture recognition. Disabling resets
// every recognizer so a mid-flight gesture cannot complete later. The
// flag is persisted when a store is configured.
func (a *App) SetEnabled(enabled bool) {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.enabled = enabled
	if !enabled {
		a.manager.ResetAll()
		a.pressDown = false
	}

	if a.config.Store != nil {
		value := "true"
		if !enabled {
			value = "false"
		}
		if err := a.config.Store.Settings().Set(store.SettingEnabled, value); err != nil {
			log.Printf("Failed to persist enabled setting: %v", err)
		}
	}
}

// IsEnabled returns whether gesture recognition is currently enabled.
func (a *App) IsEnabled() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.enabled
}

// ResetAll returns every recognizer to the possible state.
func (a *App) ResetAll() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.manager.ResetAll()
	a.pressDown = false
}

// Preset returns the active preset name.
func (a *App) Preset() string {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.preset
}

// GestureConfig returns the active recognizer configuration.
func (a *App) GestureConfig() gesture.Config {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.manager.Config()
}

// ApplyPreset switches the recognizer set to a named preset. The set is
// rebuilt from scratch, abandoning any in-flight gesture. The preset is
// persisted when a store is configured.
func (a *App) ApplyPreset(name string) error {
	cfg, ok := gesture.ConfigForPreset(name)
	if !ok {
		return fmt.Errorf("unknown preset %q", name)
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	a.preset = name
	a.manager = gesture.NewDefaultManager(cfg, a.onGesture)
	a.pressDown = false

	if a.config.Store != nil {
		if err := a.config.Store.Settings().Set(store.SettingPreset, name); err != nil {
			log.Printf("Failed to persist preset setting: %v", err)
		}
	}

	log.Printf("Applied gesture preset %q", name)
	return nil
}

// StartRecording arms the recorder; subsequent touch events are buffered
// under the given session name until StopRecording.
func (a *App) StartRecording(name string) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.recording {
		return fmt.Errorf("already recording session %q", a.recordingName)
	}

	a.recorder.Reset()
	a.recording = true
	a.recordingName = name
	return nil
}

// IsRecording reports whether a recording is in progress.
func (a *App) IsRecording() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.recording
}

// StopRecording disarms the recorder and snapshots the buffered events
// into a session, persisting it when a store is configured. Stopping an
// empty recording returns the unrecorded session without persisting.
func (a *App) StopRecording() (*replay.Session, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if !a.recording {
		return nil, fmt.Errorf("not recording")
	}

	sess := a.recorder.Session(a.recordingName)
	a.recording = false
	a.recordingName = ""
	a.recorder.Reset()

	if a.config.Store != nil && len(sess.Events) > 0 {
		meta := &store.Session{ID: sess.ID, Name: sess.Name}
		if err := a.config.Store.Sessions().Create(meta, sess.Events); err != nil {
			return nil, fmt.Errorf("persist session: %w", err)
		}
	}

	return sess, nil
}

// ReplaySession loads a stored session, plays it through a fresh
// recognizer set built from the active config, logs the recognized
// events against the session and returns them. The live recognizer set
// is untouched.
func (a *App) ReplaySession(sessionID string) ([]gesture.Event, error) {
	if a.config.Store == nil {
		return nil, fmt.Errorf("no store configured")
	}

	meta, err := a.config.Store.Sessions().GetByID(sessionID)
	if err != nil {
		return nil, err
	}
	events, err := a.config.Store.Sessions().Events(sessionID)
	if err != nil {
		return nil, err
	}

	sess := &replay.Session{ID: meta.ID, Name: meta.Name, Events: events, CreatedAt: meta.CreatedAt}

	player := replay.NewPlayer(a.GestureConfig())
	recognized, err := player.Play(sess)
	if err != nil {
		return nil, err
	}

	for _, ev := range recognized {
		if !ev.State.Terminal() {
			continue
		}
		if _, err := a.config.Store.Events().Create(ev, &sess.ID); err != nil {
			return nil, fmt.Errorf("log replay event: %w", err)
		}
	}

	return recognized, nil
}

// History returns the recent gesture events, newest first.
func (a *App) History() []gesture.Event {
	values := a.history.Values()
	out := make([]gesture.Event, 0, len(values))
	for i := len(values) - 1; i >= 0; i-- {
		out = append(out, values[i])
	}
	return out
}

// DiscoverActions scans the actions directory.
func (a *App) DiscoverActions() error {
	return a.registry.Discover()
}

// Registry returns the action registry.
func (a *App) Registry() *action.Registry {
	return a.registry
}

// Store returns the backing store, which may be nil.
func (a *App) Store() *store.Store {
	return a.config.Store
}
