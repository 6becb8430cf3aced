package action

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"sync"
)

// ErrActionNotFound is returned when a requested action cannot be found.
var ErrActionNotFound = errors.New("action not found")

// Registry discovers and indexes actions on disk.
type Registry struct {
	actionsDir string
	actions    map[string]*Action
	mu         sync.RWMutex
}

// NewRegistry creates a Registry rooted at the given actions directory.
func NewRegistry(actionsDir string) *Registry {
	return &Registry{
		actionsDir: actionsDir,
		actions:    make(map[string]*Action),
	}
}

// Discover scans the actions directory for action.json manifests. Each
// subdirectory is expected to be one action. A missing directory is not
// an error; subdirectories with unreadable or invalid manifests are
// skipped.
func (r *Registry) Discover() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.actions = make(map[string]*Action)

	info, err := os.Stat(r.actionsDir)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return err
	}
	if !info.IsDir() {
		return nil
	}

	entries, err := os.ReadDir(r.actionsDir)
	if err != nil {
		return err
	}

	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}

		actionPath := filepath.Join(r.actionsDir, entry.Name())
		manifestPath := filepath.Join(actionPath, "action.json")

		manifestData, err := os.ReadFile(manifestPath)
		if err != nil {
			continue
		}

		var manifest Manifest
		if err := json.Unmarshal(manifestData, &manifest); err != nil {
			continue
		}

		r.actions[manifest.Name] = &Action{
			Manifest:   manifest,
			Path:       actionPath,
			Executable: filepath.Join(actionPath, manifest.Executable),
		}
	}

	return nil
}

// Get returns an action by name.
// Returns ErrActionNotFound if the action does not exist.
func (r *Registry) Get(name string) (*Action, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	a, ok := r.actions[name]
	if !ok {
		return nil, ErrActionNotFound
	}

	return a, nil
}

// List returns all discovered actions.
func (r *Registry) List() []*Action {
	r.mu.RLock()
	defer r.mu.RUnlock()

	actions := make([]*Action, 0, len(r.actions))
	for _, a := range r.actions {
		actions = append(actions, a)
	}

	return actions
}

// ActionsDir returns the actions directory path.
func (r *Registry) ActionsDir() string {
	return r.actionsDir
}
