package action

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"
)

// writeManifest creates an action subdirectory with an action.json file.
func writeManifest(t *testing.T, actionsDir string, m Manifest) string {
	t.Helper()

	dir := filepath.Join(actionsDir, m.Name)
	if err := os.MkdirAll(dir, 0755); err != nil {
		t.Fatalf("failed to create action dir: %v", err)
	}

	data, err := json.Marshal(m)
	if err != nil {
		t.Fatalf("failed to marshal manifest: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, "action.json"), data, 0644); err != nil {
		t.Fatalf("failed to write manifest: %v", err)
	}

	return dir
}

func TestRegistry_Discover(t *testing.T) {
	tmpDir := t.TempDir()

	actionDir := writeManifest(t, tmpDir, Manifest{
		Name:        "eventlog",
		Version:     "1.0.0",
		Description: "Appends gesture events to a log file",
		Executable:  "eventlog",
	})

	registry := NewRegistry(tmpDir)
	if err := registry.Discover(); err != nil {
		t.Fatalf("Discover() failed: %v", err)
	}

	actions := registry.List()
	if len(actions) != 1 {
		t.Fatalf("expected 1 action, got %d", len(actions))
	}

	a := actions[0]
	if a.Manifest.Name != "eventlog" {
		t.Errorf("name = %q, want %q", a.Manifest.Name, "eventlog")
	}
	if a.Path != actionDir {
		t.Errorf("path = %q, want %q", a.Path, actionDir)
	}
	if a.Executable != filepath.Join(actionDir, "eventlog") {
		t.Errorf("executable = %q, want %q", a.Executable, filepath.Join(actionDir, "eventlog"))
	}
}

func TestRegistry_Discover_MultipleActions(t *testing.T) {
	tmpDir := t.TempDir()

	for _, name := range []string{"action-a", "action-b"} {
		writeManifest(t, tmpDir, Manifest{Name: name, Version: "1.0.0", Executable: name})
	}

	registry := NewRegistry(tmpDir)
	if err := registry.Discover(); err != nil {
		t.Fatalf("Discover() failed: %v", err)
	}

	if got := len(registry.List()); got != 2 {
		t.Errorf("expected 2 actions, got %d", got)
	}
}

func TestRegistry_Discover_MissingDir(t *testing.T) {
	registry := NewRegistry(filepath.Join(t.TempDir(), "does-not-exist"))
	if err := registry.Discover(); err != nil {
		t.Errorf("Discover() on missing dir should be nil, got %v", err)
	}
	if got := len(registry.List()); got != 0 {
		t.Errorf("expected 0 actions, got %d", got)
	}
}

func TestRegistry_Discover_SkipsInvalidManifest(t *testing.T) {
	tmpDir := t.TempDir()

	dir := filepath.Join(tmpDir, "broken")
	if err := os.MkdirAll(dir, 0755); err != nil {
		t.Fatalf("failed to create action dir: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, "action.json"), []byte("not json"), 0644); err != nil {
		t.Fatalf("failed to write manifest: %v", err)
	}

	writeManifest(t, tmpDir, Manifest{Name: "good", Version: "1.0.0", Executable: "good"})

	registry := NewRegistry(tmpDir)
	if err := registry.Discover(); err != nil {
		t.Fatalf("Discover() failed: %v", err)
	}

	if got := len(registry.List()); got != 1 {
		t.Errorf("expected 1 action (broken skipped), got %d", got)
	}
	if _, err := registry.Get("good"); err != nil {
		t.Errorf("Get(good) failed: %v", err)
	}
}

func TestRegistry_Get_NotFound(t *testing.T) {
	registry := NewRegistry(t.TempDir())
	if err := registry.Discover(); err != nil {
		t.Fatalf("Discover() failed: %v", err)
	}

	_, err := registry.Get("nonexistent")
	if !errors.Is(err, ErrActionNotFound) {
		t.Errorf("err = %v, want ErrActionNotFound", err)
	}
}

func TestRegistry_Discover_Rescan(t *testing.T) {
	tmpDir := t.TempDir()
	registry := NewRegistry(tmpDir)

	if err := registry.Discover(); err != nil {
		t.Fatalf("Discover() failed: %v", err)
	}
	if got := len(registry.List()); got != 0 {
		t.Fatalf("expected 0 actions, got %d", got)
	}

	writeManifest(t, tmpDir, Manifest{Name: "late", Version: "1.0.0", Executable: "late"})

	if err := registry.Discover(); err != nil {
		t.Fatalf("Discover() failed: %v", err)
	}
	if got := len(registry.List()); got != 1 {
		t.Errorf("expected 1 action after rescan, got %d", got)
	}
}
