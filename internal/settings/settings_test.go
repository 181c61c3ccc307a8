package settings

import (
	"os"
	"path/filepath"
	"testing"
)

func newTestSettings(t *testing.T) (*Settings, string) {
	t.Helper()

	path := filepath.Join(t.TempDir(), "settings.json")
	s, err := New(path)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return s, path
}

func TestDefaults(t *testing.T) {
	s, _ := newTestSettings(t)

	if got := s.GetString("app.theme"); got != "dark" {
		t.Errorf("app.theme = %q, want dark", got)
	}
	if got := s.GetString("tasks.default_priority"); got != "MEDIUM" {
		t.Errorf("tasks.default_priority = %q, want MEDIUM", got)
	}
	if got := s.GetInt("tasks.default_due_days"); got != 7 {
		t.Errorf("tasks.default_due_days = %d, want 7", got)
	}
	if !s.GetBool("tasks.show_completed") {
		t.Error("tasks.show_completed = false, want true")
	}
}

func TestSetAndSaveRoundTrip(t *testing.T) {
	s, path := newTestSettings(t)

	s.Set("app.theme", "light")
	s.Set("tasks.default_due_days", 3)
	if err := s.Save(); err != nil {
		t.Fatalf("Save: %v", err)
	}

	if _, err := os.Stat(path); err != nil {
		t.Fatalf("settings file missing after Save: %v", err)
	}

	reloaded, err := New(path)
	if err != nil {
		t.Fatalf("New after save: %v", err)
	}
	if got := reloaded.GetString("app.theme"); got != "light" {
		t.Errorf("app.theme = %q after reload, want light", got)
	}
	if got := reloaded.GetInt("tasks.default_due_days"); got != 3 {
		t.Errorf("tasks.default_due_days = %d after reload, want 3", got)
	}
	// Untouched keys keep their defaults
	if got := reloaded.GetString("tasks.default_priority"); got != "MEDIUM" {
		t.Errorf("tasks.default_priority = %q after reload, want MEDIUM", got)
	}
}

func TestMissingFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "does-not-exist.json")
	s, err := New(path)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if got := s.GetString("app.theme"); got != "dark" {
		t.Errorf("app.theme = %q, want dark", got)
	}
}

func TestDotNotationNestedKeys(t *testing.T) {
	s, _ := newTestSettings(t)

	s.Set("window.width", 120)
	if got := s.GetInt("window.width"); got != 120 {
		t.Errorf("window.width = %d, want 120", got)
	}
	if s.Get("window.missing") != nil {
		t.Errorf("window.missing = %v, want nil", s.Get("window.missing"))
	}
}
