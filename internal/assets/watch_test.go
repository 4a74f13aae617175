package assets

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestWatcherReportsChanges(t *testing.T) {
	dir := t.TempDir()
	scene := filepath.Join(dir, "scene.xml")
	other := filepath.Join(dir, "notes.txt")
	if err := os.WriteFile(scene, []byte("<world/>"), 0o644); err != nil {
		t.Fatal(err)
	}

	w, err := NewWatcher([]string{scene}, 20*time.Millisecond)
	if err != nil {
		t.Fatalf("NewWatcher failed: %v", err)
	}
	defer w.Close()

	// Unwatched files in the same directory are ignored.
	if err := os.WriteFile(other, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	select {
	case names := <-w.Changes():
		t.Fatalf("unexpected change %v", names)
	case <-time.After(200 * time.Millisecond):
	}

	if err := os.WriteFile(scene, []byte("<world></world>"), 0o644); err != nil {
		t.Fatal(err)
	}
	select {
	case names := <-w.Changes():
		want, _ := filepath.Abs(scene)
		if len(names) != 1 || names[0] != want {
			t.Errorf("changes = %v, want [%s]", names, want)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("no change reported")
	}
}

func TestWatcherMissingDirectory(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "gone", "scene.xml")
	if _, err := NewWatcher([]string{missing}, DefaultDebounce); err == nil {
		t.Error("expected error watching a missing directory")
	}
}
