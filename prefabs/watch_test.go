package prefabs

import (
	"testing"
	"time"
)

func TestWatcherCloseClosesChannels(t *testing.T) {
	w, err := NewWatcher(t.TempDir())
	if err != nil {
		t.Fatalf("NewWatcher: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	deadline := time.After(2 * time.Second)
	select {
	case _, ok := <-w.Events:
		if ok {
			t.Fatal("Events should be closed after Close")
		}
	case <-deadline:
		t.Fatal("Events never closed")
	}
	select {
	case _, ok := <-w.Errors:
		if ok {
			t.Fatal("Errors should be closed after Close")
		}
	case <-deadline:
		t.Fatal("Errors never closed")
	}

	// Second Close is a no-op, not a double-close panic.
	if err := w.Close(); err != nil {
		t.Fatalf("second Close: %v", err)
	}
}

func TestWatcherMissingDir(t *testing.T) {
	if _, err := NewWatcher("no/such/dir"); err == nil {
		t.Fatal("watching a missing directory should error")
	}
}

func TestWatchedFileFilters(t *testing.T) {
	tests := []struct {
		name   string
		path   string
		spec   bool
		script bool
	}{
		{"yaml", "prefabs/field.yaml", true, false},
		{"yml", "prefabs/field.yml", true, false},
		{"yaml_upper", "prefabs/FIELD.YAML", true, false},
		{"tengo", "prefabs/scripts/boot.tengo", false, true},
		{"other", "prefabs/notes.txt", false, false},
		{"no_ext", "prefabs/field", false, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := isSpecFile(tt.path); got != tt.spec {
				t.Errorf("isSpecFile(%q) = %t, want %t", tt.path, got, tt.spec)
			}
			if got := isScriptFile(tt.path); got != tt.script {
				t.Errorf("isScriptFile(%q) = %t, want %t", tt.path, got, tt.script)
			}
		})
	}
}
