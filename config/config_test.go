package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestEmbeddedConstantsMatchDefault(t *testing.T) {
	Dir = t.TempDir()
	got, err := LoadConstants(DefaultFile)
	if err != nil {
		t.Fatalf("load embedded: %v", err)
	}
	if got != Default() {
		t.Fatalf("embedded constants differ from Default():\n got %+v\nwant %+v", got, Default())
	}
}

func TestLoadConstantsOverlay(t *testing.T) {
	cases := []struct {
		name  string
		yaml  string
		check func(t *testing.T, c Constants)
	}{
		{
			name: "gravity_only",
			yaml: "gravity: -9.8\n",
			check: func(t *testing.T, c Constants) {
				if c.Gravity != -9.8 {
					t.Fatalf("gravity = %v", c.Gravity)
				}
				if c.Wood != Default().Wood {
					t.Fatalf("wood lost defaults: %+v", c.Wood)
				}
			},
		},
		{
			name: "nested_inline",
			yaml: "player:\n  density: 2\n  jump_force: 4\n",
			check: func(t *testing.T, c Constants) {
				if c.Player.Density != 2 || c.Player.JumpForce != 4 {
					t.Fatalf("player = %+v", c.Player)
				}
				if c.Player.WalkForce != Default().Player.WalkForce {
					t.Fatalf("walk force lost default: %v", c.Player.WalkForce)
				}
			},
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			Dir = t.TempDir()
			if err := os.WriteFile(filepath.Join(Dir, "custom.yaml"), []byte(c.yaml), 0o644); err != nil {
				t.Fatalf("write: %v", err)
			}
			got, err := LoadConstants("custom.yaml")
			if err != nil {
				t.Fatalf("load: %v", err)
			}
			c.check(t, got)
		})
	}
}

func TestLoadConstantsErrors(t *testing.T) {
	Dir = t.TempDir()
	if _, err := LoadConstants("missing.yaml"); err == nil {
		t.Fatalf("expected error for missing file")
	}
	path := filepath.Join(Dir, "bad.yaml")
	if err := os.WriteFile(path, []byte("gravity: [1, 2"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	c, err := LoadConstantsFile(path)
	if err == nil {
		t.Fatalf("expected unmarshal error")
	}
	if c != Default() {
		t.Fatalf("failed load should return defaults")
	}
}

func TestLoadScriptPrefersDisk(t *testing.T) {
	Dir = t.TempDir()
	embedded, err := LoadScript("fireball.tengo")
	if err != nil || len(embedded) == 0 {
		t.Fatalf("embedded script: %v", err)
	}
	if err := os.MkdirAll(filepath.Join(Dir, "scripts"), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(filepath.Join(Dir, "scripts", "fireball.tengo"), []byte("vx = 1.0\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	got, err := LoadScript("scripts/fireball.tengo")
	if err != nil || string(got) != "vx = 1.0\n" {
		t.Fatalf("disk script = %q, %v", got, err)
	}
}

func TestKindOf(t *testing.T) {
	cases := []struct {
		path string
		kind ChangeKind
		ok   bool
	}{
		{"constants.yaml", ConstantsChange, true},
		{"dir/Level.YML", ConstantsChange, true},
		{"ability.tengo", ScriptChange, true},
		{"notes.txt", 0, false},
		{"yaml", 0, false},
	}
	for _, c := range cases {
		t.Run(c.path, func(t *testing.T) {
			kind, ok := kindOf(c.path)
			if ok != c.ok || kind != c.kind {
				t.Fatalf("kindOf(%q) = %v %v, want %v %v", c.path, kind, ok, c.kind, c.ok)
			}
		})
	}
}

func TestWatcherReportsChanges(t *testing.T) {
	cases := []struct {
		name string
		file string
		kind ChangeKind
	}{
		{"constants", "constants.yaml", ConstantsChange},
		{"script", "ability.tengo", ScriptChange},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			dir := t.TempDir()
			w, err := NewWatcher(dir)
			if err != nil {
				t.Fatalf("watcher: %v", err)
			}
			defer w.Close()

			if err := os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0o644); err != nil {
				t.Fatalf("write: %v", err)
			}
			target := filepath.Join(dir, c.file)
			for i := 0; i < 3; i++ {
				if err := os.WriteFile(target, []byte("x: 1\n"), 0o644); err != nil {
					t.Fatalf("write: %v", err)
				}
			}

			select {
			case got := <-w.Changes:
				if got != (Change{Path: target, Kind: c.kind}) {
					t.Fatalf("change = %+v, want %s %v", got, target, c.kind)
				}
			case err := <-w.Errors:
				t.Fatalf("watch error: %v", err)
			case <-time.After(2 * time.Second):
				t.Fatalf("no change reported")
			}

			select {
			case got := <-w.Changes:
				t.Fatalf("burst reported twice: %+v", got)
			case <-time.After(3 * settle):
			}
		})
	}
}

func TestWatcherCloseIsRepeatable(t *testing.T) {
	w, err := NewWatcher(t.TempDir())
	if err != nil {
		t.Fatalf("watcher: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("second close: %v", err)
	}
	if _, ok := <-w.Changes; ok {
		t.Fatalf("changes channel still open")
	}
}
