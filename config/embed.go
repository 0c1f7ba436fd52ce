package config

import (
	"embed"
	"os"
	"path/filepath"
	"strings"
)

//go:embed *.yaml
var ConstantsFS embed.FS

//go:embed scripts/*.tengo
var ScriptsFS embed.FS

// Dir is checked before the embedded files so edits on disk win.
var Dir = "config"

// Load returns the named file from Dir, falling back to the embedded copy.
func Load(name string) ([]byte, error) {
	clean := cleanPath(name)
	if data, err := os.ReadFile(diskPath(clean)); err == nil {
		return data, nil
	}
	return ConstantsFS.ReadFile(clean)
}

// LoadScript returns the named ability script from Dir/scripts, falling back
// to the embedded copy.
func LoadScript(name string) ([]byte, error) {
	clean := "scripts/" + strings.TrimPrefix(cleanPath(name), "scripts/")
	if data, err := os.ReadFile(diskPath(clean)); err == nil {
		return data, nil
	}
	return ScriptsFS.ReadFile(clean)
}

func cleanPath(path string) string {
	s := filepath.ToSlash(path)
	if after, ok := strings.CutPrefix(s, filepath.ToSlash(Dir)+"/"); ok {
		return after
	}
	return s
}

func diskPath(clean string) string {
	return filepath.Join(Dir, filepath.FromSlash(clean))
}
