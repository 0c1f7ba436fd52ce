package levels

import (
	"embed"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
)

//go:embed *.json
var LevelsFS embed.FS

const (
	DefaultLevel   = "level1"
	DefaultTileset = "tileset.json"
)

// Load parses a level by name. Names without a path separator are read from
// the embedded levels; anything else is read from disk.
func Load(name string, logger *log.Logger) (*Level, error) {
	if name == "" {
		name = DefaultLevel
	}
	data, err := read(name)
	if err != nil {
		return nil, fmt.Errorf("levels: read %s: %w", name, err)
	}
	tileset, err := fs.ReadFile(LevelsFS, DefaultTileset)
	if err != nil {
		return nil, fmt.Errorf("levels: read tileset: %w", err)
	}
	parser, err := NewParser(tileset, logger)
	if err != nil {
		return nil, err
	}
	return parser.Parse(strings.TrimSuffix(filepath.Base(name), ".json"), data)
}

func read(name string) ([]byte, error) {
	if strings.ContainsRune(name, filepath.Separator) || strings.Contains(name, "/") {
		return os.ReadFile(name)
	}
	if !strings.HasSuffix(name, ".json") {
		name += ".json"
	}
	return fs.ReadFile(LevelsFS, name)
}

// Names lists the embedded levels.
func Names() []string {
	entries, err := fs.ReadDir(LevelsFS, ".")
	if err != nil {
		return nil
	}
	var names []string
	for _, e := range entries {
		if e.Name() == DefaultTileset {
			continue
		}
		names = append(names, strings.TrimSuffix(e.Name(), ".json"))
	}
	return names
}
