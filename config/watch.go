package config

import (
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// settle is how long a file must stay quiet before its change is reported.
const settle = 100 * time.Millisecond

// ChangeKind says which reloadable asset a file holds.
type ChangeKind int

const (
	ConstantsChange ChangeKind = iota
	ScriptChange
)

func (k ChangeKind) String() string {
	switch k {
	case ConstantsChange:
		return "constants"
	case ScriptChange:
		return "script"
	default:
		return "unknown"
	}
}

// Change is a settled edit to a constants or script file.
type Change struct {
	Path string
	Kind ChangeKind
}

// kindOf classifies a path by extension. Anything else is not reloadable.
func kindOf(path string) (ChangeKind, bool) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return ConstantsChange, true
	case ".tengo":
		return ScriptChange, true
	}
	return 0, false
}

// Watcher turns filesystem notifications under a set of directories into
// Changes. Editors save in bursts, so a path is reported once it has been
// quiet for the settle period.
type Watcher struct {
	fs      *fsnotify.Watcher
	Changes chan Change
	Errors  chan error
	stop    chan struct{}
	stopped chan struct{}
	once    sync.Once
}

func NewWatcher(dirs ...string) (*Watcher, error) {
	fs, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	for _, dir := range dirs {
		if err := fs.Add(dir); err != nil {
			_ = fs.Close()
			return nil, err
		}
	}

	w := &Watcher{
		fs:      fs,
		Changes: make(chan Change, 16),
		Errors:  make(chan error, 1),
		stop:    make(chan struct{}),
		stopped: make(chan struct{}),
	}
	go w.loop()
	return w, nil
}

// Close stops the watcher and closes both channels. It is safe to call more
// than once.
func (w *Watcher) Close() error {
	var err error
	w.once.Do(func() {
		close(w.stop)
		err = w.fs.Close()
		<-w.stopped
		close(w.Changes)
		close(w.Errors)
	})
	return err
}

func (w *Watcher) loop() {
	defer close(w.stopped)

	pending := make(map[string]ChangeKind)
	timer := time.NewTimer(settle)
	if !timer.Stop() {
		<-timer.C
	}
	defer timer.Stop()

	for {
		select {
		case ev, ok := <-w.fs.Events:
			if !ok {
				return
			}
			if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) {
				continue
			}
			kind, ok := kindOf(ev.Name)
			if !ok {
				continue
			}
			pending[ev.Name] = kind
			timer.Reset(settle)
		case <-timer.C:
			if !w.flush(pending) {
				return
			}
		case err, ok := <-w.fs.Errors:
			if !ok {
				return
			}
			select {
			case w.Errors <- err:
			default:
			}
		case <-w.stop:
			return
		}
	}
}

// flush reports pending changes in path order and empties the set. It
// returns false if the watcher was closed while sending.
func (w *Watcher) flush(pending map[string]ChangeKind) bool {
	paths := make([]string, 0, len(pending))
	for p := range pending {
		paths = append(paths, p)
	}
	sort.Strings(paths)
	for _, p := range paths {
		select {
		case w.Changes <- Change{Path: p, Kind: pending[p]}:
		case <-w.stop:
			return false
		}
		delete(pending, p)
	}
	return true
}
