package prefabs

import (
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// ChangeKind classifies what a watched file edit affects.
type ChangeKind int

const (
	// ChangeSpec is a yaml prefab edit; the catalog can be reloaded live.
	ChangeSpec ChangeKind = iota
	// ChangeScript is a tengo edit; scripts are embedded, so this only
	// informs the developer a rebuild is needed.
	ChangeScript
)

// Change is one hot-reloadable file edit.
type Change struct {
	Name string
	Kind ChangeKind
}

// Watcher reports spec and script edits for development hot reload. Editors
// tend to save in several filesystem operations; repeated events for one save
// are collapsed by comparing the file's on-disk modification time against the
// last change delivered for it.
type Watcher struct {
	fs      *fsnotify.Watcher
	Changes chan Change
	Errors  chan error

	done      chan struct{}
	closeOnce sync.Once

	seen map[string]time.Time
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
		done:    make(chan struct{}),
		seen:    make(map[string]time.Time),
	}
	go w.loop()
	return w, nil
}

func (w *Watcher) Close() error {
	var err error
	w.closeOnce.Do(func() {
		close(w.done)
		err = w.fs.Close()
		close(w.Changes)
		close(w.Errors)
	})
	return err
}

func (w *Watcher) loop() {
	for {
		select {
		case ev, ok := <-w.fs.Events:
			if !ok {
				return
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename|fsnotify.Remove) == 0 {
				continue
			}
			kind, ok := classifyChange(ev.Name)
			if !ok {
				continue
			}
			if !w.dirty(ev.Name) {
				continue
			}
			w.Changes <- Change{Name: ev.Name, Kind: kind}
		case err, ok := <-w.fs.Errors:
			if !ok {
				return
			}
			w.Errors <- err
		case <-w.done:
			return
		}
	}
}

// dirty reports whether the file's modification time moved since the last
// change delivered for it. A file with no on-disk copy (removed, or rename
// in flight) always counts as dirty.
func (w *Watcher) dirty(name string) bool {
	mt, ok := ModTime(name)
	if !ok {
		delete(w.seen, name)
		return true
	}
	if prev, ok := w.seen[name]; ok && !mt.After(prev) {
		return false
	}
	w.seen[name] = mt
	return true
}

func classifyChange(path string) (ChangeKind, bool) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return ChangeSpec, true
	case ".tengo":
		return ChangeScript, true
	}
	return 0, false
}
