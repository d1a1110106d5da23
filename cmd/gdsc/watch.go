package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/gdtools/gdsc/pkg/gdscript/gdscript"
	"github.com/gdtools/gdsc/pkg/gdscript/parser"
)

// Watcher re-parses scripts as they change and prints one status line
// per change, the same path:STATUS format as directory mode.
type Watcher struct {
	watcher   *fsnotify.Watcher
	root      string
	extension string
	debounce  time.Duration
	stdout    io.Writer
	stderr    io.Writer

	// Track last change time to debounce rapid changes
	mu         sync.Mutex
	lastChange map[string]time.Time
}

// NewWatcher creates a watcher over every directory under root.
func NewWatcher(root, extension string, debounce time.Duration, stdout, stderr io.Writer) (*Watcher, error) {
	fsWatcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	return &Watcher{
		watcher:    fsWatcher,
		root:       root,
		extension:  extension,
		debounce:   debounce,
		stdout:     stdout,
		stderr:     stderr,
		lastChange: make(map[string]time.Time),
	}, nil
}

// Run watches until the context is cancelled.
func (w *Watcher) Run(ctx context.Context) error {
	defer w.watcher.Close()

	if err := w.watchDirRecursive(w.root); err != nil {
		return err
	}
	fmt.Fprintf(w.stdout, "watching %s for %s changes\n", w.root, w.extension)

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-w.watcher.Events:
			if !ok {
				return nil
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			w.handleChange(event.Name)

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return nil
			}
			fmt.Fprintf(w.stderr, "watcher error: %v\n", err)
		}
	}
}

// watchDirRecursive adds a directory and its subdirectories to the
// watch list, skipping hidden directories.
func (w *Watcher) watchDirRecursive(root string) error {
	return filepath.Walk(root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return nil
		}
		if info.IsDir() {
			if strings.HasPrefix(info.Name(), ".") && path != root {
				return filepath.SkipDir
			}
			return w.watcher.Add(path)
		}
		return nil
	})
}

func (w *Watcher) handleChange(path string) {
	if !strings.HasSuffix(path, w.extension) {
		// A new directory may need watching.
		if info, err := os.Stat(path); err == nil && info.IsDir() {
			w.watchDirRecursive(path)
		}
		return
	}

	w.mu.Lock()
	if time.Since(w.lastChange[path]) < w.debounce {
		w.mu.Unlock()
		return
	}
	w.lastChange[path] = time.Now()
	w.mu.Unlock()

	r := gdscript.Report{Path: path}
	if data, err := os.ReadFile(path); err != nil {
		r.Err = err
	} else if _, perr := parser.ParseFile(string(data)); perr != nil {
		r.Err = perr
	}
	fmt.Fprintf(w.stdout, "%s:%s\n", r.Path, r.Status())
}
