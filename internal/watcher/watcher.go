// Package watcher reports changes to transaction files under a set of
// directories, using fsnotify with a polling fallback.
package watcher

import (
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// fileState is what a change is detected against. Comparing mtime as well
// as size catches rewrites and truncations, not only appends.
type fileState struct {
	size    int64
	modTime time.Time
}

type Watcher struct {
	dirs         []string
	known        map[string]fileState
	mu           sync.Mutex
	pollInterval time.Duration
	onChange     func(paths []string)
	stop         chan struct{}
	stopOnce     sync.Once
	wg           sync.WaitGroup
	log          *slog.Logger
}

func New(dirs []string, pollInterval time.Duration, onChange func(paths []string)) *Watcher {
	if pollInterval <= 0 {
		pollInterval = 5 * time.Second
	}
	return &Watcher{
		dirs:         dirs,
		known:        make(map[string]fileState),
		pollInterval: pollInterval,
		onChange:     onChange,
		stop:         make(chan struct{}),
		log:          slog.Default().With("component", "watcher"),
	}
}

// InitialScan records the current state of every JSONL file so that only
// later changes are reported.
func (w *Watcher) InitialScan() ([]string, error) {
	files := w.walk()

	w.mu.Lock()
	paths := make([]string, 0, len(files))
	for path, st := range files {
		w.known[path] = st
		paths = append(paths, path)
	}
	w.mu.Unlock()

	sort.Strings(paths)
	return paths, nil
}

// Start begins watching with fsnotify + polling fallback.
func (w *Watcher) Start() error {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		w.log.Warn("fsnotify unavailable, polling only", "err", err)
	} else {
		for _, dir := range w.dirs {
			_ = filepath.Walk(dir, func(path string, info os.FileInfo, err error) error {
				if err == nil && info.IsDir() {
					_ = fsw.Add(path)
				}
				return nil
			})
		}

		w.wg.Add(1)
		go func() {
			defer w.wg.Done()
			for {
				select {
				case event, ok := <-fsw.Events:
					if !ok {
						return
					}
					if filepath.Ext(event.Name) == ".jsonl" {
						w.checkFile(event.Name)
					}
				case err, ok := <-fsw.Errors:
					if !ok {
						return
					}
					w.log.Warn("fsnotify error", "err", err)
				case <-w.stop:
					fsw.Close()
					return
				}
			}
		}()
	}

	// Polling fallback (always runs as safety net)
	w.wg.Add(1)
	go func() {
		defer w.wg.Done()
		ticker := time.NewTicker(w.pollInterval)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				w.pollAll()
			case <-w.stop:
				return
			}
		}
	}()

	return nil
}

// Stop signals goroutines to exit and waits for them to finish. It is safe
// to call more than once.
func (w *Watcher) Stop() {
	w.stopOnce.Do(func() { close(w.stop) })
	w.wg.Wait()
}

func (w *Watcher) checkFile(path string) {
	var cur fileState
	exists := false
	if info, err := os.Stat(path); err == nil && !info.IsDir() {
		cur = fileState{size: info.Size(), modTime: info.ModTime()}
		exists = true
	}

	w.mu.Lock()
	prev, known := w.known[path]
	changed := false
	switch {
	case exists && (!known || prev != cur):
		w.known[path] = cur
		changed = true
	case !exists && known:
		delete(w.known, path)
		changed = true
	}
	w.mu.Unlock()

	if changed {
		w.notify([]string{path})
	}
}

func (w *Watcher) pollAll() {
	files := w.walk()

	w.mu.Lock()
	var changed []string
	for path, cur := range files {
		if prev, known := w.known[path]; !known || prev != cur {
			w.known[path] = cur
			changed = append(changed, path)
		}
	}
	for path := range w.known {
		if _, ok := files[path]; !ok {
			delete(w.known, path)
			changed = append(changed, path)
		}
	}
	w.mu.Unlock()

	if len(changed) > 0 {
		sort.Strings(changed)
		w.notify(changed)
	}
}

func (w *Watcher) walk() map[string]fileState {
	files := make(map[string]fileState)
	for _, dir := range w.dirs {
		_ = filepath.Walk(dir, func(path string, info os.FileInfo, err error) error {
			if err != nil || info.IsDir() || filepath.Ext(path) != ".jsonl" {
				return nil
			}
			files[path] = fileState{size: info.Size(), modTime: info.ModTime()}
			return nil
		})
	}
	return files
}

func (w *Watcher) notify(paths []string) {
	w.log.Debug("files changed", "paths", paths)
	if w.onChange != nil {
		w.onChange(paths)
	}
}
