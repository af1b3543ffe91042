package watcher

import (
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/samber/lo"
	"github.com/tristendillon/stitch/core/logger"
)

const debounceDelay = 500 * time.Millisecond

// FileWatcher watches a fixed set of files and invokes OnChange after a
// debounce window whenever one of them is written, created, or removed.
// Parent directories are watched rather than the files themselves so that
// editors that replace files on save keep triggering events.
type FileWatcher struct {
	watcher  *fsnotify.Watcher
	files    map[string]struct{}
	onChange func() error

	mu            sync.Mutex
	debounceTimer *time.Timer
}

func NewFileWatcher(files []string, onChange func() error) (*FileWatcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create file watcher: %w", err)
	}

	fw := &FileWatcher{
		watcher:  w,
		files:    make(map[string]struct{}, len(files)),
		onChange: onChange,
	}
	for _, f := range files {
		abs, err := filepath.Abs(f)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve watch path %s: %w", f, err)
		}
		fw.files[abs] = struct{}{}
	}

	dirs := lo.Uniq(lo.MapToSlice(fw.files, func(f string, _ struct{}) string {
		return filepath.Dir(f)
	}))
	for _, dir := range dirs {
		logger.Debug("Adding watcher for: %s", dir)
		if err := w.Add(dir); err != nil {
			return nil, fmt.Errorf("failed to add watcher for %s: %w", dir, err)
		}
	}

	return fw, nil
}

func (fw *FileWatcher) Watch() error {
	for {
		select {
		case event, ok := <-fw.watcher.Events:
			if !ok {
				return fmt.Errorf("watcher events channel closed")
			}
			if !fw.isWatchedFile(event.Name) {
				continue
			}
			logger.Debug("File event: %s %s", event.Op, event.Name)
			if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) || event.Has(fsnotify.Remove) || event.Has(fsnotify.Rename) {
				fw.debounceChange()
			}

		case err, ok := <-fw.watcher.Errors:
			if !ok {
				return fmt.Errorf("watcher errors channel closed")
			}
			logger.Error("Watcher error: %v", err)
		}
	}
}

func (fw *FileWatcher) Close() error {
	fw.mu.Lock()
	defer fw.mu.Unlock()

	if fw.debounceTimer != nil {
		fw.debounceTimer.Stop()
	}
	return fw.watcher.Close()
}

func (fw *FileWatcher) isWatchedFile(path string) bool {
	abs, err := filepath.Abs(path)
	if err != nil {
		return false
	}
	_, ok := fw.files[abs]
	return ok
}

func (fw *FileWatcher) debounceChange() {
	fw.mu.Lock()
	defer fw.mu.Unlock()

	if fw.debounceTimer != nil {
		fw.debounceTimer.Stop()
	}

	fw.debounceTimer = time.AfterFunc(debounceDelay, func() {
		logger.Debug("File changes detected, regenerating...")
		if err := fw.onChange(); err != nil {
			logger.Error("Watcher.OnChange failed: %v", err)
		}
	})
}
