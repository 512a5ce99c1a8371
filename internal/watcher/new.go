package watcher

import (
	"fmt"

	"github.com/fsnotify/fsnotify"

	"github.com/ntbanh2504/theme-coder/internal/logger"
)

// New creates a Watcher over the transcript directory. Files are
// handled one at a time, in arrival order, so the model endpoint never
// sees overlapping requests.
func New(inputDir string, handler EventHandler, log logger.Logger) (Watcher, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}

	if err := watcher.Add(inputDir); err != nil {
		watcher.Close()
		return nil, fmt.Errorf("add watch path: %w", err)
	}

	return &implWatcher{
		inputDir: inputDir,
		handler:  handler,
		logger:   log,
		watcher:  watcher,
	}, nil
}
