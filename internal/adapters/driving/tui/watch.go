package tui

import (
	"context"
	"fmt"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/fsnotify/fsnotify"

	"github.com/sp80808/contextual-prompts/internal/logger"
)

// WatchDataset calls send with DatasetChangedMsg whenever the file at path is
// written, created or replaced, until ctx is done.
// The parent directory is watched so editors that save by rename are seen.
func WatchDataset(ctx context.Context, path string, send func(tea.Msg)) error {
	abs, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("resolving %s: %w", path, err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("creating watcher: %w", err)
	}
	if err := watcher.Add(filepath.Dir(abs)); err != nil {
		watcher.Close()
		return fmt.Errorf("watching %s: %w", filepath.Dir(abs), err)
	}

	go func() {
		defer watcher.Close()
		for {
			select {
			case <-ctx.Done():
				return
			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				if filepath.Clean(event.Name) != abs {
					continue
				}
				if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) || event.Has(fsnotify.Rename) {
					logger.Debug("Dataset changed: %s", event)
					send(DatasetChangedMsg{})
				}
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				logger.Warn("Dataset watcher: %v", err)
			}
		}
	}()

	return nil
}
