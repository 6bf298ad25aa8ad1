package main

import (
	"context"
	"path/filepath"

	"github.com/fsnotify/fsnotify"

	"github.com/alexisbeaulieu97/tablekit/internal/logger"
)

// watchFile calls onChange after every write to path until ctx ends. The
// parent directory is watched so editors that replace the file are seen.
func watchFile(ctx context.Context, path string, log *logger.Logger, onChange func()) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return newCommandError("preview", "starting the file watcher", err, "Run without --watch.")
	}
	defer watcher.Close()

	abs, err := filepath.Abs(path)
	if err != nil {
		return err
	}
	if err := watcher.Add(filepath.Dir(abs)); err != nil {
		return newCommandError("preview", "watching "+path, err, "Check that the directory exists.")
	}
	log.WithFields(map[string]any{"path": abs}).Debug("watching path")

	mask := fsnotify.Create | fsnotify.Write
	for {
		select {
		case <-ctx.Done():
			return nil
		case evt, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if evt.Op&mask == 0 || filepath.Clean(evt.Name) != abs {
				continue
			}
			log.WithFields(map[string]any{"event": evt.String()}).Debug("table file changed")
			onChange()
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			log.Error(err, "file watcher error")
		}
	}
}
