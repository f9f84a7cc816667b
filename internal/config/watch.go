// SPDX-License-Identifier: Unlicense OR MIT

package config

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
)

// Watch calls onChange with the reloaded configuration each time the file
// at path is written or created. A reload that fails is logged and the
// previous configuration stays in effect. Watch returns when ctx is done.
//
// The directory holding path is watched rather than the file: editors
// that save by renaming or replacing the file would otherwise end the
// watch.
func Watch(ctx context.Context, path string, onChange func(*Config)) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("config: watch: %w", err)
	}
	defer w.Close()
	dir := filepath.Dir(path)
	if err := w.Add(dir); err != nil {
		return fmt.Errorf("config: watch %s: %w", dir, err)
	}
	name := filepath.Clean(path)
	slog.Debug("config: watching", "path", name)

	for {
		select {
		case <-ctx.Done():
			return nil
		case e, ok := <-w.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(e.Name) != name || e.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			reload(name, onChange)
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			slog.Error("config: watcher", "err", err)
		}
	}
}

func reload(path string, onChange func(*Config)) {
	cfg, err := Load(path)
	if err != nil {
		// Often a save caught half way; the next write event retries.
		slog.Warn("config: reload failed", "path", path, "err", err)
		return
	}
	slog.Info("config: reloaded", "path", path)
	onChange(cfg)
}
