package rag

import (
	"context"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/DjordjeVuckovic/genai-lab/internal/collector"
	"github.com/fsnotify/fsnotify"
)

type WatchAction string

const (
	ActionIndexed WatchAction = "indexed"
	ActionRemoved WatchAction = "removed"
	ActionFailed  WatchAction = "failed"
)

// WatchEvent reports what the watcher did for a file change.
type WatchEvent struct {
	Path   string
	Action WatchAction
	Err    error
}

// Watch keeps dir indexed: written or created files are re-indexed and removed or
// renamed files lose their chunks. The channel closes when ctx is done. Events are
// dropped when nobody reads them.
func (p *Pipeline) Watch(ctx context.Context, dir string) (<-chan WatchEvent, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}

	err = filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return watcher.Add(path)
		}
		return nil
	})
	if err != nil {
		_ = watcher.Close()
		return nil, fmt.Errorf("watch %s: %w", dir, err)
	}

	supported := collector.NewFileCollector(dir).Supported
	events := make(chan WatchEvent, 16)
	emit := func(ev WatchEvent) {
		select {
		case events <- ev:
		default:
		}
	}

	go func() {
		defer close(events)
		defer watcher.Close()

		slog.Info("Watching documents directory", "dir", dir)
		for {
			select {
			case <-ctx.Done():
				slog.Info("Watcher context cancelled, shutting down", "dir", dir)
				return
			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				p.handle(ctx, watcher, event, supported, emit)
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				slog.Error("Watcher error", "error", err)
			}
		}
	}()

	return events, nil
}

func (p *Pipeline) handle(ctx context.Context, watcher *fsnotify.Watcher, event fsnotify.Event, supported func(string) bool, emit func(WatchEvent)) {
	if event.Has(fsnotify.Create) {
		if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
			if err := watcher.Add(event.Name); err != nil {
				slog.Warn("Could not watch new directory", "path", event.Name, "error", err)
			}
			return
		}
	}
	if !supported(event.Name) {
		return
	}

	switch {
	case event.Has(fsnotify.Write) || event.Has(fsnotify.Create):
		changed, err := p.IndexFile(ctx, event.Name)
		if err != nil {
			slog.Error("Error re-indexing document", "path", event.Name, "error", err)
			emit(WatchEvent{Path: event.Name, Action: ActionFailed, Err: err})
			return
		}
		if changed {
			emit(WatchEvent{Path: event.Name, Action: ActionIndexed})
		}
	case event.Has(fsnotify.Remove) || event.Has(fsnotify.Rename):
		if _, err := p.RemoveFile(ctx, event.Name); err != nil {
			emit(WatchEvent{Path: event.Name, Action: ActionFailed, Err: err})
			return
		}
		emit(WatchEvent{Path: event.Name, Action: ActionRemoved})
	}
}
