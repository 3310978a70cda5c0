package opengl

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
)

// shaderExts are the file extensions ShaderWatcher reports.
var shaderExts = map[string]bool{
	".vert": true,
	".frag": true,
	".glsl": true,
}

// ShaderWatcher reports edits to shader files in a directory. It does not
// touch GL; the render loop drains Changes and rebuilds programs itself.
type ShaderWatcher struct {
	watcher *fsnotify.Watcher
	changes chan string
	logger  *slog.Logger
}

// NewShaderWatcher starts watching dir. Call Run to deliver events.
func NewShaderWatcher(dir string, logger *slog.Logger) (*ShaderWatcher, error) {
	if logger == nil {
		logger = slog.Default()
	}
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("shader watcher: %w", err)
	}
	if err := w.Add(dir); err != nil {
		w.Close()
		return nil, fmt.Errorf("watch %s: %w", dir, err)
	}
	return &ShaderWatcher{
		watcher: w,
		changes: make(chan string, 16),
		logger:  logger,
	}, nil
}

// Changes delivers the base name of every shader file written or created.
// Events are dropped when nobody drains the channel.
func (sw *ShaderWatcher) Changes() <-chan string {
	return sw.changes
}

// Run forwards file events until ctx is done or the watcher is closed.
func (sw *ShaderWatcher) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case event, ok := <-sw.watcher.Events:
			if !ok {
				return
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			name := filepath.Base(event.Name)
			if !shaderExts[filepath.Ext(name)] {
				continue
			}
			select {
			case sw.changes <- name:
				sw.logger.Debug("shader changed", "file", name)
			default:
				sw.logger.Debug("shader change dropped", "file", name)
			}
		case err, ok := <-sw.watcher.Errors:
			if !ok {
				return
			}
			sw.logger.Error("shader watcher error", "error", err)
		}
	}
}

// Close stops watching.
func (sw *ShaderWatcher) Close() error {
	return sw.watcher.Close()
}
