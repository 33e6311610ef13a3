package theme

import (
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// Watch re-reads and re-applies the theme whenever another process
// rewrites the theme file, invoking onChange with the fresh record.
// This is the cross-process counterpart of the storage-change events
// the dashboard listened for: the store itself has no pub/sub, so
// consumers that need to stay in sync register here.
//
// The returned stop function releases the watcher. Watching an
// in-memory manager is a no-op.
func (m *Manager) Watch(onChange func(Config)) (stop func(), err error) {
	if m.path == "" {
		return func() {}, nil
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	// Watch the directory, not the file: editors and our own Save
	// replace the file, which drops a direct watch on some platforms.
	dir := filepath.Dir(m.path)
	if err := watcher.Add(dir); err != nil {
		watcher.Close()
		return nil, err
	}

	done := make(chan struct{})
	go func() {
		for {
			select {
			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				if filepath.Clean(event.Name) != filepath.Clean(m.path) {
					continue
				}
				if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
					continue
				}
				cfg := m.reload()
				m.Apply(cfg)
				if onChange != nil {
					onChange(cfg)
				}
			case watchErr, ok := <-watcher.Errors:
				if !ok {
					return
				}
				m.logger.Warn("theme: watch error", zap.Error(watchErr))
			case <-done:
				return
			}
		}
	}()

	return func() {
		close(done)
		watcher.Close()
	}, nil
}
