package bank

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"github.com/sirupsen/logrus"
)

// Watch blocks until ctx is cancelled, reloading the directory whenever its
// backing CSV file changes. It returns ErrNoLoader when the service is not
// file-backed.
func (s *service) Watch(ctx context.Context) error {
	loader, ok := s.loader.(*CSVLoader)
	if !ok {
		return ErrNoLoader
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create directory watcher: %w", err)
	}
	defer watcher.Close()

	// Watch the parent directory. Editors and atomic writers replace the
	// file, which invalidates a watch registered on the file itself.
	dir := filepath.Dir(loader.Path)
	if err := watcher.Add(dir); err != nil {
		return fmt.Errorf("failed to watch %s: %w", dir, err)
	}
	target := filepath.Clean(loader.Path)
	logrus.WithField("path", target).Info("watching bank directory file")

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != target {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			logrus.WithField("op", event.Op.String()).Info("bank directory file changed")
			if err := s.Reload(ctx); err != nil {
				logrus.WithError(err).Error("bank directory reload failed, keeping previous snapshot")
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logrus.WithError(err).Error("bank directory watcher error")
		}
	}
}
