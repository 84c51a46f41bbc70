package scanner

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/sashworth/tonepick/internal/log"
)

// rescanDelay coalesces the burst of events a copy or unpack produces into
// one rescan.
const rescanDelay = 500 * time.Millisecond

// Watch rescans whenever the sounds directory changes, until ctx is done.
// The directory and its category subdirectories are watched; fsnotify does
// not recurse, so subdirectories created while watching are added as their
// create events arrive.
func (s *Scanner) Watch(ctx context.Context) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer func() { _ = watcher.Close() }()

	if err := addWatchTree(watcher, s.dir); err != nil {
		return err
	}
	log.Info(log.CatScan, "Watching sounds directory", "dir", s.dir)

	var timer *time.Timer
	var due <-chan time.Time

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if event.Op&(fsnotify.Create|fsnotify.Remove|fsnotify.Rename|fsnotify.Write) == 0 {
				continue
			}
			if event.Op&fsnotify.Create != 0 {
				// New subdirectory: bring it under watch so files dropped
				// into it are seen too.
				if fi, err := os.Stat(event.Name); err == nil && fi.IsDir() {
					_ = watcher.Add(event.Name)
				}
			}
			log.Debug(log.CatScan, "Directory changed", "op", event.Op.String(), "path", event.Name)
			if timer == nil {
				timer = time.NewTimer(rescanDelay)
			} else {
				if !timer.Stop() {
					select {
					case <-timer.C:
					default:
					}
				}
				timer.Reset(rescanDelay)
			}
			due = timer.C

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			log.ErrorErr(log.CatScan, "Watcher error", err)

		case <-due:
			due = nil
			if _, err := s.Scan(ctx); err != nil {
				log.ErrorErr(log.CatScan, "Rescan failed", err)
			}
		}
	}
}

// addWatchTree registers dir and every subdirectory with the watcher.
func addWatchTree(watcher *fsnotify.Watcher, dir string) error {
	return filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return fmt.Errorf("failed to walk %s: %w", path, err)
		}
		if !d.IsDir() {
			return nil
		}
		if err := watcher.Add(path); err != nil {
			return fmt.Errorf("failed to watch %s: %w", path, err)
		}
		return nil
	})
}
