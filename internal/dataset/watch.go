package dataset

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
)

// Watch invalidates cache entries when the given dataset files change on
// disk. The modification-time check in Load remains the correctness
// mechanism; the watcher only makes invalidation prompt. Watch returns
// after the watcher is installed and runs until ctx is cancelled.
func (c *Cache) Watch(ctx context.Context, paths ...string) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("creating watcher: %w", err)
	}

	// Watch the parent directories: editors and crawlers commonly replace
	// the file instead of writing in place, which would drop a watch on
	// the file itself.
	watched := make(map[string]bool, len(paths))
	dirs := make(map[string]bool)
	for _, p := range paths {
		abs, err := filepath.Abs(p)
		if err != nil {
			w.Close()
			return fmt.Errorf("resolving %s: %w", p, err)
		}
		watched[abs] = true
		dirs[filepath.Dir(abs)] = true
	}
	for dir := range dirs {
		if err := w.Add(dir); err != nil {
			w.Close()
			return fmt.Errorf("watching %s: %w", dir, err)
		}
	}

	go func() {
		defer w.Close()
		for {
			select {
			case <-ctx.Done():
				return
			case ev, ok := <-w.Events:
				if !ok {
					return
				}
				if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) && !ev.Has(fsnotify.Rename) && !ev.Has(fsnotify.Remove) {
					continue
				}
				abs, err := filepath.Abs(ev.Name)
				if err != nil {
					continue
				}
				if watched[abs] {
					c.Invalidate(abs)
					// Paths may have been registered relative; drop both forms.
					for _, p := range paths {
						if a, err := filepath.Abs(p); err == nil && a == abs {
							c.Invalidate(p)
						}
					}
				}
			case _, ok := <-w.Errors:
				if !ok {
					return
				}
			}
		}
	}()

	return nil
}
