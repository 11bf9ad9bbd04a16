package dataset

import (
	"fmt"
	"os"
	"sync"
	"time"
)

// Cache holds one loaded table per source path, keyed by the file's
// modification time. An unchanged file is served from memory; a changed
// modification time forces a full reload. Entries are never evicted.
//
// Load always returns a private clone, so concurrent queries can add
// computed columns without corrupting the shared snapshot, and a reload
// racing with a reader at worst hands the reader the immediately-prior
// or immediately-new snapshot.
type Cache struct {
	mu      sync.RWMutex
	entries map[string]*cacheEntry
}

type cacheEntry struct {
	table Table
	mtime time.Time
}

// NewCache creates an empty dataset cache.
func NewCache() *Cache {
	return &Cache{entries: make(map[string]*cacheEntry)}
}

// Load returns the table for the CSV at path, reloading it if the file's
// modification time differs from the cached one. The returned table is a
// private copy owned by the caller.
func (c *Cache) Load(path string) (Table, error) {
	fi, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("%w: stat %s: %v", ErrSourceUnavailable, path, err)
	}
	mtime := fi.ModTime()

	c.mu.RLock()
	e, ok := c.entries[path]
	c.mu.RUnlock()
	if ok && e.mtime.Equal(mtime) {
		return e.table.Clone(), nil
	}

	table, err := ReadFile(path)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	c.entries[path] = &cacheEntry{table: table, mtime: mtime}
	c.mu.Unlock()

	return table.Clone(), nil
}

// Invalidate drops the cached entry for path, forcing the next Load to
// read from disk.
func (c *Cache) Invalidate(path string) {
	c.mu.Lock()
	delete(c.entries, path)
	c.mu.Unlock()
}

// Len returns the number of cached sources.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}
