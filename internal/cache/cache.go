// Package cache implements the process-wide compiled-namespace output cache.
package cache

import (
	"fmt"
	"maps"
	"slices"
	"strings"
	"sync"

	"go.trai.ch/smelt/internal/core/domain"
)

// Output maps cache keys to compiled namespace records for the lifetime of
// the process. Entries are only ever inserted or overwritten, never removed;
// merges are atomic per call so a reader never observes a partially written
// batch. The engine may call back into the cache re-entrantly relative to the
// orchestrator's own completion handling, which the lock makes safe.
type Output struct {
	mu      sync.RWMutex
	entries map[string]domain.NamespaceRecord
}

// New creates an empty Output cache.
func New() *Output {
	return &Output{entries: make(map[string]domain.NamespaceRecord)}
}

// Get retrieves the record for the given cache key. Pure read, no side
// effects.
func (c *Output) Get(key string) (domain.NamespaceRecord, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	rec, ok := c.entries[key]
	return rec, ok
}

// Merge inserts or overwrites every entry in one atomic batch. Later merges
// win for the same key.
func (c *Output) Merge(entries map[string]domain.NamespaceRecord) {
	if len(entries) == 0 {
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	maps.Copy(c.entries, entries)
}

// HasCompiled reports whether the ordinary (non-macro) variant of the named
// namespace is cached.
func (c *Output) HasCompiled(name string) bool {
	_, ok := c.Get(domain.NamespaceID{Name: name}.CacheKey())
	return ok
}

// Len returns the number of cached records.
func (c *Output) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return len(c.entries)
}

// Snapshot returns a copy of the cache contents for inspection.
func (c *Output) Snapshot() map[string]domain.NamespaceRecord {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return maps.Clone(c.entries)
}

// Dump renders the cache contents sorted by key, one record per line, for
// diagnostics.
func (c *Output) Dump() string {
	snapshot := c.Snapshot()

	var b strings.Builder
	for _, key := range slices.Sorted(maps.Keys(snapshot)) {
		rec := snapshot[key]
		fmt.Fprintf(&b, "%s\tlang=%s\tpath=%s\tfingerprint=%016x\n", key, rec.Lang, rec.Path, rec.Fingerprint)
	}
	return b.String()
}
