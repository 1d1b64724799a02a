package rag

import (
	"log/slog"
	"sort"
	"sync"
)

// Tracker remembers the content hash last indexed for every file.
type Tracker struct {
	mu     sync.RWMutex
	hashes map[string]string
}

func NewTracker() *Tracker {
	return &Tracker{hashes: make(map[string]string)}
}

// Changed reports whether path is unknown or was indexed with another hash.
func (t *Tracker) Changed(path, hash string) bool {
	t.mu.RLock()
	defer t.mu.RUnlock()
	prev, ok := t.hashes[path]
	return !ok || prev != hash
}

func (t *Tracker) Tracked(path string) bool {
	t.mu.RLock()
	defer t.mu.RUnlock()
	_, ok := t.hashes[path]
	return ok
}

func (t *Tracker) Update(path, hash string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.hashes[path] = hash
	slog.Debug("Document hash updated", "path", path)
}

func (t *Tracker) Remove(path string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	delete(t.hashes, path)
}

func (t *Tracker) Count() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.hashes)
}

// Paths returns tracked paths in ascending order.
func (t *Tracker) Paths() []string {
	t.mu.RLock()
	defer t.mu.RUnlock()
	out := make([]string, 0, len(t.hashes))
	for p := range t.hashes {
		out = append(out, p)
	}
	sort.Strings(out)
	return out
}

func (t *Tracker) Clear() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.hashes = make(map[string]string)
	slog.Info("Document tracker cleared")
}
