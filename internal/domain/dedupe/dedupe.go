// Package dedupe keeps the first row per identity when the same player
// appears more than once in a dataset (loan or transfer duplicates).
package dedupe

import (
	"context"
	"sync"

	"github.com/okian/scout/internal/domain/model"
)

// Deduper records identity keys already admitted to a population.
type Deduper interface {
	// SeenAndRecord atomically checks if key was seen and records it if not.
	// Returns true if key was already seen, false if it was newly recorded.
	SeenAndRecord(ctx context.Context, key string) bool

	// Size returns the number of distinct keys recorded.
	Size() int
}

// inMemoryDeduper implements Deduper with a set guarded by a mutex.
type inMemoryDeduper struct {
	mu        sync.Mutex
	seen      map[string]struct{}
	normalize func(string) string
}

// NewInMemoryDeduper creates a new in-memory deduper with configuration options.
func NewInMemoryDeduper(opts ...Option) Deduper {
	d := &inMemoryDeduper{
		normalize: func(s string) string { return s },
	}
	capacity := 0
	for _, opt := range opts {
		opt(d, &capacity)
	}
	d.seen = make(map[string]struct{}, capacity)
	return d
}

// SeenAndRecord implements Deduper.
func (d *inMemoryDeduper) SeenAndRecord(_ context.Context, key string) bool {
	key = d.normalize(key)

	d.mu.Lock()
	defer d.mu.Unlock()

	if _, ok := d.seen[key]; ok {
		return true
	}
	d.seen[key] = struct{}{}
	return false
}

// Size implements Deduper.
func (d *inMemoryDeduper) Size() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(d.seen)
}

// FirstByIdentity returns players with later rows of an already seen
// identity removed. Input order is preserved.
func FirstByIdentity(ctx context.Context, players []model.Player, key model.IdentityKey, opts ...Option) []model.Player {
	d := NewInMemoryDeduper(append([]Option{WithCapacity(len(players))}, opts...)...)
	out := make([]model.Player, 0, len(players))
	for _, p := range players {
		if d.SeenAndRecord(ctx, key.Identity(p)) {
			continue
		}
		out = append(out, p)
	}
	return out
}
