// Package repository holds the loaded player dataset as an immutable snapshot.
package repository

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/okian/scout/internal/domain/model"
)

// Snapshot is one loaded dataset. It is never mutated after publication;
// a reload publishes a new Snapshot.
type Snapshot struct {
	Players  []model.Player
	Source   string
	LoadedAt time.Time
	Sequence uint64
}

// Len returns the number of player records.
func (s *Snapshot) Len() int {
	if s == nil {
		return 0
	}
	return len(s.Players)
}

// Store provides access to the current dataset.
type Store interface {
	// Replace publishes players as the new dataset and returns its snapshot.
	Replace(ctx context.Context, players []model.Player, source string) (*Snapshot, error)
	// Current returns the latest snapshot or ErrNoDataset.
	Current(ctx context.Context) (*Snapshot, error)
	// Count returns the number of records in the current snapshot.
	Count(ctx context.Context) int
}

// SnapshotStore is a lock-free Store. Readers always see either the old or
// the new dataset in full.
type SnapshotStore struct {
	snapshot atomic.Pointer[Snapshot]
	sequence atomic.Uint64
	now      func() time.Time
}

// NewSnapshotStore creates an empty store.
func NewSnapshotStore(opts ...Option) *SnapshotStore {
	s := &SnapshotStore{now: time.Now}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Replace implements Store.
func (s *SnapshotStore) Replace(ctx context.Context, players []model.Player, source string) (*Snapshot, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	snap := &Snapshot{
		Players:  append([]model.Player(nil), players...),
		Source:   source,
		LoadedAt: s.now(),
		Sequence: s.sequence.Add(1),
	}
	s.snapshot.Store(snap)
	return snap, nil
}

// Current implements Store.
func (s *SnapshotStore) Current(_ context.Context) (*Snapshot, error) {
	snap := s.snapshot.Load()
	if snap == nil {
		return nil, ErrNoDataset
	}
	return snap, nil
}

// Count implements Store.
func (s *SnapshotStore) Count(_ context.Context) int {
	return s.snapshot.Load().Len()
}
