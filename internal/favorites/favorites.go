// Package favorites tracks the destinations a user has marked.
package favorites

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"

	"github.com/RoaringBitmap/roaring/v2"

	"github.com/usestring/tripfinder-mcp/internal/indexer"
	"github.com/usestring/tripfinder-mcp/internal/storage"
)

// Set is a persisted set of destination ids.
type Set struct {
	mu     sync.RWMutex
	ids    *roaring.Bitmap
	kv     storage.KV
	logger *slog.Logger
}

// Load reads the set from kv. A missing, unreadable or corrupt value starts
// empty and the failure is logged. Only a cancelled ctx is returned.
func Load(ctx context.Context, kv storage.KV, logger *slog.Logger) (*Set, error) {
	if logger == nil {
		logger = slog.Default()
	}
	s := &Set{ids: roaring.New(), kv: kv, logger: logger}

	raw, ok, err := kv.Get(ctx, storage.KeyFavorites)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, fmt.Errorf("loading favorites: %w", ctxErr)
		}
		logger.Warn("failed to read favorites", slog.String("error", err.Error()))
		return s, nil
	}
	if !ok {
		return s, nil
	}

	var ids []int
	if err := json.Unmarshal([]byte(raw), &ids); err != nil {
		logger.Warn("discarding corrupt favorites", slog.String("error", err.Error()))
		return s, nil
	}
	for _, id := range ids {
		if docID, err := indexer.DocID(id); err == nil {
			s.ids.Add(docID)
		}
	}
	return s, nil
}

// Add marks id. It reports whether the set changed.
func (s *Set) Add(ctx context.Context, id int) (bool, error) {
	docID, err := indexer.DocID(id)
	if err != nil {
		return false, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.ids.CheckedAdd(docID) {
		return false, nil
	}
	if err := s.persistLocked(ctx); err != nil {
		s.ids.Remove(docID)
		return false, err
	}
	return true, nil
}

// Remove unmarks id. It reports whether the set changed.
func (s *Set) Remove(ctx context.Context, id int) (bool, error) {
	docID, err := indexer.DocID(id)
	if err != nil {
		return false, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.ids.CheckedRemove(docID) {
		return false, nil
	}
	if err := s.persistLocked(ctx); err != nil {
		s.ids.Add(docID)
		return false, err
	}
	return true, nil
}

// Toggle flips id and returns whether it is now a favorite. The check and
// the flip happen under one lock.
func (s *Set) Toggle(ctx context.Context, id int) (bool, error) {
	docID, err := indexer.DocID(id)
	if err != nil {
		return false, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	added := s.ids.CheckedAdd(docID)
	if !added {
		s.ids.Remove(docID)
	}
	if err := s.persistLocked(ctx); err != nil {
		if added {
			s.ids.Remove(docID)
		} else {
			s.ids.Add(docID)
		}
		return !added, err
	}
	return added, nil
}

// Contains reports whether id is marked.
func (s *Set) Contains(id int) bool {
	docID, err := indexer.DocID(id)
	if err != nil {
		return false
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.ids.Contains(docID)
}

// IDs returns the marked ids in ascending order.
func (s *Set) IDs() []int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]int, 0, s.ids.GetCardinality())
	it := s.ids.Iterator()
	for it.HasNext() {
		out = append(out, int(it.Next()))
	}
	return out
}

// Len returns the number of marked ids.
func (s *Set) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return int(s.ids.GetCardinality())
}

func (s *Set) persistLocked(ctx context.Context) error {
	ids := make([]int, 0, s.ids.GetCardinality())
	it := s.ids.Iterator()
	for it.HasNext() {
		ids = append(ids, int(it.Next()))
	}

	data, err := json.Marshal(ids)
	if err != nil {
		return err
	}
	if err := s.kv.Set(ctx, storage.KeyFavorites, string(data)); err != nil {
		return fmt.Errorf("saving favorites: %w", err)
	}
	return nil
}
