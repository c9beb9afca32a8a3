package filterstate

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/usestring/tripfinder-mcp/internal/storage"
	"github.com/usestring/tripfinder-mcp/pkg/types"
)

// LoadHistory reads persisted search history. A missing, unreadable or
// corrupt value leaves history empty; read and decode failures are logged.
// Only a cancelled ctx is returned.
func (s *Store) LoadHistory(ctx context.Context) error {
	if s.kv == nil {
		return nil
	}

	raw, ok, err := s.kv.Get(ctx, storage.KeyHistory)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return fmt.Errorf("loading search history: %w", ctxErr)
		}
		s.logger.Warn("failed to read search history", slog.String("error", err.Error()))
		return nil
	}
	if !ok {
		return nil
	}

	var entries []types.HistoryEntry
	if err := json.Unmarshal([]byte(raw), &entries); err != nil {
		s.logger.Warn("discarding corrupt search history", slog.String("error", err.Error()))
		return nil
	}
	if len(entries) > s.historyLimit {
		entries = entries[:s.historyLimit]
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.history = entries
	return nil
}

// History returns the remembered searches, most recent first.
func (s *Store) History() []types.HistoryEntry {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]types.HistoryEntry, len(s.history))
	for i, e := range s.history {
		e.Filters = e.Filters.Clone()
		out[i] = e
	}
	return out
}

// RestoreHistory makes the criteria of entry id current again and returns
// the entry so the caller can rerun its query.
func (s *Store) RestoreHistory(id string) (types.HistoryEntry, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, e := range s.history {
		if e.ID != id {
			continue
		}
		if err := e.Filters.Validate(); err != nil {
			s.logger.Warn("history entry has invalid filters",
				slog.String("id", id),
				slog.String("error", err.Error()),
			)
			return types.HistoryEntry{}, false
		}
		s.criteria = normalize(e.Filters.Clone())
		e.Filters = e.Filters.Clone()
		return e, true
	}
	return types.HistoryEntry{}, false
}

// record prepends a history entry and persists the list. Persistence
// failures are logged, not returned.
func (s *Store) record(ctx context.Context, query string, filters types.Criteria) {
	entry := types.HistoryEntry{
		ID:        s.newID(),
		Query:     query,
		Filters:   filters.Clone(),
		Timestamp: s.now().UTC(),
	}

	s.mu.Lock()
	s.history = append([]types.HistoryEntry{entry}, s.history...)
	if len(s.history) > s.historyLimit {
		s.history = s.history[:s.historyLimit]
	}
	data, err := json.Marshal(s.history)
	s.mu.Unlock()

	if err != nil || s.kv == nil {
		return
	}
	if err := s.kv.Set(ctx, storage.KeyHistory, string(data)); err != nil {
		s.logger.Warn("failed to persist search history", slog.String("error", err.Error()))
	}
}
