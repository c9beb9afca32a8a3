package filterstate

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/usestring/tripfinder-mcp/internal/cache"
	"github.com/usestring/tripfinder-mcp/internal/filter"
	"github.com/usestring/tripfinder-mcp/internal/search"
	"github.com/usestring/tripfinder-mcp/pkg/types"
)

// Catalog is the source of destinations a recompute runs over.
type Catalog interface {
	All() []types.Destination
	Fingerprint() string
}

// Result is one recompute outcome as handed to the renderer.
type Result struct {
	Query         string
	SortKey       search.SortKey
	Criteria      types.Criteria
	ActiveFilters int
	Items         []types.Destination
	Cached        bool
}

// Renderer displays recompute results.
type Renderer interface {
	Render(ctx context.Context, res Result) error
}

// Recompute runs search (for a non-blank query), then filter, then sort
// over the catalog using the current criteria. A non-blank query is
// recorded in history. The result goes to the renderer when one is set;
// a render failure is returned alongside the result.
func (s *Store) Recompute(ctx context.Context, cat Catalog, query string, sortKey search.SortKey) (Result, error) {
	query = strings.TrimSpace(query)

	criteria, active := s.Snapshot()

	res := Result{
		Query:         query,
		SortKey:       sortKey,
		Criteria:      criteria,
		ActiveFilters: active,
	}

	var key string
	if s.results != nil {
		key = cache.Key(cat.Fingerprint(), query, string(sortKey), EncodeCriteria(criteria))
		if items, ok := s.results.Get(key); ok {
			res.Items = items
			res.Cached = true
		}
	}

	if !res.Cached {
		if s.results != nil {
			// Concurrent misses on the same key share one pipeline run.
			v, _, _ := s.flight.Do(key, func() (any, error) {
				items := Run(cat.All(), criteria, query, sortKey)
				s.results.Put(key, items)
				return items, nil
			})
			res.Items = slices.Clone(v.([]types.Destination))
		} else {
			res.Items = Run(cat.All(), criteria, query, sortKey)
		}
	}

	if query != "" {
		s.record(ctx, query, criteria)
	}

	if s.renderer != nil {
		if err := s.renderer.Render(ctx, res); err != nil {
			return res, fmt.Errorf("rendering results: %w", err)
		}
	}
	return res, nil
}

// Run is the stateless pipeline: search, filter, sort in that order.
func Run(items []types.Destination, c types.Criteria, query string, sortKey search.SortKey) []types.Destination {
	if strings.TrimSpace(query) != "" {
		items = search.Search(items, query)
	}
	items = filter.Apply(items, c)
	return search.Sort(items, sortKey)
}
