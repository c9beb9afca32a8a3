package tools

import (
	"context"
	"fmt"
	"strings"

	"github.com/usestring/tripfinder-mcp/internal/catalog"
	"github.com/usestring/tripfinder-mcp/internal/config"
	"github.com/usestring/tripfinder-mcp/internal/favorites"
	"github.com/usestring/tripfinder-mcp/internal/filterstate"
	"github.com/usestring/tripfinder-mcp/internal/query"
	"github.com/usestring/tripfinder-mcp/internal/reviews"
	"github.com/usestring/tripfinder-mcp/internal/search"
)

// Deps contains all dependencies needed by tool handlers.
type Deps struct {
	Config    *config.Config
	Catalog   *catalog.Catalog
	Store     *filterstate.Store
	Favorites *favorites.Set
	Reviews   *reviews.Book
	Query     *query.Engine
}

// ResolveSort maps an optional sort key onto a sort key, falling back to
// the configured default. An unknown key is returned as given; sorting by it
// keeps the search order.
func (d *Deps) ResolveSort(key string) search.SortKey {
	key = strings.TrimSpace(key)
	if key == "" {
		key = d.Config.DefaultSort
	}
	return search.SortKey(key)
}

// SortHint explains an unknown sort key. It is empty for known or blank keys.
func (d *Deps) SortHint(key string) string {
	key = strings.TrimSpace(key)
	if key == "" || search.IsSortKey(key) {
		return ""
	}
	return fmt.Sprintf("Unknown sort key %q left the order unchanged. Use one of %s.", key, sortKeyList())
}

// ResolveLimit clamps a requested page size to the configured bounds.
func (d *Deps) ResolveLimit(limit int) int {
	if limit <= 0 {
		limit = d.Config.DefaultResultLimit
	}
	if d.Config.MaxResultLimit > 0 && limit > d.Config.MaxResultLimit {
		limit = d.Config.MaxResultLimit
	}
	return limit
}

// Recompute runs the store pipeline over the catalog. It records history
// for a non-blank query.
func (d *Deps) Recompute(ctx context.Context, q, sortKey string) (filterstate.Result, error) {
	return d.Store.Recompute(ctx, d.Catalog, q, d.ResolveSort(sortKey))
}

// Preview runs the same pipeline without touching history.
func (d *Deps) Preview(q, sortKey string) filterstate.Result {
	key := d.ResolveSort(sortKey)
	c, active := d.Store.Snapshot()
	q = strings.TrimSpace(q)
	return filterstate.Result{
		Query:         q,
		SortKey:       key,
		Criteria:      c,
		ActiveFilters: active,
		Items:         filterstate.Run(d.Catalog.All(), c, q, key),
	}
}

func sortKeyList() string {
	names := make([]string, len(search.SortKeys))
	for i, k := range search.SortKeys {
		names[i] = string(k)
	}
	return strings.Join(names, ", ")
}
