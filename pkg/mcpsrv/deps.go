package mcpsrv

import (
	"log/slog"

	"github.com/usestring/tripfinder-mcp/internal/catalog"
	"github.com/usestring/tripfinder-mcp/internal/config"
	"github.com/usestring/tripfinder-mcp/internal/favorites"
	"github.com/usestring/tripfinder-mcp/internal/filterstate"
	"github.com/usestring/tripfinder-mcp/internal/mcp/tools"
	"github.com/usestring/tripfinder-mcp/internal/query"
	"github.com/usestring/tripfinder-mcp/internal/reviews"
	"github.com/usestring/tripfinder-mcp/internal/storage"
)

// Deps contains all dependencies available to custom tools.
// This gives custom tools access to the same infrastructure as builtin tools.
type Deps struct {
	Config    *config.Config
	Catalog   *catalog.Catalog
	Store     *filterstate.Store
	Favorites *favorites.Set
	Reviews   *reviews.Book
	Query     *query.Engine
	Storage   storage.KV
	Logger    *slog.Logger
}

// Close releases the storage backend.
func (d *Deps) Close() error {
	if d.Storage == nil {
		return nil
	}
	return d.Storage.Close()
}

func (d *Deps) toolDeps() *tools.Deps {
	return &tools.Deps{
		Config:    d.Config,
		Catalog:   d.Catalog,
		Store:     d.Store,
		Favorites: d.Favorites,
		Reviews:   d.Reviews,
		Query:     d.Query,
	}
}

// favoriteFlags reads the favorite set once startup loading has filled it in.
type favoriteFlags struct{ d *Deps }

func (f favoriteFlags) Contains(id int) bool {
	return f.d.Favorites != nil && f.d.Favorites.Contains(id)
}
