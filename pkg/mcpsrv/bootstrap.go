package mcpsrv

import (
	"context"
	"fmt"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/usestring/tripfinder-mcp/internal/cache"
	"github.com/usestring/tripfinder-mcp/internal/catalog"
	"github.com/usestring/tripfinder-mcp/internal/config"
	"github.com/usestring/tripfinder-mcp/internal/favorites"
	"github.com/usestring/tripfinder-mcp/internal/filterstate"
	"github.com/usestring/tripfinder-mcp/internal/query"
	"github.com/usestring/tripfinder-mcp/internal/render"
	"github.com/usestring/tripfinder-mcp/internal/reviews"
	"github.com/usestring/tripfinder-mcp/internal/storage"
)

// NewDeps loads the catalog, opens storage and restores favorites, reviews
// and search history. Logging is left as configured by the caller. Close the
// returned Deps when done.
func NewDeps(ctx context.Context, opts ...Option) (*Deps, error) {
	cfg := newServerConfig(opts)
	return buildDeps(ctx, cfg, slog.Default())
}

func newServerConfig(opts []Option) *serverConfig {
	cfg := &serverConfig{}
	for _, opt := range opts {
		opt(cfg)
	}
	if cfg.config == nil {
		cfg.config = config.Load()
	}
	return cfg
}

func buildDeps(ctx context.Context, cfg *serverConfig, logger *slog.Logger) (*Deps, error) {
	c := cfg.config

	cat := cfg.catalog
	if cat == nil {
		var err error
		cat, err = loadCatalog(c.CatalogPath)
		if err != nil {
			return nil, err
		}
	}
	logger.Info("catalog loaded",
		slog.Int("destinations", cat.Len()),
		slog.String("fingerprint", cat.Fingerprint()),
	)

	kv := cfg.storage
	if kv == nil {
		var err error
		kv, err = storage.Open(c.StorageDriver, c.StorageLocation())
		if err != nil {
			return nil, fmt.Errorf("failed to open %s storage: %w", c.StorageDriver, err)
		}
	}

	results, err := cache.NewResultCache(c.ResultCacheMaxItems)
	if err != nil {
		_ = kv.Close()
		return nil, fmt.Errorf("failed to create result cache: %w", err)
	}

	deps := &Deps{
		Config:  c,
		Catalog: cat,
		Query:   query.NewEngine(),
		Storage: kv,
		Logger:  logger,
	}

	storeOpts := []filterstate.Option{
		filterstate.WithPriceCeiling(c.PriceCeiling),
		filterstate.WithHistoryLimit(c.HistoryLimit),
		filterstate.WithStorage(kv),
		filterstate.WithResultCache(results),
		filterstate.WithLogger(logger),
	}
	if cfg.terminal != nil {
		storeOpts = append(storeOpts, filterstate.WithRenderer(
			render.NewTerminal(cfg.terminal, favoriteFlags{deps}, cfg.terminalLimit),
		))
	}
	deps.Store = filterstate.New(storeOpts...)

	// Favorites, reviews and history live under separate keys.
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		set, err := favorites.Load(gctx, kv, logger)
		if err != nil {
			return err
		}
		deps.Favorites = set
		return nil
	})
	g.Go(func() error {
		book, err := reviews.Load(gctx, kv, logger)
		if err != nil {
			return err
		}
		deps.Reviews = book
		return nil
	})
	g.Go(func() error {
		return deps.Store.LoadHistory(gctx)
	})
	if err := g.Wait(); err != nil {
		_ = kv.Close()
		return nil, fmt.Errorf("failed to restore saved state: %w", err)
	}

	logger.Debug("saved state restored",
		slog.Int("favorites", deps.Favorites.Len()),
		slog.Int("reviews", len(deps.Reviews.All())),
		slog.Int("history", len(deps.Store.History())),
	)
	return deps, nil
}

func loadCatalog(path string) (*catalog.Catalog, error) {
	if path == "" {
		return catalog.Seed(), nil
	}
	cat, err := catalog.Load(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load catalog: %w", err)
	}
	return cat, nil
}
