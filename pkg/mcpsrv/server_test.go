package mcpsrv

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"path/filepath"
	"testing"

	mcp "github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/usestring/tripfinder-mcp/internal/config"
	"github.com/usestring/tripfinder-mcp/internal/search"
	"github.com/usestring/tripfinder-mcp/internal/storage"
)

type brokenKV struct{ storage.KV }

func (brokenKV) Get(context.Context, string) (string, bool, error) {
	return "", false, errors.New("io error")
}

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	return &config.Config{
		StorageDriver:       storage.DriverFile,
		StoragePath:         t.TempDir(),
		ResultCacheMaxItems: 16,
		HistoryLimit:        10,
		PriceCeiling:        5000,
		DefaultSort:         "relevance",
		DefaultResultLimit:  20,
		MaxResultLimit:      500,
		DefaultQueryLimit:   50,
		LogLevel:            "error",
	}
}

func TestNewDeps_RestoresSavedState(t *testing.T) {
	ctx := context.Background()
	cfg := testConfig(t)

	first, err := NewDeps(ctx, WithConfig(cfg))
	require.NoError(t, err)
	assert.Equal(t, 8, first.Catalog.Len())

	_, err = first.Favorites.Add(ctx, 2)
	require.NoError(t, err)
	_, err = first.Store.Recompute(ctx, first.Catalog, "praia", search.SortRelevance)
	require.NoError(t, err)
	require.NoError(t, first.Close())

	second, err := NewDeps(ctx, WithConfig(cfg))
	require.NoError(t, err)
	defer second.Close()

	assert.Equal(t, []int{2}, second.Favorites.IDs())
	require.Len(t, second.Store.History(), 1)
	assert.Equal(t, "praia", second.Store.History()[0].Query)
	assert.Equal(t, 5000.0, second.Store.PriceCeiling())
}

func TestNewDeps_CatalogPath(t *testing.T) {
	cfg := testConfig(t)
	cfg.CatalogPath = filepath.Join(t.TempDir(), "missing.json")

	_, err := NewDeps(context.Background(), WithConfig(cfg))
	assert.ErrorContains(t, err, "failed to load catalog")
}

func TestNewDeps_UnreadableStateStartsEmpty(t *testing.T) {
	ctx := context.Background()
	deps, err := NewDeps(ctx,
		WithConfig(testConfig(t)),
		WithStorage(brokenKV{storage.NewMemoryStore()}),
	)
	require.NoError(t, err)
	defer deps.Close()

	assert.Zero(t, deps.Favorites.Len())
	assert.Empty(t, deps.Reviews.All())
	assert.Empty(t, deps.Store.History())

	res, err := deps.Store.Recompute(ctx, deps.Catalog, "praia", search.SortRelevance)
	require.NoError(t, err)
	assert.NotEmpty(t, res.Items)
	assert.Len(t, deps.Store.History(), 1)
}

func TestNewDeps_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewDeps(ctx,
		WithConfig(testConfig(t)),
		WithStorage(brokenKV{storage.NewMemoryStore()}),
	)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestNewDeps_Terminal(t *testing.T) {
	ctx := context.Background()
	var buf bytes.Buffer

	deps, err := NewDeps(ctx,
		WithConfig(testConfig(t)),
		WithStorage(storage.NewMemoryStore()),
		WithTerminal(&buf, 5),
	)
	require.NoError(t, err)
	defer deps.Close()

	_, err = deps.Favorites.Add(ctx, 1)
	require.NoError(t, err)

	_, err = deps.Store.Recompute(ctx, deps.Catalog, "", search.SortPriceAsc)
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "Rio de Janeiro")
	assert.Contains(t, buf.String(), "♥")
}

func TestNewServer_CustomTools(t *testing.T) {
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })

	type countInput struct {
		Query string `json:"query,omitempty"`
	}
	type countOutput struct {
		Count int `json:"count"`
	}

	var built *Deps
	srv, err := NewServer(context.Background(),
		WithConfig(testConfig(t)),
		WithStorage(storage.NewMemoryStore()),
		WithLogFile(filepath.Join(t.TempDir(), "tripfinder.log")),
		WithoutBuiltinPrompts(),
		WithTool(&mcp.Tool{Name: "ping", Description: "Liveness check"},
			func(context.Context, *mcp.CallToolRequest, countInput) (*mcp.CallToolResult, countOutput, error) {
				return nil, countOutput{}, nil
			}),
		WithPrompt(&mcp.Prompt{Name: "weekend", Description: "Weekend getaway ideas"},
			func(context.Context, *mcp.GetPromptRequest) (*mcp.GetPromptResult, error) {
				return &mcp.GetPromptResult{}, nil
			}),
		WithResourceTemplate(&mcp.ResourceTemplate{URITemplate: "deals://{id}", Name: "Deal"},
			func(context.Context, *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
				return &mcp.ReadResourceResult{}, nil
			}),
		WithDepsTool(&mcp.Tool{Name: "count", Description: "Count catalog entries"},
			func(d *Deps) func(context.Context, *mcp.CallToolRequest, countInput) (*mcp.CallToolResult, countOutput, error) {
				built = d
				return func(context.Context, *mcp.CallToolRequest, countInput) (*mcp.CallToolResult, countOutput, error) {
					return nil, countOutput{Count: d.Catalog.Len()}, nil
				}
			}),
	)
	require.NoError(t, err)
	defer srv.Close()

	assert.Same(t, srv.Deps(), built)
	assert.NotNil(t, srv.MCPServer())
}
