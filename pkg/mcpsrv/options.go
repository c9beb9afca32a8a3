package mcpsrv

import (
	"context"
	"io"

	mcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/usestring/tripfinder-mcp/internal/catalog"
	"github.com/usestring/tripfinder-mcp/internal/config"
	"github.com/usestring/tripfinder-mcp/internal/storage"
)

// serverConfig holds configuration built from options.
type serverConfig struct {
	config  *config.Config
	catalog *catalog.Catalog
	storage storage.KV

	// Terminal rendering of recompute results
	terminal      io.Writer
	terminalLimit int

	// Logging overrides
	logLevel string
	logFile  string

	// Extension toggles
	disableBuiltinTools   bool
	disableBuiltinPrompts bool

	// Registration callbacks keep the generic handler types intact
	toolRegistrations     []func(*mcp.Server)
	promptRegistrations   []func(*mcp.Server)
	resourceRegistrations []func(*mcp.Server)

	// Run after Deps are built
	deferredToolRegistrations []func(*mcp.Server, *Deps)
}

// Option configures the server.
type Option func(*serverConfig)

// WithConfig replaces the environment-derived configuration.
func WithConfig(c *config.Config) Option {
	return func(cfg *serverConfig) {
		cfg.config = c
	}
}

// WithCatalog serves c instead of loading CATALOG_PATH or the built-in catalog.
func WithCatalog(c *catalog.Catalog) Option {
	return func(cfg *serverConfig) {
		cfg.catalog = c
	}
}

// WithStorage persists favorites, reviews and history in kv instead of the
// configured driver. The server takes ownership and closes it.
func WithStorage(kv storage.KV) Option {
	return func(cfg *serverConfig) {
		cfg.storage = kv
	}
}

// WithTerminal renders every recompute to w as styled cards. limit <= 0
// prints every result.
func WithTerminal(w io.Writer, limit int) Option {
	return func(cfg *serverConfig) {
		cfg.terminal = w
		cfg.terminalLimit = limit
	}
}

// WithLogLevel sets the log level (debug, info, warn, error).
func WithLogLevel(level string) Option {
	return func(cfg *serverConfig) {
		cfg.logLevel = level
	}
}

// WithLogFile sets the log file path.
// If empty, logs are written to stderr only.
func WithLogFile(path string) Option {
	return func(cfg *serverConfig) {
		cfg.logFile = path
	}
}

// WithoutBuiltinTools disables all builtin tripfinder tools and resources.
// Use this if you want to register only your own tools.
func WithoutBuiltinTools() Option {
	return func(cfg *serverConfig) {
		cfg.disableBuiltinTools = true
	}
}

// WithoutBuiltinPrompts disables all builtin tripfinder prompts.
// Use this if you want to register only your own prompts.
func WithoutBuiltinPrompts() Option {
	return func(cfg *serverConfig) {
		cfg.disableBuiltinPrompts = true
	}
}

// WithTool registers a tool that needs none of the tripfinder state. Its
// output type goes through the same zero-value schema check as the
// builtin tools.
func WithTool[In, Out any](tool *mcp.Tool, handler func(context.Context, *mcp.CallToolRequest, In) (*mcp.CallToolResult, Out, error)) Option {
	return func(cfg *serverConfig) {
		cfg.toolRegistrations = append(cfg.toolRegistrations, func(srv *mcp.Server) {
			AddTool(srv, tool, handler)
		})
	}
}

// WithDepsTool registers a tool built from the server's Deps once the
// catalog, filter store and saved state are loaded.
//
//	type cheapestOutput struct {
//	    Title string  `json:"title"`
//	    Price float64 `json:"price"`
//	}
//
//	mcpsrv.WithDepsTool(
//	    &mcp.Tool{Name: "cheapest", Description: "Cheapest destination under the session filters"},
//	    func(d *mcpsrv.Deps) func(context.Context, *mcp.CallToolRequest, struct{}) (*mcp.CallToolResult, cheapestOutput, error) {
//	        return func(context.Context, *mcp.CallToolRequest, struct{}) (*mcp.CallToolResult, cheapestOutput, error) {
//	            items := filterstate.Run(d.Catalog.All(), d.Store.Criteria(), "", search.SortPriceAsc)
//	            if len(items) == 0 {
//	                return nil, cheapestOutput{}, nil
//	            }
//	            return nil, cheapestOutput{Title: items[0].Title, Price: items[0].Price}, nil
//	        }
//	    },
//	)
func WithDepsTool[In, Out any](tool *mcp.Tool, builder func(*Deps) func(context.Context, *mcp.CallToolRequest, In) (*mcp.CallToolResult, Out, error)) Option {
	return func(cfg *serverConfig) {
		cfg.deferredToolRegistrations = append(cfg.deferredToolRegistrations, func(srv *mcp.Server, deps *Deps) {
			AddTool(srv, tool, builder(deps))
		})
	}
}

// WithPrompt registers an additional prompt next to tripfinder_guide and
// plan_trip.
func WithPrompt(prompt *mcp.Prompt, handler func(context.Context, *mcp.GetPromptRequest) (*mcp.GetPromptResult, error)) Option {
	return func(cfg *serverConfig) {
		cfg.promptRegistrations = append(cfg.promptRegistrations, func(srv *mcp.Server) {
			srv.AddPrompt(prompt, handler)
		})
	}
}

// WithResourceTemplate registers an additional resource template. Use a
// scheme other than tripfinder:// so it does not shadow the builtin
// destination, catalog, filters and history resources.
func WithResourceTemplate(template *mcp.ResourceTemplate, handler func(context.Context, *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error)) Option {
	return func(cfg *serverConfig) {
		cfg.resourceRegistrations = append(cfg.resourceRegistrations, func(srv *mcp.Server) {
			srv.AddResourceTemplate(template, handler)
		})
	}
}
