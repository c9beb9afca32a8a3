// Package mcpsrv builds the tripfinder MCP server: destination search,
// session filters, presets, share links, favorites, reviews and search
// history, served over stdio.
//
// A server configured from the environment:
//
//	server, err := mcpsrv.NewServer(ctx)
//	if err != nil {
//	    return err
//	}
//	defer server.Close()
//	return server.Run(ctx)
//
// Options replace the catalog, the storage backend or the logging sink and
// add tools, prompts or resource templates next to the builtin ones:
//
//	cat, err := catalog.Load("destinations.yaml")
//	...
//	server, err := mcpsrv.NewServer(ctx,
//	    mcpsrv.WithCatalog(cat),
//	    mcpsrv.WithStorage(storage.NewMemoryStore()),
//	    mcpsrv.WithLogFile("/var/log/tripfinder-mcp.log"),
//	    mcpsrv.WithDepsTool(cheapestTool, buildCheapest),
//	)
//
// NewDeps builds the same state without an MCP server, for command-line
// front ends that render results with WithTerminal.
package mcpsrv
