package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/usestring/tripfinder-mcp/internal/mcp/tools"
	"github.com/usestring/tripfinder-mcp/internal/search"
)

// Resource URI scheme: tripfinder://
// Supported URIs:
//   tripfinder://destination/{id}
//   tripfinder://catalog/{fingerprint}
//   tripfinder://filters/current
//   tripfinder://history/recent

const resourceScheme = "tripfinder://"

// registerResources registers resource templates and handlers.
func (s *Server) registerResources() {
	s.mcpServer.AddResourceTemplate(&sdkmcp.ResourceTemplate{
		URITemplate: "tripfinder://destination/{id}",
		Name:        "Destination",
		Description: "One catalog destination with its favorite flag. tripfinder_get_destination also returns reviews.",
		MIMEType:    tools.MimeJSON,
		Annotations: &sdkmcp.Annotations{
			Audience: []sdkmcp.Role{"assistant"},
			Priority: 0.8,
		},
	}, s.handleResourceDestination)

	s.mcpServer.AddResourceTemplate(&sdkmcp.ResourceTemplate{
		URITemplate: "tripfinder://catalog/{fingerprint}",
		Name:        "Destination Catalog",
		Description: "Every destination in the loaded catalog. The fingerprint must match the loaded catalog; use 'current' for whatever is loaded. High context cost - prefer tripfinder_search.",
		MIMEType:    tools.MimeJSON,
		Annotations: &sdkmcp.Annotations{
			Audience: []sdkmcp.Role{"assistant"},
			Priority: 0.3,
		},
	}, s.handleResourceCatalog)

	s.mcpServer.AddResourceTemplate(&sdkmcp.ResourceTemplate{
		URITemplate: "tripfinder://filters/{view}",
		Name:        "Filter State",
		Description: "Session filter criteria. Use 'current' for the criteria and 'share' for the share-link query string.",
		MIMEType:    tools.MimeJSON,
		Annotations: &sdkmcp.Annotations{
			Audience: []sdkmcp.Role{"assistant", "user"},
			Priority: 0.5,
		},
	}, s.handleResourceFilters)

	s.mcpServer.AddResourceTemplate(&sdkmcp.ResourceTemplate{
		URITemplate: "tripfinder://history/{view}",
		Name:        "Search History",
		Description: "Recent searches with their filters, newest first. Use 'recent'.",
		MIMEType:    tools.MimeJSON,
		Annotations: &sdkmcp.Annotations{
			Audience: []sdkmcp.Role{"assistant"},
			Priority: 0.4,
		},
	}, s.handleResourceHistory)
}

// Resource handlers

func (s *Server) handleResourceDestination(ctx context.Context, req *sdkmcp.ReadResourceRequest) (*sdkmcp.ReadResourceResult, error) {
	params, err := parseResourceURI(req.Params.URI)
	if err != nil {
		return nil, err
	}

	id, err := strconv.Atoi(params["id"])
	if err != nil {
		return nil, tools.ErrInvalidInput(fmt.Sprintf("destination id must be an integer: %q", params["id"]))
	}

	dest, ok := s.deps.Catalog.Get(id)
	if !ok {
		return nil, sdkmcp.ResourceNotFoundError(req.Params.URI)
	}

	content := map[string]any{
		"destination": dest,
		"favorite":    s.deps.Favorites.Contains(id),
	}
	return toResourceResult(req.Params.URI, content)
}

func (s *Server) handleResourceCatalog(ctx context.Context, req *sdkmcp.ReadResourceRequest) (*sdkmcp.ReadResourceResult, error) {
	params, err := parseResourceURI(req.Params.URI)
	if err != nil {
		return nil, err
	}

	fp := params["fingerprint"]
	if fp != "current" && fp != s.deps.Catalog.Fingerprint() {
		return nil, sdkmcp.ResourceNotFoundError(req.Params.URI)
	}

	content := map[string]any{
		"fingerprint":  s.deps.Catalog.Fingerprint(),
		"destinations": search.Sort(s.deps.Catalog.All(), search.SortPopularity),
	}
	return toResourceResult(req.Params.URI, content)
}

func (s *Server) handleResourceFilters(ctx context.Context, req *sdkmcp.ReadResourceRequest) (*sdkmcp.ReadResourceResult, error) {
	params, err := parseResourceURI(req.Params.URI)
	if err != nil {
		return nil, err
	}

	switch params["view"] {
	case "current":
		return toResourceResult(req.Params.URI, map[string]any{
			"criteria":       s.deps.Store.Criteria(),
			"active_filters": s.deps.Store.ActiveFilterCount(),
			"price_ceiling":  s.deps.Store.PriceCeiling(),
		})
	case "share":
		return toResourceResult(req.Params.URI, map[string]any{
			"share": s.deps.Store.ExportCriteria(),
		})
	}
	return nil, sdkmcp.ResourceNotFoundError(req.Params.URI)
}

func (s *Server) handleResourceHistory(ctx context.Context, req *sdkmcp.ReadResourceRequest) (*sdkmcp.ReadResourceResult, error) {
	params, err := parseResourceURI(req.Params.URI)
	if err != nil {
		return nil, err
	}
	if params["view"] != "recent" {
		return nil, sdkmcp.ResourceNotFoundError(req.Params.URI)
	}

	return toResourceResult(req.Params.URI, map[string]any{
		"entries": s.deps.Store.History(),
	})
}

// Helper functions

// parseResourceURI extracts parameters from a tripfinder:// URI.
func parseResourceURI(uri string) (map[string]string, error) {
	if !strings.HasPrefix(uri, resourceScheme) {
		return nil, tools.ErrInvalidInput("invalid URI scheme: expected " + resourceScheme)
	}

	path := strings.TrimPrefix(uri, resourceScheme)
	parts := strings.Split(path, "/")

	if len(parts) == 0 || parts[0] == "" {
		return nil, tools.ErrInvalidInput("empty resource path")
	}

	params := make(map[string]string)
	resourceType := parts[0]

	switch resourceType {
	case "destination":
		if len(parts) < 2 || parts[1] == "" {
			return nil, tools.ErrInvalidInput("destination URI requires an ID")
		}
		params["id"] = parts[1]

	case "catalog":
		if len(parts) < 2 || parts[1] == "" {
			return nil, tools.ErrInvalidInput("catalog URI requires a fingerprint")
		}
		params["fingerprint"] = parts[1]

	case "filters", "history":
		if len(parts) < 2 || parts[1] == "" {
			return nil, tools.ErrInvalidInput(resourceType + " URI requires a view")
		}
		params["view"] = parts[1]

	default:
		return nil, tools.ErrInvalidInput(fmt.Sprintf("unknown resource type: %s", resourceType))
	}

	return params, nil
}

// toResourceResult serializes content to a ReadResourceResult.
func toResourceResult(uri string, content any) (*sdkmcp.ReadResourceResult, error) {
	data, err := json.MarshalIndent(content, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("serializing resource: %w", err)
	}

	return &sdkmcp.ReadResourceResult{
		Contents: []*sdkmcp.ResourceContents{
			{
				URI:      uri,
				MIMEType: tools.MimeJSON,
				Text:     string(data),
			},
		},
	}, nil
}
