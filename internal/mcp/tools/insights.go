package tools

import (
	"context"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/usestring/tripfinder-mcp/internal/filterstate"
	"github.com/usestring/tripfinder-mcp/pkg/types"
)

// defaultTopTags is how many tags tripfinder_suggestions ranks.
const defaultTopTags = 5

// SuggestionsInput is the input for tripfinder_suggestions.
type SuggestionsInput struct {
	Query   string `json:"query,omitempty" jsonschema:"Optional search text. The session filters always apply."`
	TopTags int    `json:"top_tags,omitempty" jsonschema:"How many tags to rank (default: 5)"`
}

// SuggestionsOutput is the output for tripfinder_suggestions.
type SuggestionsOutput struct {
	Total       int                `json:"total"`
	Suggestions *types.Suggestions `json:"suggestions,omitempty"`
	TopTags     []types.TagCount   `json:"top_tags,omitzero"`
}

// ToolSuggestions aggregates tag, price bucket and location counts over the
// current results without recording history.
func ToolSuggestions(d *Deps) func(ctx context.Context, req *sdkmcp.CallToolRequest, input SuggestionsInput) (*sdkmcp.CallToolResult, SuggestionsOutput, error) {
	return func(ctx context.Context, req *sdkmcp.CallToolRequest, input SuggestionsInput) (*sdkmcp.CallToolResult, SuggestionsOutput, error) {
		res := d.Preview(input.Query, "")

		n := input.TopTags
		if n <= 0 {
			n = defaultTopTags
		}

		s := d.Store.Suggestions(res.Items)
		return nil, SuggestionsOutput{
			Total:       len(res.Items),
			Suggestions: &s,
			TopTags:     filterstate.TopTags(res.Items, n),
		}, nil
	}
}

// FacetsInput is the input for tripfinder_facets.
type FacetsInput struct {
	Query         string `json:"query,omitempty" jsonschema:"Optional search text"`
	IgnoreFilters bool   `json:"ignore_filters,omitempty" jsonschema:"Count over the whole catalog instead of the filtered results"`
}

// FacetsOutput is the output for tripfinder_facets.
type FacetsOutput struct {
	Facets *types.FacetCounts `json:"facets,omitempty"`
}

// ToolFacets counts trip types, categories, tags and guided destinations.
func ToolFacets(d *Deps) func(ctx context.Context, req *sdkmcp.CallToolRequest, input FacetsInput) (*sdkmcp.CallToolResult, FacetsOutput, error) {
	return func(ctx context.Context, req *sdkmcp.CallToolRequest, input FacetsInput) (*sdkmcp.CallToolResult, FacetsOutput, error) {
		if input.IgnoreFilters && input.Query == "" {
			f := d.Catalog.Facets(nil)
			return nil, FacetsOutput{Facets: &f}, nil
		}

		var items []types.Destination
		if input.IgnoreFilters {
			items = filterstate.Run(d.Catalog.All(), types.Criteria{
				TripType:   types.TripAny,
				Category:   types.CategoryAny,
				PriceRange: types.PriceRange{Max: maxPrice(d.Catalog.All())},
			}, input.Query, "")
		} else {
			items = d.Preview(input.Query, "").Items
		}

		f := d.Catalog.Facets(ids(items))
		return nil, FacetsOutput{Facets: &f}, nil
	}
}

func maxPrice(items []types.Destination) float64 {
	var m float64
	for _, item := range items {
		m = max(m, item.Price)
	}
	return m
}
