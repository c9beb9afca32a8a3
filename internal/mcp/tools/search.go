package tools

import (
	"context"
	"strconv"
	"strings"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/usestring/tripfinder-mcp/pkg/types"
)

// SearchInput is the input for tripfinder_search.
type SearchInput struct {
	Query   string        `json:"query,omitempty" jsonschema:"Free text matched against title, location, description and tags. Case is ignored and a term also matches when its letters appear in order in the title or location. Empty lists everything the filters allow."`
	Sort    string        `json:"sort,omitempty" jsonschema:"Ordering: relevance, price_asc, price_desc, rating, reviews, date or popularity (default: relevance)"`
	Filters *FiltersInput `json:"filters,omitempty" jsonschema:"Filter changes applied to the session before searching"`
	Limit   int           `json:"limit,omitempty" jsonschema:"Max results (default: 20)"`
	Offset  int           `json:"offset,omitempty" jsonschema:"Pagination offset"`
}

// SearchOutput is the output for tripfinder_search.
type SearchOutput struct {
	Query         string              `json:"query,omitempty"`
	Sort          string              `json:"sort"`
	Total         int                 `json:"total"`
	ActiveFilters int                 `json:"active_filters"`
	Cached        bool                `json:"cached,omitempty"`
	Results       []DestinationResult `json:"results,omitzero"`
	Hint          string              `json:"hint,omitempty"`
}

// ToolSearch runs search, filter and sort with the session criteria.
func ToolSearch(d *Deps) func(ctx context.Context, req *sdkmcp.CallToolRequest, input SearchInput) (*sdkmcp.CallToolResult, SearchOutput, error) {
	return func(ctx context.Context, req *sdkmcp.CallToolRequest, input SearchInput) (*sdkmcp.CallToolResult, SearchOutput, error) {
		if input.Filters != nil {
			if _, err := d.applyFilters(*input.Filters); err != nil {
				return nil, SearchOutput{}, err
			}
		}

		res, err := d.Recompute(ctx, input.Query, input.Sort)
		if err != nil {
			return nil, SearchOutput{}, WrapStorageError(err)
		}

		shown := page(res.Items, input.Offset, d.ResolveLimit(input.Limit))

		return nil, SearchOutput{
			Query:         res.Query,
			Sort:          string(res.SortKey),
			Total:         len(res.Items),
			ActiveFilters: res.ActiveFilters,
			Cached:        res.Cached,
			Results:       d.destinationResults(shown),
			Hint:          joinHints(d.SortHint(input.Sort), resultHint(len(res.Items), len(shown), input.Offset)),
		}, nil
	}
}

// GetDestinationInput is the input for tripfinder_get_destination.
type GetDestinationInput struct {
	ID int `json:"id" jsonschema:"Destination ID"`
}

// GetDestinationOutput is the output for tripfinder_get_destination.
type GetDestinationOutput struct {
	Destination types.Destination `json:"destination"`
	Favorite    bool              `json:"favorite"`
	Reviews     []ReviewView      `json:"reviews,omitzero"`
}

// ToolGetDestination returns one catalog entry with its user reviews.
func ToolGetDestination(d *Deps) func(ctx context.Context, req *sdkmcp.CallToolRequest, input GetDestinationInput) (*sdkmcp.CallToolResult, GetDestinationOutput, error) {
	return func(ctx context.Context, req *sdkmcp.CallToolRequest, input GetDestinationInput) (*sdkmcp.CallToolResult, GetDestinationOutput, error) {
		dest, ok := d.Catalog.Get(input.ID)
		if !ok {
			return nil, GetDestinationOutput{}, ErrNotFound("destination", strconv.Itoa(input.ID))
		}

		var matching []types.Review
		for _, r := range d.Reviews.All() {
			if strings.EqualFold(r.Destination, dest.Title) {
				matching = append(matching, r)
			}
		}

		out := GetDestinationOutput{
			Destination: dest,
			Favorite:    d.Favorites.Contains(dest.ID),
		}
		if len(matching) > 0 {
			out.Reviews = reviewViews(matching)
		}
		return nil, out, nil
	}
}
