package tools

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/usestring/tripfinder-mcp/pkg/types"
)

// FavoritesInput is the input for tripfinder_favorites.
type FavoritesInput struct {
	Action string `json:"action,omitempty" jsonschema:"list (default), add, remove or toggle"`
	ID     int    `json:"id,omitempty" jsonschema:"Destination ID, required for add, remove and toggle"`
}

// FavoritesOutput is the output for tripfinder_favorites.
type FavoritesOutput struct {
	Changed      bool                `json:"changed,omitempty"`
	Favorite     bool                `json:"favorite,omitempty"`
	IDs          []int               `json:"ids,omitzero"`
	Destinations []types.Destination `json:"destinations,omitzero"`
}

// ToolFavorites lists or edits the favorite set.
func ToolFavorites(d *Deps) func(ctx context.Context, req *sdkmcp.CallToolRequest, input FavoritesInput) (*sdkmcp.CallToolResult, FavoritesOutput, error) {
	return func(ctx context.Context, req *sdkmcp.CallToolRequest, input FavoritesInput) (*sdkmcp.CallToolResult, FavoritesOutput, error) {
		action := strings.ToLower(strings.TrimSpace(input.Action))
		if action == "" {
			action = "list"
		}

		var out FavoritesOutput
		var err error

		switch action {
		case "list":
		case "add", "toggle":
			if !d.Catalog.Has(input.ID) {
				return nil, FavoritesOutput{}, ErrNotFound("destination", strconv.Itoa(input.ID))
			}
			if action == "add" {
				out.Changed, err = d.Favorites.Add(ctx, input.ID)
			} else {
				_, err = d.Favorites.Toggle(ctx, input.ID)
				out.Changed = true
			}
		case "remove":
			out.Changed, err = d.Favorites.Remove(ctx, input.ID)
		default:
			return nil, FavoritesOutput{}, ErrInvalidInput(fmt.Sprintf("unknown action %q (use list, add, remove or toggle)", input.Action))
		}
		if err != nil {
			return nil, FavoritesOutput{}, WrapStorageError(err)
		}

		if action != "list" {
			out.Favorite = d.Favorites.Contains(input.ID)
		}

		out.IDs = d.Favorites.IDs()
		for _, id := range out.IDs {
			if dest, ok := d.Catalog.Get(id); ok {
				out.Destinations = append(out.Destinations, dest)
			}
		}
		return nil, out, nil
	}
}
