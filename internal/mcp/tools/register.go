package tools

import (
	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
)

// Register registers all tools with the MCP server.
func Register(srv *sdkmcp.Server, d *Deps) {
	// Tool 1: tripfinder_search
	AddTool(srv, &sdkmcp.Tool{
		Name:        "tripfinder_search",
		Description: "Search travel destinations. Runs fuzzy text search (case insensitive; a term also matches when its letters appear in order in the title or location), then the session filters, then the requested sort. Pass filters to change the session criteria first. Non-empty queries are recorded in search history.",
	}, ToolSearch(d))

	// Tool 2: tripfinder_get_destination
	AddTool(srv, &sdkmcp.Tool{
		Name:        "tripfinder_get_destination",
		Description: "Get one destination by ID with its favorite flag and user reviews",
	}, ToolGetDestination(d))

	// Tool 3: tripfinder_get_filters
	AddTool(srv, &sdkmcp.Tool{
		Name:        "tripfinder_get_filters",
		Description: "Get the session filter criteria, active filter count, toggle states and a share-link query string",
	}, ToolGetFilters(d))

	// Tool 4: tripfinder_set_filters
	AddTool(srv, &sdkmcp.Tool{
		Name:        "tripfinder_set_filters",
		Description: "Change the session filters. Only the fields you pass change. Use clear_tags, clear_guide or clear_dates to remove a filter. Rejects a price range with min above max, ratings outside 0 to 5, and date ranges that start after they end.",
	}, ToolSetFilters(d))

	// Tool 5: tripfinder_reset_filters
	AddTool(srv, &sdkmcp.Tool{
		Name:        "tripfinder_reset_filters",
		Description: "Reset the session filters to their defaults (domestic stays, full price range, no other constraints)",
	}, ToolResetFilters(d))

	// Tool 6: tripfinder_set_toggle
	AddTool(srv, &sdkmcp.Tool{
		Name:        "tripfinder_set_toggle",
		Description: "Switch a filter toggle: stay_package (travel plus stay), trip_only (travel without stay) or guide (tour guide included). Turning a category toggle off widens the category to any.",
	}, ToolSetToggle(d))

	// Tool 7: tripfinder_add_tag
	AddTool(srv, &sdkmcp.Tool{
		Name:        "tripfinder_add_tag",
		Description: "Add a tag to the tag filter. Tags already present are left alone.",
	}, ToolAddTag(d))

	// Tool 8: tripfinder_list_presets
	AddTool(srv, &sdkmcp.Tool{
		Name:        "tripfinder_list_presets",
		Description: "List the built-in filter presets (budget, luxury, adventure, culture, beach) with the fields each one sets",
	}, ToolListPresets(d))

	// Tool 9: tripfinder_apply_preset
	AddTool(srv, &sdkmcp.Tool{
		Name:        "tripfinder_apply_preset",
		Description: "Apply a filter preset. Only the fields the preset defines change; trip type, category and dates are kept.",
	}, ToolApplyPreset(d))

	// Tool 10: tripfinder_export_filters
	AddTool(srv, &sdkmcp.Tool{
		Name:        "tripfinder_export_filters",
		Description: "Encode the session filters as a share-link query string",
	}, ToolExportFilters(d))

	// Tool 11: tripfinder_import_filters
	AddTool(srv, &sdkmcp.Tool{
		Name:        "tripfinder_import_filters",
		Description: "Apply a share-link query string produced by tripfinder_export_filters. Parameters that fail to decode are skipped and the rest are applied.",
	}, ToolImportFilters(d))

	// Tool 12: tripfinder_suggestions
	AddTool(srv, &sdkmcp.Tool{
		Name:        "tripfinder_suggestions",
		Description: "Count tags, price buckets and locations across the current results, plus a ranked tag list. Does not record history.",
	}, ToolSuggestions(d))

	// Tool 13: tripfinder_facets
	AddTool(srv, &sdkmcp.Tool{
		Name:        "tripfinder_facets",
		Description: "Count trip types, categories, tags and guided destinations across the current results or the whole catalog",
	}, ToolFacets(d))

	// Tool 14: tripfinder_history
	AddTool(srv, &sdkmcp.Tool{
		Name:        "tripfinder_history",
		Description: "List recent searches with the filters active at the time, newest first",
	}, ToolHistory(d))

	// Tool 15: tripfinder_restore_history
	AddTool(srv, &sdkmcp.Tool{
		Name:        "tripfinder_restore_history",
		Description: "Restore the filters of a past search and rerun its query",
	}, ToolRestoreHistory(d))

	// Tool 16: tripfinder_favorites
	AddTool(srv, &sdkmcp.Tool{
		Name:        "tripfinder_favorites",
		Description: "List, add, remove or toggle favorite destinations. Favorites persist across sessions.",
	}, ToolFavorites(d))

	// Tool 17: tripfinder_submit_review
	AddTool(srv, &sdkmcp.Tool{
		Name:        "tripfinder_submit_review",
		Description: "Submit a traveler review. Every field is required and rating must be 1 to 5.",
	}, ToolSubmitReview(d))

	// Tool 18: tripfinder_list_reviews
	AddTool(srv, &sdkmcp.Tool{
		Name:        "tripfinder_list_reviews",
		Description: "List submitted reviews, newest first, optionally for one destination",
	}, ToolListReviews(d))

	// Tool 19: tripfinder_query_results
	AddTool(srv, &sdkmcp.Tool{
		Name:        "tripfinder_query_results",
		Description: "Run a jq expression over the current results. By default the input is the result array, e.g. 'map(.price) | add / length' or 'group_by(.trip_type) | map({key: .[0].trip_type, n: length})'. Set per_destination to run it against each destination.",
	}, ToolQueryResults(d))
}
