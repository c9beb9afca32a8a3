package prompts

import (
	"context"
	"fmt"
	"strings"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
)

// HandleGuide serves the tool usage guide.
func HandleGuide(cfg *Config) func(ctx context.Context, req *sdkmcp.GetPromptRequest) (*sdkmcp.GetPromptResult, error) {
	return func(ctx context.Context, req *sdkmcp.GetPromptRequest) (*sdkmcp.GetPromptResult, error) {
		var sb strings.Builder

		sb.WriteString("# Tripfinder Tool Guide\n\n")

		// --- Pipeline ---
		sb.WriteString("## How Results Are Computed\n\n")
		sb.WriteString("Every search runs the same three steps over the catalog:\n")
		sb.WriteString("1. **Search** (only for a non-blank query): fuzzy text match on title, location, description and tags. Case is ignored; a term also matches when its letters appear in order in the title or location. Accents must match.\n")
		sb.WriteString("2. **Filter**: the session criteria (trip type, category, price, rating, tags, guide, dates).\n")
		sb.WriteString("3. **Sort**: relevance, price_asc, price_desc, rating, reviews, date or popularity.\n\n")

		// --- Session state ---
		sb.WriteString("## Session Filters\n\n")
		sb.WriteString("| Goal | Tool | Example |\n")
		sb.WriteString("|------|------|--------|\n")
		sb.WriteString("| See what is active | `tripfinder_get_filters` | |\n")
		sb.WriteString("| Change a few fields | `tripfinder_set_filters` | `max_price: 1500, tags: [\"Praia\"]` |\n")
		sb.WriteString("| Widen to everything | `tripfinder_set_filters` | `trip_type: \"any\", category: \"any\"` |\n")
		sb.WriteString("| Apply a theme | `tripfinder_apply_preset` | `name: \"beach\"` |\n")
		sb.WriteString("| Start over | `tripfinder_reset_filters` | |\n")
		sb.WriteString("| Share or restore | `tripfinder_export_filters` / `tripfinder_import_filters` | |\n")

		sb.WriteString("\n**Key rules**:\n")
		sb.WriteString("- New sessions show **domestic stays only**. Widen trip_type and category before concluding nothing matches.\n")
		sb.WriteString(fmt.Sprintf("- The price slider tops out at R$ %.0f; a max below that counts as an active filter.\n", cfg.PriceCeiling))
		sb.WriteString("- Tags match when a destination has **any** of them, and are case-sensitive (`Praia`, not `praia`).\n")
		sb.WriteString("- Presets only change the fields they define.\n")

		if len(cfg.Presets) > 0 {
			sb.WriteString("\n## Presets\n\n")
			for _, p := range cfg.Presets {
				sb.WriteString(fmt.Sprintf("- `%s` (%s): %s\n", p.Key, p.Label, p.Description))
			}
		}

		// --- History ---
		sb.WriteString("\n## History\n")
		sb.WriteString(fmt.Sprintf("- `tripfinder_search` with a non-blank query is recorded; the newest %d searches are kept.\n", cfg.HistoryLimit))
		sb.WriteString("- `tripfinder_suggestions`, `tripfinder_facets` and `tripfinder_query_results` never record history.\n")
		sb.WriteString("- `tripfinder_restore_history(id)` brings back the filters of a past search and reruns it.\n")

		// --- JQ ---
		sb.WriteString("\n## JQ Quick Reference\n")
		sb.WriteString("- `map(.price) | add / length` - Average price of the results\n")
		sb.WriteString("- `group_by(.trip_type) | map({key: .[0].trip_type, value: length}) | from_entries` - Count per trip type\n")
		sb.WriteString("- With `per_destination: true`: `select(.has_guide) | .title` - Titles of guided trips\n")

		return &sdkmcp.GetPromptResult{
			Description: "Essential guide for the tripfinder tools",
			Messages: []*sdkmcp.PromptMessage{
				{
					Role:    "user",
					Content: &sdkmcp.TextContent{Text: sb.String()},
				},
			},
		}, nil
	}
}
