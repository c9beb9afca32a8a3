package prompts

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
)

// HandlePlanTrip implements the trip planning workflow.
func HandlePlanTrip(cfg *Config) func(ctx context.Context, req *sdkmcp.GetPromptRequest) (*sdkmcp.GetPromptResult, error) {
	return func(ctx context.Context, req *sdkmcp.GetPromptRequest) (*sdkmcp.GetPromptResult, error) {
		args := req.Params.Arguments

		wishes := ""
		budget := ""
		tripType := ""
		if args != nil {
			wishes = strings.TrimSpace(args["wishes"])
			budget = strings.TrimSpace(args["budget"])
			tripType = strings.TrimSpace(args["trip_type"])
		}

		var sb strings.Builder

		// 1. Role
		sb.WriteString("# Plan a Trip\n\n")
		sb.WriteString("You are a travel consultant for a Brazilian agency. Find destinations that fit what the traveler asked for and explain the trade-offs.\n\n")

		if wishes != "" {
			sb.WriteString(fmt.Sprintf("**Traveler wishes:** %s\n\n", wishes))
		}

		// 2. Workflow
		sb.WriteString("## Workflow Steps\n\n")
		sb.WriteString("1. **Start clean** - `tripfinder_reset_filters()`\n")
		sb.WriteString("2. **Set the hard constraints** - one `tripfinder_set_filters` call:\n")
		sb.WriteString("```\n")
		sb.WriteString(fmt.Sprintf("tripfinder_set_filters(%s)\n", strings.Join(filterArgs(budget, tripType, cfg.PriceCeiling), ", ")))
		sb.WriteString("```\n")
		sb.WriteString("3. **Pick a preset** if a theme fits (beach, culture, adventure, luxury, budget) - `tripfinder_apply_preset(name=...)`\n")
		sb.WriteString("4. **Search** - `tripfinder_search(query=\"<keywords>\", sort=\"relevance\")`. Keywords may be in Portuguese; keep the accents.\n")
		sb.WriteString("5. **If nothing matches** - call `tripfinder_facets(ignore_filters=true)` to see what the catalog offers, then relax one constraint at a time.\n")
		sb.WriteString("6. **Check opinions** - `tripfinder_get_destination(id)` for the top picks includes traveler reviews.\n\n")

		// 3. Output
		sb.WriteString("## Expected Output Format\n\n")
		sb.WriteString("- A shortlist of at most 3 destinations, best first\n")
		sb.WriteString("- For each: price per person, rating, why it fits, one drawback\n")
		sb.WriteString("- The share link from `tripfinder_export_filters` so the traveler can reopen the search\n")

		return &sdkmcp.GetPromptResult{
			Description: "Guide for planning a trip from traveler wishes",
			Messages: []*sdkmcp.PromptMessage{
				{
					Role:    "user",
					Content: &sdkmcp.TextContent{Text: sb.String()},
				},
			},
		}, nil
	}
}

func filterArgs(budget, tripType string, ceiling float64) []string {
	var out []string
	switch strings.ToLower(tripType) {
	case "domestic", "nacional":
		out = append(out, `trip_type="domestic"`)
	case "international", "internacional":
		out = append(out, `trip_type="international"`)
	default:
		out = append(out, `trip_type="any"`)
	}
	out = append(out, `category="any"`)

	if v, err := strconv.ParseFloat(strings.TrimPrefix(budget, "R$"), 64); err == nil && v > 0 && v < ceiling {
		out = append(out, fmt.Sprintf("max_price=%s", strconv.FormatFloat(v, 'f', -1, 64)))
	}
	return out
}
