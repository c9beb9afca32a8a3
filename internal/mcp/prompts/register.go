package prompts

import (
	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
)

// Register registers all prompts with the MCP server.
func Register(srv *sdkmcp.Server, cfg *Config) {
	// Prompt 1: Tool usage guide
	srv.AddPrompt(&sdkmcp.Prompt{
		Name:        "tripfinder_guide",
		Description: "Essential guide for the tripfinder tools: how search, filters, presets and history interact.",
	}, HandleGuide(cfg))

	// Prompt 2: Plan a trip
	srv.AddPrompt(&sdkmcp.Prompt{
		Name:        "plan_trip",
		Description: "RECOMMENDED: Turn a traveler's wishes into filters, run the search and present a shortlist.",
		Arguments: []*sdkmcp.PromptArgument{
			{
				Name:        "wishes",
				Description: "What the traveler wants, in their words (e.g., 'praia tranquila com guia')",
				Required:    false,
			},
			{
				Name:        "budget",
				Description: "Maximum price per person in reais",
				Required:    false,
			},
			{
				Name:        "trip_type",
				Description: "domestic or international",
				Required:    false,
			},
		},
	}, HandlePlanTrip(cfg))
}
