// Package prompts contains MCP prompt implementations for tripfinder.
package prompts

import "github.com/usestring/tripfinder-mcp/pkg/types"

// Config holds configuration needed by prompts.
type Config struct {
	PriceCeiling float64
	HistoryLimit int
	Presets      []types.Preset
}
