package prompts

import (
	"context"
	"testing"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/usestring/tripfinder-mcp/pkg/types"
)

func promptText(t *testing.T, res *sdkmcp.GetPromptResult) string {
	t.Helper()
	require.Len(t, res.Messages, 1)
	text, ok := res.Messages[0].Content.(*sdkmcp.TextContent)
	require.True(t, ok)
	return text.Text
}

func TestHandleGuide(t *testing.T) {
	cfg := &Config{
		PriceCeiling: 5000,
		HistoryLimit: 10,
		Presets:      []types.Preset{{Key: "beach", Label: "Praia", Description: "Paraísos tropicais"}},
	}

	res, err := HandleGuide(cfg)(context.Background(), &sdkmcp.GetPromptRequest{Params: &sdkmcp.GetPromptParams{}})
	require.NoError(t, err)

	text := promptText(t, res)
	assert.Contains(t, text, "R$ 5000")
	assert.Contains(t, text, "newest 10 searches")
	assert.Contains(t, text, "`beach` (Praia)")
}

func TestHandlePlanTrip(t *testing.T) {
	cfg := &Config{PriceCeiling: 5000}

	res, err := HandlePlanTrip(cfg)(context.Background(), &sdkmcp.GetPromptRequest{
		Params: &sdkmcp.GetPromptParams{Arguments: map[string]string{
			"wishes":    "praia com guia",
			"budget":    "1500",
			"trip_type": "nacional",
		}},
	})
	require.NoError(t, err)

	text := promptText(t, res)
	assert.Contains(t, text, "praia com guia")
	assert.Contains(t, text, `tripfinder_set_filters(trip_type="domestic", category="any", max_price=1500)`)
}

func TestFilterArgs(t *testing.T) {
	tests := []struct {
		name     string
		budget   string
		tripType string
		want     []string
	}{
		{"defaults", "", "", []string{`trip_type="any"`, `category="any"`}},
		{"international", "", "internacional", []string{`trip_type="international"`, `category="any"`}},
		{"budget above ceiling ignored", "9000", "", []string{`trip_type="any"`, `category="any"`}},
		{"currency prefix", "R$800", "", []string{`trip_type="any"`, `category="any"`, "max_price=800"}},
		{"garbage budget", "cheap", "", []string{`trip_type="any"`, `category="any"`}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, filterArgs(tt.budget, tt.tripType, 5000))
		})
	}
}
