package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/usestring/tripfinder-mcp/internal/filterstate"
	"github.com/usestring/tripfinder-mcp/pkg/types"
)

func (a *app) presetsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "presets",
		Short: "List filter presets",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			store := filterstate.New(filterstate.WithPriceCeiling(a.cfg.PriceCeiling))
			out := cmd.OutOrStdout()
			for _, p := range store.Presets() {
				if _, err := fmt.Fprintf(out, "%-10s %-20s %s\n", p.Key, p.Label, presetSummary(p)); err != nil {
					return err
				}
			}
			return nil
		},
	}
}

func presetSummary(p types.Preset) string {
	var parts []string
	if p.PriceRange != nil {
		parts = append(parts, fmt.Sprintf("R$ %.0f-%.0f", p.PriceRange.Min, p.PriceRange.Max))
	}
	if p.MinRating != nil {
		parts = append(parts, fmt.Sprintf("★ %.1f+", *p.MinRating))
	}
	if len(p.Tags) > 0 {
		parts = append(parts, strings.Join(p.Tags, ", "))
	}
	if p.HasGuide != nil && *p.HasGuide {
		parts = append(parts, "com guia")
	}
	return strings.Join(parts, " · ")
}
