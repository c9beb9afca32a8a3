package main

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/usestring/tripfinder-mcp/internal/filterstate"
	"github.com/usestring/tripfinder-mcp/internal/search"
	"github.com/usestring/tripfinder-mcp/pkg/mcpsrv"
	"github.com/usestring/tripfinder-mcp/pkg/types"
)

type searchFlags struct {
	sort      string
	preset    string
	filters   string
	tripType  string
	category  string
	minPrice  float64
	maxPrice  float64
	minRating float64
	tags      []string
	guide     bool
	limit     int
	share     bool
	json      bool
}

func (a *app) searchCmd() *cobra.Command {
	var f searchFlags

	cmd := &cobra.Command{
		Use:   "search [query...]",
		Short: "Search, filter and sort destinations",
		Long: `Search the catalog. Words are matched against title, location,
description and tags, ignoring case. Filters start from the
session defaults (domestic stays up to the price ceiling); a share link
from --filters is applied first, then --preset, then the individual flags.`,
		Example: `  tripfinder search praia
  tripfinder search --type any --sort price_asc --max-price 1000
  tripfinder search --preset beach --share
  tripfinder search --filters 'type=international&rating=4.5'`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runSearch(cmd, strings.Join(args, " "), f)
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&f.sort, "sort", "s", "", "sort key: "+strings.Join(sortKeys(), ", "))
	flags.StringVarP(&f.preset, "preset", "p", "", "apply a filter preset (see 'tripfinder presets')")
	flags.StringVar(&f.filters, "filters", "", "apply a share-link query string")
	flags.StringVarP(&f.tripType, "type", "t", "", "trip type: domestic, international or any")
	flags.StringVarP(&f.category, "category", "c", "", "category: stay, offer, trip or any")
	flags.Float64Var(&f.minPrice, "min-price", 0, "lowest price")
	flags.Float64Var(&f.maxPrice, "max-price", 0, "highest price")
	flags.Float64Var(&f.minRating, "min-rating", 0, "lowest rating (0-5)")
	flags.StringArrayVar(&f.tags, "tag", nil, "require a tag (repeatable)")
	flags.BoolVar(&f.guide, "guide", false, "only guided destinations")
	flags.IntVarP(&f.limit, "limit", "n", 10, "cards to print; 0 prints all")
	flags.BoolVar(&f.share, "share", false, "print the share link for the filters")
	flags.BoolVar(&f.json, "json", false, "print results as JSON")

	return cmd
}

func (a *app) runSearch(cmd *cobra.Command, query string, f searchFlags) error {
	ctx := cmd.Context()
	out := cmd.OutOrStdout()

	sortKey := f.sort
	if sortKey == "" {
		sortKey = a.cfg.DefaultSort
	}
	if !search.IsSortKey(sortKey) {
		fmt.Fprintf(cmd.ErrOrStderr(), "warning: unknown sort key %q, keeping search order (use one of %s)\n",
			sortKey, strings.Join(sortKeys(), ", "))
	}

	opts := []mcpsrv.Option{mcpsrv.WithConfig(a.cfg)}
	if !f.json {
		opts = append(opts, mcpsrv.WithTerminal(out, f.limit))
	}
	deps, err := mcpsrv.NewDeps(ctx, opts...)
	if err != nil {
		return err
	}
	defer deps.Close()

	if err := applySearchFlags(cmd, deps.Store, f); err != nil {
		return err
	}

	res, err := deps.Store.Recompute(ctx, deps.Catalog, query, search.SortKey(sortKey))
	if err != nil {
		return err
	}

	if f.json {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		if err := enc.Encode(res.Items); err != nil {
			return err
		}
	}
	if f.share {
		_, err = fmt.Fprintf(out, "?%s\n", deps.Store.ExportCriteria())
	}
	return err
}

// applySearchFlags layers the share link, the preset and the explicit
// flags onto the store criteria, in that order.
func applySearchFlags(cmd *cobra.Command, store *filterstate.Store, f searchFlags) error {
	if f.filters != "" && !store.ImportCriteria(f.filters) {
		return fmt.Errorf("invalid filter link: %q", f.filters)
	}
	if f.preset != "" {
		if _, ok := store.ApplyPreset(f.preset); !ok {
			fmt.Fprintf(cmd.ErrOrStderr(), "warning: unknown preset %q, filters unchanged\n", f.preset)
		}
	}

	flags := cmd.Flags()
	c := store.Criteria()

	if flags.Changed("type") {
		t, err := types.ParseTripType(f.tripType)
		if err != nil {
			return err
		}
		c.TripType = t
	}
	if flags.Changed("category") {
		cat, err := types.ParseCategory(f.category)
		if err != nil {
			return err
		}
		c.Category = cat
	}
	if flags.Changed("min-price") {
		c.PriceRange.Min = f.minPrice
	}
	if flags.Changed("max-price") {
		c.PriceRange.Max = f.maxPrice
	}
	if flags.Changed("min-rating") {
		c.MinRating = f.minRating
	}
	for _, tag := range f.tags {
		if tag = strings.TrimSpace(tag); tag != "" && !containsTag(c.Tags, tag) {
			c.Tags = append(c.Tags, tag)
		}
	}
	if flags.Changed("guide") {
		if f.guide {
			v := true
			c.HasGuide = &v
		} else {
			c.HasGuide = nil
		}
	}

	return store.SetCriteria(c)
}

func containsTag(tags []string, tag string) bool {
	for _, t := range tags {
		if t == tag {
			return true
		}
	}
	return false
}

func sortKeys() []string {
	return []string{
		string(search.SortRelevance),
		string(search.SortPriceAsc),
		string(search.SortPriceDesc),
		string(search.SortRating),
		string(search.SortReviews),
		string(search.SortDate),
		string(search.SortPopularity),
	}
}
