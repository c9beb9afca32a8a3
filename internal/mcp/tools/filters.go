package tools

import (
	"context"
	"fmt"
	"strings"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/usestring/tripfinder-mcp/internal/filterstate"
	"github.com/usestring/tripfinder-mcp/pkg/types"
)

// FiltersInput is a partial criteria update. Omitted fields keep their
// current value.
type FiltersInput struct {
	TripType   string   `json:"trip_type,omitempty" jsonschema:"domestic, international or any (nacional and internacional are accepted)"`
	Category   string   `json:"category,omitempty" jsonschema:"stay, offer, trip or any"`
	MinPrice   *float64 `json:"min_price,omitempty" jsonschema:"Lower price bound, inclusive"`
	MaxPrice   *float64 `json:"max_price,omitempty" jsonschema:"Upper price bound, inclusive"`
	MinRating  *float64 `json:"min_rating,omitempty" jsonschema:"Minimum rating from 0 to 5. 0 disables the rating filter."`
	Tags       []string `json:"tags,omitempty" jsonschema:"Replace the tag filter. A destination matches when it carries any of these tags (case-sensitive)."`
	ClearTags  bool     `json:"clear_tags,omitempty" jsonschema:"Remove the tag filter"`
	HasGuide   *bool    `json:"has_guide,omitempty" jsonschema:"Require (true) or exclude (false) destinations with a tour guide"`
	ClearGuide bool     `json:"clear_guide,omitempty" jsonschema:"Remove the guide filter"`
	StartDate  string   `json:"start_date,omitempty" jsonschema:"Date range start (YYYY-MM-DD). Requires end_date."`
	EndDate    string   `json:"end_date,omitempty" jsonschema:"Date range end (YYYY-MM-DD). Requires start_date."`
	ClearDates bool     `json:"clear_dates,omitempty" jsonschema:"Remove the date range filter"`
}

// Merge writes the specified fields of f onto c.
func (f FiltersInput) Merge(c types.Criteria) (types.Criteria, error) {
	if f.TripType != "" {
		tt, err := types.ParseTripType(f.TripType)
		if err != nil {
			return c, ErrInvalidInput(err.Error())
		}
		c.TripType = tt
	}
	if f.Category != "" {
		cat, err := types.ParseCategory(f.Category)
		if err != nil {
			return c, ErrInvalidInput(err.Error())
		}
		c.Category = cat
	}
	if f.MinPrice != nil {
		c.PriceRange.Min = *f.MinPrice
	}
	if f.MaxPrice != nil {
		c.PriceRange.Max = *f.MaxPrice
	}
	if f.MinRating != nil {
		c.MinRating = *f.MinRating
	}

	switch {
	case f.ClearTags:
		c.Tags = nil
	case f.Tags != nil:
		c.Tags = trimAll(f.Tags)
	}

	switch {
	case f.ClearGuide:
		c.HasGuide = nil
	case f.HasGuide != nil:
		v := *f.HasGuide
		c.HasGuide = &v
	}

	switch {
	case f.ClearDates:
		c.DateRange = nil
	case f.StartDate != "" || f.EndDate != "":
		if f.StartDate == "" || f.EndDate == "" {
			return c, ErrInvalidInput("start_date and end_date must be given together")
		}
		c.DateRange = &types.DateRange{Start: f.StartDate, End: f.EndDate}
	}
	return c, nil
}

func (d *Deps) applyFilters(f FiltersInput) (types.Criteria, error) {
	next, err := f.Merge(d.Store.Criteria())
	if err != nil {
		return types.Criteria{}, err
	}
	if err := d.Store.SetCriteria(next); err != nil {
		return types.Criteria{}, WrapStorageError(err)
	}
	return d.Store.Criteria(), nil
}

// ToggleView is the state of one on/off control.
type ToggleView struct {
	Name  string `json:"name"`
	Label string `json:"label"`
	On    bool   `json:"on"`
}

var toggleNames = map[filterstate.Toggle]string{
	filterstate.ToggleStayPackage: "stay_package",
	filterstate.ToggleTripOnly:    "trip_only",
	filterstate.ToggleGuide:       "guide",
}

func parseToggle(name string) (filterstate.Toggle, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	for t, n := range toggleNames {
		if n == name {
			return t, true
		}
	}
	return 0, false
}

// FiltersOutput is the session criteria as returned by the filter tools.
type FiltersOutput struct {
	Criteria      types.Criteria `json:"criteria"`
	ActiveFilters int            `json:"active_filters"`
	PriceCeiling  float64        `json:"price_ceiling"`
	Toggles       []ToggleView   `json:"toggles,omitzero"`
	Share         string         `json:"share"`
}

func (d *Deps) filtersOutput() FiltersOutput {
	out := FiltersOutput{
		Criteria:      d.Store.Criteria(),
		ActiveFilters: d.Store.ActiveFilterCount(),
		PriceCeiling:  d.Store.PriceCeiling(),
		Share:         d.Store.ExportCriteria(),
	}
	for _, t := range filterstate.Toggles {
		out.Toggles = append(out.Toggles, ToggleView{
			Name:  toggleNames[t],
			Label: t.Label(),
			On:    d.Store.ToggleState(t),
		})
	}
	return out
}

// GetFiltersInput is the input for tripfinder_get_filters.
type GetFiltersInput struct{}

// ToolGetFilters returns the session criteria.
func ToolGetFilters(d *Deps) func(ctx context.Context, req *sdkmcp.CallToolRequest, input GetFiltersInput) (*sdkmcp.CallToolResult, FiltersOutput, error) {
	return func(ctx context.Context, req *sdkmcp.CallToolRequest, input GetFiltersInput) (*sdkmcp.CallToolResult, FiltersOutput, error) {
		return nil, d.filtersOutput(), nil
	}
}

// ToolSetFilters merges a partial update into the session criteria.
func ToolSetFilters(d *Deps) func(ctx context.Context, req *sdkmcp.CallToolRequest, input FiltersInput) (*sdkmcp.CallToolResult, FiltersOutput, error) {
	return func(ctx context.Context, req *sdkmcp.CallToolRequest, input FiltersInput) (*sdkmcp.CallToolResult, FiltersOutput, error) {
		if _, err := d.applyFilters(input); err != nil {
			return nil, FiltersOutput{}, err
		}
		return nil, d.filtersOutput(), nil
	}
}

// ResetFiltersInput is the input for tripfinder_reset_filters.
type ResetFiltersInput struct{}

// ToolResetFilters restores the default criteria.
func ToolResetFilters(d *Deps) func(ctx context.Context, req *sdkmcp.CallToolRequest, input ResetFiltersInput) (*sdkmcp.CallToolResult, FiltersOutput, error) {
	return func(ctx context.Context, req *sdkmcp.CallToolRequest, input ResetFiltersInput) (*sdkmcp.CallToolResult, FiltersOutput, error) {
		d.Store.Reset()
		return nil, d.filtersOutput(), nil
	}
}

// SetToggleInput is the input for tripfinder_set_toggle.
type SetToggleInput struct {
	Toggle string `json:"toggle" jsonschema:"stay_package, trip_only or guide"`
	On     bool   `json:"on" jsonschema:"Switch the toggle on (true) or off (false)"`
}

// ToolSetToggle switches one of the category or guide toggles.
func ToolSetToggle(d *Deps) func(ctx context.Context, req *sdkmcp.CallToolRequest, input SetToggleInput) (*sdkmcp.CallToolResult, FiltersOutput, error) {
	return func(ctx context.Context, req *sdkmcp.CallToolRequest, input SetToggleInput) (*sdkmcp.CallToolResult, FiltersOutput, error) {
		t, ok := parseToggle(input.Toggle)
		if !ok {
			return nil, FiltersOutput{}, ErrInvalidInput(fmt.Sprintf("unknown toggle %q (use stay_package, trip_only or guide)", input.Toggle))
		}
		d.Store.SetToggle(t, input.On)
		return nil, d.filtersOutput(), nil
	}
}

// AddTagInput is the input for tripfinder_add_tag.
type AddTagInput struct {
	Tag string `json:"tag" jsonschema:"Tag to add to the tag filter, e.g. Praia"`
}

// AddTagOutput is the output for tripfinder_add_tag.
type AddTagOutput struct {
	Added   bool          `json:"added"`
	Filters FiltersOutput `json:"filters"`
}

// ToolAddTag adds a tag to the tag filter when it is not already present.
func ToolAddTag(d *Deps) func(ctx context.Context, req *sdkmcp.CallToolRequest, input AddTagInput) (*sdkmcp.CallToolResult, AddTagOutput, error) {
	return func(ctx context.Context, req *sdkmcp.CallToolRequest, input AddTagInput) (*sdkmcp.CallToolResult, AddTagOutput, error) {
		tag := strings.TrimSpace(input.Tag)
		if tag == "" {
			return nil, AddTagOutput{}, ErrInvalidInput("tag is required")
		}
		added := d.Store.AddTag(tag)
		return nil, AddTagOutput{Added: added, Filters: d.filtersOutput()}, nil
	}
}

// ListPresetsInput is the input for tripfinder_list_presets.
type ListPresetsInput struct{}

// ListPresetsOutput is the output for tripfinder_list_presets.
type ListPresetsOutput struct {
	Presets []types.Preset `json:"presets,omitzero"`
}

// ToolListPresets lists the built-in presets in display order.
func ToolListPresets(d *Deps) func(ctx context.Context, req *sdkmcp.CallToolRequest, input ListPresetsInput) (*sdkmcp.CallToolResult, ListPresetsOutput, error) {
	return func(ctx context.Context, req *sdkmcp.CallToolRequest, input ListPresetsInput) (*sdkmcp.CallToolResult, ListPresetsOutput, error) {
		return nil, ListPresetsOutput{Presets: d.Store.Presets()}, nil
	}
}

// ApplyPresetInput is the input for tripfinder_apply_preset.
type ApplyPresetInput struct {
	Name string `json:"name" jsonschema:"Preset key: budget, luxury, adventure, culture or beach"`
}

// ApplyPresetOutput is the output for tripfinder_apply_preset.
type ApplyPresetOutput struct {
	Applied bool          `json:"applied"`
	Preset  *types.Preset `json:"preset,omitempty"`
	Filters FiltersOutput `json:"filters"`
	Hint    string        `json:"hint,omitempty"`
}

// ToolApplyPreset overlays a preset onto the session criteria. An unknown
// preset leaves the criteria unchanged.
func ToolApplyPreset(d *Deps) func(ctx context.Context, req *sdkmcp.CallToolRequest, input ApplyPresetInput) (*sdkmcp.CallToolResult, ApplyPresetOutput, error) {
	return func(ctx context.Context, req *sdkmcp.CallToolRequest, input ApplyPresetInput) (*sdkmcp.CallToolResult, ApplyPresetOutput, error) {
		p, ok := d.Store.ApplyPreset(strings.TrimSpace(input.Name))
		if !ok {
			return nil, ApplyPresetOutput{
				Filters: d.filtersOutput(),
				Hint:    fmt.Sprintf("Unknown preset %q left the filters unchanged. Use tripfinder_list_presets for the keys.", input.Name),
			}, nil
		}
		return nil, ApplyPresetOutput{Applied: true, Preset: &p, Filters: d.filtersOutput()}, nil
	}
}

// ExportFiltersInput is the input for tripfinder_export_filters.
type ExportFiltersInput struct{}

// ExportFiltersOutput is the output for tripfinder_export_filters.
type ExportFiltersOutput struct {
	Share string `json:"share" jsonschema:"URL query string encoding every criteria field"`
}

// ToolExportFilters encodes the session criteria as a share-link query.
func ToolExportFilters(d *Deps) func(ctx context.Context, req *sdkmcp.CallToolRequest, input ExportFiltersInput) (*sdkmcp.CallToolResult, ExportFiltersOutput, error) {
	return func(ctx context.Context, req *sdkmcp.CallToolRequest, input ExportFiltersInput) (*sdkmcp.CallToolResult, ExportFiltersOutput, error) {
		return nil, ExportFiltersOutput{Share: d.Store.ExportCriteria()}, nil
	}
}

// ImportFiltersInput is the input for tripfinder_import_filters.
type ImportFiltersInput struct {
	Share string `json:"share" jsonschema:"Share-link query string as produced by tripfinder_export_filters. A leading ? is allowed."`
}

// ImportFiltersOutput is the output for tripfinder_import_filters.
type ImportFiltersOutput struct {
	Parsed  bool          `json:"parsed"`
	Filters FiltersOutput `json:"filters"`
}

// ToolImportFilters applies a share-link query. Keys that fail to decode
// are skipped; the rest are applied.
func ToolImportFilters(d *Deps) func(ctx context.Context, req *sdkmcp.CallToolRequest, input ImportFiltersInput) (*sdkmcp.CallToolResult, ImportFiltersOutput, error) {
	return func(ctx context.Context, req *sdkmcp.CallToolRequest, input ImportFiltersInput) (*sdkmcp.CallToolResult, ImportFiltersOutput, error) {
		parsed := d.Store.ImportCriteria(input.Share)
		return nil, ImportFiltersOutput{Parsed: parsed, Filters: d.filtersOutput()}, nil
	}
}
