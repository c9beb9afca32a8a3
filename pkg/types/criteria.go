package types

import (
	"errors"
	"fmt"
	"slices"
	"time"
)

// ErrInvalidCriteria is returned when criteria break a range invariant.
var ErrInvalidCriteria = errors.New("invalid criteria")

// DefaultPriceCeiling is the upper price bound of fresh criteria.
const DefaultPriceCeiling = 5000

// PriceRange is an inclusive price interval.
type PriceRange struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// Contains reports whether price lies within the range, bounds included.
func (r PriceRange) Contains(price float64) bool {
	return price >= r.Min && price <= r.Max
}

// DateRange is an inclusive calendar interval in DateLayout.
type DateRange struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// Bounds parses both ends of the range.
func (r DateRange) Bounds() (time.Time, time.Time, error) {
	start, err := time.Parse(DateLayout, r.Start)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("start date: %w", err)
	}
	end, err := time.Parse(DateLayout, r.End)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("end date: %w", err)
	}
	return start, end, nil
}

// Contains reports whether day lies within the range, bounds included.
// A range that does not parse contains nothing.
func (r DateRange) Contains(day time.Time) bool {
	start, end, err := r.Bounds()
	if err != nil {
		return false
	}
	return !day.Before(start) && !day.After(end)
}

// Criteria is the set of active filter constraints.
type Criteria struct {
	TripType   TripType   `json:"trip_type"`
	Category   Category   `json:"category"`
	PriceRange PriceRange `json:"price_range"`
	MinRating  float64    `json:"min_rating"`
	Tags       []string   `json:"tags,omitempty"`
	HasGuide   *bool      `json:"has_guide,omitempty"`
	DateRange  *DateRange `json:"date_range,omitempty"`
}

// DefaultCriteria returns the criteria a session starts with.
func DefaultCriteria(priceCeiling float64) Criteria {
	if priceCeiling <= 0 {
		priceCeiling = DefaultPriceCeiling
	}
	return Criteria{
		TripType:   TripDomestic,
		Category:   CategoryStay,
		PriceRange: PriceRange{Min: 0, Max: priceCeiling},
	}
}

// Clone returns a deep copy.
func (c Criteria) Clone() Criteria {
	out := c
	if c.Tags != nil {
		out.Tags = slices.Clone(c.Tags)
	}
	if c.HasGuide != nil {
		v := *c.HasGuide
		out.HasGuide = &v
	}
	if c.DateRange != nil {
		dr := *c.DateRange
		out.DateRange = &dr
	}
	return out
}

// Validate checks the range invariants the engines rely on.
func (c Criteria) Validate() error {
	if _, err := ParseTripType(string(c.TripType)); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidCriteria, err)
	}
	if _, err := ParseCategory(string(c.Category)); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidCriteria, err)
	}
	if c.PriceRange.Min < 0 || c.PriceRange.Min > c.PriceRange.Max {
		return fmt.Errorf("%w: price range [%v, %v]", ErrInvalidCriteria, c.PriceRange.Min, c.PriceRange.Max)
	}
	if c.MinRating < 0 || c.MinRating > 5 {
		return fmt.Errorf("%w: min rating %v outside [0, 5]", ErrInvalidCriteria, c.MinRating)
	}
	if c.DateRange != nil {
		start, end, err := c.DateRange.Bounds()
		if err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidCriteria, err)
		}
		if start.After(end) {
			return fmt.Errorf("%w: date range starts after it ends", ErrInvalidCriteria)
		}
	}
	return nil
}

// Preset is a named overlay of partial criteria.
// Nil fields are left untouched when the preset is applied.
type Preset struct {
	Key         string      `json:"key"`
	Label       string      `json:"label"`
	Description string      `json:"description"`
	PriceRange  *PriceRange `json:"price_range,omitempty"`
	MinRating   *float64    `json:"min_rating,omitempty"`
	Tags        []string    `json:"tags,omitempty"`
	HasGuide    *bool       `json:"has_guide,omitempty"`
}

// Overlay writes the preset's specified fields onto c.
func (p Preset) Overlay(c *Criteria) {
	if p.PriceRange != nil {
		c.PriceRange = *p.PriceRange
	}
	if p.MinRating != nil {
		c.MinRating = *p.MinRating
	}
	if p.Tags != nil {
		c.Tags = slices.Clone(p.Tags)
	}
	if p.HasGuide != nil {
		v := *p.HasGuide
		c.HasGuide = &v
	}
}

// HistoryEntry records one executed search.
type HistoryEntry struct {
	ID        string    `json:"id"`
	Query     string    `json:"query"`
	Filters   Criteria  `json:"filters"`
	Timestamp time.Time `json:"timestamp"`
}

// Suggestions aggregates frequencies over a result list for UI hints.
type Suggestions struct {
	Tags        map[string]int `json:"tags"`
	PriceRanges map[string]int `json:"price_ranges"`
	Locations   map[string]int `json:"locations"`
}

// TagCount is one entry of a ranked tag list.
type TagCount struct {
	Tag   string `json:"tag"`
	Count int    `json:"count"`
}
