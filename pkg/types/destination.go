// Package types holds the data model shared by the engines, the store and the MCP tools.
package types

import (
	"fmt"
	"strings"
	"time"
)

// DateLayout is the calendar-date format used for destination and review dates.
const DateLayout = "2006-01-02"

// TripType distinguishes domestic from international destinations.
type TripType string

const (
	TripDomestic      TripType = "domestic"
	TripInternational TripType = "international"
	TripAny           TripType = "any"
)

// ParseTripType accepts the canonical names and the pt-BR spellings
// ("nacional", "internacional") found in older catalogs and share links.
func ParseTripType(s string) (TripType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "domestic", "nacional":
		return TripDomestic, nil
	case "international", "internacional":
		return TripInternational, nil
	case "any", "":
		return TripAny, nil
	}
	return "", fmt.Errorf("unknown trip type: %q", s)
}

// Category is the kind of product a destination is sold as.
type Category string

const (
	CategoryStay  Category = "stay"
	CategoryOffer Category = "offer"
	CategoryTrip  Category = "trip"
	CategoryAny   Category = "any"
)

// ParseCategory accepts the canonical names plus the "offers" alias.
func ParseCategory(s string) (Category, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "stay":
		return CategoryStay, nil
	case "offer", "offers":
		return CategoryOffer, nil
	case "trip":
		return CategoryTrip, nil
	case "any", "":
		return CategoryAny, nil
	}
	return "", fmt.Errorf("unknown category: %q", s)
}

// Destination is one catalog entry.
type Destination struct {
	ID          int      `json:"id"`
	Title       string   `json:"title"`
	Location    string   `json:"location"`
	Description string   `json:"description"`
	Image       string   `json:"image,omitempty"`
	Price       float64  `json:"price"`
	Rating      float64  `json:"rating"`
	ReviewCount int      `json:"review_count"`
	TripType    TripType `json:"trip_type"`
	Category    Category `json:"category"`
	Tags        []string `json:"tags,omitempty"`
	Date        string   `json:"date"`
	HasGuide    bool     `json:"has_guide"`

	// SearchScore is assigned by a search pass only.
	SearchScore int `json:"search_score,omitempty"`
}

// Day parses Date. Unparsable dates yield the zero time.
func (d Destination) Day() time.Time {
	t, err := time.Parse(DateLayout, d.Date)
	if err != nil {
		return time.Time{}
	}
	return t
}

// HasAnyTag reports whether the destination carries at least one of tags.
func (d Destination) HasAnyTag(tags []string) bool {
	for _, want := range tags {
		for _, have := range d.Tags {
			if have == want {
				return true
			}
		}
	}
	return false
}
