// Package filter implements the criteria filter over destination lists.
package filter

import (
	"github.com/usestring/tripfinder-mcp/pkg/types"
)

// Apply returns the destinations that satisfy every active predicate of c,
// in their original relative order. The input is not modified and c is not
// validated; callers pass criteria that already passed Criteria.Validate.
func Apply(items []types.Destination, c types.Criteria) []types.Destination {
	out := make([]types.Destination, 0, len(items))
	for _, d := range items {
		if Matches(d, c) {
			out = append(out, d)
		}
	}
	return out
}

// Matches reports whether a single destination satisfies c.
func Matches(d types.Destination, c types.Criteria) bool {
	return matchesTripType(d, c.TripType) &&
		matchesCategory(d, c.Category) &&
		c.PriceRange.Contains(d.Price) &&
		d.Rating >= c.MinRating &&
		matchesTags(d, c.Tags) &&
		matchesGuide(d, c.HasGuide) &&
		matchesDates(d, c.DateRange)
}

func matchesTripType(d types.Destination, want types.TripType) bool {
	return want == types.TripAny || want == "" || d.TripType == want
}

func matchesCategory(d types.Destination, want types.Category) bool {
	return want == types.CategoryAny || want == "" || d.Category == want
}

// matchesTags is OR within the tag set.
func matchesTags(d types.Destination, tags []string) bool {
	return len(tags) == 0 || d.HasAnyTag(tags)
}

func matchesGuide(d types.Destination, want *bool) bool {
	return want == nil || d.HasGuide == *want
}

func matchesDates(d types.Destination, r *types.DateRange) bool {
	return r == nil || r.Contains(d.Day())
}
