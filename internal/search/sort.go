package search

import (
	"cmp"
	"slices"

	"github.com/usestring/tripfinder-mcp/pkg/types"
)

// SortKey names an ordering of destinations.
type SortKey string

const (
	SortRelevance  SortKey = "relevance"
	SortPriceAsc   SortKey = "price_asc"
	SortPriceDesc  SortKey = "price_desc"
	SortRating     SortKey = "rating"
	SortReviews    SortKey = "reviews"
	SortDate       SortKey = "date"
	SortPopularity SortKey = "popularity"
)

// SortKeys lists every recognized key.
var SortKeys = []SortKey{
	SortRelevance, SortPriceAsc, SortPriceDesc, SortRating, SortReviews, SortDate, SortPopularity,
}

var comparators = map[SortKey]func(a, b types.Destination) int{
	SortRelevance: func(a, b types.Destination) int { return cmp.Compare(b.SearchScore, a.SearchScore) },
	SortPriceAsc:  func(a, b types.Destination) int { return cmp.Compare(a.Price, b.Price) },
	SortPriceDesc: func(a, b types.Destination) int { return cmp.Compare(b.Price, a.Price) },
	SortRating:    func(a, b types.Destination) int { return cmp.Compare(b.Rating, a.Rating) },
	SortReviews:   func(a, b types.Destination) int { return cmp.Compare(b.ReviewCount, a.ReviewCount) },
	SortDate:      func(a, b types.Destination) int { return b.Day().Compare(a.Day()) },
	SortPopularity: func(a, b types.Destination) int {
		return cmp.Compare(popularity(b), popularity(a))
	},
}

// IsSortKey reports whether key is recognized.
func IsSortKey(key string) bool {
	_, ok := comparators[SortKey(key)]
	return ok
}

// Sort returns a copy of items ordered by key. The sort is stable. An
// unrecognized key returns the copy in input order.
func Sort(items []types.Destination, key SortKey) []types.Destination {
	sorted := slices.Clone(items)
	if sorted == nil {
		sorted = []types.Destination{}
	}

	compare, ok := comparators[key]
	if !ok {
		return sorted
	}

	slices.SortStableFunc(sorted, compare)
	return sorted
}

func popularity(d types.Destination) float64 {
	return d.Rating * float64(d.ReviewCount)
}
