package filterstate

import (
	"cmp"
	"slices"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/usestring/tripfinder-mcp/pkg/types"
)

type priceBucket struct {
	below float64
	label string
}

// priceBuckets are checked in order; the last one catches everything else.
var priceBuckets = func() []priceBucket {
	p := message.NewPrinter(language.BrazilianPortuguese)
	return []priceBucket{
		{below: 500, label: p.Sprintf("Até R$ %d", 500)},
		{below: 1000, label: p.Sprintf("R$ %d - R$ %d", 500, 1000)},
		{below: 2000, label: p.Sprintf("R$ %d - R$ %d", 1000, 2000)},
		{below: 3000, label: p.Sprintf("R$ %d - R$ %d", 2000, 3000)},
		{label: p.Sprintf("Acima de R$ %d", 3000)},
	}
}()

// PriceBucket returns the label of the bucket price falls into.
func PriceBucket(price float64) string {
	last := len(priceBuckets) - 1
	for _, b := range priceBuckets[:last] {
		if price < b.below {
			return b.label
		}
	}
	return priceBuckets[last].label
}

// SecondaryLocation returns the part of a location after its first comma,
// or the whole location when there is none.
func SecondaryLocation(location string) string {
	parts := strings.Split(location, ",")
	if len(parts) > 1 {
		if second := strings.TrimSpace(parts[1]); second != "" {
			return second
		}
	}
	return location
}

// Suggestions counts tags, price buckets and secondary locations across
// items. It has no effect on the criteria.
func (s *Store) Suggestions(items []types.Destination) types.Suggestions {
	return Suggest(items)
}

// Suggest is the stateless form of Store.Suggestions.
func Suggest(items []types.Destination) types.Suggestions {
	out := types.Suggestions{
		Tags:        make(map[string]int),
		PriceRanges: make(map[string]int),
		Locations:   make(map[string]int),
	}
	for _, d := range items {
		for _, tag := range d.Tags {
			out.Tags[tag]++
		}
		out.PriceRanges[PriceBucket(d.Price)]++
		out.Locations[SecondaryLocation(d.Location)]++
	}
	return out
}

// TopTags returns the n most frequent tags across items, most frequent
// first, ties in alphabetical order. n <= 0 returns all.
func TopTags(items []types.Destination, n int) []types.TagCount {
	counts := Suggest(items).Tags

	out := make([]types.TagCount, 0, len(counts))
	for tag, count := range counts {
		out = append(out, types.TagCount{Tag: tag, Count: count})
	}
	slices.SortFunc(out, func(a, b types.TagCount) int {
		if c := cmp.Compare(b.Count, a.Count); c != 0 {
			return c
		}
		return strings.Compare(a.Tag, b.Tag)
	})

	if n > 0 && n < len(out) {
		out = out[:n]
	}
	return out
}
