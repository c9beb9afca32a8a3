// Package search provides relevance search and ordering over destination lists.
package search

import (
	"slices"
	"strings"

	"github.com/usestring/tripfinder-mcp/internal/indexer"
	"github.com/usestring/tripfinder-mcp/pkg/types"
)

// Per-term score contributions.
const (
	WeightTitle         = 10
	WeightLocation      = 8
	WeightDescription   = 3
	WeightTag           = 5
	WeightFuzzyTitle    = 6
	WeightFuzzyLocation = 4
)

// Search scores every destination against query and returns the ones with a
// positive score, best first. Ties keep their input order. Queries shorter
// than two runes after trimming return items as given, unscored.
func Search(items []types.Destination, query string) []types.Destination {
	if !indexer.Searchable(query) {
		return items
	}

	terms := indexer.Tokenize(query)
	folder := indexer.NewFolder()

	results := make([]types.Destination, 0, len(items))
	for _, d := range items {
		score := scoreFolded(newDocument(d, folder), terms)
		if score == 0 {
			continue
		}
		d.SearchScore = score
		results = append(results, d)
	}

	slices.SortStableFunc(results, func(a, b types.Destination) int {
		return b.SearchScore - a.SearchScore
	})

	return results
}

// Score returns the relevance of d for query without filtering or sorting.
func Score(d types.Destination, query string) int {
	folder := indexer.NewFolder()
	return scoreFolded(newDocument(d, folder), indexer.Tokenize(query))
}

// document holds the case-folded searchable fields of one destination.
type document struct {
	title       string
	location    string
	description string
	tags        []string
}

func newDocument(d types.Destination, f *indexer.Folder) document {
	doc := document{
		title:       f.Fold(d.Title),
		location:    f.Fold(d.Location),
		description: f.Fold(d.Description),
		tags:        make([]string, len(d.Tags)),
	}
	for i, tag := range d.Tags {
		doc.tags[i] = f.Fold(tag)
	}
	return doc
}

// scoreFolded sums the contribution of every term. Substring and fuzzy
// bonuses are independent and add up.
func scoreFolded(doc document, terms []string) int {
	score := 0
	for _, term := range terms {
		if strings.Contains(doc.title, term) {
			score += WeightTitle
		}
		if strings.Contains(doc.location, term) {
			score += WeightLocation
		}
		if strings.Contains(doc.description, term) {
			score += WeightDescription
		}
		if slices.ContainsFunc(doc.tags, func(tag string) bool { return strings.Contains(tag, term) }) {
			score += WeightTag
		}
		if FuzzyMatch(term, doc.title) {
			score += WeightFuzzyTitle
		}
		if FuzzyMatch(term, doc.location) {
			score += WeightFuzzyLocation
		}
	}
	return score
}

// FuzzyMatch reports whether pattern occurs in text as an ordered
// subsequence. Comparison is exact per rune; callers fold case first.
func FuzzyMatch(pattern, text string) bool {
	p := []rune(pattern)
	t := []rune(text)

	if len(p) > len(t) {
		return false
	}
	if pattern == text {
		return true
	}

	pi := 0
	for ti := 0; pi < len(p) && ti < len(t); ti++ {
		if p[pi] == t[ti] {
			pi++
		}
	}

	return pi == len(p)
}
