package indexer

import (
	"strings"
	"unicode/utf8"

	"golang.org/x/text/cases"
)

// MinTermLength is the shortest query term, in runes, that takes part in scoring.
const MinTermLength = 2

// Folder case-folds text for case-insensitive comparison.
// A Folder is not safe for concurrent use; create one per goroutine.
type Folder struct {
	caser cases.Caser
}

// NewFolder returns a Unicode case folder.
func NewFolder() *Folder {
	return &Folder{caser: cases.Fold()}
}

// Fold returns the case-folded form of s.
func (f *Folder) Fold(s string) string {
	return f.caser.String(s)
}

// Fold is a convenience wrapper for one-off comparisons.
func Fold(s string) string {
	return NewFolder().Fold(s)
}

// Tokenize splits a query on whitespace into case-folded terms.
// Terms shorter than MinTermLength runes are dropped.
func Tokenize(query string) []string {
	f := NewFolder()
	fields := strings.Fields(query)

	result := make([]string, 0, len(fields))
	for _, field := range fields {
		if utf8.RuneCountInString(field) >= MinTermLength {
			result = append(result, f.Fold(field))
		}
	}

	return result
}

// Searchable reports whether a query is long enough to run a search pass:
// its trimmed form must have at least MinTermLength runes.
func Searchable(query string) bool {
	return utf8.RuneCountInString(strings.TrimSpace(query)) >= MinTermLength
}
