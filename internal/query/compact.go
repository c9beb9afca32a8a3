package query

import (
	"fmt"
	"unicode/utf8"
)

// Default compaction limits.
const (
	DefaultMaxArrayItems = 3
	DefaultMaxStringLen  = 200
)

// Limits bounds the size of query values handed back to a caller.
type Limits struct {
	MaxArrayItems int // Trim arrays to N items (0 = no limit)
	MaxStringLen  int // Truncate strings longer than N runes (0 = no limit)
}

// DefaultLimits returns the default compaction settings.
func DefaultLimits() Limits {
	return Limits{
		MaxArrayItems: DefaultMaxArrayItems,
		MaxStringLen:  DefaultMaxStringLen,
	}
}

// Compact trims arrays and long strings inside every value. A trimmed
// array ends with a marker counting the dropped items.
func Compact(values []any, l Limits) []any {
	if values == nil {
		return nil
	}
	out := make([]any, len(values))
	for i, v := range values {
		out[i] = compactValue(v, l)
	}
	return out
}

func compactValue(v any, l Limits) any {
	switch val := v.(type) {
	case []any:
		return compactArray(val, l)
	case map[string]any:
		obj := make(map[string]any, len(val))
		for k, item := range val {
			obj[k] = compactValue(item, l)
		}
		return obj
	case string:
		return compactString(val, l)
	default:
		return v
	}
}

func compactArray(arr []any, l Limits) []any {
	keep := len(arr)
	if l.MaxArrayItems > 0 && keep > l.MaxArrayItems {
		keep = l.MaxArrayItems
	}

	out := make([]any, 0, keep+1)
	for _, item := range arr[:keep] {
		out = append(out, compactValue(item, l))
	}
	if dropped := len(arr) - keep; dropped > 0 {
		out = append(out, fmt.Sprintf("... (%d more items)", dropped))
	}
	return out
}

// compactString cuts on a rune boundary so accented text stays valid.
func compactString(s string, l Limits) string {
	if l.MaxStringLen <= 0 || utf8.RuneCountInString(s) <= l.MaxStringLen {
		return s
	}
	runes := []rune(s)
	return string(runes[:l.MaxStringLen]) + fmt.Sprintf("... (%d more chars)", len(runes)-l.MaxStringLen)
}
