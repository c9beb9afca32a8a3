package query

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCompact(t *testing.T) {
	tests := []struct {
		name   string
		values []any
		limits Limits
		want   []any
	}{
		{
			name:   "nil",
			values: nil,
			limits: DefaultLimits(),
			want:   nil,
		},
		{
			name:   "short array untouched",
			values: []any{[]any{"Praia", "Natureza"}},
			limits: DefaultLimits(),
			want:   []any{[]any{"Praia", "Natureza"}},
		},
		{
			name:   "long array trimmed",
			values: []any{[]any{1.0, 2.0, 3.0, 4.0, 5.0}},
			limits: Limits{MaxArrayItems: 2},
			want:   []any{[]any{1.0, 2.0, "... (3 more items)"}},
		},
		{
			name:   "nested object",
			values: []any{map[string]any{"tags": []any{"a", "b", "c"}, "price": 899.0}},
			limits: Limits{MaxArrayItems: 1},
			want:   []any{map[string]any{"tags": []any{"a", "... (2 more items)"}, "price": 899.0}},
		},
		{
			name:   "accented string cut on runes",
			values: []any{"Florianópolis"},
			limits: Limits{MaxStringLen: 9},
			want:   []any{"Florianóp... (4 more chars)"},
		},
		{
			name:   "no limits",
			values: []any{[]any{1.0, 2.0, 3.0, 4.0}, "Fernando de Noronha"},
			limits: Limits{},
			want:   []any{[]any{1.0, 2.0, 3.0, 4.0}, "Fernando de Noronha"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Compact(tt.values, tt.limits))
		})
	}
}
