package filterstate

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/usestring/tripfinder-mcp/internal/catalog"
	"github.com/usestring/tripfinder-mcp/pkg/types"
)

func TestPriceBucket(t *testing.T) {
	tests := []struct {
		price float64
		want  string
	}{
		{price: 0, want: "Até R$ 500"},
		{price: 499.99, want: "Até R$ 500"},
		{price: 500, want: "R$ 500 - R$ 1.000"},
		{price: 999, want: "R$ 500 - R$ 1.000"},
		{price: 1000, want: "R$ 1.000 - R$ 2.000"},
		{price: 2999, want: "R$ 2.000 - R$ 3.000"},
		{price: 3000, want: "Acima de R$ 3.000"},
		{price: 10000, want: "Acima de R$ 3.000"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, PriceBucket(tt.price), "price %v", tt.price)
	}
}

func TestSecondaryLocation(t *testing.T) {
	assert.Equal(t, "RJ", SecondaryLocation("Rio de Janeiro, RJ"))
	assert.Equal(t, "França", SecondaryLocation("França"))
	assert.Equal(t, "B", SecondaryLocation("A, B, C"))
	assert.Equal(t, "Lisboa,", SecondaryLocation("Lisboa,"))
}

func TestSuggestions_SeedCatalog(t *testing.T) {
	got := New().Suggestions(catalog.Seed().All())

	assert.Equal(t, 4, got.Tags["Premium"])
	assert.Equal(t, 3, got.Tags["Praia"])
	assert.Equal(t, map[string]int{
		"R$ 500 - R$ 1.000":   3,
		"R$ 1.000 - R$ 2.000": 1,
		"R$ 2.000 - R$ 3.000": 2,
		"Acima de R$ 3.000":   2,
	}, got.PriceRanges)
	assert.Equal(t, 1, got.Locations["RJ"])
	assert.Equal(t, 1, got.Locations["Japão"])
}

func TestSuggestions_EmptyHasMaps(t *testing.T) {
	got := Suggest(nil)
	assert.NotNil(t, got.Tags)
	assert.NotNil(t, got.PriceRanges)
	assert.NotNil(t, got.Locations)
}

func TestTopTags(t *testing.T) {
	items := []types.Destination{
		{Tags: []string{"Praia", "Cultura"}},
		{Tags: []string{"Praia", "Aventura"}},
		{Tags: []string{"Cultura"}},
		{Tags: []string{"Natureza"}},
	}

	got := TopTags(items, 3)
	assert.Equal(t, []types.TagCount{
		{Tag: "Cultura", Count: 2},
		{Tag: "Praia", Count: 2},
		{Tag: "Aventura", Count: 1},
	}, got)

	assert.Len(t, TopTags(items, 0), 4)
}
