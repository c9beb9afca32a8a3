package indexer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/usestring/tripfinder-mcp/pkg/types"
)

func makeDestination(id int, trip types.TripType, cat types.Category, guide bool, tags ...string) types.Destination {
	return types.Destination{
		ID:       id,
		Title:    "dest",
		TripType: trip,
		Category: cat,
		HasGuide: guide,
		Tags:     tags,
	}
}

func TestBuild_IndexesEveryFacet(t *testing.T) {
	idx, err := Build([]types.Destination{
		makeDestination(1, types.TripDomestic, types.CategoryStay, true, "Praia", "Cultura"),
		makeDestination(2, types.TripDomestic, types.CategoryStay, false, "Praia"),
		makeDestination(3, types.TripInternational, types.CategoryTrip, true, "Cultura"),
	})
	require.NoError(t, err)
	assert.Equal(t, 3, idx.DocCount())

	counts := idx.Facets([]int{1, 2, 3})
	assert.Equal(t, 3, counts.Total)
	assert.Equal(t, map[string]int{"domestic": 2, "international": 1}, counts.TripTypes)
	assert.Equal(t, map[string]int{"stay": 2, "trip": 1}, counts.Categories)
	assert.Equal(t, map[string]int{"Praia": 2, "Cultura": 2}, counts.Tags)
	assert.Equal(t, 2, counts.WithGuide)
}

func TestFacets_SubsetAndUnknownIDs(t *testing.T) {
	idx, err := Build([]types.Destination{
		makeDestination(1, types.TripDomestic, types.CategoryStay, true, "Praia"),
		makeDestination(2, types.TripInternational, types.CategoryOffer, false, "Aventura"),
	})
	require.NoError(t, err)

	counts := idx.Facets([]int{2, 99, -1})
	assert.Equal(t, 1, counts.Total)
	assert.Equal(t, map[string]int{"international": 1}, counts.TripTypes)
	assert.Equal(t, map[string]int{"offer": 1}, counts.Categories)
	assert.Equal(t, map[string]int{"Aventura": 1}, counts.Tags)
	assert.Equal(t, 0, counts.WithGuide)
}

func TestFacets_EmptyResultKeepsMaps(t *testing.T) {
	idx := New()
	counts := idx.Facets(nil)
	assert.Equal(t, 0, counts.Total)
	assert.NotNil(t, counts.Tags)
	assert.NotNil(t, counts.TripTypes)
	assert.NotNil(t, counts.Categories)
}

func TestIndex_RejectsNegativeID(t *testing.T) {
	idx := New()
	err := idx.Index(makeDestination(-5, types.TripDomestic, types.CategoryStay, false))
	assert.Error(t, err)
	assert.Equal(t, 0, idx.DocCount())
}

func TestTokenize(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []string
	}{
		{name: "single term", input: "rio", expected: []string{"rio"}},
		{name: "mixed case folded", input: "Rio JANEIRO", expected: []string{"rio", "janeiro"}},
		{name: "short terms dropped", input: "a rio de x", expected: []string{"rio", "de"}},
		{name: "extra whitespace", input: "  praia \t noronha  ", expected: []string{"praia", "noronha"}},
		{name: "accented runes counted once", input: "tó é", expected: []string{"tó"}},
		{name: "empty", input: "", expected: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Tokenize(tt.input))
		})
	}
}

func TestSearchable(t *testing.T) {
	assert.False(t, Searchable(""))
	assert.False(t, Searchable("   "))
	assert.False(t, Searchable(" r "))
	assert.True(t, Searchable("ri"))
	assert.True(t, Searchable(" tó "))
}

func TestFold(t *testing.T) {
	assert.Equal(t, "florianópolis", Fold("FLORIANÓPOLIS"))
	assert.Equal(t, "paris", Fold("Paris"))
}
