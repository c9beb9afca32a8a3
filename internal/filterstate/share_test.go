package filterstate

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/usestring/tripfinder-mcp/pkg/types"
)

func TestExportCriteria_WritesEveryField(t *testing.T) {
	s := New()
	values, err := url.ParseQuery(s.ExportCriteria())
	require.NoError(t, err)

	assert.Equal(t, "domestic", values.Get("type"))
	assert.Equal(t, "stay", values.Get("category"))
	assert.Equal(t, "[0,5000]", values.Get("priceRange"))
	assert.Equal(t, "0", values.Get("rating"))
	assert.Equal(t, "[]", values.Get("tags"))
	assert.Equal(t, "null", values.Get("hasGuide"))
	assert.Equal(t, "null", values.Get("dateRange"))
}

func TestExportImport_RoundTrip(t *testing.T) {
	cases := []types.Criteria{
		types.DefaultCriteria(5000),
		{
			TripType:   types.TripInternational,
			Category:   types.CategoryOffer,
			PriceRange: types.PriceRange{Min: 250.5, Max: 1999.99},
			MinRating:  4.5,
			Tags:       []string{"Praia", "Vida Noturna", "a&b=c"},
			HasGuide:   boolPtr(false),
			DateRange:  &types.DateRange{Start: "2024-01-15", End: "2024-08-20"},
		},
		{
			TripType:   types.TripAny,
			Category:   types.CategoryAny,
			PriceRange: types.PriceRange{Min: 0, Max: 0},
			MinRating:  0.1,
			HasGuide:   boolPtr(true),
		},
	}

	for _, c := range cases {
		src := New()
		require.NoError(t, src.SetCriteria(c))

		dst := New()
		dst.ApplyPreset("luxury")
		require.True(t, dst.ImportCriteria(src.ExportCriteria()))
		assert.Equal(t, src.Criteria(), dst.Criteria())
	}
}

func TestImportCriteria_SkipsBadKeys(t *testing.T) {
	s := New()
	ok := s.ImportCriteria(url.Values{
		"type":       {"internacional"},
		"category":   {"cruise"},
		"priceRange": {"[3000,100]"},
		"rating":     {"4"},
		"tags":       {`["Praia"`},
		"hasGuide":   {"yes"},
		"dateRange":  {`["2024-05-01","2024-01-01"]`},
		"color":      {"blue"},
	}.Encode())
	require.True(t, ok)

	got := s.Criteria()
	assert.Equal(t, types.TripInternational, got.TripType)
	assert.Equal(t, types.CategoryStay, got.Category)
	assert.Equal(t, types.PriceRange{Min: 0, Max: 5000}, got.PriceRange)
	assert.Equal(t, 4.0, got.MinRating)
	assert.Nil(t, got.Tags)
	assert.Nil(t, got.HasGuide)
	assert.Nil(t, got.DateRange)
}

func TestImportCriteria_Coercion(t *testing.T) {
	s := New()
	require.True(t, s.ImportCriteria("?rating=3.5&hasGuide=true&tags=null&type=any"))

	got := s.Criteria()
	assert.Equal(t, 3.5, got.MinRating)
	assert.Equal(t, boolPtr(true), got.HasGuide)
	assert.Equal(t, types.TripAny, got.TripType)

	// A number where a string is expected is skipped.
	require.True(t, s.ImportCriteria("category=7"))
	assert.Equal(t, types.CategoryStay, s.Criteria().Category)

	// Out-of-range rating is skipped.
	require.True(t, s.ImportCriteria("rating=9"))
	assert.Equal(t, 3.5, s.Criteria().MinRating)
}

func TestImportCriteria_UnparsableString(t *testing.T) {
	s := New()
	before := s.Criteria()

	assert.False(t, s.ImportCriteria("rating=%zz&type=international"))
	assert.Equal(t, before, s.Criteria())
}

func TestImportCriteria_EmptyIsNoop(t *testing.T) {
	s := New()
	before := s.Criteria()
	assert.True(t, s.ImportCriteria(""))
	assert.Equal(t, before, s.Criteria())
}
