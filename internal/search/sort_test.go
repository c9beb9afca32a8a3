package search

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/usestring/tripfinder-mcp/pkg/types"
)

func sortFixture() []types.Destination {
	return []types.Destination{
		{ID: 1, Price: 899, Rating: 4.8, ReviewCount: 247, Date: "2024-01-15"},
		{ID: 2, Price: 1899, Rating: 4.9, ReviewCount: 189, Date: "2024-02-20"},
		{ID: 3, Price: 649, Rating: 4.6, ReviewCount: 156, Date: "2024-03-10"},
		{ID: 4, Price: 3299, Rating: 4.7, ReviewCount: 523, Date: "2024-04-15"},
		{ID: 5, Price: 899, Rating: 4.8, ReviewCount: 412, Date: "2024-03-10"},
	}
}

func TestSort_Keys(t *testing.T) {
	tests := []struct {
		key  SortKey
		want []int
	}{
		{key: SortPriceAsc, want: []int{3, 1, 5, 2, 4}},
		{key: SortPriceDesc, want: []int{4, 2, 1, 5, 3}},
		{key: SortRating, want: []int{2, 1, 5, 4, 3}},
		{key: SortReviews, want: []int{4, 5, 1, 2, 3}},
		{key: SortDate, want: []int{4, 3, 5, 2, 1}},
		// 4.7*523=2458.1, 4.8*412=1977.6, 4.8*247=1185.6, 4.9*189=926.1, 4.6*156=717.6
		{key: SortPopularity, want: []int{4, 5, 1, 2, 3}},
	}

	for _, tt := range tests {
		t.Run(string(tt.key), func(t *testing.T) {
			assert.Equal(t, tt.want, ids(Sort(sortFixture(), tt.key)))
		})
	}
}

func TestSort_RelevanceTreatsMissingScoreAsZero(t *testing.T) {
	items := []types.Destination{
		{ID: 1},
		{ID: 2, SearchScore: 12},
		{ID: 3, SearchScore: 30},
		{ID: 4},
	}
	assert.Equal(t, []int{3, 2, 1, 4}, ids(Sort(items, SortRelevance)))
}

func TestSort_StableOnEqualKeys(t *testing.T) {
	items := []types.Destination{
		{ID: 10, Price: 500},
		{ID: 11, Price: 100},
		{ID: 12, Price: 500},
		{ID: 13, Price: 500},
	}
	assert.Equal(t, []int{11, 10, 12, 13}, ids(Sort(items, SortPriceAsc)))
	assert.Equal(t, []int{10, 12, 13, 11}, ids(Sort(items, SortPriceDesc)))
}

func TestSort_UnknownKeyKeepsOrder(t *testing.T) {
	items := sortFixture()
	assert.Equal(t, []int{1, 2, 3, 4, 5}, ids(Sort(items, "cheapest")))
}

func TestSort_DoesNotMutateInput(t *testing.T) {
	items := sortFixture()
	_ = Sort(items, SortPriceAsc)
	assert.Equal(t, []int{1, 2, 3, 4, 5}, ids(items))
}

func TestSort_NilInput(t *testing.T) {
	got := Sort(nil, SortRating)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestIsSortKey(t *testing.T) {
	for _, k := range SortKeys {
		assert.True(t, IsSortKey(string(k)))
	}
	assert.False(t, IsSortKey("alphabetical"))
}
