package cache

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/usestring/tripfinder-mcp/pkg/types"
)

func TestResultCache_GetPut(t *testing.T) {
	c, err := NewResultCache(2)
	require.NoError(t, err)

	key := Key("fp", "rio", "relevance", "type=domestic")
	_, ok := c.Get(key)
	assert.False(t, ok)

	c.Put(key, []types.Destination{{ID: 1, Tags: []string{"Praia"}}})
	got, ok := c.Get(key)
	require.True(t, ok)
	assert.Equal(t, 1, got[0].ID)
}

func TestResultCache_ClonesOnReadAndWrite(t *testing.T) {
	c, err := NewResultCache(2)
	require.NoError(t, err)

	items := []types.Destination{{ID: 1, Tags: []string{"Praia"}}}
	c.Put("k", items)
	items[0].Tags[0] = "changed"

	got, _ := c.Get("k")
	got[0].Title = "changed"

	again, _ := c.Get("k")
	assert.Equal(t, "Praia", again[0].Tags[0])
	assert.Empty(t, again[0].Title)
}

func TestResultCache_Evicts(t *testing.T) {
	c, err := NewResultCache(1)
	require.NoError(t, err)

	c.Put("a", nil)
	c.Put("b", nil)
	assert.Equal(t, 1, c.Len())
	_, ok := c.Get("a")
	assert.False(t, ok)

	c.Purge()
	assert.Equal(t, 0, c.Len())
}

func TestKey_SeparatesFields(t *testing.T) {
	assert.NotEqual(t, Key("a", "b", "c", "d"), Key("ab", "", "c", "d"))
}

func TestNewResultCache_RejectsZeroSize(t *testing.T) {
	_, err := NewResultCache(0)
	assert.Error(t, err)
}
