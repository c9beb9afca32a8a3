package query

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/usestring/tripfinder-mcp/pkg/types"
)

func fixture() []types.Destination {
	return []types.Destination{
		{ID: 1, Title: "Rio de Janeiro", Price: 899, Tags: []string{"Praia", "Cultura"}},
		{ID: 4, Title: "Paris", Price: 3299, Tags: []string{"Cultura"}},
		{ID: 7, Title: "Florianópolis", Price: 599, Tags: []string{"Praia"}},
	}
}

func TestEngine_Query_WholeList(t *testing.T) {
	engine := NewEngine()

	result, err := engine.Query(fixture(), "map(.price) | add", false, 0)
	require.NoError(t, err)
	assert.Equal(t, []any{float64(4797)}, result.Values)
	assert.Equal(t, 1, result.RawCount)
}

func TestEngine_Query_Titles(t *testing.T) {
	engine := NewEngine()

	result, err := engine.Query(fixture(), ".[].title", false, 0)
	require.NoError(t, err)
	assert.Equal(t, []any{"Rio de Janeiro", "Paris", "Florianópolis"}, result.Values)
}

func TestEngine_Query_Deduplicate(t *testing.T) {
	engine := NewEngine()

	result, err := engine.Query(fixture(), ".[].tags[]", true, 0)
	require.NoError(t, err)
	assert.Equal(t, []any{"Praia", "Cultura"}, result.Values)
	assert.Equal(t, 4, result.RawCount)
}

func TestEngine_Query_MaxResults(t *testing.T) {
	engine := NewEngine()

	result, err := engine.Query(fixture(), ".[].id", false, 2)
	require.NoError(t, err)
	assert.Equal(t, []any{float64(1), float64(4)}, result.Values)
}

func TestEngine_QueryEach_MatchedIDs(t *testing.T) {
	engine := NewEngine()

	result, err := engine.QueryEach(fixture(), `select(.price < 1000) | .title`, false, 0)
	require.NoError(t, err)
	assert.Equal(t, []any{"Rio de Janeiro", "Florianópolis"}, result.Values)
	assert.Equal(t, []int{1, 7}, result.MatchedIDs)
}

func TestEngine_QueryEach_LabelsErrors(t *testing.T) {
	engine := NewEngine()

	result, err := engine.QueryEach(fixture(), ".title[]", false, 0)
	require.NoError(t, err)
	assert.Empty(t, result.Values)
	require.Len(t, result.Errors, 3)
	assert.Contains(t, result.Errors[0], "destination 1")
}

func TestEngine_QueryEach_MaxResultsStopsEarly(t *testing.T) {
	engine := NewEngine()

	result, err := engine.QueryEach(fixture(), ".id", false, 1)
	require.NoError(t, err)
	assert.Equal(t, []any{float64(1)}, result.Values)
	assert.Equal(t, []int{1}, result.MatchedIDs)
}

func TestEngine_InvalidExpression(t *testing.T) {
	engine := NewEngine()

	_, err := engine.Query(fixture(), ".[", false, 0)
	assert.Error(t, err)
	assert.Error(t, engine.ValidateExpression("map("))
	assert.NoError(t, engine.ValidateExpression(".[] | select(.rating > 4)"))
}

func TestEngine_HaltError(t *testing.T) {
	engine := NewEngine()

	result, err := engine.Query(fixture(), `error("stop")`, false, 0)
	require.NoError(t, err)
	require.Len(t, result.Errors, 1)
	assert.Contains(t, result.Errors[0], "results")
}

func TestValueKey(t *testing.T) {
	assert.Equal(t, "s:a", valueKey("a"))
	assert.Equal(t, "n:1", valueKey(float64(1)))
	assert.Equal(t, "n:1", valueKey(1))
	assert.Equal(t, "b:true", valueKey(true))
	assert.Equal(t, `j:{"a":1}`, valueKey(map[string]any{"a": 1}))
}
