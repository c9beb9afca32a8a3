package render

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/usestring/tripfinder-mcp/internal/filterstate"
	"github.com/usestring/tripfinder-mcp/pkg/types"
)

type favs map[int]bool

func (f favs) Contains(id int) bool { return f[id] }

func rio() types.Destination {
	return types.Destination{
		ID: 1, Title: "Rio de Janeiro", Location: "Rio de Janeiro, RJ",
		Price: 899, Rating: 4.8, ReviewCount: 247, Tags: []string{"Praia", "Premium"},
	}
}

func TestTerminal_RendersCards(t *testing.T) {
	var buf bytes.Buffer
	r := NewTerminal(&buf, favs{1: true}, 0)

	err := r.Render(context.Background(), filterstate.Result{
		Query: "rio",
		Items: []types.Destination{rio()},
	})
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "Rio de Janeiro")
	assert.Contains(t, out, "rio")
	assert.Contains(t, out, "♥")
	assert.Contains(t, out, "#Premium")
	assert.Contains(t, out, "R$ 899")
}

func TestTerminal_EmptyState(t *testing.T) {
	var buf bytes.Buffer
	r := NewTerminal(&buf, nil, 0)

	require.NoError(t, r.Render(context.Background(), filterstate.Result{}))
	assert.Contains(t, buf.String(), EmptyTitle)
}

func TestTerminal_Limit(t *testing.T) {
	var buf bytes.Buffer
	r := NewTerminal(&buf, nil, 1)

	second := rio()
	second.ID = 2
	second.Title = "Niterói"

	require.NoError(t, r.Render(context.Background(), filterstate.Result{
		Items: []types.Destination{rio(), second},
	}))
	assert.NotContains(t, buf.String(), "Niterói")
	assert.Contains(t, buf.String(), "+1 outros destinos")
}

func TestTerminal_Price(t *testing.T) {
	r := NewTerminal(nil, nil, 0)
	assert.Equal(t, "R$ 4.199", r.Price(4199))
	assert.Equal(t, "R$ 599", r.Price(599))
}

func TestStars(t *testing.T) {
	assert.Equal(t, "⭐⭐⭐⭐", Stars(4.9))
	assert.Equal(t, "", Stars(0))
}
