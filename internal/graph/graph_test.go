package graph

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osuushi/voronoi/internal"
)

type id int

func (i id) Equal(other id) bool { return i == other }

func TestAddNodeAndEdge(t *testing.T) {
	g := New[id]()
	g.AddNode(1)
	g.AddNode(2)
	g.AddNode(2)
	assert.Equal(t, 2, g.Len())

	require.NoError(t, g.AddEdge(1, 2))
	require.NoError(t, g.AddEdge(2, 1), "edges are not duplicated")

	neighbors, err := g.Neighbors(1)
	require.NoError(t, err)
	assert.Equal(t, []id{2}, neighbors)
	neighbors, err = g.Neighbors(2)
	require.NoError(t, err)
	assert.Equal(t, []id{1}, neighbors)
}

func TestAddEdgeMissingNode(t *testing.T) {
	g := New[id]()
	g.AddNode(1)
	err := g.AddEdge(1, 2)
	assert.True(t, errors.Is(err, internal.ErrNoSuchNode))
	err = g.AddEdge(3, 1)
	assert.True(t, errors.Is(err, internal.ErrNoSuchNode))
	err = g.AddEdge(1, 1)
	assert.True(t, errors.Is(err, internal.ErrNoSuchNode))
}

func TestNeighborsMissingNode(t *testing.T) {
	g := New[id]()
	_, err := g.Neighbors(5)
	assert.True(t, errors.Is(err, internal.ErrNoSuchNode))
}

func TestRemoveNode(t *testing.T) {
	g := New[id]()
	for i := id(1); i <= 3; i++ {
		g.AddNode(i)
	}
	require.NoError(t, g.AddEdge(1, 2))
	require.NoError(t, g.AddEdge(1, 3))
	require.NoError(t, g.AddEdge(2, 3))

	g.RemoveNode(1)
	g.RemoveNode(1)
	assert.False(t, g.Has(1))
	assert.ElementsMatch(t, []id{2, 3}, g.Nodes())

	neighbors, err := g.Neighbors(2)
	require.NoError(t, err)
	assert.Equal(t, []id{3}, neighbors)
}

func TestRemoveEdge(t *testing.T) {
	g := New[id]()
	g.AddNode(1)
	g.AddNode(2)
	require.NoError(t, g.AddEdge(1, 2))
	g.RemoveEdge(2, 1)

	neighbors, err := g.Neighbors(1)
	require.NoError(t, err)
	assert.Empty(t, neighbors)
	assert.True(t, g.Has(1))
	assert.True(t, g.Has(2))
}
