package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlath/core"
)

func TestAddVertex_IsIdempotent(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddVertex("a"))
	require.NoError(t, g.AddVertex("a"))
	assert.Equal(t, 1, g.VertexCount())
	assert.True(t, g.HasVertex("a"))
	assert.False(t, g.HasVertex("missing"))
}

func TestAddVertex_RejectsEmptyID(t *testing.T) {
	g := core.NewGraph()
	assert.ErrorIs(t, g.AddVertex(""), core.ErrEmptyVertexID)
}

func TestAddEdge_UndirectedIsMirrored(t *testing.T) {
	g := core.NewGraph(core.WithDirected(false))
	_, err := g.AddEdge("a", "b", 0)
	require.NoError(t, err)

	assert.True(t, g.HasEdge("a", "b"))
	assert.True(t, g.HasEdge("b", "a"))
	assert.Equal(t, 1, g.EdgeCount())
	assert.Equal(t, 2, g.VertexCount())
}

func TestAddEdge_DirectedIsOneWay(t *testing.T) {
	g := core.NewGraph(core.WithDirected(true))
	_, err := g.AddEdge("a", "b", 0)
	require.NoError(t, err)

	assert.True(t, g.HasEdge("a", "b"))
	assert.False(t, g.HasEdge("b", "a"))
}

func TestAddEdge_RejectsWeightOnUnweightedGraph(t *testing.T) {
	g := core.NewGraph()
	_, err := g.AddEdge("a", "b", 5)
	assert.ErrorIs(t, err, core.ErrBadWeight)
}

func TestAddEdge_AllowsWeightWhenWeighted(t *testing.T) {
	g := core.NewGraph(core.WithWeighted())
	eid, err := g.AddEdge("a", "b", 5)
	require.NoError(t, err)
	assert.NotEmpty(t, eid)
}

func TestAddEdge_RejectsSelfLoop(t *testing.T) {
	g := core.NewGraph()
	_, err := g.AddEdge("a", "a", 0)
	assert.ErrorIs(t, err, core.ErrLoopNotAllowed)
}

func TestAddEdge_RejectsParallelEdge(t *testing.T) {
	g := core.NewGraph()
	_, err := g.AddEdge("a", "b", 0)
	require.NoError(t, err)
	_, err = g.AddEdge("a", "b", 0)
	assert.ErrorIs(t, err, core.ErrMultiEdgeNotAllowed)
}

func TestNeighborIDs_UndirectedSeesBothSides(t *testing.T) {
	g := core.NewGraph(core.WithDirected(false))
	require.NoError(t, g.AddVertex("a"))
	_, err := g.AddEdge("a", "b", 0)
	require.NoError(t, err)
	_, err = g.AddEdge("c", "a", 0)
	require.NoError(t, err)

	ids, err := g.NeighborIDs("a")
	require.NoError(t, err)
	assert.Equal(t, []string{"b", "c"}, ids)
}

func TestNeighborIDs_DirectedSeesOnlyOutgoing(t *testing.T) {
	g := core.NewGraph(core.WithDirected(true))
	_, err := g.AddEdge("a", "b", 0)
	require.NoError(t, err)
	_, err = g.AddEdge("c", "a", 0)
	require.NoError(t, err)

	ids, err := g.NeighborIDs("a")
	require.NoError(t, err)
	assert.Equal(t, []string{"b"}, ids)
}

func TestNeighborIDs_MissingVertexIsError(t *testing.T) {
	g := core.NewGraph()
	_, err := g.NeighborIDs("missing")
	assert.ErrorIs(t, err, core.ErrVertexNotFound)
}

func TestVertices_SortedAscending(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddVertex("c"))
	require.NoError(t, g.AddVertex("a"))
	require.NoError(t, g.AddVertex("b"))
	assert.Equal(t, []string{"a", "b", "c"}, g.Vertices())
}
