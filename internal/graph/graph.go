// Package graph is a small undirected graph. Nodes are opaque handles; the
// triangulation uses triangle ids.
package graph

import (
	"github.com/pkg/errors"

	"github.com/osuushi/voronoi/internal"
	"github.com/osuushi/voronoi/internal/arrayset"
)

type Node[N any] interface {
	comparable
	arrayset.Equaler[N]
}

type Graph[N Node[N]] struct {
	edges map[N]*arrayset.Set[N]
}

func New[N Node[N]]() *Graph[N] {
	return &Graph[N]{edges: make(map[N]*arrayset.Set[N])}
}

// AddNode is a no-op for a node that is already present.
func (g *Graph[N]) AddNode(node N) {
	if _, ok := g.edges[node]; ok {
		return
	}
	set := arrayset.New[N]()
	g.edges[node] = &set
}

func (g *Graph[N]) Has(node N) bool {
	_, ok := g.edges[node]
	return ok
}

func (g *Graph[N]) AddEdge(a, b N) error {
	if a == b {
		return errors.Wrapf(internal.ErrNoSuchNode, "self loop on %v", a)
	}
	aEdges, ok := g.edges[a]
	if !ok {
		return errors.Wrapf(internal.ErrNoSuchNode, "%v", a)
	}
	bEdges, ok := g.edges[b]
	if !ok {
		return errors.Wrapf(internal.ErrNoSuchNode, "%v", b)
	}
	aEdges.Add(b)
	bEdges.Add(a)
	return nil
}

// RemoveNode drops the node and every edge touching it.
func (g *Graph[N]) RemoveNode(node N) {
	edges, ok := g.edges[node]
	if !ok {
		return
	}
	for _, adj := range edges.Items() {
		g.edges[adj].Remove(node)
	}
	delete(g.edges, node)
}

func (g *Graph[N]) RemoveEdge(a, b N) {
	if edges, ok := g.edges[a]; ok {
		edges.Remove(b)
	}
	if edges, ok := g.edges[b]; ok {
		edges.Remove(a)
	}
}

func (g *Graph[N]) Neighbors(node N) ([]N, error) {
	edges, ok := g.edges[node]
	if !ok {
		return nil, errors.Wrapf(internal.ErrNoSuchNode, "%v", node)
	}
	return edges.Items(), nil
}

// Nodes returns the nodes in no particular order.
func (g *Graph[N]) Nodes() []N {
	nodes := make([]N, 0, len(g.edges))
	for node := range g.edges {
		nodes = append(nodes, node)
	}
	return nodes
}

func (g *Graph[N]) Len() int {
	return len(g.edges)
}
