package advanced

import (
	"github.com/osuushi/voronoi/internal"
)

// SurroundingTriangles returns the ring of triangles around vertex p, starting
// at start. The ring is walked by crossing, at each step, the facet opposite
// the vertex we are tracking; which of start's two other vertices is tracked
// first decides the direction. Vertices on the outer boundary have no closed
// ring and fail with ErrOpenRing.
func (t *Triangulation) SurroundingTriangles(p Point, start *Triangle) (result []*Triangle, err error) {
	err = internal.Try(func() {
		result = t.surroundingTriangles(p, start)
	})
	return result, err
}

func (t *Triangulation) surroundingTriangles(p Point, start *Triangle) []*Triangle {
	if !t.Contains(start) {
		internal.Fatalf(internal.ErrNoSuchNode, "%v is not in the triangulation", start)
	}
	if !start.Has(p) {
		internal.Fatalf(internal.ErrNoSuchVertex, "%v is not a vertex of %v", p, start)
	}

	var ring []*Triangle
	tri := start
	other := mustOtherVertex(start, p)
	for {
		ring = append(ring, tri)
		prev := tri
		tri = t.oppositeNeighbor(other, tri)
		other = mustOtherVertex(prev, p, other)
		if tri == start {
			return ring
		}
		if tri == nil || len(ring) > len(t.triangles) {
			internal.Fatalf(internal.ErrOpenRing, "around %v", p)
		}
	}
}

func mustOtherVertex(tri *Triangle, excluded ...Point) Point {
	v, err := tri.OtherVertex(excluded...)
	if err != nil {
		internal.Fatalf(internal.ErrNoSuchVertex, "%v", err)
	}
	return v
}

// VoronoiCell is the Voronoi polygon of vertex p: the circumcenters of the
// triangles around it, in ring order.
func (t *Triangulation) VoronoiCell(p Point, start *Triangle) ([]Point, error) {
	ring, err := t.SurroundingTriangles(p, start)
	if err != nil {
		return nil, err
	}
	cell := make([]Point, len(ring))
	for i, tri := range ring {
		if cell[i], err = tri.Circumcenter(); err != nil {
			return nil, err
		}
	}
	return cell, nil
}

type Cell struct {
	Site    Point
	Polygon []Point
}

// Cells returns the Voronoi cell of every vertex that is not a super-triangle
// vertex. Those are the only vertices whose rings are closed.
func (t *Triangulation) Cells() ([]Cell, error) {
	done := make(map[[2]float64]struct{}, len(t.sites)+3)
	for _, v := range t.super {
		done[planar(v)] = struct{}{}
	}
	var cells []Cell
	for _, tri := range t.Triangles() {
		for _, p := range tri.Vertices() {
			if _, ok := done[planar(p)]; ok {
				continue
			}
			done[planar(p)] = struct{}{}
			polygon, err := t.VoronoiCell(p, tri)
			if err != nil {
				return nil, err
			}
			cells = append(cells, Cell{Site: p, Polygon: polygon})
		}
	}
	return cells, nil
}

func planar(p Point) [2]float64 {
	return [2]float64{p.Coord(0), p.Coord(1)}
}
