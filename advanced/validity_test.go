package advanced_test

// This contains no actual tests. It is just a helper for checking that a
// triangulation is valid. The rules are:
// 1. Every triangle has a unique id.
// 2. Two triangles are adjacent in the graph iff they share a facet.
// 3. The areas of all triangles sum to the area of the super-triangle.
// 4. No vertex lies strictly inside any triangle's circumcircle.
// 5. There are 2n+1 triangles for n sites, since the hull is the super-triangle.

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osuushi/voronoi/advanced"
)

// Relative slack for the circumcircle check, so that cocircular points do not
// count as inside.
const circleSlack = 1e-7

func AssertValidTriangulation(t *testing.T, tr *advanced.Triangulation) {
	t.Helper()
	triangles := tr.Triangles()
	require.Len(t, triangles, tr.Len())

	ids := make(map[advanced.ID]struct{}, len(triangles))
	for _, tri := range triangles {
		_, dup := ids[tri.ID()]
		require.False(t, dup, "duplicate id %v", tri.ID())
		ids[tri.ID()] = struct{}{}
		require.True(t, tr.Contains(tri))
	}

	for _, a := range triangles {
		neighbors, err := tr.Neighbors(a)
		require.NoError(t, err)
		require.LessOrEqual(t, len(neighbors), 3, "%v has too many neighbors", a)
		for _, b := range triangles {
			if a == b {
				continue
			}
			require.Equal(t, a.IsNeighbor(b), containsTriangle(neighbors, b),
				"adjacency of %v and %v disagrees with shared facets", a, b)
		}
	}

	super := tr.Super()
	superArea := math.Abs(signedArea(super[0], super[1], super[2]))
	var area float64
	for _, tri := range triangles {
		area += math.Abs(tri.Content())
	}
	assert.InDelta(t, superArea, area, superArea*1e-7, "triangles must cover the super-triangle")

	vertices := append(tr.Sites(), super[:]...)
	for _, tri := range triangles {
		center, err := tr.Circumcenter(tri)
		require.NoError(t, err, "%v", tri)
		radius := center.Subtract(tri.Vertices()[0]).Magnitude()
		for _, v := range vertices {
			if tri.Has(v) {
				continue
			}
			distance := center.Subtract(v).Magnitude()
			require.GreaterOrEqual(t, distance, radius*(1-circleSlack), "%v is inside the circumcircle of %v", v, tri)
		}
	}

	assert.Equal(t, 2*len(tr.Sites())+1, tr.Len())
}

func containsTriangle(triangles []*advanced.Triangle, tri *advanced.Triangle) bool {
	for _, other := range triangles {
		if other == tri {
			return true
		}
	}
	return false
}

func signedArea(a, b, c advanced.Point) float64 {
	return ((b.Coord(0)-a.Coord(0))*(c.Coord(1)-a.Coord(1)) - (b.Coord(1)-a.Coord(1))*(c.Coord(0)-a.Coord(0))) / 2
}
