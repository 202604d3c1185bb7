package advanced_test

import (
	"math/rand"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osuushi/voronoi/advanced"
	"github.com/osuushi/voronoi/internal"
)

func incident(tr *advanced.Triangulation, p advanced.Point) []*advanced.Triangle {
	var result []*advanced.Triangle
	for _, tri := range tr.Triangles() {
		if tri.Has(p) {
			result = append(result, tri)
		}
	}
	return result
}

func randomTriangulation(t *testing.T, seed int64, n int) *advanced.Triangulation {
	t.Helper()
	r := rand.New(rand.NewSource(seed))
	tr := newTestTriangulation(t)
	for i := 0; i < n; i++ {
		require.NoError(t, tr.Insert(advanced.NewPoint(r.Float64()*100-50, r.Float64()*100-50)))
	}
	return tr
}

func TestSurroundingTriangles(t *testing.T) {
	tr := randomTriangulation(t, 3, 60)
	for _, site := range tr.Sites() {
		around := incident(tr, site)
		for _, start := range around {
			ring, err := tr.SurroundingTriangles(site, start)
			require.NoError(t, err)
			require.Len(t, ring, len(around))
			assert.Same(t, start, ring[0])
			assert.ElementsMatch(t, around, ring)

			// Cyclic: each triangle is adjacent to the next, and the last to the first
			for i, tri := range ring {
				next := ring[(i+1)%len(ring)]
				assert.True(t, tri.IsNeighbor(next), "%v and %v are not adjacent", tri, next)
				assert.True(t, tri.Has(site))
			}
		}
	}
}

func TestSurroundingTrianglesDirectionIsConsistent(t *testing.T) {
	tr := newTestTriangulation(t)
	center := advanced.NewPoint(0, 0)
	require.NoError(t, tr.InsertAll(
		center,
		advanced.NewPoint(10, 1),
		advanced.NewPoint(-1, 10),
		advanced.NewPoint(-10, -1),
		advanced.NewPoint(1, -10),
	))
	start := incident(tr, center)[0]
	ring, err := tr.SurroundingTriangles(center, start)
	require.NoError(t, err)
	require.Len(t, ring, 4)

	cell, err := tr.VoronoiCell(center, start)
	require.NoError(t, err)
	require.Len(t, cell, 4)
	// The circumcenters wind one way around the site
	sign := 0.0
	for i := range cell {
		cross := signedArea(center, cell[i], cell[(i+1)%len(cell)])
		require.NotZero(t, cross)
		if sign == 0 {
			sign = cross
		}
		assert.Equal(t, sign > 0, cross > 0)
	}
}

func TestSurroundingTrianglesErrors(t *testing.T) {
	tr := newTestTriangulation(t)
	origin := advanced.NewPoint(0, 0)
	require.NoError(t, tr.Insert(origin))
	tri := tr.Triangles()[0]

	_, err := tr.SurroundingTriangles(advanced.NewPoint(1, 1), tri)
	assert.True(t, errors.Is(err, internal.ErrNoSuchVertex))

	superVertex, err := tri.OtherVertex(origin)
	require.NoError(t, err)
	_, err = tr.SurroundingTriangles(superVertex, tri)
	assert.True(t, errors.Is(err, internal.ErrOpenRing))

	fresh := newTestTriangulation(t)
	_, err = fresh.SurroundingTriangles(origin, tri)
	assert.True(t, errors.Is(err, internal.ErrNoSuchNode))
}

func TestVoronoiCell(t *testing.T) {
	tr := randomTriangulation(t, 4, 40)
	for _, site := range tr.Sites() {
		start := incident(tr, site)[0]
		cell, err := tr.VoronoiCell(site, start)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, len(cell), 3)

		// Every cell vertex is as close to this site as to any other
		for _, corner := range cell {
			r := corner.Subtract(site).Magnitude()
			for _, other := range tr.Sites() {
				assert.GreaterOrEqual(t, corner.Subtract(other).Magnitude(), r*(1-circleSlack))
			}
		}
	}
}

func TestCells(t *testing.T) {
	tr := randomTriangulation(t, 5, 25)
	cells, err := tr.Cells()
	require.NoError(t, err)
	require.Len(t, cells, 25)

	for _, cell := range cells {
		assert.False(t, tr.IsSuperVertex(cell.Site))
		assert.Len(t, cell.Polygon, len(incident(tr, cell.Site)))
	}

	empty := newTestTriangulation(t)
	cells, err = empty.Cells()
	require.NoError(t, err)
	assert.Empty(t, cells)
}
