// An incremental Delaunay triangulation and Voronoi diagram package for Go.
//
// Points are inserted one at a time into a bounding super-triangle. After
// every insertion the triangulation is Delaunay: no point lies inside the
// circumcircle of any triangle. The Voronoi cell of a point is the polygon of
// circumcenters of the triangles around it.
//
// The advanced package exposes the engine itself (point location,
// neighbors, triangle rings). This package covers the common case.
package voronoi

import (
	"github.com/osuushi/voronoi/advanced"
	"github.com/osuushi/voronoi/internal"
)

type Point = advanced.Point
type Triangle = advanced.Triangle
type Triangulation = advanced.Triangulation
type Cell = advanced.Cell
type Option = advanced.Option

var WithLogger = advanced.WithLogger

// Error kinds, for use with errors.Is.
var (
	ErrDimensionMismatch   = internal.ErrDimensionMismatch
	ErrInvalidSimplex      = internal.ErrInvalidSimplex
	ErrNoSuchVertex        = internal.ErrNoSuchVertex
	ErrNoSuchNode          = internal.ErrNoSuchNode
	ErrLocationFailure     = internal.ErrLocationFailure
	ErrUnsupportedMutation = internal.ErrUnsupportedMutation
	ErrOpenRing            = internal.ErrOpenRing
	ErrNonFinite           = internal.ErrNonFinite
)

// DefaultSize is the half width of the default super-triangle. It is meant
// for screen coordinates.
const DefaultSize = 10000

func NewPoint(x, y float64) Point {
	return advanced.NewPoint(x, y)
}

// New creates an empty triangulation whose super-triangle has corners
// (-size,-size), (size,-size) and (0,size). Every site must lie inside it.
func New(size float64, opts ...Option) (*Triangulation, error) {
	return advanced.NewTriangulation(
		NewPoint(-size, -size),
		NewPoint(size, -size),
		NewPoint(0, size),
		opts...,
	)
}

// Triangulate inserts points into a triangulation of DefaultSize.
func Triangulate(points ...Point) (*Triangulation, error) {
	tr, err := New(DefaultSize)
	if err != nil {
		return nil, err
	}
	if err := tr.InsertAll(points...); err != nil {
		return nil, err
	}
	return tr, nil
}

// Voronoi returns the Voronoi cells of points.
func Voronoi(points ...Point) ([]Cell, error) {
	tr, err := Triangulate(points...)
	if err != nil {
		return nil, err
	}
	return tr.Cells()
}
