package advanced

import (
	"fmt"
	"strconv"
	"sync"

	"github.com/logrusorgru/aurora"
	"github.com/pkg/errors"

	"github.com/osuushi/voronoi/dbg"
	"github.com/osuushi/voronoi/internal"
	"github.com/osuushi/voronoi/internal/arrayset"
	"github.com/osuushi/voronoi/internal/geom"
)

type Point = geom.Point

func NewPoint(x, y float64) Point {
	return geom.NewPoint(x, y)
}

// ID identifies a triangle within one triangulation. Ids are handed out in
// increasing order and never reused, so a triangle that was replaced can never
// be confused with its replacement, even when they share vertices.
type ID uint64

func (id ID) Equal(other ID) bool {
	return id == other
}

func (id ID) String() string {
	return strconv.FormatUint(uint64(id), 10)
}

// Triangle is a set of three distinct vertices. It never changes after
// construction; the triangulation replaces triangles rather than editing them.
// Two triangles are the same triangle only if they are the same pointer.
type Triangle struct {
	id       ID
	vertices arrayset.Set[Point]

	circumcenterOnce sync.Once
	circumcenter     Point
	circumcenterErr  error
}

func newTriangle(id ID, vertices ...Point) (*Triangle, error) {
	set := arrayset.New(vertices...)
	if set.Len() != 3 {
		return nil, errors.Wrapf(internal.ErrInvalidSimplex, "triangle needs 3 distinct vertices, got %d", set.Len())
	}
	for _, v := range vertices {
		if v.Dim() != 2 {
			return nil, errors.Wrapf(internal.ErrDimensionMismatch, "triangle vertex %v is not 2D", v)
		}
		if !v.IsFinite() {
			return nil, errors.Wrapf(internal.ErrNonFinite, "triangle vertex %v", v)
		}
	}
	return &Triangle{id: id, vertices: set}, nil
}

func (t *Triangle) ID() ID {
	return t.id
}

// Vertices returns a copy, in construction order.
func (t *Triangle) Vertices() []Point {
	return t.vertices.Items()
}

func (t *Triangle) Has(p Point) bool {
	return t.vertices.Contains(p)
}

func (t *Triangle) HasAny(points ...Point) bool {
	return t.vertices.ContainsAny(points...)
}

// OtherVertex returns a vertex that is not one of excluded.
func (t *Triangle) OtherVertex(excluded ...Point) (Point, error) {
	bad := arrayset.New(excluded...)
	for _, v := range t.vertices.Items() {
		if !bad.Contains(v) {
			return v, nil
		}
	}
	return Point{}, errors.Wrapf(internal.ErrNoSuchVertex, "%v has no vertex besides %v", t, excluded)
}

// IsNeighbor is true when the triangles share exactly one facet.
func (t *Triangle) IsNeighbor(other *Triangle) bool {
	count := 0
	for _, v := range t.vertices.Items() {
		if other.Has(v) {
			count++
		}
	}
	return count == 2
}

// FacetOpposite is the pair of vertices left after removing vertex.
func (t *Triangle) FacetOpposite(vertex Point) (arrayset.Set[Point], error) {
	facet, ok := t.vertices.Without(vertex)
	if !ok {
		return facet, errors.Wrapf(internal.ErrNoSuchVertex, "%v is not a vertex of %v", vertex, t)
	}
	return facet, nil
}

// Circumcenter is computed on first use and then cached.
func (t *Triangle) Circumcenter() (Point, error) {
	t.circumcenterOnce.Do(func() {
		t.circumcenterErr = internal.Try(func() {
			t.circumcenter = geom.Circumcenter(t.vertices.Items())
		})
	})
	return t.circumcenter, t.circumcenterErr
}

// Content is the signed area, positive for counterclockwise vertex order.
func (t *Triangle) Content() float64 {
	return geom.Content(t.vertices.Items())
}

// Add always fails: a triangle's vertices are fixed at construction.
func (t *Triangle) Add(p Point) error {
	return errors.Wrapf(internal.ErrUnsupportedMutation, "cannot add %v to %v", p, t)
}

func (t *Triangle) String() string {
	return "Triangle " + t.id.String()
}

// Pet names by id, dropped when a triangulation retires the id.
var triangleNames = dbg.NewNames[ID]()

// DbgName is a readable name for debug logs: green for a proper triangle, red
// for a flat one.
func (t *Triangle) DbgName() string {
	name := fmt.Sprintf("%s(%s)", triangleNames.Name(t.id), t.id)
	if t.Content() == 0 {
		return aurora.Red(name).String()
	}
	return aurora.Green(name).String()
}

// simplex is the vertex slice the geometry predicates take.
func (t *Triangle) simplex() []Point {
	return t.vertices.Items()
}
