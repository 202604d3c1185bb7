// Package geom is dimension generic point and vector algebra, plus the
// determinant based predicates the triangulation is built on.
package geom

import (
	"math"
	"strconv"
	"strings"

	"github.com/osuushi/voronoi/internal"
)

// Point is an immutable sequence of coordinates. The same type is used for
// positions, vectors, and rows of a matrix.
type Point struct {
	coords []float64
}

func NewPoint(coords ...float64) Point {
	c := make([]float64, len(coords))
	copy(c, coords)
	return Point{c}
}

func (p Point) Dim() int {
	return len(p.coords)
}

func (p Point) Coord(i int) float64 {
	if i < 0 || i >= len(p.coords) {
		internal.Fatalf(internal.ErrDimensionMismatch, "coordinate %d of %d-dimensional point", i, len(p.coords))
	}
	return p.coords[i]
}

// Coords returns a copy of the coordinates.
func (p Point) Coords() []float64 {
	return append([]float64(nil), p.coords...)
}

func (p Point) String() string {
	parts := make([]string, len(p.coords))
	for i, c := range p.coords {
		parts[i] = strconv.FormatFloat(c, 'g', -1, 64)
	}
	return "Point(" + strings.Join(parts, ",") + ")"
}

// Equal compares coordinates exactly. There is no tolerance here; tolerance
// only exists inside Relation.
func (p Point) Equal(other Point) bool {
	if len(p.coords) != len(other.coords) {
		return false
	}
	for i, c := range p.coords {
		if c != other.coords[i] {
			return false
		}
	}
	return true
}

// IsFinite reports whether no coordinate is NaN or infinite.
func (p Point) IsFinite() bool {
	for _, c := range p.coords {
		if math.IsNaN(c) || math.IsInf(c, 0) {
			return false
		}
	}
	return true
}

func (p Point) dimCheck(other Point) int {
	if len(p.coords) != len(other.coords) {
		internal.Fatalf(internal.ErrDimensionMismatch, "%v and %v", p, other)
	}
	return len(p.coords)
}

func (p Point) Dot(other Point) float64 {
	n := p.dimCheck(other)
	var sum float64
	for i := 0; i < n; i++ {
		sum += p.coords[i] * other.coords[i]
	}
	return sum
}

func (p Point) Magnitude() float64 {
	return math.Sqrt(p.Dot(p))
}

func (p Point) Add(other Point) Point {
	n := p.dimCheck(other)
	coords := make([]float64, n)
	for i := range coords {
		coords[i] = p.coords[i] + other.coords[i]
	}
	return Point{coords}
}

func (p Point) Subtract(other Point) Point {
	n := p.dimCheck(other)
	coords := make([]float64, n)
	for i := range coords {
		coords[i] = p.coords[i] - other.coords[i]
	}
	return Point{coords}
}

// Angle between two vectors, in radians.
func (p Point) Angle(other Point) float64 {
	return math.Acos(p.Dot(other) / (p.Magnitude() * other.Magnitude()))
}

// Extend appends coordinates, giving a higher dimensional point.
func (p Point) Extend(coords ...float64) Point {
	result := make([]float64, 0, len(p.coords)+len(coords))
	result = append(result, p.coords...)
	result = append(result, coords...)
	return Point{result}
}

// Bisector is the perpendicular bisector hyperplane of p and other, in
// homogeneous form: normal p-other, offset -((p-other)·(p+other))/2.
func (p Point) Bisector(other Point) Point {
	p.dimCheck(other)
	diff := p.Subtract(other)
	sum := p.Add(other)
	return diff.Extend(-diff.Dot(sum) / 2)
}
