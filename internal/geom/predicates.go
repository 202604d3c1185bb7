package geom

import (
	"math"

	"golang.org/x/exp/constraints"

	"github.com/osuushi/voronoi/internal"
)

// Tolerance for boundary classification in Relation, relative to the content
// of the simplex.
const Tolerance = 1e-6

func sign[T constraints.Float](v T) int {
	switch {
	case v < 0:
		return -1
	case v > 0:
		return 1
	}
	return 0
}

// Content is the signed volume of a simplex (signed area for a triangle).
func Content(simplex []Point) float64 {
	n := len(simplex)
	matrix := make([]Point, n)
	for i, v := range simplex {
		matrix[i] = v.Extend(1)
	}
	// The lifted determinant is (n-1)! times the content, so a triangle
	// divides by 2.
	fact := 1.0
	for i := 2; i < n; i++ {
		fact *= float64(i)
	}
	return Determinant(matrix) / fact
}

// Relation classifies p against each facet of the simplex. Entry i describes
// the facet opposite simplex[i]: -1 when p is strictly on the same side as
// simplex[i], 0 when p is on the facet's line, +1 when p is beyond it. The
// result does not depend on the orientation of the simplex.
func Relation(p Point, simplex []Point) []int {
	dim := len(simplex) - 1
	if p.Dim() != dim {
		internal.Fatalf(internal.ErrInvalidSimplex, "%d vertices for a %d-dimensional point", len(simplex), p.Dim())
	}
	for _, v := range simplex {
		p.dimCheck(v)
	}

	// Row 0 is all ones, row i holds coordinate i-1 of p followed by the same
	// coordinate of every vertex.
	matrix := make([]Point, dim+1)
	ones := make([]float64, dim+2)
	for i := range ones {
		ones[i] = 1
	}
	matrix[0] = Point{ones}
	for i := 1; i <= dim; i++ {
		coords := make([]float64, dim+2)
		coords[0] = p.coords[i-1]
		for j, v := range simplex {
			coords[j+1] = v.coords[i-1]
		}
		matrix[i] = Point{coords}
	}

	vector := Cross(matrix)
	content := vector.coords[0]

	result := make([]int, dim+1)
	for i := range result {
		value := vector.coords[i+1]
		if math.Abs(value) <= Tolerance*math.Abs(content) {
			result[i] = 0
		} else {
			result[i] = sign(value)
		}
	}

	if content < 0 {
		for i := range result {
			result[i] = -result[i]
		}
	}
	// A flat simplex has no inside, so nothing can be strictly inside a facet.
	if content == 0 {
		for i := range result {
			if result[i] < 0 {
				result[i] = -result[i]
			}
		}
	}
	return result
}

// IsOutside returns the first vertex whose opposite facet p is strictly
// outside of.
func IsOutside(p Point, simplex []Point) (Point, bool) {
	for i, r := range Relation(p, simplex) {
		if r > 0 {
			return simplex[i], true
		}
	}
	return Point{}, false
}

func IsInside(p Point, simplex []Point) bool {
	for _, r := range Relation(p, simplex) {
		if r >= 0 {
			return false
		}
	}
	return true
}

// IsOn returns the vertex opposite the facet p lies on, provided p is not
// outside any facet. With several candidate facets the last one wins.
func IsOn(p Point, simplex []Point) (Point, bool) {
	var (
		vertex Point
		found  bool
	)
	for i, r := range Relation(p, simplex) {
		if r > 0 {
			return Point{}, false
		}
		if r == 0 {
			vertex, found = simplex[i], true
		}
	}
	return vertex, found
}

// Circumcircle reports whether p is inside (-1), on (0), or outside (+1) the
// circumsphere of the simplex, independent of the simplex's orientation.
func Circumcircle(p Point, simplex []Point) int {
	n := len(simplex)
	matrix := make([]Point, n+1)
	for i, v := range simplex {
		matrix[i] = v.Extend(1, v.Dot(v))
	}
	matrix[n] = p.Extend(1, p.Dot(p))

	result := sign(Determinant(matrix))
	if Content(simplex) < 0 {
		result = -result
	}
	return result
}

// Circumcenter intersects the bisectors of consecutive vertices in
// homogeneous coordinates. It fails for a degenerate simplex, where the
// homogeneous coordinate is zero.
func Circumcenter(simplex []Point) Point {
	if len(simplex) == 0 {
		internal.Fatalf(internal.ErrInvalidSimplex, "empty simplex")
	}
	dim := simplex[0].Dim()
	if len(simplex)-1 != dim {
		internal.Fatalf(internal.ErrInvalidSimplex, "%d vertices in dimension %d", len(simplex), dim)
	}

	matrix := make([]Point, dim)
	for i := range matrix {
		matrix[i] = simplex[i].Bisector(simplex[i+1])
	}

	h := Cross(matrix)
	last := h.coords[dim]
	if last == 0 {
		internal.Fatalf(internal.ErrInvalidSimplex, "degenerate simplex %s has no circumcenter", MatrixString(simplex))
	}

	result := make([]float64, dim)
	for i := range result {
		result[i] = h.coords[i] / last
	}
	return Point{result}
}
