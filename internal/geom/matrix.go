package geom

import (
	"strings"

	"github.com/osuushi/voronoi/internal"
)

// A matrix is a slice of rows. These are plain cofactor expansions. They are
// factorial time, which is fine because every matrix in this module is at most
// 4x4, and they keep exact sign behavior for small integer inputs.

func MatrixString(matrix []Point) string {
	var b strings.Builder
	b.WriteString("{")
	for _, row := range matrix {
		b.WriteString(" ")
		b.WriteString(row.String())
	}
	b.WriteString("}")
	return b.String()
}

// Determinant of a square matrix.
func Determinant(matrix []Point) float64 {
	n := len(matrix)
	if n == 0 {
		internal.Fatalf(internal.ErrInvalidSimplex, "empty matrix")
	}
	for _, row := range matrix {
		if row.Dim() != n {
			internal.Fatalf(internal.ErrInvalidSimplex, "matrix is not square: %s", MatrixString(matrix))
		}
	}
	columns := make([]bool, n)
	for i := range columns {
		columns[i] = true
	}
	return determinant(matrix, 0, columns)
}

// Expand along row, using only the columns still marked available.
func determinant(matrix []Point, row int, columns []bool) float64 {
	if row == len(matrix) {
		return 1
	}
	coords := matrix[row].coords
	var sum float64
	sign := 1.0
	for i, available := range columns {
		if !available {
			continue
		}
		columns[i] = false
		sum += sign * coords[i] * determinant(matrix, row+1, columns)
		sign = -sign
		columns[i] = true
	}
	return sum
}

// Cross takes n rows of dimension n+1 and returns the vector orthogonal to all
// of them, with signed cofactors as coordinates.
func Cross(matrix []Point) Point {
	if len(matrix) == 0 {
		internal.Fatalf(internal.ErrInvalidSimplex, "empty matrix")
	}
	n := len(matrix) + 1
	for _, row := range matrix {
		if row.Dim() != n {
			internal.Fatalf(internal.ErrInvalidSimplex, "cross product needs %d rows of dimension %d: %s", n-1, n, MatrixString(matrix))
		}
	}
	columns := make([]bool, n)
	for i := range columns {
		columns[i] = true
	}
	result := make([]float64, n)
	sign := 1.0
	for i := range result {
		columns[i] = false
		result[i] = sign * determinant(matrix, 0, columns)
		sign = -sign
		columns[i] = true
	}
	return Point{result}
}
