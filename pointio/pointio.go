// Package pointio reads and writes site lists for the command line tool and
// the test fixtures.
package pointio

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/osuushi/voronoi/advanced"
)

type Point = advanced.Point

// ReadText reads one point per line in the form "x y". Blank lines and lines
// starting with # are skipped.
func ReadText(in io.Reader) ([]Point, error) {
	var points []Point
	scanner := bufio.NewScanner(in)
	lineNumber := 0
	for scanner.Scan() {
		lineNumber++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		point, err := parsePoint(strings.Fields(line))
		if err != nil {
			return nil, errors.Wrapf(err, "line %d", lineNumber)
		}
		points = append(points, point)
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "reading points")
	}
	return points, nil
}

func parsePoint(parts []string) (Point, error) {
	if len(parts) != 2 {
		return Point{}, errors.Errorf("expected 2 coordinates, got %d", len(parts))
	}
	x, err := strconv.ParseFloat(parts[0], 64)
	if err != nil {
		return Point{}, errors.Wrapf(err, "invalid x value %q", parts[0])
	}
	y, err := strconv.ParseFloat(parts[1], 64)
	if err != nil {
		return Point{}, errors.Wrapf(err, "invalid y value %q", parts[1])
	}
	point := advanced.NewPoint(x, y)
	if !point.IsFinite() {
		return Point{}, errors.Errorf("non-finite coordinate in %v", point)
	}
	return point, nil
}

func WriteText(out io.Writer, points []Point) error {
	w := bufio.NewWriter(out)
	for _, p := range points {
		if _, err := fmt.Fprintf(w, "%s %s\n", formatFloat(p.Coord(0)), formatFloat(p.Coord(1))); err != nil {
			return errors.Wrap(err, "writing points")
		}
	}
	return errors.Wrap(w.Flush(), "writing points")
}

// ReadFile picks the format from the extension: .svg is parsed as SVG,
// anything else as text. "-" reads text from stdin.
func ReadFile(path string) ([]Point, error) {
	if path == "-" {
		return ReadText(os.Stdin)
	}
	file, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "opening points")
	}
	defer file.Close()

	if strings.EqualFold(filepath.Ext(path), ".svg") {
		return ReadSVG(file)
	}
	return ReadText(file)
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}
