package pointio

import (
	"io"
	"strings"

	"github.com/JoshVarga/svgparser"
	"github.com/pkg/errors"
)

// This is not a full (or even correct) SVG reader. Sites are taken from the
// centers of every <circle> element and then from the vertices of every
// <polygon>, in document order within each kind. Transforms are ignored.
func ReadSVG(in io.Reader) ([]Point, error) {
	rootEl, err := svgparser.Parse(in, true)
	if err != nil {
		return nil, errors.Wrap(err, "parsing svg")
	}

	var points []Point
	for _, circleEl := range rootEl.FindAll("circle") {
		point, err := parsePoint([]string{attr(circleEl, "cx"), attr(circleEl, "cy")})
		if err != nil {
			return nil, errors.Wrap(err, "circle")
		}
		points = append(points, point)
	}

	for _, polygonEl := range rootEl.FindAll("polygon") {
		for _, pointString := range strings.Fields(polygonEl.Attributes["points"]) {
			pointStrings := strings.Split(pointString, ",")
			point, err := parsePoint(pointStrings)
			if err != nil {
				return nil, errors.Wrapf(err, "polygon point %q", pointString)
			}
			points = append(points, point)
		}
	}

	if len(points) == 0 {
		return nil, errors.New("no circles or polygons found")
	}
	return points, nil
}

// Missing circle coordinates default to zero, as in SVG.
func attr(el *svgparser.Element, name string) string {
	if v, ok := el.Attributes[name]; ok {
		return v
	}
	return "0"
}
