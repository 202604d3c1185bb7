package render

import (
	"fmt"
	"image/color"
	"io"
	"math"

	svg "github.com/ajstarks/svgo"

	"github.com/osuushi/voronoi/advanced"
)

// SVG writes the same drawing as PNG, as an SVG document.
func SVG(out io.Writer, tr *advanced.Triangulation, opts Options) error {
	s, err := buildScene(tr, opts)
	if err != nil {
		return err
	}
	view := newViewport(tr, opts.Width, opts.Height)

	canvas := svg.New(out)
	canvas.Start(opts.Width, opts.Height)
	canvas.Rect(0, 0, opts.Width, opts.Height, "fill:"+rgb(s.background))

	for _, fill := range s.fills {
		xs, ys := projectAll(view, fill.points)
		canvas.Polygon(xs, ys, fmt.Sprintf("fill:%s;stroke:%s;stroke-width:1", rgb(fill.fill), rgb(siteColor)))
	}
	for _, site := range s.sites {
		x, y := view.project(site)
		canvas.Circle(round(x), round(y), round(opts.PointRadius), "fill:"+rgb(siteColor))
	}

	overlay := fmt.Sprintf("fill:none;stroke:%s;stroke-width:1", rgb(overlayColor))
	for _, circle := range s.circles {
		x, y := view.project(circle.center)
		canvas.Circle(round(x), round(y), round(circle.radius*view.scale), overlay)
	}
	for _, outline := range s.outlines {
		xs, ys := projectAll(view, outline)
		canvas.Polygon(xs, ys, overlay)
	}
	canvas.End()
	return nil
}

func projectAll(view viewport, points []advanced.Point) ([]int, []int) {
	xs := make([]int, len(points))
	ys := make([]int, len(points))
	for i, p := range points {
		x, y := view.project(p)
		xs[i], ys[i] = round(x), round(y)
	}
	return xs, ys
}

func round(f float64) int {
	return int(math.Round(f))
}

func rgb(c color.Color) string {
	r, g, b, _ := c.RGBA()
	return fmt.Sprintf("rgb(%d,%d,%d)", r>>8, g>>8, b>>8)
}
