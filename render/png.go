package render

import (
	"image"
	"io"

	"github.com/fogleman/gg"
	imgcat "github.com/martinlindhe/imgcat/lib"
	"github.com/pkg/errors"

	"github.com/osuushi/voronoi/advanced"
)

// Image draws the triangulation into a new image.
func Image(tr *advanced.Triangulation, opts Options) (image.Image, error) {
	c, err := draw(tr, opts)
	if err != nil {
		return nil, err
	}
	return c.Image(), nil
}

func PNG(tr *advanced.Triangulation, path string, opts Options) error {
	c, err := draw(tr, opts)
	if err != nil {
		return err
	}
	return errors.Wrap(c.SavePNG(path), "saving png")
}

// Cat prints a PNG file to the terminal (iTerm only).
func Cat(path string, out io.Writer) {
	imgcat.CatFile(path, out)
}

func draw(tr *advanced.Triangulation, opts Options) (*gg.Context, error) {
	s, err := buildScene(tr, opts)
	if err != nil {
		return nil, err
	}
	view := newViewport(tr, opts.Width, opts.Height)

	c := gg.NewContext(opts.Width, opts.Height)
	c.SetColor(s.background)
	c.DrawRectangle(0, 0, float64(opts.Width), float64(opts.Height))
	c.Fill()

	c.SetLineWidth(1)
	for _, fill := range s.fills {
		tracePolygon(c, view, fill.points)
		c.SetColor(fill.fill)
		c.FillPreserve()
		c.SetColor(siteColor)
		c.Stroke()
	}

	c.SetColor(siteColor)
	for _, site := range s.sites {
		x, y := view.project(site)
		c.DrawCircle(x, y, opts.PointRadius)
		c.Fill()
	}

	c.SetColor(overlayColor)
	for _, circle := range s.circles {
		x, y := view.project(circle.center)
		c.DrawCircle(x, y, circle.radius*view.scale)
		c.Stroke()
	}
	for _, outline := range s.outlines {
		tracePolygon(c, view, outline)
		c.Stroke()
	}
	return c, nil
}

func tracePolygon(c *gg.Context, view viewport, points []advanced.Point) {
	c.NewSubPath()
	for i, p := range points {
		x, y := view.project(p)
		if i == 0 {
			c.MoveTo(x, y)
		} else {
			c.LineTo(x, y)
		}
	}
	c.ClosePath()
}
