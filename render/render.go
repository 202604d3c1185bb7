// Package render draws a triangulation the way the interactive viewer did:
// filled Delaunay triangles or Voronoi cells, with optional circumcircle and
// edge overlays. It only uses the public triangulation API.
package render

import (
	"image/color"
	"math"
	"math/rand"

	"golang.org/x/exp/constraints"

	"github.com/osuushi/voronoi/advanced"
)

type Mode int

const (
	Delaunay Mode = iota
	Voronoi
)

func (m Mode) String() string {
	if m == Voronoi {
		return "voronoi"
	}
	return "delaunay"
}

type Options struct {
	Width, Height int
	Mode          Mode

	// Overlays, drawn in white on top of the fill
	Circles       bool
	VoronoiEdges  bool
	DelaunayEdges bool

	PointRadius float64
	// Seed for the fill colors
	Seed int64
}

func DefaultOptions() Options {
	return Options{Width: 800, Height: 800, PointRadius: 3, Seed: 1}
}

var (
	voronoiBackground  = color.RGBA{192, 192, 192, 255}
	delaunayBackground = color.RGBA{255, 200, 0, 255}
	emptyBackground    = color.RGBA{238, 238, 238, 255}
	overlayColor       = color.RGBA{255, 255, 255, 255}
	siteColor          = color.RGBA{0, 0, 0, 255}
)

// Padding around the sites, in pixels
const padding = 40

// viewport maps site coordinates to pixels, fitting the sites' bounding box
// into the image with the y axis pointing up.
type viewport struct {
	minX, minY float64
	scale      float64
	height     float64
}

func newViewport(tr *advanced.Triangulation, width, height int) viewport {
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, p := range tr.Sites() {
		minX = math.Min(minX, p.Coord(0))
		minY = math.Min(minY, p.Coord(1))
		maxX = math.Max(maxX, p.Coord(0))
		maxY = math.Max(maxY, p.Coord(1))
	}
	if math.IsInf(minX, 1) {
		minX, minY, maxX, maxY = -1, -1, 1, 1
	}

	spanX := math.Max(maxX-minX, 1e-9)
	spanY := math.Max(maxY-minY, 1e-9)
	innerW := float64(clamp(width-2*padding, 1, width))
	innerH := float64(clamp(height-2*padding, 1, height))
	scale := math.Min(innerW/spanX, innerH/spanY)

	// Center the box
	offsetX := (innerW - spanX*scale) / 2 / scale
	offsetY := (innerH - spanY*scale) / 2 / scale
	return viewport{
		minX:   minX - offsetX - padding/scale,
		minY:   minY - offsetY - padding/scale,
		scale:  scale,
		height: float64(height),
	}
}

func (v viewport) project(p advanced.Point) (float64, float64) {
	return (p.Coord(0) - v.minX) * v.scale, v.height - (p.Coord(1)-v.minY)*v.scale
}

func clamp[T constraints.Ordered](v, lo, hi T) T {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// palette hands out a random light color per key and remembers it.
type palette struct {
	rand   *rand.Rand
	colors map[interface{}]color.RGBA
}

func newPalette(seed int64) *palette {
	return &palette{rand: rand.New(rand.NewSource(seed)), colors: make(map[interface{}]color.RGBA)}
}

func (p *palette) color(key interface{}) color.RGBA {
	if c, ok := p.colors[key]; ok {
		return c
	}
	c := hsbToRGB(p.rand.Float64(), p.rand.Float64(), 1)
	p.colors[key] = c
	return c
}

// Hue, saturation and brightness in [0,1].
func hsbToRGB(hue, saturation, brightness float64) color.RGBA {
	channel := func(v float64) uint8 {
		return uint8(clamp(v*255+0.5, 0, 255))
	}
	if saturation == 0 {
		v := channel(brightness)
		return color.RGBA{v, v, v, 255}
	}
	h := (hue - math.Floor(hue)) * 6
	f := h - math.Floor(h)
	p := brightness * (1 - saturation)
	q := brightness * (1 - saturation*f)
	t := brightness * (1 - saturation*(1-f))
	var r, g, b float64
	switch int(h) {
	case 0:
		r, g, b = brightness, t, p
	case 1:
		r, g, b = q, brightness, p
	case 2:
		r, g, b = p, brightness, t
	case 3:
		r, g, b = p, q, brightness
	case 4:
		r, g, b = t, p, brightness
	default:
		r, g, b = brightness, p, q
	}
	return color.RGBA{channel(r), channel(g), channel(b), 255}
}

func siteKey(p advanced.Point) [2]float64 {
	return [2]float64{p.Coord(0), p.Coord(1)}
}

// A shape to draw: a closed polygon with an optional fill.
type shape struct {
	points []advanced.Point
	fill   color.Color
}

type circle struct {
	center advanced.Point
	radius float64
}

// scene is everything both backends draw, in painting order.
type scene struct {
	background color.Color
	fills      []shape
	sites      []advanced.Point
	circles    []circle
	outlines   [][]advanced.Point
}

func buildScene(tr *advanced.Triangulation, opts Options) (*scene, error) {
	s := &scene{}
	colors := newPalette(opts.Seed)
	triangles := tr.Triangles()

	var cells []advanced.Cell
	if opts.Mode == Voronoi || opts.VoronoiEdges {
		var err error
		if cells, err = tr.Cells(); err != nil {
			return nil, err
		}
	}

	switch {
	case opts.Mode == Delaunay:
		s.background = delaunayBackground
		for _, tri := range triangles {
			s.fills = append(s.fills, shape{tri.Vertices(), colors.color(tri.ID())})
		}
	case len(tr.Sites()) == 0:
		s.background = emptyBackground
	default:
		s.background = voronoiBackground
		for _, cell := range cells {
			s.fills = append(s.fills, shape{cell.Polygon, colors.color(siteKey(cell.Site))})
			s.sites = append(s.sites, cell.Site)
		}
	}

	if opts.Circles {
		for _, tri := range triangles {
			if tr.TouchesSuper(tri) {
				continue
			}
			center, err := tr.Circumcenter(tri)
			if err != nil {
				return nil, err
			}
			s.circles = append(s.circles, circle{center, center.Subtract(tri.Vertices()[0]).Magnitude()})
		}
	}
	if opts.VoronoiEdges {
		for _, cell := range cells {
			s.outlines = append(s.outlines, cell.Polygon)
		}
	}
	if opts.DelaunayEdges {
		for _, tri := range triangles {
			s.outlines = append(s.outlines, tri.Vertices())
		}
	}
	return s, nil
}
