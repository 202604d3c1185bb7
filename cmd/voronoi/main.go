package main

import (
	"io"
	"math/rand"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/zap"
	"golang.org/x/term"
	"gopkg.in/alecthomas/kingpin.v2"

	"github.com/osuushi/voronoi"
	"github.com/osuushi/voronoi/pointio"
	"github.com/osuushi/voronoi/render"
)

// Draws the Delaunay triangulation or Voronoi diagram of a set of sites. Sites
// are read from a file or stdin, one "x y" per line, or from the circles of an
// SVG file, and can be padded with random sites.
var (
	in      = kingpin.Flag("in", `Sites: "x y" lines, or an .svg with circles. "-" reads stdin.`).Short('i').Default("-").String()
	out     = kingpin.Flag("out", "Output image, .png or .svg. Without it the image is shown in the terminal, or written to stdout as SVG.").Short('o').String()
	dump    = kingpin.Flag("dump", "Also write the sites, random ones included, to this text file.").String()
	size    = kingpin.Flag("size", "Half width of the super-triangle. Every site must be inside it.").Default("10000").Float64()
	mode    = kingpin.Flag("mode", "What to fill: voronoi cells or delaunay triangles.").Default("voronoi").Enum("voronoi", "delaunay")
	circles = kingpin.Flag("circles", "Draw circumcircles.").Bool()
	edges   = kingpin.Flag("edges", "Outline Voronoi cells and Delaunay triangles.").Bool()
	random  = kingpin.Flag("random", "Number of random sites to add in [0,width)x[0,height).").Int()
	seed    = kingpin.Flag("seed", "Seed for random sites and fill colors.").Default("1").Int64()
	width   = kingpin.Flag("width", "Image width in pixels.").Default("800").Int()
	height  = kingpin.Flag("height", "Image height in pixels.").Default("800").Int()
	verbose = kingpin.Flag("verbose", "Log every insertion.").Short('v').Bool()
)

func main() {
	kingpin.Parse()

	log, err := newLogger(*verbose)
	if err != nil {
		kingpin.Fatalf("creating logger: %v", err)
	}
	defer log.Sync()

	if err := run(log); err != nil {
		log.Fatal("failed", zap.Error(err))
	}
}

func newLogger(verbose bool) (*zap.Logger, error) {
	if verbose {
		return zap.NewDevelopment()
	}
	cfg := zap.NewProductionConfig()
	cfg.Encoding = "console"
	return cfg.Build()
}

func run(log *zap.Logger) error {
	points, err := readSites()
	if err != nil {
		return err
	}
	if *random > 0 {
		points = append(points, randomSites(*random, *seed, *width, *height)...)
	}
	log.Info("read sites", zap.Int("count", len(points)))

	if *dump != "" {
		if err := dumpSites(*dump, points); err != nil {
			return err
		}
	}

	tr, err := voronoi.New(*size, voronoi.WithLogger(log.Named("triangulation")))
	if err != nil {
		return err
	}
	start := time.Now()
	skipped := 0
	for _, p := range points {
		if err := tr.Insert(p); err != nil {
			log.Warn("skipping site", zap.Stringer("site", p), zap.Error(err))
			skipped++
		}
	}
	log.Info("triangulated",
		zap.Int("triangles", tr.Len()),
		zap.Int("sites", len(tr.Sites())),
		zap.Int("skipped", skipped),
		zap.Duration("elapsed", time.Since(start)))

	return output(log, tr)
}

// Stdin is only read when it is not a terminal or no random sites were asked
// for, so "voronoi --random 100" does not hang waiting for input.
func readSites() ([]voronoi.Point, error) {
	if *in == "-" && *random > 0 && term.IsTerminal(int(os.Stdin.Fd())) {
		return nil, nil
	}
	return pointio.ReadFile(*in)
}

func randomSites(n int, seed int64, width, height int) []voronoi.Point {
	r := rand.New(rand.NewSource(seed))
	points := make([]voronoi.Point, n)
	for i := range points {
		points[i] = voronoi.NewPoint(r.Float64()*float64(width), r.Float64()*float64(height))
	}
	return points
}

func dumpSites(path string, points []voronoi.Point) error {
	return writeFile(path, func(w io.Writer) error {
		return pointio.WriteText(w, points)
	})
}

// writeFile creates path and hands it to write. The close error is returned
// too, since a failed flush is a failed write.
func writeFile(path string, write func(io.Writer) error) error {
	file, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, "creating output")
	}
	if err := write(file); err != nil {
		file.Close()
		return err
	}
	return errors.Wrapf(file.Close(), "closing %s", path)
}

func renderOptions() render.Options {
	opts := render.DefaultOptions()
	opts.Width, opts.Height = *width, *height
	if *mode == "delaunay" {
		opts.Mode = render.Delaunay
	} else {
		opts.Mode = render.Voronoi
	}
	opts.Circles = *circles
	opts.VoronoiEdges = *edges
	opts.DelaunayEdges = *edges
	opts.Seed = *seed
	return opts
}

func output(log *zap.Logger, tr *voronoi.Triangulation) error {
	opts := renderOptions()
	switch {
	case *out == "" && term.IsTerminal(int(os.Stdout.Fd())):
		path := filepath.Join(os.TempDir(), "voronoi.png")
		if err := render.PNG(tr, path, opts); err != nil {
			return err
		}
		render.Cat(path, os.Stdout)
		return nil
	case *out == "":
		return render.SVG(os.Stdout, tr, opts)
	case strings.EqualFold(filepath.Ext(*out), ".svg"):
		err := writeFile(*out, func(w io.Writer) error {
			return render.SVG(w, tr, opts)
		})
		if err != nil {
			return err
		}
	default:
		if err := render.PNG(tr, *out, opts); err != nil {
			return err
		}
	}
	log.Info("saved", zap.String("path", *out), zap.Stringer("mode", opts.Mode))
	return nil
}
