package advanced

import (
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/osuushi/voronoi/internal"
	"github.com/osuushi/voronoi/internal/arrayset"
	"github.com/osuushi/voronoi/internal/geom"
	"github.com/osuushi/voronoi/internal/graph"
)

// Triangulation is a 2D Delaunay triangulation built by inserting one point
// at a time into a bounding super-triangle. It is not safe for concurrent
// use.
type Triangulation struct {
	triangles map[ID]*Triangle
	graph     *graph.Graph[ID]
	nextID    ID

	// Locality hint for the next point location walk
	mostRecent ID

	super [3]Point
	sites []Point

	log *zap.Logger
}

type Option func(*Triangulation)

func WithLogger(log *zap.Logger) Option {
	return func(t *Triangulation) {
		t.log = log
	}
}

// NewTriangulation starts a triangulation from a super-triangle. Every point
// inserted later must lie inside it.
func NewTriangulation(a, b, c Point, opts ...Option) (*Triangulation, error) {
	t := &Triangulation{
		triangles: make(map[ID]*Triangle),
		graph:     graph.New[ID](),
		super:     [3]Point{a, b, c},
		log:       zap.NewNop(),
	}
	for _, opt := range opts {
		opt(t)
	}

	tri, err := t.newTriangle(a, b, c)
	if err != nil {
		return nil, errors.Wrap(err, "super-triangle")
	}
	t.triangles[tri.id] = tri
	t.graph.AddNode(tri.id)
	t.mostRecent = tri.id
	return t, nil
}

func (t *Triangulation) newTriangle(vertices ...Point) (*Triangle, error) {
	tri, err := newTriangle(t.nextID, vertices...)
	if err != nil {
		return nil, err
	}
	t.nextID++
	return tri, nil
}

// Insert adds a point. Inserting a point that is already a vertex does
// nothing. On error the triangulation is left as it was.
func (t *Triangulation) Insert(p Point) (err error) {
	defer func() {
		recoveredErr := internal.HandlePanicRecover(recover())
		if recoveredErr != nil {
			err = recoveredErr
		}
	}()
	t.insert(p)
	return nil
}

// InsertAll inserts points in order and stops at the first failure.
func (t *Triangulation) InsertAll(points ...Point) error {
	for i, p := range points {
		if err := t.Insert(p); err != nil {
			return errors.Wrapf(err, "point %d", i)
		}
	}
	return nil
}

func (t *Triangulation) insert(p Point) {
	checkSite(p, "insert")

	tri := t.locate(p)
	if tri == nil {
		t.log.Error("no triangle contains point", zap.Stringer("point", p), zap.Int("triangles", len(t.triangles)))
		internal.Fatalf(internal.ErrLocationFailure, "%v", p)
	}
	if tri.Has(p) {
		return
	}

	cavity := t.cavity(p, tri)
	if ce := t.log.Check(zap.DebugLevel, "cavity"); ce != nil {
		ce.Write(zap.Stringer("point", p), zap.String("seed", tri.DbgName()), zap.Int("size", len(cavity)))
	}
	t.mostRecent = t.update(p, cavity)
	t.sites = append(t.sites, p)
}

// NaN or infinite coordinates make every predicate return 0, so such a point
// would "locate" anywhere and empty the whole triangulation into its cavity.
func checkSite(p Point, op string) {
	if p.Dim() != 2 {
		internal.Fatalf(internal.ErrDimensionMismatch, "cannot %s %d-dimensional %v", op, p.Dim(), p)
	}
	if !p.IsFinite() {
		internal.Fatalf(internal.ErrNonFinite, "cannot %s %v", op, p)
	}
}

// Walk from the most recent triangle towards p. If the walk cycles or runs
// off the triangulation, fall back to checking every triangle.
func (t *Triangulation) locate(p Point) *Triangle {
	tri := t.triangles[t.mostRecent]
	visited := make(map[ID]struct{})

	for tri != nil {
		if _, ok := visited[tri.id]; ok {
			break
		}
		visited[tri.id] = struct{}{}

		vertex, outside := geom.IsOutside(p, tri.simplex())
		if !outside {
			return tri
		}
		tri = t.oppositeNeighbor(vertex, tri)
	}

	if ce := t.log.Check(zap.DebugLevel, "walk failed, checking all triangles"); ce != nil {
		ce.Write(zap.Stringer("point", p), zap.Int("visited", len(visited)))
	}
	for _, tri := range t.triangles {
		if _, outside := geom.IsOutside(p, tri.simplex()); !outside {
			return tri
		}
	}
	return nil
}

// The cavity is every triangle reachable from start whose circumcircle p is
// not strictly outside of.
func (t *Triangulation) cavity(p Point, start *Triangle) []*Triangle {
	var cavity []*Triangle
	queue := []*Triangle{start}
	visited := map[ID]struct{}{start.id: {}}

	for len(queue) > 0 {
		tri := queue[0]
		queue = queue[1:]

		if geom.Circumcircle(p, tri.simplex()) == 1 {
			continue
		}
		cavity = append(cavity, tri)

		for _, neighbor := range t.neighbors(tri) {
			if _, ok := visited[neighbor.id]; !ok {
				visited[neighbor.id] = struct{}{}
				queue = append(queue, neighbor)
			}
		}
	}
	return cavity
}

// Replace the cavity with a fan of triangles joining p to the cavity's
// boundary. Everything that can fail happens before the graph is touched.
func (t *Triangulation) update(p Point, cavity []*Triangle) ID {
	if len(cavity) == 0 {
		internal.Fatalf(internal.ErrLocationFailure, "empty cavity for %v", p)
	}

	// A facet is on the boundary iff exactly one cavity triangle has it, so
	// toggling cancels the internal ones.
	boundary := arrayset.New[arrayset.Set[Point]]()
	inCavity := make(map[ID]struct{}, len(cavity))
	for _, tri := range cavity {
		inCavity[tri.id] = struct{}{}
	}
	var outer []*Triangle
	seen := make(map[ID]struct{})
	for _, tri := range cavity {
		for _, neighbor := range t.neighbors(tri) {
			if _, ok := inCavity[neighbor.id]; ok {
				continue
			}
			if _, ok := seen[neighbor.id]; !ok {
				seen[neighbor.id] = struct{}{}
				outer = append(outer, neighbor)
			}
		}
		for _, v := range tri.simplex() {
			facet, err := tri.FacetOpposite(v)
			if err != nil {
				internal.Fatalf(internal.ErrNoSuchVertex, "%v", err)
			}
			boundary.Toggle(facet)
		}
	}

	created := make([]*Triangle, 0, boundary.Len())
	for _, facet := range boundary.Items() {
		tri, err := t.newTriangle(append(facet.Items(), p)...)
		if err != nil {
			internal.Fatalf(internal.ErrInvalidSimplex, "retriangulating around %v: %v", p, err)
		}
		created = append(created, tri)
	}

	type edge struct{ a, b ID }
	var edges []edge
	for i, a := range created {
		for _, b := range outer {
			if a.IsNeighbor(b) {
				edges = append(edges, edge{a.id, b.id})
			}
		}
		for _, b := range created[i+1:] {
			if a.IsNeighbor(b) {
				edges = append(edges, edge{a.id, b.id})
			}
		}
	}

	// Commit
	for _, tri := range cavity {
		t.graph.RemoveNode(tri.id)
		triangleNames.Forget(tri.id)
		delete(t.triangles, tri.id)
	}
	for _, tri := range created {
		t.triangles[tri.id] = tri
		t.graph.AddNode(tri.id)
	}
	for _, e := range edges {
		if err := t.graph.AddEdge(e.a, e.b); err != nil {
			panic(errors.Wrap(err, "adjacency out of sync"))
		}
	}
	return created[0].id
}

func (t *Triangulation) neighbors(tri *Triangle) []*Triangle {
	ids, err := t.graph.Neighbors(tri.id)
	if err != nil {
		internal.Fatalf(internal.ErrNoSuchVertex, "%v is not in the triangulation", tri)
	}
	result := make([]*Triangle, len(ids))
	for i, id := range ids {
		result[i] = t.triangles[id]
	}
	return result
}

// The neighbor across the facet opposite vertex, or nil on the outer
// boundary.
func (t *Triangulation) oppositeNeighbor(vertex Point, tri *Triangle) *Triangle {
	if !tri.Has(vertex) {
		internal.Fatalf(internal.ErrNoSuchVertex, "%v is not a vertex of %v", vertex, tri)
	}
	for _, neighbor := range t.neighbors(tri) {
		if !neighbor.Has(vertex) {
			return neighbor
		}
	}
	return nil
}

// Exported queries

// Triangles returns the current triangles in no particular order. The slice
// is a fresh snapshot on every call.
func (t *Triangulation) Triangles() []*Triangle {
	result := make([]*Triangle, 0, len(t.triangles))
	for _, id := range t.graph.Nodes() {
		result = append(result, t.triangles[id])
	}
	return result
}

func (t *Triangulation) Len() int {
	return len(t.triangles)
}

// Contains reports whether tri is one of the current triangles. A triangle
// that has been replaced is not contained, even if a current triangle has the
// same vertices.
func (t *Triangulation) Contains(tri *Triangle) bool {
	return tri != nil && t.triangles[tri.id] == tri
}

func (t *Triangulation) Neighbors(tri *Triangle) (result []*Triangle, err error) {
	if !t.Contains(tri) {
		return nil, errors.Wrapf(internal.ErrNoSuchNode, "%v is not in the triangulation", tri)
	}
	return t.neighbors(tri), nil
}

// OppositeNeighbor returns the triangle across the facet opposite vertex, or
// nil when that facet is on the outer boundary.
func (t *Triangulation) OppositeNeighbor(vertex Point, tri *Triangle) (result *Triangle, err error) {
	if !t.Contains(tri) {
		return nil, errors.Wrapf(internal.ErrNoSuchNode, "%v is not in the triangulation", tri)
	}
	err = internal.Try(func() { result = t.oppositeNeighbor(vertex, tri) })
	return result, err
}

// Locate returns a triangle containing p, on its boundary included.
func (t *Triangulation) Locate(p Point) (result *Triangle, err error) {
	err = internal.Try(func() {
		checkSite(p, "locate")
		result = t.locate(p)
		if result == nil {
			internal.Fatalf(internal.ErrLocationFailure, "%v", p)
		}
	})
	return result, err
}

func (t *Triangulation) Circumcenter(tri *Triangle) (Point, error) {
	if !t.Contains(tri) {
		return Point{}, errors.Wrapf(internal.ErrNoSuchNode, "%v is not in the triangulation", tri)
	}
	return tri.Circumcenter()
}

// Super returns the vertices of the bounding super-triangle.
func (t *Triangulation) Super() [3]Point {
	return t.super
}

func (t *Triangulation) IsSuperVertex(p Point) bool {
	for _, v := range t.super {
		if v.Equal(p) {
			return true
		}
	}
	return false
}

// TouchesSuper reports whether tri has a super-triangle vertex. Such triangles
// are scaffolding rather than part of the triangulation of the sites.
func (t *Triangulation) TouchesSuper(tri *Triangle) bool {
	return tri.HasAny(t.super[:]...)
}

// Sites returns the inserted points in insertion order, without duplicates.
func (t *Triangulation) Sites() []Point {
	return append([]Point(nil), t.sites...)
}
