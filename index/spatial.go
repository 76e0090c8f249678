package index

import (
	"cmp"
	"errors"
	"math"
	"slices"
	"sync"

	"github.com/fogleman/delaunay"
	"github.com/gogpu/gg"
)

type spatial struct {
	points    []PointGeometry
	maxRadius float64

	mu    sync.Mutex
	graph *neighborGraph
}

func (s *spatial) add(p PointGeometry) {
	s.mu.Lock()
	s.points = append(s.points, p)
	s.maxRadius = max(s.maxRadius, p.HitRadius())
	s.graph = nil
	s.mu.Unlock()
}

func (s *spatial) neighbors() *neighborGraph {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.graph == nil {
		centers := make([]gg.Point, len(s.points))
		for i, p := range s.points {
			centers[i] = p.Center()
		}
		s.graph = newNeighborGraph(centers)
	}
	return s.graph
}

// find returns the point closest to pointer, then every point reachable
// through triangulation neighbours lying closer to pointer than
// min(maxRadius, HighlightPadding).
func (s *spatial) find(pointer gg.Point) []Geometry {
	if len(s.points) == 0 {
		return nil
	}
	g := s.neighbors()
	i := g.nearest(pointer)
	if i < 0 {
		return nil
	}
	radius := min(s.maxRadius, HighlightPadding)

	out := []Geometry{s.points[i]}
	visited := map[int]bool{i: true}
	stack := []int{i}
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, j := range g.adj[cur] {
			if visited[j] {
				continue
			}
			visited[j] = true
			if g.points[j].Distance(pointer) < radius {
				out = append(out, s.points[j])
				stack = append(stack, j)
			}
		}
	}
	return out
}

// neighborGraph is the edge set of the Delaunay triangulation of the
// finite point centers. Points with a NaN or infinite coordinate have no
// edges and are never returned. Coincident points are linked to the first
// point at that position and share its edges.
type neighborGraph struct {
	points []gg.Point
	adj    [][]int
	// start is the first vertex, or -1 when no point is finite.
	start int
}

func newNeighborGraph(points []gg.Point) *neighborGraph {
	g := &neighborGraph{points: points, adj: make([][]int, len(points)), start: -1}

	first := make(map[gg.Point]int, len(points))
	var vertices []int
	alias := make(map[int]int)
	for i, p := range points {
		if !finite(p) {
			continue
		}
		if j, ok := first[p]; ok {
			alias[i] = j
			continue
		}
		first[p] = i
		vertices = append(vertices, i)
	}
	if len(vertices) == 0 {
		return g
	}
	g.start = vertices[0]

	sets := make(map[int]map[int]struct{}, len(vertices))
	link := func(a, b int) {
		if a == b {
			return
		}
		for _, e := range [2][2]int{{a, b}, {b, a}} {
			if sets[e[0]] == nil {
				sets[e[0]] = make(map[int]struct{})
			}
			sets[e[0]][e[1]] = struct{}{}
		}
	}

	pts := make([]delaunay.Point, len(vertices))
	for k, i := range vertices {
		pts[k] = delaunay.Point{X: points[i].X, Y: points[i].Y}
	}
	if tri, err := triangulate(pts); err == nil {
		for e, a := range tri.Triangles {
			link(vertices[a], vertices[tri.Triangles[nextHalfedge(e)]])
		}
	} else {
		// Fewer than three vertices or all on one line: the triangulation
		// degenerates to the chain along the line.
		chain := slices.Clone(vertices)
		slices.SortFunc(chain, func(a, b int) int {
			return cmp.Or(cmp.Compare(points[a].X, points[b].X), cmp.Compare(points[a].Y, points[b].Y))
		})
		for k := 1; k < len(chain); k++ {
			link(chain[k-1], chain[k])
		}
	}

	for i, j := range alias {
		for n := range sets[j] {
			if _, ok := alias[n]; !ok {
				link(i, n)
			}
		}
		link(i, j)
	}
	for i, j := range alias {
		for n := range alias {
			if n != i && alias[n] == j {
				link(i, n)
			}
		}
	}

	for i, set := range sets {
		out := make([]int, 0, len(set))
		for j := range set {
			out = append(out, j)
		}
		slices.Sort(out)
		g.adj[i] = out
	}
	return g
}

// nearest walks the graph greedily from the first vertex and returns the
// index of the point closest to p, or -1 when there are no finite points.
func (g *neighborGraph) nearest(p gg.Point) int {
	if g.start < 0 {
		return -1
	}
	cur := g.start
	best := dist2(g.points[cur], p)
	for {
		next := cur
		for _, j := range g.adj[cur] {
			if d := dist2(g.points[j], p); d < best {
				best, next = d, j
			}
		}
		if next == cur {
			return cur
		}
		cur = next
	}
}

var errTooFewPoints = errors.New("index: fewer than three points")

func triangulate(pts []delaunay.Point) (*delaunay.Triangulation, error) {
	if len(pts) < 3 {
		return nil, errTooFewPoints
	}
	return delaunay.Triangulate(pts)
}

func nextHalfedge(e int) int {
	if e%3 == 2 {
		return e - 2
	}
	return e + 1
}

func finite(p gg.Point) bool {
	return !math.IsNaN(p.X) && !math.IsNaN(p.Y) && !math.IsInf(p.X, 0) && !math.IsInf(p.Y, 0)
}

func dist2(a, b gg.Point) float64 {
	dx, dy := a.X-b.X, a.Y-b.Y
	return dx*dx + dy*dy
}
