// Package index stores chart geometries for pointer lookups.
//
// A [Map] keeps two sub-indexes. The linear index groups geometries by their
// x value and answers exact x lookups, which is how bars, lines and areas
// are found from a snapped cursor. The spatial index triangulates point
// geometries and answers nearest-point lookups, which is how bubble charts
// are hit-tested.
//
// A Map has a single writer while it is built or merged. Lookups on a
// finished Map are safe for concurrent use.
package index

import (
	"github.com/gogpu/gg"

	"github.com/gogpu/ggchart/scale"
)

// HighlightPadding caps the radius used to gather neighbours of the point
// closest to the cursor.
const HighlightPadding = 10

// Kind selects the sub-index a geometry is stored in.
type Kind uint8

const (
	// Linear indexes by exact x value.
	Linear Kind = iota
	// Spatial indexes by pixel position.
	Spatial
)

// Geometry is any indexed shape.
type Geometry interface {
	// XValue is the domain x value the geometry was built from.
	XValue() scale.Value
	// PanelValues returns the vertical and horizontal small multiples values.
	PanelValues() (v, h scale.Value)
}

// PointGeometry is a geometry with a pixel center, stored in the spatial
// index.
type PointGeometry interface {
	Geometry
	Center() gg.Point
	HitRadius() float64
}

// Map is the geometry index of a chart.
type Map struct {
	linear map[scale.Value][]Geometry
	// keys holds linear keys in first insertion order.
	keys    []scale.Value
	spatial spatial
}

// New returns an empty Map.
func New() *Map {
	return &Map{linear: make(map[scale.Value][]Geometry)}
}

// Set stores g. Linear entries sharing an x value are kept newest first.
// Geometries without a pixel center always go to the linear index.
func (m *Map) Set(g Geometry, kind Kind) {
	if kind == Spatial {
		if p, ok := g.(PointGeometry); ok {
			m.spatial.add(p)
			return
		}
	}
	x := g.XValue()
	existing, ok := m.linear[x]
	if !ok {
		m.keys = append(m.keys, x)
	}
	entries := make([]Geometry, 0, len(existing)+1)
	entries = append(entries, g)
	m.linear[x] = append(entries, existing...)
}

// Find returns the linear geometries at x followed, when pointer is not
// nil, by the spatial geometries around pointer.
func (m *Map) Find(x scale.Value, pointer *gg.Point) []Geometry {
	var out []Geometry
	out = append(out, m.linear[x]...)
	if pointer != nil {
		out = append(out, m.spatial.find(*pointer)...)
	}
	return out
}

// FindInPanel is Find restricted to the small multiples panel (smV, smH).
func (m *Map) FindInPanel(x scale.Value, pointer *gg.Point, smV, smH scale.Value) []Geometry {
	all := m.Find(x, pointer)
	out := all[:0]
	for _, g := range all {
		if v, h := g.PanelValues(); v == smV && h == smH {
			out = append(out, g)
		}
	}
	return out
}

// Merge appends the entries of maps to m. Linear entries are concatenated
// per x value after the existing ones, spatial points are unioned and
// triangulated again on the next lookup.
func (m *Map) Merge(maps ...*Map) {
	for _, src := range maps {
		if src == nil || src == m {
			continue
		}
		for _, x := range src.keys {
			if _, ok := m.linear[x]; !ok {
				m.keys = append(m.keys, x)
			}
			m.linear[x] = append(m.linear[x], src.linear[x]...)
		}
		for _, p := range src.spatial.points {
			m.spatial.add(p)
		}
	}
}

// Keys returns the distinct x values of both sub-indexes, linear keys
// first, each in insertion order.
func (m *Map) Keys() []scale.Value {
	out := make([]scale.Value, 0, len(m.keys)+len(m.spatial.points))
	out = append(out, m.keys...)
	seen := make(map[scale.Value]bool, len(m.keys))
	for _, k := range m.keys {
		seen[k] = true
	}
	for _, p := range m.spatial.points {
		if x := p.XValue(); !seen[x] {
			seen[x] = true
			out = append(out, x)
		}
	}
	return out
}

// All returns every geometry, linear entries first.
func (m *Map) All() []Geometry {
	out := make([]Geometry, 0, m.Len())
	for _, k := range m.keys {
		out = append(out, m.linear[k]...)
	}
	for _, p := range m.spatial.points {
		out = append(out, p)
	}
	return out
}

// Len returns the number of stored geometries.
func (m *Map) Len() int {
	n := len(m.spatial.points)
	for _, k := range m.keys {
		n += len(m.linear[k])
	}
	return n
}

// IsSpatial reports whether pointer lookups can return spatial matches.
func (m *Map) IsSpatial() bool { return len(m.spatial.points) > 0 }
