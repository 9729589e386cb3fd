package terrain

import (
	"math"
	"sort"

	"github.com/go-gl/mathgl/mgl64"

	"terrain-rt/internal/geom"
	"terrain-rt/internal/profiling"
)

// Surface is the query capability a scene graph needs from terrain.
type Surface interface {
	HeightAt(x, y float64) float64
	Intersect(origin, dir mgl64.Vec3) ([]Hit, error)
}

var _ Surface = (*Mesh)(nil)

// Hit is one ray-triangle intersection.
type Hit struct {
	// Distance is the ray parameter t, so Point = origin + t*dir. It may be
	// negative for triangles behind the origin.
	Distance float64
	// Enter is always true: the height field has no inside.
	Enter bool
	// Front is always true: terrain is shaded from both sides.
	Front bool
	Point mgl64.Vec3
	// Normal is the raw triangle normal, or the zero vector when the mesh
	// was built with Border and the hit lies on a triangle edge.
	Normal mgl64.Vec3
}

// OnEdge reports whether the hit carries the zero edge normal.
func (h Hit) OnEdge() bool {
	return h.Normal == mgl64.Vec3{}
}

var up = mgl64.Vec3{0, 1, 0}

// HeightAt returns the terrain height under (x, y) from the first triangle
// in storage order that a vertical line through the point crosses. Where
// triangles overlap the answer depends on storage order, not on which
// surface is topmost; use HighestHeightAt for that. Returns -Inf if no
// triangle lies under the point.
func (m *Mesh) HeightAt(x, y float64) float64 {
	origin := mgl64.Vec3{x, 0, y}
	profiling.Count("terrain.RayTriangleTests", int64(len(m.triangles)))
	for _, tri := range m.triangles {
		if h, _, ok := tri.Intersect(origin, up); ok {
			return h
		}
	}
	return math.Inf(-1)
}

// HighestHeightAt returns the greatest height among all triangles under
// (x, y), i.e. the first surface a ray cast downward would meet. Returns
// -Inf if no triangle lies under the point.
func (m *Mesh) HighestHeightAt(x, y float64) float64 {
	origin := mgl64.Vec3{x, 0, y}
	height := math.Inf(-1)
	profiling.Count("terrain.RayTriangleTests", int64(len(m.triangles)))
	for _, tri := range m.triangles {
		if h, _, ok := tri.Intersect(origin, up); ok && h > height {
			height = h
		}
	}
	return height
}

// Intersect tests the ray against every triangle and returns all hits sorted
// by ascending distance. It returns nil when nothing is hit.
func (m *Mesh) Intersect(origin, dir mgl64.Vec3) ([]Hit, error) {
	if err := checkDirection(dir); err != nil {
		return nil, err
	}
	return m.intersect(origin, dir), nil
}

func (m *Mesh) intersect(origin, dir mgl64.Vec3) []Hit {
	profiling.Count("terrain.RayTriangleTests", int64(len(m.triangles)))

	var hits []Hit
	tolerance := m.EdgeTolerance()
	for _, tri := range m.triangles {
		t, _, ok := tri.Intersect(origin, dir)
		if !ok {
			continue
		}

		hit := Hit{
			Distance: t,
			Enter:    true,
			Front:    true,
			Point:    origin.Add(dir.Mul(t)),
			Normal:   tri.Normal(),
		}
		if m.params.Border && geom.NearTriangleEdge(hit.Point, tri, tolerance) {
			hit.Normal = mgl64.Vec3{}
		}
		hits = append(hits, hit)
	}

	sort.SliceStable(hits, func(i, j int) bool { return hits[i].Distance < hits[j].Distance })
	return hits
}

func checkDirection(dir mgl64.Vec3) error {
	for _, c := range dir {
		if !isFinite(c) {
			return ErrZeroDirection
		}
	}
	if dir == (mgl64.Vec3{}) {
		return ErrZeroDirection
	}
	return nil
}
