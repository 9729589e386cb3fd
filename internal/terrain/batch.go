package terrain

import (
	"fmt"

	"github.com/dgravesa/go-parallel/parallel"
	"github.com/go-gl/mathgl/mgl64"

	"terrain-rt/internal/profiling"
)

// Ray is an origin and a (not necessarily normalized) direction.
type Ray struct {
	Origin    mgl64.Vec3
	Direction mgl64.Vec3
}

// IntersectAll runs Intersect for every ray in parallel. results[i] belongs
// to rays[i]. All directions are checked before any work starts.
func (m *Mesh) IntersectAll(rays []Ray) ([][]Hit, error) {
	defer profiling.Track("terrain.IntersectAll")()

	for i, r := range rays {
		if err := checkDirection(r.Direction); err != nil {
			return nil, fmt.Errorf("ray %d: %w", i, err)
		}
	}

	results := make([][]Hit, len(rays))
	parallel.For(len(rays), func(i, _ int) {
		results[i] = m.intersect(rays[i].Origin, rays[i].Direction)
	})
	return results, nil
}

// HeightsAt runs HeightAt for every (x, y) point in parallel.
func (m *Mesh) HeightsAt(points [][2]float64) []float64 {
	defer profiling.Track("terrain.HeightsAt")()

	heights := make([]float64, len(points))
	parallel.For(len(points), func(i, _ int) {
		heights[i] = m.HeightAt(points[i][0], points[i][1])
	})
	return heights
}
