package terrain

import (
	"fmt"

	"github.com/dgravesa/go-parallel/parallel"
	"github.com/go-gl/mathgl/mgl64"

	"terrain-rt/internal/geom"
	"terrain-rt/internal/noise"
	"terrain-rt/internal/profiling"
)

// Mesh is a triangulated height field. It is immutable once built, so
// queries may run concurrently as long as nobody reseeds the noise field
// it was built from in the meantime (the mesh itself keeps no reference to it).
type Mesh struct {
	params    Params
	sizeX     int
	sizeY     int
	triangles []geom.Triangle
}

// Build samples field over the rectangle in p and tessellates the samples.
// Invalid params are rejected before the field is touched.
func Build(field *noise.Field, p Params) (*Mesh, error) {
	defer profiling.Track("terrain.Build")()

	if err := p.Validate(); err != nil {
		return nil, fmt.Errorf("build terrain: %w", err)
	}

	if p.Randomize {
		field.Reseed()
	}

	grid := sampleGrid(field, p)
	m := &Mesh{
		params:    p,
		sizeX:     len(grid),
		sizeY:     len(grid[0]),
		triangles: tessellate(grid),
	}
	return m, nil
}

// sampleGrid returns grid[m][n] = (xMin + m*unit, height, yMin + n*unit).
// Rows are sampled in parallel; each row writes only its own slice.
func sampleGrid(field *noise.Field, p Params) [][]mgl64.Vec3 {
	fx, fy := p.gridSize()
	sizeX, sizeY := int(fx), int(fy)
	k := p.FrequencyDivisor
	span := p.ZMax - p.ZMin

	grid := make([][]mgl64.Vec3, sizeX)
	parallel.For(sizeX, func(m, _ int) {
		row := make([]mgl64.Vec3, sizeY)
		x := p.XMin + float64(m)*p.UnitSize
		for n := range row {
			h := (field.Sample(float64(m)/k, float64(n)/k, 0)+1)/2*span + p.ZMin
			row[n] = mgl64.Vec3{x, h, p.YMin + float64(n)*p.UnitSize}
		}
		grid[m] = row
	})
	return grid
}

// tessellate splits every grid cell into two triangles. The diagonal
// alternates in a checkerboard so no direction dominates; every triangle is
// wound so its normal points up.
//
//	a = [m][n]    b = [m+1][n]
//	c = [m][n+1]  d = [m+1][n+1]
func tessellate(grid [][]mgl64.Vec3) []geom.Triangle {
	if len(grid) < 2 || len(grid[0]) < 2 {
		return nil
	}
	sizeX, sizeY := len(grid), len(grid[0])
	tris := make([]geom.Triangle, 0, 2*(sizeX-1)*(sizeY-1))
	for m := 0; m < sizeX-1; m++ {
		for n := 0; n < sizeY-1; n++ {
			a := grid[m][n]
			b := grid[m+1][n]
			c := grid[m][n+1]
			d := grid[m+1][n+1]

			if m%2 == n%2 {
				tris = append(tris, geom.NewTriangle(b, a, c), geom.NewTriangle(b, c, d))
			} else {
				tris = append(tris, geom.NewTriangle(b, a, d), geom.NewTriangle(a, c, d))
			}
		}
	}
	return tris
}

// Params returns the parameters the mesh was built with.
func (m *Mesh) Params() Params { return m.params }

// GridSize returns the number of samples along x and y.
func (m *Mesh) GridSize() (int, int) { return m.sizeX, m.sizeY }

// TriangleCount returns the number of triangles in storage order.
func (m *Mesh) TriangleCount() int { return len(m.triangles) }

// Triangles returns a copy of the triangles in storage order.
func (m *Mesh) Triangles() []geom.Triangle {
	return append([]geom.Triangle(nil), m.triangles...)
}

// EdgeTolerance is the distance under which a hit is classified as an edge hit.
func (m *Mesh) EdgeTolerance() float64 {
	return EdgeToleranceFactor * m.params.UnitSize
}
