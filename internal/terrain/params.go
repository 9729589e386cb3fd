package terrain

import (
	"errors"
	"fmt"
	"math"

	"terrain-rt/internal/config"
)

var (
	ErrInvalidUnitSize  = errors.New("terrain: unit size must be positive and finite")
	ErrInvalidBounds    = errors.New("terrain: invalid bounds")
	ErrInvalidFrequency = errors.New("terrain: frequency divisor must be positive and finite")
	ErrGridTooLarge     = errors.New("terrain: sample grid too large")
	ErrZeroDirection    = errors.New("terrain: ray direction must be non-zero and finite")
)

// EdgeToleranceFactor scales UnitSize into the distance under which a hit
// counts as lying on a triangle edge.
const EdgeToleranceFactor = 0.02

// Params describes a terrain build. X and Y span the horizontal rectangle;
// Z bounds the generated heights, which are stored on the vertical (Y) axis
// of the mesh.
type Params struct {
	XMin, XMax float64
	YMin, YMax float64
	ZMin, ZMax float64

	// UnitSize is the grid spacing.
	UnitSize float64
	// Randomize reseeds the noise field before sampling.
	Randomize bool
	// Border reports hits near triangle edges with a zero normal.
	Border bool
	// FrequencyDivisor divides grid indices before they are fed to the noise.
	FrequencyDivisor float64
}

// DefaultParams returns params over the given rectangle and height range,
// taking the remaining settings from the config package.
func DefaultParams(xMin, xMax, yMin, yMax, zMin, zMax float64) Params {
	return Params{
		XMin:             xMin,
		XMax:             xMax,
		YMin:             yMin,
		YMax:             yMax,
		ZMin:             zMin,
		ZMax:             zMax,
		UnitSize:         config.GetUnitSize(),
		Border:           config.GetBorder(),
		FrequencyDivisor: config.GetFrequencyDivisor(),
	}
}

// Validate checks p without building anything.
func (p Params) Validate() error {
	if !(p.UnitSize > 0) || math.IsInf(p.UnitSize, 0) {
		return fmt.Errorf("%w: %v", ErrInvalidUnitSize, p.UnitSize)
	}
	if !(p.FrequencyDivisor > 0) || math.IsInf(p.FrequencyDivisor, 0) {
		return fmt.Errorf("%w: %v", ErrInvalidFrequency, p.FrequencyDivisor)
	}
	for _, v := range []float64{p.XMin, p.XMax, p.YMin, p.YMax, p.ZMin, p.ZMax} {
		if !isFinite(v) {
			return fmt.Errorf("%w: non-finite bound %v", ErrInvalidBounds, v)
		}
	}
	if p.XMax < p.XMin {
		return fmt.Errorf("%w: x range [%v, %v]", ErrInvalidBounds, p.XMin, p.XMax)
	}
	if p.YMax < p.YMin {
		return fmt.Errorf("%w: y range [%v, %v]", ErrInvalidBounds, p.YMin, p.YMax)
	}

	sizeX, sizeY := p.gridSize()
	limit := float64(config.GetMaxGridPoints())
	if sizeX*sizeY > limit {
		return fmt.Errorf("%w: %.0fx%.0f points, limit %.0f", ErrGridTooLarge, sizeX, sizeY, limit)
	}
	return nil
}

// gridSize returns the sample counts along x and y as floats so oversized
// grids can be rejected before conversion to int.
func (p Params) gridSize() (float64, float64) {
	sizeX := math.Ceil((p.XMax-p.XMin)/p.UnitSize) + 1
	sizeY := math.Ceil((p.YMax-p.YMin)/p.UnitSize) + 1
	return sizeX, sizeY
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
