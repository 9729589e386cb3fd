package config

import "sync"

// TerrainSettings holds the defaults used when building terrain without explicit parameters.
type TerrainSettings struct {
	mu               sync.RWMutex
	unitSize         float64
	frequencyDivisor float64
	border           bool
	noiseOctaves     int
	maxGridPoints    int
}

const (
	minUnitSize = 0.01
	maxUnitSize = 100.0

	minFrequencyDivisor = 0.01
	maxFrequencyDivisor = 1e6

	minNoiseOctaves = 1
	maxNoiseOctaves = 20

	minGridPoints = 4
	maxGridPoints = 1 << 26
)

var globalTerrainSettings = &TerrainSettings{
	unitSize:         1.0,
	frequencyDivisor: 5.0,
	border:           true,
	noiseOctaves:     8, // 256-entry permutation
	maxGridPoints:    1 << 22,
}

// GetUnitSize returns the default grid spacing
func GetUnitSize() float64 {
	globalTerrainSettings.mu.RLock()
	defer globalTerrainSettings.mu.RUnlock()
	return globalTerrainSettings.unitSize
}

// SetUnitSize sets the default grid spacing
func SetUnitSize(size float64) {
	globalTerrainSettings.mu.Lock()
	defer globalTerrainSettings.mu.Unlock()
	globalTerrainSettings.unitSize = clampF(size, minUnitSize, maxUnitSize)
}

// GetFrequencyDivisor returns the default noise frequency divisor
func GetFrequencyDivisor() float64 {
	globalTerrainSettings.mu.RLock()
	defer globalTerrainSettings.mu.RUnlock()
	return globalTerrainSettings.frequencyDivisor
}

// SetFrequencyDivisor sets the default noise frequency divisor
func SetFrequencyDivisor(k float64) {
	globalTerrainSettings.mu.Lock()
	defer globalTerrainSettings.mu.Unlock()
	globalTerrainSettings.frequencyDivisor = clampF(k, minFrequencyDivisor, maxFrequencyDivisor)
}

// GetBorder returns whether seam highlighting is enabled by default
func GetBorder() bool {
	globalTerrainSettings.mu.RLock()
	defer globalTerrainSettings.mu.RUnlock()
	return globalTerrainSettings.border
}

// SetBorder sets whether seam highlighting is enabled by default
func SetBorder(enabled bool) {
	globalTerrainSettings.mu.Lock()
	defer globalTerrainSettings.mu.Unlock()
	globalTerrainSettings.border = enabled
}

// GetNoiseOctaves returns the log2 size of the noise permutation table
func GetNoiseOctaves() int {
	globalTerrainSettings.mu.RLock()
	defer globalTerrainSettings.mu.RUnlock()
	return globalTerrainSettings.noiseOctaves
}

// SetNoiseOctaves sets the log2 size of the noise permutation table
func SetNoiseOctaves(octaves int) {
	globalTerrainSettings.mu.Lock()
	defer globalTerrainSettings.mu.Unlock()

	// Clamp to the range the noise field accepts
	if octaves < minNoiseOctaves {
		octaves = minNoiseOctaves
	}
	if octaves > maxNoiseOctaves {
		octaves = maxNoiseOctaves
	}
	globalTerrainSettings.noiseOctaves = octaves
}

// GetMaxGridPoints returns the largest sample grid a build may allocate
func GetMaxGridPoints() int {
	globalTerrainSettings.mu.RLock()
	defer globalTerrainSettings.mu.RUnlock()
	return globalTerrainSettings.maxGridPoints
}

// SetMaxGridPoints sets the largest sample grid a build may allocate
func SetMaxGridPoints(n int) {
	globalTerrainSettings.mu.Lock()
	defer globalTerrainSettings.mu.Unlock()
	if n < minGridPoints {
		n = minGridPoints
	}
	if n > maxGridPoints {
		n = maxGridPoints
	}
	globalTerrainSettings.maxGridPoints = n
}

func clampF(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
