package noise

import (
	"errors"
	"fmt"
	"math"
	"math/rand"
	"sync"
	"time"
)

const (
	MinOctaves = 1
	MaxOctaves = 20
)

var ErrOctavesOutOfRange = errors.New("noise: octaves out of range")

// Gradient lookup tables indexed by hash & 15. Twelve cube-edge directions,
// with four repeated to fill 16 slots.
var (
	gradX = [16]float64{1, -1, 1, -1, 1, -1, 1, -1, 0, 0, 0, 0, 1, 0, -1, 0}
	gradY = [16]float64{1, 1, -1, -1, 0, 0, 0, 0, 1, -1, 1, -1, 1, -1, 1, -1}
	gradZ = [16]float64{0, 0, 0, 0, 1, 1, -1, -1, 1, 1, -1, -1, 0, 1, 0, -1}
)

// referencePermutation is Ken Perlin's improved-noise table.
var referencePermutation = [256]int{151, 160, 137, 91, 90, 15,
	131, 13, 201, 95, 96, 53, 194, 233, 7, 225, 140, 36, 103, 30, 69, 142, 8, 99, 37, 240, 21, 10, 23,
	190, 6, 148, 247, 120, 234, 75, 0, 26, 197, 62, 94, 252, 219, 203, 117, 35, 11, 32, 57, 177, 33,
	88, 237, 149, 56, 87, 174, 20, 125, 136, 171, 168, 68, 175, 74, 165, 71, 134, 139, 48, 27, 166,
	77, 146, 158, 231, 83, 111, 229, 122, 60, 211, 133, 230, 220, 105, 92, 41, 55, 46, 245, 40, 244,
	102, 143, 54, 65, 25, 63, 161, 1, 216, 80, 73, 209, 76, 132, 187, 208, 89, 18, 169, 200, 196,
	135, 130, 116, 188, 159, 86, 164, 100, 109, 198, 173, 186, 3, 64, 52, 217, 226, 250, 124, 123,
	5, 202, 38, 147, 118, 126, 255, 82, 85, 212, 207, 206, 59, 227, 47, 16, 58, 17, 182, 189, 28, 42,
	223, 183, 170, 213, 119, 248, 152, 2, 44, 154, 163, 70, 221, 153, 101, 155, 167, 43, 172, 9,
	129, 22, 39, 253, 19, 98, 108, 110, 79, 113, 224, 232, 178, 185, 112, 104, 218, 246, 97, 228,
	251, 34, 242, 193, 238, 210, 144, 12, 191, 179, 162, 241, 81, 51, 145, 235, 249, 14, 239, 107,
	49, 192, 214, 31, 181, 199, 106, 157, 184, 84, 204, 176, 115, 121, 50, 45, 127, 4, 150, 254,
	138, 236, 205, 93, 222, 114, 67, 29, 24, 72, 243, 141, 128, 195, 78, 66, 215, 61, 156, 180,
}

// Field is a 3D improved gradient-noise field over a reseedable permutation table.
//
// Sampling takes a read lock and reseeding a write lock, so one field can be
// shared by many readers while a single owner reseeds it between builds.
type Field struct {
	mu          sync.RWMutex
	rnd         *rand.Rand
	permutation []int // base permutation of 0..size-1
	p           []int // permutation doubled: p[i] == p[size+i]
	size        int
}

// NewField creates a field over the reference permutation. rnd is the source
// used by Reseed; nil selects a time-seeded source.
func NewField(rnd *rand.Rand) *Field {
	if rnd == nil {
		rnd = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	f := &Field{rnd: rnd}
	f.permutation = append([]int(nil), referencePermutation[:]...)
	f.rebuild()
	return f
}

// rebuild recomputes the doubled table from the base permutation.
func (f *Field) rebuild() {
	f.size = len(f.permutation)
	f.p = make([]int, 2*f.size)
	for i, v := range f.permutation {
		f.p[i] = v
		f.p[f.size+i] = v
	}
}

func (f *Field) shuffle() {
	n := len(f.permutation)
	for i := 0; i < n; i++ {
		f.permutation[i] = i
	}
	for i := 0; i < n; i++ {
		j := f.rnd.Intn(n-i) + i
		f.permutation[i], f.permutation[j] = f.permutation[j], f.permutation[i]
	}
	f.rebuild()
}

// Reseed replaces the permutation with a fresh uniform shuffle of 0..Size()-1.
func (f *Field) Reseed() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.shuffle()
}

// SetOctaves resizes the permutation to 2^octaves entries and reseeds it.
func (f *Field) SetOctaves(octaves int) error {
	if octaves < MinOctaves || octaves > MaxOctaves {
		return fmt.Errorf("%w: %d not in [%d, %d]", ErrOctavesOutOfRange, octaves, MinOctaves, MaxOctaves)
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.permutation = make([]int, 1<<octaves)
	f.shuffle()
	return nil
}

// Size returns the length of the base permutation, which is also the period
// of the noise along each axis.
func (f *Field) Size() int {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.size
}

// Permutation returns a copy of the base permutation.
func (f *Field) Permutation() []int {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return append([]int(nil), f.permutation...)
}

// Sample evaluates single-octave noise at (x, y, z). The result lies roughly
// in [-1, 1] and is exactly zero on integer lattice points.
func (f *Field) Sample(x, y, z float64) float64 {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.sample(x, y, z)
}

// SampleOctaves sums octaves of frequency-doubled, amplitude-halved noise and
// returns the square of the sum. The square folds negative lobes onto positive
// ones, which sharpens ridges; it is part of the output shape, not a magnitude.
// r, when non-nil, is widened to include the returned value.
func (f *Field) SampleOctaves(x, y, z float64, octaves int, r *Range) float64 {
	f.mu.RLock()
	sum := 0.0
	octave := 1.0
	for i := 0; i < max(octaves, 0); i++ {
		sum += f.sample(x*octave, y*octave, z*octave) / octave
		octave *= 2
	}
	f.mu.RUnlock()

	v := math.Abs(sum * sum)
	if r != nil {
		r.Observe(v)
	}
	return v
}

func (f *Field) sample(x, y, z float64) float64 {
	fx, fy, fz := math.Floor(x), math.Floor(y), math.Floor(z)
	X := floorMod(int(fx), f.size)
	Y := floorMod(int(fy), f.size)
	Z := floorMod(int(fz), f.size)

	x -= fx
	y -= fy
	z -= fz

	u := fade(x)
	v := fade(y)
	w := fade(z)

	// Hash the 8 cube corners
	p := f.p
	A := p[X] + Y
	AA := p[A] + Z
	AB := p[A+1] + Z
	B := p[X+1] + Y
	BA := p[B] + Z
	BB := p[B+1] + Z

	return lerp(w,
		lerp(v,
			lerp(u, grad(p[AA], x, y, z), grad(p[BA], x-1, y, z)),
			lerp(u, grad(p[AB], x, y-1, z), grad(p[BB], x-1, y-1, z))),
		lerp(v,
			lerp(u, grad(p[AA+1], x, y, z-1), grad(p[BA+1], x-1, y, z-1)),
			lerp(u, grad(p[AB+1], x, y-1, z-1), grad(p[BB+1], x-1, y-1, z-1))))
}

// fade is the quintic smoothstep 6t^5 - 15t^4 + 10t^3
func fade(t float64) float64 {
	return t * t * t * (t*(t*6-15) + 10)
}

func lerp(t, a, b float64) float64 {
	return a + t*(b-a)
}

func grad(hash int, x, y, z float64) float64 {
	i := hash & 15
	return gradX[i]*x + gradY[i]*y + gradZ[i]*z
}

func floorMod(a, n int) int {
	m := a % n
	if m < 0 {
		m += n
	}
	return m
}
