package geom

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"

	"terrain-rt/internal/random"
)

const eps = 1e-9

func TestCross(t *testing.T) {
	tests := []struct {
		u, v, want mgl64.Vec3
	}{
		{mgl64.Vec3{1, 0, 0}, mgl64.Vec3{0, 1, 0}, mgl64.Vec3{0, 0, 1}},
		{mgl64.Vec3{0, 1, 0}, mgl64.Vec3{1, 0, 0}, mgl64.Vec3{0, 0, -1}},
		{mgl64.Vec3{2, 3, 4}, mgl64.Vec3{5, 6, 7}, mgl64.Vec3{-3, 6, -3}},
		{mgl64.Vec3{1, 2, 3}, mgl64.Vec3{2, 4, 6}, mgl64.Vec3{0, 0, 0}},
	}
	for _, tt := range tests {
		if got := Cross(tt.u, tt.v); !got.ApproxEqualThreshold(tt.want, eps) {
			t.Errorf("Cross(%v, %v) = %v, want %v", tt.u, tt.v, got, tt.want)
		}
	}
}

func TestSetLength(t *testing.T) {
	zero := mgl64.Vec3{}
	if got := SetLength(zero, 5); got != zero {
		t.Errorf("SetLength(zero) = %v, want zero vector unchanged", got)
	}

	v := SetLength(mgl64.Vec3{3, 0, 4}, 10)
	if !v.ApproxEqualThreshold(mgl64.Vec3{6, 0, 8}, eps) {
		t.Errorf("SetLength({3,0,4}, 10) = %v, want {6,0,8}", v)
	}
	if l := SetLength(mgl64.Vec3{-1, 2, -3}, 0.5).Len(); math.Abs(l-0.5) > eps {
		t.Errorf("rescaled length = %f, want 0.5", l)
	}
}

func TestNearTriangleEdge(t *testing.T) {
	tri := NewTriangle(mgl64.Vec3{0, 0, 0}, mgl64.Vec3{10, 0, 0}, mgl64.Vec3{0, 0, 10})

	tests := []struct {
		name  string
		p     mgl64.Vec3
		limit float64
		want  bool
	}{
		{"vertex a", tri.A(), 1e-9, true},
		{"vertex b", tri.B(), 1e-9, true},
		{"vertex c", tri.C(), 1e-9, true},
		{"interior far from edges", mgl64.Vec3{2, 0, 2}, 0.5, false},
		{"close to edge ab", mgl64.Vec3{5, 0, 0.1}, 0.2, true},
		{"close to hypotenuse", mgl64.Vec3{4.95, 0, 4.95}, 0.2, true},
		// Supporting line of ab extends past b.
		{"on extension of edge ab", mgl64.Vec3{20, 0, 0}, 0.01, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NearTriangleEdge(tt.p, tri, tt.limit); got != tt.want {
				t.Errorf("NearTriangleEdge(%v, %f) = %v, want %v", tt.p, tt.limit, got, tt.want)
			}
		})
	}
}

func TestNearTriangleEdgeVertexAnyLimit(t *testing.T) {
	tri := NewTriangle(mgl64.Vec3{1, 2, 3}, mgl64.Vec3{4, -1, 2}, mgl64.Vec3{0, 5, -2})
	for _, limit := range []float64{1e-12, 1e-6, 0.5, 100} {
		for _, v := range tri.Vertices() {
			if !NearTriangleEdge(v, tri, limit) {
				t.Errorf("vertex %v not near edge for limit %g", v, limit)
			}
		}
	}
}

func TestRotateRandomY(t *testing.T) {
	src := random.NewSeededSequence(3)
	v := mgl64.Vec3{3, 7, -2}
	for i := 0; i < 100; i++ {
		r := RotateRandomY(v, src)
		if math.Abs(r.Y()-v.Y()) > eps {
			t.Fatalf("rotation changed Y: %v -> %v", v, r)
		}
		if math.Abs(r.Len()-v.Len()) > eps {
			t.Fatalf("rotation changed length: %f -> %f", v.Len(), r.Len())
		}
	}
}

type fixedSource []float64

func (f *fixedSource) Float64() float64 {
	v := (*f)[0]
	*f = (*f)[1:]
	return v
}

func TestRotateRandomYQuarterTurn(t *testing.T) {
	src := &fixedSource{0.25}
	got := RotateRandomY(mgl64.Vec3{1, 0, 0}, src)
	if !got.ApproxEqualThreshold(mgl64.Vec3{0, 0, 1}, eps) {
		t.Errorf("quarter turn of +X = %v, want +Z", got)
	}
}

func TestRandomPointInDisk(t *testing.T) {
	src := random.NewSeededSequence(11)
	for _, sample := range []func(float64, Source) mgl64.Vec3{RandomPointInDisk, RandomPointInDiskUniform} {
		for i := 0; i < 500; i++ {
			p := sample(4, src)
			if p.Y() != 0 {
				t.Fatalf("point %v not in horizontal plane", p)
			}
			if p.Len() > 4+eps {
				t.Fatalf("point %v outside radius 4", p)
			}
		}
	}
}

func TestRandomPointInDiskRadius(t *testing.T) {
	src := &fixedSource{0, 0.5}
	p := RandomPointInDisk(2, src)
	if !p.ApproxEqualThreshold(mgl64.Vec3{1, 0, 0}, eps) {
		t.Errorf("polar sample = %v, want {1,0,0}", p)
	}

	src = &fixedSource{0, 0.25}
	p = RandomPointInDiskUniform(2, src)
	if !p.ApproxEqualThreshold(mgl64.Vec3{1, 0, 0}, eps) {
		t.Errorf("area-uniform sample = %v, want {1,0,0}", p)
	}
}
