package geom

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Source supplies uniform values in [0,1). *random.Sequence and *rand.Rand both satisfy it.
type Source interface {
	Float64() float64
}

// Cross returns the cross product u × v.
func Cross(u, v mgl64.Vec3) mgl64.Vec3 {
	return u.Cross(v)
}

// NearTriangleEdge reports whether p lies closer than limit to any edge of t.
//
// Distances are measured to the infinite line through each edge, not to the
// bounded segment, so the result is only meaningful for points already known
// to lie inside the triangle (such as ray hits). Seam highlighting depends on
// this exact measure.
func NearTriangleEdge(p mgl64.Vec3, t Triangle, limit float64) bool {
	return lineDistance(p, t.a, t.b.Sub(t.a)) < limit ||
		lineDistance(p, t.a, t.c.Sub(t.a)) < limit ||
		lineDistance(p, t.b, t.c.Sub(t.b)) < limit
}

// lineDistance is |(q-p) × u| / |u|. A zero-length u yields NaN, which never
// compares below a limit.
func lineDistance(p, q, u mgl64.Vec3) float64 {
	return Cross(q.Sub(p), u).Len() / u.Len()
}

// RotateRandomY rotates v about the vertical axis by an angle drawn uniformly
// from [0, 2π).
func RotateRandomY(v mgl64.Vec3, src Source) mgl64.Vec3 {
	angle := src.Float64() * 2 * math.Pi
	// Rotate3DY turns +X towards -Z; negate to turn +X towards +Z.
	return mgl64.Rotate3DY(-angle).Mul3x1(v)
}

// RandomPointInDisk returns a point in the horizontal disk of the given radius
// centered at the origin. Angle and radius are both drawn uniformly, which
// concentrates points towards the center. Use RandomPointInDiskUniform for
// area-uniform placement.
func RandomPointInDisk(radius float64, src Source) mgl64.Vec3 {
	angle := src.Float64() * 2 * math.Pi
	r := src.Float64() * radius
	return mgl64.Vec3{r * math.Cos(angle), 0, r * math.Sin(angle)}
}

// RandomPointInDiskUniform returns an area-uniform point in the horizontal disk.
func RandomPointInDiskUniform(radius float64, src Source) mgl64.Vec3 {
	angle := src.Float64() * 2 * math.Pi
	r := math.Sqrt(src.Float64()) * radius
	return mgl64.Vec3{r * math.Cos(angle), 0, r * math.Sin(angle)}
}

// SetLength returns v rescaled to the given length. A zero vector is returned unchanged.
func SetLength(v mgl64.Vec3, length float64) mgl64.Vec3 {
	l := v.Len()
	if l > 0 {
		return v.Mul(length / l)
	}
	return v
}
