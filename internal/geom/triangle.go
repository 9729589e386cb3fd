package geom

import (
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// parallelEpsilon bounds |det| / (|dir| |e1| |e2|), the sine-like measure
// below which a ray counts as parallel to the plane or the triangle as degenerate.
const parallelEpsilon = 1e-12

// Triangle is an immutable flat-shaded triangle. Its normal is the raw
// (b-a) × (c-a), so its length is twice the area and its direction follows
// the winding order. Degenerate triangles are allowed and never intersect.
type Triangle struct {
	a, b, c mgl64.Vec3
	normal  mgl64.Vec3
}

func NewTriangle(a, b, c mgl64.Vec3) Triangle {
	return Triangle{
		a:      a,
		b:      b,
		c:      c,
		normal: Cross(b.Sub(a), c.Sub(a)),
	}
}

func (t Triangle) A() mgl64.Vec3      { return t.a }
func (t Triangle) B() mgl64.Vec3      { return t.b }
func (t Triangle) C() mgl64.Vec3      { return t.c }
func (t Triangle) Normal() mgl64.Vec3 { return t.normal }

// Vertices returns a, b and c in winding order.
func (t Triangle) Vertices() [3]mgl64.Vec3 {
	return [3]mgl64.Vec3{t.a, t.b, t.c}
}

// Intersect computes where the line origin + t*dir crosses the triangle
// (Möller–Trumbore). uv are the barycentric weights of b and c. The bounds
// are inclusive, so points on edges and vertices hit. t is returned for
// either sign; callers that want forward hits only must check t >= 0.
func (t Triangle) Intersect(origin, dir mgl64.Vec3) (dist float64, uv mgl64.Vec2, ok bool) {
	e1 := t.b.Sub(t.a)
	e2 := t.c.Sub(t.a)

	pvec := dir.Cross(e2)
	det := e1.Dot(pvec)
	if math.Abs(det) <= parallelEpsilon*dir.Len()*e1.Len()*e2.Len() {
		return 0, mgl64.Vec2{}, false
	}
	inv := 1 / det

	tvec := origin.Sub(t.a)
	u := tvec.Dot(pvec) * inv
	if u < 0 || u > 1 {
		return 0, mgl64.Vec2{}, false
	}

	qvec := tvec.Cross(e1)
	v := dir.Dot(qvec) * inv
	if v < 0 || u+v > 1 {
		return 0, mgl64.Vec2{}, false
	}

	dist = e2.Dot(qvec) * inv
	if math.IsNaN(dist) || math.IsInf(dist, 0) {
		return 0, mgl64.Vec2{}, false
	}
	return dist, mgl64.Vec2{u, v}, true
}

func (t Triangle) String() string {
	return fmt.Sprintf("[%g,%g,%g] [%g,%g,%g] [%g,%g,%g]",
		t.a.X(), t.a.Y(), t.a.Z(),
		t.b.X(), t.b.Y(), t.b.Z(),
		t.c.X(), t.c.Y(), t.c.Z())
}
