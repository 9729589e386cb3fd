package main

import (
	"flag"
	"log"
	"math"
	"math/rand"
	"time"

	"github.com/go-gl/mathgl/mgl64"

	"terrain-rt/internal/config"
	"terrain-rt/internal/geom"
	"terrain-rt/internal/noise"
	"terrain-rt/internal/profiling"
	"terrain-rt/internal/random"
	"terrain-rt/internal/terrain"
	"terrain-rt/pkg/preset"
)

// Reference camera of the terrain scene.
var (
	cameraPos = mgl64.Vec3{0, 25, -20}
	cameraDir = mgl64.Vec3{0, -1, 1}
)

const cameraFovDeg = 50.0

func main() {
	seed := flag.Int64("seed", 0, "noise reseed source; 0 uses the clock")
	randomize := flag.Bool("randomize", true, "reseed the noise table before building")
	rays := flag.Int("rays", 32, "rays per side of the camera fan")
	presetDir := flag.String("presets", "", "directory of JSON terrain presets")
	presetName := flag.String("preset", "", "preset to build instead of the reference scene")
	flag.Parse()

	var rnd *rand.Rand
	if *seed != 0 {
		rnd = rand.New(rand.NewSource(*seed))
	}
	field := noise.NewField(rnd)

	params, octaves, err := loadParams(*presetDir, *presetName, *randomize)
	if err != nil {
		log.Fatalf("load params: %v", err)
	}
	if octaves < noise.MinOctaves || octaves > noise.MaxOctaves || 1<<octaves != field.Size() {
		if err := field.SetOctaves(octaves); err != nil {
			log.Fatalf("noise octaves: %v", err)
		}
	}

	mesh, err := terrain.Build(field, params)
	if err != nil {
		log.Fatalf("%v", err)
	}
	sx, sy := mesh.GridSize()
	log.Printf("Built terrain: %dx%d samples, %d triangles", sx, sy, mesh.TriangleCount())

	probeX, probeY := -3.0, -2.0
	log.Printf("HeightAt(%g, %g) = %.4f (highest %.4f)",
		probeX, probeY, mesh.HeightAt(probeX, probeY), mesh.HighestHeightAt(probeX, probeY))

	castCameraFan(mesh, *rays)
	scatterProbes(mesh)

	log.Printf("Ray-triangle tests: %d", profiling.Counters()["terrain.RayTriangleTests"])
	log.Printf("Top tasks: %s", profiling.TopN(5))
}

func loadParams(dir, name string, randomize bool) (terrain.Params, int, error) {
	if name == "" {
		p := terrain.DefaultParams(-10, 10, -10, 10, 0, 10)
		p.Randomize = randomize
		return p, config.GetNoiseOctaves(), nil
	}
	pr, err := preset.NewLoader(dir).Load(name)
	if err != nil {
		return terrain.Params{}, 0, err
	}
	p, err := pr.Params()
	if err != nil {
		return terrain.Params{}, 0, err
	}
	return p, pr.Octaves(), nil
}

// castCameraFan shoots an n x n grid of rays through the camera's field of
// view and reports how many hit terrain and how many land on seams.
func castCameraFan(mesh *terrain.Mesh, n int) {
	if n < 1 {
		return
	}

	forward := cameraDir.Normalize()
	right := forward.Cross(mgl64.Vec3{0, 1, 0}).Normalize()
	upv := right.Cross(forward)
	halfWidth := math.Tan(mgl64.DegToRad(cameraFovDeg) / 2)

	rays := make([]terrain.Ray, 0, n*n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			sx := (2*(float64(i)+0.5)/float64(n) - 1) * halfWidth
			sy := (2*(float64(j)+0.5)/float64(n) - 1) * halfWidth
			dir := forward.Add(right.Mul(sx)).Add(upv.Mul(sy))
			rays = append(rays, terrain.Ray{Origin: cameraPos, Direction: dir})
		}
	}

	start := time.Now()
	results, err := mesh.IntersectAll(rays)
	if err != nil {
		log.Printf("camera fan: %v", err)
		return
	}

	hitRays, seamRays := 0, 0
	nearest := math.Inf(1)
	for _, hits := range results {
		if len(hits) == 0 {
			continue
		}
		hitRays++
		if hits[0].OnEdge() {
			seamRays++
		}
		nearest = math.Min(nearest, hits[0].Distance)
	}
	log.Printf("Camera fan: %d/%d rays hit, %d on seams, nearest t=%.3f (%v)",
		hitRays, len(rays), seamRays, nearest, time.Since(start))
}

// scatterProbes samples heights at reproducible points inside a disk around
// the terrain center, the way object placement would.
func scatterProbes(mesh *terrain.Mesh) {
	seq := random.NewSequence()
	offset := geom.SetLength(geom.RotateRandomY(mgl64.Vec3{1, 0, 0}, seq), 2)

	points := make([][2]float64, 16)
	for i := range points {
		p := geom.RandomPointInDiskUniform(8, seq).Add(offset)
		points[i] = [2]float64{p.X(), p.Z()}
	}
	heights := mesh.HeightsAt(points)

	lo, hi := math.Inf(1), math.Inf(-1)
	for _, h := range heights {
		if math.IsInf(h, -1) {
			continue
		}
		lo = math.Min(lo, h)
		hi = math.Max(hi, h)
	}
	log.Printf("Scatter probes: %d points, heights in [%.3f, %.3f]", len(points), lo, hi)
}
