package mesh

import (
	gomath "math"
	"math/rand/v2"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/Faultbox/varkon/internal/engine/gfx"
)

// starSeed keeps the sky identical between runs.
const starSeed = 42

// StarField scatters count points uniformly in a cube of side spaceSize
// centered on the origin. Drawn as points.
func StarField(count int, spaceSize float32) gfx.MeshData {
	rng := rand.New(rand.NewPCG(starSeed, 0))
	data := gfx.MeshData{
		Vertices: make([]gfx.Vertex, 0, count),
		Indices:  make([]uint32, 0, count),
	}

	for i := 0; i < count; i++ {
		pos := mgl32.Vec3{
			(rng.Float32() - 0.5) * spaceSize,
			(rng.Float32() - 0.5) * spaceSize,
			(rng.Float32() - 0.5) * spaceSize,
		}
		data.Vertices = append(data.Vertices, gfx.Vertex{
			Position: pos,
			Normal:   mgl32.Vec3{0, 1, 0},
		})
		data.Indices = append(data.Indices, uint32(i))
	}
	return data
}

// GroundGridSize is the number of quads along each side of the ground mesh.
const GroundGridSize = 20

// Ground builds a square grid spanning [-halfSize, halfSize] on X and Z with
// a slight downward curvature away from the center. Texture coordinates
// repeat twice per cell.
func Ground(halfSize float32) gfx.MeshData {
	const n = GroundGridSize
	step := halfSize * 2 / n

	data := gfx.MeshData{
		Vertices: make([]gfx.Vertex, 0, (n+1)*(n+1)),
		Indices:  make([]uint32, 0, n*n*6),
	}

	for z := 0; z <= n; z++ {
		for x := 0; x <= n; x++ {
			xPos := -halfSize + float32(x)*step
			zPos := -halfSize + float32(z)*step
			dist := float32(gomath.Sqrt(float64(xPos*xPos + zPos*zPos)))

			data.Vertices = append(data.Vertices, gfx.Vertex{
				Position: mgl32.Vec3{xPos, -dist * dist * 0.0001, zPos},
				Normal:   mgl32.Vec3{0, 1, 0},
				TexCoord: mgl32.Vec2{float32(x) * 2, float32(z) * 2},
			})
		}
	}

	for z := 0; z < n; z++ {
		for x := 0; x < n; x++ {
			tl := uint32(z*(n+1) + x)
			tr := tl + 1
			bl := uint32((z+1)*(n+1) + x)
			br := bl + 1
			data.Indices = append(data.Indices, tl, bl, tr, tr, bl, br)
		}
	}
	return data
}

// Box builds an axis-aligned box of the given half extents centered on the
// origin, used for the projectile tracer.
func Box(halfX, halfY, halfZ float32) gfx.MeshData {
	type face struct {
		normal mgl32.Vec3
		corner [4]mgl32.Vec3
	}
	faces := []face{
		{mgl32.Vec3{0, 0, 1}, [4]mgl32.Vec3{{-halfX, -halfY, halfZ}, {halfX, -halfY, halfZ}, {halfX, halfY, halfZ}, {-halfX, halfY, halfZ}}},
		{mgl32.Vec3{0, 0, -1}, [4]mgl32.Vec3{{halfX, -halfY, -halfZ}, {-halfX, -halfY, -halfZ}, {-halfX, halfY, -halfZ}, {halfX, halfY, -halfZ}}},
		{mgl32.Vec3{-1, 0, 0}, [4]mgl32.Vec3{{-halfX, -halfY, -halfZ}, {-halfX, -halfY, halfZ}, {-halfX, halfY, halfZ}, {-halfX, halfY, -halfZ}}},
		{mgl32.Vec3{1, 0, 0}, [4]mgl32.Vec3{{halfX, -halfY, halfZ}, {halfX, -halfY, -halfZ}, {halfX, halfY, -halfZ}, {halfX, halfY, halfZ}}},
		{mgl32.Vec3{0, 1, 0}, [4]mgl32.Vec3{{-halfX, halfY, halfZ}, {halfX, halfY, halfZ}, {halfX, halfY, -halfZ}, {-halfX, halfY, -halfZ}}},
		{mgl32.Vec3{0, -1, 0}, [4]mgl32.Vec3{{-halfX, -halfY, -halfZ}, {halfX, -halfY, -halfZ}, {halfX, -halfY, halfZ}, {-halfX, -halfY, halfZ}}},
	}

	var data gfx.MeshData
	for _, f := range faces {
		base := uint32(len(data.Vertices))
		for _, c := range f.corner {
			data.Vertices = append(data.Vertices, gfx.Vertex{Position: c, Normal: f.normal})
		}
		data.Indices = append(data.Indices, base, base+1, base+2, base+2, base+3, base)
	}
	return data
}
