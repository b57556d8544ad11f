// Package debug provides debug visualization utilities.
package debug

import (
	gomath "math"

	"github.com/go-gl/mathgl/mgl32"
)

// DefaultSphereSegments is the number of line segments per circle.
const DefaultSphereSegments = 24

// SphereWireframeVertexCount returns the vertex count produced by
// GenerateSphereWireframeVertices (3 circles × segments × 2 endpoints).
func SphereWireframeVertexCount(segments int) int {
	return 3 * segments * 2
}

// GenerateSphereWireframeVertices creates line vertices for three great
// circles (XY, XZ and YZ planes) of a sphere.
// Format: [x, y, z] per vertex, consecutive pairs form one line.
func GenerateSphereWireframeVertices(center mgl32.Vec3, radius float32, segments int) []float32 {
	if segments < 3 {
		segments = 3
	}
	out := make([]float32, 0, SphereWireframeVertexCount(segments)*3)

	point := func(plane, i int) mgl32.Vec3 {
		a := 2 * gomath.Pi * float64(i) / float64(segments)
		c := radius * float32(gomath.Cos(a))
		s := radius * float32(gomath.Sin(a))
		switch plane {
		case 0:
			return center.Add(mgl32.Vec3{c, s, 0})
		case 1:
			return center.Add(mgl32.Vec3{c, 0, s})
		default:
			return center.Add(mgl32.Vec3{0, c, s})
		}
	}

	for plane := 0; plane < 3; plane++ {
		for i := 0; i < segments; i++ {
			a := point(plane, i)
			b := point(plane, i+1)
			out = append(out, a[0], a[1], a[2], b[0], b[1], b[2])
		}
	}
	return out
}
