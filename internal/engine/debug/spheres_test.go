package debug

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateSphereWireframeVertices(t *testing.T) {
	center := mgl32.Vec3{10, -5, 3}
	const radius = 4

	verts := GenerateSphereWireframeVertices(center, radius, 16)
	require.Len(t, verts, SphereWireframeVertexCount(16)*3)

	for i := 0; i < len(verts); i += 3 {
		p := mgl32.Vec3{verts[i], verts[i+1], verts[i+2]}
		assert.InDelta(t, radius, p.Sub(center).Len(), 1e-4, "vertex %d", i/3)
	}
}

func TestGenerateSphereWireframeMinSegments(t *testing.T) {
	verts := GenerateSphereWireframeVertices(mgl32.Vec3{}, 1, 1)
	assert.Len(t, verts, SphereWireframeVertexCount(3)*3)
}

func TestCirclesAreClosed(t *testing.T) {
	const segments = 8
	verts := GenerateSphereWireframeVertices(mgl32.Vec3{}, 2, segments)

	// The last segment of the first circle ends where its first segment starts.
	perCircle := segments * 6
	first := mgl32.Vec3{verts[0], verts[1], verts[2]}
	last := mgl32.Vec3{verts[perCircle-3], verts[perCircle-2], verts[perCircle-1]}
	assertVecNear(t, last, first, 1e-5)
}

// assertVecNear compares component-wise with an absolute tolerance.
func assertVecNear(t *testing.T, want, got mgl32.Vec3, delta float64) {
	t.Helper()
	for i := range want {
		assert.InDelta(t, want[i], got[i], delta, "component %d: want %v, got %v", i, want, got)
	}
}
