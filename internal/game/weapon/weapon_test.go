package weapon

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"

	"github.com/Faultbox/varkon/internal/engine/camera"
)

func TestMuzzleFollowsCamera(t *testing.T) {
	cam := camera.NewFPSCamera(mgl32.Vec3{0, 0, 0})
	v := NewViewModel(nil)

	// Default camera looks down -Z with +X to the right.
	want := mgl32.Vec3{DefaultRight, -DefaultDown, -DefaultForward}
	got := v.Muzzle(cam).Sub(cam.Position)
	assertVecNear(t, want, got, 1e-4)

	cam.ProcessMouseMovement(900, 0) // yaw -90 -> 0, now looking down +X
	want = mgl32.Vec3{DefaultForward, -DefaultDown, DefaultRight}
	got = v.Muzzle(cam).Sub(cam.Position)
	assertVecNear(t, want, got, 1e-4)
}

func TestModelMatrixAlignsWithView(t *testing.T) {
	cam := camera.NewFPSCamera(mgl32.Vec3{10, 0, 10})
	cam.ProcessMouseMovement(300, 150)
	v := NewViewModel(nil)

	m := v.ModelMatrix(cam)
	origin := m.Mul4x1(mgl32.Vec4{0, 0, 0, 1}).Vec3()
	tip := m.Mul4x1(mgl32.Vec4{0, 0, -1, 1}).Vec3()

	assertVecNear(t, v.Position(cam), origin, 1e-4)
	dir := tip.Sub(origin).Normalize()
	assertVecNear(t, cam.Front, dir, 1e-4)
}

func TestRecoil(t *testing.T) {
	cam := camera.NewFPSCamera(mgl32.Vec3{0, 0, 0})
	v := NewViewModel(nil)
	rest := v.Position(cam)

	v.Kick()
	kicked := v.Position(cam)
	assert.Greater(t, kicked.Z(), rest.Z(), "gun moves back towards the camera")

	v.Update(0.05)
	assert.Greater(t, v.Recoil(), float32(0))

	v.Update(1)
	assert.Zero(t, v.Recoil())
	assertVecNear(t, rest, v.Position(cam), 1e-5)
}

// assertVecNear compares component-wise with an absolute tolerance.
func assertVecNear(t *testing.T, want, got mgl32.Vec3, delta float64) {
	t.Helper()
	for i := range want {
		assert.InDelta(t, want[i], got[i], delta, "component %d: want %v, got %v", i, want, got)
	}
}
