// Package weapon positions the first-person gun relative to the camera.
package weapon

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/Faultbox/varkon/internal/engine/camera"
	"github.com/Faultbox/varkon/internal/engine/gfx"
)

// Default view-model placement in camera space.
const (
	DefaultRight   = 0.6
	DefaultDown    = 0.5
	DefaultForward = 1.2
	DefaultScale   = 0.2

	// Recoil pushes the gun back by this much right after a shot and
	// recovers at recoilRecovery units per second.
	recoilKick     = 0.15
	recoilRecovery = 1.5
)

// ViewModel is the gun drawn in front of the camera.
type ViewModel struct {
	Mesh gfx.Drawable

	Right   float32
	Down    float32
	Forward float32
	Scale   float32

	recoil float32
}

// NewViewModel creates a view model with the default placement.
func NewViewModel(mesh gfx.Drawable) *ViewModel {
	return &ViewModel{
		Mesh:    mesh,
		Right:   DefaultRight,
		Down:    DefaultDown,
		Forward: DefaultForward,
		Scale:   DefaultScale,
	}
}

// Position returns the gun position in world space.
func (v *ViewModel) Position(cam *camera.FPSCamera) mgl32.Vec3 {
	return cam.Position.
		Add(cam.Right.Mul(v.Right)).
		Sub(cam.Up.Mul(v.Down)).
		Add(cam.Front.Mul(v.Forward - v.recoil))
}

// Muzzle returns where projectiles spawn.
func (v *ViewModel) Muzzle(cam *camera.FPSCamera) mgl32.Vec3 {
	return v.Position(cam)
}

// ModelMatrix orients the gun's local -Z along the view direction.
func (v *ViewModel) ModelMatrix(cam *camera.FPSCamera) mgl32.Mat4 {
	p := v.Position(cam)
	rot := mgl32.Mat4FromCols(
		cam.Right.Vec4(0),
		cam.Up.Vec4(0),
		cam.Front.Mul(-1).Vec4(0),
		mgl32.Vec4{0, 0, 0, 1},
	)
	return mgl32.Translate3D(p.X(), p.Y(), p.Z()).
		Mul4(rot).
		Mul4(mgl32.Scale3D(v.Scale, v.Scale, v.Scale))
}

// Kick applies recoil after a shot.
func (v *ViewModel) Kick() {
	v.recoil = recoilKick
}

// Update recovers from recoil.
func (v *ViewModel) Update(dt float32) {
	if v.recoil <= 0 {
		return
	}
	v.recoil -= recoilRecovery * dt
	if v.recoil < 0 {
		v.recoil = 0
	}
}

// Recoil returns the current recoil offset.
func (v *ViewModel) Recoil() float32 {
	return v.recoil
}
