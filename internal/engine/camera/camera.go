// Package camera provides the first-person camera used by the player.
package camera

import (
	gomath "math"

	"github.com/go-gl/mathgl/mgl32"
)

// Pitch limits in degrees. Looking straight up or down would flip the view.
const (
	MinPitch = -89.0
	MaxPitch = 89.0
)

var worldUp = mgl32.Vec3{0, 1, 0}

// FPSCamera is a yaw/pitch camera that walks on a flat ground plane.
type FPSCamera struct {
	Position mgl32.Vec3
	Front    mgl32.Vec3
	Right    mgl32.Vec3
	Up       mgl32.Vec3

	// Angles in degrees
	Yaw   float32
	Pitch float32

	Sensitivity float32
	InvertY     bool

	// The camera never goes below GroundHeight + EyeHeight.
	GroundHeight float32
	EyeHeight    float32

	// Projection
	Fov    float32 // Vertical field of view, degrees
	Aspect float32
	Near   float32
	Far    float32
}

// NewFPSCamera creates a camera at position looking down -Z.
func NewFPSCamera(position mgl32.Vec3) *FPSCamera {
	c := &FPSCamera{
		Position:     position,
		Yaw:          -90.0,
		Pitch:        0.0,
		Sensitivity:  0.1,
		GroundHeight: -10.0,
		EyeHeight:    1.7,
		Fov:          60.0,
		Aspect:       16.0 / 9.0,
		Near:         0.1,
		Far:          10000.0,
	}
	c.updateVectors()
	c.clampToGround()
	return c
}

// NewDefaultFPSCamera creates a camera at the spawn point.
func NewDefaultFPSCamera() *FPSCamera {
	return NewFPSCamera(mgl32.Vec3{0, 5, 0})
}

// Floor returns the lowest allowed camera height.
func (c *FPSCamera) Floor() float32 {
	return c.GroundHeight + c.EyeHeight
}

func (c *FPSCamera) updateVectors() {
	yaw := float64(mgl32.DegToRad(c.Yaw))
	pitch := float64(mgl32.DegToRad(c.Pitch))

	front := mgl32.Vec3{
		float32(gomath.Cos(yaw) * gomath.Cos(pitch)),
		float32(gomath.Sin(pitch)),
		float32(gomath.Sin(yaw) * gomath.Cos(pitch)),
	}

	c.Front = front.Normalize()
	c.Right = c.Front.Cross(worldUp).Normalize()
	c.Up = c.Right.Cross(c.Front).Normalize()
}

func (c *FPSCamera) clampToGround() {
	if floor := c.Floor(); c.Position[1] < floor {
		c.Position[1] = floor
	}
}

// ClampToFloor returns p raised to the camera floor if it is below it.
func (c *FPSCamera) ClampToFloor(p mgl32.Vec3) mgl32.Vec3 {
	if floor := c.Floor(); p[1] < floor {
		p[1] = floor
	}
	return p
}

// groundFront is Front flattened onto the XZ plane.
func (c *FPSCamera) groundFront() mgl32.Vec3 {
	return flatten(c.Front)
}

// groundRight is Right flattened onto the XZ plane.
func (c *FPSCamera) groundRight() mgl32.Vec3 {
	return flatten(c.Right)
}

func flatten(v mgl32.Vec3) mgl32.Vec3 {
	v[1] = 0
	if v.Len() < 1e-6 {
		return mgl32.Vec3{}
	}
	return v.Normalize()
}

// PlanarDelta returns the horizontal displacement for the given forward and
// right inputs (each typically -1, 0 or 1) scaled by amount. The result
// always has a zero Y component.
func (c *FPSCamera) PlanarDelta(forward, right, amount float32) mgl32.Vec3 {
	delta := c.groundFront().Mul(forward).Add(c.groundRight().Mul(right))
	return delta.Mul(amount)
}

// MoveFront moves forward along the ground.
func (c *FPSCamera) MoveFront(amount float32) {
	c.Position = c.Position.Add(c.groundFront().Mul(amount))
	c.clampToGround()
}

// MoveBack moves backward along the ground.
func (c *FPSCamera) MoveBack(amount float32) {
	c.Position = c.Position.Sub(c.groundFront().Mul(amount))
	c.clampToGround()
}

// MoveLeft strafes left along the ground.
func (c *FPSCamera) MoveLeft(amount float32) {
	c.Position = c.Position.Sub(c.groundRight().Mul(amount))
	c.clampToGround()
}

// MoveRight strafes right along the ground.
func (c *FPSCamera) MoveRight(amount float32) {
	c.Position = c.Position.Add(c.groundRight().Mul(amount))
	c.clampToGround()
}

// MoveUp rises vertically. There is no ceiling.
func (c *FPSCamera) MoveUp(amount float32) {
	c.Position[1] += amount
}

// MoveDown sinks vertically, stopping at the floor.
func (c *FPSCamera) MoveDown(amount float32) {
	c.Position[1] -= amount
	c.clampToGround()
}

// SetPosition commits a new position, clamped to the floor.
func (c *FPSCamera) SetPosition(p mgl32.Vec3) {
	c.Position = p
	c.clampToGround()
}

// ProcessMouseMovement applies a mouse delta in pixels.
func (c *FPSCamera) ProcessMouseMovement(dx, dy float32) {
	dx *= c.Sensitivity
	dy *= c.Sensitivity
	if c.InvertY {
		dy = -dy
	}

	c.Yaw += dx
	c.Pitch = mgl32.Clamp(c.Pitch+dy, MinPitch, MaxPitch)

	c.updateVectors()
}

// ViewMatrix returns the view matrix for the current orientation.
func (c *FPSCamera) ViewMatrix() mgl32.Mat4 {
	return mgl32.LookAtV(c.Position, c.Position.Add(c.Front), c.Up)
}

// ProjectionMatrix returns the perspective projection.
func (c *FPSCamera) ProjectionMatrix() mgl32.Mat4 {
	return mgl32.Perspective(mgl32.DegToRad(c.Fov), c.Aspect, c.Near, c.Far)
}

// SetViewport updates the aspect ratio from a framebuffer size.
func (c *FPSCamera) SetViewport(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	c.Aspect = float32(width) / float32(height)
}
