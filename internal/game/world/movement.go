package world

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/Faultbox/varkon/internal/engine/camera"
	"github.com/Faultbox/varkon/internal/engine/collision"
)

// MovementController turns movement input into a collision-checked camera
// position.
type MovementController struct {
	camera    *camera.FPSCamera
	colliders *collision.System

	Speed      float32 // units per second
	Radius     float32 // player probe radius
	Iterations int     // push-out iterations before a move is rejected
}

// NewMovementController creates a movement controller.
func NewMovementController(cam *camera.FPSCamera, colliders *collision.System, speed, radius float32, iterations int) *MovementController {
	return &MovementController{
		camera:     cam,
		colliders:  colliders,
		Speed:      speed,
		Radius:     radius,
		Iterations: iterations,
	}
}

func axis(pos, neg bool) float32 {
	switch {
	case pos && !neg:
		return 1
	case neg && !pos:
		return -1
	default:
		return 0
	}
}

// Desired returns where the controls would take the camera this frame,
// before collision. Horizontal movement keeps altitude, vertical movement
// is applied separately and the result is clamped to the floor.
func (mc *MovementController) Desired(c Controls, dt float32) mgl32.Vec3 {
	amount := mc.Speed * dt
	pos := mc.camera.Position.Add(mc.camera.PlanarDelta(
		axis(c.Forward, c.Back),
		axis(c.Right, c.Left),
		amount))
	pos[1] += axis(c.Up, c.Down) * amount
	return mc.camera.ClampToFloor(pos)
}

// Update moves the camera according to the controls. It returns false when
// the move was rejected because the player stayed stuck in scenery.
func (mc *MovementController) Update(c Controls, dt float32) bool {
	from := mc.camera.Position
	to := mc.Desired(c, dt)
	if to == from {
		return true
	}

	pos, ok := mc.colliders.ResolveMoveConstrained(from, to, mc.Radius, mc.Iterations, mc.camera.ClampToFloor)
	mc.camera.SetPosition(pos)
	return ok
}
