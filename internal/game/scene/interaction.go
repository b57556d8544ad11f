package scene

import (
	gomath "math"

	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"

	"github.com/Faultbox/varkon/internal/engine/camera"
	"github.com/Faultbox/varkon/internal/game/entity"
	"github.com/Faultbox/varkon/internal/logger"
)

// AlienReach is how close the player must be to interact with an alien.
const AlienReach = 15

// Bag placement relative to the camera while carried.
const (
	bagForward = 2.5
	bagRight   = 0.8
	bagDown    = 1.2
)

// Portal marker animation.
const (
	portalSpinDegPerSec = 45
	portalBobAmplitude  = 1.5
	portalBobSpeed      = 2
)

// Ground tiling.
const (
	GroundTileSize = 400
	GroundHeight   = -10
)

// IsPlayerNearAlien reports whether any alien is within AlienReach of pos.
func (m *Manager) IsPlayerNearAlien(pos mgl32.Vec3) bool {
	for _, a := range m.aliens {
		if pos.Sub(a.Position).Len() < AlienReach {
			return true
		}
	}
	return false
}

// IsBagGrabbed reports whether the player carries the bag.
func (m *Manager) IsBagGrabbed() bool {
	return m.bagGrabbed
}

// Bag returns the bag object, or nil if the scene has none.
func (m *Manager) Bag() *entity.Object {
	return m.bag
}

// GrabBag attaches the bag to the player. It returns false when there is
// no bag or it is already carried.
func (m *Manager) GrabBag() bool {
	if m.bag == nil || m.bagGrabbed {
		return false
	}
	m.bagGrabbed = true
	logger.Info("bag grabbed", zap.Int("scene", m.currentScene))
	return true
}

// UpdateBagFollowCamera keeps a carried bag in front of the camera.
func (m *Manager) UpdateBagFollowCamera(cam *camera.FPSCamera) {
	if m.bag == nil || !m.bagGrabbed {
		return
	}
	m.bag.Position = cam.Position.
		Add(cam.Front.Mul(bagForward)).
		Add(cam.Right.Mul(bagRight)).
		Sub(cam.Up.Mul(bagDown))
	m.bag.Rotation = mgl32.Vec3{0, -cam.Yaw - 90, 0}
}

// UpdatePortalAnimation spins the portal markers and bobs them around
// their placed height. t is seconds since start.
func (m *Manager) UpdatePortalAnimation(t float64) {
	spin := float32(gomath.Mod(t*portalSpinDegPerSec, 360))
	bob := float32(gomath.Sin(t*portalBobSpeed)) * portalBobAmplitude

	for i, p := range m.portalMarkers {
		base := m.portalBase[i]
		p.Rotation = mgl32.Vec3{0, spin, 0}
		p.Position = mgl32.Vec3{base.X(), base.Y() + bob, base.Z()}
	}
}

// GroundTiles returns the translations of the 3x3 ground tiles centered on
// the tile under pos.
func GroundTiles(pos mgl32.Vec3) [9]mgl32.Vec3 {
	tileX := float32(gomath.Floor(float64(pos.X() / GroundTileSize)))
	tileZ := float32(gomath.Floor(float64(pos.Z() / GroundTileSize)))

	var out [9]mgl32.Vec3
	i := 0
	for x := float32(-1); x <= 1; x++ {
		for z := float32(-1); z <= 1; z++ {
			out[i] = mgl32.Vec3{(tileX + x) * GroundTileSize, GroundHeight, (tileZ + z) * GroundTileSize}
			i++
		}
	}
	return out
}
