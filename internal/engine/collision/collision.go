// Package collision provides sphere colliders and push-out resolution for
// keeping the player out of static scenery.
package collision

import (
	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"

	"github.com/Faultbox/varkon/internal/logger"
)

const (
	// PushMargin scales penetration depth so a resolved probe ends up just
	// outside the sphere instead of exactly on its surface.
	PushMargin = 1.1

	// degenerateDistance is the center distance below which the separating
	// direction is undefined and the probe is pushed straight up.
	degenerateDistance = 0.001
)

// Sphere is a static spherical collider.
type Sphere struct {
	Center mgl32.Vec3
	Radius float32
}

// System holds the static colliders of the current scene.
type System struct {
	spheres []Sphere
}

// NewSystem creates an empty collision system.
func NewSystem() *System {
	return &System{}
}

// AddSphere registers a static collider.
func (s *System) AddSphere(center mgl32.Vec3, radius float32) {
	s.spheres = append(s.spheres, Sphere{Center: center, Radius: radius})
	logger.Debug("collider added",
		zap.Float32("x", center.X()),
		zap.Float32("y", center.Y()),
		zap.Float32("z", center.Z()),
		zap.Float32("radius", radius))
}

// Clear removes all colliders.
func (s *System) Clear() {
	s.spheres = s.spheres[:0]
}

// Spheres returns the registered colliders. The slice must not be modified.
func (s *System) Spheres() []Sphere {
	return s.spheres
}

// Len returns the number of registered colliders.
func (s *System) Len() int {
	return len(s.spheres)
}

// SphereVsSphere tests two spheres for overlap. When they overlap it returns
// the displacement that moves the first sphere out of the second.
func SphereVsSphere(p1 mgl32.Vec3, r1 float32, p2 mgl32.Vec3, r2 float32) (mgl32.Vec3, bool) {
	diff := p1.Sub(p2)
	dist := diff.Len()
	minDist := r1 + r2

	if dist >= minDist {
		return mgl32.Vec3{}, false
	}

	if dist > degenerateDistance {
		penetration := minDist - dist
		return diff.Mul(1 / dist).Mul(penetration * PushMargin), true
	}

	// Centers coincide, no separating axis.
	return mgl32.Vec3{0, minDist, 0}, true
}

// CheckPlayer tests a player probe against every collider and returns the
// sum of all individual push-out vectors.
func (s *System) CheckPlayer(pos mgl32.Vec3, radius float32) (mgl32.Vec3, bool) {
	var push mgl32.Vec3
	hit := false

	for _, sphere := range s.spheres {
		local, ok := SphereVsSphere(pos, radius, sphere.Center, sphere.Radius)
		if !ok {
			continue
		}
		push = push.Add(local)
		hit = true
	}

	return push, hit
}

// Constraint adjusts a candidate probe position, e.g. to keep it above the
// floor. It is applied before every overlap test.
type Constraint func(mgl32.Vec3) mgl32.Vec3

// ResolveMove moves a probe of the given radius from one position towards
// another. Accumulated push-out is applied and the probe re-tested up to
// maxIterations times. If it still overlaps after that the move is rejected
// and from is returned with ok=false.
//
// Overlapping several spheres at once sums their push-outs, so this is not a
// convergent solver and can reject moves in tight corners.
func (s *System) ResolveMove(from, to mgl32.Vec3, radius float32, maxIterations int) (mgl32.Vec3, bool) {
	return s.ResolveMoveConstrained(from, to, radius, maxIterations, nil)
}

// ResolveMoveConstrained is ResolveMove with a constraint applied to the
// target and after every push-out, so the accepted position is one that
// satisfies the constraint and does not overlap.
func (s *System) ResolveMoveConstrained(from, to mgl32.Vec3, radius float32, maxIterations int, constrain Constraint) (mgl32.Vec3, bool) {
	if constrain == nil {
		constrain = func(p mgl32.Vec3) mgl32.Vec3 { return p }
	}

	pos := constrain(to)
	for i := 0; i < maxIterations; i++ {
		push, hit := s.CheckPlayer(pos, radius)
		if !hit {
			return pos, true
		}
		pos = constrain(pos.Add(push))
	}

	if _, hit := s.CheckPlayer(pos, radius); hit {
		logger.Debug("move rejected",
			zap.Int("iterations", maxIterations),
			zap.Float32("x", to.X()),
			zap.Float32("z", to.Z()))
		return from, false
	}
	return pos, true
}
