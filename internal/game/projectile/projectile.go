// Package projectile spawns, advances and expires projectiles.
package projectile

import "github.com/go-gl/mathgl/mgl32"

// Kind distinguishes projectile behaviour.
type Kind uint8

const (
	KindBullet Kind = iota
	KindPlasma
)

func (k Kind) String() string {
	switch k {
	case KindBullet:
		return "bullet"
	case KindPlasma:
		return "plasma"
	default:
		return "unknown"
	}
}

// Defaults.
const (
	BulletSpeed       = 100
	BulletMaxLifetime = 5
	PlasmaSpeed       = 60
	PlasmaMaxLifetime = 5
	PlasmaRadius      = 0.5
	// PlasmaMaxDistance is the distance from the world origin beyond which
	// plasma is discarded.
	PlasmaMaxDistance = 1000
)

// Projectile travels in a straight line until it expires.
type Projectile struct {
	Kind      Kind
	Position  mgl32.Vec3
	Direction mgl32.Vec3 // unit length
	Speed     float32
	Radius    float32

	Lifetime    float32 // seconds elapsed
	MaxLifetime float32

	active bool
}

// New creates an active projectile. dir is normalized; a zero dir fires
// down -Z.
func New(kind Kind, origin, dir mgl32.Vec3, speed, maxLifetime float32) *Projectile {
	if dir.Len() == 0 {
		dir = mgl32.Vec3{0, 0, -1}
	}
	return &Projectile{
		Kind:        kind,
		Position:    origin,
		Direction:   dir.Normalize(),
		Speed:       speed,
		MaxLifetime: maxLifetime,
		active:      true,
	}
}

// NewBullet creates a bullet with default speed and lifetime.
func NewBullet(origin, dir mgl32.Vec3) *Projectile {
	return New(KindBullet, origin, dir, BulletSpeed, BulletMaxLifetime)
}

// NewPlasma creates a plasma ball with default speed, lifetime and radius.
func NewPlasma(origin, dir mgl32.Vec3) *Projectile {
	p := New(KindPlasma, origin, dir, PlasmaSpeed, PlasmaMaxLifetime)
	p.Radius = PlasmaRadius
	return p
}

// Active reports whether the projectile is still alive.
func (p *Projectile) Active() bool {
	return p.active
}

// Velocity returns direction * speed.
func (p *Projectile) Velocity() mgl32.Vec3 {
	return p.Direction.Mul(p.Speed)
}

// Update integrates position and expires the projectile.
func (p *Projectile) Update(dt float32) {
	if !p.active {
		return
	}

	p.Position = p.Position.Add(p.Velocity().Mul(dt))
	p.Lifetime += dt

	if p.Lifetime >= p.MaxLifetime {
		p.active = false
		return
	}
	if p.Kind == KindPlasma && p.Position.Len() > PlasmaMaxDistance {
		p.active = false
	}
}

// ModelMatrix places the projectile and turns its local -Z axis along the
// direction of travel.
func (p *Projectile) ModelMatrix() mgl32.Mat4 {
	up := mgl32.Vec3{0, 1, 0}
	right := up.Cross(p.Direction)
	if right.Len() < 0.01 {
		right = mgl32.Vec3{1, 0, 0}
	} else {
		right = right.Normalize()
	}
	newUp := p.Direction.Cross(right).Normalize()
	back := p.Direction.Mul(-1)

	rot := mgl32.Mat4FromCols(
		right.Vec4(0),
		newUp.Vec4(0),
		back.Vec4(0),
		mgl32.Vec4{0, 0, 0, 1},
	)
	m := mgl32.Translate3D(p.Position.X(), p.Position.Y(), p.Position.Z()).Mul4(rot)
	if p.Radius > 0 {
		m = m.Mul4(mgl32.Scale3D(p.Radius, p.Radius, p.Radius))
	}
	return m
}
