// Package entity implements placed scene objects.
package entity

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/Faultbox/varkon/internal/engine/gfx"
)

// Type represents the kind of scene object.
type Type uint8

const (
	TypeSpaceship Type = iota
	TypeAlien
	TypeCaveWall
	TypeRock
	TypeAsteroid
	TypePortalMarker
	TypeBag
	TypeWeapon
)

var typeNames = [...]string{
	TypeSpaceship:    "spaceship",
	TypeAlien:        "alien",
	TypeCaveWall:     "cave_wall",
	TypeRock:         "rock",
	TypeAsteroid:     "asteroid",
	TypePortalMarker: "portal_marker",
	TypeBag:          "bag",
	TypeWeapon:       "weapon",
}

func (t Type) String() string {
	if int(t) < len(typeNames) {
		return typeNames[t]
	}
	return "unknown"
}

// Object is a drawable placed in the world.
type Object struct {
	Type Type

	// Mesh may be nil when the asset failed to load; such objects are skipped
	// at draw time but still take part in gameplay.
	Mesh gfx.Drawable

	Position mgl32.Vec3
	Rotation mgl32.Vec3 // Euler angles in degrees
	Scale    mgl32.Vec3
}

// New creates an object with unit scale and no rotation.
func New(t Type, mesh gfx.Drawable, position mgl32.Vec3) *Object {
	return &Object{
		Type:     t,
		Mesh:     mesh,
		Position: position,
		Scale:    mgl32.Vec3{1, 1, 1},
	}
}

// NewTransformed creates an object with a full transform.
func NewTransformed(t Type, mesh gfx.Drawable, position, rotation, scale mgl32.Vec3) *Object {
	return &Object{
		Type:     t,
		Mesh:     mesh,
		Position: position,
		Rotation: rotation,
		Scale:    scale,
	}
}

// SetUniformScale sets the same scale on every axis.
func (o *Object) SetUniformScale(s float32) {
	o.Scale = mgl32.Vec3{s, s, s}
}

// Drawable reports whether the object has a mesh to draw.
func (o *Object) Drawable() bool {
	return o.Mesh != nil
}

// ModelMatrix returns translate * rotY * rotX * rotZ * scale.
func (o *Object) ModelMatrix() mgl32.Mat4 {
	m := mgl32.Translate3D(o.Position.X(), o.Position.Y(), o.Position.Z())
	m = m.Mul4(mgl32.HomogRotate3DY(mgl32.DegToRad(o.Rotation.Y())))
	m = m.Mul4(mgl32.HomogRotate3DX(mgl32.DegToRad(o.Rotation.X())))
	m = m.Mul4(mgl32.HomogRotate3DZ(mgl32.DegToRad(o.Rotation.Z())))
	return m.Mul4(mgl32.Scale3D(o.Scale.X(), o.Scale.Y(), o.Scale.Z()))
}

// MaxScale returns the largest scale component, used to size colliders.
func (o *Object) MaxScale() float32 {
	s := o.Scale.X()
	if o.Scale.Y() > s {
		s = o.Scale.Y()
	}
	if o.Scale.Z() > s {
		s = o.Scale.Z()
	}
	return s
}
