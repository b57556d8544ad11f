// Package lighting holds the light source and material lighting presets
// uploaded to the scene shader.
package lighting

import "github.com/go-gl/mathgl/mgl32"

// Light is the single scene light.
type Light struct {
	Position mgl32.Vec3
	Color    mgl32.Vec3
}

// DefaultLight is a white light high above the origin.
func DefaultLight() Light {
	return Light{
		Position: mgl32.Vec3{0, 500, 0},
		Color:    mgl32.Vec3{1, 1, 1},
	}
}

// Preset sets how strongly a group of objects reacts to the light.
type Preset struct {
	Name     string
	Ambient  float32
	Specular float32
	// Color overrides the light color while the preset is active.
	Color mgl32.Vec3
}

// Enhanced makes hero objects (ships, aliens) stand out.
func Enhanced() Preset {
	return Preset{Name: "enhanced", Ambient: 0.7, Specular: 1.5, Color: mgl32.Vec3{2.2, 2.2, 2.2}}
}

// Normal is used for terrain and props.
func Normal(light Light) Preset {
	return Preset{Name: "normal", Ambient: 0.2, Specular: 0.5, Color: light.Color}
}

// Dim darkens props in enclosed scenes.
func Dim(light Light) Preset {
	return Preset{Name: "dim", Ambient: 0.1, Specular: 0.3, Color: light.Color}
}
