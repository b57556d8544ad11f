// Package shaders provides embedded GLSL shader sources.
package shaders

import _ "embed"

// SceneVertexShader transforms lit, textured meshes.
//
//go:embed scene.vert
var SceneVertexShader string

// SceneFragmentShader applies Phong lighting with the active preset.
//
//go:embed scene.frag
var SceneFragmentShader string

// SunVertexShader is used for stars and debug lines.
//
//go:embed sun.vert
var SunVertexShader string

// SunFragmentShader outputs a flat color.
//
//go:embed sun.frag
var SunFragmentShader string
