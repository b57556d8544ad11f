// Package gfx declares the opaque handles exchanged between gameplay code and
// the OpenGL backend. It has no cgo dependencies so gameplay packages and
// their tests never link against GL.
package gfx

import "github.com/go-gl/mathgl/mgl32"

// TextureID is a GPU texture handle. Zero means "no texture".
type TextureID uint32

// Texture sampler slots understood by the scene shader.
const (
	SlotDiffuse = "texture_diffuse"
	SlotNormal  = "texture_normal"
)

// TextureBinding binds a texture to a named sampler slot.
type TextureBinding struct {
	ID   TextureID
	Slot string
}

// Vertex is the interleaved vertex layout uploaded to the GPU.
type Vertex struct {
	Position mgl32.Vec3
	Normal   mgl32.Vec3
	TexCoord mgl32.Vec2
}

// MeshData is CPU-side geometry ready for upload.
type MeshData struct {
	Vertices []Vertex
	Indices  []uint32
}

// Primitive selects how a mesh's indices are drawn.
type Primitive int

const (
	Triangles Primitive = iota
	Points
)

// Drawable is an uploaded mesh.
type Drawable interface {
	// SetTextures replaces the mesh's texture bindings.
	SetTextures(textures []TextureBinding)
	// Textures returns the current bindings.
	Textures() []TextureBinding
	// IndexCount returns the number of indices drawn.
	IndexCount() int
}

// Backend creates GPU resources. The OpenGL renderer implements it.
type Backend interface {
	// LoadTexture decodes the image at path and uploads it.
	LoadTexture(path string) (TextureID, error)
	// UploadMesh creates a drawable from geometry.
	UploadMesh(data MeshData, prim Primitive, textures []TextureBinding) (Drawable, error)
}
