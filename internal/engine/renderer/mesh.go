package renderer

import (
	"errors"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"
	"go.uber.org/zap"

	"github.com/Faultbox/varkon/internal/engine/gfx"
	"github.com/Faultbox/varkon/internal/engine/shader"
	"github.com/Faultbox/varkon/internal/engine/texture"
	"github.com/Faultbox/varkon/internal/logger"
)

const vertexStride = int32(unsafe.Sizeof(gfx.Vertex{}))

// gpuMesh is an uploaded vertex/index buffer pair.
type gpuMesh struct {
	vao, vbo, ebo uint32
	count         int32
	prim          gfx.Primitive
	textures      []gfx.TextureBinding
}

func (m *gpuMesh) SetTextures(t []gfx.TextureBinding) { m.textures = t }
func (m *gpuMesh) Textures() []gfx.TextureBinding     { return m.textures }
func (m *gpuMesh) IndexCount() int                    { return int(m.count) }

func (m *gpuMesh) delete() {
	gl.DeleteVertexArrays(1, &m.vao)
	gl.DeleteBuffers(1, &m.vbo)
	gl.DeleteBuffers(1, &m.ebo)
}

// bindTextures binds diffuse to unit 0 and normal to unit 1 and reports
// whether a diffuse texture is present.
func (m *gpuMesh) bindTextures(p *shader.Program) bool {
	hasDiffuse := false
	for _, t := range m.textures {
		unit := int32(0)
		if t.Slot == gfx.SlotNormal {
			unit = 1
		} else {
			hasDiffuse = true
		}
		gl.ActiveTexture(gl.TEXTURE0 + uint32(unit))
		gl.BindTexture(gl.TEXTURE_2D, uint32(t.ID))
		p.SetInt(t.Slot, unit)
	}
	gl.ActiveTexture(gl.TEXTURE0)
	return hasDiffuse
}

func (m *gpuMesh) draw() {
	mode := uint32(gl.TRIANGLES)
	if m.prim == gfx.Points {
		mode = gl.POINTS
	}
	gl.BindVertexArray(m.vao)
	gl.DrawElements(mode, m.count, gl.UNSIGNED_INT, nil)
	gl.BindVertexArray(0)
}

// UploadMesh creates VAO/VBO/EBO for the geometry.
func (r *Renderer) UploadMesh(data gfx.MeshData, prim gfx.Primitive, textures []gfx.TextureBinding) (gfx.Drawable, error) {
	if len(data.Vertices) == 0 || len(data.Indices) == 0 {
		return nil, errors.New("empty mesh")
	}

	m := &gpuMesh{
		count:    int32(len(data.Indices)),
		prim:     prim,
		textures: textures,
	}

	gl.GenVertexArrays(1, &m.vao)
	gl.BindVertexArray(m.vao)

	gl.GenBuffers(1, &m.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, m.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(data.Vertices)*int(vertexStride), gl.Ptr(data.Vertices), gl.STATIC_DRAW)

	gl.GenBuffers(1, &m.ebo)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, m.ebo)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(data.Indices)*4, gl.Ptr(data.Indices), gl.STATIC_DRAW)

	// Position (location = 0)
	gl.VertexAttribPointerWithOffset(0, 3, gl.FLOAT, false, vertexStride, unsafe.Offsetof(gfx.Vertex{}.Position))
	gl.EnableVertexAttribArray(0)
	// Normal (location = 1)
	gl.VertexAttribPointerWithOffset(1, 3, gl.FLOAT, false, vertexStride, unsafe.Offsetof(gfx.Vertex{}.Normal))
	gl.EnableVertexAttribArray(1)
	// TexCoord (location = 2)
	gl.VertexAttribPointerWithOffset(2, 2, gl.FLOAT, false, vertexStride, unsafe.Offsetof(gfx.Vertex{}.TexCoord))
	gl.EnableVertexAttribArray(2)

	gl.BindVertexArray(0)

	r.meshes = append(r.meshes, m)
	return m, nil
}

// LoadTexture decodes a BMP file and uploads it with mipmaps.
func (r *Renderer) LoadTexture(path string) (gfx.TextureID, error) {
	px, err := texture.LoadBMP(path)
	if err != nil {
		return 0, err
	}
	if px.Width == 0 || px.Height == 0 {
		return 0, errors.New("empty texture")
	}

	var id uint32
	gl.GenTextures(1, &id)
	gl.BindTexture(gl.TEXTURE_2D, id)

	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.REPEAT)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.REPEAT)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR_MIPMAP_LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)

	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA8, int32(px.Width), int32(px.Height), 0,
		gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(px.RGBA))
	gl.GenerateMipmap(gl.TEXTURE_2D)
	gl.BindTexture(gl.TEXTURE_2D, 0)

	r.textures = append(r.textures, id)
	logger.Debug("texture uploaded",
		zap.String("path", path),
		zap.Int("width", px.Width),
		zap.Int("height", px.Height))
	return gfx.TextureID(id), nil
}
