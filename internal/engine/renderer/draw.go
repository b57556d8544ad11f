package renderer

import (
	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/Faultbox/varkon/internal/engine/gfx"
	"github.com/Faultbox/varkon/internal/engine/lighting"
)

// Instance is a mesh placed with a model matrix.
type Instance struct {
	Mesh  gfx.Drawable
	Model mgl32.Mat4
}

// Colors for untextured geometry.
var (
	StarColor     = mgl32.Vec3{1, 1, 1}
	TracerColor   = mgl32.Vec3{1, 0.85, 0.3}
	PlasmaColor   = mgl32.Vec3{0.3, 0.8, 1}
	ColliderColor = mgl32.Vec3{0, 1, 0.2}
	TriggerColor  = mgl32.Vec3{1, 0.2, 0.9}
	untexturedRGB = mgl32.Vec3{0.6, 0.6, 0.6}
)

const starPointSize = 2.0

func asGPU(d gfx.Drawable) *gpuMesh {
	if d == nil {
		return nil
	}
	m, _ := d.(*gpuMesh)
	return m
}

// beginLit activates the scene program with the frame's camera and light.
func (r *Renderer) beginLit(f Frame) {
	r.scene.Use()
	r.scene.SetVec3("lightPos", f.LightPos)
	r.scene.SetVec3("viewPos", f.ViewPos)
}

func (r *Renderer) applyPreset(p lighting.Preset) {
	r.scene.SetFloat("ambientStrength", p.Ambient)
	r.scene.SetFloat("specularStrength", p.Specular)
	r.scene.SetVec3("lightColor", p.Color)
}

func (r *Renderer) drawLit(m *gpuMesh, model mgl32.Mat4, vp mgl32.Mat4, color mgl32.Vec3) {
	r.scene.SetMat4("MVP", vp.Mul4(model))
	r.scene.SetMat4("model", model)
	r.scene.SetBool("hasTexture", m.bindTextures(r.scene))
	r.scene.SetVec3("objectColor", color)
	m.draw()
}

// DrawLit draws instances with one lighting preset. Instances without an
// uploaded mesh are skipped.
func (r *Renderer) DrawLit(instances []Instance, preset lighting.Preset, f Frame) {
	r.DrawLitColor(instances, preset, untexturedRGB, f)
}

// DrawLitColor is DrawLit with a base color for untextured meshes.
func (r *Renderer) DrawLitColor(instances []Instance, preset lighting.Preset, color mgl32.Vec3, f Frame) {
	if len(instances) == 0 {
		return
	}
	r.beginLit(f)
	r.applyPreset(preset)

	vp := f.viewProjection()
	for _, inst := range instances {
		if m := asGPU(inst.Mesh); m != nil {
			r.drawLit(m, inst.Model, vp, color)
		}
	}
}

// DrawGround draws the ground mesh at each tile translation.
func (r *Renderer) DrawGround(ground gfx.Drawable, tiles []mgl32.Vec3, preset lighting.Preset, f Frame) {
	m := asGPU(ground)
	if m == nil {
		return
	}
	r.beginLit(f)
	r.applyPreset(preset)

	vp := f.viewProjection()
	for _, t := range tiles {
		r.drawLit(m, mgl32.Translate3D(t.X(), t.Y(), t.Z()), vp, untexturedRGB)
	}
}

// DrawStars draws the star field as points.
func (r *Renderer) DrawStars(stars gfx.Drawable, f Frame) {
	m := asGPU(stars)
	if m == nil {
		return
	}
	r.sun.Use()
	r.sun.SetMat4("MVP", f.viewProjection())
	r.sun.SetVec3("color", StarColor)
	gl.PointSize(starPointSize)
	m.draw()
}

// DrawLines draws line segments from [x,y,z] vertex pairs.
func (r *Renderer) DrawLines(vertices []float32, color mgl32.Vec3, f Frame) {
	if len(vertices) < 6 {
		return
	}
	r.sun.Use()
	r.sun.SetMat4("MVP", f.viewProjection())
	r.sun.SetVec3("color", color)

	gl.BindVertexArray(r.lineVAO)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.lineVBO)
	gl.BufferData(gl.ARRAY_BUFFER, len(vertices)*4, gl.Ptr(vertices), gl.DYNAMIC_DRAW)
	gl.DrawArrays(gl.LINES, 0, int32(len(vertices)/3))
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	gl.BindVertexArray(0)
}

// DrawOverlay draws instances on top of the scene, used for the view model.
func (r *Renderer) DrawOverlay(instances []Instance, preset lighting.Preset, f Frame) {
	gl.Clear(gl.DEPTH_BUFFER_BIT)
	r.DrawLit(instances, preset, f)
}
