// Package renderer provides OpenGL rendering functionality.
package renderer

import (
	"fmt"
	"path/filepath"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"

	"github.com/Faultbox/varkon/internal/engine/shader"
	"github.com/Faultbox/varkon/internal/engine/shader/shaders"
	"github.com/Faultbox/varkon/internal/logger"
)

// Config holds renderer configuration.
type Config struct {
	Width  int
	Height int

	// ShaderDir, when set, holds scene.vert/scene.frag/sun.vert/sun.frag
	// overriding the embedded sources.
	ShaderDir string
}

// Renderer handles all OpenGL rendering. It implements gfx.Backend.
type Renderer struct {
	config Config

	scene *shader.Program
	sun   *shader.Program

	// Dynamic buffer for debug lines.
	lineVAO uint32
	lineVBO uint32

	meshes   []*gpuMesh
	textures []uint32
}

// New creates a new renderer.
// IMPORTANT: Must be called AFTER OpenGL context is created!
func New(cfg Config) (*Renderer, error) {
	r := &Renderer{
		config: cfg,
	}

	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize OpenGL: %w", err)
	}

	version := gl.GoStr(gl.GetString(gl.VERSION))
	rendererName := gl.GoStr(gl.GetString(gl.RENDERER))
	logger.Info("OpenGL initialized",
		zap.String("version", version),
		zap.String("renderer", rendererName),
	)

	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LESS)
	gl.ClearColor(0.0, 0.0, 0.02, 1.0)
	gl.Viewport(0, 0, int32(cfg.Width), int32(cfg.Height))

	var err error
	if r.scene, err = r.loadProgram("scene", shaders.SceneVertexShader, shaders.SceneFragmentShader); err != nil {
		return nil, err
	}
	if r.sun, err = r.loadProgram("sun", shaders.SunVertexShader, shaders.SunFragmentShader); err != nil {
		r.scene.Delete()
		return nil, err
	}

	gl.GenVertexArrays(1, &r.lineVAO)
	gl.GenBuffers(1, &r.lineVBO)
	gl.BindVertexArray(r.lineVAO)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.lineVBO)
	gl.VertexAttribPointer(0, 3, gl.FLOAT, false, 3*4, nil)
	gl.EnableVertexAttribArray(0)
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	gl.BindVertexArray(0)

	return r, nil
}

func (r *Renderer) loadProgram(name, vertexSrc, fragmentSrc string) (*shader.Program, error) {
	if r.config.ShaderDir != "" {
		p, err := shader.Load(name,
			filepath.Join(r.config.ShaderDir, name+".vert"),
			filepath.Join(r.config.ShaderDir, name+".frag"))
		if err == nil {
			return p, nil
		}
		logger.Warn("shader override not loaded, using embedded source",
			zap.String("program", name), zap.Error(err))
	}
	p, err := shader.New(name, vertexSrc, fragmentSrc)
	if err != nil {
		return nil, fmt.Errorf("failed to create shader program: %w", err)
	}
	return p, nil
}

// Close cleans up renderer resources.
func (r *Renderer) Close() {
	logger.Info("closing renderer",
		zap.Int("meshes", len(r.meshes)),
		zap.Int("textures", len(r.textures)))

	for _, m := range r.meshes {
		m.delete()
	}
	r.meshes = nil
	if len(r.textures) > 0 {
		gl.DeleteTextures(int32(len(r.textures)), &r.textures[0])
		r.textures = nil
	}
	if r.lineVAO != 0 {
		gl.DeleteVertexArrays(1, &r.lineVAO)
	}
	if r.lineVBO != 0 {
		gl.DeleteBuffers(1, &r.lineVBO)
	}
	r.scene.Delete()
	r.sun.Delete()
}

// Resize handles window resize.
func (r *Renderer) Resize(width, height int) {
	r.config.Width = width
	r.config.Height = height
	gl.Viewport(0, 0, int32(width), int32(height))
	logger.Debug("renderer resized",
		zap.Int("width", width),
		zap.Int("height", height),
	)
}

// Begin starts a new frame.
func (r *Renderer) Begin() {
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
}

// End finishes the current frame.
func (r *Renderer) End() {
	gl.BindVertexArray(0)
	gl.UseProgram(0)
}

// Frame carries the per-frame camera and light state.
type Frame struct {
	View       mgl32.Mat4
	Projection mgl32.Mat4
	ViewPos    mgl32.Vec3

	LightPos   mgl32.Vec3
	LightColor mgl32.Vec3
}

func (f Frame) viewProjection() mgl32.Mat4 {
	return f.Projection.Mul4(f.View)
}

// ReadPixels reads the back buffer as bottom-up RGBA rows.
func (r *Renderer) ReadPixels() (pixels []byte, width, height int) {
	width, height = r.config.Width, r.config.Height
	if width <= 0 || height <= 0 {
		return nil, 0, 0
	}
	pixels = make([]byte, width*height*4)
	gl.PixelStorei(gl.PACK_ALIGNMENT, 1)
	gl.ReadPixels(0, 0, int32(width), int32(height), gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(pixels))
	return pixels, width, height
}
