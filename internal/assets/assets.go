// Package assets loads and caches textures and meshes by name.
package assets

import (
	"errors"
	"fmt"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/Faultbox/varkon/internal/engine/gfx"
	"github.com/Faultbox/varkon/internal/engine/mesh"
	"github.com/Faultbox/varkon/internal/logger"
)

// Names of the procedural meshes.
const (
	MeshStars  = "stars"
	MeshGround = "ground"
	MeshBullet = "bullet"
)

// Procedural mesh parameters.
const (
	StarCount       = 500
	StarSpaceSize   = 2000
	GroundHalfSize  = 200
	bulletHalfWidth = 1
	bulletHalfLen   = 3
)

// ErrNoBackend is returned when the manager has no GPU backend.
var ErrNoBackend = errors.New("assets: no backend")

// Manager loads GPU resources through a backend and caches them by name.
// Lookups of unknown names log a warning and return a zero handle.
type Manager struct {
	backend  gfx.Backend
	root     string
	textures *Cache[gfx.TextureID]
	meshes   *Cache[gfx.Drawable]
}

// NewManager creates a resource manager. Relative paths are resolved
// against root.
func NewManager(backend gfx.Backend, root string) *Manager {
	return &Manager{
		backend:  backend,
		root:     root,
		textures: NewCache[gfx.TextureID](),
		meshes:   NewCache[gfx.Drawable](),
	}
}

func (m *Manager) resolve(path string) string {
	if m.root == "" || filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(m.root, path)
}

// LoadTexture loads the texture at path and stores it under name.
// On failure it logs a warning and returns 0.
func (m *Manager) LoadTexture(name, path string) gfx.TextureID {
	if id, ok := m.textures.Get(name); ok {
		return id
	}
	if m.backend == nil {
		logger.Warn("texture not loaded", zap.String("name", name), zap.Error(ErrNoBackend))
		return 0
	}

	full := m.resolve(path)
	id, err := m.backend.LoadTexture(full)
	if err != nil {
		logger.Warn("texture not loaded", zap.String("name", name), zap.String("path", full), zap.Error(err))
		return 0
	}
	m.textures.Set(name, id)
	logger.Debug("texture loaded", zap.String("name", name), zap.Uint32("id", uint32(id)))
	return id
}

// Texture returns a loaded texture, or 0 with a warning.
func (m *Manager) Texture(name string) gfx.TextureID {
	id, ok := m.textures.Get(name)
	if !ok {
		logger.Warn("texture not found", zap.String("name", name))
		return 0
	}
	return id
}

// LoadMesh parses an OBJ file, uploads it with the given bindings and stores
// it under name. On failure it logs a warning and returns nil.
func (m *Manager) LoadMesh(name, path string, textures ...gfx.TextureBinding) gfx.Drawable {
	if d, ok := m.meshes.Get(name); ok {
		return d
	}

	full := m.resolve(path)
	data, err := mesh.LoadOBJ(full)
	if err != nil {
		logger.Warn("mesh not loaded", zap.String("name", name), zap.String("path", full), zap.Error(err))
		return nil
	}
	return m.upload(name, data, gfx.Triangles, textures)
}

// Mesh returns a loaded mesh, or nil with a warning.
func (m *Manager) Mesh(name string) gfx.Drawable {
	d, ok := m.meshes.Get(name)
	if !ok {
		logger.Warn("mesh not found", zap.String("name", name))
		return nil
	}
	return d
}

// CreateStarField uploads the procedural star field as points.
func (m *Manager) CreateStarField(name string, count int, spaceSize float32) gfx.Drawable {
	return m.upload(name, mesh.StarField(count, spaceSize), gfx.Points, nil)
}

// CreateGround uploads the ground grid textured with the named texture.
func (m *Manager) CreateGround(name string, halfSize float32, texture string) gfx.Drawable {
	var bindings []gfx.TextureBinding
	if id := m.Texture(texture); id != 0 {
		bindings = append(bindings, gfx.TextureBinding{ID: id, Slot: gfx.SlotDiffuse})
	}
	return m.upload(name, mesh.Ground(halfSize), gfx.Triangles, bindings)
}

// CreateBox uploads an untextured box.
func (m *Manager) CreateBox(name string, halfX, halfY, halfZ float32) gfx.Drawable {
	return m.upload(name, mesh.Box(halfX, halfY, halfZ), gfx.Triangles, nil)
}

func (m *Manager) upload(name string, data gfx.MeshData, prim gfx.Primitive, textures []gfx.TextureBinding) gfx.Drawable {
	if m.backend == nil {
		logger.Warn("mesh not uploaded", zap.String("name", name), zap.Error(ErrNoBackend))
		return nil
	}
	d, err := m.backend.UploadMesh(data, prim, textures)
	if err != nil || d == nil {
		if err == nil {
			err = fmt.Errorf("backend returned no mesh")
		}
		logger.Warn("mesh not uploaded", zap.String("name", name), zap.Error(err))
		return nil
	}
	m.meshes.Set(name, d)
	logger.Debug("mesh loaded",
		zap.String("name", name),
		zap.Int("vertices", len(data.Vertices)),
		zap.Int("indices", len(data.Indices)))
	return d
}

// Stats returns how many textures and meshes are loaded.
func (m *Manager) Stats() (textures, meshes int) {
	return m.textures.Len(), m.meshes.Len()
}

// Clear forgets every cached resource. GPU objects are owned by the backend.
func (m *Manager) Clear() {
	m.textures.Clear()
	m.meshes.Clear()
}
