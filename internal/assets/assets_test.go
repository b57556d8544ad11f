package assets

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Faultbox/varkon/internal/engine/gfx"
)

type fakeMesh struct {
	textures []gfx.TextureBinding
	indices  int
	prim     gfx.Primitive
}

func (f *fakeMesh) SetTextures(t []gfx.TextureBinding) { f.textures = t }
func (f *fakeMesh) Textures() []gfx.TextureBinding     { return f.textures }
func (f *fakeMesh) IndexCount() int                    { return f.indices }

type fakeBackend struct {
	nextID  gfx.TextureID
	paths   []string
	uploads int
}

func (b *fakeBackend) LoadTexture(path string) (gfx.TextureID, error) {
	if _, err := os.Stat(path); err != nil {
		return 0, err
	}
	b.nextID++
	b.paths = append(b.paths, path)
	return b.nextID, nil
}

func (b *fakeBackend) UploadMesh(data gfx.MeshData, prim gfx.Primitive, textures []gfx.TextureBinding) (gfx.Drawable, error) {
	if len(data.Indices) == 0 {
		return nil, errors.New("empty mesh")
	}
	b.uploads++
	return &fakeMesh{textures: textures, indices: len(data.Indices), prim: prim}, nil
}

const triangleOBJ = "v 0 0 0\nv 1 0 0\nv 0 1 0\nf 1 2 3\n"

func writeFile(t *testing.T, root, rel, content string) {
	t.Helper()
	path := filepath.Join(root, rel)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestLoadTexture(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "Textures/mars.bmp", "x")

	backend := &fakeBackend{}
	m := NewManager(backend, root)

	id := m.LoadTexture("mars", "Textures/mars.bmp")
	assert.NotZero(t, id)
	assert.Equal(t, id, m.Texture("mars"))
	assert.Equal(t, filepath.Join(root, "Textures/mars.bmp"), backend.paths[0])

	// Second load hits the cache.
	assert.Equal(t, id, m.LoadTexture("mars", "Textures/mars.bmp"))
	assert.Len(t, backend.paths, 1)
}

func TestMissingResourcesFallBack(t *testing.T) {
	m := NewManager(&fakeBackend{}, t.TempDir())

	assert.Zero(t, m.LoadTexture("nope", "Textures/nope.bmp"))
	assert.Zero(t, m.Texture("nope"))

	assert.Nil(t, m.LoadMesh("nope", "Models/nope.obj"))
	assert.Nil(t, m.Mesh("nope"))

	textures, meshes := m.Stats()
	assert.Zero(t, textures)
	assert.Zero(t, meshes)
}

func TestNilBackend(t *testing.T) {
	m := NewManager(nil, "")
	assert.Zero(t, m.LoadTexture("mars", "mars.bmp"))
	assert.Nil(t, m.CreateBox("box", 1, 1, 1))
}

func TestLoadMeshBindsTextures(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "Models/tri.obj", triangleOBJ)

	m := NewManager(&fakeBackend{}, root)
	binding := gfx.TextureBinding{ID: 7, Slot: gfx.SlotDiffuse}

	d := m.LoadMesh("tri", "Models/tri.obj", binding)
	require.NotNil(t, d)
	assert.Equal(t, 3, d.IndexCount())
	assert.Equal(t, []gfx.TextureBinding{binding}, d.Textures())
	assert.Same(t, d, m.Mesh("tri"))
}

func TestProceduralMeshes(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "mars.bmp", "x")

	m := NewManager(&fakeBackend{}, root)
	m.LoadTexture("mars", "mars.bmp")

	stars := m.CreateStarField(MeshStars, StarCount, StarSpaceSize)
	require.NotNil(t, stars)
	assert.Equal(t, StarCount, stars.IndexCount())
	assert.Equal(t, gfx.Points, stars.(*fakeMesh).prim)

	ground := m.CreateGround(MeshGround, GroundHalfSize, "mars")
	require.NotNil(t, ground)
	require.Len(t, ground.Textures(), 1)
	assert.Equal(t, gfx.SlotDiffuse, ground.Textures()[0].Slot)

	// Ground without its texture still loads.
	bare := m.CreateGround("bare", GroundHalfSize, "missing")
	require.NotNil(t, bare)
	assert.Empty(t, bare.Textures())
}

func TestLoadAll(t *testing.T) {
	root := t.TempDir()
	for _, tex := range Textures {
		writeFile(t, root, tex.Path, "x")
	}
	for _, spec := range Meshes {
		if strings.HasPrefix(spec.Name, "rock") {
			continue // leave a few missing
		}
		writeFile(t, root, spec.Path, triangleOBJ)
	}

	m := NewManager(&fakeBackend{}, root)
	m.LoadAll()

	textures, _ := m.Stats()
	assert.Equal(t, len(Textures), textures)

	ship := m.Mesh("spaceship")
	require.NotNil(t, ship)
	assert.Len(t, ship.Textures(), 2)

	assert.Nil(t, m.Mesh("rock04_a"))
	assert.NotNil(t, m.Mesh(MeshStars))
	assert.NotNil(t, m.Mesh(MeshGround))
	assert.NotNil(t, m.Mesh(MeshBullet))
}

func TestCacheStats(t *testing.T) {
	c := NewCache[int]()
	c.Set("a", 1)

	_, ok := c.Get("a")
	assert.True(t, ok)
	_, ok = c.Get("b")
	assert.False(t, ok)

	hits, misses := c.Stats()
	assert.Equal(t, 1, hits)
	assert.Equal(t, 1, misses)

	c.Clear()
	assert.Zero(t, c.Len())
}
