package assets

import (
	"go.uber.org/zap"

	"github.com/Faultbox/varkon/internal/engine/gfx"
	"github.com/Faultbox/varkon/internal/logger"
)

// TextureSpec names a texture file.
type TextureSpec struct {
	Name string
	Path string
}

// MeshSpec names an OBJ file and the textures bound to it.
type MeshSpec struct {
	Name    string
	Path    string
	Diffuse string
	Normal  string
}

// Textures lists every texture the game uses, relative to the asset root.
var Textures = []TextureSpec{
	{"mars", "Textures/mars.bmp"},
	{"base_color", "Textures/Texture_1K/Base_BaseColor.bmp"},
	{"base_normal", "Textures/Texture_1K/Base_Normal.bmp"},
	{"gun", "Textures/SciFi_Gun_Full_Base/Paint_Base_Color.bmp"},
	{"cave_wall_diffuse", "Textures/CaveWalls2_Base_Diffuse.bmp"},
	{"asteroid_diffuse", "Textures/Asteroid_1_Diffuse_1K.bmp"},
	{"cave_wall4_diffuse", "Textures/CaveWalls4_Base_Diffuse.bmp"},
	{"alien_body", "Textures/body_Base_Color.bmp"},
	{"alien_eye", "Textures/eye_Base_Color.bmp"},
}

// Meshes lists every model the game uses, relative to the asset root.
var Meshes = []MeshSpec{
	{Name: "spaceship", Path: "Models/Imperial_Steniel_obj.obj", Diffuse: "base_color", Normal: "base_normal"},
	{Name: "cave_wall_a", Path: "Models/CaveWalls2_A.obj", Diffuse: "cave_wall_diffuse"},
	{Name: "cave_wall_b", Path: "Models/CaveWalls2_B.obj", Diffuse: "cave_wall_diffuse"},
	{Name: "cave_wall_c", Path: "Models/CaveWalls2_C.obj", Diffuse: "cave_wall_diffuse"},
	{Name: "cave_wall_set", Path: "Models/CaveWalls2_Set.obj", Diffuse: "cave_wall_diffuse"},
	{Name: "asteroid", Path: "Models/Asteroid_1.obj", Diffuse: "asteroid_diffuse"},
	{Name: "cave_wall4_set", Path: "Models/CaveWalls4_Set.obj", Diffuse: "cave_wall4_diffuse"},
	{Name: "rock04_a", Path: "Models/Rock04_A.obj", Diffuse: "cave_wall_diffuse"},
	{Name: "rock04_b", Path: "Models/Rock04_B.obj", Diffuse: "cave_wall_diffuse"},
	{Name: "rock04_c", Path: "Models/Rock04_C.obj", Diffuse: "cave_wall_diffuse"},
	{Name: "rock04_d", Path: "Models/Rock04_D.obj", Diffuse: "cave_wall4_diffuse"},
	{Name: "rock04_e", Path: "Models/Rock04_E.obj", Diffuse: "cave_wall4_diffuse"},
	{Name: "rock04_set", Path: "Models/Rock04_Set.obj", Diffuse: "cave_wall_diffuse"},
	{Name: "alien", Path: "Models/body.obj", Diffuse: "alien_body"},
	{Name: "gun", Path: "Models/SciFi_Gun.obj", Diffuse: "gun"},
	{Name: "bag", Path: "Models/Bag.obj", Diffuse: "base_color"},
}

// LoadAll loads the catalog and builds the procedural meshes. Missing files
// are logged and skipped; it never fails.
func (m *Manager) LoadAll() {
	for _, t := range Textures {
		m.LoadTexture(t.Name, t.Path)
	}

	for _, spec := range Meshes {
		m.LoadMesh(spec.Name, spec.Path, m.bindings(spec)...)
	}

	m.CreateStarField(MeshStars, StarCount, StarSpaceSize)
	m.CreateGround(MeshGround, GroundHalfSize, "mars")
	m.CreateBox(MeshBullet, bulletHalfWidth, bulletHalfWidth, bulletHalfLen)

	textures, meshes := m.Stats()
	logger.Info("resources loaded", zap.Int("textures", textures), zap.Int("meshes", meshes))
}

func (m *Manager) bindings(spec MeshSpec) []gfx.TextureBinding {
	var out []gfx.TextureBinding
	if spec.Diffuse != "" {
		if id, ok := m.textures.Get(spec.Diffuse); ok {
			out = append(out, gfx.TextureBinding{ID: id, Slot: gfx.SlotDiffuse})
		}
	}
	if spec.Normal != "" {
		if id, ok := m.textures.Get(spec.Normal); ok {
			out = append(out, gfx.TextureBinding{ID: id, Slot: gfx.SlotNormal})
		}
	}
	return out
}
