// Package scene manages the loaded scene: object groups, trigger zones,
// static colliders and per-group lighting.
package scene

import (
	"go.uber.org/zap"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/Faultbox/varkon/internal/engine/collision"
	"github.com/Faultbox/varkon/internal/engine/gfx"
	"github.com/Faultbox/varkon/internal/engine/lighting"
	"github.com/Faultbox/varkon/internal/game/entity"
	"github.com/Faultbox/varkon/internal/logger"
)

// Scene IDs.
const (
	CaveEntrance = 1
	DeepCave     = 2
)

// DefaultScene is loaded at startup and for unknown IDs.
const DefaultScene = CaveEntrance

// Resources resolves mesh names to drawables. A nil result is allowed.
type Resources interface {
	Mesh(name string) gfx.Drawable
}

// TriggerZone offers a scene transition while the player is inside it.
type TriggerZone struct {
	Position    mgl32.Vec3
	Radius      float32
	TargetScene int
	Message     string
}

// Group is a set of objects drawn with one lighting preset.
type Group struct {
	Name     string
	Objects  []*entity.Object
	Lighting lighting.Preset
}

// Manager owns the objects and trigger zones of the current scene.
type Manager struct {
	resources Resources
	colliders *collision.System

	Light lighting.Light

	spaceships    []*entity.Object
	aliens        []*entity.Object
	caveWalls     []*entity.Object
	rocks         []*entity.Object
	asteroids     []*entity.Object
	portalMarkers []*entity.Object
	portalBase    []mgl32.Vec3

	bag        *entity.Object
	bagGrabbed bool

	triggerZones  []TriggerZone
	nearbyTrigger int
	currentScene  int
	dimProps      bool
}

// NewManager creates an empty scene manager. Static props register their
// colliders with colliders, which is cleared on every scene load.
func NewManager(resources Resources, colliders *collision.System) *Manager {
	if colliders == nil {
		colliders = collision.NewSystem()
	}
	return &Manager{
		resources:     resources,
		colliders:     colliders,
		Light:         lighting.DefaultLight(),
		nearbyTrigger: -1,
	}
}

// Colliders returns the collision system fed by the scene.
func (m *Manager) Colliders() *collision.System {
	return m.colliders
}

// CurrentScene returns the loaded scene ID, or 0 when nothing is loaded.
func (m *Manager) CurrentScene() int {
	return m.currentScene
}

// Clear drops every per-scene object, trigger zone and collider.
// A grabbed bag travels with the player and survives.
func (m *Manager) Clear() {
	m.spaceships = nil
	m.aliens = nil
	m.caveWalls = nil
	m.rocks = nil
	m.asteroids = nil
	m.portalMarkers = nil
	m.portalBase = nil
	if !m.bagGrabbed {
		m.bag = nil
	}

	m.triggerZones = nil
	m.nearbyTrigger = -1
	m.currentScene = 0
	m.dimProps = false

	m.colliders.Clear()
}

// LoadScene clears the current scene and builds the requested one.
// Unknown IDs log a warning and load DefaultScene.
func (m *Manager) LoadScene(id int) {
	m.Clear()

	b, ok := builders[id]
	if !ok {
		logger.Warn("unknown scene, loading default", zap.Int("id", id), zap.Int("default", DefaultScene))
		id = DefaultScene
		b = builders[id]
	}

	m.currentScene = id
	b.build(m)

	logger.Info("scene loaded",
		zap.Int("id", id),
		zap.String("name", b.name),
		zap.Int("objects", m.ObjectCount()),
		zap.Int("colliders", m.colliders.Len()),
		zap.Int("triggers", len(m.triggerZones)))
}

// SceneName returns the display name of a scene ID.
func SceneName(id int) string {
	if b, ok := builders[id]; ok {
		return b.name
	}
	return ""
}

// AddTriggerZone registers a trigger zone in the current scene.
func (m *Manager) AddTriggerZone(pos mgl32.Vec3, radius float32, targetScene int, message string) {
	m.triggerZones = append(m.triggerZones, TriggerZone{
		Position:    pos,
		Radius:      radius,
		TargetScene: targetScene,
		Message:     message,
	})
}

// TriggerZones returns the zones of the current scene.
func (m *Manager) TriggerZones() []TriggerZone {
	return m.triggerZones
}

// CheckProximityTriggers records the first zone containing pos, in
// registration order, and returns its index or -1.
func (m *Manager) CheckProximityTriggers(pos mgl32.Vec3) int {
	m.nearbyTrigger = -1
	for i, z := range m.triggerZones {
		if pos.Sub(z.Position).Len() < z.Radius {
			m.nearbyTrigger = i
			break
		}
	}
	return m.nearbyTrigger
}

// NearbyTrigger returns the index found by the last check, or -1.
func (m *Manager) NearbyTrigger() int {
	return m.nearbyTrigger
}

// NearbyZone returns the zone found by the last check.
func (m *Manager) NearbyZone() (TriggerZone, bool) {
	if m.nearbyTrigger < 0 || m.nearbyTrigger >= len(m.triggerZones) {
		return TriggerZone{}, false
	}
	return m.triggerZones[m.nearbyTrigger], true
}

// TriggerMessage returns the message of the nearby zone, or "".
func (m *Manager) TriggerMessage() string {
	z, ok := m.NearbyZone()
	if !ok {
		return ""
	}
	return z.Message
}

// Groups returns the render groups in draw order.
func (m *Manager) Groups() []Group {
	props := lighting.Normal(m.Light)
	if m.dimProps {
		props = lighting.Dim(m.Light)
	}

	groups := []Group{
		{Name: "spaceships", Objects: m.spaceships, Lighting: lighting.Enhanced()},
		{Name: "cave_walls", Objects: m.caveWalls, Lighting: props},
		{Name: "rocks", Objects: m.rocks, Lighting: props},
		{Name: "aliens", Objects: m.aliens, Lighting: lighting.Enhanced()},
		{Name: "asteroids", Objects: m.asteroids, Lighting: lighting.Enhanced()},
		{Name: "portal_markers", Objects: m.portalMarkers, Lighting: lighting.Enhanced()},
	}
	if m.bag != nil {
		groups = append(groups, Group{Name: "bag", Objects: []*entity.Object{m.bag}, Lighting: lighting.Normal(m.Light)})
	}
	return groups
}

// ObjectCount returns the number of placed objects.
func (m *Manager) ObjectCount() int {
	n := 0
	for _, g := range m.Groups() {
		n += len(g.Objects)
	}
	return n
}

func (m *Manager) mesh(name string) gfx.Drawable {
	if m.resources == nil {
		return nil
	}
	return m.resources.Mesh(name)
}
