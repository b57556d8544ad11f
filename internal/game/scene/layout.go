package scene

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/Faultbox/varkon/internal/game/entity"
)

// Collider radius of each prop type at unit scale.
var colliderRadius = map[entity.Type]float32{
	entity.TypeSpaceship: 6,
	entity.TypeAlien:     2,
	entity.TypeCaveWall:  8,
	entity.TypeRock:      4,
}

// placement is one row of a layout table.
type placement struct {
	mesh     string
	position mgl32.Vec3
	rotation mgl32.Vec3
	scale    mgl32.Vec3
}

func uniform(s float32) mgl32.Vec3 { return mgl32.Vec3{s, s, s} }

func yaw(deg float32) mgl32.Vec3 { return mgl32.Vec3{0, deg, 0} }

type builder struct {
	name  string
	build func(m *Manager)
}

var builders = map[int]builder{
	CaveEntrance: {name: "Cave Entrance", build: buildCaveEntrance},
	DeepCave:     {name: "Deep Cave", build: buildDeepCave},
}

var caveEntranceWalls = []placement{
	{"cave_wall_set", mgl32.Vec3{-80, -9, -120}, yaw(45), uniform(3)},
	{"cave_wall_a", mgl32.Vec3{40, -8, -260}, yaw(-30), uniform(2.5)},
	{"cave_wall_a", mgl32.Vec3{-30, -8.5, 400}, yaw(60), uniform(2)},
	{"cave_wall_b", mgl32.Vec3{-70, -7, -350}, yaw(90), mgl32.Vec3{4, 3, 4}},
	{"cave_wall_c", mgl32.Vec3{-100, -6, -480}, yaw(120), uniform(3.5)},
	{"cave_wall4_set", mgl32.Vec3{100, 10, 350}, yaw(90), uniform(2)},
}

var caveEntranceRocks = []placement{
	{"rock04_a", mgl32.Vec3{-150, -8, 200}, yaw(45), uniform(3)},
	{"rock04_b", mgl32.Vec3{-180, -7, -50}, yaw(-30), uniform(2.5)},
	{"rock04_c", mgl32.Vec3{150, -8, -80}, yaw(135), uniform(3)},
	{"rock04_d", mgl32.Vec3{170, -7.5, 20}, yaw(200), uniform(2.8)},
	{"rock04_e", mgl32.Vec3{-160, -8.5, 80}, yaw(75), uniform(2.5)},
	{"rock04_set", mgl32.Vec3{140, -8, 50}, yaw(160), uniform(2)},
	{"rock04_c", mgl32.Vec3{-140, -8, 30}, yaw(-45), uniform(2.8)},
	{"rock04_d", mgl32.Vec3{-175, -7.8, 150}, yaw(60), uniform(3.2)},
	{"rock04_a", mgl32.Vec3{-130, -8.2, -30}, yaw(110), uniform(2.6)},
	{"rock04_set", mgl32.Vec3{-155, -7.5, -120}, yaw(-80), uniform(2.2)},
	{"rock04_b", mgl32.Vec3{-165, -8.3, 250}, yaw(25), uniform(2.9)},
}

// Deep Cave entrance portal in the Cave Entrance scene.
var (
	portalTriggerPosition = mgl32.Vec3{-30, -8.5, 400}
	portalMarkerPosition  = mgl32.Vec3{-30, -5, 400}
)

const (
	portalTriggerRadius = 25
	portalMessage       = "Press 'N' to enter the Deep Cave"
	portalMarkerScale   = 3
)

var bagPosition = mgl32.Vec3{20, -9, -46}

func buildCaveEntrance(m *Manager) {
	m.addSpaceship(mgl32.Vec3{-20, -2.5, -50}, yaw(180), uniform(2.5))
	m.addAlien(mgl32.Vec3{15, -8, -50}, yaw(180), uniform(1.5))

	for _, p := range caveEntranceWalls {
		m.addCaveWall(p)
	}
	for _, p := range caveEntranceRocks {
		m.addRock(p)
	}

	m.addAsteroid(mgl32.Vec3{15, 40, -50}, mgl32.Vec3{35, 17.5, 10.5}, uniform(7))

	m.AddTriggerZone(portalTriggerPosition, portalTriggerRadius, DeepCave, portalMessage)
	m.addPortalMarker(portalMarkerPosition)

	if m.bag == nil {
		m.bag = entity.New(entity.TypeBag, m.mesh("bag"), bagPosition)
	}
}

func buildDeepCave(m *Manager) {
	m.dimProps = true
	m.addCaveWall(placement{"cave_wall_a", mgl32.Vec3{-30, -8.5, 400}, yaw(60), uniform(2)})
}

func (m *Manager) place(t entity.Type, mesh string, pos, rot, scale mgl32.Vec3) *entity.Object {
	o := entity.NewTransformed(t, m.mesh(mesh), pos, rot, scale)
	if r, ok := colliderRadius[t]; ok {
		m.colliders.AddSphere(pos, r*o.MaxScale())
	}
	return o
}

func (m *Manager) addSpaceship(pos, rot, scale mgl32.Vec3) {
	m.spaceships = append(m.spaceships, m.place(entity.TypeSpaceship, "spaceship", pos, rot, scale))
}

func (m *Manager) addAlien(pos, rot, scale mgl32.Vec3) {
	m.aliens = append(m.aliens, m.place(entity.TypeAlien, "alien", pos, rot, scale))
}

func (m *Manager) addCaveWall(p placement) {
	m.caveWalls = append(m.caveWalls, m.place(entity.TypeCaveWall, p.mesh, p.position, p.rotation, p.scale))
}

func (m *Manager) addRock(p placement) {
	m.rocks = append(m.rocks, m.place(entity.TypeRock, p.mesh, p.position, p.rotation, p.scale))
}

func (m *Manager) addAsteroid(pos, rot, scale mgl32.Vec3) {
	m.asteroids = append(m.asteroids, m.place(entity.TypeAsteroid, "asteroid", pos, rot, scale))
}

// addPortalMarker places an asteroid as a visual marker for a trigger zone.
func (m *Manager) addPortalMarker(pos mgl32.Vec3) {
	m.portalMarkers = append(m.portalMarkers,
		m.place(entity.TypePortalMarker, "asteroid", pos, mgl32.Vec3{}, uniform(portalMarkerScale)))
	m.portalBase = append(m.portalBase, pos)
}
