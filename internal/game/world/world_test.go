package world

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Faultbox/varkon/internal/engine/camera"
	"github.com/Faultbox/varkon/internal/game/scene"
)

func newWorld(t *testing.T) *World {
	t.Helper()
	scenes := scene.NewManager(nil, nil)
	return New(DefaultConfig(), camera.NewDefaultFPSCamera(), scenes, nil)
}

func TestStepMouseLook(t *testing.T) {
	w := newWorld(t)
	w.Step(0.016, Controls{LookX: 100, LookY: 2000})

	assert.InDelta(t, -80, w.Camera.Yaw, 1e-4)
	assert.Equal(t, float32(camera.MaxPitch), w.Camera.Pitch)
}

func TestStepForwardKeepsAltitude(t *testing.T) {
	w := newWorld(t)
	w.Camera.ProcessMouseMovement(0, 300) // look up 30 degrees

	w.Step(0.1, Controls{Forward: true})

	assert.InDelta(t, 5, w.Camera.Position.Y(), 1e-5)
	assert.InDelta(t, -3, w.Camera.Position.Z(), 1e-4)
	assert.InDelta(t, 0, w.Camera.Position.X(), 1e-4)
}

func TestStepOpposingKeysCancel(t *testing.T) {
	w := newWorld(t)
	start := w.Camera.Position

	w.Step(0.1, Controls{Forward: true, Back: true, Left: true, Right: true})
	assert.Equal(t, start, w.Camera.Position)
}

func TestStepVertical(t *testing.T) {
	w := newWorld(t)

	w.Step(0.5, Controls{Up: true})
	assert.InDelta(t, 20, w.Camera.Position.Y(), 1e-4)

	for i := 0; i < 10; i++ {
		w.Step(0.5, Controls{Down: true})
	}
	assert.Equal(t, w.Camera.Floor(), w.Camera.Position.Y())
}

func TestStepCollisionPushOut(t *testing.T) {
	w := newWorld(t)
	w.Colliders.AddSphere(mgl32.Vec3{0, 5, -10}, 5)

	w.Step(0.2, Controls{Forward: true})

	dist := w.Camera.Position.Sub(mgl32.Vec3{0, 5, -10}).Len()
	assert.GreaterOrEqual(t, dist, float32(5+2))
	assert.Greater(t, w.Camera.Position.Z(), float32(-6))
}

func TestStepRejectsStuckMove(t *testing.T) {
	w := newWorld(t)
	w.cfg.CollisionIterations = 0
	w.movement.Iterations = 0
	w.Colliders.AddSphere(mgl32.Vec3{0, 5, -10}, 5)
	start := w.Camera.Position

	ev := w.Step(0.2, Controls{Forward: true})

	assert.True(t, ev.Blocked)
	assert.Equal(t, start, w.Camera.Position)
}

func TestTriggerReportedOncePerEntry(t *testing.T) {
	w := newWorld(t)
	w.Scenes.AddTriggerZone(mgl32.Vec3{0, 5, -5}, 3, scene.DeepCave, "msg")

	ev := w.Step(0.1, Controls{Forward: true})
	assert.Equal(t, "msg", ev.TriggerEntered)

	ev = w.Step(0.1, Controls{})
	assert.Empty(t, ev.TriggerEntered)

	w.Step(0.2, Controls{Back: true})
	ev = w.Step(0.2, Controls{Forward: true})
	assert.Equal(t, "msg", ev.TriggerEntered)
}

func TestEnterLoadsTargetScene(t *testing.T) {
	w := newWorld(t)
	w.Scenes.AddTriggerZone(mgl32.Vec3{0, 5, 0}, 3, scene.DeepCave, "msg")
	w.Step(0.016, Controls{Fire: true})
	require.Len(t, w.Projectiles.Active(), 1)

	ev := w.Step(0.016, Controls{Enter: true})

	assert.Equal(t, scene.DeepCave, ev.SceneChanged)
	assert.Equal(t, scene.DeepCave, w.Scenes.CurrentScene())
	assert.Empty(t, w.Scenes.TriggerZones())
	assert.Empty(t, w.Projectiles.Active())
}

func TestEnterOutsideTrigger(t *testing.T) {
	w := newWorld(t)
	w.Scenes.AddTriggerZone(mgl32.Vec3{0, 5, -100}, 3, scene.DeepCave, "msg")

	ev := w.Step(0.016, Controls{Enter: true})
	assert.Zero(t, ev.SceneChanged)
	assert.Len(t, w.Scenes.TriggerZones(), 1)
}

func TestInteractGrabsBagNearAlien(t *testing.T) {
	w := newWorld(t)
	w.LoadScene(scene.CaveEntrance)

	ev := w.Step(0.016, Controls{Interact: true})
	assert.False(t, ev.BagGrabbed, "too far from the alien")

	w.Camera.SetPosition(mgl32.Vec3{15, -8.3, -40})
	ev = w.Step(0.016, Controls{Interact: true})
	assert.True(t, ev.BagGrabbed)

	bag := w.Scenes.Bag().Position
	assert.Less(t, bag.Sub(w.Camera.Position).Len(), float32(4))
}

func TestFireFromMuzzle(t *testing.T) {
	w := newWorld(t)

	ev := w.Step(0.016, Controls{Fire: true})
	require.NotNil(t, ev.Fired)
	assertVecNear(t, w.Camera.Front, ev.Fired.Direction, 1e-5)
	assert.Greater(t, w.Weapon.Recoil(), float32(0))

	ev = w.Step(0.016, Controls{Fire: true})
	assert.Nil(t, ev.Fired, "cooling down")
	assert.Len(t, w.Projectiles.Active(), 1)
}

func TestAltFireSpawnsPlasma(t *testing.T) {
	w := newWorld(t)
	ev := w.Step(0.016, Controls{AltFire: true})
	require.NotNil(t, ev.Fired)
	assert.Equal(t, "plasma", ev.Fired.Kind.String())
}

func TestTimeAdvances(t *testing.T) {
	w := newWorld(t)
	w.Step(0.25, Controls{})
	w.Step(0.25, Controls{})
	assert.InDelta(t, 0.5, w.Time(), 1e-9)
}

func TestStepNeverCommitsOverlapAtFloor(t *testing.T) {
	w := newWorld(t)
	w.Camera.SetPosition(mgl32.Vec3{0, w.Camera.Floor(), 0})
	// Collider centered above eye height: push-out has a downward part.
	center := mgl32.Vec3{0, -4, -6}
	w.Colliders.AddSphere(center, 5)
	minDist := float32(5) + w.cfg.PlayerRadius

	for i := 0; i < 60; i++ {
		ev := w.Step(0.016, Controls{Forward: true})
		pos := w.Camera.Position

		require.GreaterOrEqual(t, pos.Y(), w.Camera.Floor(), "frame %d", i)
		require.GreaterOrEqual(t, pos.Sub(center).Len(), minDist,
			"frame %d blocked=%v pos=%v overlaps collider", i, ev.Blocked, pos)
	}
}

// assertVecNear compares component-wise with an absolute tolerance.
func assertVecNear(t *testing.T, want, got mgl32.Vec3, delta float64) {
	t.Helper()
	for i := range want {
		assert.InDelta(t, want[i], got[i], delta, "component %d: want %v, got %v", i, want, got)
	}
}
