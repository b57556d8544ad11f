// Package world runs the per-frame gameplay update.
package world

import (
	"go.uber.org/zap"

	"github.com/Faultbox/varkon/internal/engine/camera"
	"github.com/Faultbox/varkon/internal/engine/collision"
	"github.com/Faultbox/varkon/internal/game/projectile"
	"github.com/Faultbox/varkon/internal/game/scene"
	"github.com/Faultbox/varkon/internal/game/weapon"
	"github.com/Faultbox/varkon/internal/logger"
)

// Config tunes the player.
type Config struct {
	MoveSpeed           float32
	PlayerRadius        float32
	CollisionIterations int
	Weapon              projectile.Config
}

// DefaultConfig returns the stock player tuning.
func DefaultConfig() Config {
	return Config{
		MoveSpeed:           30,
		PlayerRadius:        2,
		CollisionIterations: 3,
		Weapon:              projectile.DefaultConfig(),
	}
}

// Controls is the player input for one frame. Fire, AltFire, Enter and
// Interact are presses, not held state.
type Controls struct {
	Forward, Back bool
	Left, Right   bool
	Up, Down      bool

	// Mouse delta in pixels, Y positive up.
	LookX, LookY float32

	Fire     bool
	AltFire  bool
	Enter    bool
	Interact bool
}

// Events reports what happened during a step.
type Events struct {
	// Fired is the projectile spawned this step, if any.
	Fired *projectile.Projectile
	// SceneChanged is the newly loaded scene ID, or 0.
	SceneChanged int
	// TriggerEntered is the message of a zone the player just entered.
	TriggerEntered string
	BagGrabbed     bool
	// Blocked is set when movement was rejected by collision.
	Blocked bool
}

// World ties the camera, scene, collision and projectiles together.
type World struct {
	cfg Config

	Camera      *camera.FPSCamera
	Colliders   *collision.System
	Scenes      *scene.Manager
	Projectiles *projectile.System
	Weapon      *weapon.ViewModel

	movement *MovementController

	time           float64
	messagePrinted bool
}

// New creates a world around an existing camera and scene manager. The scene
// manager's collision system is used for movement.
func New(cfg Config, cam *camera.FPSCamera, scenes *scene.Manager, gun *weapon.ViewModel) *World {
	if gun == nil {
		gun = weapon.NewViewModel(nil)
	}
	w := &World{
		cfg:         cfg,
		Camera:      cam,
		Colliders:   scenes.Colliders(),
		Scenes:      scenes,
		Projectiles: projectile.NewSystem(cfg.Weapon),
		Weapon:      gun,
	}
	w.movement = NewMovementController(cam, w.Colliders, cfg.MoveSpeed, cfg.PlayerRadius, cfg.CollisionIterations)
	return w
}

// Time returns seconds simulated so far.
func (w *World) Time() float64 {
	return w.time
}

// LoadScene switches scenes and drops in-flight projectiles.
func (w *World) LoadScene(id int) {
	w.Scenes.LoadScene(id)
	w.Projectiles.Clear()
	w.messagePrinted = false
}

// Step advances the world by dt seconds.
func (w *World) Step(dt float32, c Controls) Events {
	var ev Events
	w.time += float64(dt)

	if c.LookX != 0 || c.LookY != 0 {
		w.Camera.ProcessMouseMovement(c.LookX, c.LookY)
	}

	if !w.movement.Update(c, dt) {
		ev.Blocked = true
	}

	w.checkTriggers(&ev)

	if c.Enter {
		if zone, ok := w.Scenes.NearbyZone(); ok {
			logger.Info("entering scene",
				zap.Int("target", zone.TargetScene),
				zap.String("name", scene.SceneName(zone.TargetScene)))
			w.LoadScene(zone.TargetScene)
			ev.SceneChanged = w.Scenes.CurrentScene()
		}
	}

	if c.Interact && w.Scenes.IsPlayerNearAlien(w.Camera.Position) {
		ev.BagGrabbed = w.Scenes.GrabBag()
	}

	switch {
	case c.Fire:
		ev.Fired = w.Projectiles.Fire(w.Weapon.Muzzle(w.Camera), w.Camera.Front)
	case c.AltFire:
		ev.Fired = w.Projectiles.FirePlasma(w.Weapon.Muzzle(w.Camera), w.Camera.Front)
	}
	if ev.Fired != nil {
		w.Weapon.Kick()
	}

	w.Projectiles.Update(dt)
	w.Weapon.Update(dt)
	w.Scenes.UpdatePortalAnimation(w.time)
	w.Scenes.UpdateBagFollowCamera(w.Camera)

	return ev
}

// checkTriggers reports a zone once on entry and re-arms on exit.
func (w *World) checkTriggers(ev *Events) {
	if w.Scenes.CheckProximityTriggers(w.Camera.Position) < 0 {
		w.messagePrinted = false
		return
	}
	if w.messagePrinted {
		return
	}
	w.messagePrinted = true
	ev.TriggerEntered = w.Scenes.TriggerMessage()
	logger.Info(ev.TriggerEntered)
}
