// Package game implements the main loop: it owns the window, renderer,
// resources and audio, and drives the world once per frame.
package game

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/veandco/go-sdl2/sdl"
	"go.uber.org/zap"

	"github.com/Faultbox/varkon/internal/assets"
	"github.com/Faultbox/varkon/internal/config"
	"github.com/Faultbox/varkon/internal/engine/audio"
	"github.com/Faultbox/varkon/internal/engine/camera"
	"github.com/Faultbox/varkon/internal/engine/debug"
	"github.com/Faultbox/varkon/internal/engine/gfx"
	"github.com/Faultbox/varkon/internal/engine/input"
	"github.com/Faultbox/varkon/internal/engine/renderer"
	"github.com/Faultbox/varkon/internal/engine/window"
	"github.com/Faultbox/varkon/internal/game/projectile"
	"github.com/Faultbox/varkon/internal/game/scene"
	"github.com/Faultbox/varkon/internal/game/weapon"
	"github.com/Faultbox/varkon/internal/game/world"
	"github.com/Faultbox/varkon/internal/logger"
)

// Title is the window title prefix.
const Title = "Varkon"

// maxFrameDelta caps dt after a stall so the player cannot tunnel through
// colliders.
const maxFrameDelta = 0.1

// Game is the main game instance.
type Game struct {
	cfg     *config.Config
	running bool

	window   *window.Window
	renderer *renderer.Renderer
	input    *input.Input
	assets   *assets.Manager
	audio    *audio.Manager

	camera *camera.FPSCamera
	world  *world.World

	// Procedural meshes, resolved once.
	stars  gfx.Drawable
	ground gfx.Drawable
	bullet gfx.Drawable

	screenshots *debug.Screenshots
	capture     bool

	fps   int
	title string
}

// New creates the window and GL context, loads resources and the start scene.
func New(cfg *config.Config) (*Game, error) {
	logger.Info("initializing game",
		zap.Int("width", cfg.Graphics.Width),
		zap.Int("height", cfg.Graphics.Height),
		zap.Bool("fullscreen", cfg.Graphics.Fullscreen),
	)

	g := &Game{cfg: cfg}

	// Create window (this also creates OpenGL context)
	var err error
	g.window, err = window.New(window.Config{
		Title:      Title,
		Width:      cfg.Graphics.Width,
		Height:     cfg.Graphics.Height,
		Fullscreen: cfg.Graphics.Fullscreen,
		VSync:      cfg.Graphics.VSync,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create window: %w", err)
	}

	width, height := g.window.GetSize()

	// Create renderer (AFTER window, since OpenGL context must exist)
	g.renderer, err = renderer.New(renderer.Config{
		Width:     width,
		Height:    height,
		ShaderDir: cfg.Assets.ShaderDir,
	})
	if err != nil {
		g.window.Close()
		return nil, fmt.Errorf("failed to create renderer: %w", err)
	}

	g.input = input.New()
	g.screenshots = debug.NewScreenshots(cfg.Debug.ScreenshotDir, "varkon")

	g.assets = assets.NewManager(g.renderer, cfg.Assets.Root)
	g.assets.LoadAll()
	g.stars = g.assets.Mesh(assets.MeshStars)
	g.ground = g.assets.Mesh(assets.MeshGround)
	g.bullet = g.assets.Mesh(assets.MeshBullet)

	g.initAudio()

	g.camera = newCamera(cfg, width, height)
	scenes := scene.NewManager(g.assets, nil)
	gun := weapon.NewViewModel(g.assets.Mesh("gun"))
	g.world = world.New(worldConfig(cfg), g.camera, scenes, gun)
	g.world.LoadScene(cfg.Assets.StartScene)

	g.window.CaptureMouse(true)

	textures, meshes := g.assets.Stats()
	logger.Info("game initialized successfully",
		zap.String("scene", scene.SceneName(scenes.CurrentScene())),
		zap.Int("objects", scenes.ObjectCount()),
		zap.Int("colliders", scenes.Colliders().Len()),
		zap.Int("textures", textures),
		zap.Int("meshes", meshes),
	)
	return g, nil
}

func newCamera(cfg *config.Config, width, height int) *camera.FPSCamera {
	cam := camera.NewDefaultFPSCamera()
	cam.Sensitivity = cfg.Controls.MouseSensitivity
	cam.InvertY = cfg.Controls.InvertY
	cam.GroundHeight = cfg.Player.GroundHeight
	cam.EyeHeight = cfg.Player.EyeHeight
	cam.Fov = cfg.Graphics.FOV
	if cfg.Graphics.FarPlane > 0 {
		cam.Far = cfg.Graphics.FarPlane
	}
	cam.SetViewport(width, height)
	cam.SetPosition(cam.Position)
	return cam
}

func worldConfig(cfg *config.Config) world.Config {
	return world.Config{
		MoveSpeed:           cfg.Controls.MoveSpeed,
		PlayerRadius:        cfg.Player.Radius,
		CollisionIterations: cfg.Player.CollisionIterations,
		Weapon: projectile.Config{
			Speed:       cfg.Weapon.ProjectileSpeed,
			MaxLifetime: float32(cfg.Weapon.ProjectileLifetime.Seconds()),
			Cooldown:    float32(cfg.Weapon.Cooldown.Seconds()),
		},
	}
}

// initAudio opens the audio device. The game runs silently if it fails.
func (g *Game) initAudio() {
	g.audio = audio.New()
	if err := g.audio.Init(); err != nil {
		logger.Warn("audio unavailable, continuing without sound", zap.Error(err))
		return
	}

	a := g.cfg.Audio
	g.audio.SetMasterVolume(float64(a.MasterVolume))
	g.audio.SetBGMVolume(float64(a.MusicVolume))
	g.audio.SetSFXVolume(float64(a.SFXVolume))
	g.audio.SetMuted(a.Muted)

	if g.cfg.Assets.Music != "" {
		path := g.cfg.Assets.Music
		if !filepath.IsAbs(path) {
			path = filepath.Join(g.cfg.Assets.Root, path)
		}
		if err := g.audio.PlayBGM(path); err != nil {
			logger.Warn("failed to play music", zap.String("path", path), zap.Error(err))
		}
	}
}

// Run starts the main game loop.
func (g *Game) Run() error {
	g.running = true

	// Timing
	lastTime := time.Now()
	frameCount := 0
	fpsTimer := time.Now()

	var frameBudget time.Duration
	if g.cfg.Graphics.FPSLimit > 0 {
		frameBudget = time.Second / time.Duration(g.cfg.Graphics.FPSLimit)
	}

	logger.Info("starting game loop")

	for g.running {
		frameStart := time.Now()
		dt := frameStart.Sub(lastTime).Seconds()
		lastTime = frameStart
		if dt > maxFrameDelta {
			dt = maxFrameDelta
		}

		// 1. Process input
		if g.input.Update() {
			g.running = false
			break
		}
		g.handleSystemInput()
		if !g.running {
			break
		}

		// 2. Update game state
		ev := g.world.Step(float32(dt), g.controls())
		g.handleEvents(ev)

		// 3. Render
		g.render()
		if g.capture {
			g.capture = false
			g.saveScreenshot()
		}

		// 4. Present (swap buffers)
		g.window.SwapBuffers()

		// FPS counter
		frameCount++
		if time.Since(fpsTimer) >= time.Second {
			g.fps = frameCount
			logger.Debug("fps", zap.Int("count", frameCount), zap.String("dt", fmt.Sprintf("%.2fms", dt*1000)))
			frameCount = 0
			fpsTimer = time.Now()
		}
		g.updateTitle()

		if frameBudget > 0 {
			if spare := frameBudget - time.Since(frameStart); spare > 0 {
				time.Sleep(spare)
			}
		}
	}

	return nil
}

// handleSystemInput handles quit, resize and debug toggles.
func (g *Game) handleSystemInput() {
	if g.input.IsKeyPressed(sdl.SCANCODE_ESCAPE) {
		g.running = false
		return
	}

	if _, _, ok := g.input.Resized(); ok {
		// Window size is in points; the viewport needs pixels.
		w, h := g.window.GetSize()
		g.renderer.Resize(w, h)
		g.camera.SetViewport(w, h)
	}

	dbg := &g.cfg.Debug
	if g.input.IsKeyPressed(sdl.SCANCODE_F1) {
		dbg.ShowColliders = !dbg.ShowColliders
		logger.Info("collider overlay", zap.Bool("enabled", dbg.ShowColliders))
	}
	if g.input.IsKeyPressed(sdl.SCANCODE_F2) {
		dbg.ShowTriggers = !dbg.ShowTriggers
		logger.Info("trigger overlay", zap.Bool("enabled", dbg.ShowTriggers))
	}
	if g.input.IsKeyPressed(sdl.SCANCODE_F3) {
		dbg.ShowFPS = !dbg.ShowFPS
	}
	if g.input.IsKeyPressed(sdl.SCANCODE_F12) {
		g.capture = true
	}
	if g.input.IsKeyPressed(sdl.SCANCODE_M) {
		g.audio.SetMuted(!g.audio.IsMuted())
		logger.Info("audio", zap.Bool("muted", g.audio.IsMuted()))
	}
}

// controls maps the polled input to world controls.
func (g *Game) controls() world.Controls {
	in := g.input
	dx, dy := in.MouseDelta()
	return world.Controls{
		Forward: in.IsKeyDown(sdl.SCANCODE_W),
		Back:    in.IsKeyDown(sdl.SCANCODE_S),
		Left:    in.IsKeyDown(sdl.SCANCODE_A),
		Right:   in.IsKeyDown(sdl.SCANCODE_D),
		Up:      in.IsKeyDown(sdl.SCANCODE_R),
		Down:    in.IsKeyDown(sdl.SCANCODE_F),

		// SDL reports Y growing downward.
		LookX: float32(dx),
		LookY: float32(-dy),

		Fire:     in.IsMousePressed(sdl.BUTTON_LEFT),
		AltFire:  in.IsMousePressed(sdl.BUTTON_RIGHT),
		Enter:    in.IsKeyPressed(sdl.SCANCODE_N),
		Interact: in.IsKeyPressed(sdl.SCANCODE_T),
	}
}

// handleEvents turns world events into sound and log output.
func (g *Game) handleEvents(ev world.Events) {
	if p := ev.Fired; p != nil {
		if p.Kind == projectile.KindPlasma {
			g.audio.PlaySFX(audio.SFXPlasma)
		} else {
			g.audio.PlaySFX(audio.SFXShot)
		}
	}
	if ev.SceneChanged != 0 {
		g.audio.PlaySFX(audio.SFXPortal)
		logger.Info("scene loaded",
			zap.String("name", scene.SceneName(ev.SceneChanged)),
			zap.Int("objects", g.world.Scenes.ObjectCount()),
			zap.Int("colliders", g.world.Colliders.Len()))
	}
	if ev.BagGrabbed {
		g.audio.PlaySFX(audio.SFXPickup)
		logger.Info("grabbed the bag")
	}
	if ev.Blocked {
		logger.Debug("movement blocked", zap.Any("position", g.camera.Position))
	}
}

func (g *Game) saveScreenshot() {
	pixels, w, h := g.renderer.ReadPixels()
	path, err := g.screenshots.Save(pixels, w, h)
	if err != nil {
		logger.Warn("screenshot failed", zap.Error(err))
		return
	}
	logger.Info("screenshot saved", zap.String("path", path))
}

// updateTitle shows the scene, an optional FPS counter and the nearby
// trigger message.
func (g *Game) updateTitle() {
	var b strings.Builder
	b.WriteString(Title)
	b.WriteString(" - ")
	b.WriteString(scene.SceneName(g.world.Scenes.CurrentScene()))
	if g.cfg.Debug.ShowFPS {
		fmt.Fprintf(&b, " | %d FPS", g.fps)
	}
	if msg := g.world.Scenes.TriggerMessage(); msg != "" {
		b.WriteString(" | ")
		b.WriteString(msg)
	}

	if title := b.String(); title != g.title {
		g.title = title
		g.window.SetTitle(title)
	}
}

// Close cleans up game resources.
func (g *Game) Close() {
	logger.Info("closing game")

	if g.audio != nil {
		g.audio.Close()
	}
	if g.assets != nil {
		g.assets.Clear()
	}
	if g.renderer != nil {
		g.renderer.Close()
	}
	if g.window != nil {
		g.window.Close()
	}
}
