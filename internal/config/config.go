// Package config handles game configuration loading and management.
package config

import (
	"errors"
	"fmt"
	"time"
)

// Config holds all game settings.
type Config struct {
	Graphics GraphicsConfig `yaml:"graphics"`
	Audio    AudioConfig    `yaml:"audio"`
	Controls ControlsConfig `yaml:"controls"`
	Player   PlayerConfig   `yaml:"player"`
	Weapon   WeaponConfig   `yaml:"weapon"`
	Assets   AssetsConfig   `yaml:"assets"`
	Debug    DebugConfig    `yaml:"debug"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// GraphicsConfig holds display and rendering settings.
type GraphicsConfig struct {
	Width      int     `yaml:"width"`
	Height     int     `yaml:"height"`
	Fullscreen bool    `yaml:"fullscreen"`
	VSync      bool    `yaml:"vsync"`
	FPSLimit   int     `yaml:"fps_limit"`
	FOV        float32 `yaml:"fov"`
	FarPlane   float32 `yaml:"far_plane"`
}

// AudioConfig holds audio settings.
type AudioConfig struct {
	MasterVolume float32 `yaml:"master_volume"`
	MusicVolume  float32 `yaml:"music_volume"`
	SFXVolume    float32 `yaml:"sfx_volume"`
	Muted        bool    `yaml:"muted"`
}

// ControlsConfig holds input settings.
type ControlsConfig struct {
	MouseSensitivity float32 `yaml:"mouse_sensitivity"`
	MoveSpeed        float32 `yaml:"move_speed"` // units per second
	InvertY          bool    `yaml:"invert_y"`
}

// PlayerConfig holds the player's collision probe and camera height.
type PlayerConfig struct {
	Radius              float32 `yaml:"radius"`
	EyeHeight           float32 `yaml:"eye_height"`
	GroundHeight        float32 `yaml:"ground_height"`
	CollisionIterations int     `yaml:"collision_iterations"`
}

// WeaponConfig holds projectile tuning.
type WeaponConfig struct {
	ProjectileSpeed    float32       `yaml:"projectile_speed"`
	ProjectileLifetime time.Duration `yaml:"projectile_lifetime"`
	Cooldown           time.Duration `yaml:"cooldown"`
}

// AssetsConfig holds resource locations.
type AssetsConfig struct {
	Root       string `yaml:"root"`
	ShaderDir  string `yaml:"shader_dir"` // optional override of embedded shaders
	Music      string `yaml:"music"`      // optional looping WAV, relative to root
	StartScene int    `yaml:"start_scene"`
}

// DebugConfig holds debug visualization toggles.
type DebugConfig struct {
	ShowColliders bool `yaml:"show_colliders"`
	ShowTriggers  bool `yaml:"show_triggers"`
	ShowFPS       bool `yaml:"show_fps"`

	ScreenshotDir string `yaml:"screenshot_dir"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level      string `yaml:"level"`
	LogFile    string `yaml:"log_file"`
	MaxSizeMB  int    `yaml:"max_size_mb"`
	MaxBackups int    `yaml:"max_backups"`
	MaxAgeDays int    `yaml:"max_age_days"`
	Compress   bool   `yaml:"compress"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Graphics: GraphicsConfig{
			Width:      1280,
			Height:     720,
			Fullscreen: false,
			VSync:      true,
			FPSLimit:   0,
			FOV:        60,
			FarPlane:   10000,
		},
		Audio: AudioConfig{
			MasterVolume: 0.8,
			MusicVolume:  0.5,
			SFXVolume:    0.8,
			Muted:        false,
		},
		Controls: ControlsConfig{
			MouseSensitivity: 0.1,
			MoveSpeed:        30,
			InvertY:          false,
		},
		Player: PlayerConfig{
			Radius:              2,
			EyeHeight:           1.7,
			GroundHeight:        -10,
			CollisionIterations: 3,
		},
		Weapon: WeaponConfig{
			ProjectileSpeed:    100,
			ProjectileLifetime: 5 * time.Second,
			Cooldown:           150 * time.Millisecond,
		},
		Assets: AssetsConfig{
			Root:       "Resources",
			StartScene: 1,
		},
		Debug: DebugConfig{
			ScreenshotDir: "screenshots",
		},
		Logging: LoggingConfig{
			Level:      "info",
			LogFile:    "",
			MaxSizeMB:  20,
			MaxBackups: 3,
			MaxAgeDays: 7,
			Compress:   true,
		},
	}
}

// Validate reports settings the game cannot run with.
func (c *Config) Validate() error {
	var errs []error
	if c.Graphics.Width <= 0 || c.Graphics.Height <= 0 {
		errs = append(errs, fmt.Errorf("graphics: invalid size %dx%d", c.Graphics.Width, c.Graphics.Height))
	}
	if c.Graphics.FOV <= 0 || c.Graphics.FOV >= 180 {
		errs = append(errs, fmt.Errorf("graphics: fov %.1f out of range (0, 180)", c.Graphics.FOV))
	}
	if c.Player.Radius <= 0 {
		errs = append(errs, fmt.Errorf("player: radius must be positive, got %.2f", c.Player.Radius))
	}
	if c.Player.CollisionIterations < 1 {
		errs = append(errs, fmt.Errorf("player: collision_iterations must be at least 1, got %d", c.Player.CollisionIterations))
	}
	if c.Controls.MoveSpeed <= 0 {
		errs = append(errs, fmt.Errorf("controls: move_speed must be positive, got %.2f", c.Controls.MoveSpeed))
	}
	if c.Weapon.ProjectileSpeed <= 0 {
		errs = append(errs, fmt.Errorf("weapon: projectile_speed must be positive, got %.2f", c.Weapon.ProjectileSpeed))
	}
	if c.Weapon.ProjectileLifetime <= 0 {
		errs = append(errs, fmt.Errorf("weapon: projectile_lifetime must be positive, got %s", c.Weapon.ProjectileLifetime))
	}
	return errors.Join(errs...)
}
