package projectile

import (
	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"

	"github.com/Faultbox/varkon/internal/logger"
)

// Config tunes fired bullets.
type Config struct {
	Speed       float32
	MaxLifetime float32
	// Cooldown is the minimum time between shots in seconds.
	Cooldown float32
}

// DefaultConfig returns the stock weapon tuning.
func DefaultConfig() Config {
	return Config{
		Speed:       BulletSpeed,
		MaxLifetime: BulletMaxLifetime,
		Cooldown:    0.15,
	}
}

// System owns every live projectile.
type System struct {
	cfg         Config
	projectiles []*Projectile
	cooldown    float32
	fired       int
}

// NewSystem creates an empty projectile system.
func NewSystem(cfg Config) *System {
	if cfg.Speed <= 0 {
		cfg.Speed = BulletSpeed
	}
	if cfg.MaxLifetime <= 0 {
		cfg.MaxLifetime = BulletMaxLifetime
	}
	if cfg.Cooldown < 0 {
		cfg.Cooldown = 0
	}
	return &System{cfg: cfg}
}

// CanFire reports whether the cooldown has elapsed.
func (s *System) CanFire() bool {
	return s.cooldown <= 0
}

// Fire spawns a bullet. It returns nil while the weapon is cooling down.
func (s *System) Fire(origin, dir mgl32.Vec3) *Projectile {
	if !s.CanFire() {
		return nil
	}
	return s.spawn(New(KindBullet, origin, dir, s.cfg.Speed, s.cfg.MaxLifetime))
}

// FirePlasma spawns a plasma ball, sharing the bullet cooldown.
func (s *System) FirePlasma(origin, dir mgl32.Vec3) *Projectile {
	if !s.CanFire() {
		return nil
	}
	return s.spawn(NewPlasma(origin, dir))
}

func (s *System) spawn(p *Projectile) *Projectile {
	s.projectiles = append(s.projectiles, p)
	s.cooldown = s.cfg.Cooldown
	s.fired++
	logger.Debug("projectile fired",
		zap.Stringer("kind", p.Kind),
		zap.Int("active", len(s.projectiles)))
	return p
}

// Update advances every projectile and drops expired ones.
func (s *System) Update(dt float32) {
	if s.cooldown > 0 {
		s.cooldown -= dt
	}

	live := s.projectiles[:0]
	for _, p := range s.projectiles {
		p.Update(dt)
		if p.Active() {
			live = append(live, p)
		}
	}
	for i := len(live); i < len(s.projectiles); i++ {
		s.projectiles[i] = nil
	}
	s.projectiles = live
}

// Active returns the live projectiles.
func (s *System) Active() []*Projectile {
	return s.projectiles
}

// Fired returns the total number of shots.
func (s *System) Fired() int {
	return s.fired
}

// Clear removes every projectile.
func (s *System) Clear() {
	s.projectiles = nil
}
