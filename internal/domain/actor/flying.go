package actor

import (
	"math"

	"github.com/younwookim/labrun/internal/domain/entity"
)

// FlyingConfig tunes the flying actor
type FlyingConfig struct {
	Width           int
	Height          int
	Speed           float64
	AngularSpeed    float64 // rad/s
	ShootRate       float64 // seconds between shots
	ShootRadius     float64
	ProjectileSpeed float64
	ProjectileRange float64 // 0 = until it hits a wall
}

// DefaultFlyingConfig returns the default configuration
func DefaultFlyingConfig() FlyingConfig {
	return FlyingConfig{
		Width:           12,
		Height:          16,
		Speed:           16 * 3,
		AngularSpeed:    3,
		ShootRate:       1,
		ShootRadius:     200,
		ProjectileSpeed: entity.DefaultProjectileSpeed,
	}
}

// Flying circles in place, ignoring gravity, and shoots at a nearby player
type Flying struct {
	cfg         FlyingConfig
	Angle       float64
	ShootTimer  float64
	projectiles []*entity.Projectile
}

// NewFlying creates a flying behavior
func NewFlying(cfg FlyingConfig) *Flying {
	return &Flying{cfg: cfg, ShootTimer: cfg.ShootRate}
}

// Projectiles implements Shooter
func (f *Flying) Projectiles() []*entity.Projectile { return f.projectiles }

// StateName returns the current state
func (f *Flying) StateName() string { return "Circle" }

// Update implements Behavior
func (f *Flying) Update(dt float64, a *Actor, p Player, geo entity.Geometry) {
	f.Angle = math.Mod(f.Angle+f.cfg.AngularSpeed*dt, 2*math.Pi)
	a.Vel.X = math.Sin(f.Angle) * f.cfg.Speed
	a.Vel.Y = math.Cos(f.Angle) * f.cfg.Speed

	if a.OnScreen && a.Pos.DistSq(p.GetBody().Pos) < f.cfg.ShootRadius*f.cfg.ShootRadius {
		if f.ShootTimer <= 0 {
			f.ShootTimer = f.cfg.ShootRate
			proj := entity.NewProjectile(a.Center(), playerCenter(p), f.cfg.ProjectileSpeed)
			proj.MaxRange = f.cfg.ProjectileRange
			f.projectiles = append(f.projectiles, proj)
		} else {
			f.ShootTimer = entity.Countdown(f.ShootTimer, dt)
		}
	}

	f.projectiles = entity.UpdateProjectiles(f.projectiles, dt, geo)
}
