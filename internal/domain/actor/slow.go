package actor

import "github.com/younwookim/labrun/internal/domain/entity"

// SlowConfig tunes the slow actor
type SlowConfig struct {
	Width  int
	Height int
	Speed  float64
}

// DefaultSlowConfig returns the default configuration
func DefaultSlowConfig() SlowConfig {
	return SlowConfig{Width: 12, Height: 16, Speed: 16 * 3.5}
}

// Slow walks back and forth between walls at constant speed
type Slow struct {
	cfg SlowConfig
	Dir float64
}

// NewSlow creates a slow behavior facing right
func NewSlow(cfg SlowConfig) *Slow {
	return &Slow{cfg: cfg, Dir: 1}
}

// SetDir aims the actor
func (s *Slow) SetDir(dir float64) { s.Dir = dir }

// CurrentSpeed returns the constant patrol speed
func (s *Slow) CurrentSpeed() float64 { return s.cfg.Speed }

// StateName returns the current state
func (s *Slow) StateName() string { return "Patrol" }

// Update implements Behavior
func (s *Slow) Update(dt float64, a *Actor, p Player, geo entity.Geometry) {
	a.Vel.X = s.cfg.Speed * s.Dir
	if a.CollisionDir.Side() {
		s.Dir = -s.Dir
		a.Vel.X = s.cfg.Speed * s.Dir
		// step off the wall so the next tick doesn't hit it again
		a.Pos.X += a.Vel.X * 2 * dt
		a.UpdateRectPos()
	}
}
