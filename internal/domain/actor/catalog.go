package actor

import (
	"fmt"
	"math/rand"

	"github.com/younwookim/labrun/internal/domain/entity"
)

// Catalog holds the tuning for every kind and builds actors from it
type Catalog struct {
	Gravity      float64
	MaxFallSpeed float64

	Common  CommonConfig
	Ground  GroundConfig
	Jumping JumpingConfig
	Flying  FlyingConfig
	Slow    SlowConfig
	Boss    BossConfig
}

// DefaultCatalog returns the built-in tuning
func DefaultCatalog() Catalog {
	return Catalog{
		Gravity:      entity.DefaultGravity,
		MaxFallSpeed: entity.DefaultMaxFallSpeed,
		Common:       DefaultCommonConfig(),
		Ground:       DefaultGroundConfig(),
		Jumping:      DefaultJumpingConfig(),
		Flying:       DefaultFlyingConfig(),
		Slow:         DefaultSlowConfig(),
		Boss:         DefaultBossConfig(),
	}
}

// New builds an actor of the given kind at pos
func (c *Catalog) New(kind Kind, pos entity.Vec2) (*Actor, error) {
	var a *Actor
	switch kind {
	case KindGround:
		a = NewActor(kind, pos, c.Ground.Width, c.Ground.Height, c.Common, NewGround(c.Ground))
	case KindJumping:
		a = NewActor(kind, pos, c.Jumping.Width, c.Jumping.Height, c.Common, NewJumping(c.Jumping, c.Gravity))
	case KindFlying:
		a = NewActor(kind, pos, c.Flying.Width, c.Flying.Height, c.Common, NewFlying(c.Flying))
		a.ApplyGravity = false
	case KindSlow:
		s := NewSlow(c.Slow)
		a = NewActor(kind, pos, c.Slow.Width, c.Slow.Height, c.Common, s)
		a.Vel.X = s.CurrentSpeed() * s.Dir
	default:
		return nil, fmt.Errorf("new actor: %w: %q", ErrUnknownKind, kind)
	}
	a.Gravity = c.Gravity
	a.MaxFallSpeed = c.MaxFallSpeed
	return a, nil
}

// NewBoss builds the boss at pos
func (c *Catalog) NewBoss(pos entity.Vec2, rng *rand.Rand) *Boss {
	b := NewBoss(pos, c.Boss, rng)
	b.Gravity = c.Gravity
	b.MaxFallSpeed = c.MaxFallSpeed
	return b
}
