package actor

import (
	"math"

	"github.com/younwookim/labrun/internal/domain/entity"
)

// Flash is the overlay an actor should be drawn with
type Flash int

const (
	FlashNone    Flash = iota
	FlashStunned       // fades with the remaining stun
	FlashHit           // first half of the damage cooldown
	FlashRecover       // second half
)

// CommonConfig holds the wrapper tuning shared by every kind
type CommonConfig struct {
	MaxHealth      int
	DamageCooldown float64
	KickDecay      float64 // vel.x multiplier per tick while kicked
	KickStopSpeed  float64 // kicked state ends below this |vel.x|
}

// DefaultCommonConfig returns the default configuration
func DefaultCommonConfig() CommonConfig {
	return CommonConfig{
		MaxHealth:      5,
		DamageCooldown: 0.5,
		KickDecay:      0.9,
		KickStopSpeed:  10,
	}
}

// Actor is a non-player actor: a body plus health, stun and kick state,
// driven by a Behavior.
type Actor struct {
	entity.Body
	Kind Kind

	MaxHealth   int
	Health      int
	DamageTimer float64
	StunTimer   float64
	StunStart   float64
	Kicked      bool
	OnScreen    bool

	cfg      CommonConfig
	behavior Behavior
}

// NewActor wraps a behavior around a fresh body
func NewActor(kind Kind, pos entity.Vec2, w, h int, cfg CommonConfig, behavior Behavior) *Actor {
	a := &Actor{
		Body:      *entity.NewBody(pos, w, h),
		Kind:      kind,
		MaxHealth: cfg.MaxHealth,
		Health:    cfg.MaxHealth,
		cfg:       cfg,
		behavior:  behavior,
	}
	a.ApplyGravity = true
	a.ApplyCollision = true
	return a
}

// Behavior returns the actor's behavior
func (a *Actor) Behavior() Behavior {
	return a.behavior
}

// Stunned reports whether the stun timer is running
func (a *Actor) Stunned() bool {
	return a.StunTimer > 0
}

// Damaged reports whether the damage cooldown is running
func (a *Actor) Damaged() bool {
	return a.DamageTimer > 0
}

// Stun freezes the actor for d seconds
func (a *Actor) Stun(d float64) {
	a.StunStart = d
	a.StunTimer = d
}

// Kick cancels any stun and launches the actor horizontally
func (a *Actor) Kick(vx float64) {
	a.StunTimer = 0
	a.Kicked = true
	a.Vel.X = vx
}

// Damage applies n damage unless the cooldown is running.
// Returns whether the actor is still alive.
func (a *Actor) Damage(n int) bool {
	if a.DamageTimer <= 0 {
		a.Health -= n
		a.DamageTimer = a.cfg.DamageCooldown
	}
	return a.Health > 0
}

// Update runs one tick: stun countdown, kick decay or behavior, then physics
func (a *Actor) Update(dt float64, p Player, geo entity.Geometry, extra []entity.Rect) {
	if a.StunTimer <= 0 {
		if a.Kicked {
			a.Vel.X *= a.cfg.KickDecay
			if math.Abs(a.Vel.X) < a.cfg.KickStopSpeed {
				a.Kicked = false
			}
		} else if a.behavior != nil {
			a.behavior.Update(dt, a, p, geo)
		}
		a.Body.Update(dt, geo, extra)
	} else {
		a.StunTimer = entity.Countdown(a.StunTimer, dt)
	}

	if a.DamageTimer > 0 {
		a.DamageTimer = entity.Countdown(a.DamageTimer, dt)
	}
}

// Collide reports whether r touches the actor or anything it fired
func (a *Actor) Collide(r entity.Rect) bool {
	if s, ok := a.behavior.(Shooter); ok {
		for _, proj := range s.Projectiles() {
			if proj.Hits(r) {
				return true
			}
		}
	}
	return a.Rect.Overlaps(r)
}

// HealthRatio returns health / max health in [0, 1]
func (a *Actor) HealthRatio() float64 {
	if a.MaxHealth <= 0 {
		return 0
	}
	return math.Max(0, float64(a.Health)/float64(a.MaxHealth))
}

// FlashPhase returns the overlay state for rendering
func (a *Actor) FlashPhase() Flash {
	switch {
	case a.StunTimer > 0:
		return FlashStunned
	case a.DamageTimer > a.cfg.DamageCooldown*0.5:
		return FlashHit
	case a.DamageTimer > 0:
		return FlashRecover
	}
	return FlashNone
}

// StunFade returns the remaining stun as a fraction of its start value
func (a *Actor) StunFade() float64 {
	if a.StunStart <= 0 || a.StunTimer <= 0 {
		return 0
	}
	return a.StunTimer / a.StunStart
}
