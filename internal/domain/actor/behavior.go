// Package actor drives non-player actors: a shared wrapper (health, stun,
// kick, damage cooldown) around a pluggable Behavior, plus the boss.
package actor

import "github.com/younwookim/labrun/internal/domain/entity"

// Hazard is the player's effect region (spray)
type Hazard = entity.Hazard

// Player is what actors need to know about the player
type Player interface {
	GetBody() *entity.Body
	Invincible() bool
	Facing() float64
	Hazard() Hazard
	DisplayText(text string, seconds float64)
	ReturnToSpawn()
}

// Behavior decides an actor's velocity for the next physics step.
// It runs before the actor's body is integrated and may read the collision
// signal from the previous tick.
type Behavior interface {
	Update(dt float64, a *Actor, p Player, geo entity.Geometry)
}

// Directed behaviors can be aimed when spawned at runtime
type Directed interface {
	SetDir(dir float64)
	CurrentSpeed() float64
}

// Shooter behaviors own projectiles that also hurt the player
type Shooter interface {
	Projectiles() []*entity.Projectile
}

// Namer behaviors report their current state for debug overlays
type Namer interface {
	StateName() string
}

func playerCenter(p Player) entity.Vec2 {
	return p.GetBody().Center()
}

// sideOf returns 1 when the player's center is right of the body's center, -1 otherwise
func sideOf(b *entity.Body, p Player) float64 {
	if b.Center().X < playerCenter(p).X {
		return 1
	}
	return -1
}
