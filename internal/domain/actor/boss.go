package actor

import (
	"math"
	"math/rand"

	"github.com/younwookim/labrun/internal/domain/entity"
)

// BossConfig tunes the boss. Healths and Bands are indexed by phase and
// must have the same length; the phase count is len(Healths).
type BossConfig struct {
	Width           int
	Height          int
	Healths         []int
	Bands           []float64 // patrol half-width around spawn X, 0 = walls only
	Speed           float64
	SpeedFactor     float64 // speed multiplier per phase advance
	DamageCooldown  float64
	ShootRate       float64
	ShootRateStep   float64 // added to ShootRate per phase advance
	ProjectileSpeed float64
	Radius          float64 // shooting and spawning range
	SpawnInterval   float64
	GroundChance    float64 // probability a spawned actor is Ground rather than Slow
}

// DefaultBossConfig returns the default configuration
func DefaultBossConfig() BossConfig {
	return BossConfig{
		Width:           12,
		Height:          16,
		Healths:         []int{5, 10, 20},
		Bands:           []float64{50, 100, 175},
		Speed:           16 * 3.5,
		SpeedFactor:     0.67,
		DamageCooldown:  0.5,
		ShootRate:       0.5,
		ShootRateStep:   1,
		ProjectileSpeed: 16 * 5,
		Radius:          250,
		SpawnInterval:   5,
		GroundChance:    0.25,
	}
}

// SpawnRequest asks the owner to create an actor
type SpawnRequest struct {
	Kind Kind
	Pos  entity.Vec2
	Dir  float64
}

// Boss is a multi-phase actor. Each defeat of a phase grows it, slows it,
// makes it invincible until a weak point is broken and unlocks a new attack.
type Boss struct {
	entity.Body
	cfg BossConfig
	rng *rand.Rand

	SpawnX      float64
	Phase       int
	Health      int
	DamageTimer float64
	Invincible  bool
	Dir         float64

	speed       float64
	shootRate   float64
	shootTimer  float64
	spawnTimer  float64
	projectiles []*entity.Projectile

	spawn    SpawnRequest
	hasSpawn bool
}

// NewBoss creates a boss in phase 0 walking left
func NewBoss(pos entity.Vec2, cfg BossConfig, rng *rand.Rand) *Boss {
	b := &Boss{
		Body:       *entity.NewBody(pos, cfg.Width, cfg.Height),
		cfg:        cfg,
		rng:        rng,
		SpawnX:     pos.X,
		Health:     cfg.Healths[0],
		Dir:        -1,
		speed:      cfg.Speed,
		shootRate:  cfg.ShootRate,
		shootTimer: cfg.ShootRate,
		spawnTimer: cfg.SpawnInterval,
	}
	b.ApplyGravity = true
	b.ApplyCollision = true
	b.Vel.X = b.speed * b.Dir
	return b
}

// Phases returns the number of phases
func (b *Boss) Phases() int { return len(b.cfg.Healths) }

// MaxHealth returns the current phase's health cap
func (b *Boss) MaxHealth() int { return b.cfg.Healths[b.Phase] }

// HealthRatio returns health / cap of the current phase
func (b *Boss) HealthRatio() float64 {
	return math.Max(0, float64(b.Health)/float64(b.MaxHealth()))
}

// Speed returns the current patrol speed
func (b *Boss) Speed() float64 { return b.speed }

// ShootRate returns the current projectile cooldown
func (b *Boss) ShootRate() float64 { return b.shootRate }

// Projectiles returns the live projectiles
func (b *Boss) Projectiles() []*entity.Projectile { return b.projectiles }

// Collide reports whether r touches the boss or one of its projectiles
func (b *Boss) Collide(r entity.Rect) bool {
	for _, proj := range b.projectiles {
		if proj.Hits(r) {
			return true
		}
	}
	return b.Rect.Overlaps(r)
}

// Damage applies n damage unless invincible or cooling down. Reaching zero
// health advances the phase; returns false once the last phase is beaten.
func (b *Boss) Damage(n int) bool {
	if b.Invincible {
		return true
	}
	if b.DamageTimer <= 0 {
		b.Health -= n
		b.DamageTimer = b.cfg.DamageCooldown
	}
	if b.Health > 0 {
		return true
	}

	b.Phase++
	if b.Phase >= b.Phases() {
		b.Phase = b.Phases() - 1
		return false
	}
	b.Health = b.cfg.Healths[b.Phase]
	b.Invincible = true
	b.shootRate += b.cfg.ShootRateStep
	b.speed *= b.cfg.SpeedFactor

	b.Pos.X = b.SpawnX
	b.Pos.Y -= float64(b.Height)
	b.Resize(b.Width*2, b.Height*2)
	return true
}

// TakeSpawnRequest returns the pending spawn request, once
func (b *Boss) TakeSpawnRequest() (SpawnRequest, bool) {
	if !b.hasSpawn {
		return SpawnRequest{}, false
	}
	b.hasSpawn = false
	return b.spawn, true
}

func (b *Boss) band() float64 {
	if b.Phase < len(b.cfg.Bands) {
		return b.cfg.Bands[b.Phase]
	}
	return 0
}

// Update runs one tick of the phase machine followed by physics
func (b *Boss) Update(dt float64, p Player, geo entity.Geometry, extra []entity.Rect) {
	if b.DamageTimer > 0 {
		b.DamageTimer = entity.Countdown(b.DamageTimer, dt)
	}

	if b.CollisionDir.Side() {
		b.Dir = -b.Dir
	} else if band := b.band(); band > 0 {
		dx := b.Pos.X - b.SpawnX
		if math.Abs(dx) > band && dx*b.Dir > 0 {
			b.Dir = -b.Dir
			b.Pos.X += b.speed * b.Dir * dt * 2
			b.UpdateRectPos()
		}
	}
	b.Vel.X = b.speed * b.Dir

	if b.Phase > 0 {
		b.projectiles = entity.UpdateProjectiles(b.projectiles, dt, geo)
	}

	inRange := b.Center().DistSq(playerCenter(p)) < b.cfg.Radius*b.cfg.Radius
	switch {
	case b.Phase == 1 && inRange:
		if b.shootTimer <= 0 {
			b.shootTimer = b.shootRate
			b.projectiles = append(b.projectiles,
				entity.NewProjectile(b.Center(), playerCenter(p), b.cfg.ProjectileSpeed))
		} else {
			b.shootTimer = entity.Countdown(b.shootTimer, dt)
		}
	case b.Phase == 2 && inRange:
		if b.spawnTimer <= 0 {
			b.spawnTimer = b.cfg.SpawnInterval
			kind := KindSlow
			if b.rng.Float64() < b.cfg.GroundChance {
				kind = KindGround
			}
			b.spawn = SpawnRequest{Kind: kind, Pos: b.Center(), Dir: sideOf(&b.Body, p)}
			b.hasSpawn = true
		} else {
			b.spawnTimer = entity.Countdown(b.spawnTimer, dt)
		}
	}

	b.Body.Update(dt, geo, extra)
}
