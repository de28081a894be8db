package system

import (
	"github.com/younwookim/labrun/internal/domain/actor"
	"github.com/younwookim/labrun/internal/infrastructure/config"
)

// BuildCatalog merges actors.yaml over the built-in actor tuning.
// Zero values and nil pointers in cfg keep the default; physics supplies gravity.
func BuildCatalog(cfg *config.ActorsConfig, physics *config.PhysicsConfig) actor.Catalog {
	cat := actor.DefaultCatalog()
	if physics != nil {
		cat.Gravity = orFloat(physics.Physics.Gravity, cat.Gravity)
		cat.MaxFallSpeed = orFloat(physics.Physics.MaxFallSpeed, cat.MaxFallSpeed)
	}
	if cfg == nil {
		return cat
	}

	c := &cat.Common
	c.MaxHealth = orInt(cfg.Common.MaxHealth, c.MaxHealth)
	c.DamageCooldown = orFloat(cfg.Common.DamageCooldown, c.DamageCooldown)
	c.KickDecay = orFloatPtr(cfg.Common.KickDecay, c.KickDecay)
	c.KickStopSpeed = orFloat(cfg.Common.KickStopSpeed, c.KickStopSpeed)

	g := &cat.Ground
	g.Width = orInt(cfg.Ground.Size.Width, g.Width)
	g.Height = orInt(cfg.Ground.Size.Height, g.Height)
	g.WalkSpeed = orFloat(cfg.Ground.WalkSpeed, g.WalkSpeed)
	g.RunSpeed = orFloat(cfg.Ground.RunSpeed, g.RunSpeed)
	g.AttackRadius = orFloat(cfg.Ground.AttackRadius, g.AttackRadius)
	g.LoseRadius = orFloat(cfg.Ground.LoseRadius, g.LoseRadius)
	g.SearchTime = orFloat(cfg.Ground.SearchTime, g.SearchTime)
	g.Steer = orFloat(cfg.Ground.Steer, g.Steer)

	j := &cat.Jumping
	j.Width = orInt(cfg.Jumping.Size.Width, j.Width)
	j.Height = orInt(cfg.Jumping.Size.Height, j.Height)
	j.IdleSpeed = orFloat(cfg.Jumping.IdleSpeed, j.IdleSpeed)
	j.AttackSpeed = orFloat(cfg.Jumping.AttackSpeed, j.AttackSpeed)
	j.IdleHop = orFloat(cfg.Jumping.IdleHop, j.IdleHop)
	j.AttackHop = orFloat(cfg.Jumping.AttackHop, j.AttackHop)
	j.AttackRadius = orFloat(cfg.Jumping.AttackRadius, j.AttackRadius)
	j.LoseRadius = orFloat(cfg.Jumping.LoseRadius, j.LoseRadius)

	f := &cat.Flying
	f.Width = orInt(cfg.Flying.Size.Width, f.Width)
	f.Height = orInt(cfg.Flying.Size.Height, f.Height)
	f.Speed = orFloat(cfg.Flying.Speed, f.Speed)
	f.AngularSpeed = orFloat(cfg.Flying.AngularSpeed, f.AngularSpeed)
	f.ShootRate = orFloat(cfg.Flying.ShootRate, f.ShootRate)
	f.ShootRadius = orFloat(cfg.Flying.ShootRadius, f.ShootRadius)
	f.ProjectileSpeed = orFloat(cfg.Flying.ProjectileSpeed, f.ProjectileSpeed)
	f.ProjectileRange = orFloat(cfg.Flying.ProjectileRange, f.ProjectileRange)

	s := &cat.Slow
	s.Width = orInt(cfg.Slow.Size.Width, s.Width)
	s.Height = orInt(cfg.Slow.Size.Height, s.Height)
	s.Speed = orFloat(cfg.Slow.Speed, s.Speed)

	b := &cat.Boss
	b.Width = orInt(cfg.Boss.Size.Width, b.Width)
	b.Height = orInt(cfg.Boss.Size.Height, b.Height)
	b.DamageCooldown = c.DamageCooldown
	if len(cfg.Boss.Phases) > 0 {
		b.Healths = make([]int, len(cfg.Boss.Phases))
		b.Bands = make([]float64, len(cfg.Boss.Phases))
		for i, p := range cfg.Boss.Phases {
			b.Healths[i] = p.Health
			b.Bands[i] = p.Band
		}
	}
	b.Speed = orFloat(cfg.Boss.Speed, b.Speed)
	b.SpeedFactor = orFloat(cfg.Boss.SpeedFactor, b.SpeedFactor)
	b.ShootRate = orFloat(cfg.Boss.ShootRate, b.ShootRate)
	b.ShootRateStep = orFloatPtr(cfg.Boss.ShootRateStep, b.ShootRateStep)
	b.ProjectileSpeed = orFloat(cfg.Boss.ProjectileSpeed, b.ProjectileSpeed)
	b.Radius = orFloat(cfg.Boss.Radius, b.Radius)
	b.SpawnInterval = orFloat(cfg.Boss.SpawnInterval, b.SpawnInterval)
	b.GroundChance = orFloatPtr(cfg.Boss.GroundChance, b.GroundChance)

	return cat
}

func orInt(v, def int) int {
	if v == 0 {
		return def
	}
	return v
}

func orFloat(v, def float64) float64 {
	if v == 0 {
		return def
	}
	return v
}

func orFloatPtr(v *float64, def float64) float64 {
	if v == nil {
		return def
	}
	return *v
}
