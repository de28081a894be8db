package config

import (
	"fmt"
	"io/fs"

	"gopkg.in/yaml.v3"
)

// ActorsConfig is the root config for actors.yaml.
// Zero values mean "use the built-in default". Fields where zero is a
// meaningful setting are pointers, nil meaning "use the default".
type ActorsConfig struct {
	Common  CommonActorConfig  `yaml:"common"`
	Ground  GroundActorConfig  `yaml:"ground"`
	Jumping JumpingActorConfig `yaml:"jumping"`
	Flying  FlyingActorConfig  `yaml:"flying"`
	Slow    SlowActorConfig    `yaml:"slow"`
	Boss    BossActorConfig    `yaml:"boss"`
}

// SizeConfig is an actor's collision box
type SizeConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// CommonActorConfig is the health, cooldown and kick tuning shared by every kind
type CommonActorConfig struct {
	MaxHealth      int      `yaml:"maxHealth"`
	DamageCooldown float64  `yaml:"damageCooldown"`
	KickDecay      *float64 `yaml:"kickDecay"`
	KickStopSpeed  float64  `yaml:"kickStopSpeed"`
}

// GroundActorConfig tunes the patrolling ground actor
type GroundActorConfig struct {
	Size         SizeConfig `yaml:"size"`
	WalkSpeed    float64    `yaml:"walkSpeed"`
	RunSpeed     float64    `yaml:"runSpeed"`
	AttackRadius float64    `yaml:"attackRadius"`
	LoseRadius   float64    `yaml:"loseRadius"`
	SearchTime   float64    `yaml:"searchTime"`
	Steer        float64    `yaml:"steer"`
}

// JumpingActorConfig tunes the hopping actor
type JumpingActorConfig struct {
	Size         SizeConfig `yaml:"size"`
	IdleSpeed    float64    `yaml:"idleSpeed"`
	AttackSpeed  float64    `yaml:"attackSpeed"`
	IdleHop      float64    `yaml:"idleHop"`
	AttackHop    float64    `yaml:"attackHop"`
	AttackRadius float64    `yaml:"attackRadius"`
	LoseRadius   float64    `yaml:"loseRadius"`
}

// FlyingActorConfig tunes the circling, shooting actor
type FlyingActorConfig struct {
	Size            SizeConfig `yaml:"size"`
	Speed           float64    `yaml:"speed"`
	AngularSpeed    float64    `yaml:"angularSpeed"`
	ShootRate       float64    `yaml:"shootRate"`
	ShootRadius     float64    `yaml:"shootRadius"`
	ProjectileSpeed float64    `yaml:"projectileSpeed"`
	ProjectileRange float64    `yaml:"projectileRange"`
}

// SlowActorConfig tunes the slow walker
type SlowActorConfig struct {
	Size  SizeConfig `yaml:"size"`
	Speed float64    `yaml:"speed"`
}

// BossPhaseConfig is one row of the boss phase table
type BossPhaseConfig struct {
	Health int     `yaml:"health"`
	Band   float64 `yaml:"band"`
}

// BossActorConfig tunes the boss. Phases replaces the whole default table.
type BossActorConfig struct {
	Size            SizeConfig        `yaml:"size"`
	Phases          []BossPhaseConfig `yaml:"phases"`
	Speed           float64           `yaml:"speed"`
	SpeedFactor     float64           `yaml:"speedFactor"`
	ShootRate       float64           `yaml:"shootRate"`
	ShootRateStep   *float64          `yaml:"shootRateStep"`
	ProjectileSpeed float64           `yaml:"projectileSpeed"`
	Radius          float64           `yaml:"radius"`
	SpawnInterval   float64           `yaml:"spawnInterval"`
	GroundChance    *float64          `yaml:"groundChance"`
}

// ParseActors decodes and validates actors.yaml content
func ParseActors(data []byte) (*ActorsConfig, error) {
	var cfg ActorsConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse actors.yaml: %w", err)
	}
	if err := validateActors(&cfg); err != nil {
		return nil, fmt.Errorf("invalid actors.yaml: %w", err)
	}
	return &cfg, nil
}

// LoadActors loads actors.yaml
func (l *Loader) LoadActors() (*ActorsConfig, error) {
	data, err := fs.ReadFile(l.fsys, "actors.yaml")
	if err != nil {
		return nil, fmt.Errorf("failed to read actors.yaml: %w", err)
	}
	return ParseActors(data)
}

func validateActors(cfg *ActorsConfig) error {
	if cfg.Common.MaxHealth < 0 {
		return fmt.Errorf("common: maxHealth cannot be negative, got %d", cfg.Common.MaxHealth)
	}
	if d := cfg.Common.KickDecay; d != nil && (*d < 0 || *d >= 1) {
		return fmt.Errorf("common: kickDecay must be in [0, 1), got %v", *d)
	}

	sizes := []struct {
		name string
		size SizeConfig
	}{
		{"ground", cfg.Ground.Size},
		{"jumping", cfg.Jumping.Size},
		{"flying", cfg.Flying.Size},
		{"slow", cfg.Slow.Size},
		{"boss", cfg.Boss.Size},
	}
	for _, s := range sizes {
		if s.size.Width < 0 || s.size.Height < 0 {
			return fmt.Errorf("%s: size cannot be negative, got %dx%d", s.name, s.size.Width, s.size.Height)
		}
	}

	if c := cfg.Boss.GroundChance; c != nil && (*c < 0 || *c > 1) {
		return fmt.Errorf("boss: groundChance must be in [0, 1], got %v", *c)
	}
	for i, p := range cfg.Boss.Phases {
		if p.Health <= 0 {
			return fmt.Errorf("boss phase %d: health must be positive, got %d", i, p.Health)
		}
		if p.Band < 0 {
			return fmt.Errorf("boss phase %d: band cannot be negative, got %v", i, p.Band)
		}
	}

	return nil
}
