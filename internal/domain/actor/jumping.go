package actor

import (
	"math"

	"github.com/younwookim/labrun/internal/domain/entity"
)

// JumpingState is the jumping actor's FSM state
type JumpingState int

const (
	JumpingIdle JumpingState = iota
	JumpingAttack
)

func (s JumpingState) String() string {
	if s == JumpingAttack {
		return "Attack"
	}
	return "Idle"
}

// JumpingConfig tunes the jumping actor
type JumpingConfig struct {
	Width        int
	Height       int
	IdleSpeed    float64
	AttackSpeed  float64
	IdleHop      float64 // hop height in pixels
	AttackHop    float64
	AttackRadius float64
	LoseRadius   float64
	CloseRange   float64 // horizontal distance where it brakes over the player
	BrakeStill   float64 // vel.x factor when the player stands still
	BrakeMoving  float64
}

// DefaultJumpingConfig returns the default configuration
func DefaultJumpingConfig() JumpingConfig {
	return JumpingConfig{
		Width:        12,
		Height:       16,
		IdleSpeed:    16 * 2,
		AttackSpeed:  16 * 5,
		IdleHop:      16 * 1.2,
		AttackHop:    16 * 3.2,
		AttackRadius: 50,
		LoseRadius:   100,
		CloseRange:   10,
		BrakeStill:   0.9,
		BrakeMoving:  0.96,
	}
}

// Jumping hops back and forth in place and leaps at the player when close
type Jumping struct {
	cfg   JumpingConfig
	State JumpingState
	Dir   float64

	idleJumpVel   float64
	attackJumpVel float64
}

// NewJumping creates a jumping behavior; hop velocities follow from gravity
func NewJumping(cfg JumpingConfig, gravity float64) *Jumping {
	return &Jumping{
		cfg:           cfg,
		Dir:           -1,
		idleJumpVel:   -math.Sqrt(2 * gravity * cfg.IdleHop),
		attackJumpVel: -math.Sqrt(2 * gravity * cfg.AttackHop),
	}
}

// SetDir aims the actor
func (j *Jumping) SetDir(dir float64) { j.Dir = dir }

// CurrentSpeed returns the horizontal hop speed of the current state
func (j *Jumping) CurrentSpeed() float64 {
	if j.State == JumpingAttack {
		return j.cfg.AttackSpeed
	}
	return j.cfg.IdleSpeed
}

// StateName returns the current state
func (j *Jumping) StateName() string { return j.State.String() }

// Update implements Behavior
func (j *Jumping) Update(dt float64, a *Actor, p Player, geo entity.Geometry) {
	if a.OnGround() {
		switch j.State {
		case JumpingIdle:
			j.Dir = -j.Dir
			a.Vel.X = j.cfg.IdleSpeed * j.Dir
			a.Vel.Y = j.idleJumpVel
		case JumpingAttack:
			a.Vel.X = j.cfg.AttackSpeed * j.Dir
			a.Vel.Y = j.attackJumpVel
		}
	}

	pb := p.GetBody()
	if j.State == JumpingAttack {
		j.Dir = sideOf(&a.Body, p)
		if math.Abs(pb.Pos.X-a.Pos.X) < j.cfg.CloseRange {
			if pb.Vel.Len() < 0.1 {
				a.Vel.X *= j.cfg.BrakeStill
			} else {
				a.Vel.X *= j.cfg.BrakeMoving
			}
		}
	}

	distSq := a.Center().DistSq(playerCenter(p))
	if j.State != JumpingAttack && (a.Damaged() || distSq < j.cfg.AttackRadius*j.cfg.AttackRadius) {
		j.State = JumpingAttack
	}
	if j.State == JumpingAttack && distSq > j.cfg.LoseRadius*j.cfg.LoseRadius {
		j.State = JumpingIdle
	}
}
