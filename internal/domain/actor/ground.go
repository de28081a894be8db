package actor

import "github.com/younwookim/labrun/internal/domain/entity"

// GroundState is the ground actor's FSM state
type GroundState int

const (
	GroundPatrol GroundState = iota
	GroundAttack
	GroundSearch
)

func (s GroundState) String() string {
	switch s {
	case GroundPatrol:
		return "Patrol"
	case GroundAttack:
		return "Attack"
	case GroundSearch:
		return "Search"
	default:
		return "Unknown"
	}
}

// GroundConfig tunes the ground actor (pixels, seconds)
type GroundConfig struct {
	Width        int
	Height       int
	WalkSpeed    float64
	RunSpeed     float64
	AttackRadius float64 // enter Attack inside this distance
	LoseRadius   float64 // leave Attack outside this distance
	SearchTime   float64
	Steer        float64 // lerp factor toward the player per tick
}

// DefaultGroundConfig returns the default configuration
func DefaultGroundConfig() GroundConfig {
	return GroundConfig{
		Width:        12,
		Height:       10,
		WalkSpeed:    16 * 3,
		RunSpeed:     16 * 4.5,
		AttackRadius: 50,
		LoseRadius:   125,
		SearchTime:   2,
		Steer:        0.05,
	}
}

// Ground patrols platforms, charges the player on sight and searches for a
// while after losing it.
type Ground struct {
	cfg         GroundConfig
	State       GroundState
	Dir         float64
	SearchTimer float64
}

// NewGround creates a ground behavior facing right
func NewGround(cfg GroundConfig) *Ground {
	return &Ground{cfg: cfg, Dir: 1}
}

// SetDir aims the actor
func (g *Ground) SetDir(dir float64) { g.Dir = dir }

// CurrentSpeed returns walk speed while patrolling, run speed otherwise
func (g *Ground) CurrentSpeed() float64 {
	if g.State == GroundPatrol {
		return g.cfg.WalkSpeed
	}
	return g.cfg.RunSpeed
}

// StateName returns the current state
func (g *Ground) StateName() string { return g.State.String() }

// Update implements Behavior
func (g *Ground) Update(dt float64, a *Actor, p Player, geo entity.Geometry) {
	distSq := a.Center().DistSq(playerCenter(p))

	switch g.State {
	case GroundPatrol:
		if a.CollisionDir.Side() || g.atLedge(a, geo) {
			g.Dir = -g.Dir
		}
		a.Vel.X = g.cfg.WalkSpeed * g.Dir
	case GroundAttack:
		g.Dir = entity.Lerp(g.Dir, sideOf(&a.Body, p), g.cfg.Steer)
		a.Vel.X = g.cfg.RunSpeed * g.Dir
		if distSq > g.cfg.LoseRadius*g.cfg.LoseRadius {
			g.changeState(GroundSearch, a)
		}
	case GroundSearch:
		a.Vel.X = g.cfg.RunSpeed * g.Dir
		g.SearchTimer = entity.Countdown(g.SearchTimer, dt)
		if g.SearchTimer <= 0 {
			g.changeState(GroundPatrol, a)
		}
	}

	if g.State != GroundAttack && (a.Damaged() || distSq < g.cfg.AttackRadius*g.cfg.AttackRadius) {
		g.changeState(GroundAttack, a)
	}
}

// atLedge reports standing on ground with nothing solid under the leading foot
func (g *Ground) atLedge(a *Actor, geo entity.Geometry) bool {
	if geo == nil || !a.OnGround() {
		return false
	}
	foot := entity.Vec2{X: float64(a.Rect.X) - 1, Y: float64(a.Rect.Bottom())}
	if g.Dir > 0 {
		foot.X = float64(a.Rect.Right())
	}
	return !geo.CollidePoint(foot)
}

func (g *Ground) changeState(s GroundState, a *Actor) {
	a.Vel.X = 0
	if s != GroundAttack {
		g.Dir = entity.Sign(g.Dir)
		g.SearchTimer = g.cfg.SearchTime
	}
	g.State = s
}
