package system

import (
	"github.com/younwookim/labrun/internal/domain/actor"
	"github.com/younwookim/labrun/internal/domain/entity"
)

// A wall kick stops carrying the player below this speed
const horizontalKickEnd = 100

const kickedPoseTime = 0.2

// PhysicsSystem moves the player: kick resolution, body integration
// against the level and the dynamic colliders, then the spray box
type PhysicsSystem struct {
	geo     entity.Geometry
	scratch []entity.Rect
}

// NewPhysicsSystem creates a new physics system
func NewPhysicsSystem(geo entity.Geometry) *PhysicsSystem {
	return &PhysicsSystem{geo: geo}
}

// Update advances the player one tick. extra holds the dynamic colliders
// (stunned actors, slime); actors are the kick targets.
func (s *PhysicsSystem) Update(player *entity.Player, dt float64, extra []entity.Rect, actors []*actor.Actor) {
	if player.KickTimer > 0 {
		player.KickTimer = entity.Countdown(player.KickTimer, dt)
		s.resolveKick(player, extra, actors)
	}
	if player.KickedTimer > 0 {
		player.KickedTimer = entity.Countdown(player.KickedTimer, dt)
	}

	player.Body.Update(dt, s.geo, extra)
	player.UpdateSpray()
}

// resolveKick launches the player off whatever the kick box touches and
// kicks any actor in front
func (s *PhysicsSystem) resolveKick(player *entity.Player, extra []entity.Rect, actors []*actor.Actor) {
	box := player.KickBox()
	cfg := player.Config

	if player.HoldingDown {
		if s.touchesSolid(box, extra) {
			player.Vel.Y = -cfg.KickPowerY
			player.KickTimer = 0
		}
		return
	}

	dir := player.FacingDir
	if s.touchesSolid(box, extra) {
		player.Vel.X = cfg.KickPowerX * -dir
		player.KickTimer = 0
		player.HorizontalKicking = true
		player.KickDir = dir
	}
	for _, a := range actors {
		if box.Overlaps(a.Rect) {
			a.Kick(cfg.KickPowerX * dir)
			player.KickTimer = 0
			player.KickedTimer = kickedPoseTime
			player.KickDir = dir
		}
	}
}

// touchesSolid reports whether r overlaps level geometry or a dynamic collider
func (s *PhysicsSystem) touchesSolid(r entity.Rect, extra []entity.Rect) bool {
	for _, c := range extra {
		if r.Overlaps(c) {
			return true
		}
	}
	if s.geo == nil {
		return false
	}
	sweep := entity.Sweep{
		MinX: float64(r.X), MinY: float64(r.Y),
		MaxX: float64(r.Right()), MaxY: float64(r.Bottom()),
	}
	s.scratch = s.geo.BroadPhase(sweep, s.scratch[:0])
	for _, c := range s.scratch {
		if r.Overlaps(c) {
			return true
		}
	}
	return false
}
