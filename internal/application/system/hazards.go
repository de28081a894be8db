package system

import (
	"github.com/younwookim/labrun/internal/domain/actor"
	"github.com/younwookim/labrun/internal/domain/entity"
	"github.com/younwookim/labrun/internal/infrastructure/config"
)

// Slime is a solid block the damaging spray dissolves.
// Its collider keeps the full tile size; Side only shrinks the drawn block.
type Slime struct {
	Rect entity.Rect
	Side float64
}

// Fire is a lethal tile that the spray puts out for a while
type Fire struct {
	Rect  entity.Rect
	Timer float64 // > 0 while doused
}

// Doused reports whether the fire is currently out
func (f Fire) Doused() bool {
	return f.Timer > 0
}

// HazardSystem owns the level's acid, slime and fire tiles
type HazardSystem struct {
	level  *Level
	combat config.CombatConfig

	slime []Slime
	fire  []Fire
	rects []entity.Rect

	reset bool
}

// NewHazardSystem creates the hazard system. Call Setup before Update.
func NewHazardSystem(level *Level, combat config.CombatConfig) *HazardSystem {
	return &HazardSystem{level: level, combat: withCombatDefaults(combat)}
}

// Setup restores every slime block and relights every fire
func (h *HazardSystem) Setup() {
	h.reset = false
	ts := float64(h.level.TileSize)

	h.slime = h.slime[:0]
	for _, r := range h.level.Slime {
		h.slime = append(h.slime, Slime{Rect: r, Side: ts})
	}
	h.fire = h.fire[:0]
	for _, r := range h.level.Fire {
		h.fire = append(h.fire, Fire{Rect: r})
	}
}

// Update applies the spray to slime and fire and checks the player against
// every lethal tile
func (h *HazardSystem) Update(dt float64, p actor.Player) {
	rect := p.GetBody().Rect
	hazard := p.Hazard()
	hit := false

	for _, r := range h.level.Acid {
		if rect.Overlaps(r) {
			hit = true
		}
	}

	if hazard.Damaging() {
		for i := len(h.slime) - 1; i >= 0; i-- {
			if !hazard.Overlaps(h.slime[i].Rect) {
				continue
			}
			h.slime[i].Side -= h.combat.SlimeShrink
			if h.slime[i].Side <= h.combat.SlimeMinSide {
				h.slime = append(h.slime[:i], h.slime[i+1:]...)
			}
		}
	}

	for i := range h.fire {
		f := &h.fire[i]
		if hazard.Overlaps(f.Rect) {
			f.Timer = h.combat.FireDouse
		} else if !f.Doused() && rect.Overlaps(f.Rect) {
			hit = true
		}
		if f.Timer > 0 {
			f.Timer = entity.Countdown(f.Timer, dt)
		}
	}

	h.reset = hit && !p.Invincible()
}

// Rects returns the slime colliders. The slice is reused between calls.
func (h *HazardSystem) Rects() []entity.Rect {
	h.rects = h.rects[:0]
	for _, s := range h.slime {
		h.rects = append(h.rects, s.Rect)
	}
	return h.rects
}

// Reset reports whether a hazard killed the player during the last Update
func (h *HazardSystem) Reset() bool {
	return h.reset
}

// Slime returns the remaining slime blocks
func (h *HazardSystem) Slime() []Slime {
	return h.slime
}

// Fire returns every fire tile
func (h *HazardSystem) Fire() []Fire {
	return h.fire
}

// Acid returns the acid tiles
func (h *HazardSystem) Acid() []entity.Rect {
	return h.level.Acid
}
