package system

import (
	"log"

	"github.com/younwookim/labrun/internal/domain/entity"
)

// Pickup types as they appear in stage data
const (
	PickupAcid = "acid"
	PickupKick = "kick"
)

var pickupTexts = map[string][]entity.TextLine{
	PickupAcid: {
		{Text: "Press A to toggle between water and acid", Seconds: 3},
		{Text: "Acid can deal damage to enemies", Seconds: 8},
	},
	PickupKick: {
		{Text: "Press Z to kick", Seconds: 3},
		{Text: "Hold DOWN and Z to kick off of the ground", Seconds: 6},
		{Text: "You can kick enemies away", Seconds: 6},
		{Text: "You can also kick off the wall and frozen enemies", Seconds: 6},
	},
}

// PickupSystem grants abilities when the player touches a pickup.
// Collected pickups stay collected across resets.
type PickupSystem struct {
	pickups []Pickup
}

// NewPickupSystem creates the system with the level's pickups
func NewPickupSystem(level *Level) *PickupSystem {
	return &PickupSystem{pickups: append([]Pickup(nil), level.Pickups...)}
}

// Update collects every pickup the player overlaps
func (s *PickupSystem) Update(player *entity.Player) {
	for i := len(s.pickups) - 1; i >= 0; i-- {
		pk := s.pickups[i]
		if !pk.Rect.Overlaps(player.Rect) {
			continue
		}
		Collect(player, pk.Type)
		s.pickups = append(s.pickups[:i], s.pickups[i+1:]...)
		log.Printf("[PickupSystem] collected %s", pk.Type)
	}
}

// Pickups returns the pickups still lying in the level
func (s *PickupSystem) Pickups() []Pickup {
	return s.pickups
}

// Collect grants the ability named by typ and queues its tutorial text
func Collect(player *entity.Player, typ string) {
	switch typ {
	case PickupAcid:
		player.HasAcid = true
	case PickupKick:
		player.HasKick = true
	default:
		return
	}
	for _, line := range pickupTexts[typ] {
		player.DisplayText(line.Text, line.Seconds)
	}
}
