package systems

import (
	"github.com/chessdroid108/TagArena/constants"
	"github.com/chessdroid108/TagArena/engine"
	"github.com/chessdroid108/TagArena/entity"
	"github.com/chessdroid108/TagArena/event"
)

// PickupSystem hands pickups to overlapping players. Freeze is the only
// kind that targets the other players instead of the collector.
type PickupSystem struct{}

// NewPickupSystem creates the pickup stage
func NewPickupSystem() *PickupSystem {
	return &PickupSystem{}
}

// Priority returns the system's priority
func (s *PickupSystem) Priority() int {
	return constants.PriorityPickup
}

// Update collects pickups that overlap a player
func (s *PickupSystem) Update(w *engine.World, dt float64) {
	for pi, p := range w.Players {
		if p.IsDying {
			continue
		}
		pr := p.Rect()
		for i := len(w.PowerUps) - 1; i >= 0; i-- {
			pu := w.PowerUps[i]
			if !pr.Overlaps(pu.Rect()) {
				continue
			}
			p.ApplySelfPowerUp(pu.Kind)
			if pu.Kind == entity.PowerUpFreeze {
				for oi, other := range w.Players {
					if oi != pi {
						other.Freeze(constants.FreezeSeconds)
					}
				}
			}
			w.Emit(event.TypePowerUpCollected, &event.PowerUpPayload{Kind: string(pu.Kind), Player: pi})
			w.PowerUps = append(w.PowerUps[:i], w.PowerUps[i+1:]...)
		}
	}
}
