package systems

import (
	"github.com/chessdroid108/TagArena/constants"
	"github.com/chessdroid108/TagArena/engine"
	"github.com/chessdroid108/TagArena/event"
)

// ImpactSystem delegates player/obstacle contact to the obstacle's own
// resolution and forwards what happened as events
type ImpactSystem struct{}

// NewImpactSystem creates the obstacle resolution stage
func NewImpactSystem() *ImpactSystem {
	return &ImpactSystem{}
}

// Priority returns the system's priority
func (s *ImpactSystem) Priority() int {
	return constants.PriorityImpact
}

// Update resolves every overlapping player/obstacle pair
func (s *ImpactSystem) Update(w *engine.World, dt float64) {
	for i, p := range w.Players {
		pr := p.Rect()
		for _, o := range w.Obstacles {
			if !o.CheckCollision(pr) {
				continue
			}
			im := o.ApplyEffect(p)
			if !im.Resolved {
				continue
			}
			w.Emit(event.TypeObstacleHit, &event.PlayerPayload{Player: i})
			if im.Bounced {
				w.Emit(event.TypeBounce, &event.PlayerPayload{Player: i})
			}
			if im.Damaged {
				w.Emit(event.TypeDamage, &event.PlayerPayload{Player: i})
			}
		}
	}
}
