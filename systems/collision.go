package systems

import (
	"math"

	"github.com/chessdroid108/TagArena/constants"
	"github.com/chessdroid108/TagArena/engine"
	"github.com/chessdroid108/TagArena/entity"
	"github.com/chessdroid108/TagArena/event"
)

// CollisionSystem is the resolution pass: floor, platforms, and tagging.
// It runs strictly after every player finished integrating. Minimum-overlap
// heuristics throughout, no swept detection: fast motion can tunnel thin
// platforms, which is the accepted approximation.
type CollisionSystem struct{}

// NewCollisionSystem creates the resolution stage
func NewCollisionSystem() *CollisionSystem {
	return &CollisionSystem{}
}

// Priority returns the system's priority
func (s *CollisionSystem) Priority() int {
	return constants.PriorityCollision
}

// Update resolves floor and platform contact, then tags
func (s *CollisionSystem) Update(w *engine.World, dt float64) {
	// Ground state must be cleared before any platform test in this pass
	for _, p := range w.Players {
		p.OnGround = false
	}

	for i, p := range w.Players {
		s.resolveFloor(w, i, p)
		s.resolvePlatforms(w, i, p)
	}

	s.resolveTags(w)
}

// resolveFloor treats the bottom of the reference screen as ground, or as
// a lethal zone on levels flagged that way
func (s *CollisionSystem) resolveFloor(w *engine.World, idx int, p *entity.Player) {
	if p.Y < constants.ScreenHeight-p.Radius {
		return
	}
	p.OnGround = true
	p.Y = constants.ScreenHeight - p.Radius
	p.VY = 0

	if w.Level.LethalFloor {
		if p.TakeDamage() {
			w.Emit(event.TypeDamage, &event.PlayerPayload{Player: idx})
		}
		if p.StartDying() {
			w.Emit(event.TypeDied, &event.PlayerPayload{Player: idx})
		}
		// Reduced kick off the deadly floor while the countdown runs
		p.VY = -constants.DefaultJumpForce * constants.LethalFloorBounceFactor
	}
}

// resolvePlatforms classifies each overlap as a top landing or a side hit.
// The player rect is sampled once before the loop; a landing snaps Y but
// later platforms in the list still test against the pre-snap rect.
func (s *CollisionSystem) resolvePlatforms(w *engine.World, idx int, p *entity.Player) {
	pr := p.Rect()

	for plIdx, pl := range w.Platforms {
		// Holding down disables passthrough collision for this tick only
		if pl.Type == entity.PlatformPassthrough && p.PassingThrough {
			continue
		}

		plr := pl.Rect()
		if !pr.Overlaps(plr) {
			continue
		}

		landing := p.VY > 0 &&
			p.Y+p.Radius > plr.Top &&
			p.Y < plr.Top+constants.PlatformTopMargin

		if landing {
			impactVY := p.VY
			p.OnGround = true
			p.Y = plr.Top - p.Radius
			p.VY = 0
			p.CurrentPlatform = plIdx
			pl.ApplyEffect(p)

			impact := math.Min(1.0, impactVY/constants.LandingImpactScale)
			if impact > constants.LandingImpactThreshold {
				w.Emit(event.TypeLand, &event.LandPayload{Player: idx, Impact: impact})
			}
		} else if p.Y > plr.Top+constants.PlatformTopMargin {
			// Side hit: push out horizontally based on which side the
			// player's center is on
			if p.X < plr.Left {
				p.X = plr.Left - p.Radius
				p.VX = 0
			} else if p.X > plr.Right() {
				p.X = plr.Right() + p.Radius
				p.VX = 0
			}
		}
	}
}

// resolveTags checks every unordered pair in index order. A tagger who
// just became a runner inside this pass cannot re-tag: the role swap is
// visible to the remaining pair checks.
func (s *CollisionSystem) resolveTags(w *engine.World) {
	for i := 0; i < len(w.Players); i++ {
		for j := i + 1; j < len(w.Players); j++ {
			p1, p2 := w.Players[i], w.Players[j]
			if !p1.Rect().Overlaps(p2.Rect()) {
				continue
			}
			if p1.CanTag() {
				s.tag(w, i, j)
			} else if p2.CanTag() {
				s.tag(w, j, i)
			}
		}
	}
}

// tag swaps roles, scores the tagger, and arms the re-tag cooldown
func (s *CollisionSystem) tag(w *engine.World, tagger, target int) {
	t := w.Players[tagger]
	o := w.Players[target]
	if o.HasShield {
		return
	}

	t.SetTagger(false)
	o.SetTagger(true)
	t.Score++
	o.TagCooldown = constants.TagCooldownMillis

	w.Emit(event.TypeTag, &event.TagPayload{
		Tagger:   tagger,
		Tagged:   target,
		NewScore: t.Score,
	})
}
