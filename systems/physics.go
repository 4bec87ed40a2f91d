package systems

import (
	"github.com/chessdroid108/TagArena/constants"
	"github.com/chessdroid108/TagArena/engine"
	"github.com/chessdroid108/TagArena/entity"
	"github.com/chessdroid108/TagArena/event"
)

// PhysicsSystem integrates player motion for one tick. The per-player
// branch order is load-bearing: frozen players skip everything, dying
// players drift under reduced physics, and only then does normal
// integration run. The platform-effect flags and on_ground are cleared at
// the end of each step; the collision pass that follows re-asserts them.
type PhysicsSystem struct{}

// NewPhysicsSystem creates the integration stage
func NewPhysicsSystem() *PhysicsSystem {
	return &PhysicsSystem{}
}

// Priority returns the system's priority
func (s *PhysicsSystem) Priority() int {
	return constants.PriorityPhysics
}

// Update advances every player
func (s *PhysicsSystem) Update(w *engine.World, dt float64) {
	for i, p := range w.Players {
		// 1. Frozen: position and velocity untouched this tick
		if p.IsFrozen {
			p.FrozenTimer -= dt
			if p.FrozenTimer <= 0 {
				p.IsFrozen = false
				p.FrozenTimer = 0
			}
			continue
		}

		// 2. Dying: countdown, damped drift, then skip normal physics
		if p.IsDying {
			p.DeathTimer -= dt
			if p.DeathTimer <= 0 {
				p.Respawn(w.Platforms, w.Rng)
				w.Emit(event.TypeRespawn, &event.PlayerPayload{Player: i})
			}
			p.VX *= constants.DyingDrag
			p.VY += constants.Gravity * dt * constants.DyingMotionFactor
			p.X += p.VX * dt * constants.DyingMotionFactor
			p.Y += p.VY * dt * constants.DyingMotionFactor
			continue
		}

		// 3. Normal physics
		if p.DamageFlash > 0 {
			p.DamageFlash -= dt
		}

		if !p.OnGround {
			p.VY += constants.Gravity * dt
			p.VX *= constants.AirResistance
		} else {
			p.VX *= constants.GroundFriction
		}

		// Sticky wins if both were somehow set; only one can be per landing
		if p.OnStickyPlatform {
			p.VX *= constants.StickySlowdown
		} else if p.OnSpeedPlatform {
			p.VX *= constants.SpeedBoost
		}

		target := float64(p.MoveDir) * p.Speed
		if p.PowerUpActive(entity.PowerUpSpeed) {
			target *= constants.SpeedPowerUpMultiplier
		}
		// Low-pass blend toward the target, not a hard snap. Exact tuning.
		p.VX = p.VX*constants.VelocityBlendKeep + target*dt*constants.VelocityBlendGain

		if p.VY > constants.MaxFallSpeed {
			p.VY = constants.MaxFallSpeed
		}

		p.X += p.VX * dt
		p.Y += p.VY * dt
		p.EnforceBounds()

		if p.TagCooldown > 0 {
			p.TagCooldown -= dt * 1000
		}

		for _, kind := range p.UpdatePowerUps(dt) {
			w.Emit(event.TypePowerUpExpired, &event.PowerUpPayload{Kind: string(kind), Player: i})
		}

		if p.AdvanceFootstep(dt) {
			w.Emit(event.TypeFootstep, &event.PlayerPayload{Player: i})
		}

		// Derived state reset; the collision pass re-asserts for next tick
		p.ClearPlatformState()
	}
}
