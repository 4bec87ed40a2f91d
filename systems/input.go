package systems

import (
	"github.com/chessdroid108/TagArena/constants"
	"github.com/chessdroid108/TagArena/engine"
	"github.com/chessdroid108/TagArena/entity"
	"github.com/chessdroid108/TagArena/event"
)

// InputSystem applies the per-tick intents to the players and performs
// jump edge detection. The double-jump budget refills here, at input
// time, whenever the player is grounded.
type InputSystem struct{}

// NewInputSystem creates the input stage
func NewInputSystem() *InputSystem {
	return &InputSystem{}
}

// Priority returns the system's priority
func (s *InputSystem) Priority() int {
	return constants.PriorityInput
}

// Update consumes the world's intent slots
func (s *InputSystem) Update(w *engine.World, dt float64) {
	for i, p := range w.Players {
		in := w.Intents[i]

		p.MoveDir = in.Move
		p.PassingThrough = in.Down

		justPressed := in.Jump && !p.JumpHeldPrev
		p.JumpHeldPrev = in.Jump

		if p.OnGround {
			p.JumpsLeft = constants.MaxJumps
		}

		// Frozen and dying players keep their velocity untouched
		if p.IsFrozen || p.IsDying {
			continue
		}

		if justPressed && p.JumpsLeft > 0 {
			strength := p.JumpForce
			airJump := p.JumpsLeft == 1

			// Only the first jump earns platform and power-up boosts
			if p.JumpsLeft == constants.MaxJumps {
				if p.OnJumpPlatform {
					strength *= constants.JumpBoost
				}
				if p.PowerUpActive(entity.PowerUpSuperJump) {
					strength *= constants.SuperJumpMultiplier
				}
			}
			if airJump {
				strength *= constants.AirJumpFactor
			}

			p.VY = -strength
			p.JumpsLeft--
			p.OnGround = false

			// Running jumps get a horizontal kick so momentum carries
			if p.MoveDir != 0 {
				p.VX += float64(p.MoveDir) * p.Speed * constants.JumpRunBoostFactor
			}

			w.Emit(event.TypeJump, &event.JumpPayload{Player: i, AirJump: airJump})
		}
	}
}
