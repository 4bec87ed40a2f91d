package entity

import (
	"github.com/chessdroid108/TagArena/constants"
	"github.com/chessdroid108/TagArena/vmath"
)

// PowerUpKind names a timed pickup modifier
type PowerUpKind string

const (
	PowerUpSpeed     PowerUpKind = "speed"
	PowerUpShield    PowerUpKind = "shield"
	PowerUpSuperJump PowerUpKind = "super_jump"
	PowerUpInvisible PowerUpKind = "invisible"
	PowerUpFreeze    PowerUpKind = "freeze"
)

// PowerUpKinds is the spawn pool
var PowerUpKinds = []PowerUpKind{
	PowerUpSpeed,
	PowerUpShield,
	PowerUpSuperJump,
	PowerUpInvisible,
	PowerUpFreeze,
}

// PowerUp is a despawning world pickup. BobPhase is cosmetic output for
// the presentation layer; it never feeds back into the simulation.
type PowerUp struct {
	X, Y     float64
	Kind     PowerUpKind
	Radius   float64
	Lifetime float64
	BobPhase float64
}

// NewPowerUp places a pickup with the full despawn lifetime
func NewPowerUp(x, y float64, kind PowerUpKind) *PowerUp {
	return &PowerUp{
		X:        x,
		Y:        y,
		Kind:     kind,
		Radius:   constants.PowerUpRadius,
		Lifetime: constants.PowerUpDespawnTime,
	}
}

// Update advances lifetime and animation phase. Returns true when the
// pickup has timed out and should be removed.
func (pu *PowerUp) Update(dt float64) bool {
	pu.Lifetime -= dt
	pu.BobPhase += dt * 60
	return pu.Lifetime <= 0
}

// Flashing reports the about-to-expire state the renderer blinks on
func (pu *PowerUp) Flashing() bool {
	return pu.Lifetime <= 2.0
}

// Rect returns the pickup collision rectangle
func (pu *PowerUp) Rect() vmath.Rect {
	return vmath.RectFromCenter(pu.X, pu.Y, pu.Radius*2, pu.Radius*2)
}
