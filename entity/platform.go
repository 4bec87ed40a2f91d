package entity

import (
	"github.com/chessdroid108/TagArena/constants"
	"github.com/chessdroid108/TagArena/vmath"
)

// PlatformType selects the per-landing effect a platform applies
type PlatformType string

const (
	PlatformRegular     PlatformType = "regular"
	PlatformSticky      PlatformType = "sticky"
	PlatformJump        PlatformType = "jump"
	PlatformSpeed       PlatformType = "speed"
	PlatformPassthrough PlatformType = "passthrough"
)

// PlatformDef is one row of a level's platform table: center, width, type
type PlatformDef struct {
	X, Y  float64
	Width float64
	Type  PlatformType
}

// Platform is immutable after creation and lives for the whole round
type Platform struct {
	Type PlatformType
	rect vmath.Rect
}

// NewPlatform builds a platform from a level descriptor. Unknown type
// strings fall back to regular rather than failing.
func NewPlatform(def PlatformDef) *Platform {
	t := def.Type
	switch t {
	case PlatformRegular, PlatformSticky, PlatformJump, PlatformSpeed, PlatformPassthrough:
	default:
		t = PlatformRegular
	}
	return &Platform{
		Type: t,
		rect: vmath.RectFromCenter(def.X, def.Y, def.Width, constants.PlatformHeight),
	}
}

// Rect returns the collision rectangle
func (pl *Platform) Rect() vmath.Rect {
	return pl.rect
}

// ApplyEffect sets exactly one of the player's platform-effect flags and
// refreshes the derived speed. Regular and passthrough set none.
func (pl *Platform) ApplyEffect(p *Player) {
	switch pl.Type {
	case PlatformSticky:
		p.OnStickyPlatform = true
	case PlatformJump:
		p.OnJumpPlatform = true
	case PlatformSpeed:
		p.OnSpeedPlatform = true
	}
	p.RefreshSpeed()
}
