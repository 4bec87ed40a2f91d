package entity

import (
	"math"
	"math/rand"

	"github.com/chessdroid108/TagArena/constants"
	"github.com/chessdroid108/TagArena/vmath"
)

// Player is one controllable blob. All fields are in world pixels and
// seconds except TagCooldown, which counts down in milliseconds.
//
// OnGround and the three platform-effect flags are derived state: the
// physics step clears them every tick and only the collision pass that
// follows may re-assert them.
type Player struct {
	ID       int
	IsTagger bool
	Score    int

	X, Y   float64
	VX, VY float64
	Radius float64
	Mass   float64

	// BaseSpeed carries the tagger handicap and property set; Speed is
	// BaseSpeed with the current platform effect folded in.
	BaseSpeed float64
	Speed     float64
	JumpForce float64

	// Per-tick input state
	MoveDir        int // -1 left, 0 none, 1 right
	PassingThrough bool
	JumpHeldPrev   bool

	OnGround        bool
	JumpsLeft       int
	CurrentPlatform int // index into the world's platform list, -1 when airborne

	OnStickyPlatform bool
	OnJumpPlatform   bool
	OnSpeedPlatform  bool

	ActivePowerUps map[PowerUpKind]float64
	HasShield      bool
	IsInvisible    bool
	IsFrozen       bool
	FrozenTimer    float64

	// TagCooldown blocks this player from being re-tagged, milliseconds
	TagCooldown float64

	DamageFlash float64
	IsDying     bool
	DeathTimer  float64

	footstepTimer float64
}

// NewPlayer creates a player at a spawn position. Tagger status folds the
// speed handicap in immediately.
func NewPlayer(id int, x, y float64, isTagger bool) *Player {
	p := &Player{
		ID:              id,
		X:               x,
		Y:               y,
		Radius:          constants.PlayerRadius,
		Mass:            constants.PlayerMass,
		JumpForce:       constants.DefaultJumpForce,
		JumpsLeft:       constants.MaxJumps,
		CurrentPlatform: -1,
		ActivePowerUps:  make(map[PowerUpKind]float64),
	}
	p.SetTagger(isTagger)
	return p
}

// SetTagger updates the role and the speed handicap that comes with it
func (p *Player) SetTagger(isTagger bool) {
	p.IsTagger = isTagger
	if isTagger {
		p.BaseSpeed = constants.DefaultSpeed * constants.TaggerSpeedMultiplier
	} else {
		p.BaseSpeed = constants.DefaultSpeed
	}
	p.RefreshSpeed()
}

// RefreshSpeed recomputes Speed from BaseSpeed and the platform-effect
// flags. Sticky wins over speed: only one flag is ever set per landing,
// but the ordering here is the tie-break if that assumption breaks.
func (p *Player) RefreshSpeed() {
	p.Speed = p.BaseSpeed
	if p.OnStickyPlatform {
		p.Speed *= constants.StickySlowdown
	} else if p.OnSpeedPlatform {
		p.Speed *= constants.SpeedBoost
	}
}

// Rect returns the collision rectangle centered on the player
func (p *Player) Rect() vmath.Rect {
	return vmath.RectFromCenter(p.X, p.Y, p.Radius*2, p.Radius*2)
}

// CanTag reports whether this player may score a tag right now
func (p *Player) CanTag() bool {
	return p.IsTagger && p.TagCooldown <= 0
}

// PowerUpActive reports whether a power-up kind is currently running
func (p *Player) PowerUpActive(kind PowerUpKind) bool {
	_, ok := p.ActivePowerUps[kind]
	return ok
}

// ClearPlatformState resets the derived per-tick flags. Runs at the end of
// each physics step; the collision pass re-asserts them for the next tick.
func (p *Player) ClearPlatformState() {
	p.OnGround = false
	p.OnStickyPlatform = false
	p.OnJumpPlatform = false
	p.OnSpeedPlatform = false
}

// TakeDamage starts a flash/immunity window. Returns false while the
// previous flash is still running or a shield absorbs the hit.
func (p *Player) TakeDamage() bool {
	if p.DamageFlash > 0 || p.HasShield {
		return false
	}
	p.DamageFlash = constants.DamageFlashSeconds
	return true
}

// StartDying begins the death countdown. No-op if already dying.
func (p *Player) StartDying() bool {
	if p.IsDying {
		return false
	}
	p.IsDying = true
	p.DeathTimer = constants.DeathSeconds
	return true
}

// Respawn teleports the player onto a random platform in the top third of
// the screen band, clearing velocity and granting brief invulnerability.
func (p *Player) Respawn(platforms []*Platform, rng *rand.Rand) {
	var top []*Platform
	for _, pl := range platforms {
		if pl.Rect().Top < constants.ScreenHeight/3 {
			top = append(top, pl)
		}
	}
	if len(top) > 0 {
		pl := top[rng.Intn(len(top))]
		r := pl.Rect()
		p.X = r.CenterX()
		p.Y = r.Top - constants.PlayerRadius
	} else {
		p.X = 100 + rng.Float64()*(constants.ScreenWidth-200)
		p.Y = 100
	}

	p.VX = 0
	p.VY = 0
	p.IsDying = false
	p.DeathTimer = 0
	p.DamageFlash = constants.RespawnInvulnSeconds
}

// UpdatePowerUps counts down active power-ups and clears dependent flags
// at expiry. Returns the kinds that expired this tick.
func (p *Player) UpdatePowerUps(dt float64) []PowerUpKind {
	var expired []PowerUpKind
	for kind := range p.ActivePowerUps {
		p.ActivePowerUps[kind] -= dt
		if p.ActivePowerUps[kind] <= 0 {
			delete(p.ActivePowerUps, kind)
			switch kind {
			case PowerUpShield:
				p.HasShield = false
			case PowerUpInvisible:
				p.IsInvisible = false
			}
			expired = append(expired, kind)
		}
	}
	return expired
}

// ApplySelfPowerUp starts or refreshes a power-up on this player. Freeze
// targets the other players and is handled by the pickup pass, not here.
func (p *Player) ApplySelfPowerUp(kind PowerUpKind) {
	p.ActivePowerUps[kind] = constants.PowerUpDuration
	switch kind {
	case PowerUpShield:
		p.HasShield = true
	case PowerUpInvisible:
		p.IsInvisible = true
	}
}

// Freeze locks the player in place for the freeze duration
func (p *Player) Freeze(seconds float64) {
	p.IsFrozen = true
	p.FrozenTimer = seconds
}

// AdvanceFootstep drives the running cadence timer. Returns true when a
// footstep should fire; faster running shortens the interval.
func (p *Player) AdvanceFootstep(dt float64) bool {
	if !p.OnGround || vmath.Abs(p.VX) < 50 {
		return false
	}
	p.footstepTimer -= dt
	if p.footstepTimer <= 0 {
		p.footstepTimer = 0.3 / math.Max(1.0, vmath.Abs(p.VX)/100.0)
		return true
	}
	return false
}

// EnforceBounds clamps the player inside the level, zeroing the velocity
// component that pushed outward. Repositioning, never rejection.
func (p *Player) EnforceBounds() {
	margin := p.Radius
	if p.X < margin {
		p.X = margin
		if p.VX < 0 {
			p.VX = 0
		}
	} else if p.X > constants.LevelWidth-margin {
		p.X = constants.LevelWidth - margin
		if p.VX > 0 {
			p.VX = 0
		}
	}
	if p.Y < margin {
		p.Y = margin
		if p.VY < 0 {
			p.VY = 0
		}
	} else if p.Y > constants.LevelHeight-margin {
		p.Y = constants.LevelHeight - margin
		if p.VY > 0 {
			p.VY = 0
		}
	}
}
