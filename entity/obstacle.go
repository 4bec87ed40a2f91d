package entity

import (
	"math"

	"github.com/chessdroid108/TagArena/constants"
	"github.com/chessdroid108/TagArena/vmath"
)

// ObstacleKind tags the obstacle variant
type ObstacleKind string

const (
	ObstacleStatic   ObstacleKind = "static"
	ObstacleMoving   ObstacleKind = "moving"
	ObstacleRotating ObstacleKind = "rotating"
	ObstacleDamaging ObstacleKind = "damaging"
	ObstacleBouncing ObstacleKind = "bouncing"
)

// MovementAxis selects a moving obstacle's path
type MovementAxis string

const (
	MoveHorizontal MovementAxis = "horizontal"
	MoveVertical   MovementAxis = "vertical"
	MoveCircular   MovementAxis = "circular"
)

// Variant parameter structs. Each kind carries only what it uses; the
// level tables construct exactly one of these per obstacle.

type MovingParams struct {
	Axis  MovementAxis
	Range float64 // oscillation half-extent, or circle radius
	Speed float64
}

type RotatingParams struct {
	Speed     float64 // degrees-equivalent per tick at 60 fps, sign = direction
	NumPoints int
}

type DamagingParams struct {
	Damage int
}

type BouncingParams struct {
	Strength float64
}

// ObstacleDef is one row of a level's obstacle table
type ObstacleDef struct {
	X, Y          float64
	Kind          ObstacleKind
	Width, Height float64

	Moving   *MovingParams
	Rotating *RotatingParams
	Damaging *DamagingParams
	Bouncing *BouncingParams
}

// Obstacle holds the mutable kinematic state of one level hazard
type Obstacle struct {
	Kind          ObstacleKind
	X, Y          float64
	Width, Height float64

	// Moving state
	originX, originY float64
	vx, vy           float64
	axis             MovementAxis
	moveRange        float64
	angle            float64
	angularSpeed     float64

	// Rotating state
	Rotation      float64
	rotationSpeed float64
	points        []vmath.Vec2 // local-space polygon points plus center
	radius        float64

	// Damaging state
	damage         int
	damageCooldown float64
	cooldownLeft   float64

	// Bouncing state
	bounceStrength float64
}

// NewObstacle builds an obstacle from a level descriptor. Unknown kind
// strings fall back to static.
func NewObstacle(def ObstacleDef) *Obstacle {
	o := &Obstacle{
		Kind:    def.Kind,
		X:       def.X,
		Y:       def.Y,
		Width:   def.Width,
		Height:  def.Height,
		originX: def.X,
		originY: def.Y,
	}

	switch def.Kind {
	case ObstacleMoving:
		p := def.Moving
		if p == nil {
			p = &MovingParams{Axis: MoveHorizontal, Range: 100, Speed: 1.0}
		}
		o.axis = p.Axis
		o.moveRange = p.Range
		switch p.Axis {
		case MoveVertical:
			o.vy = p.Speed
		case MoveCircular:
			o.radius = p.Range
			o.angularSpeed = p.Speed * constants.CircularSpeedFactor
		default:
			o.axis = MoveHorizontal
			o.vx = p.Speed
		}

	case ObstacleRotating:
		p := def.Rotating
		if p == nil {
			p = &RotatingParams{Speed: 2.0, NumPoints: 4}
		}
		o.rotationSpeed = p.Speed
		o.radius = math.Max(def.Width, def.Height) / 2
		n := p.NumPoints
		if n < 2 {
			n = 4
		}
		for i := 0; i < n; i++ {
			a := 2 * math.Pi * float64(i) / float64(n)
			o.points = append(o.points, vmath.Vec2{
				X: o.radius * math.Cos(a),
				Y: o.radius * math.Sin(a),
			})
		}
		o.points = append(o.points, vmath.Vec2{})

	case ObstacleDamaging:
		p := def.Damaging
		if p == nil {
			p = &DamagingParams{Damage: 1}
		}
		o.damage = p.Damage
		o.damageCooldown = constants.ObstacleDamageCooldown

	case ObstacleBouncing:
		p := def.Bouncing
		if p == nil {
			p = &BouncingParams{Strength: constants.ObstacleBounceStrength}
		}
		o.bounceStrength = p.Strength

	case ObstacleStatic:
	default:
		o.Kind = ObstacleStatic
	}
	return o
}

// Update advances the obstacle's kinematic state for one tick.
// The *dt*60 scaling keeps the per-frame speed semantics the level tables
// were tuned with at 60 fps.
func (o *Obstacle) Update(dt float64) {
	switch o.Kind {
	case ObstacleMoving:
		switch o.axis {
		case MoveHorizontal:
			o.X += o.vx * dt * 60
			if vmath.Abs(o.X-o.originX) > o.moveRange {
				o.vx = -o.vx
			}
		case MoveVertical:
			o.Y += o.vy * dt * 60
			if vmath.Abs(o.Y-o.originY) > o.moveRange {
				o.vy = -o.vy
			}
		case MoveCircular:
			o.angle += o.angularSpeed * dt * 60
			o.X = o.originX + math.Cos(o.angle)*o.radius
			o.Y = o.originY + math.Sin(o.angle)*o.radius
		}

	case ObstacleRotating:
		o.Rotation = vmath.WrapDegrees(o.Rotation + o.rotationSpeed*dt*60)

	case ObstacleDamaging:
		if o.cooldownLeft > 0 {
			o.cooldownLeft -= dt
		}
	}
}

// Rect returns the axis-aligned collision rectangle
func (o *Obstacle) Rect() vmath.Rect {
	return vmath.RectFromCenter(o.X, o.Y, o.Width, o.Height)
}

// CollisionShape returns the rotated point set for rotating obstacles and
// the bounding rect corners otherwise. The narrow-phase hit test below
// stays a rect check; this shape is for rendering and debugging only.
func (o *Obstacle) CollisionShape() []vmath.Vec2 {
	if o.Kind == ObstacleRotating {
		rad := vmath.Radians(o.Rotation)
		sin, cos := math.Sin(rad), math.Cos(rad)
		out := make([]vmath.Vec2, 0, len(o.points))
		for _, p := range o.points {
			out = append(out, vmath.Vec2{
				X: o.X + p.X*cos - p.Y*sin,
				Y: o.Y + p.X*sin + p.Y*cos,
			})
		}
		return out
	}
	r := o.Rect()
	return []vmath.Vec2{
		{X: r.Left, Y: r.Top},
		{X: r.Right(), Y: r.Top},
		{X: r.Right(), Y: r.Bottom()},
		{X: r.Left, Y: r.Bottom()},
	}
}

// CheckCollision is the axis-aligned overlap test against a player rect
func (o *Obstacle) CheckCollision(playerRect vmath.Rect) bool {
	return playerRect.Overlaps(o.Rect())
}

// Impact reports what an obstacle resolution did to the player
type Impact struct {
	Resolved bool
	Damaged  bool
	Bounced  bool
}

// ApplyEffect resolves an overlapping player out of the obstacle along the
// axis of minimum overlap, with the bounce and damage overrides. Callers
// check CheckCollision first.
func (o *Obstacle) ApplyEffect(p *Player) Impact {
	or := o.Rect()
	pr := p.Rect()

	if o.Kind == ObstacleBouncing {
		// Top-down landing on the pad launches instead of resolving solid
		if p.VY > 0 && pr.Bottom() <= or.Top+constants.ObstacleTopMargin {
			p.Y = or.Top - p.Radius
			p.VY = -o.bounceStrength
			p.OnGround = false
			return Impact{Resolved: true, Bounced: true}
		}
		return o.resolveBounceSide(p, or, pr)
	}

	leftOverlap := or.Right() - pr.Left
	rightOverlap := pr.Right() - or.Left
	topOverlap := or.Bottom() - pr.Top
	bottomOverlap := pr.Bottom() - or.Top
	minOverlap := math.Min(math.Min(leftOverlap, rightOverlap), math.Min(topOverlap, bottomOverlap))

	switch minOverlap {
	case leftOverlap:
		p.X = or.Right() + p.Radius
		p.VX = math.Max(0, p.VX)
	case rightOverlap:
		p.X = or.Left - p.Radius
		p.VX = math.Min(0, p.VX)
	case topOverlap:
		p.Y = or.Bottom() + p.Radius
		p.VY = math.Max(0, p.VY)
	case bottomOverlap:
		p.Y = or.Top - p.Radius
		p.VY = math.Min(0, p.VY)
	}

	im := Impact{Resolved: true}
	if o.Kind == ObstacleDamaging && o.cooldownLeft <= 0 {
		// Cooldown is per obstacle instance, shared across all colliders
		im.Damaged = p.TakeDamage()
		o.cooldownLeft = o.damageCooldown
	}
	return im
}

// resolveBounceSide handles non-top contact with a bounce pad as solid
func (o *Obstacle) resolveBounceSide(p *Player, or, pr vmath.Rect) Impact {
	leftOverlap := or.Right() - pr.Left
	rightOverlap := pr.Right() - or.Left
	topOverlap := or.Bottom() - pr.Top
	bottomOverlap := pr.Bottom() - or.Top
	minOverlap := math.Min(math.Min(leftOverlap, rightOverlap), math.Min(topOverlap, bottomOverlap))

	switch {
	case minOverlap == leftOverlap:
		p.X = or.Right() + p.Radius
		p.VX = math.Max(0, p.VX)
	case minOverlap == rightOverlap:
		p.X = or.Left - p.Radius
		p.VX = math.Min(0, p.VX)
	case minOverlap == topOverlap && p.VY < 0:
		// Hit from below while rising
		p.Y = or.Bottom() + p.Radius
		p.VY = 0
	}
	return Impact{Resolved: true}
}
