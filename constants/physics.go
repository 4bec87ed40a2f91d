package constants

// Player body
const (
	// PlayerRadius is the collision radius of every player blob
	PlayerRadius = 20.0

	// PlayerMass is the reference mass for the tagger property sets
	PlayerMass = 1.0

	// DefaultSpeed is the base horizontal movement speed, pixels/second
	DefaultSpeed = 380.0

	// DefaultJumpForce is the upward velocity applied by a ground jump
	DefaultJumpForce = 400.0
)

// Custom physics model
// These values are tuned as a set; the movement blend below depends on them
const (
	// Gravity is the downward acceleration in pixels/second²
	Gravity = 1200.0

	// AirResistance is the per-step horizontal damping while airborne
	AirResistance = 0.98

	// GroundFriction is the per-step horizontal damping while grounded
	GroundFriction = 0.85

	// MaxFallSpeed clamps downward velocity
	MaxFallSpeed = 500.0

	// VelocityBlendKeep and VelocityBlendGain form the input response
	// low-pass: vx = vx*keep + target*dt*gain. Exact tuning, frame-rate
	// coupled on purpose.
	VelocityBlendKeep = 0.8
	VelocityBlendGain = 5.0

	// AirJumpFactor scales the second (air) jump strength
	AirJumpFactor = 0.8

	// JumpRunBoostFactor is the horizontal kick added when jumping while moving
	JumpRunBoostFactor = 0.1

	// MaxJumps is the double-jump budget restored on landing
	MaxJumps = 2
)

// Platform interaction
const (
	// PlatformHeight is the fixed thickness of every platform
	PlatformHeight = 20.0

	// PlatformTopMargin is the landing classification window below a
	// platform's top edge
	PlatformTopMargin = 10.0

	// StickySlowdown multiplies speed on sticky platforms
	StickySlowdown = 0.6

	// JumpBoost multiplies jump force when jumping off a jump platform
	JumpBoost = 1.4

	// SpeedBoost multiplies speed on speed platforms
	SpeedBoost = 1.3
)

// Obstacles
const (
	// ObstacleDamageCooldown is the shared per-instance re-damage interval
	// in seconds
	ObstacleDamageCooldown = 1.0

	// ObstacleBounceStrength is the default upward bounce velocity
	ObstacleBounceStrength = 15.0

	// ObstacleTopMargin is the top-landing tolerance for bouncing obstacles
	ObstacleTopMargin = 10.0

	// CircularSpeedFactor converts movement speed to angular speed for
	// circular movers
	CircularSpeedFactor = 0.05
)
