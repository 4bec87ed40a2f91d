package constants

// Tag rules
const (
	// TagCooldownMillis is how long a freshly tagged player cannot be
	// re-tagged, in milliseconds
	TagCooldownMillis = 1000.0

	// TaggerSpeedMultiplier handicaps the tagger's base speed
	TaggerSpeedMultiplier = 0.9

	// RoundSeconds is the default round length
	RoundSeconds = 60.0

	// ScoreToWin ends the round when any player reaches it
	ScoreToWin = 5
)

// Power-ups
const (
	// PowerUpSpawnInterval is the seconds between spawn attempts
	PowerUpSpawnInterval = 12.0

	// PowerUpDuration is how long a collected power-up lasts
	PowerUpDuration = 5.0

	// PowerUpDespawnTime is how long an uncollected power-up lingers
	PowerUpDespawnTime = 8.0

	// PowerUpRadius is the pickup collision radius
	PowerUpRadius = 15.0

	// PowerUpMaxCount limits concurrent uncollected power-ups
	PowerUpMaxCount = 1

	// PowerUpMinPlayerDistance keeps spawns away from players
	PowerUpMinPlayerDistance = 150.0

	// PowerUpPlacementAttempts bounds the spawner's rejection sampling
	PowerUpPlacementAttempts = 20

	// SpeedPowerUpMultiplier scales target speed while active
	SpeedPowerUpMultiplier = 1.8

	// SuperJumpMultiplier scales the first jump while active
	SuperJumpMultiplier = 1.5

	// FreezeSeconds is how long freeze locks the other players
	FreezeSeconds = 1.5
)

// Damage and death
const (
	// DamageFlashSeconds is the flash/immunity window after taking damage
	DamageFlashSeconds = 0.4

	// DeathSeconds is the dying countdown before respawn
	DeathSeconds = 3.0

	// RespawnInvulnSeconds is the post-respawn immunity window
	RespawnInvulnSeconds = 1.0

	// LethalFloorBounceFactor scales the upward kick off a lethal floor
	LethalFloorBounceFactor = 0.3

	// DyingDrag damps horizontal drift while dying
	DyingDrag = 0.95

	// DyingMotionFactor halves gravity and integration while dying
	DyingMotionFactor = 0.5
)

// Camera
const (
	// CameraPositionSmooth is the per-tick focal smoothing factor
	CameraPositionSmooth = 0.1

	// CameraZoomSmooth is the per-tick zoom smoothing factor
	CameraZoomSmooth = 0.05

	// CameraMinZoom is the furthest zoom-out
	CameraMinZoom = 0.5

	// CameraMaxZoom is the closest zoom-in
	CameraMaxZoom = 1.5

	// CameraZoomReach is the numerator of the distance-to-zoom mapping
	CameraZoomReach = 400.0

	// CameraDistanceMin and CameraDistanceMax clamp the pairwise distance
	// feeding the zoom target
	CameraDistanceMin = 100.0
	CameraDistanceMax = 700.0

	// LandingImpactThreshold gates the landed event on fall speed
	LandingImpactThreshold = 0.2

	// LandingImpactScale normalizes fall speed into a 0..1 impact
	LandingImpactScale = 400.0
)
