package event

// Type identifies a discrete simulation event
type Type int

const (
	// TypeJump fires when a player leaves the ground under their own power.
	// Trigger: input system | Payload: *JumpPayload
	TypeJump Type = iota

	// TypeLand fires when a player lands with meaningful impact.
	// Trigger: collision pass | Payload: *LandPayload
	TypeLand

	// TypeFootstep fires periodically while a player runs on ground.
	// Trigger: physics system | Payload: *PlayerPayload
	TypeFootstep

	// TypeTag fires when the tagger scores and roles swap.
	// Trigger: collision pass | Payload: *TagPayload
	TypeTag

	// TypeDamage fires when a player takes damage.
	// Trigger: obstacle resolution, lethal floor | Payload: *PlayerPayload
	TypeDamage

	// TypeDied fires when the dying countdown starts.
	// Trigger: lethal floor | Payload: *PlayerPayload
	TypeDied

	// TypeRespawn fires when a dying player re-enters play.
	// Trigger: physics system | Payload: *PlayerPayload
	TypeRespawn

	// TypePowerUpSpawned fires when the spawner places a pickup.
	// Trigger: power-up system | Payload: *PowerUpPayload
	TypePowerUpSpawned

	// TypePowerUpCollected fires on pickup.
	// Trigger: pickup pass | Payload: *PowerUpPayload
	TypePowerUpCollected

	// TypePowerUpExpired fires when an uncollected pickup times out.
	// Trigger: power-up system | Payload: *PowerUpPayload
	TypePowerUpExpired

	// TypeObstacleHit fires on any resolved player/obstacle collision.
	// Trigger: obstacle resolution | Payload: *PlayerPayload
	TypeObstacleHit

	// TypeBounce fires when a bouncing obstacle launches a player.
	// Trigger: obstacle resolution | Payload: *PlayerPayload
	TypeBounce

	// TypeGameOver fires once when score or clock ends the round.
	// Trigger: round system | Payload: *GameOverPayload
	TypeGameOver
)

// String returns the event name for logs and tests
func (t Type) String() string {
	switch t {
	case TypeJump:
		return "jump"
	case TypeLand:
		return "land"
	case TypeFootstep:
		return "footstep"
	case TypeTag:
		return "tag"
	case TypeDamage:
		return "damage"
	case TypeDied:
		return "died"
	case TypeRespawn:
		return "respawn"
	case TypePowerUpSpawned:
		return "powerup_spawned"
	case TypePowerUpCollected:
		return "powerup_collected"
	case TypePowerUpExpired:
		return "powerup_expired"
	case TypeObstacleHit:
		return "obstacle_hit"
	case TypeBounce:
		return "bounce"
	case TypeGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}
