package event

// Event is one discrete notification emitted during a tick
type Event struct {
	Type    Type
	Payload any
	Tick    int64
}

// PlayerPayload carries the player index for single-player events
type PlayerPayload struct {
	Player int
}

// JumpPayload distinguishes ground jumps from air jumps
type JumpPayload struct {
	Player  int
	AirJump bool
}

// LandPayload carries the normalized landing impact in [0,1]
type LandPayload struct {
	Player int
	Impact float64
}

// TagPayload names both sides of a role swap
type TagPayload struct {
	Tagger   int // scored, now a runner
	Tagged   int // now the tagger
	NewScore int
}

// PowerUpPayload carries the pickup kind and, when collected, the collector
type PowerUpPayload struct {
	Kind   string
	Player int // -1 for spawn/expiry
}

// GameOverPayload reports why the round ended
type GameOverPayload struct {
	Winner int // -1 when the clock ran out without a score winner
	TimeUp bool
	Scores []int
}
