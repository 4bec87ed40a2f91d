package engine

import (
	"math/rand"
	"sort"

	"github.com/chessdroid108/TagArena/constants"
	"github.com/chessdroid108/TagArena/entity"
	"github.com/chessdroid108/TagArena/event"
	"github.com/chessdroid108/TagArena/input"
	"github.com/chessdroid108/TagArena/level"
)

// World owns all simulation state for one round. Single-threaded by
// contract: every mutation happens inside Step, in system priority order.
type World struct {
	Level     level.Level
	Players   []*entity.Player
	Platforms []*entity.Platform
	Obstacles []*entity.Obstacle
	PowerUps  []*entity.PowerUp
	Camera    *entity.Camera

	// Intents holds the caller-supplied input for the upcoming tick,
	// indexed by player
	Intents []input.Intent

	Sink event.Sink
	Rng  *rand.Rand
	Tick int64

	RoundTimeLeft float64
	ScoreToWin    int
	Over          bool
	Winner        int // player index; -1 while running or on a timeout tie

	systems []System
}

// Option tweaks world construction
type Option func(*World)

// WithSink installs the event sink collaborators listen on
func WithSink(s event.Sink) Option {
	return func(w *World) { w.Sink = s }
}

// WithRand injects a seeded source for deterministic tests
func WithRand(rng *rand.Rand) Option {
	return func(w *World) { w.Rng = rng }
}

// WithRoundSeconds overrides the round length
func WithRoundSeconds(s float64) Option {
	return func(w *World) { w.RoundTimeLeft = s }
}

// WithScoreToWin overrides the winning score
func WithScoreToWin(n int) Option {
	return func(w *World) { w.ScoreToWin = n }
}

// NewWorld builds a round from a level descriptor. playerCount is clamped
// to 2..4; player 1 starts as the tagger. Spawn positions scatter the
// players across the screen quarters at mid height.
func NewWorld(lv level.Level, playerCount int, opts ...Option) *World {
	if playerCount < 2 {
		playerCount = 2
	} else if playerCount > 4 {
		playerCount = 4
	}

	w := &World{
		Level:         lv,
		Camera:        entity.NewCamera(constants.LevelWidth, constants.LevelHeight),
		Sink:          event.NopSink{},
		Rng:           rand.New(rand.NewSource(1)),
		RoundTimeLeft: constants.RoundSeconds,
		ScoreToWin:    constants.ScoreToWin,
		Winner:        -1,
	}
	for _, o := range opts {
		o(w)
	}

	for _, def := range lv.Platforms {
		w.Platforms = append(w.Platforms, entity.NewPlatform(def))
	}
	for _, def := range lv.Obstacles {
		w.Obstacles = append(w.Obstacles, entity.NewObstacle(def))
	}

	quarter := float64(constants.ScreenWidth) / 4
	for i := 0; i < playerCount; i++ {
		lo := float64(i)*quarter + 100
		hi := float64(i+1) * quarter
		if hi <= lo {
			hi = lo + 1
		}
		x := lo + w.Rng.Float64()*(hi-lo)
		w.Players = append(w.Players, entity.NewPlayer(i+1, x, constants.ScreenHeight/2, i == 0))
	}
	w.Intents = make([]input.Intent, playerCount)

	return w
}

// AddSystem registers a system, keeping the set sorted by priority.
// Registration order breaks priority ties.
func (w *World) AddSystem(s System) {
	w.systems = append(w.systems, s)
	sort.SliceStable(w.systems, func(i, j int) bool {
		return w.systems[i].Priority() < w.systems[j].Priority()
	})
}

// SetIntent records one player's input for the next Step
func (w *World) SetIntent(player int, in input.Intent) {
	if player >= 0 && player < len(w.Intents) {
		w.Intents[player] = in.Clamp()
	}
}

// Emit pushes an event through the sink with the current tick attached
func (w *World) Emit(t event.Type, payload any) {
	w.Sink.Emit(event.Event{Type: t, Payload: payload, Tick: w.Tick})
}

// Step advances the simulation by dt seconds. dt is capped so a stalled
// frame cannot launch entities through geometry.
func (w *World) Step(dt float64) {
	if dt > constants.MaxTickDelta {
		dt = constants.MaxTickDelta
	}
	w.Tick++
	for _, s := range w.systems {
		s.Update(w, dt)
	}
}
