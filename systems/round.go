package systems

import (
	"github.com/chessdroid108/TagArena/constants"
	"github.com/chessdroid108/TagArena/engine"
	"github.com/chessdroid108/TagArena/event"
)

// RoundSystem ends the round on score or on the clock. A score win takes
// precedence over time expiry within the same tick.
type RoundSystem struct{}

// NewRoundSystem creates the round-termination stage
func NewRoundSystem() *RoundSystem {
	return &RoundSystem{}
}

// Priority returns the system's priority
func (s *RoundSystem) Priority() int {
	return constants.PriorityRound
}

// Update checks the win conditions and emits a single game-over event
func (s *RoundSystem) Update(w *engine.World, dt float64) {
	if w.Over {
		return
	}

	for i, p := range w.Players {
		if p.Score >= w.ScoreToWin {
			s.finish(w, i, false)
			return
		}
	}

	w.RoundTimeLeft -= dt
	if w.RoundTimeLeft > 0 {
		return
	}
	w.RoundTimeLeft = 0

	// Highest score wins on time-up, ties leave no winner
	winner := -1
	best := -1
	tied := false
	for i, p := range w.Players {
		switch {
		case p.Score > best:
			best = p.Score
			winner = i
			tied = false
		case p.Score == best:
			tied = true
		}
	}
	if tied {
		winner = -1
	}
	s.finish(w, winner, true)
}

func (s *RoundSystem) finish(w *engine.World, winner int, timeUp bool) {
	w.Over = true
	w.Winner = winner

	scores := make([]int, len(w.Players))
	for i, p := range w.Players {
		scores[i] = p.Score
	}
	w.Emit(event.TypeGameOver, &event.GameOverPayload{Winner: winner, TimeUp: timeUp, Scores: scores})
}
