package systems

import (
	"testing"

	"github.com/chessdroid108/TagArena/constants"
	"github.com/chessdroid108/TagArena/event"
	"github.com/chessdroid108/TagArena/input"
	"github.com/chessdroid108/TagArena/level"
)

// TestPipelineChase drives the full system stack: two players run at each
// other on a bare floor, meet, and trade the tagger role, with the
// cooldown pacing the exchanges.
func TestPipelineChase(t *testing.T) {
	w, q := newTestWorld(level.Level{Name: "test"})
	Attach(w)

	w.SetIntent(0, input.Intent{Move: 1})
	w.SetIntent(1, input.Intent{Move: -1})

	// Three simulated seconds: enough to meet and trade a couple of tags,
	// not enough for anyone to reach the winning score
	for i := 0; i < 180; i++ {
		w.Step(tickDt)
	}

	for i, p := range w.Players {
		if p.X < 0 || p.X > constants.LevelWidth || p.Y < 0 || p.Y > constants.LevelHeight {
			t.Errorf("Expected player %d inside the level, got (%v, %v)", i, p.X, p.Y)
		}
	}

	tags := 0
	for _, ev := range q.Drain() {
		if ev.Type == event.TypeTag {
			tags++
		}
	}
	if tags == 0 {
		t.Fatalf("Expected at least one tag from converging players")
	}

	total := 0
	taggers := 0
	for _, p := range w.Players {
		total += p.Score
		if p.IsTagger {
			taggers++
		}
	}
	if total != tags {
		t.Errorf("Expected total score %d to match tag count, got %d", tags, total)
	}
	if taggers != 1 {
		t.Errorf("Expected exactly one tagger, got %d", taggers)
	}
	if w.Over {
		t.Errorf("Expected the round still running, score to win is %d", w.ScoreToWin)
	}
}

// TestPipelineIdleSettles runs the stack with no input and checks the
// world reaches a quiet steady state on the floor.
func TestPipelineIdleSettles(t *testing.T) {
	w, _ := newTestWorld(level.Level{Name: "test"})
	Attach(w)

	for i := 0; i < 300; i++ {
		w.Step(tickDt)
	}

	floorY := constants.ScreenHeight - constants.PlayerRadius
	for i, p := range w.Players {
		if p.Y != floorY {
			t.Errorf("Expected player %d resting on the floor at %v, got %v", i, floorY, p.Y)
		}
		if p.VY != 0 {
			t.Errorf("Expected player %d vertically at rest, got VY %v", i, p.VY)
		}
	}
}
