package systems

import (
	"math/rand"

	"github.com/chessdroid108/TagArena/engine"
	"github.com/chessdroid108/TagArena/event"
	"github.com/chessdroid108/TagArena/level"
)

const tickDt = 1.0 / 60.0

// newTestWorld builds a deterministic two-player world on a bare level,
// with an event queue installed so tests can inspect what fired.
func newTestWorld(lv level.Level) (*engine.World, *event.Queue) {
	q := event.NewQueue()
	w := engine.NewWorld(lv, 2,
		engine.WithSink(q),
		engine.WithRand(rand.New(rand.NewSource(42))),
	)
	return w, q
}

// drainTypes summarizes a queue's pending events by type
func drainTypes(q *event.Queue) []event.Type {
	evs := q.Drain()
	out := make([]event.Type, len(evs))
	for i, ev := range evs {
		out[i] = ev.Type
	}
	return out
}

func containsType(types []event.Type, t event.Type) bool {
	for _, v := range types {
		if v == t {
			return true
		}
	}
	return false
}
