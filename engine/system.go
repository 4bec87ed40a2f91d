package engine

// System is one stage of the fixed per-tick pipeline. Systems run in
// ascending Priority order inside World.Step; none of them may retain a
// reference to world state across ticks beyond their own fields.
type System interface {
	// Priority orders execution; lower runs first
	Priority() int

	// Update advances this stage by dt seconds
	Update(w *World, dt float64)
}
