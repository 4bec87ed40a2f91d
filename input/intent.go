package input

// Intent is the per-player, per-tick input contract the core consumes.
// Jump is the held state; the core edge-detects the press itself.
type Intent struct {
	Move int // -1 left, 0 none, 1 right
	Jump bool
	Down bool // request pass-through for this tick
}

// Clamp normalizes Move into {-1, 0, 1}
func (in Intent) Clamp() Intent {
	if in.Move > 1 {
		in.Move = 1
	} else if in.Move < -1 {
		in.Move = -1
	}
	return in
}
