package level

import "github.com/chessdroid108/TagArena/entity"

// Level is the static description the core consumes at round start. The
// core never loads or parses files; arenas are built-in tables.
type Level struct {
	Name      string
	Platforms []entity.PlatformDef
	Obstacles []entity.ObstacleDef

	// LethalFloor makes the bottom boundary damage and respawn players
	// instead of acting as solid ground
	LethalFloor bool
}

// ByName returns the named arena, falling back to Classic
func ByName(name string) Level {
	for _, lv := range Levels {
		if lv.Name == name {
			return lv
		}
	}
	return Levels[0]
}

// Names lists the built-in arenas in menu order
func Names() []string {
	out := make([]string, len(Levels))
	for i, lv := range Levels {
		out[i] = lv.Name
	}
	return out
}
