package constants

// Screen and level geometry
const (
	// ScreenWidth is the reference viewport width in world pixels
	ScreenWidth = 800.0

	// ScreenHeight is the reference viewport height in world pixels
	ScreenHeight = 600.0

	// LevelWidth is the full scrollable level width
	LevelWidth = 1600.0

	// LevelHeight is the full scrollable level height
	LevelHeight = 1200.0
)

// Simulation timing
const (
	// TicksPerSecond is the fixed simulation rate the tuning constants assume
	TicksPerSecond = 60

	// MaxTickDelta caps dt after a stall so physics cannot tunnel wildly
	MaxTickDelta = 0.1
)
