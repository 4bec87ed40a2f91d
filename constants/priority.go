package constants

// System execution priorities (lower runs first). The collision pass must
// run strictly after every entity finished integrating for the tick.
const (
	PriorityInput     = 10
	PriorityPhysics   = 20
	PriorityPowerUp   = 30 // world power-up lifetimes + spawner
	PriorityObstacle  = 40 // obstacle kinematics
	PriorityCollision = 50 // platforms, floor, tagging
	PriorityPickup    = 60 // power-up collection
	PriorityImpact    = 70 // obstacle resolution
	PriorityBoundary  = 80 // final bounds clamp
	PriorityCamera    = 90
	PriorityRound     = 100
)
