package component

// Transform is an entity's position in playfield coordinates.
type Transform struct {
	X float64
	Y float64
}

// Velocity is straight-line motion in pixels per second. Entities with only
// Transform and Velocity (bullets, pickups) integrate linearly each frame.
type Velocity struct {
	VX float64
	VY float64
}

var TransformComponent = NewComponent[Transform]()
var VelocityComponent = NewComponent[Velocity]()
