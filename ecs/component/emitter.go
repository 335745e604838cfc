package component

// ShotRequest is one bullet waiting to be materialized into the world. Motion
// and pattern systems append requests; the projectile system drains them at a
// fixed point in the frame.
type ShotRequest struct {
	X, Y    float64
	VX, VY  float64
	Kind    Kind
	Faction Faction
	Damage  int
}

// Emitter holds an entity's pending shots for the current frame.
type Emitter struct {
	Pending []ShotRequest
}

var EmitterComponent = NewComponent[Emitter]()
