package component

// PlayerController carries the player ship's tuning plus the hitbox shrink
// applied during collision checks (visual box times Shrink, same center).
type PlayerController struct {
	Speed       float64
	BulletSpeed float64
	Shrink      float64
}

var PlayerControllerComponent = NewComponent[PlayerController]()
