package component

// Bullet marks a projectile. CullMargin is how far past the playfield edges
// the bullet may travel before it is removed.
type Bullet struct {
	Damage     int
	CullMargin float64
}

var BulletComponent = NewComponent[Bullet]()
