package component

// Kind tags every simulated object. Motion rules, collision routing, and
// sprite selection all dispatch on it.
type Kind int

const (
	KindPlayerShip Kind = iota
	KindBasicEnemy
	KindZigZagEnemy
	KindFastEnemy
	KindShooterEnemy
	KindBossEnemy
	KindPlayerBullet
	KindEnemyBullet
	KindBossBullet
	KindPickup
)

func (k Kind) String() string {
	switch k {
	case KindPlayerShip:
		return "player"
	case KindBasicEnemy:
		return "basic"
	case KindZigZagEnemy:
		return "zigzag"
	case KindFastEnemy:
		return "fast"
	case KindShooterEnemy:
		return "shooter"
	case KindBossEnemy:
		return "boss"
	case KindPlayerBullet:
		return "player_bullet"
	case KindEnemyBullet:
		return "enemy_bullet"
	case KindBossBullet:
		return "boss_bullet"
	case KindPickup:
		return "pickup"
	}
	return "unknown"
}

// IsEnemy reports whether the kind is a non-boss enemy ship.
func (k Kind) IsEnemy() bool {
	switch k {
	case KindBasicEnemy, KindZigZagEnemy, KindFastEnemy, KindShooterEnemy:
		return true
	}
	return false
}

func (k Kind) IsBullet() bool {
	switch k {
	case KindPlayerBullet, KindEnemyBullet, KindBossBullet:
		return true
	}
	return false
}

// Faction routes collision checks.
type Faction int

const (
	FactionPlayer Faction = iota
	FactionEnemy
	FactionBoss
)

// Ship is the common body of any simulated object: what it is, which side it
// is on, and its visual bounding box size.
type Ship struct {
	Kind    Kind
	Faction Faction
	W       float64
	H       float64
}

var ShipComponent = NewComponent[Ship]()
