package component

// Gun is a cooldown-gated shooter. Timer counts down in seconds; a system
// fires when it reaches zero and resets it to Cooldown.
type Gun struct {
	Cooldown    float64
	Timer       float64
	BulletSpeed float64
}

var GunComponent = NewComponent[Gun]()
