package component

// Boss holds the boss ship's movement bounds and attack-pattern state. The
// pattern index advances exactly once per volley, wrapping modulo the pattern
// count.
type Boss struct {
	// Entry descent: the boss drops to StartY before it starts strafing.
	StartY  float64
	Descent float64
	Entered bool

	// Horizontal strafe, bouncing between MinX and MaxX.
	Speed float64
	DirX  float64
	MinX  float64
	MaxX  float64

	// Volley cadence.
	PatternIndex int
	Cooldown     float64
	CooldownMax  float64

	// Names of the patterns in firing order. Entries prefixed with
	// "script:" are resolved to tengo scripts; everything else is built in.
	Patterns []string
}

var BossComponent = NewComponent[Boss]()
