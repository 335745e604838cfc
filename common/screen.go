package common

// Playfield dimensions in logical pixels.
const (
	BaseWidth  = 480
	BaseHeight = 800
)

// SpawnMargin keeps spawned enemies away from the playfield edges.
// SpawnOffsetY is how far above the top edge new enemies appear.
const (
	SpawnMargin  = 30.0
	SpawnOffsetY = -50.0
)
