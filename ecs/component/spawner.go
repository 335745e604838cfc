package component

// Spawner is the spawn scheduler's state, held on the session entity so it
// resets with the session. Interval only ever tightens, floored at
// MinInterval.
type Spawner struct {
	Interval    float64
	MinInterval float64
	Timer       float64

	DifficultyTimer  float64
	DifficultyPeriod float64
	DifficultyFactor float64
}

var SpawnerComponent = NewComponent[Spawner]()
