package component

// Motion carries the per-kind steering parameters for enemy ships. Which
// fields matter depends on Ship.Kind; the motion system dispatches on it.
type Motion struct {
	// Descent is the downward speed in px/s.
	Descent float64
	// SteerRate caps horizontal drift toward the player's x in px/s.
	SteerRate float64

	// Zigzag oscillation around a drifting base column.
	BaseX     float64
	Amplitude float64
	Frequency float64
	Phase     float64

	// Shooter halt rule: stop StopDistance above the player's y, or at
	// FallbackStopY when no player exists. Once halted, never moves again.
	StopDistance  float64
	FallbackStopY float64
	Halted        bool
}

var MotionComponent = NewComponent[Motion]()
