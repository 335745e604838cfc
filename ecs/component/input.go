package component

// Input is the frame's sampled player intent. The input system writes it;
// everything else only reads.
type Input struct {
	MoveX float64
	MoveY float64

	Shoot  bool
	AimX   float64
	AimY   float64
	HasAim bool

	TogglePause bool
	Confirm     bool
	Return      bool
}

var InputComponent = NewComponent[Input]()
