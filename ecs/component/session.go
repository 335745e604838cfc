package component

// Phase is the top-level game mode. Paused is not a phase; it is an
// orthogonal flag on Session.
type Phase int

const (
	PhaseMenu Phase = iota
	PhasePlaying
	PhaseBossPending
	PhaseBossFight
	PhaseVictory
	PhaseGameOver
)

func (p Phase) String() string {
	switch p {
	case PhaseMenu:
		return "menu"
	case PhasePlaying:
		return "playing"
	case PhaseBossPending:
		return "boss_pending"
	case PhaseBossFight:
		return "boss_fight"
	case PhaseVictory:
		return "victory"
	case PhaseGameOver:
		return "game_over"
	}
	return "unknown"
}

// Session is the singleton game state: phase, score, lives, and the flags
// the phase machine keys its transitions on. Only the phase system moves
// Phase; combat sets the flags it reads.
type Session struct {
	Phase  Phase
	Paused bool

	Score   int
	Lives   int
	Elapsed float64

	// BossAt is the session time that triggers BossPending.
	BossAt float64

	BossDefeated    bool
	PickupCollected bool
	LivesDepleted   bool

	// EndTimer counts down the Victory/GameOver dwell before returning to
	// the menu.
	EndTimer float64
}

var SessionComponent = NewComponent[Session]()
