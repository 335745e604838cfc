package component

// Kill records one destroyed entity and where it died.
type Kill struct {
	Kind Kind
	X, Y float64
}

// KillFeed accumulates the frame's kill events on the session entity. The
// combat system appends; it is cleared at the start of each combat pass.
type KillFeed struct {
	Kills []Kill
}

var KillFeedComponent = NewComponent[KillFeed]()
