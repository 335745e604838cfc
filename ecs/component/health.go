package component

type Health struct {
	Current int
	Max     int
}

// Ratio returns current/max health in [0, 1] for health-bar rendering.
func (h Health) Ratio() float64 {
	if h.Max <= 0 {
		return 0
	}
	if h.Current < 0 {
		return 0
	}
	return float64(h.Current) / float64(h.Max)
}

var HealthComponent = NewComponent[Health]()
