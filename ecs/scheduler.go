package ecs

// System advances one simulation concern by dt seconds.
type System interface {
	Update(w *World, dt float64)
}

// Scheduler runs systems in registration order, once per frame.
type Scheduler struct {
	systems []System
}

func NewScheduler(systems ...System) *Scheduler {
	copied := append([]System(nil), systems...)
	return &Scheduler{systems: copied}
}

func (s *Scheduler) Update(w *World, dt float64) {
	for _, system := range s.systems {
		system.Update(w, dt)
	}
}
