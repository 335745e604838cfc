package system

import (
	"github.com/milk9111/corsair/ecs"
	"github.com/milk9111/corsair/ecs/component"
)

const (
	flashDuration     = 0.25
	flashSize         = 18.0
	bossFlashDuration = 0.6
	bossFlashSize     = 48.0
)

// EffectSystem turns the frame's kill feed into short-lived explosion
// flashes and retires the ones that have run out. Runs after combat so a kill
// flashes on the frame it lands.
type EffectSystem struct{}

func NewEffectSystem() *EffectSystem {
	return &EffectSystem{}
}

func (s *EffectSystem) Update(w *ecs.World, dt float64) {
	if w == nil {
		return
	}

	ecs.ForEach(w, component.FlashComponent.Kind(), func(e ecs.Entity, f *component.Flash) {
		f.Age += dt
		if f.Age >= f.Duration {
			ecs.DestroyEntity(w, e)
		}
	})

	sessionEnt, ok := ecs.First(w, component.SessionComponent.Kind())
	if !ok {
		return
	}
	feed, ok := ecs.Get(w, sessionEnt, component.KillFeedComponent.Kind())
	if !ok {
		return
	}
	for _, kill := range feed.Kills {
		spawnFlash(w, kill)
	}
}

func spawnFlash(w *ecs.World, kill component.Kill) ecs.Entity {
	size, duration := flashSize, flashDuration
	if kill.Kind == component.KindBossEnemy {
		size, duration = bossFlashSize, bossFlashDuration
	}
	e := ecs.CreateEntity(w)
	_ = ecs.Add(w, e, component.TransformComponent.Kind(), &component.Transform{X: kill.X, Y: kill.Y})
	_ = ecs.Add(w, e, component.FlashComponent.Kind(), &component.Flash{Duration: duration, Size: size})
	return e
}
