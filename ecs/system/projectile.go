package system

import (
	"github.com/milk9111/corsair/ecs"
	"github.com/milk9111/corsair/ecs/component"
)

// ProjectileSystem drains every emitter's pending shots into real bullet
// entities. Running it at a fixed point in the frame keeps bullet creation
// out of the motion and pattern passes.
type ProjectileSystem struct{}

func NewProjectileSystem() *ProjectileSystem {
	return &ProjectileSystem{}
}

func (s *ProjectileSystem) Update(w *ecs.World, dt float64) {
	if w == nil {
		return
	}

	var pending []component.ShotRequest
	ecs.ForEach(w, component.EmitterComponent.Kind(), func(_ ecs.Entity, em *component.Emitter) {
		pending = append(pending, em.Pending...)
		em.Pending = em.Pending[:0]
	})

	for _, shot := range pending {
		SpawnBullet(w, shot)
	}
}

// SpawnBullet materializes one shot request as a bullet entity.
func SpawnBullet(w *ecs.World, shot component.ShotRequest) ecs.Entity {
	bw, bh, margin := bulletBody(shot.Kind)
	damage := shot.Damage
	if damage <= 0 {
		damage = 1
	}

	e := ecs.CreateEntity(w)
	_ = ecs.Add(w, e, component.TransformComponent.Kind(), &component.Transform{X: shot.X, Y: shot.Y})
	_ = ecs.Add(w, e, component.VelocityComponent.Kind(), &component.Velocity{VX: shot.VX, VY: shot.VY})
	_ = ecs.Add(w, e, component.ShipComponent.Kind(), &component.Ship{
		Kind:    shot.Kind,
		Faction: shot.Faction,
		W:       bw,
		H:       bh,
	})
	_ = ecs.Add(w, e, component.BulletComponent.Kind(), &component.Bullet{
		Damage:     damage,
		CullMargin: margin,
	})
	return e
}

// bulletBody returns the collision box and off-screen cull margin for a
// bullet class.
func bulletBody(kind component.Kind) (w, h, margin float64) {
	switch kind {
	case component.KindPlayerBullet:
		return 4, 14, 50
	case component.KindEnemyBullet:
		return 6, 12, 80
	case component.KindBossBullet:
		return 8, 8, 120
	}
	return 4, 4, 50
}
