package system

import (
	"github.com/milk9111/corsair/common"
	"github.com/milk9111/corsair/ecs"
	"github.com/milk9111/corsair/ecs/component"
)

const enemyExitMargin = 40.0

// CullSystem removes what has left the playfield: bullets past their class
// margin on any edge, enemies past the bottom (no life penalty). The boss
// never leaves; the pickup rests near the bottom instead of escaping.
type CullSystem struct{}

func NewCullSystem() *CullSystem {
	return &CullSystem{}
}

func (s *CullSystem) Update(w *ecs.World, dt float64) {
	if w == nil {
		return
	}

	ecs.ForEach2(w, component.BulletComponent.Kind(), component.TransformComponent.Kind(),
		func(e ecs.Entity, b *component.Bullet, t *component.Transform) {
			m := b.CullMargin
			if t.X < -m || t.X > common.BaseWidth+m || t.Y < -m || t.Y > common.BaseHeight+m {
				ecs.DestroyEntity(w, e)
			}
		})

	ecs.ForEach2(w, component.ShipComponent.Kind(), component.TransformComponent.Kind(),
		func(e ecs.Entity, ship *component.Ship, t *component.Transform) {
			if !ship.Kind.IsEnemy() {
				return
			}
			if t.Y-ship.H/2 > common.BaseHeight+enemyExitMargin {
				ecs.DestroyEntity(w, e)
			}
		})

	ecs.ForEach2(w, component.PickupComponent.Kind(), component.TransformComponent.Kind(),
		func(e ecs.Entity, _ *component.Pickup, t *component.Transform) {
			rest := common.BaseHeight - 30.0
			if t.Y < rest {
				return
			}
			t.Y = rest
			if v, ok := ecs.Get(w, e, component.VelocityComponent.Kind()); ok {
				v.VY = 0
			}
		})
}
