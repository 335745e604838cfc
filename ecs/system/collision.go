package system

import (
	"github.com/milk9111/corsair/common"
	"github.com/milk9111/corsair/ecs"
	"github.com/milk9111/corsair/ecs/component"
)

// BodyRect is an entity's visual bounding box, centered on its transform.
func BodyRect(t *component.Transform, ship *component.Ship) common.Rect {
	return common.CenteredRect(t.X, t.Y, ship.W, ship.H)
}

// PlayerHitbox shrinks the player's visual box by f around the same center.
// f == 1 leaves the box untouched; the visual size never changes.
func PlayerHitbox(t *component.Transform, ship *component.Ship, f float64) common.Rect {
	if f <= 0 || f > 1 {
		f = 1
	}
	return BodyRect(t, ship).Shrink(f)
}

// collisionBody pairs an entity with its current hit rect.
type collisionBody struct {
	ent  ecs.Entity
	rect common.Rect
	ship *component.Ship
}

// collectBodies gathers the hit rects of every live entity matching pred.
func collectBodies(w *ecs.World, pred func(*component.Ship) bool) []collisionBody {
	var out []collisionBody
	ecs.ForEach2(w, component.ShipComponent.Kind(), component.TransformComponent.Kind(),
		func(e ecs.Entity, ship *component.Ship, t *component.Transform) {
			if pred == nil || !pred(ship) {
				return
			}
			out = append(out, collisionBody{ent: e, rect: BodyRect(t, ship), ship: ship})
		})
	return out
}
