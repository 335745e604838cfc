package system

import (
	"github.com/milk9111/corsair/ecs"
	"github.com/milk9111/corsair/ecs/component"
)

// ShooterFireSystem runs the shooter enemies' aimed guns. A shooter only
// fires once it has halted at its stop line, and only while a player exists
// to aim at.
type ShooterFireSystem struct{}

func NewShooterFireSystem() *ShooterFireSystem {
	return &ShooterFireSystem{}
}

func (s *ShooterFireSystem) Update(w *ecs.World, dt float64) {
	if w == nil {
		return
	}

	player := SnapshotPlayer(w)

	ecs.ForEach4(w,
		component.ShipComponent.Kind(),
		component.TransformComponent.Kind(),
		component.MotionComponent.Kind(),
		component.GunComponent.Kind(),
		func(e ecs.Entity, ship *component.Ship, t *component.Transform, m *component.Motion, gun *component.Gun) {
			if ship.Kind != component.KindShooterEnemy || !m.Halted {
				return
			}
			gun.Timer -= dt
			if gun.Timer > 0 {
				return
			}
			gun.Timer = gun.Cooldown
			if !player.Present {
				return
			}

			vx, vy := aimVelocity(t.X, t.Y, player.X, player.Y, gun.BulletSpeed)
			emitter, ok := ecs.Get(w, e, component.EmitterComponent.Kind())
			if !ok {
				emitter = &component.Emitter{}
				_ = ecs.Add(w, e, component.EmitterComponent.Kind(), emitter)
			}
			emitter.Pending = append(emitter.Pending, component.ShotRequest{
				X:       t.X,
				Y:       t.Y + ship.H/2,
				VX:      vx,
				VY:      vy,
				Kind:    component.KindEnemyBullet,
				Faction: component.FactionEnemy,
				Damage:  1,
			})
		})
}
