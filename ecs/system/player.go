package system

import (
	"math"

	"github.com/milk9111/corsair/common"
	"github.com/milk9111/corsair/ecs"
	"github.com/milk9111/corsair/ecs/component"
)

const playerShotSound = "shot"

// PlayerControlSystem moves the player ship from sampled input and fires its
// gun, clamped to the playfield.
type PlayerControlSystem struct{}

func NewPlayerControlSystem() *PlayerControlSystem {
	return &PlayerControlSystem{}
}

func (s *PlayerControlSystem) Update(w *ecs.World, dt float64) {
	if w == nil {
		return
	}

	sessionEnt, ok := ecs.First(w, component.SessionComponent.Kind())
	if !ok {
		return
	}
	input, ok := ecs.Get(w, sessionEnt, component.InputComponent.Kind())
	if !ok {
		input = &component.Input{}
	}

	ecs.ForEach4(w,
		component.PlayerControllerComponent.Kind(),
		component.TransformComponent.Kind(),
		component.ShipComponent.Kind(),
		component.GunComponent.Kind(),
		func(e ecs.Entity, pc *component.PlayerController, t *component.Transform, ship *component.Ship, gun *component.Gun) {
			t.X = common.Clamp(t.X+input.MoveX*pc.Speed*dt, ship.W/2, common.BaseWidth-ship.W/2)
			t.Y = common.Clamp(t.Y+input.MoveY*pc.Speed*dt, ship.H/2, common.BaseHeight-ship.H/2)

			if gun.Timer > 0 {
				gun.Timer -= dt
			}
			if !input.Shoot || gun.Timer > 0 {
				return
			}
			gun.Timer = gun.Cooldown

			vx, vy := 0.0, -pc.BulletSpeed
			if input.HasAim {
				vx, vy = aimVelocity(t.X, t.Y, input.AimX, input.AimY, pc.BulletSpeed)
			}

			emitter, ok := ecs.Get(w, e, component.EmitterComponent.Kind())
			if !ok {
				emitter = &component.Emitter{}
				_ = ecs.Add(w, e, component.EmitterComponent.Kind(), emitter)
			}
			emitter.Pending = append(emitter.Pending, component.ShotRequest{
				X:       t.X,
				Y:       t.Y - ship.H/2,
				VX:      vx,
				VY:      vy,
				Kind:    component.KindPlayerBullet,
				Faction: component.FactionPlayer,
				Damage:  1,
			})

			if audioComp, ok := ecs.Get(w, e, component.AudioComponent.Kind()); ok {
				audioComp.Trigger(playerShotSound)
			}
		})
}

// aimVelocity points a shot of the given speed from (x, y) at (tx, ty). A
// coincident target counts as distance 1 so the direction never divides by
// zero.
func aimVelocity(x, y, tx, ty, speed float64) (float64, float64) {
	dx := tx - x
	dy := ty - y
	dist := math.Hypot(dx, dy)
	if dist == 0 {
		dist = 1
	}
	return dx / dist * speed, dy / dist * speed
}
