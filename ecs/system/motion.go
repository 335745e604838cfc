package system

import (
	"math"

	"github.com/milk9111/corsair/common"
	"github.com/milk9111/corsair/ecs"
	"github.com/milk9111/corsair/ecs/component"
)

// PlayerSnapshot is the read-only player pose handed to motion rules. Rules
// never touch the player entity directly.
type PlayerSnapshot struct {
	X, Y    float64
	Present bool
}

// SnapshotPlayer captures the player's position for this frame.
func SnapshotPlayer(w *ecs.World) PlayerSnapshot {
	e, ok := ecs.First(w, component.PlayerControllerComponent.Kind())
	if !ok {
		return PlayerSnapshot{}
	}
	t, ok := ecs.Get(w, e, component.TransformComponent.Kind())
	if !ok {
		return PlayerSnapshot{}
	}
	return PlayerSnapshot{X: t.X, Y: t.Y, Present: true}
}

// MotionSystem advances every non-player entity by its kind's motion rule.
type MotionSystem struct{}

func NewMotionSystem() *MotionSystem {
	return &MotionSystem{}
}

func (s *MotionSystem) Update(w *ecs.World, dt float64) {
	if w == nil {
		return
	}

	player := SnapshotPlayer(w)

	// Straight movers: anything with a bare velocity integrates linearly.
	ecs.ForEach2(w, component.TransformComponent.Kind(), component.VelocityComponent.Kind(),
		func(_ ecs.Entity, t *component.Transform, v *component.Velocity) {
			t.X += v.VX * dt
			t.Y += v.VY * dt
		})

	ecs.ForEach3(w, component.ShipComponent.Kind(), component.TransformComponent.Kind(), component.MotionComponent.Kind(),
		func(_ ecs.Entity, ship *component.Ship, t *component.Transform, m *component.Motion) {
			switch ship.Kind {
			case component.KindBasicEnemy, component.KindFastEnemy:
				StepSteered(t, m, player, dt)
			case component.KindZigZagEnemy:
				StepZigZag(t, m, player, dt)
			case component.KindShooterEnemy:
				StepShooter(t, m, player, dt)
			}
		})

	ecs.ForEach2(w, component.BossComponent.Kind(), component.TransformComponent.Kind(),
		func(_ ecs.Entity, b *component.Boss, t *component.Transform) {
			StepBoss(t, b, dt)
		})
}

// StepSteered descends at a fixed rate and drifts toward the player's column
// at a capped rate. Without a player the descent is straight.
func StepSteered(t *component.Transform, m *component.Motion, p PlayerSnapshot, dt float64) {
	t.Y += m.Descent * dt
	if !p.Present {
		return
	}
	maxStep := m.SteerRate * dt
	t.X += common.Clamp(p.X-t.X, -maxStep, maxStep)
}

// StepZigZag oscillates around a base column that itself drifts toward the
// player.
func StepZigZag(t *component.Transform, m *component.Motion, p PlayerSnapshot, dt float64) {
	t.Y += m.Descent * dt
	if p.Present {
		maxStep := m.SteerRate * dt
		m.BaseX += common.Clamp(p.X-m.BaseX, -maxStep, maxStep)
	}
	m.Phase += dt
	t.X = m.BaseX + m.Amplitude*math.Sin(2*math.Pi*m.Frequency*m.Phase)
}

// StepShooter descends until it reaches its stop line, then halts for good.
// The stop line tracks StopDistance above the player, or FallbackStopY when
// no player exists.
func StepShooter(t *component.Transform, m *component.Motion, p PlayerSnapshot, dt float64) {
	if m.Halted {
		return
	}
	stopY := m.FallbackStopY
	if p.Present {
		stopY = p.Y - m.StopDistance
	}
	t.Y += m.Descent * dt
	if t.Y >= stopY {
		t.Y = stopY
		m.Halted = true
	}
}

// StepBoss drops to its start line, then strafes between its bounds,
// reflecting direction on contact.
func StepBoss(t *component.Transform, b *component.Boss, dt float64) {
	if !b.Entered {
		t.Y += b.Descent * dt
		if t.Y >= b.StartY {
			t.Y = b.StartY
			b.Entered = true
			if b.DirX == 0 {
				b.DirX = 1
			}
		}
		return
	}
	t.X += b.DirX * b.Speed * dt
	if t.X <= b.MinX {
		t.X = b.MinX
		b.DirX = 1
	} else if t.X >= b.MaxX {
		t.X = b.MaxX
		b.DirX = -1
	}
}
