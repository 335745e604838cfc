package system

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/milk9111/corsair/common"
	"github.com/milk9111/corsair/ecs"
	"github.com/milk9111/corsair/ecs/component"
)

// DefaultBossPatterns is the built-in volley repertoire, fired round-robin.
var DefaultBossPatterns = []string{"fan", "diagonal", "curtain", "spiral"}

const (
	fanShotSpeed      = 280.0
	diagonalShotSpeed = 260.0
	curtainShotSpeed  = 240.0
	spiralShotSpeed   = 220.0
)

// BossSystem fires the boss's bullet patterns on a cooldown, advancing the
// pattern index one step per volley.
type BossSystem struct {
	rng     *rand.Rand
	scripts map[string]*patternScript
}

func NewBossSystem(rng *rand.Rand) *BossSystem {
	return &BossSystem{rng: rng}
}

func (s *BossSystem) Update(w *ecs.World, dt float64) {
	if w == nil || s.rng == nil {
		return
	}

	sessionEnt, ok := ecs.First(w, component.SessionComponent.Kind())
	if ok {
		session, ok := ecs.Get(w, sessionEnt, component.SessionComponent.Kind())
		if !ok || session.Phase != component.PhaseBossFight {
			return
		}
	}

	ecs.ForEach2(w, component.BossComponent.Kind(), component.TransformComponent.Kind(),
		func(e ecs.Entity, b *component.Boss, t *component.Transform) {
			if !b.Entered {
				return
			}
			b.Cooldown -= dt
			if b.Cooldown > 0 {
				return
			}
			b.Cooldown = b.CooldownMax

			patterns := b.Patterns
			if len(patterns) == 0 {
				patterns = DefaultBossPatterns
			}
			idx := b.PatternIndex % len(patterns)
			b.PatternIndex++

			shots := s.volley(patterns[idx], t.X, t.Y)
			if len(shots) == 0 {
				return
			}
			emitter, ok := ecs.Get(w, e, component.EmitterComponent.Kind())
			if !ok {
				emitter = &component.Emitter{}
				_ = ecs.Add(w, e, component.EmitterComponent.Kind(), emitter)
			}
			emitter.Pending = append(emitter.Pending, shots...)

			if audioComp, ok := ecs.Get(w, e, component.AudioComponent.Kind()); ok {
				audioComp.Trigger("volley")
			}
		})
}

func (s *BossSystem) volley(name string, x, y float64) []component.ShotRequest {
	switch name {
	case "fan":
		return FanShots(x, y)
	case "diagonal":
		return DiagonalShots(x, y)
	case "curtain":
		return CurtainShots(y, s.rng)
	case "spiral":
		return SpiralShots(x, y, s.rng)
	}
	shots, err := s.scriptVolley(name, x, y)
	if err != nil {
		fmt.Printf("boss: pattern %q: %v\n", name, err)
		return nil
	}
	return shots
}

// bossShot builds one boss bullet heading at angleDeg, measured clockwise
// from straight down.
func bossShot(x, y, angleDeg, speed float64) component.ShotRequest {
	rad := angleDeg * math.Pi / 180
	return component.ShotRequest{
		X:       x,
		Y:       y,
		VX:      speed * math.Sin(rad),
		VY:      speed * math.Cos(rad),
		Kind:    component.KindBossBullet,
		Faction: component.FactionBoss,
		Damage:  1,
	}
}

// FanShots spreads bullets across [-45, 45] degrees in 15-degree steps,
// leaving a corridor through the central 20 degrees either side.
func FanShots(x, y float64) []component.ShotRequest {
	var shots []component.ShotRequest
	for a := -45.0; a <= 45; a += 15 {
		if math.Abs(a) <= 20 {
			continue
		}
		shots = append(shots, bossShot(x, y, a, fanShotSpeed))
	}
	return shots
}

// DiagonalShots fires five mirrored pairs from offsets either side of the
// boss, fanning outward one step per pair.
func DiagonalShots(x, y float64) []component.ShotRequest {
	var shots []component.ShotRequest
	for i := 0; i < 5; i++ {
		a := 20 + 5*float64(i)
		shots = append(shots, bossShot(x-60, y+20, -a, diagonalShotSpeed))
		shots = append(shots, bossShot(x+60, y+20, a, diagonalShotSpeed))
	}
	return shots
}

// CurtainShots drops a wall of straight-down bullets across the playfield,
// skipping a randomly placed gap 60-120 px wide.
func CurtainShots(y float64, rng *rand.Rand) []component.ShotRequest {
	gapW := 60 + rng.Float64()*60
	gapCenter := common.SpawnMargin + rng.Float64()*(common.BaseWidth-2*common.SpawnMargin)

	var shots []component.ShotRequest
	for x := common.SpawnMargin; x <= common.BaseWidth-common.SpawnMargin; x += 40 {
		if math.Abs(x-gapCenter) < gapW/2 {
			continue
		}
		shots = append(shots, bossShot(x, y, 0, curtainShotSpeed))
	}
	return shots
}

// SpiralShots fires ten bullets 18 degrees apart from a random base angle,
// skipping exactly one index to leave a corridor.
func SpiralShots(x, y float64, rng *rand.Rand) []component.ShotRequest {
	base := rng.Float64() * 360
	skip := rng.Intn(10)

	var shots []component.ShotRequest
	for i := 0; i < 10; i++ {
		if i == skip {
			continue
		}
		shots = append(shots, bossShot(x, y, base+18*float64(i), spiralShotSpeed))
	}
	return shots
}
