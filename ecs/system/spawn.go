package system

import (
	"math"
	"math/rand"

	"github.com/milk9111/corsair/common"
	"github.com/milk9111/corsair/ecs"
	"github.com/milk9111/corsair/ecs/component"
)

// SpawnKinds lists the spawnable enemy kinds in weight order.
var SpawnKinds = [4]component.Kind{
	component.KindBasicEnemy,
	component.KindZigZagEnemy,
	component.KindFastEnemy,
	component.KindShooterEnemy,
}

// EnemyDef is the tuning for one enemy archetype, usually loaded from the
// enemies prefab.
type EnemyDef struct {
	Health        int
	W, H          float64
	Descent       float64
	SteerRate     float64
	Amplitude     float64
	Frequency     float64
	StopDistance  float64
	FallbackStopY float64
	FireCooldown  float64
	BulletSpeed   float64
}

// EnemyDefs maps each spawnable kind to its tuning.
type EnemyDefs map[component.Kind]EnemyDef

// SpawnSystem emits enemies on a tightening cadence with time-drifted kind
// weights. It only runs while the session phase is Playing.
type SpawnSystem struct {
	rng  *rand.Rand
	defs EnemyDefs
}

func NewSpawnSystem(rng *rand.Rand, defs EnemyDefs) *SpawnSystem {
	return &SpawnSystem{rng: rng, defs: defs}
}

// SetDefs swaps the enemy tuning, used by prefab hot reload.
func (s *SpawnSystem) SetDefs(defs EnemyDefs) {
	if defs != nil {
		s.defs = defs
	}
}

func (s *SpawnSystem) Update(w *ecs.World, dt float64) {
	if w == nil || s.rng == nil {
		return
	}

	sessionEnt, ok := ecs.First(w, component.SessionComponent.Kind())
	if !ok {
		return
	}
	session, ok := ecs.Get(w, sessionEnt, component.SessionComponent.Kind())
	if !ok || session.Phase != component.PhasePlaying {
		return
	}
	sp, ok := ecs.Get(w, sessionEnt, component.SpawnerComponent.Kind())
	if !ok {
		return
	}

	sp.DifficultyTimer += dt
	for sp.DifficultyTimer >= sp.DifficultyPeriod {
		sp.DifficultyTimer -= sp.DifficultyPeriod
		sp.Interval = TightenInterval(sp.Interval, sp.DifficultyFactor, sp.MinInterval)
	}

	// Keep the remainder when subtracting so cadence never drifts.
	sp.Timer += dt
	for sp.Timer >= sp.Interval {
		sp.Timer -= sp.Interval
		kind := PickKind(SpawnWeights(session.Elapsed), s.rng.Float64())
		x := common.SpawnMargin + s.rng.Float64()*(common.BaseWidth-2*common.SpawnMargin)
		SpawnEnemy(w, kind, x, common.SpawnOffsetY, s.defs[kind])
	}
}

// SpawnWeights computes the kind weights for the given session time. Weights
// start at {0.6, 0.18, 0.12, 0.10} and drift toward the harder kinds as time
// passes, always renormalized to sum to 1.
func SpawnWeights(elapsed float64) [4]float64 {
	w := [4]float64{0.6, 0.18, 0.12, 0.10}

	bonus := elapsed / 120
	if bonus > 0.6 {
		bonus = 0.6
	}
	if bonus < 0 {
		bonus = 0
	}

	w[0] = math.Max(0.25, w[0]*(1-bonus*0.6))
	w[1] += bonus * 0.25
	w[2] += bonus * 0.20
	w[3] += bonus * 0.15

	sum := w[0] + w[1] + w[2] + w[3]
	for i := range w {
		w[i] /= sum
	}
	return w
}

// PickKind walks the cumulative weights and returns the first kind whose
// cumulative weight reaches r.
func PickKind(weights [4]float64, r float64) component.Kind {
	acc := 0.0
	for i, wt := range weights {
		acc += wt
		if acc >= r {
			return SpawnKinds[i]
		}
	}
	return SpawnKinds[len(SpawnKinds)-1]
}

// TightenInterval applies one difficulty step, never dropping below min.
func TightenInterval(interval, factor, min float64) float64 {
	return math.Max(min, interval*factor)
}

// SpawnEnemy creates one enemy entity of the given kind at (x, y).
func SpawnEnemy(w *ecs.World, kind component.Kind, x, y float64, def EnemyDef) ecs.Entity {
	hp := def.Health
	if hp <= 0 {
		hp = 1
	}

	e := ecs.CreateEntity(w)
	_ = ecs.Add(w, e, component.TransformComponent.Kind(), &component.Transform{X: x, Y: y})
	_ = ecs.Add(w, e, component.ShipComponent.Kind(), &component.Ship{
		Kind:    kind,
		Faction: component.FactionEnemy,
		W:       def.W,
		H:       def.H,
	})
	_ = ecs.Add(w, e, component.HealthComponent.Kind(), &component.Health{Current: hp, Max: hp})
	_ = ecs.Add(w, e, component.MotionComponent.Kind(), &component.Motion{
		Descent:       def.Descent,
		SteerRate:     def.SteerRate,
		BaseX:         x,
		Amplitude:     def.Amplitude,
		Frequency:     def.Frequency,
		StopDistance:  def.StopDistance,
		FallbackStopY: def.FallbackStopY,
	})
	if kind == component.KindShooterEnemy {
		_ = ecs.Add(w, e, component.GunComponent.Kind(), &component.Gun{
			Cooldown:    def.FireCooldown,
			Timer:       def.FireCooldown,
			BulletSpeed: def.BulletSpeed,
		})
		_ = ecs.Add(w, e, component.EmitterComponent.Kind(), &component.Emitter{})
	}
	return e
}
