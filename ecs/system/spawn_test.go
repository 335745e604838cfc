package system

import (
	"math"
	"math/rand"
	"testing"

	"github.com/milk9111/corsair/ecs"
	"github.com/milk9111/corsair/ecs/component"
)

func addSession(t *testing.T, w *ecs.World, phase component.Phase) ecs.Entity {
	t.Helper()
	e := ecs.CreateEntity(w)
	if err := ecs.Add(w, e, component.SessionComponent.Kind(), &component.Session{Phase: phase, Lives: 3, BossAt: 60}); err != nil {
		t.Fatal(err)
	}
	if err := ecs.Add(w, e, component.InputComponent.Kind(), &component.Input{}); err != nil {
		t.Fatal(err)
	}
	if err := ecs.Add(w, e, component.KillFeedComponent.Kind(), &component.KillFeed{}); err != nil {
		t.Fatal(err)
	}
	return e
}

func countKind(w *ecs.World, kind component.Kind) int {
	n := 0
	ecs.ForEach(w, component.ShipComponent.Kind(), func(_ ecs.Entity, ship *component.Ship) {
		if ship.Kind == kind {
			n++
		}
	})
	return n
}

func countEnemies(w *ecs.World) int {
	n := 0
	ecs.ForEach(w, component.ShipComponent.Kind(), func(_ ecs.Entity, ship *component.Ship) {
		if ship.Kind.IsEnemy() {
			n++
		}
	})
	return n
}

func TestSpawnWeights(t *testing.T) {
	t.Run("start_weights", func(t *testing.T) {
		w := SpawnWeights(0)
		want := [4]float64{0.6, 0.18, 0.12, 0.10}
		for i := range w {
			if math.Abs(w[i]-want[i]) > 1e-9 {
				t.Fatalf("weight[%d] = %v, want %v", i, w[i], want[i])
			}
		}
	})

	t.Run("always_sum_to_one", func(t *testing.T) {
		for _, elapsed := range []float64{0, 10, 60, 120, 500} {
			w := SpawnWeights(elapsed)
			sum := w[0] + w[1] + w[2] + w[3]
			if math.Abs(sum-1) > 1e-9 {
				t.Fatalf("weights at t=%v sum to %v", elapsed, sum)
			}
		}
	})

	t.Run("harder_kinds_gain_over_time", func(t *testing.T) {
		early := SpawnWeights(0)
		late := SpawnWeights(120)
		if late[0] >= early[0] {
			t.Fatalf("basic weight did not fall: %v -> %v", early[0], late[0])
		}
		for i := 1; i < 4; i++ {
			if late[i] <= early[i] {
				t.Fatalf("weight[%d] did not rise: %v -> %v", i, early[i], late[i])
			}
		}
	})

	t.Run("drift_caps_at_two_minutes", func(t *testing.T) {
		if SpawnWeights(120) != SpawnWeights(600) {
			t.Fatal("weights kept drifting past the cap")
		}
	})
}

func TestPickKind(t *testing.T) {
	weights := SpawnWeights(0)
	cases := []struct {
		name string
		r    float64
		want component.Kind
	}{
		{"zero_draw", 0, component.KindBasicEnemy},
		{"low_draw", 0.5, component.KindBasicEnemy},
		{"mid_draw", 0.7, component.KindZigZagEnemy},
		{"high_draw", 0.85, component.KindFastEnemy},
		{"top_draw", 0.99, component.KindShooterEnemy},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := PickKind(weights, c.r); got != c.want {
				t.Fatalf("PickKind(%v) = %v, want %v", c.r, got, c.want)
			}
		})
	}
}

func TestTightenInterval(t *testing.T) {
	interval := 1.0
	for i := 0; i < 100; i++ {
		next := TightenInterval(interval, 0.92, 0.25)
		if next > interval {
			t.Fatalf("interval grew: %v -> %v", interval, next)
		}
		interval = next
	}
	if interval != 0.25 {
		t.Fatalf("interval = %v, want clamp at 0.25", interval)
	}
}

func TestSpawnSystemPhaseGate(t *testing.T) {
	defs := EnemyDefs{
		component.KindBasicEnemy:   {Health: 1, W: 36, H: 36, Descent: 120, SteerRate: 60},
		component.KindZigZagEnemy:  {Health: 1, W: 36, H: 36, Descent: 120, SteerRate: 40, Amplitude: 80, Frequency: 0.9},
		component.KindFastEnemy:    {Health: 1, W: 28, H: 28, Descent: 240, SteerRate: 60},
		component.KindShooterEnemy: {Health: 2, W: 40, H: 40, Descent: 90, StopDistance: 200, FallbackStopY: 200, FireCooldown: 1.6, BulletSpeed: 200},
	}

	t.Run("idle_outside_playing", func(t *testing.T) {
		w := ecs.NewWorld()
		e := addSession(t, w, component.PhaseBossPending)
		_ = ecs.Add(w, e, component.SpawnerComponent.Kind(), &component.Spawner{
			Interval: 1, MinInterval: 0.25, DifficultyPeriod: 12, DifficultyFactor: 0.92,
		})

		s := NewSpawnSystem(rand.New(rand.NewSource(1)), defs)
		for i := 0; i < 120; i++ {
			s.Update(w, 1.0/60)
		}
		if n := countEnemies(w); n != 0 {
			t.Fatalf("spawned %d enemies outside the playing phase", n)
		}
	})

	t.Run("cadence_while_playing", func(t *testing.T) {
		w := ecs.NewWorld()
		e := addSession(t, w, component.PhasePlaying)
		_ = ecs.Add(w, e, component.SpawnerComponent.Kind(), &component.Spawner{
			Interval: 1, MinInterval: 0.25, DifficultyPeriod: 12, DifficultyFactor: 0.92,
		})

		s := NewSpawnSystem(rand.New(rand.NewSource(1)), defs)
		for i := 0; i < 20; i++ {
			s.Update(w, 0.25)
		}
		// 5 seconds at a 1 second interval.
		if n := countEnemies(w); n != 5 {
			t.Fatalf("spawned %d enemies in 5s, want 5", n)
		}
	})

	t.Run("remainder_preserved_on_big_steps", func(t *testing.T) {
		w := ecs.NewWorld()
		e := addSession(t, w, component.PhasePlaying)
		_ = ecs.Add(w, e, component.SpawnerComponent.Kind(), &component.Spawner{
			Interval: 1, MinInterval: 0.25, DifficultyPeriod: 12, DifficultyFactor: 0.92,
		})

		s := NewSpawnSystem(rand.New(rand.NewSource(1)), defs)
		s.Update(w, 2.5)
		if n := countEnemies(w); n != 2 {
			t.Fatalf("spawned %d enemies over a 2.5s step, want 2", n)
		}
		sp, _ := ecs.Get(w, e, component.SpawnerComponent.Kind())
		if math.Abs(sp.Timer-0.5) > 1e-9 {
			t.Fatalf("timer remainder = %v, want 0.5", sp.Timer)
		}
	})
}

func TestSpawnEnemyShooterLoadout(t *testing.T) {
	w := ecs.NewWorld()
	def := EnemyDef{Health: 2, W: 40, H: 40, Descent: 90, StopDistance: 200, FallbackStopY: 200, FireCooldown: 1.6, BulletSpeed: 200}

	e := SpawnEnemy(w, component.KindShooterEnemy, 240, -50, def)

	hp, ok := ecs.Get(w, e, component.HealthComponent.Kind())
	if !ok || hp.Current != 2 {
		t.Fatalf("shooter hp = %+v, want 2", hp)
	}
	gun, ok := ecs.Get(w, e, component.GunComponent.Kind())
	if !ok {
		t.Fatal("shooter spawned without a gun")
	}
	if gun.Timer != gun.Cooldown {
		t.Fatalf("shooter gun should start on cooldown, timer=%v cooldown=%v", gun.Timer, gun.Cooldown)
	}
	if !ecs.Has(w, e, component.EmitterComponent.Kind()) {
		t.Fatal("shooter spawned without an emitter")
	}

	basic := SpawnEnemy(w, component.KindBasicEnemy, 100, -50, EnemyDef{W: 36, H: 36, Descent: 120})
	if ecs.Has(w, basic, component.GunComponent.Kind()) {
		t.Fatal("basic enemy should not carry a gun")
	}
	if hp, _ := ecs.Get(w, basic, component.HealthComponent.Kind()); hp.Current != 1 {
		t.Fatalf("default hp = %d, want 1", hp.Current)
	}
}
