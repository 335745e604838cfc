package system

import (
	"math"
	"math/rand"
	"testing"

	"github.com/milk9111/corsair/ecs"
	"github.com/milk9111/corsair/ecs/component"
)

func addBoss(t *testing.T, w *ecs.World, patterns []string) ecs.Entity {
	t.Helper()
	e := ecs.CreateEntity(w)
	if err := ecs.Add(w, e, component.TransformComponent.Kind(), &component.Transform{X: 240, Y: 120}); err != nil {
		t.Fatal(err)
	}
	if err := ecs.Add(w, e, component.ShipComponent.Kind(), &component.Ship{
		Kind: component.KindBossEnemy, Faction: component.FactionBoss, W: 96, H: 64,
	}); err != nil {
		t.Fatal(err)
	}
	if err := ecs.Add(w, e, component.BossComponent.Kind(), &component.Boss{
		StartY: 120, Entered: true, Speed: 140, DirX: 1, MinX: 60, MaxX: 420,
		CooldownMax: 2.5, Patterns: patterns,
	}); err != nil {
		t.Fatal(err)
	}
	if err := ecs.Add(w, e, component.EmitterComponent.Kind(), &component.Emitter{}); err != nil {
		t.Fatal(err)
	}
	return e
}

func TestBossPatternRotation(t *testing.T) {
	w := ecs.NewWorld()
	addSession(t, w, component.PhaseBossFight)
	e := addBoss(t, w, nil)

	s := NewBossSystem(rand.New(rand.NewSource(7)))
	boss, _ := ecs.Get(w, e, component.BossComponent.Kind())
	emitter, _ := ecs.Get(w, e, component.EmitterComponent.Kind())

	for volley := 0; volley < 8; volley++ {
		boss.Cooldown = 0
		emitter.Pending = emitter.Pending[:0]
		s.Update(w, 1.0/60)

		if boss.PatternIndex != volley+1 {
			t.Fatalf("volley %d: pattern index = %d, want %d", volley, boss.PatternIndex, volley+1)
		}
		if len(emitter.Pending) == 0 {
			t.Fatalf("volley %d produced no shots", volley)
		}
		for _, shot := range emitter.Pending {
			if shot.Kind != component.KindBossBullet || shot.Faction != component.FactionBoss {
				t.Fatalf("volley %d emitted %v/%v", volley, shot.Kind, shot.Faction)
			}
		}
	}

	if boss.Cooldown != boss.CooldownMax {
		t.Fatalf("cooldown = %v, want reset to %v", boss.Cooldown, boss.CooldownMax)
	}
}

func TestBossHoldsFireOutsideBossFight(t *testing.T) {
	w := ecs.NewWorld()
	addSession(t, w, component.PhasePlaying)
	e := addBoss(t, w, nil)

	s := NewBossSystem(rand.New(rand.NewSource(7)))
	s.Update(w, 1.0/60)

	emitter, _ := ecs.Get(w, e, component.EmitterComponent.Kind())
	if len(emitter.Pending) != 0 {
		t.Fatalf("boss fired %d shots outside the boss fight", len(emitter.Pending))
	}
}

func TestFanShots(t *testing.T) {
	shots := FanShots(240, 120)
	if len(shots) != 4 {
		t.Fatalf("got %d shots, want 4", len(shots))
	}
	corridor := fanShotSpeed * math.Sin(20*math.Pi/180)
	for _, s := range shots {
		if s.VY <= 0 {
			t.Fatalf("fan shot not heading down: vy=%v", s.VY)
		}
		if math.Abs(s.VX) < corridor {
			t.Fatalf("fan shot inside the escape corridor: vx=%v", s.VX)
		}
	}
}

func TestDiagonalShots(t *testing.T) {
	shots := DiagonalShots(240, 120)
	if len(shots) != 10 {
		t.Fatalf("got %d shots, want 10", len(shots))
	}
	for i := 0; i < len(shots); i += 2 {
		left, right := shots[i], shots[i+1]
		if math.Abs(left.VX+right.VX) > 1e-9 {
			t.Fatalf("pair %d not mirrored: %v vs %v", i/2, left.VX, right.VX)
		}
		if left.X >= right.X {
			t.Fatalf("pair %d origins not split around the boss", i/2)
		}
		if left.Y != 140 || right.Y != 140 {
			t.Fatalf("pair %d origin y = %v/%v, want 140", i/2, left.Y, right.Y)
		}
	}
}

func TestCurtainShots(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	for trial := 0; trial < 50; trial++ {
		shots := CurtainShots(120, rng)
		// 11 columns cross the playfield; the gap always removes at least one.
		if len(shots) > 10 || len(shots) < 8 {
			t.Fatalf("trial %d: %d shots, want 8-10", trial, len(shots))
		}
		for _, s := range shots {
			if s.VX != 0 || s.VY != curtainShotSpeed {
				t.Fatalf("trial %d: curtain shot not straight down: (%v, %v)", trial, s.VX, s.VY)
			}
		}
	}
}

func TestSpiralShots(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	for trial := 0; trial < 50; trial++ {
		shots := SpiralShots(240, 120, rng)
		if len(shots) != 9 {
			t.Fatalf("trial %d: %d shots, want 9", trial, len(shots))
		}
		for _, s := range shots {
			if speed := math.Hypot(s.VX, s.VY); math.Abs(speed-spiralShotSpeed) > 1e-9 {
				t.Fatalf("trial %d: spiral speed %v, want %v", trial, speed, spiralShotSpeed)
			}
		}
	}
}

func TestScriptedVolley(t *testing.T) {
	s := NewBossSystem(rand.New(rand.NewSource(11)))

	shots, err := s.scriptVolley("script:cross.tengo", 240, 120)
	if err != nil {
		t.Fatal(err)
	}
	if len(shots) != 8 {
		t.Fatalf("got %d shots, want 8", len(shots))
	}
	for _, shot := range shots {
		if speed := math.Hypot(shot.VX, shot.VY); math.Abs(speed-230) > 1e-6 {
			t.Fatalf("scripted speed %v, want 230", speed)
		}
	}

	// Each volley rotates the cross, so consecutive volleys differ.
	again, err := s.scriptVolley("script:cross.tengo", 240, 120)
	if err != nil {
		t.Fatal(err)
	}
	if again[0].VX == shots[0].VX && again[0].VY == shots[0].VY {
		t.Fatal("second volley did not rotate")
	}

	if _, err := s.scriptVolley("nonsense", 240, 120); err == nil {
		t.Fatal("expected an error for an unknown pattern")
	}
}
