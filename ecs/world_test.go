package ecs

import (
	"testing"

	"github.com/milk9111/corsair/ecs/component"
)

func TestSparseWorldEntityLifecycle(t *testing.T) {
	cases := []struct {
		name         string
		create       int
		destroyIndex int // -1 = none
	}{
		{"single", 1, 0},
		{"three_create_destroy_middle", 3, 1},
		{"none_destroy", 2, -1},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			w := NewWorld()
			ents := make([]Entity, 0, c.create)
			for i := 0; i < c.create; i++ {
				ents = append(ents, CreateEntity(w))
			}
			if len(Entities(w)) != c.create {
				t.Fatalf("expected %d entities, got %d", c.create, len(Entities(w)))
			}
			if c.destroyIndex >= 0 {
				if !DestroyEntity(w, ents[c.destroyIndex]) {
					t.Fatalf("DestroyEntity should return true for alive entity")
				}
				if IsAlive(w, ents[c.destroyIndex]) {
					t.Fatalf("entity should not be alive after destruction")
				}
			}
		})
	}
}

func toSet(ents []Entity) map[Entity]struct{} {
	m := make(map[Entity]struct{}, len(ents))
	for _, e := range ents {
		m[e] = struct{}{}
	}
	return m
}

func TestSparseWorldComponentsAndQueries(t *testing.T) {
	t.Run("component_table", func(t *testing.T) {
		w := NewWorld()

		e1 := CreateEntity(w)
		e2 := CreateEntity(w)

		tests := []struct {
			name     string
			setup    func() error
			check    func(t *testing.T)
			teardown func() bool
		}{
			{
				name: "add_transform_to_e1",
				setup: func() error {
					return Add(w, e1, component.TransformComponent.Kind(), &component.Transform{X: 240, Y: 700})
				},
				check: func(t *testing.T) {
					v, ok := Get(w, e1, component.TransformComponent.Kind())
					if !ok || v.X != 240 || v.Y != 700 {
						t.Fatalf("expected (240, 700), got %+v ok=%v", v, ok)
					}
				},
				teardown: func() bool { return Remove(w, e1, component.TransformComponent.Kind()) },
			},
			{
				name: "add_ship_to_e1_and_e2",
				setup: func() error {
					if err := Add(w, e1, component.ShipComponent.Kind(), &component.Ship{Kind: component.KindPlayerShip}); err != nil {
						return err
					}
					return Add(w, e2, component.ShipComponent.Kind(), &component.Ship{Kind: component.KindBasicEnemy})
				},
				check: func(t *testing.T) {
					if !Has(w, e1, component.ShipComponent.Kind()) || !Has(w, e2, component.ShipComponent.Kind()) {
						t.Fatalf("expected both entities to have ship component")
					}
				},
				teardown: func() bool { return Remove(w, e1, component.ShipComponent.Kind()) },
			},
			{
				name: "add_health_and_remove",
				setup: func() error {
					return Add(w, e1, component.HealthComponent.Kind(), &component.Health{Current: 2, Max: 2})
				},
				check: func(t *testing.T) {
					if _, ok := Get(w, e1, component.HealthComponent.Kind()); !ok {
						t.Fatalf("expected health present")
					}
				},
				teardown: func() bool { return Remove(w, e1, component.HealthComponent.Kind()) },
			},
		}

		for _, tc := range tests {
			t.Run(tc.name, func(t *testing.T) {
				if err := tc.setup(); err != nil {
					t.Fatalf("setup failed: %v", err)
				}
				tc.check(t)
				if !tc.teardown() {
					t.Fatalf("teardown failed for %s", tc.name)
				}
			})
		}
	})

	t.Run("add_replaces_existing", func(t *testing.T) {
		w := NewWorld()
		e := CreateEntity(w)

		if err := Add(w, e, component.HealthComponent.Kind(), &component.Health{Current: 1, Max: 1}); err != nil {
			t.Fatal(err)
		}
		if err := Add(w, e, component.HealthComponent.Kind(), &component.Health{Current: 50, Max: 50}); err != nil {
			t.Fatal(err)
		}

		hp, ok := Get(w, e, component.HealthComponent.Kind())
		if !ok || hp.Max != 50 {
			t.Fatalf("expected replacement health, got %+v ok=%v", hp, ok)
		}
	})

	t.Run("add_to_dead_entity_fails", func(t *testing.T) {
		w := NewWorld()
		e := CreateEntity(w)
		if !DestroyEntity(w, e) {
			t.Fatal("failed to destroy entity")
		}

		err := Add(w, e, component.TransformComponent.Kind(), &component.Transform{})
		if err != component.ErrEntityNotAlive {
			t.Fatalf("expected ErrEntityNotAlive, got %v", err)
		}
	})
}

func TestForEach(t *testing.T) {
	t.Run("basic", func(t *testing.T) {
		w := NewWorld()

		e1 := CreateEntity(w)
		e2 := CreateEntity(w)
		e3 := CreateEntity(w)

		if err := Add(w, e1, component.TransformComponent.Kind(), &component.Transform{X: 1}); err != nil {
			t.Fatalf("add failed: %v", err)
		}
		if err := Add(w, e3, component.TransformComponent.Kind(), &component.Transform{X: 3}); err != nil {
			t.Fatalf("add failed: %v", err)
		}

		var ents []Entity
		ForEach(w, component.TransformComponent.Kind(), func(e Entity, _ *component.Transform) { ents = append(ents, e) })
		set := toSet(ents)

		if _, ok := set[e1]; !ok {
			t.Fatalf("expected e1 in ForEach result")
		}
		if _, ok := set[e3]; !ok {
			t.Fatalf("expected e3 in ForEach result")
		}
		if _, ok := set[e2]; ok {
			t.Fatalf("did not expect e2 in ForEach result")
		}
	})

	t.Run("callback_may_destroy", func(t *testing.T) {
		w := NewWorld()

		for i := 0; i < 4; i++ {
			e := CreateEntity(w)
			if err := Add(w, e, component.BulletComponent.Kind(), &component.Bullet{Damage: 1}); err != nil {
				t.Fatal(err)
			}
		}

		visited := 0
		ForEach(w, component.BulletComponent.Kind(), func(e Entity, _ *component.Bullet) {
			visited++
			DestroyEntity(w, e)
		})
		if visited != 4 {
			t.Fatalf("expected all 4 visited despite destruction, got %d", visited)
		}
		if len(Entities(w)) != 0 {
			t.Fatalf("expected empty world, got %d entities", len(Entities(w)))
		}
	})
}

func TestForEach3(t *testing.T) {
	tests := []struct {
		name string
		run  func(t *testing.T)
	}{
		{
			name: "intersection",
			run: func(t *testing.T) {
				w := NewWorld()
				e1 := CreateEntity(w)
				e2 := CreateEntity(w)
				e3 := CreateEntity(w)
				e4 := CreateEntity(w)

				ka := component.TransformComponent.Kind()
				kb := component.VelocityComponent.Kind()
				kc := component.BulletComponent.Kind()

				// e2 is the only full bullet archetype
				if err := Add(w, e1, ka, &component.Transform{}); err != nil {
					t.Fatal(err)
				}
				if err := Add(w, e2, ka, &component.Transform{}); err != nil {
					t.Fatal(err)
				}
				if err := Add(w, e2, kb, &component.Velocity{VY: -600}); err != nil {
					t.Fatal(err)
				}
				if err := Add(w, e2, kc, &component.Bullet{Damage: 1}); err != nil {
					t.Fatal(err)
				}
				if err := Add(w, e3, kb, &component.Velocity{}); err != nil {
					t.Fatal(err)
				}
				if err := Add(w, e4, kc, &component.Bullet{}); err != nil {
					t.Fatal(err)
				}

				var res []Entity
				ForEach3(w, ka, kb, kc, func(e Entity, _ *component.Transform, _ *component.Velocity, _ *component.Bullet) {
					res = append(res, e)
				})
				if len(res) != 1 || res[0].id() != e2.id() {
					t.Fatalf("expected only e2, got %v", res)
				}
			},
		},
		{
			name: "ignores_dead_entities",
			run: func(t *testing.T) {
				w := NewWorld()
				e := CreateEntity(w)

				ka := component.TransformComponent.Kind()
				kb := component.VelocityComponent.Kind()
				kc := component.BulletComponent.Kind()

				if err := Add(w, e, ka, &component.Transform{}); err != nil {
					t.Fatal(err)
				}
				if err := Add(w, e, kb, &component.Velocity{}); err != nil {
					t.Fatal(err)
				}
				if err := Add(w, e, kc, &component.Bullet{}); err != nil {
					t.Fatal(err)
				}

				if !DestroyEntity(w, e) {
					t.Fatal("failed to destroy entity")
				}

				var res []Entity
				ForEach3(w, ka, kb, kc, func(e Entity, _ *component.Transform, _ *component.Velocity, _ *component.Bullet) {
					res = append(res, e)
				})
				if len(res) != 0 {
					t.Fatalf("expected empty result after destroy, got %v", res)
				}
			},
		},
		{
			name: "no_common",
			run: func(t *testing.T) {
				w := NewWorld()
				e1 := CreateEntity(w)
				e2 := CreateEntity(w)

				if err := Add(w, e1, component.TransformComponent.Kind(), &component.Transform{}); err != nil {
					t.Fatal(err)
				}
				if err := Add(w, e2, component.VelocityComponent.Kind(), &component.Velocity{}); err != nil {
					t.Fatal(err)
				}

				var res []Entity
				ForEach3(w,
					component.TransformComponent.Kind(),
					component.VelocityComponent.Kind(),
					component.BulletComponent.Kind(),
					func(e Entity, _ *component.Transform, _ *component.Velocity, _ *component.Bullet) {
						res = append(res, e)
					})
				if len(res) != 0 {
					t.Fatalf("expected no common entities, got %v", res)
				}
			},
		},
		{
			name: "missing_store_returns_nil",
			run: func(t *testing.T) {
				w := NewWorld()
				e := CreateEntity(w)

				if err := Add(w, e, component.TransformComponent.Kind(), &component.Transform{}); err != nil {
					t.Fatal(err)
				}

				var res []Entity
				ForEach3(w,
					component.TransformComponent.Kind(),
					component.PickupComponent.Kind(),
					component.BossComponent.Kind(),
					func(e Entity, _ *component.Transform, _ *component.Pickup, _ *component.Boss) {
						res = append(res, e)
					})
				if res != nil && len(res) != 0 {
					t.Fatalf("expected empty when other store missing, got %v", res)
				}
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, tc.run)
	}
}

func TestForEach4(t *testing.T) {
	tests := []struct {
		name string
		run  func(t *testing.T)
	}{
		{
			name: "intersection",
			run: func(t *testing.T) {
				w := NewWorld()
				e1 := CreateEntity(w)
				e2 := CreateEntity(w)
				e3 := CreateEntity(w)
				e4 := CreateEntity(w)
				e5 := CreateEntity(w)

				ka := component.TransformComponent.Kind()
				kb := component.ShipComponent.Kind()
				kc := component.MotionComponent.Kind()
				kd := component.GunComponent.Kind()

				// e2 is the only armed shooter archetype
				if err := Add(w, e1, ka, &component.Transform{}); err != nil {
					t.Fatal(err)
				}
				if err := Add(w, e2, ka, &component.Transform{}); err != nil {
					t.Fatal(err)
				}
				if err := Add(w, e2, kb, &component.Ship{Kind: component.KindShooterEnemy}); err != nil {
					t.Fatal(err)
				}
				if err := Add(w, e2, kc, &component.Motion{Descent: 90}); err != nil {
					t.Fatal(err)
				}
				if err := Add(w, e2, kd, &component.Gun{Cooldown: 1.6}); err != nil {
					t.Fatal(err)
				}
				if err := Add(w, e3, kb, &component.Ship{}); err != nil {
					t.Fatal(err)
				}
				if err := Add(w, e4, kc, &component.Motion{}); err != nil {
					t.Fatal(err)
				}
				if err := Add(w, e5, kd, &component.Gun{}); err != nil {
					t.Fatal(err)
				}

				var res []Entity
				ForEach4(w, ka, kb, kc, kd, func(e Entity, _ *component.Transform, _ *component.Ship, _ *component.Motion, _ *component.Gun) {
					res = append(res, e)
				})
				if len(res) != 1 || res[0].id() != e2.id() {
					t.Fatalf("expected only e2, got %v", res)
				}
			},
		},
		{
			name: "ignores_dead_entities",
			run: func(t *testing.T) {
				w := NewWorld()
				e := CreateEntity(w)

				ka := component.TransformComponent.Kind()
				kb := component.ShipComponent.Kind()
				kc := component.MotionComponent.Kind()
				kd := component.GunComponent.Kind()

				if err := Add(w, e, ka, &component.Transform{}); err != nil {
					t.Fatal(err)
				}
				if err := Add(w, e, kb, &component.Ship{}); err != nil {
					t.Fatal(err)
				}
				if err := Add(w, e, kc, &component.Motion{}); err != nil {
					t.Fatal(err)
				}
				if err := Add(w, e, kd, &component.Gun{}); err != nil {
					t.Fatal(err)
				}

				if !DestroyEntity(w, e) {
					t.Fatal("failed to destroy entity")
				}

				var res []Entity
				ForEach4(w, ka, kb, kc, kd, func(e Entity, _ *component.Transform, _ *component.Ship, _ *component.Motion, _ *component.Gun) {
					res = append(res, e)
				})
				if len(res) != 0 {
					t.Fatalf("expected empty result after destroy, got %v", res)
				}
			},
		},
		{
			name: "no_common",
			run: func(t *testing.T) {
				w := NewWorld()
				e1 := CreateEntity(w)
				e2 := CreateEntity(w)

				if err := Add(w, e1, component.TransformComponent.Kind(), &component.Transform{}); err != nil {
					t.Fatal(err)
				}
				if err := Add(w, e2, component.ShipComponent.Kind(), &component.Ship{}); err != nil {
					t.Fatal(err)
				}

				var res []Entity
				ForEach4(w,
					component.TransformComponent.Kind(),
					component.ShipComponent.Kind(),
					component.MotionComponent.Kind(),
					component.GunComponent.Kind(),
					func(e Entity, _ *component.Transform, _ *component.Ship, _ *component.Motion, _ *component.Gun) {
						res = append(res, e)
					})
				if len(res) != 0 {
					t.Fatalf("expected no common entities, got %v", res)
				}
			},
		},
		{
			name: "missing_store_returns_nil",
			run: func(t *testing.T) {
				w := NewWorld()
				e := CreateEntity(w)

				if err := Add(w, e, component.TransformComponent.Kind(), &component.Transform{}); err != nil {
					t.Fatal(err)
				}

				var res []Entity
				ForEach4(w,
					component.TransformComponent.Kind(),
					component.ShipComponent.Kind(),
					component.PickupComponent.Kind(),
					component.BossComponent.Kind(),
					func(e Entity, _ *component.Transform, _ *component.Ship, _ *component.Pickup, _ *component.Boss) {
						res = append(res, e)
					})
				if res != nil && len(res) != 0 {
					t.Fatalf("expected empty when other store missing, got %v", res)
				}
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, tc.run)
	}
}
