package system

import (
	"github.com/milk9111/corsair/common"
	"github.com/milk9111/corsair/ecs"
	"github.com/milk9111/corsair/ecs/component"
)

const pickupFallSpeed = 80.0

// CombatSystem resolves the frame's collisions in a fixed order: player
// bullets against enemies, hostile bullets against the player, enemy contact
// against the player, then pickups. A bullet is consumed by its first hit and
// never scores twice.
type CombatSystem struct{}

func NewCombatSystem() *CombatSystem {
	return &CombatSystem{}
}

func (s *CombatSystem) Update(w *ecs.World, dt float64) {
	if w == nil {
		return
	}

	sessionEnt, ok := ecs.First(w, component.SessionComponent.Kind())
	if !ok {
		return
	}
	session, ok := ecs.Get(w, sessionEnt, component.SessionComponent.Kind())
	if !ok {
		return
	}

	feed, ok := ecs.Get(w, sessionEnt, component.KillFeedComponent.Kind())
	if !ok {
		feed = &component.KillFeed{}
		_ = ecs.Add(w, sessionEnt, component.KillFeedComponent.Kind(), feed)
	}
	feed.Kills = feed.Kills[:0]

	targets := collectBodies(w, func(ship *component.Ship) bool {
		return ship.Kind.IsEnemy() || ship.Kind == component.KindBossEnemy
	})

	s.resolveBullets(w, session, feed, targets)

	playerRect, playerAlive := s.playerHitRect(w)
	if playerAlive {
		s.resolveHostileBullets(w, session, playerRect)
		s.resolveContact(w, session, playerRect, targets)
		s.resolvePickups(w, session, playerRect)
	}

	if session.Lives <= 0 {
		session.LivesDepleted = true
	}
}

func (s *CombatSystem) playerHitRect(w *ecs.World) (common.Rect, bool) {
	e, ok := ecs.First(w, component.PlayerControllerComponent.Kind())
	if !ok {
		return common.Rect{}, false
	}
	pc, _ := ecs.Get(w, e, component.PlayerControllerComponent.Kind())
	t, ok1 := ecs.Get(w, e, component.TransformComponent.Kind())
	ship, ok2 := ecs.Get(w, e, component.ShipComponent.Kind())
	if pc == nil || !ok1 || !ok2 {
		return common.Rect{}, false
	}
	return PlayerHitbox(t, ship, pc.Shrink), true
}

// resolveBullets applies player bullets to enemies and the boss. Each bullet
// lands at most one hit; depleted targets die and emit a kill.
func (s *CombatSystem) resolveBullets(w *ecs.World, session *component.Session, feed *component.KillFeed, targets []collisionBody) {
	bullets := collectBodies(w, func(ship *component.Ship) bool {
		return ship.Kind == component.KindPlayerBullet
	})

	for _, b := range bullets {
		bullet, ok := ecs.Get(w, b.ent, component.BulletComponent.Kind())
		if !ok {
			continue
		}
		for _, target := range targets {
			if !ecs.IsAlive(w, target.ent) || !b.rect.Overlaps(target.rect) {
				continue
			}
			ecs.DestroyEntity(w, b.ent)

			hp, ok := ecs.Get(w, target.ent, component.HealthComponent.Kind())
			if !ok {
				break
			}
			hp.Current -= bullet.Damage
			if hp.Current <= 0 {
				s.applyKill(w, session, feed, target)
			}
			break
		}
	}
}

func (s *CombatSystem) applyKill(w *ecs.World, session *component.Session, feed *component.KillFeed, target collisionBody) {
	cx, cy := target.rect.Center()
	feed.Kills = append(feed.Kills, component.Kill{Kind: target.ship.Kind, X: cx, Y: cy})
	ecs.DestroyEntity(w, target.ent)

	if target.ship.Kind == component.KindBossEnemy {
		session.BossDefeated = true
		spawnPickup(w, cx, cy)
		return
	}
	session.Score += 10
}

// resolveHostileBullets consumes every enemy or boss bullet overlapping the
// player, one life per bullet. There is no invulnerability window.
func (s *CombatSystem) resolveHostileBullets(w *ecs.World, session *component.Session, playerRect common.Rect) {
	bullets := collectBodies(w, func(ship *component.Ship) bool {
		return ship.Kind.IsBullet() && ship.Faction != component.FactionPlayer
	})
	for _, b := range bullets {
		if !b.rect.Overlaps(playerRect) {
			continue
		}
		ecs.DestroyEntity(w, b.ent)
		session.Lives--
	}
}

// resolveContact removes enemies that ram the player, one life per enemy.
func (s *CombatSystem) resolveContact(w *ecs.World, session *component.Session, playerRect common.Rect, targets []collisionBody) {
	for _, target := range targets {
		if target.ship.Kind == component.KindBossEnemy {
			continue
		}
		if !ecs.IsAlive(w, target.ent) || !target.rect.Overlaps(playerRect) {
			continue
		}
		ecs.DestroyEntity(w, target.ent)
		session.Lives--
	}
}

func (s *CombatSystem) resolvePickups(w *ecs.World, session *component.Session, playerRect common.Rect) {
	pickups := collectBodies(w, func(ship *component.Ship) bool {
		return ship.Kind == component.KindPickup
	})
	for _, p := range pickups {
		if !p.rect.Overlaps(playerRect) {
			continue
		}
		ecs.DestroyEntity(w, p.ent)
		session.PickupCollected = true
	}
}

// spawnPickup drops the victory pickup where the boss died.
func spawnPickup(w *ecs.World, x, y float64) ecs.Entity {
	e := ecs.CreateEntity(w)
	_ = ecs.Add(w, e, component.TransformComponent.Kind(), &component.Transform{X: x, Y: y})
	_ = ecs.Add(w, e, component.VelocityComponent.Kind(), &component.Velocity{VY: pickupFallSpeed})
	_ = ecs.Add(w, e, component.ShipComponent.Kind(), &component.Ship{
		Kind:    component.KindPickup,
		Faction: component.FactionEnemy,
		W:       24,
		H:       24,
	})
	_ = ecs.Add(w, e, component.PickupComponent.Kind(), &component.Pickup{})
	return e
}
