package system

import (
	"github.com/milk9111/corsair/common"
	"github.com/milk9111/corsair/ecs"
	"github.com/milk9111/corsair/ecs/component"
)

// PhaseEvent is one observed trigger for a phase transition.
type PhaseEvent int

const (
	EventNone PhaseEvent = iota
	// EventConfirm is the explicit start action from the menu.
	EventConfirm
	// EventBossTimer fires when session time reaches the boss threshold.
	EventBossTimer
	// EventFieldCleared fires when no non-boss enemies remain.
	EventFieldCleared
	// EventBossDown fires once the boss is dead and its drop collected.
	EventBossDown
	// EventLivesGone fires when lives reach zero.
	EventLivesGone
	// EventDwellDone ends the victory/game-over display.
	EventDwellDone
)

// NextPhase is the pure transition function of the top-level state machine.
// Events that do not apply to the current phase leave it unchanged.
func NextPhase(p component.Phase, ev PhaseEvent) component.Phase {
	switch ev {
	case EventConfirm:
		if p == component.PhaseMenu {
			return component.PhasePlaying
		}
	case EventBossTimer:
		if p == component.PhasePlaying {
			return component.PhaseBossPending
		}
	case EventFieldCleared:
		if p == component.PhaseBossPending {
			return component.PhaseBossFight
		}
	case EventBossDown:
		if p == component.PhaseBossFight {
			return component.PhaseVictory
		}
	case EventLivesGone:
		switch p {
		case component.PhasePlaying, component.PhaseBossPending, component.PhaseBossFight:
			return component.PhaseGameOver
		}
	case EventDwellDone:
		switch p {
		case component.PhaseVictory, component.PhaseGameOver:
			return component.PhaseMenu
		}
	}
	return p
}

const endDwellSeconds = 3.0

// Track names for the music system, keyed to phases.
const (
	TrackMenu     = "audio/menu.wav"
	TrackGameplay = "audio/gameplay.wav"
	TrackBoss     = "audio/boss.wav"
	TrackVictory  = "audio/victory.wav"
)

// PlayerDef is the player ship tuning used when a run starts.
type PlayerDef struct {
	Speed         float64
	BulletSpeed   float64
	ShootCooldown float64
	W, H          float64
	Lives         int
	Shrink        float64
}

// BossDef is the boss ship tuning used when the boss fight starts.
type BossDef struct {
	Health   int
	W, H     float64
	StartY   float64
	Descent  float64
	Speed    float64
	MinX     float64
	MaxX     float64
	Cooldown float64
	Patterns []string
}

// SpawnDef seeds the spawn scheduler at the start of a run.
type SpawnDef struct {
	Interval         float64
	MinInterval      float64
	DifficultyPeriod float64
	DifficultyFactor float64
}

// PhaseSystem owns the session phase. It observes the flags the other
// systems set, applies the pure transition function, and performs the entry
// actions for each new phase (spawning the player or boss, clearing the
// field, requesting music).
type PhaseSystem struct {
	player PlayerDef
	boss   BossDef
	spawn  SpawnDef

	// decorate lets the caller attach presentation components (sounds) to
	// entities this system spawns. May be nil.
	decorate func(w *ecs.World, e ecs.Entity, kind component.Kind)
}

func NewPhaseSystem(player PlayerDef, boss BossDef, spawn SpawnDef, decorate func(*ecs.World, ecs.Entity, component.Kind)) *PhaseSystem {
	return &PhaseSystem{player: player, boss: boss, spawn: spawn, decorate: decorate}
}

func (s *PhaseSystem) Update(w *ecs.World, dt float64) {
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
	input, ok := ecs.Get(w, sessionEnt, component.InputComponent.Kind())
	if !ok {
		input = &component.Input{}
	}

	switch session.Phase {
	case component.PhaseMenu:
		if input.Confirm {
			s.apply(w, sessionEnt, session, EventConfirm)
		}

	case component.PhasePlaying:
		session.Elapsed += dt
		if session.LivesDepleted {
			s.apply(w, sessionEnt, session, EventLivesGone)
			return
		}
		if session.Elapsed >= session.BossAt {
			s.apply(w, sessionEnt, session, EventBossTimer)
		}

	case component.PhaseBossPending:
		session.Elapsed += dt
		if session.LivesDepleted {
			s.apply(w, sessionEnt, session, EventLivesGone)
			return
		}
		if !anyEnemiesAlive(w) {
			s.apply(w, sessionEnt, session, EventFieldCleared)
		}

	case component.PhaseBossFight:
		session.Elapsed += dt
		if session.LivesDepleted {
			s.apply(w, sessionEnt, session, EventLivesGone)
			return
		}
		if session.BossDefeated && session.PickupCollected {
			s.apply(w, sessionEnt, session, EventBossDown)
		}

	case component.PhaseVictory, component.PhaseGameOver:
		session.EndTimer -= dt
		if session.EndTimer <= 0 || input.Return {
			s.apply(w, sessionEnt, session, EventDwellDone)
		}
	}
}

// apply runs the transition function and, when the phase changes, the new
// phase's entry actions.
func (s *PhaseSystem) apply(w *ecs.World, sessionEnt ecs.Entity, session *component.Session, ev PhaseEvent) {
	next := NextPhase(session.Phase, ev)
	if next == session.Phase {
		return
	}
	session.Phase = next

	switch next {
	case component.PhasePlaying:
		s.startRun(w, sessionEnt, session)
		RequestMusic(w, TrackGameplay)
	case component.PhaseBossFight:
		s.spawnBoss(w)
		RequestMusic(w, TrackBoss)
	case component.PhaseVictory:
		session.EndTimer = endDwellSeconds
		RequestMusic(w, TrackVictory)
	case component.PhaseGameOver:
		session.EndTimer = endDwellSeconds
		destroyBoss(w)
		StopMusic(w)
	case component.PhaseMenu:
		clearField(w, sessionEnt)
		RequestMusic(w, TrackMenu)
	}
}

// startRun resets the session and populates a fresh field.
func (s *PhaseSystem) startRun(w *ecs.World, sessionEnt ecs.Entity, session *component.Session) {
	clearField(w, sessionEnt)

	session.Score = 0
	session.Lives = s.player.Lives
	session.Elapsed = 0
	session.BossDefeated = false
	session.PickupCollected = false
	session.LivesDepleted = false
	session.EndTimer = 0

	_ = ecs.Add(w, sessionEnt, component.SpawnerComponent.Kind(), &component.Spawner{
		Interval:         s.spawn.Interval,
		MinInterval:      s.spawn.MinInterval,
		DifficultyPeriod: s.spawn.DifficultyPeriod,
		DifficultyFactor: s.spawn.DifficultyFactor,
	})

	s.spawnPlayer(w)
}

func (s *PhaseSystem) spawnPlayer(w *ecs.World) ecs.Entity {
	e := ecs.CreateEntity(w)
	_ = ecs.Add(w, e, component.TransformComponent.Kind(), &component.Transform{
		X: common.BaseWidth / 2,
		Y: common.BaseHeight - 80,
	})
	_ = ecs.Add(w, e, component.ShipComponent.Kind(), &component.Ship{
		Kind:    component.KindPlayerShip,
		Faction: component.FactionPlayer,
		W:       s.player.W,
		H:       s.player.H,
	})
	_ = ecs.Add(w, e, component.PlayerControllerComponent.Kind(), &component.PlayerController{
		Speed:       s.player.Speed,
		BulletSpeed: s.player.BulletSpeed,
		Shrink:      s.player.Shrink,
	})
	_ = ecs.Add(w, e, component.GunComponent.Kind(), &component.Gun{
		Cooldown:    s.player.ShootCooldown,
		BulletSpeed: s.player.BulletSpeed,
	})
	_ = ecs.Add(w, e, component.EmitterComponent.Kind(), &component.Emitter{})
	if s.decorate != nil {
		s.decorate(w, e, component.KindPlayerShip)
	}
	return e
}

func (s *PhaseSystem) spawnBoss(w *ecs.World) ecs.Entity {
	hp := s.boss.Health
	if hp <= 0 {
		hp = 50
	}
	patterns := s.boss.Patterns
	if len(patterns) == 0 {
		patterns = DefaultBossPatterns
	}

	e := ecs.CreateEntity(w)
	_ = ecs.Add(w, e, component.TransformComponent.Kind(), &component.Transform{
		X: common.BaseWidth / 2,
		Y: -s.boss.H,
	})
	_ = ecs.Add(w, e, component.ShipComponent.Kind(), &component.Ship{
		Kind:    component.KindBossEnemy,
		Faction: component.FactionBoss,
		W:       s.boss.W,
		H:       s.boss.H,
	})
	_ = ecs.Add(w, e, component.HealthComponent.Kind(), &component.Health{Current: hp, Max: hp})
	_ = ecs.Add(w, e, component.BossComponent.Kind(), &component.Boss{
		StartY:      s.boss.StartY,
		Descent:     s.boss.Descent,
		Speed:       s.boss.Speed,
		DirX:        1,
		MinX:        s.boss.MinX,
		MaxX:        s.boss.MaxX,
		Cooldown:    s.boss.Cooldown,
		CooldownMax: s.boss.Cooldown,
		Patterns:    patterns,
	})
	_ = ecs.Add(w, e, component.EmitterComponent.Kind(), &component.Emitter{})
	if s.decorate != nil {
		s.decorate(w, e, component.KindBossEnemy)
	}
	return e
}

// destroyBoss removes any boss entity. A boss only exists during the boss
// fight; a run that ends mid-fight must not leave one drifting over the
// game-over screen.
func destroyBoss(w *ecs.World) {
	ecs.ForEach(w, component.BossComponent.Kind(), func(e ecs.Entity, _ *component.Boss) {
		ecs.DestroyEntity(w, e)
	})
}

// anyEnemiesAlive reports whether any non-boss enemy remains.
func anyEnemiesAlive(w *ecs.World) bool {
	found := false
	ecs.ForEach(w, component.ShipComponent.Kind(), func(_ ecs.Entity, ship *component.Ship) {
		if ship.Kind.IsEnemy() {
			found = true
		}
	})
	return found
}

// clearField destroys every entity except the session singleton and the
// music player.
func clearField(w *ecs.World, sessionEnt ecs.Entity) {
	for _, e := range ecs.Entities(w) {
		if e == sessionEnt {
			continue
		}
		if ecs.Has(w, e, component.MusicPlayerComponent.Kind()) {
			continue
		}
		ecs.DestroyEntity(w, e)
	}
}
