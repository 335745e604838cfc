package main

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/corsair/assets"
	"github.com/milk9111/corsair/common"
	"github.com/milk9111/corsair/ecs"
	"github.com/milk9111/corsair/ecs/component"
	"github.com/milk9111/corsair/ecs/system"
	"github.com/milk9111/corsair/prefabs"
)

// Game drives the ebiten loop: one scheduler pass per frame, in the fixed
// order motion, projectile drain, spawn, collisions, cull, phase. Pausing
// skips the simulation pass but never drawing.
type Game struct {
	world     *ecs.World
	scheduler *ecs.Scheduler

	inputSystem *system.InputSystem
	audioSystem *system.AudioSystem
	musicSystem *system.MusicSystem
	spawnSystem *system.SpawnSystem

	sessionEnt ecs.Entity
	sprites    map[component.Kind]*ebiten.Image

	ui *gameUI

	debug   bool
	watcher *prefabs.Watcher
}

func NewGame(debug bool) (*Game, error) {
	playerSpec, err := prefabs.LoadPlayerSpec()
	if err != nil {
		return nil, err
	}
	enemiesSpec, err := prefabs.LoadEnemiesSpec()
	if err != nil {
		return nil, err
	}
	bossSpec, err := prefabs.LoadBossSpec()
	if err != nil {
		return nil, err
	}
	spawnSpec, err := prefabs.LoadSpawnSpec()
	if err != nil {
		return nil, err
	}
	theme, err := prefabs.LoadThemeSpec()
	if err != nil {
		return nil, err
	}

	g := &Game{
		world:   ecs.NewWorld(),
		debug:   debug,
		sprites: buildSprites(playerSpec, enemiesSpec, bossSpec),
	}

	g.sessionEnt = ecs.CreateEntity(g.world)
	_ = ecs.Add(g.world, g.sessionEnt, component.SessionComponent.Kind(), &component.Session{
		Phase:  component.PhaseMenu,
		Lives:  playerSpec.Lives,
		BossAt: spawnSpec.BossAt,
	})
	_ = ecs.Add(g.world, g.sessionEnt, component.InputComponent.Kind(), &component.Input{})
	_ = ecs.Add(g.world, g.sessionEnt, component.KillFeedComponent.Kind(), &component.KillFeed{})

	musicEnt := ecs.CreateEntity(g.world)
	_ = ecs.Add(g.world, musicEnt, component.MusicPlayerComponent.Kind(), &component.MusicPlayer{})

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	g.spawnSystem = system.NewSpawnSystem(rng, enemyDefs(enemiesSpec))

	phaseSystem := system.NewPhaseSystem(
		system.PlayerDef{
			Speed:         playerSpec.MoveSpeed,
			BulletSpeed:   playerSpec.BulletSpeed,
			ShootCooldown: playerSpec.ShootCooldown,
			W:             playerSpec.Width,
			H:             playerSpec.Height,
			Lives:         playerSpec.Lives,
			Shrink:        playerSpec.HitboxShrink,
		},
		system.BossDef{
			Health:   bossSpec.Health,
			W:        bossSpec.Width,
			H:        bossSpec.Height,
			StartY:   bossSpec.StartY,
			Descent:  bossSpec.Descent,
			Speed:    bossSpec.Speed,
			MinX:     bossSpec.MinX,
			MaxX:     bossSpec.MaxX,
			Cooldown: bossSpec.Cooldown,
			Patterns: bossSpec.Patterns,
		},
		system.SpawnDef{
			Interval:         spawnSpec.Interval,
			MinInterval:      spawnSpec.MinInterval,
			DifficultyPeriod: spawnSpec.DifficultyPeriod,
			DifficultyFactor: spawnSpec.DifficultyFactor,
		},
		g.decorateSpawn(playerSpec, bossSpec),
	)

	g.scheduler = ecs.NewScheduler(
		system.NewPlayerControlSystem(),
		system.NewMotionSystem(),
		system.NewShooterFireSystem(),
		system.NewBossSystem(rng),
		system.NewProjectileSystem(),
		g.spawnSystem,
		system.NewCombatSystem(),
		system.NewEffectSystem(),
		system.NewCullSystem(),
		phaseSystem,
	)

	g.inputSystem = system.NewInputSystem()
	g.audioSystem = system.NewAudioSystem()
	g.musicSystem = system.NewMusicSystem()

	g.ui = newGameUI(g, theme)

	if debug {
		watcher, err := prefabs.NewWatcher("prefabs", "prefabs/scripts")
		if err != nil {
			fmt.Printf("prefabs: watch: %v\n", err)
		} else {
			g.watcher = watcher
		}
	}

	system.RequestMusic(g.world, system.TrackMenu)

	return g, nil
}

// decorateSpawn attaches one-shot sounds to the entities the phase system
// spawns. Missing audio is silently skipped.
func (g *Game) decorateSpawn(playerSpec *prefabs.PlayerSpec, bossSpec *prefabs.BossSpec) func(*ecs.World, ecs.Entity, component.Kind) {
	return func(w *ecs.World, e ecs.Entity, kind component.Kind) {
		var specs []prefabs.AudioSpec
		switch kind {
		case component.KindPlayerShip:
			specs = playerSpec.Audio
		case component.KindBossEnemy:
			specs = bossSpec.Audio
		}
		if len(specs) == 0 {
			return
		}

		audioComp := &component.Audio{}
		for _, spec := range specs {
			player, err := assets.LoadAudioPlayer(spec.File)
			if err != nil {
				continue
			}
			volume := spec.Volume
			if volume <= 0 {
				volume = 1
			}
			audioComp.Names = append(audioComp.Names, spec.Name)
			audioComp.Players = append(audioComp.Players, player)
			audioComp.Volume = append(audioComp.Volume, volume)
			audioComp.Play = append(audioComp.Play, false)
			audioComp.Stop = append(audioComp.Stop, false)
		}
		if len(audioComp.Names) > 0 {
			_ = ecs.Add(w, e, component.AudioComponent.Kind(), audioComp)
		}
	}
}

func (g *Game) session() *component.Session {
	session, _ := ecs.Get(g.world, g.sessionEnt, component.SessionComponent.Kind())
	return session
}

func (g *Game) Update() error {
	dt := 1.0 / float64(ebiten.TPS())

	g.inputSystem.Update(g.world, dt)
	g.ui.apply(g.world, g.sessionEnt)

	session := g.session()
	if session == nil {
		return nil
	}

	input, _ := ecs.Get(g.world, g.sessionEnt, component.InputComponent.Kind())
	if input != nil && input.TogglePause {
		switch session.Phase {
		case component.PhasePlaying, component.PhaseBossPending, component.PhaseBossFight:
			session.Paused = !session.Paused
		}
	}

	if !session.Paused {
		g.scheduler.Update(g.world, dt)
	}

	g.audioSystem.Update(g.world, dt)
	g.musicSystem.Update(g.world, dt)

	g.ui.update(session)
	g.drainWatcher()

	return nil
}

// drainWatcher reapplies enemy tuning when a prefab file changes on disk.
func (g *Game) drainWatcher() {
	if g.watcher == nil {
		return
	}
	for {
		select {
		case name, ok := <-g.watcher.Events:
			if !ok {
				g.watcher = nil
				return
			}
			fmt.Printf("prefabs: reload %s\n", name)
			if enemiesSpec, err := prefabs.LoadEnemiesSpec(); err == nil {
				g.spawnSystem.SetDefs(enemyDefs(enemiesSpec))
			}
		case err, ok := <-g.watcher.Errors:
			if !ok {
				g.watcher = nil
				return
			}
			fmt.Printf("prefabs: watch: %v\n", err)
		default:
			return
		}
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return common.BaseWidth, common.BaseHeight
}

// enemyDefs converts the enemies prefab into the spawn system's tuning
// table.
func enemyDefs(spec *prefabs.EnemiesSpec) system.EnemyDefs {
	toDef := func(e prefabs.EnemySpec) system.EnemyDef {
		return system.EnemyDef{
			Health:        e.Health,
			W:             e.Width,
			H:             e.Height,
			Descent:       e.Descent,
			SteerRate:     e.SteerRate,
			Amplitude:     e.Amplitude,
			Frequency:     e.Frequency,
			StopDistance:  e.StopDistance,
			FallbackStopY: e.FallbackStopY,
			FireCooldown:  e.FireCooldown,
			BulletSpeed:   e.BulletSpeed,
		}
	}
	return system.EnemyDefs{
		component.KindBasicEnemy:   toDef(spec.Basic),
		component.KindZigZagEnemy:  toDef(spec.ZigZag),
		component.KindFastEnemy:    toDef(spec.Fast),
		component.KindShooterEnemy: toDef(spec.Shooter),
	}
}
