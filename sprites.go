package main

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/corsair/assets"
	"github.com/milk9111/corsair/ecs/component"
	"github.com/milk9111/corsair/prefabs"
)

// kindColors are the placeholder tints used when an image asset is missing.
var kindColors = map[component.Kind]color.NRGBA{
	component.KindPlayerShip:   {R: 0x4d, G: 0xd2, B: 0xff, A: 0xff},
	component.KindBasicEnemy:   {R: 0xd9, G: 0x4f, B: 0x4f, A: 0xff},
	component.KindZigZagEnemy:  {R: 0xe8, G: 0x9b, B: 0x3c, A: 0xff},
	component.KindFastEnemy:    {R: 0xc0, G: 0x5c, B: 0xd9, A: 0xff},
	component.KindShooterEnemy: {R: 0x6b, G: 0xc9, B: 0x5a, A: 0xff},
	component.KindBossEnemy:    {R: 0x8a, G: 0x2b, B: 0x2b, A: 0xff},
	component.KindPlayerBullet: {R: 0xff, G: 0xff, B: 0xa0, A: 0xff},
	component.KindEnemyBullet:  {R: 0xff, G: 0x7a, B: 0x7a, A: 0xff},
	component.KindBossBullet:   {R: 0xff, G: 0x52, B: 0xd0, A: 0xff},
	component.KindPickup:       {R: 0xff, G: 0xcc, B: 0x33, A: 0xff},
}

// buildSprites loads one image per kind, falling back to tinted placeholder
// boxes sized from the prefabs.
func buildSprites(playerSpec *prefabs.PlayerSpec, enemiesSpec *prefabs.EnemiesSpec, bossSpec *prefabs.BossSpec) map[component.Kind]*ebiten.Image {
	sizes := map[component.Kind][2]int{
		component.KindPlayerShip:   {int(playerSpec.Width), int(playerSpec.Height)},
		component.KindBasicEnemy:   {int(enemiesSpec.Basic.Width), int(enemiesSpec.Basic.Height)},
		component.KindZigZagEnemy:  {int(enemiesSpec.ZigZag.Width), int(enemiesSpec.ZigZag.Height)},
		component.KindFastEnemy:    {int(enemiesSpec.Fast.Width), int(enemiesSpec.Fast.Height)},
		component.KindShooterEnemy: {int(enemiesSpec.Shooter.Width), int(enemiesSpec.Shooter.Height)},
		component.KindBossEnemy:    {int(bossSpec.Width), int(bossSpec.Height)},
		component.KindPlayerBullet: {4, 14},
		component.KindEnemyBullet:  {6, 12},
		component.KindBossBullet:   {8, 8},
		component.KindPickup:       {24, 24},
	}

	sprites := make(map[component.Kind]*ebiten.Image, len(sizes))
	for kind, size := range sizes {
		sprites[kind] = assets.ImageOrPlaceholder("images/"+kind.String()+".png", size[0], size[1], kindColors[kind])
	}
	return sprites
}
