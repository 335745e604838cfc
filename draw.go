package main

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/milk9111/corsair/common"
	"github.com/milk9111/corsair/ecs"
	"github.com/milk9111/corsair/ecs/component"
)

var backgroundColor = color.NRGBA{R: 0x0a, G: 0x0a, B: 0x16, A: 0xff}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(backgroundColor)

	ecs.ForEach2(g.world, component.ShipComponent.Kind(), component.TransformComponent.Kind(),
		func(e ecs.Entity, ship *component.Ship, t *component.Transform) {
			img := g.sprites[ship.Kind]
			if img == nil {
				return
			}
			iw, ih := img.Bounds().Dx(), img.Bounds().Dy()
			op := &ebiten.DrawImageOptions{}
			op.GeoM.Scale(ship.W/float64(iw), ship.H/float64(ih))
			op.GeoM.Translate(t.X-ship.W/2, t.Y-ship.H/2)
			screen.DrawImage(img, op)

			// Health bars on multi-hit ships, red at the brink, green when full.
			if hp, ok := ecs.Get(g.world, e, component.HealthComponent.Kind()); ok && hp.Max > 1 {
				barW := float32(ship.W)
				x := float32(t.X - ship.W/2)
				y := float32(t.Y - ship.H/2 - 6)
				ratio := hp.Ratio()
				fill := color.NRGBA{
					R: uint8(common.Lerp(0xe0, 0x30, ratio)),
					G: uint8(common.Lerp(0x30, 0xc0, ratio)),
					B: 0x30,
					A: 0xff,
				}
				vector.DrawFilledRect(screen, x, y, barW, 3, color.NRGBA{R: 0x40, G: 0x40, B: 0x40, A: 0xff}, false)
				vector.DrawFilledRect(screen, x, y, barW*float32(ratio), 3, fill, false)
			}
		})

	g.drawFlashes(screen)
	g.drawHUD(screen)
	g.ui.draw(screen)
}

// drawFlashes renders kill flashes as squares that shrink and dim as they
// age.
func (g *Game) drawFlashes(screen *ebiten.Image) {
	ecs.ForEach2(g.world, component.FlashComponent.Kind(), component.TransformComponent.Kind(),
		func(_ ecs.Entity, f *component.Flash, t *component.Transform) {
			if f.Duration <= 0 {
				return
			}
			frac := common.Clamp(1-f.Age/f.Duration, 0, 1)
			if frac == 0 {
				return
			}
			size := float32(f.Size * frac)
			c := color.NRGBA{R: 0xff, G: 0xc8, B: 0x50, A: uint8(common.Lerp(0, 0xff, frac))}
			vector.DrawFilledRect(screen, float32(t.X)-size/2, float32(t.Y)-size/2, size, size, c, false)
		})
}

func (g *Game) drawHUD(screen *ebiten.Image) {
	session := g.session()
	if session == nil {
		return
	}

	sp, _ := ecs.Get(g.world, g.sessionEnt, component.SpawnerComponent.Kind())
	interval := 0.0
	if sp != nil {
		interval = sp.Interval
	}

	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("SCORE %d", session.Score), 8, 8)
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("LIVES %d", session.Lives), 8, 24)

	switch session.Phase {
	case component.PhasePlaying, component.PhaseBossPending, component.PhaseBossFight:
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("TIME %.1f", session.Elapsed), 8, 40)
		if g.debug {
			ebitenutil.DebugPrintAt(screen,
				fmt.Sprintf("FPS %.1f  SPAWN %.2fs", ebiten.ActualFPS(), interval), 8, 56)
		}
	}

	if session.Phase == component.PhaseBossPending {
		ebitenutil.DebugPrintAt(screen, "CLEAR THE FIELD - BOSS INCOMING", 130, 72)
	}
}
