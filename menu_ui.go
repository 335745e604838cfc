package main

import (
	"image/color"

	"github.com/ebitenui/ebitenui"
	imageui "github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
	ebtext "github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/basicfont"

	"github.com/milk9111/corsair/common"
	"github.com/milk9111/corsair/ecs"
	"github.com/milk9111/corsair/ecs/component"
	"github.com/milk9111/corsair/prefabs"
)

// gameUI owns the menu, pause, victory, and game-over overlays. Button
// clicks are collected here and merged into the session's Input component at
// the start of the frame.
type gameUI struct {
	menu     *ebitenui.UI
	pause    *ebitenui.UI
	victory  *ebitenui.UI
	gameOver *ebitenui.UI

	active *ebitenui.UI

	startClicked  bool
	resumeClicked bool
	returnClicked bool
}

func newGameUI(g *Game, theme *prefabs.ThemeSpec) *gameUI {
	ui := &gameUI{}

	panelColor := themeColor(theme.Panel, color.NRGBA{A: 200})
	buttonColor := themeColor(theme.Button, color.NRGBA{R: 0x33, G: 0x33, B: 0x33, A: 0xff})
	textColor := themeColor(theme.Text, color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff})

	ui.menu = buildPanelUI(panelColor, buttonColor, textColor, "CORSAIR",
		uiButton{"Start", func() { ui.startClicked = true }})
	ui.pause = buildPanelUI(panelColor, buttonColor, textColor, "Paused",
		uiButton{"Resume", func() { ui.resumeClicked = true }})
	ui.victory = buildPanelUI(panelColor, buttonColor, textColor, "Victory!",
		uiButton{"Menu", func() { ui.returnClicked = true }})
	ui.gameOver = buildPanelUI(panelColor, buttonColor, textColor, "Game Over",
		uiButton{"Menu", func() { ui.returnClicked = true }})

	return ui
}

// apply merges pending button clicks into the frame's input.
func (u *gameUI) apply(w *ecs.World, sessionEnt ecs.Entity) {
	input, ok := ecs.Get(w, sessionEnt, component.InputComponent.Kind())
	if !ok {
		return
	}
	if u.startClicked {
		input.Confirm = true
		u.startClicked = false
	}
	if u.returnClicked {
		input.Return = true
		u.returnClicked = false
	}
	if u.resumeClicked {
		if session, ok := ecs.Get(w, sessionEnt, component.SessionComponent.Kind()); ok {
			session.Paused = false
		}
		u.resumeClicked = false
	}
}

// update picks the overlay for the current phase and ticks it.
func (u *gameUI) update(session *component.Session) {
	switch {
	case session.Paused:
		u.active = u.pause
	case session.Phase == component.PhaseMenu:
		u.active = u.menu
	case session.Phase == component.PhaseVictory:
		u.active = u.victory
	case session.Phase == component.PhaseGameOver:
		u.active = u.gameOver
	default:
		u.active = nil
	}
	if u.active != nil {
		u.active.Update()
	}
}

func (u *gameUI) draw(screen *ebiten.Image) {
	if u.active != nil {
		u.active.Draw(screen)
	}
}

type uiButton struct {
	label   string
	clicked func()
}

// buildPanelUI assembles a centered panel with a title and buttons, using
// colored nine-slices so no theme fonts need to load.
func buildPanelUI(panelColor, buttonColor, textColor color.Color, title string, buttons ...uiButton) *ebitenui.UI {
	panelImg := imageui.NewNineSliceColor(panelColor)
	btnImg := imageui.NewNineSliceColor(buttonColor)

	goFace := ebtext.NewGoXFace(basicfont.Face7x13)
	var face ebtext.Face = goFace

	btnTextColor := &widget.ButtonTextColor{Idle: textColor}

	titleText := widget.NewText(
		widget.TextOpts.Text(title, &face, textColor),
		widget.TextOpts.WidgetOpts(widget.WidgetOpts.LayoutData(widget.RowLayoutData{Position: widget.RowLayoutPositionCenter})),
	)

	panel := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(panelImg),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Spacing(10),
			widget.RowLayoutOpts.Padding(&widget.Insets{Top: 20, Bottom: 20, Left: 30, Right: 30}),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(common.BaseWidth/2, common.BaseHeight/4),
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionCenter,
				VerticalPosition:   widget.AnchorLayoutPositionCenter,
			}),
		),
	)
	panel.AddChild(titleText)

	for _, b := range buttons {
		clicked := b.clicked
		btn := widget.NewButton(
			widget.ButtonOpts.Image(&widget.ButtonImage{Idle: btnImg, Pressed: btnImg}),
			widget.ButtonOpts.Text(b.label, &face, btnTextColor),
			widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.LayoutData(widget.RowLayoutData{Position: widget.RowLayoutPositionCenter})),
			widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
				if clicked != nil {
					clicked()
				}
			}),
		)
		panel.AddChild(btn)
	}

	root := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)
	root.AddChild(panel)

	return &ebitenui.UI{Container: root}
}

func themeColor(c *prefabs.YAMLColor, def color.Color) color.Color {
	if c == nil || c.Color == nil {
		return def
	}
	return c.Color
}
