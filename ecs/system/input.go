package system

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/milk9111/corsair/ecs"
	"github.com/milk9111/corsair/ecs/component"
)

// InputSystem samples the keyboard and mouse into the session's Input
// component once per frame. It is the only system that talks to the input
// devices.
type InputSystem struct{}

func NewInputSystem() *InputSystem {
	return &InputSystem{}
}

func (s *InputSystem) Update(w *ecs.World, dt float64) {
	if w == nil {
		return
	}
	sessionEnt, ok := ecs.First(w, component.SessionComponent.Kind())
	if !ok {
		return
	}
	input, ok := ecs.Get(w, sessionEnt, component.InputComponent.Kind())
	if !ok {
		input = &component.Input{}
		_ = ecs.Add(w, sessionEnt, component.InputComponent.Kind(), input)
	}

	input.MoveX = 0
	input.MoveY = 0
	if ebiten.IsKeyPressed(ebiten.KeyArrowLeft) || ebiten.IsKeyPressed(ebiten.KeyA) {
		input.MoveX--
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowRight) || ebiten.IsKeyPressed(ebiten.KeyD) {
		input.MoveX++
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowUp) || ebiten.IsKeyPressed(ebiten.KeyW) {
		input.MoveY--
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowDown) || ebiten.IsKeyPressed(ebiten.KeyS) {
		input.MoveY++
	}

	input.Shoot = ebiten.IsKeyPressed(ebiten.KeySpace)
	input.HasAim = false
	if ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		input.Shoot = true
		mx, my := ebiten.CursorPosition()
		input.AimX = float64(mx)
		input.AimY = float64(my)
		input.HasAim = true
	}

	input.TogglePause = inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyP)
	input.Confirm = inpututil.IsKeyJustPressed(ebiten.KeyEnter)
	input.Return = inpututil.IsKeyJustPressed(ebiten.KeyEnter)
}
