package game

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"halloweenhaunt/internal/entities"
)

// frameInput is one tick's worth of player input. Movement is level-held,
// everything else is edge-triggered.
type frameInput struct {
	dir entities.Input

	// Edge-triggered left/right for puzzle symbol swapping.
	swap entities.Input

	interact     bool // SPACE, edge
	interactHeld bool // SPACE, level

	navUp, navDown bool // edge-triggered, for menu navigation

	escape        bool
	confirm       bool // ENTER
	load          bool // L on the main menu
	restart       bool // R
	settings      bool // O
	fullscreen    bool // F11
	quitRequested bool // Q
}

func readInput() frameInput {
	var in frameInput

	in.dir.Up = ebiten.IsKeyPressed(ebiten.KeyW) || ebiten.IsKeyPressed(ebiten.KeyArrowUp)
	in.dir.Down = ebiten.IsKeyPressed(ebiten.KeyS) || ebiten.IsKeyPressed(ebiten.KeyArrowDown)
	in.dir.Left = ebiten.IsKeyPressed(ebiten.KeyA) || ebiten.IsKeyPressed(ebiten.KeyArrowLeft)
	in.dir.Right = ebiten.IsKeyPressed(ebiten.KeyD) || ebiten.IsKeyPressed(ebiten.KeyArrowRight)

	in.swap.Left = inpututil.IsKeyJustPressed(ebiten.KeyA) || inpututil.IsKeyJustPressed(ebiten.KeyArrowLeft)
	in.swap.Right = inpututil.IsKeyJustPressed(ebiten.KeyD) || inpututil.IsKeyJustPressed(ebiten.KeyArrowRight)

	in.interact = inpututil.IsKeyJustPressed(ebiten.KeySpace)
	in.interactHeld = ebiten.IsKeyPressed(ebiten.KeySpace)

	in.navUp = inpututil.IsKeyJustPressed(ebiten.KeyW) || inpututil.IsKeyJustPressed(ebiten.KeyArrowUp)
	in.navDown = inpututil.IsKeyJustPressed(ebiten.KeyS) || inpututil.IsKeyJustPressed(ebiten.KeyArrowDown)

	in.escape = inpututil.IsKeyJustPressed(ebiten.KeyEscape)
	in.settings = inpututil.IsKeyJustPressed(ebiten.KeyO)
	in.confirm = inpututil.IsKeyJustPressed(ebiten.KeyEnter) || inpututil.IsKeyJustPressed(ebiten.KeyKPEnter)
	in.load = inpututil.IsKeyJustPressed(ebiten.KeyL)
	in.restart = inpututil.IsKeyJustPressed(ebiten.KeyR)
	in.fullscreen = inpututil.IsKeyJustPressed(ebiten.KeyF11)
	in.quitRequested = inpututil.IsKeyJustPressed(ebiten.KeyQ)

	return in
}
