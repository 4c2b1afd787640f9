package game

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// PlayerInput translates mouse and keyboard events into board actions
type PlayerInput struct {
	config Config
}

// NewPlayerInput creates a new player input provider
func NewPlayerInput(config Config) *PlayerInput {
	return &PlayerInput{config: config}
}

// cellAtCursor maps the current cursor position to board coordinates
func (p *PlayerInput) cellAtCursor(b *Board) (row, col int, ok bool) {
	mx, my := ebiten.CursorPosition()
	my -= p.config.StatusBarHeight
	if mx < 0 || my < 0 {
		return 0, 0, false
	}
	row = my / p.config.CellSize
	col = mx / p.config.CellSize
	if !b.In(row, col) {
		return 0, 0, false
	}
	return row, col, true
}

// RevealClick returns the cell under a just-pressed left click
func (p *PlayerInput) RevealClick(b *Board) (row, col int, ok bool) {
	if !inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return 0, 0, false
	}
	return p.cellAtCursor(b)
}

// FlagClick returns the cell under a just-pressed right click
func (p *PlayerInput) FlagClick(b *Board) (row, col int, ok bool) {
	if !inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight) {
		return 0, 0, false
	}
	return p.cellAtCursor(b)
}

// AnyClick reports a just-pressed click of either button, used to dismiss
// the win/loss overlay
func (p *PlayerInput) AnyClick() bool {
	return inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) ||
		inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight)
}

// NewGamePressed reports whether the new-game key was just pressed
func (p *PlayerInput) NewGamePressed() bool {
	return inpututil.IsKeyJustPressed(NewGameKey)
}

// SolvePressed reports whether the solve key was just pressed
func (p *PlayerInput) SolvePressed() bool {
	return inpututil.IsKeyJustPressed(SolveKey)
}

// HintPressed reports whether the hint key was just pressed
func (p *PlayerInput) HintPressed() bool {
	return inpututil.IsKeyJustPressed(HintKey)
}

// QuitPressed reports whether the quit key was just pressed
func (p *PlayerInput) QuitPressed() bool {
	return inpututil.IsKeyJustPressed(QuitKey)
}

// SizeSelected returns a board size if one of the size keys was just pressed
func (p *PlayerInput) SizeSelected() (BoardSize, bool) {
	switch {
	case inpututil.IsKeyJustPressed(SizeSmallKey):
		return SizeSmall, true
	case inpututil.IsKeyJustPressed(SizeMediumKey):
		return SizeMedium, true
	case inpututil.IsKeyJustPressed(SizeLargeKey):
		return SizeLarge, true
	}
	return 0, false
}

// DebugTogglePressed reports whether the mine-overlay debug key was just
// pressed
func (p *PlayerInput) DebugTogglePressed() bool {
	return inpututil.IsKeyJustPressed(ShowMinesKey)
}
