package game

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

// Classic Windows-style palette
var (
	colorBackground   = color.RGBA{192, 192, 192, 255}
	colorCellHidden   = color.RGBA{192, 192, 192, 255}
	colorCellRevealed = color.RGBA{214, 214, 214, 255}
	colorBevelLight   = color.RGBA{255, 255, 255, 255}
	colorBevelDark    = color.RGBA{128, 128, 128, 255}
	colorGrid         = color.RGBA{155, 155, 155, 255}
	colorMineLosing   = color.RGBA{215, 40, 40, 255}
	colorHint         = color.RGBA{32, 128, 255, 255}
	colorStatusText   = color.RGBA{12, 12, 12, 255}
	colorOverlay      = color.RGBA{0, 0, 0, 120}
	colorOverlayText  = color.RGBA{255, 255, 255, 255}
)

// Per-adjacency-count digit colors, indexed 1..8
var numberColors = []color.Color{
	color.RGBA{},
	color.RGBA{25, 25, 220, 255},
	color.RGBA{0, 130, 0, 255},
	color.RGBA{210, 20, 20, 255},
	color.RGBA{0, 0, 135, 255},
	color.RGBA{130, 0, 0, 255},
	color.RGBA{0, 128, 128, 255},
	color.RGBA{0, 0, 0, 255},
	color.RGBA{110, 110, 110, 255},
}

// Renderer draws the board and status bar from read accessors only
type Renderer struct {
	config Config
	face   font.Face
}

// NewRenderer creates a new renderer
func NewRenderer(config Config) *Renderer {
	return &Renderer{
		config: config,
		face:   basicfont.Face7x13,
	}
}

// Render draws the full frame: status bar, grid, and any overlay message
func (r *Renderer) Render(screen *ebiten.Image, b *Board, hint *Move, message string) {
	screen.Fill(colorBackground)
	r.drawStatusBar(screen, b)

	for row := 0; row < b.Rows; row++ {
		for col := 0; col < b.Cols; col++ {
			r.drawCell(screen, b, row, col)
		}
	}

	if hint != nil {
		r.drawHint(screen, hint)
	}
	if message != "" {
		r.drawOverlay(screen, message)
	}
}

// drawStatusBar draws the remaining-mine counter and state line
func (r *Renderer) drawStatusBar(screen *ebiten.Image, b *Board) {
	status := fmt.Sprintf("Mines: %d", b.RemainingMines())
	switch b.State {
	case StateWon:
		status += "  |  You won!"
	case StateLost:
		status += "  |  Game over"
	}
	text.Draw(screen, status, r.face, 8, r.config.StatusBarHeight-10, colorStatusText)
}

// drawCell draws a single board cell
func (r *Renderer) drawCell(screen *ebiten.Image, b *Board, row, col int) {
	size := r.config.CellSize
	x := float32(col * size)
	y := float32(row*size + r.config.StatusBarHeight)
	fs := float32(size)
	cell := b.Cells[row][col]

	if !cell.Revealed {
		// Raised button look: light top/left bevel, dark bottom/right
		vector.DrawFilledRect(screen, x, y, fs, fs, colorCellHidden, false)
		vector.StrokeLine(screen, x, y, x+fs, y, 2, colorBevelLight, false)
		vector.StrokeLine(screen, x, y, x, y+fs, 2, colorBevelLight, false)
		vector.StrokeLine(screen, x, y+fs-1, x+fs, y+fs-1, 2, colorBevelDark, false)
		vector.StrokeLine(screen, x+fs-1, y, x+fs-1, y+fs, 2, colorBevelDark, false)

		if cell.Flagged {
			r.drawSprite(screen, flagSprite, x, y)
		} else if cell.Mine && GetDebugState().ShowMines {
			r.drawSprite(screen, mineSprite, x, y)
		}
		return
	}

	vector.DrawFilledRect(screen, x, y, fs, fs, colorCellRevealed, false)
	vector.StrokeRect(screen, x, y, fs, fs, 1, colorGrid, false)

	switch {
	case cell.Mine:
		vector.DrawFilledRect(screen, x+1, y+1, fs-2, fs-2, colorMineLosing, false)
		r.drawSprite(screen, mineSprite, x, y)
	case cell.Adjacent > 0:
		digit := fmt.Sprintf("%d", cell.Adjacent)
		tx := int(x) + size/2 - 3
		ty := int(y) + size/2 + 5
		text.Draw(screen, digit, r.face, tx, ty, numberColors[cell.Adjacent])
	}
}

// drawSprite draws a cell sprite centered in the cell at (x, y)
func (r *Renderer) drawSprite(screen *ebiten.Image, sprite *ebiten.Image, x, y float32) {
	if sprite == nil {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(x)+1, float64(y)+1)
	screen.DrawImage(sprite, op)
}

// drawHint outlines the cell the solver suggests
func (r *Renderer) drawHint(screen *ebiten.Image, hint *Move) {
	size := r.config.CellSize
	x := float32(hint.Col * size)
	y := float32(hint.Row*size + r.config.StatusBarHeight)
	vector.StrokeRect(screen, x+1, y+1, float32(size)-2, float32(size)-2, 2, colorHint, false)
}

// drawOverlay dims the board and centers a message on it
func (r *Renderer) drawOverlay(screen *ebiten.Image, message string) {
	w := screen.Bounds().Dx()
	h := screen.Bounds().Dy()
	vector.DrawFilledRect(screen, 0, 0, float32(w), float32(h), colorOverlay, false)

	bounds, _ := font.BoundString(r.face, message)
	tw := (bounds.Max.X - bounds.Min.X).Ceil()
	text.Draw(screen, message, r.face, (w-tw)/2, h/2, colorOverlayText)
}
