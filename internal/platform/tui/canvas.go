package tui

import (
	"math"
	"unicode/utf8"

	"github.com/vovakirdan/crossing/internal/assets"
	"github.com/vovakirdan/crossing/internal/config"
	"github.com/vovakirdan/crossing/internal/core"
	"github.com/vovakirdan/crossing/internal/games/crossing"
)

// Terminal cells covered by one board tile.
const (
	tileCols = 10
	tileRows = 4
)

// haloRune paints the plate behind outlined text.
const haloRune = '█'

// Canvas is a crossing.Surface backed by a core.Screen. Board units are
// mapped to cells so that one tile covers tileCols x tileRows cells.
type Canvas struct {
	screen *core.Screen
	saved  *core.Screen
	scaleX float64 // Board units per cell column
	scaleY float64 // Board units per cell row
}

var _ crossing.Surface = (*Canvas)(nil)

// NewCanvas creates a canvas sized to hold the whole tiled board.
func NewCanvas(board config.BoardConfig) *Canvas {
	c := &Canvas{
		scaleX: board.TileWidth / tileCols,
		scaleY: board.TileHeight / tileRows,
	}
	c.screen = core.NewScreen(board.Columns*tileCols, len(board.Rows)*tileRows)
	return c
}

// Screen returns the cell buffer the canvas draws into.
func (c *Canvas) Screen() *core.Screen {
	return c.screen
}

// Cell converts a board position to the cell that contains it.
func (c *Canvas) Cell(x, y float64) (int, int) {
	return int(math.Floor(x / c.scaleX)), int(math.Floor(y / c.scaleY))
}

// Clear erases the canvas.
func (c *Canvas) Clear() {
	c.screen.Clear()
}

// DrawImage draws a sprite at a board position. Tiles fill the cells
// covered by the rectangle; art is drawn glyph by glyph from the top-left
// corner, with spaces left transparent.
func (c *Canvas) DrawImage(sprite *assets.Sprite, x, y, w, h float64) {
	if sprite == nil {
		return
	}
	if w <= 0 {
		w = sprite.Width
	}
	if h <= 0 {
		h = sprite.Height
	}

	if sprite.IsTile() {
		x0, y0 := c.Cell(x, y)
		x1, y1 := c.Cell(x+w, y+h)
		c.screen.DrawRect(x0, y0, x1-x0, y1-y0, sprite.Fill, sprite.Color)
		return
	}

	cx, cy := c.Cell(x+sprite.OffsetX, y+sprite.OffsetY)
	for row, line := range sprite.Art {
		col := 0
		for _, r := range line {
			if r != ' ' {
				c.screen.SetCell(cx+col, cy+row, r, sprite.Color)
			}
			col++
		}
	}
}

// DrawText draws text centered on x. A stroke color puts the text on a
// plate one cell wider than the text on every side.
func (c *Canvas) DrawText(text string, x, y float64, style crossing.TextStyle) {
	n := utf8.RuneCountInString(text)
	cx, cy := c.Cell(x, y)
	left := cx - n/2

	if style.Stroke != core.ColorDefault {
		c.screen.DrawRect(left-1, cy-1, n+2, 3, haloRune, style.Stroke)
	}
	c.screen.DrawTextColor(left, cy, text, style.Fill)
}

// SaveFrame remembers the current picture.
func (c *Canvas) SaveFrame() {
	c.saved = c.screen.Clone()
}

// RestoreFrame paints the saved picture back. It does nothing if no frame
// was saved.
func (c *Canvas) RestoreFrame() {
	if c.saved == nil {
		return
	}
	c.screen.CopyFrom(c.saved)
}
