package crossing

import (
	"strconv"

	"github.com/vovakirdan/crossing/internal/assets"
	"github.com/vovakirdan/crossing/internal/core"
)

// TextStyle controls how Surface.DrawText paints a string.
type TextStyle struct {
	Fill   core.Color
	Stroke core.Color // ColorDefault means no outline
}

// Surface is the drawing target. Coordinates are board units.
type Surface interface {
	// Clear erases the whole surface.
	Clear()
	// DrawImage draws a sprite with its top-left corner at (x, y). A width
	// or height <= 0 means the sprite's natural size.
	DrawImage(sprite *assets.Sprite, x, y, w, h float64)
	// DrawText draws text horizontally centered on x, on the line at y.
	DrawText(text string, x, y float64, style TextStyle)
	// SaveFrame remembers the current picture; RestoreFrame paints it back.
	SaveFrame()
	RestoreFrame()
}

// Resources hands out loaded sprites by id.
type Resources interface {
	Get(id string) *assets.Sprite
}

// Message texts and styles.
const (
	wonText  = "YOU WON!!"
	lostText = "LOOSER!!"
)

var (
	wonStyle     = TextStyle{Fill: core.ColorGreen, Stroke: core.ColorBlack}
	lostStyle    = TextStyle{Fill: core.ColorRed, Stroke: core.ColorBlack}
	counterStyle = TextStyle{Fill: core.ColorOrange, Stroke: core.ColorBlack}
)

// counterDrop is how far below the message the countdown number sits.
const counterDrop = 80

// render paints the board back to front: tiles, gems, enemies, player.
func (g *Game) render() {
	g.surface.Clear()
	g.renderBoard()
	g.renderEntities()
}

func (g *Game) renderBoard() {
	bc := g.session.cfg.Board
	for row, id := range bc.Rows {
		sprite := g.res.Get(id)
		if sprite == nil {
			continue
		}
		for col := 0; col < bc.Columns; col++ {
			g.surface.DrawImage(sprite, float64(col)*bc.TileWidth, float64(row)*bc.TileHeight, bc.TileWidth, bc.TileHeight)
		}
	}
}

func (g *Game) renderEntities() {
	scale := g.session.cfg.Gems.Scale
	for _, gem := range g.session.gems {
		if !gem.Visible {
			continue
		}
		sprite := g.res.Get(gem.Sprite)
		if sprite == nil {
			continue
		}
		// Gems are drawn shrunk and centered on their position.
		w := sprite.Width * scale
		h := sprite.Height * scale
		g.surface.DrawImage(sprite, gem.X-w/2, gem.Y-h/2, w, h)
	}

	ec := g.session.cfg.Enemies
	for _, e := range g.session.enemies {
		if sprite := g.res.Get(e.Sprite); sprite != nil {
			g.surface.DrawImage(sprite, e.X, e.Y, ec.DrawWidth, ec.DrawHeight)
		}
	}

	p := g.session.player
	if sprite := g.res.Get(p.Sprite); sprite != nil {
		g.surface.DrawImage(sprite, p.X, p.Y, p.cfg.DrawWidth, p.cfg.DrawHeight)
	}
}

// center returns the middle of the board.
func (g *Game) center() (float64, float64) {
	bc := g.session.cfg.Board
	return bc.Width / 2, bc.Height / 2
}

func (g *Game) drawMessage(text string, style TextStyle) {
	x, y := g.center()
	g.surface.DrawText(text, x, y, style)
}

func (g *Game) drawCounter(n int) {
	x, y := g.center()
	g.surface.DrawText(strconv.Itoa(n), x, y+counterDrop, counterStyle)
}
