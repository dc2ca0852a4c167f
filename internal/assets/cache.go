// Package assets provides the resource cache for the game's drawables.
// Sprites come from a YAML sprite sheet embedded in the binary; Load marks
// entries as available and OnReady callbacks fire once everything requested
// has been loaded.
package assets

import (
	_ "embed"
	"errors"
	"fmt"
	"unicode/utf8"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/crossing/internal/core"
)

//go:embed sprites.yaml
var defaultSheetYAML []byte

// ErrUnknownAsset is returned when Load is asked for an id the sheet lacks.
var ErrUnknownAsset = errors.New("assets: unknown asset")

// Sprite is a drawable resource.
//
// A sprite with Art is drawn glyph by glyph starting at the draw point plus
// its offset. A sprite without Art is a tile: it fills whatever rectangle it
// is drawn into with Fill.
type Sprite struct {
	ID      string
	Width   float64 // Natural size in board units
	Height  float64
	OffsetX float64
	OffsetY float64
	Fill    rune
	Color   core.Color
	Art     []string
}

// IsTile reports whether the sprite fills its rectangle instead of drawing art.
func (s *Sprite) IsTile() bool {
	return len(s.Art) == 0
}

// sheetEntry is the YAML form of a Sprite.
type sheetEntry struct {
	ID      string   `yaml:"id"`
	Width   float64  `yaml:"width"`
	Height  float64  `yaml:"height"`
	OffsetX float64  `yaml:"offset_x"`
	OffsetY float64  `yaml:"offset_y"`
	Fill    string   `yaml:"fill"`
	Color   string   `yaml:"color"`
	Art     []string `yaml:"art"`
}

type sheetFile struct {
	Sprites []sheetEntry `yaml:"sprites"`
}

// Cache holds the sprite sheet and the subset of it that has been loaded.
// It is not safe for concurrent use; each game session owns one.
type Cache struct {
	sheet     map[string]*Sprite
	loaded    map[string]*Sprite
	pending   int
	callbacks []func()
}

// NewCache creates a cache backed by the embedded sprite sheet.
func NewCache() (*Cache, error) {
	return NewCacheFromYAML(defaultSheetYAML)
}

// NewCacheFromYAML creates a cache backed by the given sprite sheet.
func NewCacheFromYAML(data []byte) (*Cache, error) {
	var file sheetFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("assets: cannot parse sprite sheet: %w", err)
	}

	sheet := make(map[string]*Sprite, len(file.Sprites))
	for _, e := range file.Sprites {
		sprite, err := e.sprite()
		if err != nil {
			return nil, err
		}
		if _, dup := sheet[sprite.ID]; dup {
			return nil, fmt.Errorf("assets: duplicate sprite %q", sprite.ID)
		}
		sheet[sprite.ID] = sprite
	}

	return &Cache{
		sheet:  sheet,
		loaded: make(map[string]*Sprite),
	}, nil
}

func (e sheetEntry) sprite() (*Sprite, error) {
	if e.ID == "" {
		return nil, errors.New("assets: sprite without id")
	}

	s := &Sprite{
		ID:      e.ID,
		Width:   e.Width,
		Height:  e.Height,
		OffsetX: e.OffsetX,
		OffsetY: e.OffsetY,
		Fill:    ' ',
		Art:     e.Art,
	}

	if e.Fill != "" {
		r, _ := utf8.DecodeRuneInString(e.Fill)
		s.Fill = r
	}
	if e.Color != "" {
		c, ok := core.ParseColor(e.Color)
		if !ok {
			return nil, fmt.Errorf("assets: sprite %q has unknown color %q", e.ID, e.Color)
		}
		s.Color = c
	}
	return s, nil
}

// Load makes the given sprites available through Get. Ready callbacks run
// once every requested id is loaded. Unknown ids are reported and skipped.
func (c *Cache) Load(ids ...string) error {
	var errs []error
	c.pending += len(ids)

	for _, id := range ids {
		c.pending--
		sprite, ok := c.sheet[id]
		if !ok {
			errs = append(errs, fmt.Errorf("%w: %q", ErrUnknownAsset, id))
			continue
		}
		c.loaded[id] = sprite
	}

	if c.pending == 0 {
		c.fireReady()
	}
	return errors.Join(errs...)
}

// OnReady registers a callback for when loading completes. If the cache is
// already ready the callback runs immediately.
func (c *Cache) OnReady(fn func()) {
	if c.IsReady() {
		fn()
		return
	}
	c.callbacks = append(c.callbacks, fn)
}

// IsReady reports whether at least one sprite is loaded and nothing is pending.
func (c *Cache) IsReady() bool {
	return c.pending == 0 && len(c.loaded) > 0
}

// Get returns a loaded sprite, or nil if it has not been loaded.
func (c *Cache) Get(id string) *Sprite {
	return c.loaded[id]
}

// IDs returns every sprite id in the sheet.
func (c *Cache) IDs() []string {
	ids := make([]string, 0, len(c.sheet))
	for id := range c.sheet {
		ids = append(ids, id)
	}
	return ids
}

func (c *Cache) fireReady() {
	if len(c.loaded) == 0 {
		return
	}
	callbacks := c.callbacks
	c.callbacks = nil
	for _, fn := range callbacks {
		fn()
	}
}
