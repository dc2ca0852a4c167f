package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/crossing/internal/games/crossing"
)

var (
	hudLabelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	hudValueStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	hudTagStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229")).Background(lipgloss.Color("57")).Padding(0, 1)
	hudSeparator  = hudLabelStyle.Render(" │ ")
)

// gemStyles colors the gem counters like the gems on the board.
var gemStyles = map[crossing.Counter]lipgloss.Style{
	crossing.CounterBlueGems:   lipgloss.NewStyle().Foreground(lipgloss.Color("12")),
	crossing.CounterGreenGems:  lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
	crossing.CounterOrangeGems: lipgloss.NewStyle().Foreground(lipgloss.Color("208")),
}

// HUD is the score readout shown under the board.
type HUD struct {
	values map[crossing.Counter]int
}

var _ crossing.Readout = (*HUD)(nil)

// NewHUD creates a HUD with every counter at zero.
func NewHUD() *HUD {
	h := &HUD{values: make(map[crossing.Counter]int, len(crossing.Counters))}
	for _, c := range crossing.Counters {
		h.values[c] = 0
	}
	return h
}

// Set records the new value of a counter.
func (h *HUD) Set(c crossing.Counter, value int) {
	h.values[c] = value
}

// Value returns the last value set for a counter.
func (h *HUD) Value(c crossing.Counter) int {
	return h.values[c]
}

// View renders the counters on one line, followed by an optional tag
// such as PAUSED.
func (h *HUD) View(tag string) string {
	var games, gems []string
	for _, c := range crossing.Counters {
		if style, ok := gemStyles[c]; ok {
			gems = append(gems, style.Render("◆")+" "+h.item(c))
			continue
		}
		games = append(games, h.item(c))
	}

	line := strings.Join(games, "  ") + hudSeparator + strings.Join(gems, "  ")
	if tag != "" {
		line += "  " + hudTagStyle.Render(tag)
	}
	return line
}

func (h *HUD) item(c crossing.Counter) string {
	return hudLabelStyle.Render(c.String()+":") + " " + hudValueStyle.Render(fmt.Sprintf("%d", h.values[c]))
}
