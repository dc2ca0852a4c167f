// Package tui provides the Bubble Tea integration for the crossing game.
// It handles the terminal UI loop, input mapping, drawing and score display.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// countdownInterval is the period of the restart countdown.
const countdownInterval = time.Second

// FrameMsg asks the model to run one animation frame. Loop identifies the
// frame chain that scheduled it; frames from a cancelled chain are dropped.
type FrameMsg struct {
	Loop int
	At   time.Time
}

// IntervalMsg advances the restart countdown.
type IntervalMsg time.Time

// frameCmd schedules the next frame of the given loop at the specified rate.
func frameCmd(loop, tickRate int) tea.Cmd {
	if tickRate <= 0 {
		tickRate = 60
	}
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return FrameMsg{Loop: loop, At: t}
	})
}

// intervalCmd schedules the next countdown step.
func intervalCmd() tea.Cmd {
	return tea.Tick(countdownInterval, func(t time.Time) tea.Msg {
		return IntervalMsg(t)
	})
}
