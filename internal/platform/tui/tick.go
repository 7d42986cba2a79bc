// Package tui provides the Bubble Tea integration for dot-rush. It owns
// the terminal loop, input mapping, frame timing, and score screens.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger one simulation tick.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command emitting tick messages at the
// given rate.
func tickCmd(tickRate int) tea.Cmd {
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
