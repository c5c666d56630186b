// Package tui provides the Bubble Tea integration for tetris.
// It handles the terminal frame loop, input mapping and rendering, and
// hosts the same loop over SSH.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// FrameMsg is sent once per frame with the frame timestamp.
type FrameMsg time.Time

// frameCmd returns a Bubble Tea command that sends the next frame message
// at the specified rate.
func frameCmd(fps int) tea.Cmd {
	if fps <= 0 {
		fps = 60
	}
	interval := time.Second / time.Duration(fps)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return FrameMsg(t)
	})
}
