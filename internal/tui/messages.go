package tui

import (
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/LinosCo/trainbot/internal/training"
)

// turnReplyMsg carries the result of an async call into the training service.
type turnReplyMsg struct {
	reply *training.TurnReply
	err   error
}

type spinnerTickMsg struct{}

func spinnerTick() tea.Cmd {
	return tea.Tick(250*time.Millisecond, func(time.Time) tea.Msg {
		return spinnerTickMsg{}
	})
}
