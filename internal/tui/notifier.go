package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/akyairhashvil/focustime/internal/timer"
)

// EventMsg wraps a state-machine event for the bubbletea update loop.
type EventMsg struct {
	Event timer.Event
}

// Notifier is the listener that forwards timer events into the running
// program. Events fired before the program starts are dropped; the model
// renders from a fresh manager snapshot on every tick anyway.
type Notifier struct {
	program *tea.Program
}

func NewNotifier() *Notifier {
	return &Notifier{}
}

func (n *Notifier) SetProgram(p *tea.Program) {
	n.program = p
}

func (n *Notifier) OnEvent(e timer.Event) {
	if n.program == nil {
		return
	}
	n.program.Send(EventMsg{Event: e})
}
