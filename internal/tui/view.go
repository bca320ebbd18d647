package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/x/ansi"

	"github.com/akyairhashvil/focustime/internal/models"
)

func (m MainModel) View() string {
	data := m.mgr.Data()
	rt := data.Runtime
	remaining := m.mgr.Remaining()

	var b strings.Builder

	title := m.theme.Header.Render("focustime")
	b.WriteString(title + "\n\n")

	phaseStyle := m.theme.Focus
	if rt.Type.IsBreak() {
		phaseStyle = m.theme.Break
	}
	if rt.State == models.TimerPaused {
		phaseStyle = m.theme.Paused
	}

	clock := FormatClock(remaining)
	if rt.State == models.TimerReset {
		clock = FormatClock(data.Label.Duration(models.TypeFocus).Milliseconds())
	}
	b.WriteString(phaseStyle.Render(clock) + "\n")

	status := FormatTimerStatus(string(rt.State), phaseName(rt.Type), remaining, data.Label.IsCountdown)
	b.WriteString(m.theme.Highlight.Render(status) + "\n\n")

	if data.Label.IsCountdown && rt.State.IsActive() {
		total := data.Label.Duration(rt.Type).Milliseconds()
		if total > 0 {
			frac := 1 - float64(remaining)/float64(total)
			if frac < 0 {
				frac = 0
			}
			if frac > 1 {
				frac = 1
			}
			b.WriteString(m.prog.ViewAs(frac) + "\n\n")
		}
	}

	if !data.Label.IsCountdown {
		budget := m.mgr.RemainingBreakBudget()
		b.WriteString(m.theme.Dim.Render(fmt.Sprintf("break budget: %s", FormatDuration(budget))) + "\n")
	}

	label := fmt.Sprintf("label: %s", data.Label.Name)
	if data.LongBreakData.Streak > 0 {
		label += fmt.Sprintf("  streak: %d/%d", data.LongBreakData.Streak, data.Label.SessionsBeforeLongBreak)
	}
	b.WriteString(m.theme.Dim.Render(label) + "\n")

	if m.status != "" {
		b.WriteString("\n" + m.theme.Highlight.Render(m.status) + "\n")
	}

	if m.notesActive {
		b.WriteString("\n" + m.theme.Input.Render(m.notes.View()) + "\n")
	} else {
		help := "s start  b break  space pause  + minute  n skip  f finish  r reset  N notes  e export  p report  q quit"
		b.WriteString("\n" + m.theme.Dim.Render(wrapHelp(help, m.width)) + "\n")
	}

	return m.theme.Base.Render(b.String())
}

func phaseName(t models.TimerType) string {
	switch t {
	case models.TypeBreak:
		return "Break"
	case models.TypeLongBreak:
		return "Long break"
	default:
		return "Focus"
	}
}

// wrapHelp wraps the key legend to the terminal width, using display width
// so styled output never overflows.
func wrapHelp(help string, width int) string {
	if width <= 0 || ansi.StringWidth(help) <= width-4 {
		return help
	}
	return ansi.Wrap(help, width-4, "")
}
