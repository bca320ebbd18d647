package tui

import (
	"fmt"
	"time"
)

// FormatDuration formats a duration for display (e.g., "2h 15m", "45s").
func FormatDuration(d time.Duration) string {
	if d < time.Minute {
		return fmt.Sprintf("%ds", int(d.Seconds()))
	}
	if d < time.Hour {
		return fmt.Sprintf("%dm", int(d.Minutes()))
	}
	hours := int(d.Hours())
	mins := int(d.Minutes()) % 60
	if mins == 0 {
		return fmt.Sprintf("%dh", hours)
	}
	return fmt.Sprintf("%dh %dm", hours, mins)
}

// FormatClock renders a millisecond count as mm:ss, or hh:mm:ss past an
// hour. Negative values clamp to zero.
func FormatClock(millis int64) string {
	total := int(millis / 1000)
	if total < 0 {
		total = 0
	}
	h := total / 3600
	m := (total % 3600) / 60
	s := total % 60
	if h > 0 {
		return fmt.Sprintf("%02d:%02d:%02d", h, m, s)
	}
	return fmt.Sprintf("%02d:%02d", m, s)
}

// FormatTimerStatus returns a human-readable line for the current phase.
func FormatTimerStatus(state, phase string, remaining int64, countdown bool) string {
	switch state {
	case "running":
		if countdown {
			return fmt.Sprintf("%s - %s remaining", phase, FormatClock(remaining))
		}
		return fmt.Sprintf("%s - %s elapsed", phase, FormatClock(remaining))
	case "paused":
		return fmt.Sprintf("%s - paused at %s", phase, FormatClock(remaining))
	case "finished":
		return fmt.Sprintf("%s - finished", phase)
	default:
		return "Ready"
	}
}
