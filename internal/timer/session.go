package timer

import (
	"time"

	"github.com/akyairhashvil/focustime/internal/config"
	"github.com/akyairhashvil/focustime/internal/models"
)

// materializeSession converts a completed runtime interval into a durable
// session record. Focus sessions do not count interruption time as focus;
// a fixed wiggle room is added before truncating to whole minutes so a
// near-minute session is not lost to rounding. Intervals under one minute
// yield no record.
func materializeSession(label models.Label, rt models.TimerRuntime, wallNow, monotonicNow int64) (models.Session, bool) {
	total := rt.EndTime - rt.StartTime
	if rt.Type == models.TypeFocus {
		total -= rt.TimeSpentPaused
	}
	total += config.WiggleRoom.Milliseconds()

	minutes := total / time.Minute.Milliseconds()
	if minutes < 1 {
		return models.Session{}, false
	}

	var interruptions int64
	if rt.Type == models.TypeFocus {
		interruptions = rt.TimeSpentPaused / time.Minute.Milliseconds()
	}

	return models.Session{
		// Projects the monotonic end instant onto the wall clock.
		Timestamp:            wallNow - monotonicNow + rt.EndTime,
		DurationMinutes:      minutes,
		InterruptionsMinutes: interruptions,
		Label:                label.Name,
		IsWork:               rt.Type == models.TypeFocus,
	}, true
}
