package timer

import (
	"log"

	"github.com/akyairhashvil/focustime/internal/config"
	"github.com/akyairhashvil/focustime/internal/models"
	"github.com/akyairhashvil/focustime/internal/timekeeper"
)

// RestoreRuntime decides whether a persisted snapshot is still worth
// restoring and, if the device rebooted since it was written, re-anchors
// every monotonic field to the post-reboot clock.
//
// The monotonic clock is the only one trusted for durations (it cannot
// jump), and the wall clock is the only one trusted across reboots; each
// is used strictly for what it is reliable at.
func RestoreRuntime(p *models.PersistedState, tp timekeeper.TimeProvider) (models.TimerRuntime, bool) {
	if p == nil {
		return models.TimerRuntime{}, false
	}
	if p.Version != config.PersistedStateVersion {
		log.Printf("timer: discarding persisted state with unknown version %d", p.Version)
		return models.TimerRuntime{}, false
	}
	if !p.State.IsActive() {
		return models.TimerRuntime{}, false
	}

	wallNow := tp.Now()
	monotonicNow := tp.ElapsedRealtime()

	// EndTime == 0 marks an open-ended flow-mode focus; it cannot expire.
	if p.State == models.TimerRunning && p.EndTime != 0 && wallNow >= p.EndTimeWallClock {
		log.Printf("timer: persisted timer expired while the process was dead, not restoring")
		return models.TimerRuntime{}, false
	}

	rt := p.Runtime()
	if monotonicNow >= p.StartTime {
		// Same boot: monotonic fields are still valid verbatim.
		return rt, true
	}

	// Reboot: the monotonic clock restarted near zero while the wall clock
	// kept advancing. Shift every monotonic timestamp by the same amount,
	// which preserves elapsed and remaining durations exactly.
	savedAtMonotonic := p.SavedAtWallClock - p.EndTimeWallClock + p.EndTime
	shift := monotonicNow - savedAtMonotonic - (wallNow - p.SavedAtWallClock)

	rt.StartTime += shift
	if rt.EndTime != 0 {
		rt.EndTime += shift
	}
	rt.LastPauseTime += shift
	if p.State == models.TimerPaused {
		rt.LastStartTime = 0
	} else {
		rt.LastStartTime = monotonicNow - (wallNow - p.SavedAtWallClock)
	}
	return rt, true
}
