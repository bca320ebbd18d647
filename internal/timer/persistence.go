package timer

import (
	"github.com/akyairhashvil/focustime/internal/config"
	"github.com/akyairhashvil/focustime/internal/models"
	"github.com/akyairhashvil/focustime/internal/timekeeper"
	"github.com/akyairhashvil/focustime/internal/util"
)

// PersistenceListener mirrors every start/pause transition into the
// durable state slot and clears it when the timer finishes or resets.
// This is the sole mechanism for surviving process death.
type PersistenceListener struct {
	store StateStore
	time  timekeeper.TimeProvider

	lastLabelName string
}

func NewPersistenceListener(store StateStore, tp timekeeper.TimeProvider) *PersistenceListener {
	return &PersistenceListener{store: store, time: tp}
}

func (p *PersistenceListener) OnEvent(e Event) {
	switch ev := e.(type) {
	case StartEvent:
		p.lastLabelName = ev.LabelName
		p.save(ev.Runtime)
	case PauseEvent:
		p.save(ev.Runtime)
	case FinishedEvent:
		util.LogError("persistence: clear timer state", p.store.ClearTimerState())
	case ResetEvent:
		util.LogError("persistence: clear timer state", p.store.ClearTimerState())
	}
}

func (p *PersistenceListener) save(rt models.TimerRuntime) {
	if !rt.State.IsActive() {
		return
	}
	wallNow := p.time.Now()
	monotonicNow := p.time.ElapsedRealtime()
	state := models.PersistedState{
		Version:          config.PersistedStateVersion,
		State:            rt.State,
		Type:             rt.Type,
		StartTime:        rt.StartTime,
		LastStartTime:    rt.LastStartTime,
		LastPauseTime:    rt.LastPauseTime,
		EndTime:          rt.EndTime,
		TimeAtPause:      rt.TimeAtPause,
		TimeSpentPaused:  rt.TimeSpentPaused,
		LabelName:        p.lastLabelName,
		SavedAtWallClock: wallNow,
		EndTimeWallClock: wallNow - monotonicNow + rt.EndTime,
	}
	util.LogError("persistence: save timer state", p.store.SaveTimerState(state))
}
