package models

import (
	"time"

	"github.com/akyairhashvil/focustime/internal/config"
)

// TimerState enumerates the lifecycle states of the single runtime timer.
type TimerState string

const (
	TimerReset    TimerState = "reset"
	TimerRunning  TimerState = "running"
	TimerPaused   TimerState = "paused"
	TimerFinished TimerState = "finished"
)

// IsActive reports whether the timer is running or paused.
func (s TimerState) IsActive() bool {
	return s == TimerRunning || s == TimerPaused
}

// TimerType enumerates the session phases.
type TimerType string

const (
	TypeFocus     TimerType = "focus"
	TypeBreak     TimerType = "break"
	TypeLongBreak TimerType = "long_break"
)

// IsBreak reports whether the type is a break of either length.
func (t TimerType) IsBreak() bool {
	return t == TypeBreak || t == TypeLongBreak
}

// FinishAction distinguishes how a session was ended. It drives streak
// accounting and decides whether a session record is materialized.
type FinishAction string

const (
	ActionManualNext  FinishAction = "manual_next"
	ActionManualReset FinishAction = "manual_reset"
	ActionAuto        FinishAction = "auto"
	ActionSkip        FinishAction = "skip"
	ActionForceFinish FinishAction = "force_finish"
	// ActionDump discards the running interval without recording a session.
	ActionDump FinishAction = "dump"
)

// Label is the active profile: it decides countdown vs. flow mode and all
// per-phase durations. Immutable for the lifetime of a session.
type Label struct {
	ID                      int64
	Name                    string
	ColorIndex              int
	IsDefault               bool
	IsCountdown             bool
	FocusMinutes            int
	BreakMinutes            int
	LongBreakMinutes        int
	IsBreakEnabled          bool
	IsLongBreakEnabled      bool
	SessionsBeforeLongBreak int
	WorkBreakRatio          int
}

// DefaultLabel returns the built-in profile used until the user edits one.
func DefaultLabel() Label {
	return Label{
		Name:                    config.DefaultLabelName,
		IsDefault:               true,
		IsCountdown:             true,
		FocusMinutes:            int(config.FocusDuration.Minutes()),
		BreakMinutes:            int(config.BreakDuration.Minutes()),
		LongBreakMinutes:        int(config.LongBreakDuration.Minutes()),
		IsBreakEnabled:          true,
		IsLongBreakEnabled:      true,
		SessionsBeforeLongBreak: config.SessionsBeforeLongBreak,
		WorkBreakRatio:          config.WorkBreakRatio,
	}
}

// Duration returns the configured duration for a phase.
func (l Label) Duration(t TimerType) time.Duration {
	switch t {
	case TypeBreak:
		return time.Duration(l.BreakMinutes) * time.Minute
	case TypeLongBreak:
		return time.Duration(l.LongBreakMinutes) * time.Minute
	default:
		return time.Duration(l.FocusMinutes) * time.Minute
	}
}

// TimerRuntime is the live state of the single system-wide timer. All
// timestamp fields are monotonic "ms since boot" values from the
// timekeeper, never wall-clock times.
type TimerRuntime struct {
	State TimerState
	Type  TimerType

	StartTime     int64
	LastStartTime int64
	LastPauseTime int64
	EndTime       int64

	// TimeAtPause holds remaining ms (countdown) or elapsed ms (flow focus)
	// captured at the moment of pausing.
	TimeAtPause int64

	// TimeSpentPaused accumulates ms spent paused during this session.
	TimeSpentPaused int64
}

// NewTimerRuntime returns a runtime in the reset state.
func NewTimerRuntime() TimerRuntime {
	return TimerRuntime{State: TimerReset, Type: TypeFocus}
}

// LongBreakData tracks the focus-session streak driving long breaks.
// LastWorkEndTime is a monotonic timestamp of the last qualifying focus end.
type LongBreakData struct {
	Streak          int   `json:"streak"`
	LastWorkEndTime int64 `json:"last_work_end_time"`
}

// IdleWindow is the maximum gap after a focus session before the streak is
// considered stale: one full work+break cycle plus a fixed grace period.
func (l Label) IdleWindow() time.Duration {
	return l.Duration(TypeFocus) + l.Duration(TypeBreak) + config.StreakIdleGrace
}

// IsStale reports whether too much time has passed since the last
// qualifying focus session ended.
func (d LongBreakData) IsStale(label Label, monotonicNow int64) bool {
	if d.LastWorkEndTime == 0 {
		return true
	}
	return monotonicNow-d.LastWorkEndTime > label.IdleWindow().Milliseconds()
}

// BreakBudgetData banks break entitlement earned during flow-mode focus.
// BreakBudgetStart anchors accrual/drain to the monotonic clock.
type BreakBudgetData struct {
	BreakBudgetMillis int64 `json:"break_budget_millis"`
	BreakBudgetStart  int64 `json:"break_budget_start"`
	IsAccumulating    bool  `json:"is_accumulating"`
}

// Session is the durable historical record of a finished interval.
type Session struct {
	ID int64
	// Timestamp is wall-clock ms of the session's end.
	Timestamp            int64
	DurationMinutes      int64
	InterruptionsMinutes int64
	Label                string
	IsWork               bool
	Notes                string
}

// PersistedState is the serialized projection of TimerRuntime written to
// the durable slot on every start/pause. The two wall-clock anchors are
// what make expiry and reboot detectable after process death.
type PersistedState struct {
	Version int `json:"version"`

	State TimerState `json:"state"`
	Type  TimerType  `json:"type"`

	StartTime       int64 `json:"start_time"`
	LastStartTime   int64 `json:"last_start_time"`
	LastPauseTime   int64 `json:"last_pause_time"`
	EndTime         int64 `json:"end_time"`
	TimeAtPause     int64 `json:"time_at_pause"`
	TimeSpentPaused int64 `json:"time_spent_paused"`

	LabelName string `json:"label_name"`

	SavedAtWallClock int64 `json:"saved_at_wall_clock"`
	EndTimeWallClock int64 `json:"end_time_wall_clock"`
}

// Runtime rebuilds the in-memory runtime from a persisted snapshot.
func (p PersistedState) Runtime() TimerRuntime {
	return TimerRuntime{
		State:           p.State,
		Type:            p.Type,
		StartTime:       p.StartTime,
		LastStartTime:   p.LastStartTime,
		LastPauseTime:   p.LastPauseTime,
		EndTime:         p.EndTime,
		TimeAtPause:     p.TimeAtPause,
		TimeSpentPaused: p.TimeSpentPaused,
	}
}

// TimerData is the aggregate the state machine owns: profile plus runtime
// plus the persisted counters. IsReady stays false until the label and
// counters have been loaded at startup; no operation runs before that.
type TimerData struct {
	Label            Label
	Runtime          TimerRuntime
	LongBreakData    LongBreakData
	BreakBudgetData  BreakBudgetData
	CompletedMinutes int64
	IsReady          bool
}
