package config

import "time"

// Timer defaults, used when a label carries no profile of its own.
const (
	FocusDuration     = 25 * time.Minute
	BreakDuration     = 5 * time.Minute
	LongBreakDuration = 15 * time.Minute

	SessionsBeforeLongBreak = 4
	WorkBreakRatio          = 3
)

// Business-rule timeouts.
const (
	// WiggleRoom is added to a finished session's duration before truncating
	// to whole minutes, so a 59.9s focus session still records as 1 minute.
	WiggleRoom = 10 * time.Second

	// AutoStartTimeout caps how long after the expected end a finish may
	// still auto-chain into the next session.
	AutoStartTimeout = 30 * time.Minute

	// StreakIdleGrace is the slack added on top of work+break when deciding
	// whether a long-break streak has gone stale.
	StreakIdleGrace = 30 * time.Minute

	// MinBreakBudget is the smallest budget a flow-mode break can start with.
	MinBreakBudget = time.Minute
)

// Settings keys for persisted counters and the timer-state slot.
const (
	KeyPersistedState = "timer_state"
	KeyLongBreakData  = "long_break_data"
	KeyBreakBudget    = "break_budget_data"
	KeyAutoStartWork  = "auto_start_work"
	KeyAutoStartBreak = "auto_start_break"
)

// Database/application settings.
const (
	AppName          = "focustime"
	DBFileName       = "focustime.db"
	DefaultLabelName = "PRODUCTIVITY"

	// PersistedStateVersion marks the timer-state slot format. Snapshots
	// with a different version are discarded, never migrated.
	PersistedStateVersion = 1
)
