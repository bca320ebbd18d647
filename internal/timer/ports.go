package timer

import "github.com/akyairhashvil/focustime/internal/models"

// SessionSink receives materialized session records.
type SessionSink interface {
	SaveSession(s models.Session) (int64, error)
	UpdateSession(id int64, s models.Session) error
	UpdateLastSessionNotes(notes string) error
}

// StateStore is the single durable slot holding the serialized timer
// state. Written on start/pause, cleared on reset/finish, read once at
// process start.
type StateStore interface {
	SaveTimerState(s models.PersistedState) error
	LoadTimerState() (*models.PersistedState, error)
	ClearTimerState() error
}

// CounterStore persists the cross-restart counters the state machine
// maintains alongside the runtime.
type CounterStore interface {
	SetLongBreakData(d models.LongBreakData) error
	SetBreakBudgetData(d models.BreakBudgetData) error
}

//go:generate mockgen -source=ports.go -destination=mock_ports_test.go -package=timer
