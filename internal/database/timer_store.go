package database

import (
	"context"

	"github.com/akyairhashvil/focustime/internal/models"
)

// TimerStore adapts the Database to the context-free ports the timer
// state machine consumes. Listener side effects are fire-and-forget, so a
// background context is appropriate.
type TimerStore struct {
	db  *Database
	ctx context.Context
}

func NewTimerStore(db *Database) *TimerStore {
	return &TimerStore{db: db, ctx: context.Background()}
}

func (t *TimerStore) SaveSession(s models.Session) (int64, error) {
	return t.db.SaveSession(t.ctx, s)
}

func (t *TimerStore) UpdateSession(id int64, s models.Session) error {
	return t.db.UpdateSession(t.ctx, id, s)
}

func (t *TimerStore) UpdateLastSessionNotes(notes string) error {
	return t.db.UpdateLastSessionNotes(t.ctx, notes)
}

func (t *TimerStore) SaveTimerState(s models.PersistedState) error {
	return t.db.SaveTimerState(t.ctx, s)
}

func (t *TimerStore) LoadTimerState() (*models.PersistedState, error) {
	return t.db.LoadTimerState(t.ctx)
}

func (t *TimerStore) ClearTimerState() error {
	return t.db.ClearTimerState(t.ctx)
}

func (t *TimerStore) SetLongBreakData(d models.LongBreakData) error {
	return t.db.SetLongBreakData(t.ctx, d)
}

func (t *TimerStore) SetBreakBudgetData(d models.BreakBudgetData) error {
	return t.db.SetBreakBudgetData(t.ctx, d)
}
