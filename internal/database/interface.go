package database

import (
	"context"

	"github.com/akyairhashvil/focustime/internal/models"
)

// SessionRepository defines the finished-session sink and queries.
type SessionRepository interface {
	SaveSession(ctx context.Context, s models.Session) (int64, error)
	UpdateSession(ctx context.Context, id int64, s models.Session) error
	UpdateLastSessionNotes(ctx context.Context, notes string) error
	GetSessionsSince(ctx context.Context, wallMillis int64) ([]models.Session, error)
	GetTotals(ctx context.Context, wallMillis int64) (int64, int64, error)
}

// LabelRepository defines label/profile operations.
type LabelRepository interface {
	EnsureDefaultLabel(ctx context.Context) (models.Label, error)
	CreateLabel(ctx context.Context, l models.Label) (int64, error)
	UpdateLabel(ctx context.Context, l models.Label) error
	GetLabels(ctx context.Context) ([]models.Label, error)
	GetLabel(ctx context.Context, name string) (models.Label, error)
}

// SettingsRepository defines the key/value store plus the typed counter
// and timer-state accessors layered on it.
type SettingsRepository interface {
	GetSetting(ctx context.Context, key string) (string, bool)
	SetSetting(ctx context.Context, key, value string) error
	DeleteSetting(ctx context.Context, key string) error
	GetBoolSetting(ctx context.Context, key string, def bool) bool
	GetLongBreakData(ctx context.Context) models.LongBreakData
	SetLongBreakData(ctx context.Context, lb models.LongBreakData) error
	GetBreakBudgetData(ctx context.Context) models.BreakBudgetData
	SetBreakBudgetData(ctx context.Context, bb models.BreakBudgetData) error
	SaveTimerState(ctx context.Context, s models.PersistedState) error
	LoadTimerState(ctx context.Context) (*models.PersistedState, error)
	ClearTimerState(ctx context.Context) error
}

// Repository combines all repository interfaces.
//
//go:generate mockgen -source=interface.go -destination=mock_repository_test.go -package=database
type Repository interface {
	SessionRepository
	LabelRepository
	SettingsRepository
}

var _ Repository = (*Database)(nil)
