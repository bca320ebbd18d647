package database

import (
	"context"
	"encoding/json"

	"github.com/akyairhashvil/focustime/internal/config"
	"github.com/akyairhashvil/focustime/internal/models"
)

func (d *Database) GetSetting(ctx context.Context, key string) (string, bool) {
	var value *string
	err := d.DB.QueryRowContext(ctx, "SELECT value FROM settings WHERE key = ?", key).Scan(&value)
	if err != nil {
		return "", false
	}
	if value != nil {
		return *value, true
	}
	return "", false
}

func (d *Database) SetSetting(ctx context.Context, key, value string) error {
	_, err := d.DB.ExecContext(ctx,
		"INSERT INTO settings (key, value) VALUES (?, ?) ON CONFLICT(key) DO UPDATE SET value = excluded.value",
		key, value)
	return wrapSettingErr("set "+key, err)
}

func (d *Database) DeleteSetting(ctx context.Context, key string) error {
	_, err := d.DB.ExecContext(ctx, "DELETE FROM settings WHERE key = ?", key)
	return wrapSettingErr("delete "+key, err)
}

// GetBoolSetting reads a boolean flag, falling back to def when unset.
func (d *Database) GetBoolSetting(ctx context.Context, key string, def bool) bool {
	v, ok := d.GetSetting(ctx, key)
	if !ok {
		return def
	}
	return v == "1" || v == "true"
}

func (d *Database) setJSON(ctx context.Context, key string, v interface{}) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return wrapSettingErr("marshal "+key, err)
	}
	return d.SetSetting(ctx, key, string(raw))
}

func (d *Database) getJSON(ctx context.Context, key string, v interface{}) (bool, error) {
	raw, ok := d.GetSetting(ctx, key)
	if !ok {
		return false, nil
	}
	if err := json.Unmarshal([]byte(raw), v); err != nil {
		return false, wrapSettingErr("unmarshal "+key, err)
	}
	return true, nil
}

// GetLongBreakData reads the streak counter; missing or corrupt data falls
// back to zero values rather than failing startup.
func (d *Database) GetLongBreakData(ctx context.Context) models.LongBreakData {
	var lb models.LongBreakData
	if _, err := d.getJSON(ctx, config.KeyLongBreakData, &lb); err != nil {
		return models.LongBreakData{}
	}
	return lb
}

func (d *Database) SetLongBreakData(ctx context.Context, lb models.LongBreakData) error {
	return d.setJSON(ctx, config.KeyLongBreakData, lb)
}

// GetBreakBudgetData reads the flow-mode budget; same fallback policy as
// the streak counter.
func (d *Database) GetBreakBudgetData(ctx context.Context) models.BreakBudgetData {
	var bb models.BreakBudgetData
	if _, err := d.getJSON(ctx, config.KeyBreakBudget, &bb); err != nil {
		return models.BreakBudgetData{}
	}
	return bb
}

func (d *Database) SetBreakBudgetData(ctx context.Context, bb models.BreakBudgetData) error {
	return d.setJSON(ctx, config.KeyBreakBudget, bb)
}

// SaveTimerState writes the durable timer-state slot.
func (d *Database) SaveTimerState(ctx context.Context, s models.PersistedState) error {
	return d.setJSON(ctx, config.KeyPersistedState, s)
}

// LoadTimerState reads the slot. A missing slot is (nil, nil).
func (d *Database) LoadTimerState(ctx context.Context) (*models.PersistedState, error) {
	var s models.PersistedState
	ok, err := d.getJSON(ctx, config.KeyPersistedState, &s)
	if err != nil || !ok {
		return nil, err
	}
	return &s, nil
}

// ClearTimerState deletes the slot.
func (d *Database) ClearTimerState(ctx context.Context) error {
	return d.DeleteSetting(ctx, config.KeyPersistedState)
}
