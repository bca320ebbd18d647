package database

import (
	"context"
	"database/sql"
	"errors"

	"github.com/akyairhashvil/focustime/internal/models"
)

const labelColumns = `id, name, color_index, is_default, is_countdown,
	focus_minutes, break_minutes, long_break_minutes,
	breaks_enabled, long_breaks_enabled, sessions_before_long_break, work_break_ratio`

// EnsureDefaultLabel returns the default label, creating it on first run.
func (d *Database) EnsureDefaultLabel(ctx context.Context) (models.Label, error) {
	label, err := d.scanLabel(d.DB.QueryRowContext(ctx,
		"SELECT "+labelColumns+" FROM labels WHERE is_default = 1 LIMIT 1"))
	if err == nil {
		return label, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return models.Label{}, wrapLabelErr("ensure default", 0, err)
	}

	label = models.DefaultLabel()
	id, err := d.CreateLabel(ctx, label)
	if err != nil {
		return models.Label{}, err
	}
	label.ID = id
	return label, nil
}

// CreateLabel inserts a label profile and returns its ID.
func (d *Database) CreateLabel(ctx context.Context, l models.Label) (int64, error) {
	res, err := d.DB.ExecContext(ctx, `
		INSERT INTO labels (name, color_index, is_default, is_countdown,
			focus_minutes, break_minutes, long_break_minutes,
			breaks_enabled, long_breaks_enabled, sessions_before_long_break, work_break_ratio)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		l.Name, l.ColorIndex, l.IsDefault, l.IsCountdown,
		l.FocusMinutes, l.BreakMinutes, l.LongBreakMinutes,
		l.IsBreakEnabled, l.IsLongBreakEnabled, l.SessionsBeforeLongBreak, l.WorkBreakRatio)
	if err != nil {
		return 0, wrapLabelErr("create", 0, err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, wrapLabelErr("create", 0, err)
	}
	return id, nil
}

// UpdateLabel rewrites a label profile.
func (d *Database) UpdateLabel(ctx context.Context, l models.Label) error {
	_, err := d.DB.ExecContext(ctx, `
		UPDATE labels
		SET name = ?, color_index = ?, is_default = ?, is_countdown = ?,
			focus_minutes = ?, break_minutes = ?, long_break_minutes = ?,
			breaks_enabled = ?, long_breaks_enabled = ?, sessions_before_long_break = ?, work_break_ratio = ?
		WHERE id = ?`,
		l.Name, l.ColorIndex, l.IsDefault, l.IsCountdown,
		l.FocusMinutes, l.BreakMinutes, l.LongBreakMinutes,
		l.IsBreakEnabled, l.IsLongBreakEnabled, l.SessionsBeforeLongBreak, l.WorkBreakRatio, l.ID)
	return wrapLabelErr("update", l.ID, err)
}

// GetLabels returns all label profiles, default first.
func (d *Database) GetLabels(ctx context.Context) ([]models.Label, error) {
	rows, err := d.DB.QueryContext(ctx,
		"SELECT "+labelColumns+" FROM labels ORDER BY is_default DESC, name ASC")
	if err != nil {
		return nil, wrapLabelErr("list", 0, err)
	}
	defer rows.Close()

	var labels []models.Label
	for rows.Next() {
		l, err := d.scanLabel(rows)
		if err != nil {
			return nil, wrapLabelErr("list", 0, err)
		}
		labels = append(labels, l)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapLabelErr("list", 0, err)
	}
	return labels, nil
}

// GetLabel looks a label up by name.
func (d *Database) GetLabel(ctx context.Context, name string) (models.Label, error) {
	l, err := d.scanLabel(d.DB.QueryRowContext(ctx,
		"SELECT "+labelColumns+" FROM labels WHERE name = ?", name))
	if err != nil {
		return models.Label{}, wrapLabelErr("get", 0, err)
	}
	return l, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func (d *Database) scanLabel(row rowScanner) (models.Label, error) {
	var l models.Label
	err := row.Scan(&l.ID, &l.Name, &l.ColorIndex, &l.IsDefault, &l.IsCountdown,
		&l.FocusMinutes, &l.BreakMinutes, &l.LongBreakMinutes,
		&l.IsBreakEnabled, &l.IsLongBreakEnabled, &l.SessionsBeforeLongBreak, &l.WorkBreakRatio)
	return l, err
}
