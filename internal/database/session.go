package database

import (
	"context"
	"database/sql"

	"github.com/akyairhashvil/focustime/internal/models"
)

// SaveSession appends a finished session and returns its ID.
func (d *Database) SaveSession(ctx context.Context, s models.Session) (int64, error) {
	res, err := d.DB.ExecContext(ctx, `
		INSERT INTO sessions (timestamp, duration_minutes, interruptions_minutes, label, is_work, notes)
		VALUES (?, ?, ?, ?, ?, ?)`,
		s.Timestamp, s.DurationMinutes, s.InterruptionsMinutes, s.Label, s.IsWork, nullIfEmpty(s.Notes))
	if err != nil {
		return 0, wrapSessionErr("save", 0, err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, wrapSessionErr("save", 0, err)
	}
	return id, nil
}

// UpdateSession rewrites an existing session record.
func (d *Database) UpdateSession(ctx context.Context, id int64, s models.Session) error {
	_, err := d.DB.ExecContext(ctx, `
		UPDATE sessions
		SET timestamp = ?, duration_minutes = ?, interruptions_minutes = ?, label = ?, is_work = ?, notes = ?
		WHERE id = ?`,
		s.Timestamp, s.DurationMinutes, s.InterruptionsMinutes, s.Label, s.IsWork, nullIfEmpty(s.Notes), id)
	return wrapSessionErr("update", id, err)
}

// UpdateLastSessionNotes attaches notes to the most recent session.
func (d *Database) UpdateLastSessionNotes(ctx context.Context, notes string) error {
	_, err := d.DB.ExecContext(ctx,
		"UPDATE sessions SET notes = ? WHERE id = (SELECT MAX(id) FROM sessions)", nullIfEmpty(notes))
	return wrapSettingErr("update last session notes", err)
}

// GetSessionsSince returns sessions whose end timestamp is at or after the
// given wall-clock millisecond, newest first.
func (d *Database) GetSessionsSince(ctx context.Context, wallMillis int64) ([]models.Session, error) {
	rows, err := d.DB.QueryContext(ctx, `
		SELECT id, timestamp, duration_minutes, interruptions_minutes, label, is_work, notes
		FROM sessions
		WHERE timestamp >= ?
		ORDER BY timestamp DESC`, wallMillis)
	if err != nil {
		return nil, wrapSessionErr("list", 0, err)
	}
	defer rows.Close()

	var sessions []models.Session
	for rows.Next() {
		var s models.Session
		var notes sql.NullString
		if err := rows.Scan(&s.ID, &s.Timestamp, &s.DurationMinutes, &s.InterruptionsMinutes, &s.Label, &s.IsWork, &notes); err != nil {
			return nil, wrapSessionErr("list", 0, err)
		}
		s.Notes = notes.String
		sessions = append(sessions, s)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapSessionErr("list", 0, err)
	}
	return sessions, nil
}

// GetTotals aggregates work minutes and session count since the given
// wall-clock millisecond.
func (d *Database) GetTotals(ctx context.Context, wallMillis int64) (minutes int64, count int64, err error) {
	err = d.DB.QueryRowContext(ctx, `
		SELECT COALESCE(SUM(duration_minutes), 0), COUNT(1)
		FROM sessions
		WHERE is_work = 1 AND timestamp >= ?`, wallMillis).Scan(&minutes, &count)
	if err != nil {
		return 0, 0, wrapSessionErr("totals", 0, err)
	}
	return minutes, count, nil
}

func nullIfEmpty(s string) interface{} {
	if s == "" {
		return nil
	}
	return s
}
