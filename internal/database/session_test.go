package database

import (
	"context"
	"testing"

	"github.com/akyairhashvil/focustime/internal/testutil"
)

func TestSaveAndListSessions(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()

	first := testutil.NewSession().WithTimestamp(1_000).WithDuration(25).Build()
	second := testutil.NewSession().WithTimestamp(2_000).WithDuration(5).AsBreak().Build()

	id1, err := db.SaveSession(ctx, first)
	if err != nil {
		t.Fatalf("save first: %v", err)
	}
	if id1 == 0 {
		t.Fatalf("expected a non-zero id")
	}
	if _, err := db.SaveSession(ctx, second); err != nil {
		t.Fatalf("save second: %v", err)
	}

	sessions, err := db.GetSessionsSince(ctx, 0)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(sessions) != 2 {
		t.Fatalf("expected 2 sessions, got %d", len(sessions))
	}
	// Newest first.
	if sessions[0].Timestamp != 2_000 || sessions[1].Timestamp != 1_000 {
		t.Fatalf("unexpected order: %+v", sessions)
	}
	if sessions[0].IsWork || !sessions[1].IsWork {
		t.Fatalf("is_work did not round-trip: %+v", sessions)
	}
}

func TestGetSessionsSinceFilters(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()

	for _, ts := range []int64{1_000, 2_000, 3_000} {
		if _, err := db.SaveSession(ctx, testutil.NewSession().WithTimestamp(ts).Build()); err != nil {
			t.Fatalf("save: %v", err)
		}
	}

	sessions, err := db.GetSessionsSince(ctx, 2_000)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(sessions) != 2 {
		t.Fatalf("expected 2 sessions at or after the cutoff, got %d", len(sessions))
	}
}

func TestUpdateLastSessionNotes(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()

	if _, err := db.SaveSession(ctx, testutil.NewSession().WithTimestamp(1_000).Build()); err != nil {
		t.Fatalf("save: %v", err)
	}
	if _, err := db.SaveSession(ctx, testutil.NewSession().WithTimestamp(2_000).Build()); err != nil {
		t.Fatalf("save: %v", err)
	}

	if err := db.UpdateLastSessionNotes(ctx, "finished the migration"); err != nil {
		t.Fatalf("update notes: %v", err)
	}

	sessions, err := db.GetSessionsSince(ctx, 0)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if sessions[0].Notes != "finished the migration" {
		t.Fatalf("expected notes on the latest session, got %q", sessions[0].Notes)
	}
	if sessions[1].Notes != "" {
		t.Fatalf("older session must be untouched, got %q", sessions[1].Notes)
	}
}

func TestUpdateSession(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()

	id, err := db.SaveSession(ctx, testutil.NewSession().WithDuration(25).Build())
	if err != nil {
		t.Fatalf("save: %v", err)
	}

	updated := testutil.NewSession().WithDuration(30).WithNotes("extended").Build()
	if err := db.UpdateSession(ctx, id, updated); err != nil {
		t.Fatalf("update: %v", err)
	}

	sessions, err := db.GetSessionsSince(ctx, 0)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if sessions[0].DurationMinutes != 30 || sessions[0].Notes != "extended" {
		t.Fatalf("update did not stick: %+v", sessions[0])
	}
}

func TestGetTotalsCountsWorkOnly(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()

	if _, err := db.SaveSession(ctx, testutil.NewSession().WithDuration(25).Build()); err != nil {
		t.Fatalf("save: %v", err)
	}
	if _, err := db.SaveSession(ctx, testutil.NewSession().WithDuration(25).Build()); err != nil {
		t.Fatalf("save: %v", err)
	}
	if _, err := db.SaveSession(ctx, testutil.NewSession().WithDuration(5).AsBreak().Build()); err != nil {
		t.Fatalf("save: %v", err)
	}

	minutes, count, err := db.GetTotals(ctx, 0)
	if err != nil {
		t.Fatalf("totals: %v", err)
	}
	if minutes != 50 || count != 2 {
		t.Fatalf("expected 50 minutes over 2 work sessions, got %d over %d", minutes, count)
	}
}
