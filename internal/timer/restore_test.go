package timer

import (
	"testing"

	"github.com/akyairhashvil/focustime/internal/config"
	"github.com/akyairhashvil/focustime/internal/models"
	"github.com/akyairhashvil/focustime/internal/testutil"
	"github.com/akyairhashvil/focustime/internal/timekeeper"
)

func TestRestoreRejectsUnusableSnapshots(t *testing.T) {
	ft := timekeeper.NewFakeTime(wallBase)

	if _, ok := RestoreRuntime(nil, ft); ok {
		t.Fatalf("nil snapshot must not restore")
	}

	wrongVersion := &models.PersistedState{
		Version: config.PersistedStateVersion + 1,
		State:   models.TimerRunning,
		Type:    models.TypeFocus,
	}
	if _, ok := RestoreRuntime(wrongVersion, ft); ok {
		t.Fatalf("unknown version must not restore")
	}

	finished := &models.PersistedState{
		Version: config.PersistedStateVersion,
		State:   models.TimerFinished,
		Type:    models.TypeFocus,
	}
	if _, ok := RestoreRuntime(finished, ft); ok {
		t.Fatalf("inactive snapshot must not restore")
	}
}

// startAndSnapshot drives a manager with a persistence listener attached and
// returns the snapshot written for the start transition.
func startAndSnapshot(t *testing.T, ft *timekeeper.FakeTime, label models.Label) (*Manager, *memStore) {
	t.Helper()
	store := &memStore{}
	mgr := NewManager(ft, &memSink{}, &memCounters{})
	mgr.Init(label, models.LongBreakData{}, models.BreakBudgetData{}, false, false)
	mgr.AddListener(NewPersistenceListener(store, ft))
	mgr.Start(models.TypeFocus)
	if store.state == nil {
		t.Fatalf("expected a snapshot after start")
	}
	return mgr, store
}

func TestRestoreSameBootIsVerbatim(t *testing.T) {
	ft := timekeeper.NewFakeTime(wallBase)
	ft.Advance(10_000)
	_, store := startAndSnapshot(t, ft, testutil.NewLabel().Countdown(25, 5).Build())

	// Process restarts without a reboot: monotonic clock keeps running.
	ft.Advance(120_000)
	rt, ok := RestoreRuntime(store.state, ft)
	if !ok {
		t.Fatalf("expected restore on the same boot")
	}
	if rt != store.state.Runtime() {
		t.Fatalf("same-boot restore must be verbatim: %+v vs %+v", rt, store.state.Runtime())
	}
}

func TestRestoreAfterRebootPreservesRemaining(t *testing.T) {
	ft := timekeeper.NewFakeTime(wallBase)
	ft.Advance(10_000)
	_, store := startAndSnapshot(t, ft, testutil.NewLabel().Countdown(25, 5).Build())

	ft.Reboot(600_000)
	rt, ok := RestoreRuntime(store.state, ft)
	if !ok {
		t.Fatalf("expected restore after reboot")
	}
	if rt.State != models.TimerRunning {
		t.Fatalf("expected running state, got %s", rt.State)
	}
	// 25 minutes were remaining at save; 10 minutes of downtime passed.
	if got := rt.EndTime - ft.ElapsedRealtime(); got != 25*60_000-600_000 {
		t.Fatalf("expected remaining 900000ms, got %d", got)
	}
	// The session span itself is unchanged by the shift.
	if got := rt.EndTime - rt.StartTime; got != 25*60_000 {
		t.Fatalf("expected 1500000ms span, got %d", got)
	}
}

func TestRestorePausedAfterReboot(t *testing.T) {
	ft := timekeeper.NewFakeTime(wallBase)
	ft.Advance(10_000)
	mgr, store := startAndSnapshot(t, ft, testutil.NewLabel().Countdown(25, 5).Build())

	ft.Advance(300_000)
	mgr.Toggle()

	// A paused timer survives any amount of downtime.
	ft.Reboot(3_600_000)
	rt, ok := RestoreRuntime(store.state, ft)
	if !ok {
		t.Fatalf("expected paused snapshot to restore")
	}
	if rt.State != models.TimerPaused {
		t.Fatalf("expected paused state, got %s", rt.State)
	}
	if rt.TimeAtPause != 25*60_000-300_000 {
		t.Fatalf("expected 1200000ms at pause, got %d", rt.TimeAtPause)
	}
	if rt.LastStartTime != 0 {
		t.Fatalf("expected cleared last start time, got %d", rt.LastStartTime)
	}
}

func TestRestoreDiscardsTimerExpiredWhileDead(t *testing.T) {
	ft := timekeeper.NewFakeTime(wallBase)
	ft.Advance(10_000)
	_, store := startAndSnapshot(t, ft, testutil.NewLabel().Countdown(25, 5).Build())

	ft.Reboot(26 * 60_000)
	if _, ok := RestoreRuntime(store.state, ft); ok {
		t.Fatalf("timer that ran out while the process was dead must not restore")
	}
}

func TestRestoreFlowFocusNeverExpires(t *testing.T) {
	ft := timekeeper.NewFakeTime(wallBase)
	ft.Advance(10_000)
	_, store := startAndSnapshot(t, ft, testutil.NewLabel().Flow(3).Build())

	ft.Reboot(48 * 3_600_000)
	rt, ok := RestoreRuntime(store.state, ft)
	if !ok {
		t.Fatalf("open-ended flow focus must always restore")
	}
	if rt.EndTime != 0 {
		t.Fatalf("flow focus end time must stay zero, got %d", rt.EndTime)
	}
}
