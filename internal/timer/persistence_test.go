package timer

import (
	"testing"

	"github.com/golang/mock/gomock"

	"github.com/akyairhashvil/focustime/internal/config"
	"github.com/akyairhashvil/focustime/internal/models"
	"github.com/akyairhashvil/focustime/internal/testutil"
	"github.com/akyairhashvil/focustime/internal/timekeeper"
)

func TestPersistenceListenerLifecycle(t *testing.T) {
	ft := timekeeper.NewFakeTime(wallBase)
	store := &memStore{}
	mgr := NewManager(ft, &memSink{}, &memCounters{})
	mgr.Init(testutil.NewLabel().Countdown(25, 5).Build(), models.LongBreakData{}, models.BreakBudgetData{}, false, false)
	mgr.AddListener(NewPersistenceListener(store, ft))

	mgr.Start(models.TypeFocus)
	snap := store.state
	if snap == nil {
		t.Fatalf("expected snapshot after start")
	}
	if snap.Version != config.PersistedStateVersion {
		t.Fatalf("expected version %d, got %d", config.PersistedStateVersion, snap.Version)
	}
	if snap.State != models.TimerRunning || snap.Type != models.TypeFocus {
		t.Fatalf("unexpected snapshot: %+v", snap)
	}
	if snap.SavedAtWallClock != wallBase {
		t.Fatalf("expected save anchor %d, got %d", wallBase, snap.SavedAtWallClock)
	}
	if snap.EndTimeWallClock != wallBase+25*60_000 {
		t.Fatalf("expected end anchor %d, got %d", wallBase+25*60_000, snap.EndTimeWallClock)
	}
	if snap.LabelName != config.DefaultLabelName {
		t.Fatalf("expected default label name, got %q", snap.LabelName)
	}

	ft.Advance(60_000)
	mgr.Toggle()
	snap = store.state
	if snap == nil || snap.State != models.TimerPaused {
		t.Fatalf("expected paused snapshot, got %+v", snap)
	}

	mgr.Reset(models.ActionDump)
	if store.state != nil {
		t.Fatalf("reset must clear the persisted state")
	}

	mgr.Start(models.TypeFocus)
	ft.Advance(25 * 60_000)
	mgr.Finish(models.ActionAuto)
	if store.state != nil {
		t.Fatalf("finish must clear the persisted state")
	}
}

func TestPersistedSnapshotRoundTrip(t *testing.T) {
	ft := timekeeper.NewFakeTime(wallBase)
	store := &memStore{}
	mgr := NewManager(ft, &memSink{}, &memCounters{})
	mgr.Init(testutil.NewLabel().Countdown(25, 5).Build(), models.LongBreakData{}, models.BreakBudgetData{}, false, false)
	mgr.AddListener(NewPersistenceListener(store, ft))

	mgr.Start(models.TypeFocus)
	ft.Advance(300_000)
	mgr.Toggle()
	want := mgr.Data().Runtime

	rt, ok := RestoreRuntime(store.state, ft)
	if !ok {
		t.Fatalf("expected round trip to restore")
	}
	if rt != want {
		t.Fatalf("round trip changed the runtime: %+v vs %+v", rt, want)
	}
}

func TestFinishPersistsCountersAndSession(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	sink := NewMockSessionSink(ctrl)
	counters := NewMockCounterStore(ctrl)
	ft := timekeeper.NewFakeTime(wallBase)
	mgr := NewManager(ft, sink, counters)
	mgr.Init(testutil.NewLabel().Countdown(25, 5).Build(), models.LongBreakData{}, models.BreakBudgetData{}, false, false)

	// Countdown mode must never touch the break budget slot; the strict
	// mock fails the test on any unexpected call.
	counters.EXPECT().
		SetLongBreakData(models.LongBreakData{Streak: 1, LastWorkEndTime: 25 * 60_000}).
		Return(nil)
	sink.EXPECT().
		SaveSession(gomock.Any()).
		DoAndReturn(func(s models.Session) (int64, error) {
			if s.DurationMinutes != 25 || !s.IsWork {
				t.Errorf("unexpected session: %+v", s)
			}
			return 7, nil
		})
	sink.EXPECT().UpdateLastSessionNotes("refactored the scheduler").Return(nil)

	mgr.Start(models.TypeFocus)
	ft.Advance(25 * 60_000)
	mgr.Finish(models.ActionAuto)
	mgr.UpdateLastSessionNotes("refactored the scheduler")
}
