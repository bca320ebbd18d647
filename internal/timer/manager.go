// Package timer implements the focus/break state machine: one runtime
// timer system-wide, mutated only through the operations below, with every
// transition fanned out to registered listeners.
package timer

import (
	"log"
	"sync"
	"time"

	"github.com/akyairhashvil/focustime/internal/config"
	"github.com/akyairhashvil/focustime/internal/models"
	"github.com/akyairhashvil/focustime/internal/timekeeper"
	"github.com/akyairhashvil/focustime/internal/util"
)

// Manager owns the single TimerRuntime. All operations serialize on one
// mutex; events are emitted after the lock is released so a listener can
// safely read the manager back.
type Manager struct {
	mu        sync.Mutex
	time      timekeeper.TimeProvider
	sessions  SessionSink
	counters  CounterStore
	listeners []Listener

	data models.TimerData

	autoStartWork  bool
	autoStartBreak bool

	lastSessionID int64
}

// NewManager returns a manager that is not ready yet; call Init once the
// label and counters have been loaded.
func NewManager(tp timekeeper.TimeProvider, sessions SessionSink, counters CounterStore) *Manager {
	return &Manager{
		time:     tp,
		sessions: sessions,
		counters: counters,
		data: models.TimerData{
			Runtime: models.NewTimerRuntime(),
		},
	}
}

// AddListener registers a listener. Listeners registered after a
// transition never see it; registration order is delivery order.
func (m *Manager) AddListener(l Listener) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.listeners = append(m.listeners, l)
}

// Init loads the configuration the operations gate on. Break-budget and
// streak anchors from before a reboot are monotonic timestamps of a dead
// clock; they are re-anchored or discarded so the bookkeeping never spans
// two boots.
func (m *Manager) Init(label models.Label, lb models.LongBreakData, bb models.BreakBudgetData, autoStartWork, autoStartBreak bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	now := m.time.ElapsedRealtime()
	if bb.BreakBudgetStart > now {
		bb.BreakBudgetStart = now
		bb.IsAccumulating = false
	}
	if lb.LastWorkEndTime > now {
		// Anchor from a previous boot; the idle window cannot be measured
		// against the current clock, so the streak starts over.
		lb = models.LongBreakData{}
	}
	m.data.Label = label
	m.data.LongBreakData = lb
	m.data.BreakBudgetData = bb
	m.autoStartWork = autoStartWork
	m.autoStartBreak = autoStartBreak
	m.data.IsReady = true
}

// Data returns a snapshot of the aggregate.
func (m *Manager) Data() models.TimerData {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.data
}

// Start begins a new session of the given type.
func (m *Manager) Start(t models.TimerType) {
	m.mu.Lock()
	events, ok := m.startLocked(t, false)
	m.mu.Unlock()
	if ok {
		m.emit(events...)
	}
}

func (m *Manager) startLocked(t models.TimerType, autoStarted bool) ([]Event, bool) {
	if !m.data.IsReady {
		log.Printf("timer: start %s ignored, config not ready", t)
		return nil, false
	}
	if m.data.Runtime.State.IsActive() {
		log.Printf("timer: start %s ignored, timer already %s", t, m.data.Runtime.State)
		return nil, false
	}
	now := m.time.ElapsedRealtime()
	label := m.data.Label

	var endTime int64
	switch {
	case label.IsCountdown:
		endTime = now + label.Duration(t).Milliseconds()
	case t == models.TypeFocus:
		// Flow mode counts up; there is no predetermined end.
		endTime = 0
	default:
		budget := m.remainingBudgetLocked(now)
		if budget < config.MinBreakBudget {
			log.Printf("timer: break rejected, budget %s below minimum", budget)
			return nil, false
		}
		endTime = now + budget.Milliseconds()
	}

	if !label.IsCountdown {
		// Bank against the outgoing runtime before it is replaced.
		m.bankBreakBudgetLocked(now)
		m.data.BreakBudgetData.IsAccumulating = t == models.TypeFocus
		m.data.BreakBudgetData.BreakBudgetStart = now
		util.LogError("timer: persist break budget", m.counters.SetBreakBudgetData(m.data.BreakBudgetData))
	}

	m.data.Runtime = models.TimerRuntime{
		State:         models.TimerRunning,
		Type:          t,
		StartTime:     now,
		LastStartTime: now,
		EndTime:       endTime,
	}

	return []Event{m.startEventLocked(autoStarted)}, true
}

func (m *Manager) startEventLocked(autoStarted bool) StartEvent {
	label := m.data.Label
	return StartEvent{
		IsFocus:         m.data.Runtime.Type == models.TypeFocus,
		AutoStarted:     autoStarted,
		EndTime:         m.data.Runtime.EndTime,
		LabelName:       label.Name,
		IsDefaultLabel:  label.IsDefault,
		LabelColorIndex: label.ColorIndex,
		IsBreakEnabled:  label.IsBreakEnabled,
		IsCountdown:     label.IsCountdown,
		Runtime:         m.data.Runtime,
	}
}

// Toggle pauses a running timer or resumes a paused one. Flow-mode breaks
// cannot pause: the budget drains in real time whether or not the user is
// looking.
func (m *Manager) Toggle() {
	m.mu.Lock()
	if !m.data.IsReady {
		log.Printf("timer: toggle ignored, config not ready")
		m.mu.Unlock()
		return
	}
	rt := &m.data.Runtime
	label := m.data.Label
	if !rt.State.IsActive() {
		log.Printf("timer: toggle ignored in state %s", rt.State)
		m.mu.Unlock()
		return
	}
	if !label.IsCountdown && rt.Type.IsBreak() {
		log.Printf("timer: flow break cannot pause")
		m.mu.Unlock()
		return
	}
	now := m.time.ElapsedRealtime()

	var ev Event
	if rt.State == models.TimerRunning {
		if label.IsCountdown {
			rt.TimeAtPause = rt.EndTime - now
		} else {
			rt.TimeAtPause = now - rt.LastStartTime
		}
		rt.LastPauseTime = now
		rt.State = models.TimerPaused
		if !label.IsCountdown {
			m.bankBreakBudgetLocked(now)
			m.data.BreakBudgetData.IsAccumulating = false
			m.data.BreakBudgetData.BreakBudgetStart = now
			util.LogError("timer: persist break budget", m.counters.SetBreakBudgetData(m.data.BreakBudgetData))
		}
		ev = PauseEvent{Runtime: *rt}
	} else {
		rt.TimeSpentPaused += now - rt.LastPauseTime
		rt.LastStartTime = now
		if label.IsCountdown {
			rt.EndTime = now + rt.TimeAtPause
		}
		rt.State = models.TimerRunning
		if !label.IsCountdown && rt.Type == models.TypeFocus {
			m.data.BreakBudgetData.IsAccumulating = true
			m.data.BreakBudgetData.BreakBudgetStart = now
			util.LogError("timer: persist break budget", m.counters.SetBreakBudgetData(m.data.BreakBudgetData))
		}
		ev = m.startEventLocked(false)
	}
	m.mu.Unlock()
	m.emit(ev)
}

// AddOneMinute extends a countdown timer by one minute.
func (m *Manager) AddOneMinute() {
	m.mu.Lock()
	rt := &m.data.Runtime
	if !m.data.IsReady || !m.data.Label.IsCountdown || !rt.State.IsActive() {
		log.Printf("timer: add one minute ignored (state %s, countdown %v)", rt.State, m.data.Label.IsCountdown)
		m.mu.Unlock()
		return
	}
	if rt.State == models.TimerRunning {
		rt.EndTime += time.Minute.Milliseconds()
	} else {
		rt.TimeAtPause += time.Minute.Milliseconds()
	}
	ev := AddOneMinuteEvent{EndTime: rt.EndTime}
	m.mu.Unlock()
	m.emit(ev)
}

// Finish ends the current session. The end time locks to the expected end
// unless forced (or the session is open-ended flow focus), the session is
// materialized, and the next one auto-starts only when the matching
// setting is on and the user returned within the auto-start window.
func (m *Manager) Finish(action models.FinishAction) {
	m.mu.Lock()
	rt := &m.data.Runtime
	if !m.data.IsReady || !rt.State.IsActive() {
		log.Printf("timer: finish ignored in state %s", rt.State)
		m.mu.Unlock()
		return
	}
	now := m.time.ElapsedRealtime()
	if rt.State == models.TimerPaused {
		rt.TimeSpentPaused += now - rt.LastPauseTime
	}

	expectedEnd := rt.EndTime
	if action == models.ActionForceFinish || rt.EndTime == 0 {
		rt.EndTime = now
	}
	rt.State = models.TimerFinished

	m.completeCurrentLocked(action, now)

	autostart := false
	if expectedEnd == 0 || now-expectedEnd < config.AutoStartTimeout.Milliseconds() {
		if rt.Type == models.TypeFocus {
			autostart = m.autoStartBreak && m.data.Label.IsBreakEnabled
		} else {
			autostart = m.autoStartWork
		}
	}

	events := []Event{FinishedEvent{Type: rt.Type, AutostartNextSession: autostart}}
	if autostart {
		if next, ok := m.nextLocked(models.ActionAuto); ok {
			events = append(events, next...)
		}
	}
	m.mu.Unlock()
	m.emit(events...)
}

// Next ends the current session (skip) or acknowledges a finished one, and
// starts the following phase.
func (m *Manager) Next(action models.FinishAction) {
	m.mu.Lock()
	events, ok := m.nextLocked(action)
	m.mu.Unlock()
	if ok {
		m.emit(events...)
	}
}

// nextLocked selects and starts the next phase. A FINISHED runtime was
// already materialized by Finish and is never recorded twice.
func (m *Manager) nextLocked(action models.FinishAction) ([]Event, bool) {
	rt := &m.data.Runtime
	if !m.data.IsReady || rt.State == models.TimerReset {
		log.Printf("timer: next ignored in state %s", rt.State)
		return nil, false
	}
	now := m.time.ElapsedRealtime()
	if rt.State.IsActive() {
		if rt.State == models.TimerPaused {
			rt.TimeSpentPaused += now - rt.LastPauseTime
		}
		rt.EndTime = now
		m.completeCurrentLocked(action, now)
	}

	nextType := m.nextPhaseLocked(now)
	m.data.Runtime = models.NewTimerRuntime()
	return m.startLocked(nextType, action == models.ActionAuto)
}

// Reset clears the runtime. The interrupted interval is still recorded
// unless the action is an explicit dump.
func (m *Manager) Reset(action models.FinishAction) {
	m.mu.Lock()
	rt := &m.data.Runtime
	if !m.data.IsReady || rt.State == models.TimerReset {
		log.Printf("timer: reset ignored in state %s", rt.State)
		m.mu.Unlock()
		return
	}
	now := m.time.ElapsedRealtime()
	if rt.State.IsActive() {
		if rt.State == models.TimerPaused {
			rt.TimeSpentPaused += now - rt.LastPauseTime
		}
		rt.EndTime = now
		m.completeCurrentLocked(action, now)
	}
	m.data.Runtime = models.NewTimerRuntime()
	m.mu.Unlock()
	m.emit(ResetEvent{})
}

// SetActiveLabel swaps the profile. Switching between countdown and flow
// mode while a timer runs resets it first; the interval is recorded.
func (m *Manager) SetActiveLabel(label models.Label) {
	m.mu.Lock()
	modeChanged := m.data.Label.IsCountdown != label.IsCountdown
	active := m.data.Runtime.State.IsActive()
	m.mu.Unlock()

	if modeChanged && active {
		m.Reset(models.ActionManualReset)
	}

	m.mu.Lock()
	m.data.Label = label
	m.data.IsReady = true
	m.mu.Unlock()
	m.emit(UpdateActiveLabelEvent{})
}

// OnSendToBackground forwards the platform lifecycle signal to listeners.
func (m *Manager) OnSendToBackground() {
	m.mu.Lock()
	ev := SendToBackgroundEvent{
		IsTimerRunning: m.data.Runtime.State == models.TimerRunning,
		EndTime:        m.data.Runtime.EndTime,
	}
	m.mu.Unlock()
	m.emit(ev)
}

// OnBringToForeground forwards the platform lifecycle signal to listeners.
func (m *Manager) OnBringToForeground() {
	m.emit(BringToForegroundEvent{})
}

// Restore installs a snapshot recovered at process start. It must run
// before any operation; it emits no events.
func (m *Manager) Restore(rt models.TimerRuntime) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data.Runtime = rt
}

// completeCurrentLocked banks the break budget, advances the streak, and
// materializes the finished interval into a session record.
func (m *Manager) completeCurrentLocked(action models.FinishAction, now int64) {
	label := m.data.Label
	rt := m.data.Runtime

	if !label.IsCountdown {
		m.bankBreakBudgetLocked(now)
		m.data.BreakBudgetData.IsAccumulating = false
		m.data.BreakBudgetData.BreakBudgetStart = now
		util.LogError("timer: persist break budget", m.counters.SetBreakBudgetData(m.data.BreakBudgetData))
	}

	if label.IsCountdown && rt.Type == models.TypeFocus && label.IsLongBreakEnabled && qualifiesForStreak(action) {
		if m.data.LongBreakData.IsStale(label, now) {
			m.data.LongBreakData.Streak = 0
		}
		m.data.LongBreakData.Streak++
		m.data.LongBreakData.LastWorkEndTime = now
		util.LogError("timer: persist long break data", m.counters.SetLongBreakData(m.data.LongBreakData))
	}

	if action == models.ActionDump {
		return
	}
	session, ok := materializeSession(label, rt, m.time.Now(), now)
	if !ok {
		return
	}
	id, err := m.sessions.SaveSession(session)
	if err != nil {
		util.LogError("timer: save session", err)
		return
	}
	m.lastSessionID = id
	if session.IsWork {
		m.data.CompletedMinutes += session.DurationMinutes
	}
}

// qualifiesForStreak excludes plain manual continuation: only completions
// the user did not merely click through count toward a long break.
func qualifiesForStreak(action models.FinishAction) bool {
	switch action {
	case models.ActionAuto, models.ActionSkip, models.ActionForceFinish:
		return true
	}
	return false
}

// nextPhaseLocked picks the phase that follows the current session.
func (m *Manager) nextPhaseLocked(now int64) models.TimerType {
	label := m.data.Label
	lb := m.data.LongBreakData
	cur := m.data.Runtime.Type

	if cur.IsBreak() || !label.IsBreakEnabled {
		return models.TypeFocus
	}
	if !label.IsCountdown {
		return models.TypeBreak
	}
	streakInUse := label.IsLongBreakEnabled &&
		label.SessionsBeforeLongBreak > 0 &&
		lb.Streak > 0 &&
		lb.Streak%label.SessionsBeforeLongBreak == 0
	if streakInUse && !lb.IsStale(label, now) {
		return models.TypeLongBreak
	}
	return models.TypeBreak
}

// bankBreakBudgetLocked folds accrual or drain since the last anchor into
// the stored budget. Callers re-anchor BreakBudgetStart afterwards.
func (m *Manager) bankBreakBudgetLocked(now int64) {
	bb := &m.data.BreakBudgetData
	elapsed := now - bb.BreakBudgetStart
	if elapsed <= 0 {
		return
	}
	ratio := m.data.Label.WorkBreakRatio
	if ratio <= 0 {
		ratio = 1
	}
	if bb.IsAccumulating {
		bb.BreakBudgetMillis += elapsed / int64(ratio)
	} else if m.data.Runtime.Type.IsBreak() && m.data.Runtime.State != models.TimerReset {
		bb.BreakBudgetMillis -= elapsed
		if bb.BreakBudgetMillis < 0 {
			bb.BreakBudgetMillis = 0
		}
	}
}

// remainingBudgetLocked values the budget as of now without banking it.
func (m *Manager) remainingBudgetLocked(now int64) time.Duration {
	bb := m.data.BreakBudgetData
	elapsed := now - bb.BreakBudgetStart
	if elapsed < 0 {
		elapsed = 0
	}
	ratio := m.data.Label.WorkBreakRatio
	if ratio <= 0 {
		ratio = 1
	}
	budget := bb.BreakBudgetMillis
	if bb.IsAccumulating {
		budget += elapsed / int64(ratio)
	} else if m.data.Runtime.Type.IsBreak() && m.data.Runtime.State != models.TimerReset {
		budget -= elapsed
	}
	if budget < 0 {
		budget = 0
	}
	return time.Duration(budget) * time.Millisecond
}

// RemainingBreakBudget reports the current flow-mode break entitlement.
// Never negative.
func (m *Manager) RemainingBreakBudget() time.Duration {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.remainingBudgetLocked(m.time.ElapsedRealtime())
}

// Remaining reports milliseconds until the end of a countdown session, or
// elapsed milliseconds for flow focus.
func (m *Manager) Remaining() int64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	rt := m.data.Runtime
	now := m.time.ElapsedRealtime()
	switch {
	case !rt.State.IsActive():
		return 0
	case rt.State == models.TimerPaused:
		return rt.TimeAtPause
	case rt.EndTime == 0:
		return now - rt.LastStartTime
	default:
		return rt.EndTime - now
	}
}

// UpdateLastSessionNotes attaches notes to the most recently recorded
// session, if any.
func (m *Manager) UpdateLastSessionNotes(notes string) {
	m.mu.Lock()
	id := m.lastSessionID
	m.mu.Unlock()
	if id == 0 {
		return
	}
	util.LogError("timer: update session notes", m.sessions.UpdateLastSessionNotes(notes))
}

// SetAutoStart updates the auto-continue settings.
func (m *Manager) SetAutoStart(work, brk bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.autoStartWork = work
	m.autoStartBreak = brk
}

func (m *Manager) emit(events ...Event) {
	if len(events) == 0 {
		return
	}
	m.mu.Lock()
	listeners := make([]Listener, len(m.listeners))
	copy(listeners, m.listeners)
	m.mu.Unlock()
	for _, e := range events {
		for _, l := range listeners {
			l.OnEvent(e)
		}
	}
}
