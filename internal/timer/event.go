package timer

import "github.com/akyairhashvil/focustime/internal/models"

// Event is the closed union of state-machine transitions delivered to
// listeners. Every transition is announced exactly once, synchronously, in
// listener registration order.
type Event interface {
	isEvent()
}

// StartEvent fires on every entry into the running state, including
// resumes and auto-started follow-up sessions.
type StartEvent struct {
	IsFocus         bool
	AutoStarted     bool
	EndTime         int64
	LabelName       string
	IsDefaultLabel  bool
	LabelColorIndex int
	IsBreakEnabled  bool
	IsCountdown     bool
	Runtime         models.TimerRuntime
}

// PauseEvent carries the runtime captured at the moment of pausing.
type PauseEvent struct {
	Runtime models.TimerRuntime
}

// AddOneMinuteEvent carries the extended end time.
type AddOneMinuteEvent struct {
	EndTime int64
}

// FinishedEvent announces a completed session and whether the next one
// will start on its own.
type FinishedEvent struct {
	Type                 models.TimerType
	AutostartNextSession bool
}

// ResetEvent carries no payload. A listener that needs the pre-reset state
// must capture it from earlier events.
type ResetEvent struct{}

// SendToBackgroundEvent fires when the host signals loss of foreground.
type SendToBackgroundEvent struct {
	IsTimerRunning bool
	EndTime        int64
}

// BringToForegroundEvent fires when the host regains foreground.
type BringToForegroundEvent struct{}

// UpdateActiveLabelEvent fires after the active label/profile changed.
type UpdateActiveLabelEvent struct{}

func (StartEvent) isEvent()             {}
func (PauseEvent) isEvent()             {}
func (AddOneMinuteEvent) isEvent()      {}
func (FinishedEvent) isEvent()          {}
func (ResetEvent) isEvent()             {}
func (SendToBackgroundEvent) isEvent()  {}
func (BringToForegroundEvent) isEvent() {}
func (UpdateActiveLabelEvent) isEvent() {}

// Listener receives every transition. Delivery is synchronous; listeners
// must be cheap or do their own work asynchronously.
type Listener interface {
	OnEvent(Event)
}

// ListenerFunc adapts a function to the Listener interface.
type ListenerFunc func(Event)

func (f ListenerFunc) OnEvent(e Event) { f(e) }
