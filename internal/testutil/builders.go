package testutil

import (
	"github.com/akyairhashvil/focustime/internal/models"
)

// LabelBuilder provides a fluent API for creating test labels.
type LabelBuilder struct {
	label models.Label
}

func NewLabel() *LabelBuilder {
	return &LabelBuilder{label: models.DefaultLabel()}
}

func (b *LabelBuilder) WithName(name string) *LabelBuilder {
	b.label.Name = name
	b.label.IsDefault = false
	return b
}

func (b *LabelBuilder) Countdown(focusMinutes, breakMinutes int) *LabelBuilder {
	b.label.IsCountdown = true
	b.label.FocusMinutes = focusMinutes
	b.label.BreakMinutes = breakMinutes
	return b
}

func (b *LabelBuilder) Flow(workBreakRatio int) *LabelBuilder {
	b.label.IsCountdown = false
	b.label.WorkBreakRatio = workBreakRatio
	return b
}

func (b *LabelBuilder) WithoutBreaks() *LabelBuilder {
	b.label.IsBreakEnabled = false
	return b
}

func (b *LabelBuilder) WithoutLongBreaks() *LabelBuilder {
	b.label.IsLongBreakEnabled = false
	return b
}

func (b *LabelBuilder) WithSessionsBeforeLongBreak(n int) *LabelBuilder {
	b.label.SessionsBeforeLongBreak = n
	return b
}

func (b *LabelBuilder) Build() models.Label {
	return b.label
}

// SessionBuilder provides a fluent API for creating test sessions.
type SessionBuilder struct {
	session models.Session
}

func NewSession() *SessionBuilder {
	return &SessionBuilder{session: models.Session{
		Timestamp:       1_700_000_000_000,
		DurationMinutes: 25,
		Label:           "test",
		IsWork:          true,
	}}
}

func (b *SessionBuilder) WithTimestamp(wallMillis int64) *SessionBuilder {
	b.session.Timestamp = wallMillis
	return b
}

func (b *SessionBuilder) WithDuration(minutes int64) *SessionBuilder {
	b.session.DurationMinutes = minutes
	return b
}

func (b *SessionBuilder) AsBreak() *SessionBuilder {
	b.session.IsWork = false
	return b
}

func (b *SessionBuilder) WithNotes(notes string) *SessionBuilder {
	b.session.Notes = notes
	return b
}

func (b *SessionBuilder) Build() models.Session {
	return b.session
}
