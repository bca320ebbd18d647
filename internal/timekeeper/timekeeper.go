// Package timekeeper supplies the two clocks the timer core needs: a
// wall clock (reboot-stable, may jump) and a monotonic elapsed-realtime
// clock (jump-free, reset by reboot). Durations are always computed from
// the monotonic clock; the wall clock only anchors persisted state.
package timekeeper

import "time"

// TimeProvider abstracts both clocks so tests can drive them explicitly.
type TimeProvider interface {
	// Now returns wall-clock milliseconds since the Unix epoch.
	Now() int64
	// ElapsedRealtime returns monotonic milliseconds. The origin is
	// arbitrary but fixed for the life of the process/boot.
	ElapsedRealtime() int64
}

type systemTime struct {
	base time.Time
}

// NewSystemTime returns the production TimeProvider. The monotonic clock is
// anchored at construction; time.Time's monotonic reading makes the
// elapsed value immune to wall-clock adjustments.
func NewSystemTime() TimeProvider {
	return &systemTime{base: time.Now()}
}

func (s *systemTime) Now() int64 {
	return time.Now().UnixMilli()
}

func (s *systemTime) ElapsedRealtime() int64 {
	return time.Since(s.base).Milliseconds()
}
