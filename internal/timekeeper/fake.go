package timekeeper

import "sync"

// FakeTime is a TimeProvider for tests. Both clocks are set or advanced
// explicitly; Reboot models the monotonic clock resetting while the wall
// clock keeps running.
type FakeTime struct {
	mu   sync.Mutex
	wall int64
	mono int64
}

// NewFakeTime starts the fake wall clock at wallMillis and the monotonic
// clock at zero.
func NewFakeTime(wallMillis int64) *FakeTime {
	return &FakeTime{wall: wallMillis}
}

func (f *FakeTime) Now() int64 {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.wall
}

func (f *FakeTime) ElapsedRealtime() int64 {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.mono
}

// Advance moves both clocks forward together, as real time does.
func (f *FakeTime) Advance(millis int64) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.wall += millis
	f.mono += millis
}

// Reboot resets the monotonic clock to zero and advances the wall clock by
// downtimeMillis, mimicking a device restart.
func (f *FakeTime) Reboot(downtimeMillis int64) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.mono = 0
	f.wall += downtimeMillis
}

// SetWall moves only the wall clock, mimicking a timezone or manual change.
func (f *FakeTime) SetWall(wallMillis int64) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.wall = wallMillis
}
