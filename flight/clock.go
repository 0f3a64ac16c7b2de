package flight

import (
	"sync"
	"time"
)

// TimeSource supplies the current time to the controller
type TimeSource interface {
	Now() time.Time
}

// SystemClock reads the real monotonic clock
type SystemClock struct{}

// NewSystemClock creates a wall clock time source
func NewSystemClock() *SystemClock {
	return &SystemClock{}
}

// Now returns the current time with monotonic clock reading
func (SystemClock) Now() time.Time {
	return time.Now()
}

// ManualClock is a controllable time source for tests and headless replay
type ManualClock struct {
	mu          sync.RWMutex
	currentTime time.Time
}

// NewManualClock creates a manual clock starting at the given time
func NewManualClock(start time.Time) *ManualClock {
	return &ManualClock{currentTime: start}
}

// Now returns the current manual time
func (m *ManualClock) Now() time.Time {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.currentTime
}

// Set moves the clock to t, which may be earlier than the current time
func (m *ManualClock) Set(t time.Time) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.currentTime = t
}

// Advance moves the clock forward by d
func (m *ManualClock) Advance(d time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.currentTime = m.currentTime.Add(d)
}
