// Package scheduler abstracts deferred callbacks and the wall clock so that
// timed UI behavior (handoff delay, form reset, notification lifetime) can be
// driven by a fake clock in tests.
package scheduler

import "time"

// Timer is a handle to a scheduled callback.
type Timer interface {
	// Stop prevents the callback from firing. It returns false if the callback
	// already fired or was stopped before.
	Stop() bool
}

// Clock reports the current time.
type Clock interface {
	Now() time.Time
}

// Scheduler runs callbacks after a delay without blocking the caller.
type Scheduler interface {
	Clock
	AfterFunc(d time.Duration, f func()) Timer
}

type systemScheduler struct{}

// System returns a Scheduler backed by the time package.
func System() Scheduler {
	return systemScheduler{}
}

func (systemScheduler) Now() time.Time {
	return time.Now()
}

func (systemScheduler) AfterFunc(d time.Duration, f func()) Timer {
	return time.AfterFunc(d, f)
}
