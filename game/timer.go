package game

import (
	"time"
)

// Clock reports the current time. Sessions default to time.Now.
type Clock func() time.Time

// Timer measures how long a game has been played. It does not tick by itself;
// whoever displays it polls Elapsed.
type Timer struct {
	now Clock

	startedAt, stoppedAt time.Time
	started, stopped     bool
}

func NewTimer(now Clock) *Timer {
	if now == nil {
		now = time.Now
	}
	return &Timer{now: now}
}

// Start begins timing, returning false if the timer was already started
func (timer *Timer) Start() bool {
	if timer.started {
		return false
	}
	timer.started = true
	timer.startedAt = timer.now()
	return true
}

// Stop freezes the timer, returning false if it was already stopped
func (timer *Timer) Stop() bool {
	if timer.stopped {
		return false
	}
	timer.stopped = true
	timer.stoppedAt = timer.now()
	if !timer.started {
		timer.started = true
		timer.startedAt = timer.stoppedAt
	}
	return true
}

func (timer *Timer) IsRunning() bool {
	return timer.started && !timer.stopped
}

func (timer *Timer) Elapsed() time.Duration {
	switch {
	case !timer.started:
		return 0
	case timer.stopped:
		return timer.stoppedAt.Sub(timer.startedAt)
	default:
		return timer.now().Sub(timer.startedAt)
	}
}

// Seconds returns the whole seconds elapsed
func (timer *Timer) Seconds() int {
	return int(timer.Elapsed() / time.Second)
}
