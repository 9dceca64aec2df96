package timer

import (
	"errors"
	"fmt"
	"time"
)

// State is the stopwatch lifecycle state.
type State string

const (
	StateIdle    State = "idle"
	StateRunning State = "running"
	StatePaused  State = "paused"
)

// ErrInvalidState is returned when an operation is attempted from an
// incompatible state, e.g. Pause while Idle. The accumulated baseline is
// never touched on such calls.
var ErrInvalidState = errors.New("invalid timer state")

// Timer is a stopwatch with pause/resume support. Elapsed time is always
// re-derived from absolute clock readings: the accumulated baseline holds
// whole seconds from completed running segments, and the current segment
// contributes now minus its start. Nothing increments per tick, so missed
// display refreshes (a suspended terminal, a backgrounded process) cannot
// drift the result.
//
// A Timer is owned by a single flow of control and is not safe for
// concurrent use.
type Timer struct {
	clock Clock
	state State

	// segmentStart marks the beginning of the current running segment.
	// Only meaningful while Running.
	segmentStart time.Time

	// baselineSec accumulates whole seconds from running segments that
	// ended in a Pause. Frozen while Paused, zero while Idle.
	baselineSec int
}

// New creates an idle Timer reading time from clock. A nil clock falls back
// to the system clock.
func New(clock Clock) *Timer {
	if clock == nil {
		clock = SystemClock()
	}
	return &Timer{clock: clock, state: StateIdle}
}

// State returns the current lifecycle state.
func (t *Timer) State() State { return t.state }

// Running reports whether the timer is actively counting.
func (t *Timer) Running() bool { return t.state == StateRunning }

// Start begins a new stopwatch run from zero. Valid only from Idle; calling
// Start while Running or Paused returns ErrInvalidState and leaves the
// accumulated time intact.
func (t *Timer) Start() error {
	if t.state != StateIdle {
		return fmt.Errorf("start from %s: %w", t.state, ErrInvalidState)
	}
	t.segmentStart = t.clock.Now()
	t.baselineSec = 0
	t.state = StateRunning
	return nil
}

// Pause freezes the stopwatch, folding the current running segment into the
// accumulated baseline. Valid only from Running.
func (t *Timer) Pause() error {
	if t.state != StateRunning {
		return fmt.Errorf("pause from %s: %w", t.state, ErrInvalidState)
	}
	t.baselineSec += t.segmentSeconds()
	t.segmentStart = time.Time{}
	t.state = StatePaused
	return nil
}

// Resume continues counting after a Pause, preserving the accumulated
// baseline. Valid only from Paused.
func (t *Timer) Resume() error {
	if t.state != StatePaused {
		return fmt.Errorf("resume from %s: %w", t.state, ErrInvalidState)
	}
	t.segmentStart = t.clock.Now()
	t.state = StateRunning
	return nil
}

// ElapsedSeconds returns the total elapsed whole seconds: the accumulated
// baseline plus, while Running, the age of the current segment. While Paused
// it returns the frozen baseline; while Idle it returns 0.
func (t *Timer) ElapsedSeconds() int {
	if t.state == StateRunning {
		return t.baselineSec + t.segmentSeconds()
	}
	return t.baselineSec
}

// Elapsed returns ElapsedSeconds as a time.Duration.
func (t *Timer) Elapsed() time.Duration {
	return time.Duration(t.ElapsedSeconds()) * time.Second
}

// Stop ends the run and returns the final elapsed seconds so the caller can
// record a session from it. The timer returns to Idle.
func (t *Timer) Stop() int {
	elapsed := t.ElapsedSeconds()
	t.Reset()
	return elapsed
}

// Reset discards all state and returns the timer to Idle. Valid from any
// state.
func (t *Timer) Reset() {
	t.segmentStart = time.Time{}
	t.baselineSec = 0
	t.state = StateIdle
}

// segmentSeconds is the floor of the current segment's age in seconds.
func (t *Timer) segmentSeconds() int {
	return int(t.clock.Now().Sub(t.segmentStart) / time.Second)
}
