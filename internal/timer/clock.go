package timer

import "time"

// Clock supplies the current instant. The timer derives elapsed time purely
// from Clock readings, which keeps tests deterministic and makes display
// ticks irrelevant to correctness.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

// SystemClock returns a Clock backed by time.Now.
func SystemClock() Clock { return systemClock{} }
