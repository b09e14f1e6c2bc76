// Package clock abstracts wall-clock access so that the fallback timestamp
// the item generators use can be driven by a fake clock in tests.
package clock

import "time"

// Clock is the time source the item generators fall back to when a file's
// modification time is not available. The source's freshness check does not
// use it: it compares the root directory's modification times directly.
type Clock interface {
	// Now returns the current time.
	Now() time.Time
}

var (
	_ Clock = RealClock{}
	_ Clock = &SimulatedClock{}
)
