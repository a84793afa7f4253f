// Package clock injects the time source so expiry checks are testable.
package clock

import "time"

// Clocker is the time source. Code that reasons about credential expiry must
// take it as a dependency instead of calling time.Now directly.
type Clocker interface {
	Now() time.Time
}

// TimeClocker is the production clock backed by the system time.
type TimeClocker struct{}

// New returns the production clock.
func New() *TimeClocker {
	return &TimeClocker{}
}

// Now returns the current system time.
func (*TimeClocker) Now() time.Time {
	return time.Now()
}
