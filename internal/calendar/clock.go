package calendar

import (
	"strings"
	"time"
	_ "time/tzdata" // zone rules must not depend on the host
)

// Clock provides the current instant.
type Clock interface {
	Now() time.Time
}

// SystemClock reads the real wall clock.
type SystemClock struct{}

func (SystemClock) Now() time.Time { return time.Now() }

// FixedClock always returns the same instant. Used by tests and by callers
// replaying a specific moment.
type FixedClock struct {
	T time.Time
}

func (c FixedClock) Now() time.Time { return c.T }

// LoadLocation loads the named zone, falling back to DefaultZone for an empty
// name.
func LoadLocation(name string) (*time.Location, error) {
	if strings.TrimSpace(name) == "" {
		name = DefaultZone
	}
	return time.LoadLocation(name)
}

// Today returns the civil date of clock.Now() in loc.
func Today(clock Clock, loc *time.Location) CivilDate {
	if clock == nil {
		clock = SystemClock{}
	}
	return CanonicalDate(clock.Now(), loc)
}

// Resolve returns override when it is a well-formed date and today otherwise.
// A malformed override is not an error: the session simply plays today.
func Resolve(override string, clock Clock, loc *time.Location) (CivilDate, bool) {
	override = strings.TrimSpace(override)
	if Valid(override) {
		return CivilDate(override), true
	}
	return Today(clock, loc), false
}
