// Package biztime provides business timezone handling and the clock
// capability injected into use cases.
//
// All date boundaries shown to staff (occurrence dates, "today" views,
// default widget values) are computed in the business timezone; the
// tracker serves a single office, so there is no per-user timezone.
package biztime

import (
	"fmt"
	"sync"
	"time"
)

const (
	// DefaultTimezone is the office timezone used when none is configured.
	DefaultTimezone = "Asia/Tokyo"
)

var (
	bizLocation     *time.Location
	bizLocationOnce sync.Once
	initErr         error
)

// Init initializes the business timezone. Should be called once at startup.
// If tz is empty, defaults to Asia/Tokyo.
func Init(tz string) error {
	bizLocationOnce.Do(func() {
		if tz == "" {
			tz = DefaultTimezone
		}
		bizLocation, initErr = time.LoadLocation(tz)
	})
	return initErr
}

// MustInit initializes the business timezone and panics on error.
func MustInit(tz string) {
	if err := Init(tz); err != nil {
		panic(fmt.Sprintf("failed to initialize business timezone %q: %v", tz, err))
	}
}

// Location returns the business timezone location, auto-initializing with
// the default timezone when Init was never called.
func Location() *time.Location {
	if bizLocation == nil {
		if err := Init(""); err != nil {
			panic(fmt.Sprintf("biztime: failed to auto-initialize with default timezone: %v", err))
		}
	}
	return bizLocation
}

// Clock supplies the current business time. Use cases take a Clock instead
// of calling time.Now so that "today"/"now" defaults are deterministic in
// tests.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time {
	return time.Now().In(Location())
}

// SystemClock returns a Clock backed by the wall clock in the business
// timezone.
func SystemClock() Clock {
	return systemClock{}
}

// FixedClock returns a Clock pinned to t. Intended for tests.
func FixedClock(t time.Time) Clock {
	return fixedClock{t: t}
}

type fixedClock struct {
	t time.Time
}

func (c fixedClock) Now() time.Time {
	return c.t
}

// SameDay reports whether a and b fall on the same calendar day in the
// business timezone.
func SameDay(a, b time.Time) bool {
	a = a.In(Location())
	b = b.In(Location())
	return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day()
}
