package mt19937

import "time"

// Clock supplies the current time for time-based seeding.
type Clock interface {
	Now() time.Time
}

// ClockFunc adapts a function to a Clock.
type ClockFunc func() time.Time

// Now calls f.
func (f ClockFunc) Now() time.Time { return f() }

// SystemClock reads the wall clock.
var SystemClock Clock = ClockFunc(time.Now)

// TimeSeed derives a scalar seed from c: milliseconds since the Unix epoch,
// truncated to the low 32 bits.
func TimeSeed(c Clock) uint32 {
	return uint32(c.Now().UnixMilli())
}

// NewFromClock returns a generator seeded with TimeSeed(c).
func NewFromClock(c Clock) *Generator {
	return New(TimeSeed(c))
}

// NewTimeSeeded returns a generator seeded from the wall clock.
// The sequence is not reproducible; pass an explicit seed to New when it
// must be.
func NewTimeSeeded() *Generator {
	return NewFromClock(SystemClock)
}
