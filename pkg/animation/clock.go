package animation

import "time"

// Clock provides time for a Runner. SystemClock uses wall time; tests
// inject a fake clock to control frame timing deterministically.
type Clock interface {
	Now() time.Time
}

// SystemClock reads the system time.
type SystemClock struct{}

func (SystemClock) Now() time.Time { return time.Now() }
