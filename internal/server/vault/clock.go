package vault

import "time"

// SystemClock reads wall-clock nanoseconds at construction and advances by
// the monotonic reading afterwards, so wall-clock steps never move it back.
func SystemClock() Clock {
	start := time.Now()
	base := uint64(start.UnixNano())
	return ClockFunc(func() uint64 {
		return base + uint64(time.Since(start))
	})
}
