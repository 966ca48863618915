package clock

import "time"

// epoch anchors all readings to a process-local monotonic baseline so that
// values stay small and comparable across Clock instances.
var epoch = time.Now()

// now returns microseconds elapsed since the process epoch. time.Since
// carries the monotonic reading, so wall-clock adjustments do not leak in.
func now() int64 {
	return time.Since(epoch).Microseconds()
}

// Clock measures elapsed time in microseconds. Delta consumes the baseline,
// Split peeks at it; the two together let a frame reset its baseline exactly
// once while still taking intermediate readings.
type Clock struct {
	previous int64
}

// New returns a Clock whose baseline is the current time.
func New() *Clock {
	return &Clock{previous: now()}
}

// Delta returns microseconds elapsed since the last Delta (or New) and resets
// the baseline to now. Returns -1 if the time source went backwards.
func (c *Clock) Delta() int64 {
	t := now()
	if t < c.previous {
		return -1
	}
	d := t - c.previous
	c.previous = t
	return d
}

// Split returns microseconds elapsed since the last Delta (or New) without
// touching the baseline. Returns -1 if the time source went backwards.
func (c *Clock) Split() int64 {
	t := now()
	if t < c.previous {
		return -1
	}
	return t - c.previous
}
