package loop

import "time"

// Clock reports elapsed seconds since its previous sample.
type Clock interface {
	Delta() float64
}

// resetter is implemented by clocks that can drop time accumulated before
// the loop starts.
type resetter interface {
	Reset()
}

// WallClock is a Clock backed by the system monotonic clock.
type WallClock struct {
	now  func() time.Time
	last time.Time
}

// NewWallClock starts a clock at the current time.
func NewWallClock() *WallClock {
	return newWallClock(time.Now)
}

func newWallClock(now func() time.Time) *WallClock {
	return &WallClock{now: now, last: now()}
}

// Delta returns the seconds since the previous call, or since creation for
// the first call. Backwards steps report zero.
func (c *WallClock) Delta() float64 {
	t := c.now()
	dt := t.Sub(c.last).Seconds()
	c.last = t
	if dt < 0 {
		return 0
	}
	return dt
}

// Reset restarts the measurement from now, dropping the time since the
// previous sample.
func (c *WallClock) Reset() {
	c.last = c.now()
}
