package loop

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type fakeTime struct {
	t time.Time
}

func (f *fakeTime) now() time.Time { return f.t }

func (f *fakeTime) advance(d time.Duration) { f.t = f.t.Add(d) }

func TestWallClockDelta(t *testing.T) {
	ft := &fakeTime{t: time.Unix(1000, 0)}
	c := newWallClock(ft.now)

	ft.advance(16 * time.Millisecond)
	assert.InDelta(t, 0.016, c.Delta(), 1e-9)

	assert.Equal(t, 0.0, c.Delta())

	ft.advance(time.Second)
	assert.InDelta(t, 1, c.Delta(), 1e-9)
}

func TestWallClockBackwards(t *testing.T) {
	ft := &fakeTime{t: time.Unix(1000, 0)}
	c := newWallClock(ft.now)

	ft.advance(-time.Second)
	assert.Equal(t, 0.0, c.Delta())

	ft.advance(500 * time.Millisecond)
	assert.InDelta(t, 0.5, c.Delta(), 1e-9)
}

func TestWallClockReset(t *testing.T) {
	ft := &fakeTime{t: time.Unix(1000, 0)}
	c := newWallClock(ft.now)

	ft.advance(10 * time.Second)
	c.Reset()
	ft.advance(100 * time.Millisecond)
	assert.InDelta(t, 0.1, c.Delta(), 1e-9)
}
