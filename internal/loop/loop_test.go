package loop

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixedClock float64

func (c fixedClock) Delta() float64 { return float64(c) }

func TestStopBeforeRun(t *testing.T) {
	l := New(fixedClock(0.016), func(float64) error {
		t.Fatal("tick after Stop")
		return nil
	})
	l.Stop()
	assert.Equal(t, Stopped, l.State())
	assert.NoError(t, l.Run(context.Background()))
}

func TestStopFromTick(t *testing.T) {
	var l *Loop
	ticks := 0
	l = New(fixedClock(0.016), func(float64) error {
		ticks++
		assert.Equal(t, Running, l.State())
		if ticks == 3 {
			l.Stop()
			l.Stop()
		}
		return nil
	})

	require.NoError(t, l.Run(context.Background()))
	assert.Equal(t, 3, ticks)
	assert.Equal(t, Stopped, l.State())
}

func TestStopFromOtherGoroutine(t *testing.T) {
	started := make(chan struct{})
	var once bool
	l := New(fixedClock(0.001), func(float64) error {
		if !once {
			once = true
			close(started)
		}
		time.Sleep(time.Millisecond)
		return nil
	})

	go func() {
		<-started
		l.Stop()
	}()

	done := make(chan error, 1)
	go func() { done <- l.Run(context.Background()) }()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("loop did not stop")
	}
}

func TestContextCancelEndsRun(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	ticks := 0
	l := New(fixedClock(0.016), func(float64) error {
		ticks++
		if ticks == 2 {
			cancel()
		}
		return nil
	})

	assert.NoError(t, l.Run(ctx))
	assert.Equal(t, 2, ticks)
}

func TestErrQuitIsNotFailure(t *testing.T) {
	l := New(fixedClock(0.016), func(float64) error {
		return ErrQuit
	})
	assert.NoError(t, l.Run(context.Background()))
	assert.Equal(t, Stopped, l.State())
}

func TestTickErrorPropagates(t *testing.T) {
	boom := errors.New("boom")
	l := New(fixedClock(0.016), func(float64) error {
		return boom
	})
	assert.ErrorIs(t, l.Run(context.Background()), boom)
}

func TestRunTwice(t *testing.T) {
	var l *Loop
	l = New(fixedClock(0.016), func(float64) error {
		assert.ErrorIs(t, l.Run(context.Background()), ErrAlreadyStarted)
		return ErrQuit
	})
	require.NoError(t, l.Run(context.Background()))
	// A finished loop is not restarted.
	assert.NoError(t, l.Run(context.Background()))
}

func TestTickReceivesClockDelta(t *testing.T) {
	var got []float64
	l := New(fixedClock(0.25), func(dt float64) error {
		got = append(got, dt)
		if len(got) == 4 {
			return ErrQuit
		}
		return nil
	})
	require.NoError(t, l.Run(context.Background()))
	assert.Equal(t, []float64{0.25, 0.25, 0.25, 0.25}, got)
}

func TestRunResetsClock(t *testing.T) {
	ft := &fakeTime{t: time.Unix(1000, 0)}
	clock := newWallClock(ft.now)

	// Time spent loading between New and Run.
	var l *Loop
	var got []float64
	l = New(clock, func(dt float64) error {
		got = append(got, dt)
		ft.advance(20 * time.Millisecond)
		if len(got) == 2 {
			l.Stop()
		}
		return nil
	})
	ft.advance(3 * time.Second)

	require.NoError(t, l.Run(context.Background()))
	require.Len(t, got, 2)
	assert.InDelta(t, 0, got[0], 1e-9)
	assert.InDelta(t, 0.02, got[1], 1e-9)
}

func TestStats(t *testing.T) {
	var samples []Stats
	ticks := 0
	l := New(fixedClock(0.25), func(float64) error {
		ticks++
		if ticks > 8 {
			return ErrQuit
		}
		return nil
	})
	l.OnStats(func(s Stats) { samples = append(samples, s) })

	_, ok := l.Stats()
	assert.False(t, ok)

	require.NoError(t, l.Run(context.Background()))
	require.Len(t, samples, 2)
	assert.Equal(t, 4, samples[0].Frames)
	assert.InDelta(t, 4, samples[0].FPS, 1e-9)
	assert.Equal(t, 250*time.Millisecond, samples[0].FrameTime)

	s, ok := l.Stats()
	assert.True(t, ok)
	assert.Equal(t, samples[1], s)
}

func TestStateString(t *testing.T) {
	assert.Equal(t, "idle", Idle.String())
	assert.Equal(t, "running", Running.String())
	assert.Equal(t, "stopped", Stopped.String())
	assert.Equal(t, "unknown", State(42).String())
}
