// Package loop drives per-frame work on the calling thread until cancelled.
package loop

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"time"

	"go.uber.org/zap"

	"github.com/Faultbox/globe/internal/logger"
)

// ErrQuit may be returned by a tick to end the loop normally.
var ErrQuit = errors.New("loop: quit")

// ErrAlreadyStarted is returned by a second call to Run.
var ErrAlreadyStarted = errors.New("loop: already started")

// State is the lifecycle state of a Loop.
type State int32

const (
	Idle State = iota
	Running
	Stopped
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Running:
		return "running"
	case Stopped:
		return "stopped"
	default:
		return "unknown"
	}
}

// TickFunc performs one frame of work. dt is the elapsed time in seconds
// since the previous frame.
type TickFunc func(dt float64) error

// Stats summarises frame timing over the last reporting window.
type Stats struct {
	Frames    int
	FPS       float64
	FrameTime time.Duration
}

// Loop runs a TickFunc once per iteration. GL and SDL calls are only valid
// on the thread that calls Run.
type Loop struct {
	clock Clock
	tick  TickFunc

	state    atomic.Int32
	stop     chan struct{}
	stopOnce sync.Once

	// StatsWindow is how much frame time is aggregated per Stats sample.
	StatsWindow float64

	stats    Stats
	frames   int
	elapsed  float64
	onStats  func(Stats)
	statsSet bool
}

// New creates an idle loop.
func New(clock Clock, tick TickFunc) *Loop {
	return &Loop{
		clock:       clock,
		tick:        tick,
		stop:        make(chan struct{}),
		StatsWindow: 1,
	}
}

// OnStats registers a callback invoked each time a stats window completes.
func (l *Loop) OnStats(fn func(Stats)) {
	l.onStats = fn
}

// State returns the current lifecycle state.
func (l *Loop) State() State {
	return State(l.state.Load())
}

// Stats returns the most recent completed stats window.
func (l *Loop) Stats() (Stats, bool) {
	return l.stats, l.statsSet
}

// Run executes ticks until Stop is called, ctx is done, or a tick fails.
// ErrQuit and cancellation end the loop with a nil error. Run may be
// called once; a loop stopped before Run returns immediately.
func (l *Loop) Run(ctx context.Context) error {
	if !l.state.CompareAndSwap(int32(Idle), int32(Running)) {
		if l.State() == Stopped {
			return nil
		}
		return ErrAlreadyStarted
	}
	defer l.state.Store(int32(Stopped))

	// Setup time between New and Run must not reach the first tick.
	if r, ok := l.clock.(resetter); ok {
		r.Reset()
	}

	logger.Debug("loop started")

	for {
		select {
		case <-ctx.Done():
			logger.Debug("loop cancelled", zap.Error(ctx.Err()))
			return nil
		case <-l.stop:
			logger.Debug("loop stopped")
			return nil
		default:
		}

		dt := l.clock.Delta()
		if err := l.tick(dt); err != nil {
			if errors.Is(err, ErrQuit) {
				logger.Debug("loop quit")
				return nil
			}
			return err
		}

		l.record(dt)
	}
}

// Stop cancels the loop. It is safe to call from any goroutine, from
// inside a tick, before Run, and more than once.
func (l *Loop) Stop() {
	l.stopOnce.Do(func() {
		close(l.stop)
	})
	l.state.CompareAndSwap(int32(Idle), int32(Stopped))
}

func (l *Loop) record(dt float64) {
	l.frames++
	l.elapsed += dt
	if l.elapsed < l.StatsWindow {
		return
	}

	l.stats = Stats{
		Frames:    l.frames,
		FPS:       float64(l.frames) / l.elapsed,
		FrameTime: time.Duration(l.elapsed / float64(l.frames) * float64(time.Second)),
	}
	l.statsSet = true
	l.frames = 0
	l.elapsed = 0

	logger.Debug("fps",
		zap.Int("frames", l.stats.Frames),
		zap.Float64("fps", l.stats.FPS),
		zap.Duration("frame_time", l.stats.FrameTime))

	if l.onStats != nil {
		l.onStats(l.stats)
	}
}
