// Package refresh drives the dashboard loop: clear the screen, sample,
// render, write, sleep, until the context is cancelled.
package refresh

import (
	"context"
	"errors"
	"io"
	"sync/atomic"
	"time"

	"github.com/BotCoder254/Terminal-Decorator/internal/logger"
	"github.com/BotCoder254/Terminal-Decorator/internal/metrics"
	"github.com/muesli/termenv"
)

// DefaultInterval separates consecutive dashboard frames.
const DefaultInterval = 2 * time.Second

// ErrAlreadyRunning is returned by Run when the loop is active.
var ErrAlreadyRunning = errors.New("refresh loop already running")

// State reports whether the loop is active.
type State int32

const (
	StateIdle State = iota
	StateRunning
)

// String returns the lowercase state name.
func (s State) String() string {
	if s == StateRunning {
		return "running"
	}
	return "idle"
}

// Sampler produces metric snapshots.
type Sampler interface {
	Sample(ctx context.Context) (*metrics.Snapshot, error)
}

// FrameRenderer turns a snapshot into one dashboard frame.
type FrameRenderer interface {
	Dashboard(snap *metrics.Snapshot) string
}

// Scheduler owns the refresh loop. Frames go to a plain io.Writer so
// the loop can target the terminal, a pipe, or a test buffer alike.
type Scheduler struct {
	sampler  Sampler
	renderer FrameRenderer
	sink     io.Writer
	interval time.Duration
	title    string
	log      logger.Logger
	state    atomic.Int32
}

// NewScheduler wires a sampler and renderer to a sink. Non-positive
// intervals fall back to DefaultInterval.
func NewScheduler(sampler Sampler, renderer FrameRenderer, sink io.Writer, interval time.Duration, log logger.Logger) *Scheduler {
	if interval <= 0 {
		interval = DefaultInterval
	}
	if log == nil {
		log = logger.Noop()
	}
	return &Scheduler{
		sampler:  sampler,
		renderer: renderer,
		sink:     sink,
		interval: interval,
		log:      log,
	}
}

// WithWindowTitle sets the terminal window title once, before the
// first frame.
func (s *Scheduler) WithWindowTitle(title string) *Scheduler {
	s.title = title
	return s
}

// State returns the current loop state.
func (s *Scheduler) State() State {
	return State(s.state.Load())
}

// Interval returns the configured frame interval.
func (s *Scheduler) Interval() time.Duration {
	return s.interval
}

// Run drives the loop until ctx is cancelled. Cancellation is a clean
// stop, not an error; the cancellation check runs every iteration. A
// concurrent second Run returns ErrAlreadyRunning.
func (s *Scheduler) Run(ctx context.Context) error {
	if !s.state.CompareAndSwap(int32(StateIdle), int32(StateRunning)) {
		return ErrAlreadyRunning
	}
	defer s.state.Store(int32(StateIdle))

	out := termenv.NewOutput(s.sink)
	if s.title != "" {
		out.SetWindowTitle(s.title)
	}

	for {
		if ctx.Err() != nil {
			return nil
		}
		out.ClearScreen()
		s.renderFrame(ctx)
		if !sleepContext(ctx, s.interval) {
			return nil
		}
	}
}

// RunOnce samples and writes a single frame without clearing the
// screen or touching the window title.
func (s *Scheduler) RunOnce(ctx context.Context) error {
	snap, err := s.sampler.Sample(ctx)
	if err != nil {
		return err
	}
	_, err = io.WriteString(s.sink, s.renderer.Dashboard(snap))
	return err
}

// renderFrame runs one sample-render-write cycle. Failures are logged
// and the loop keeps its cadence.
func (s *Scheduler) renderFrame(ctx context.Context) {
	snap, err := s.sampler.Sample(ctx)
	if err != nil {
		s.log.Debug("sample skipped: %v", err)
		return
	}
	if _, err := io.WriteString(s.sink, s.renderer.Dashboard(snap)); err != nil {
		s.log.Debug("frame write failed: %v", err)
	}
}

// sleepContext waits for d, returning false when ctx is cancelled first.
func sleepContext(ctx context.Context, d time.Duration) bool {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-timer.C:
		return true
	}
}
