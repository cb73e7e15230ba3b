// Package loop drives a pong.State from channels: key-downs and frame ticks
// are serialized onto the goroutine that calls Run.
package loop

import (
	"context"
	"log/slog"
	"time"

	"github.com/wvoliveira/pong/internal/pong"
)

// Sim is the part of pong.State the loop needs.
type Sim interface {
	Step()
	OnKeyDown(key pong.Key)
	Snapshot() pong.Snapshot
}

// RenderFunc receives one snapshot per frame. It must not hold on to the
// state between calls.
type RenderFunc func(frame int, snap pong.Snapshot)

type Loop struct {
	sim    Sim
	render RenderFunc
	frames int
	logger *slog.Logger
}

type Option func(*Loop)

// WithFrames stops Run after n frames. Zero means no limit.
func WithFrames(n int) Option {
	return func(l *Loop) { l.frames = n }
}

func WithRender(fn RenderFunc) Option {
	return func(l *Loop) { l.render = fn }
}

func WithLogger(logger *slog.Logger) Option {
	return func(l *Loop) {
		if logger != nil {
			l.logger = logger
		}
	}
}

func New(sim Sim, opts ...Option) *Loop {
	l := &Loop{
		sim:    sim,
		render: func(int, pong.Snapshot) {},
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Run applies key-downs as they arrive and performs exactly one Step and one
// render per tick. It returns nil once the frame limit is hit or ticks is
// closed, and ctx.Err() if ctx ends first. A closed keys channel only stops
// key intake.
func (l *Loop) Run(ctx context.Context, keys <-chan pong.Key, ticks <-chan time.Time) error {
	frame := 0
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case key, ok := <-keys:
			if !ok {
				l.logger.Debug("key input closed")
				keys = nil
				continue
			}
			l.sim.OnKeyDown(key)

		case _, ok := <-ticks:
			if !ok {
				l.logger.Info("tick source closed", "frames", frame)
				return nil
			}
			l.sim.Step()
			frame++
			l.render(frame, l.sim.Snapshot())

			if l.frames > 0 && frame >= l.frames {
				l.logger.Info("frame limit reached", "frames", frame)
				return nil
			}
		}
	}
}
