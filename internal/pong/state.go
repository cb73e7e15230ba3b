// Package pong holds the simulation state of a two-paddle game and the
// key mapping that moves the paddles. Nothing here knows about windows or
// pixels: a host calls Step once per frame, OnKeyDown for every key-down it
// receives, and reads a Snapshot to draw.
package pong

import (
	"io"
	"log/slog"

	"github.com/wvoliveira/pong/configs"
)

// Side selects one of the two paddles.
type Side int

const (
	Left Side = iota
	Right
)

func (s Side) String() string {
	switch s {
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return "unknown"
	}
}

type paddle struct {
	x float64 // fixed after construction
	y float64
}

type ball struct {
	x float64
}

// State owns the paddles and the ball. It is not safe for concurrent use;
// the host serializes every call on one goroutine.
type State struct {
	layout configs.Layout
	left   paddle
	right  paddle
	ball   ball
	logger *slog.Logger
}

type Option func(*State)

// WithLogger sets the logger used for the per-step and per-key debug trace.
func WithLogger(l *slog.Logger) Option {
	return func(s *State) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithBallX starts the ball at x instead of 0.
func WithBallX(x float64) Option {
	return func(s *State) {
		s.ball.x = x
	}
}

// New places both paddles at y=0 on their margins and the ball at x=0.
func New(layout configs.Layout, opts ...Option) *State {
	s := &State{
		layout: layout,
		left:   paddle{x: layout.LeftPaddleX()},
		right:  paddle{x: layout.RightPaddleX()},
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Step advances the ball by one fixed increment. Two independent checks run
// afterwards: at or past the reset threshold the increment is undone, and
// outside [0, ScreenWidth) the ball goes back to 0.
func (s *State) Step() {
	s.ball.x += s.layout.BallStep

	if s.ball.x >= s.layout.ResetThreshold {
		s.ball.x -= s.layout.BallStep
	}

	if s.ball.x >= s.layout.ScreenWidth || s.ball.x < 0 {
		s.ball.x = 0
	}

	s.logger.Debug("step", "ball_x", s.ball.x)
}

// MovePaddle shifts a paddle vertically. The result is not clamped, so a
// paddle can leave the screen.
func (s *State) MovePaddle(side Side, delta float64) {
	p := s.paddle(side)
	if p == nil {
		return
	}
	p.y += delta
	s.logger.Debug("paddle moved", "side", side, "y", p.y)
}

func (s *State) paddle(side Side) *paddle {
	switch side {
	case Left:
		return &s.left
	case Right:
		return &s.right
	default:
		return nil
	}
}

// BallX returns the ball's model position.
func (s *State) BallX() float64 {
	return s.ball.x
}

// PaddleY returns the vertical position of a paddle.
func (s *State) PaddleY(side Side) float64 {
	if p := s.paddle(side); p != nil {
		return p.y
	}
	return 0
}

// Layout returns the constants the state was built with.
func (s *State) Layout() configs.Layout {
	return s.layout
}
