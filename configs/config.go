package configs

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/caarlos0/env/v11"
)

// Layout holds the fixed geometry and speeds of the game. It is set once at
// startup and never changes.
type Layout struct {
	ScreenWidth  float64
	ScreenHeight float64
	PaddleMargin float64
	PaddleWidth  float64
	PaddleHeight float64
	BallRadius   float64

	// BallStep is added to the ball's x on every Step.
	BallStep float64
	// ResetThreshold stops the ball from advancing; must stay below ScreenWidth.
	ResetThreshold float64
	// PaddleStep is the vertical distance covered per key-down.
	PaddleStep float64
}

func DefaultLayout() Layout {
	return Layout{
		ScreenWidth:  800,
		ScreenHeight: 600,
		PaddleMargin: 10,
		PaddleWidth:  20,
		PaddleHeight: 100,
		BallRadius:   10,

		BallStep:       0.5,
		ResetThreshold: 380,
		PaddleStep:     10,
	}
}

// LeftPaddleX is the fixed x of the left paddle.
func (l Layout) LeftPaddleX() float64 {
	return l.PaddleMargin
}

// RightPaddleX is the fixed x of the right paddle.
func (l Layout) RightPaddleX() float64 {
	return l.ScreenWidth - l.PaddleMargin - l.PaddleWidth
}

// Config carries the host options. None of them change the simulation.
type Config struct {
	Title    string     `env:"PONG_TITLE"     envDefault:"Pong!"`
	LogLevel slog.Level `env:"PONG_LOG_LEVEL" envDefault:"INFO"`

	// TPS is the ebiten update rate of the windowed client.
	TPS int `env:"PONG_TPS" envDefault:"60"`

	// Headless runner.
	TickInterval time.Duration `env:"PONG_TICK_INTERVAL" envDefault:"16ms"`
	Frames       int           `env:"PONG_FRAMES"        envDefault:"0"`

	Layout Layout
}

// Load reads the host options from the environment.
func Load() (Config, error) {
	cfg := Config{Layout: DefaultLayout()}
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if cfg.TPS <= 0 {
		return Config{}, fmt.Errorf("invalid PONG_TPS %d: must be positive", cfg.TPS)
	}
	if cfg.TickInterval <= 0 {
		return Config{}, fmt.Errorf("invalid PONG_TICK_INTERVAL %s: must be positive", cfg.TickInterval)
	}
	if cfg.Frames < 0 {
		return Config{}, fmt.Errorf("invalid PONG_FRAMES %d: must not be negative", cfg.Frames)
	}
	return cfg, nil
}
