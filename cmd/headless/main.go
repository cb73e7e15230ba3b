package main

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"time"

	"github.com/wvoliveira/pong/configs"
	"github.com/wvoliveira/pong/internal/loop"
	"github.com/wvoliveira/pong/internal/pong"
)

// Runs the simulation without a window. Key names (W, S, Up, Down) are read
// one per line from stdin; every frame's positions are logged.
func main() {
	if err := run(os.Args[1:], os.Stdin, os.Stderr); err != nil {
		slog.Error("headless run failed", "error", err)
		os.Exit(1)
	}
}

func run(args []string, in io.Reader, out io.Writer) error {
	cfg, err := configs.Load()
	if err != nil {
		return err
	}

	fs := flag.NewFlagSet("headless", flag.ContinueOnError)
	fs.SetOutput(out)
	fs.DurationVar(&cfg.TickInterval, "tick", cfg.TickInterval, "time between frames")
	fs.IntVar(&cfg.Frames, "frames", cfg.Frames, "stop after this many frames (0 runs until interrupted)")
	fs.TextVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "log level")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if cfg.TickInterval <= 0 {
		return fmt.Errorf("invalid tick %s: must be positive", cfg.TickInterval)
	}

	logger := slog.New(slog.NewTextHandler(out, &slog.HandlerOptions{Level: cfg.LogLevel}))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	state := pong.New(cfg.Layout, pong.WithLogger(logger))
	l := loop.New(state,
		loop.WithFrames(cfg.Frames),
		loop.WithLogger(logger),
		loop.WithRender(func(frame int, snap pong.Snapshot) {
			logger.Info("frame",
				"n", frame,
				"ball_x", snap.Ball.X,
				"left_y", snap.Left.Y,
				"right_y", snap.Right.Y,
			)
		}),
	)

	keys := make(chan pong.Key, 100)
	go readKeys(ctx, in, keys, logger)

	ticker := time.NewTicker(cfg.TickInterval)
	defer ticker.Stop()

	logger.Info("headless pong running", "tick", cfg.TickInterval, "frames", cfg.Frames)
	err = l.Run(ctx, keys, ticker.C)
	if errors.Is(err, context.Canceled) {
		logger.Info("interrupted")
		return nil
	}
	return err
}

// readKeys forwards one key per input line. Unbound names are passed on
// as-is; the state ignores them.
func readKeys(ctx context.Context, in io.Reader, keys chan<- pong.Key, logger *slog.Logger) {
	defer close(keys)

	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		name := strings.TrimSpace(scanner.Text())
		if name == "" {
			continue
		}
		key, ok := pong.ParseKey(name)
		if !ok {
			logger.Debug("unbound key", "name", name)
			key = pong.Key(name)
		}
		select {
		case keys <- key:
		case <-ctx.Done():
			return
		}
	}
	if err := scanner.Err(); err != nil {
		logger.Error("error reading keys", "error", err)
	}
}
