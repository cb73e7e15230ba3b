package main

import (
	"fmt"
	"image/color"
	"log/slog"
	"os"

	"golang.org/x/image/font/basicfont"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/wvoliveira/pong/configs"
	"github.com/wvoliveira/pong/internal/pong"
)

var background = color.RGBA{0x1a, 0x33, 0x4d, 0xff}

type Game struct {
	state  *pong.State
	keys   *keyRepeater
	width  int
	height int
}

func NewGame(cfg configs.Config, logger *slog.Logger) *Game {
	return &Game{
		state:  pong.New(cfg.Layout, pong.WithLogger(logger)),
		keys:   newKeyRepeater(cfg.TPS),
		width:  int(cfg.Layout.ScreenWidth),
		height: int(cfg.Layout.ScreenHeight),
	}
}

// Update delivers this tick's key-downs, then advances the simulation once.
func (g *Game) Update() error {
	for _, key := range g.keys.KeyDowns(inpututilDurations{}) {
		g.state.OnKeyDown(key)
	}
	g.state.Step()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(background)

	snap := g.state.Snapshot()
	fillRect(screen, snap.Left)
	fillRect(screen, snap.Right)
	vector.FillCircle(screen, float32(snap.Ball.CenterX), float32(snap.Ball.CenterY), float32(snap.Ball.Radius), color.White, true)

	msg := "Player 1: W/S  |  Player 2: Up/Down"
	op := &text.DrawOptions{}
	op.GeoM.Translate(float64(g.width)/2-float64(len(msg))*7/2, float64(g.height)-20)
	text.Draw(screen, msg, text.NewGoXFace(basicfont.Face7x13), op)
}

func fillRect(screen *ebiten.Image, r pong.Rect) {
	vector.FillRect(screen, float32(r.X), float32(r.Y), float32(r.Width), float32(r.Height), color.White, false)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.width, g.height
}

func main() {
	if err := run(); err != nil {
		slog.Error("error to run game", "error", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := configs.Load()
	if err != nil {
		return err
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.LogLevel}))
	slog.SetDefault(logger)

	ebiten.SetWindowSize(int(cfg.Layout.ScreenWidth), int(cfg.Layout.ScreenHeight))
	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetTPS(cfg.TPS)

	logger.Info("starting pong", "tps", cfg.TPS)
	if err := ebiten.RunGame(NewGame(cfg, logger)); err != nil {
		return fmt.Errorf("run game: %w", err)
	}
	return nil
}
