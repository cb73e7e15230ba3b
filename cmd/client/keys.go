package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/wvoliveira/pong/internal/pong"
)

// ebiten only reports held keys, so auto-repeat is rebuilt from how long a
// key has been down: one key-down on the first tick, then one per interval
// once the delay has passed.
// Both are expressed as fractions of a second: delay is 1/2s, interval 1/30s.
const (
	repeatDelayDivisor    = 2
	repeatIntervalDivisor = 30
)

var bound = map[ebiten.Key]pong.Key{
	ebiten.KeyW:         pong.KeyW,
	ebiten.KeyS:         pong.KeyS,
	ebiten.KeyArrowUp:   pong.KeyUp,
	ebiten.KeyArrowDown: pong.KeyDown,
}

// Scan order is fixed so simultaneous presses apply deterministically.
var scanOrder = []ebiten.Key{ebiten.KeyW, ebiten.KeyS, ebiten.KeyArrowUp, ebiten.KeyArrowDown}

type pressDurations interface {
	KeyPressDuration(key ebiten.Key) int
}

type inpututilDurations struct{}

func (inpututilDurations) KeyPressDuration(key ebiten.Key) int {
	return inpututil.KeyPressDuration(key)
}

type keyRepeater struct {
	delay    int
	interval int
}

func newKeyRepeater(tps int) *keyRepeater {
	delay := tps / repeatDelayDivisor
	if delay < 1 {
		delay = 1
	}
	interval := tps / repeatIntervalDivisor
	if interval < 1 {
		interval = 1
	}
	return &keyRepeater{delay: delay, interval: interval}
}

func (r *keyRepeater) fires(ticks int) bool {
	switch {
	case ticks <= 0:
		return false
	case ticks == 1:
		return true
	case ticks <= r.delay:
		return false
	default:
		return (ticks-r.delay)%r.interval == 0
	}
}

// KeyDowns lists the key-downs to deliver this tick.
func (r *keyRepeater) KeyDowns(d pressDurations) []pong.Key {
	var out []pong.Key
	for _, k := range scanOrder {
		if r.fires(d.KeyPressDuration(k)) {
			out = append(out, bound[k])
		}
	}
	return out
}
