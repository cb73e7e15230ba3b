package pong

import "strings"

// Key identifies a key as the host reports it.
type Key string

const (
	KeyW       Key = "W"
	KeyS       Key = "S"
	KeyUp      Key = "Up"
	KeyDown    Key = "Down"
	KeyUnknown Key = ""
)

// PaddleMover is what OnKeyDown drives.
type PaddleMover interface {
	MovePaddle(side Side, delta float64)
}

type binding struct {
	side Side
	dir  float64
}

// W/S for the left paddle, arrows for the right. Up is negative y.
var bindings = map[Key]binding{
	KeyW:    {side: Left, dir: -1},
	KeyS:    {side: Left, dir: +1},
	KeyUp:   {side: Right, dir: -1},
	KeyDown: {side: Right, dir: +1},
}

// OnKeyDown moves one paddle by step for a bound key and does nothing for any
// other key. Repeated key-downs are not filtered.
func OnKeyDown(m PaddleMover, key Key, step float64) bool {
	b, ok := bindings[key]
	if !ok {
		return false
	}
	m.MovePaddle(b.side, b.dir*step)
	return true
}

// OnKeyDown applies a key-down with the layout's paddle step.
func (s *State) OnKeyDown(key Key) {
	OnKeyDown(s, key, s.layout.PaddleStep)
}

// ParseKey maps a key name, case-insensitively, to a bound Key. Unbound names
// yield KeyUnknown and false.
func ParseKey(name string) (Key, bool) {
	for k := range bindings {
		if strings.EqualFold(string(k), strings.TrimSpace(name)) {
			return k, true
		}
	}
	return KeyUnknown, false
}
