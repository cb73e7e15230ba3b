package pong

import "testing"

type move struct {
	side  Side
	delta float64
}

type recorder struct {
	moves []move
}

func (r *recorder) MovePaddle(side Side, delta float64) {
	r.moves = append(r.moves, move{side: side, delta: delta})
}

func TestOnKeyDownBindings(t *testing.T) {
	tests := []struct {
		key  Key
		want []move
	}{
		{key: KeyW, want: []move{{Left, -10}}},
		{key: KeyS, want: []move{{Left, 10}}},
		{key: KeyUp, want: []move{{Right, -10}}},
		{key: KeyDown, want: []move{{Right, 10}}},
		{key: "Q", want: nil},
		{key: "w", want: nil},
		{key: KeyUnknown, want: nil},
	}
	for _, tt := range tests {
		t.Run(string(tt.key), func(t *testing.T) {
			var r recorder
			handled := OnKeyDown(&r, tt.key, 10)
			if handled != (tt.want != nil) {
				t.Fatalf("handled = %v", handled)
			}
			if len(r.moves) != len(tt.want) {
				t.Fatalf("moves = %v, want %v", r.moves, tt.want)
			}
			for i := range tt.want {
				if r.moves[i] != tt.want[i] {
					t.Fatalf("move %d = %v, want %v", i, r.moves[i], tt.want[i])
				}
			}
		})
	}
}

func TestStateOnKeyDownW(t *testing.T) {
	s := newState(WithBallX(42))
	before := s.Snapshot()

	s.OnKeyDown(KeyW)

	after := s.Snapshot()
	if got := after.Left.Y - before.Left.Y; got != -10 {
		t.Fatalf("left y delta = %v, want -10", got)
	}
	if after.Right != before.Right || after.Ball != before.Ball {
		t.Fatalf("right paddle or ball changed: %+v -> %+v", before, after)
	}
}

func TestStateOnKeyDownDown(t *testing.T) {
	s := newState(WithBallX(42))
	before := s.Snapshot()

	s.OnKeyDown(KeyDown)

	after := s.Snapshot()
	if got := after.Right.Y - before.Right.Y; got != 10 {
		t.Fatalf("right y delta = %v, want 10", got)
	}
	if after.Left != before.Left || after.Ball != before.Ball {
		t.Fatalf("left paddle or ball changed: %+v -> %+v", before, after)
	}
}

func TestStateOnKeyDownUnmapped(t *testing.T) {
	s := newState(WithBallX(42))
	before := s.Snapshot()

	s.OnKeyDown("Q")

	if after := s.Snapshot(); after != before {
		t.Fatalf("state changed: %+v -> %+v", before, after)
	}
}

func TestStateOnKeyDownRepeats(t *testing.T) {
	s := newState()
	for i := 0; i < 5; i++ {
		s.OnKeyDown(KeyS)
	}
	if got := s.PaddleY(Left); got != 50 {
		t.Fatalf("left y = %v, want 50", got)
	}
}

func TestParseKey(t *testing.T) {
	tests := []struct {
		in   string
		want Key
		ok   bool
	}{
		{"W", KeyW, true},
		{"s", KeyS, true},
		{" up ", KeyUp, true},
		{"DOWN", KeyDown, true},
		{"q", KeyUnknown, false},
		{"", KeyUnknown, false},
	}
	for _, tt := range tests {
		got, ok := ParseKey(tt.in)
		if got != tt.want || ok != tt.ok {
			t.Errorf("ParseKey(%q) = %q, %v; want %q, %v", tt.in, got, ok, tt.want, tt.ok)
		}
	}
}
