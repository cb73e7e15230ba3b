package pong

// Rect is an axis-aligned rectangle anchored at its top-left corner.
type Rect struct {
	X, Y          float64
	Width, Height float64
}

// Circle is the ball as it appears on screen.
type Circle struct {
	// X is the ball's model position, an offset from the screen centre.
	X float64

	CenterX, CenterY float64
	Radius           float64
}

// Snapshot is everything a renderer needs for one frame.
type Snapshot struct {
	Left, Right Rect
	Ball        Circle
}

// Snapshot reads the current positions without changing anything.
func (s *State) Snapshot() Snapshot {
	l := s.layout
	return Snapshot{
		Left:  Rect{X: s.left.x, Y: s.left.y, Width: l.PaddleWidth, Height: l.PaddleHeight},
		Right: Rect{X: s.right.x, Y: s.right.y, Width: l.PaddleWidth, Height: l.PaddleHeight},
		Ball: Circle{
			X:       s.ball.x,
			CenterX: l.ScreenWidth/2 + s.ball.x,
			CenterY: l.ScreenHeight / 2,
			Radius:  l.BallRadius,
		},
	}
}
