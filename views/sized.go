package views

import "github.com/lixenwraith/termkit/vec"

// Sized wraps a view and remembers the size it was last laid out with,
// for parents that need child geometry at draw time
type Sized struct {
	View
	size vec.Vec2
}

// WithSize wraps a view in a size recorder
func WithSize(v View) *Sized {
	return &Sized{View: v}
}

// Layout records the size before passing it through
func (s *Sized) Layout(size vec.Vec2) {
	s.size = size
	s.View.Layout(size)
}

// Size returns the last size given to Layout
func (s *Sized) Size() vec.Vec2 {
	return s.size
}
