// Package vec provides the integer geometry types used by layout and
// drawing: screen-space 2-vectors and 4-sided insets.
//
// All subtraction against available space is saturating or checked;
// layout code never produces negative dimensions.
package vec

// Vec2 is a position or size in cells
type Vec2 struct {
	X, Y int
}

// New creates a Vec2
func New(x, y int) Vec2 {
	return Vec2{X: x, Y: y}
}

// Zero is the origin / empty size
var Zero = Vec2{}

// Add returns v + other
func (v Vec2) Add(other Vec2) Vec2 {
	return Vec2{X: v.X + other.X, Y: v.Y + other.Y}
}

// AddXY returns v + (x, y)
func (v Vec2) AddXY(x, y int) Vec2 {
	return Vec2{X: v.X + x, Y: v.Y + y}
}

// SaturatingSub returns v − other, clamping each axis at zero
func (v Vec2) SaturatingSub(other Vec2) Vec2 {
	return Vec2{X: saturating(v.X - other.X), Y: saturating(v.Y - other.Y)}
}

// CheckedSub returns v − other and whether both axes stayed non-negative.
// On failure the returned vector is undefined and must not be used.
func (v Vec2) CheckedSub(other Vec2) (Vec2, bool) {
	if other.X > v.X || other.Y > v.Y {
		return Zero, false
	}
	return Vec2{X: v.X - other.X, Y: v.Y - other.Y}, true
}

// Min returns the axis-wise minimum of v and other
func (v Vec2) Min(other Vec2) Vec2 {
	return Vec2{X: min(v.X, other.X), Y: min(v.Y, other.Y)}
}

// Max returns the axis-wise maximum of v and other
func (v Vec2) Max(other Vec2) Vec2 {
	return Vec2{X: max(v.X, other.X), Y: max(v.Y, other.Y)}
}

// Fits returns true if a region of size other fits inside v
func (v Vec2) Fits(other Vec2) bool {
	return other.X <= v.X && other.Y <= v.Y
}

func saturating(n int) int {
	if n < 0 {
		return 0
	}
	return n
}

// Vec4 is a 4-sided inset (padding, borders)
type Vec4 struct {
	Left, Right, Top, Bottom int
}

// NewVec4 creates a Vec4 from left, right, top, bottom
func NewVec4(left, right, top, bottom int) Vec4 {
	return Vec4{Left: left, Right: right, Top: top, Bottom: bottom}
}

// Horizontal returns left + right
func (v Vec4) Horizontal() int {
	return v.Left + v.Right
}

// Vertical returns top + bottom
func (v Vec4) Vertical() int {
	return v.Top + v.Bottom
}

// Combined returns the total inset as a size: (left+right, top+bottom)
func (v Vec4) Combined() Vec2 {
	return Vec2{X: v.Horizontal(), Y: v.Vertical()}
}

// TopLeft returns the top-left corner offset
func (v Vec4) TopLeft() Vec2 {
	return Vec2{X: v.Left, Y: v.Top}
}

// BottomRight returns the bottom-right inset as an offset
func (v Vec4) BottomRight() Vec2 {
	return Vec2{X: v.Right, Y: v.Bottom}
}

// Add returns the side-wise sum of two insets
func (v Vec4) Add(other Vec4) Vec4 {
	return Vec4{
		Left:   v.Left + other.Left,
		Right:  v.Right + other.Right,
		Top:    v.Top + other.Top,
		Bottom: v.Bottom + other.Bottom,
	}
}
