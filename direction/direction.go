// Package direction describes where focus comes from when a view is
// asked to take it: a physical direction (the user pressed Down above
// us) or a relative end of the tab order (Front/Back).
package direction

// Direction is a focus entry direction
type Direction uint8

const (
	// None means focus was assigned programmatically
	None Direction = iota

	// Absolute directions: focus moved from the given side
	Left
	Right
	Up
	Down

	// Relative directions: focus entered from an end of the tab order
	Front // Tab from the previous view
	Back  // Shift+Tab from the next view
)

// FromUp is the direction of focus entering from above (Down pressed)
func FromUp() Direction { return Up }

// FromDown is the direction of focus entering from below (Up pressed)
func FromDown() Direction { return Down }

// FromFront is the direction of focus entering at the front of the tab order
func FromFront() Direction { return Front }

// FromBack is the direction of focus entering at the back of the tab order
func FromBack() Direction { return Back }

// Relative returns true for tab-order directions
func (d Direction) Relative() bool {
	return d == Front || d == Back
}
