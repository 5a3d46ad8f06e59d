package views

// Named attaches a selector name to a view so CallOnAny can reach it
type Named struct {
	View
	name Selector
}

// NewNamed wraps a view under a selector name
func NewNamed(name Selector, v View) *Named {
	return &Named{View: v, name: name}
}

// Name returns the selector name
func (n *Named) Name() Selector {
	return n.name
}

// CallOnAny applies fn to this view on a name match, then forwards to
// the wrapped view's descendants
func (n *Named) CallOnAny(sel Selector, fn func(View)) {
	if sel == n.name {
		fn(n.View)
	}
	n.View.CallOnAny(sel, fn)
}
