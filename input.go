package maligui

// Clicker is implemented by widget kinds that react to clicks beyond the
// bound ClickHandler (for example to show press feedback). OnClick replaces
// the default handler call; implementations normally finish with
// Base.HandleClick so the bound handler still runs.
type Clicker interface {
	OnClick(p Point) bool
}

// --- Hit testing ---

// hitChild returns the topmost child of w whose geometry contains p. Children
// are tested from last to first, the reverse of paint order, so the widget
// drawn on top receives the click. Returns nil if no child contains p.
func hitChild(w Widget, p Point) Widget {
	children := w.Node().children
	for i := len(children) - 1; i >= 0; i-- {
		if children[i].Node().geometry.Contains(p) {
			return children[i]
		}
	}
	return nil
}

// --- Propagation ---

// PropagateClick delivers a click at p to w's subtree, innermost first.
//
// The click recurses into the topmost child containing p, if any. When that
// child (or nothing) reports true, w's own handling runs: Clicker.OnClick if
// w implements it, else the bound handler, else true. A false result at any
// level stops bubbling, so ancestors above it are not invoked.
//
// w's own geometry is not tested; callers deliver to the root unconditionally.
// Handlers must not add or remove children of widgets on the active path.
func PropagateClick(w Widget, p Point) bool {
	if child := hitChild(w, p); child != nil {
		if !PropagateClick(child, p) {
			return false
		}
	}

	if c, ok := w.(Clicker); ok {
		return c.OnClick(p)
	}
	return w.Node().HandleClick(w, p)
}

// HitTest returns the deepest widget under p following the same path
// PropagateClick would take, or w itself when no child contains p.
func HitTest(w Widget, p Point) Widget {
	for {
		child := hitChild(w, p)
		if child == nil {
			return w
		}
		w = child
	}
}
