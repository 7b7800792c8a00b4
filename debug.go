package maligui

import "fmt"

// debugCheckDisposed panics with a descriptive message when a disposed widget
// is used in a tree operation. Only called in debug mode.
func debugCheckDisposed(b *Base, op string) {
	if b.disposed {
		panic(fmt.Sprintf("maligui debug: %s on disposed widget %q", op, b.Name))
	}
}

// debugMaxTreeDepth is the depth above which debug mode logs a warning.
const debugMaxTreeDepth = 32

func debugCheckTreeDepth(b *Base) {
	depth := 0
	for p := b; p != nil; p = p.parent {
		depth++
	}
	if depth > debugMaxTreeDepth {
		Logger().Warn("tree depth exceeds limit",
			"widget", b.Name, "depth", depth, "limit", debugMaxTreeDepth)
	}
}

// debugMaxChildCount is the child count above which debug mode logs a warning.
const debugMaxChildCount = 1000

func debugCheckChildCount(b *Base) {
	if len(b.children) > debugMaxChildCount {
		Logger().Warn("child count exceeds limit",
			"widget", b.Name, "children", len(b.children), "limit", debugMaxChildCount)
	}
}

// debugCheckTree runs the debug checks over a whole tree before it is pushed.
// Children whose geometry leaves their parent are reported too, since they
// can be painted but never clicked through the parent.
func debugCheckTree(root Widget) {
	walk(root, func(w Widget) bool {
		b := w.Node()
		debugCheckDisposed(b, "Push")
		debugCheckChildCount(b)
		if len(b.children) == 0 {
			debugCheckTreeDepth(b)
		}
		if p := b.parent; p != nil && !containsRect(p.geometry, b.geometry) {
			Logger().Warn("child outside parent geometry",
				"widget", b.Name, "parent", p.Name)
		}
		return true
	})
}

func containsRect(outer, inner Rect) bool {
	return inner.X >= outer.X && inner.Y >= outer.Y &&
		inner.X+inner.Width <= outer.X+outer.Width &&
		inner.Y+inner.Height <= outer.Y+outer.Height
}
