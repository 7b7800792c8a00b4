package maligui

import "reflect"

// Widget is a node of the display tree. Concrete kinds embed *Base (or Base)
// and override OnPaint to draw themselves; Base.OnPaint only recurses.
//
// A widget kind may also implement Clicker to intercept clicks that reach it.
type Widget interface {
	Node() *Base
	OnPaint()
}

// ClickHandler is bound to a widget and called when a click reaches it.
// Returning false stops the click from bubbling to ancestors.
type ClickHandler func(w Widget, p Point) bool

// --- ID counter ---

// widgetIDCounter is a plain counter; all tree operations run on one goroutine.
var widgetIDCounter uint32

func nextWidgetID() uint32 {
	widgetIDCounter++
	return widgetIDCounter
}

// Base carries the state every widget shares: geometry, identity, click
// handler, owned children and the painter bound by InitPainter.
type Base struct {
	// Name is a human-readable label used in logs and debug output.
	Name string
	// ID is unique per widget, assigned at construction. Zero after Dispose.
	ID uint32

	geometry Rect
	handler  ClickHandler
	children []Widget
	painter  *Painter
	// parent is a non-owning back-reference set by AddChild.
	parent   *Base
	disposed bool
}

// NewBase returns a Base with the given name and geometry.
func NewBase(name string, geometry Rect) *Base {
	return &Base{Name: name, ID: nextWidgetID(), geometry: geometry}
}

// Node returns b itself, which lets *Base satisfy Widget on its own.
func (b *Base) Node() *Base { return b }

// Geometry returns the widget's rectangle in device coordinates.
func (b *Base) Geometry() Rect { return b.geometry }

// SetGeometry replaces the widget's rectangle. Children are not moved and an
// existing painter keeps its old clip until InitPainter runs again.
func (b *Base) SetGeometry(r Rect) { b.geometry = r }

// SetOnClick binds h as the click handler. A nil h unbinds it.
func (b *Base) SetOnClick(h ClickHandler) { b.handler = h }

// HandleClick invokes the bound handler for w, or reports true when none is
// bound. Kinds implementing Clicker call this to keep the handler semantics.
func (b *Base) HandleClick(w Widget, p Point) bool {
	if b.handler == nil {
		return true
	}
	return b.handler(w, p)
}

// Painter returns the painter created by the last InitPainter, or nil.
func (b *Base) Painter() *Painter { return b.painter }

// Parent returns the widget this one is attached to, or nil.
func (b *Base) Parent() *Base { return b.parent }

// --- Tree manipulation ---

// AddChild appends child to this widget's children, transferring ownership.
// If child already has a parent, it is removed from that parent first.
// Panics if child is nil or child is an ancestor of this widget (cycle).
func (b *Base) AddChild(child Widget) {
	if isNilWidget(child) {
		panic("maligui: cannot add nil child")
	}
	cn := child.Node()
	if cn == nil {
		panic("maligui: cannot add child without a Base")
	}
	if globalDebug {
		debugCheckDisposed(b, "AddChild (parent)")
		debugCheckDisposed(cn, "AddChild (child)")
	}
	if isAncestor(cn, b) {
		panic("maligui: adding child would create a cycle")
	}
	if cn.parent != nil {
		cn.parent.removeChildByPtr(cn)
	}
	cn.parent = b
	b.children = append(b.children, child)
	if globalDebug {
		debugCheckTreeDepth(cn)
		debugCheckChildCount(b)
	}
}

// RemoveChild detaches child from this widget without disposing it.
// Panics if child is not a child of this widget.
func (b *Base) RemoveChild(child Widget) {
	cn := child.Node()
	if cn.parent != b {
		panic("maligui: child's parent is not this widget")
	}
	b.removeChildByPtr(cn)
	cn.parent = nil
}

// RemoveChildAt removes and returns the child at the given index.
func (b *Base) RemoveChildAt(index int) Widget {
	if index < 0 || index >= len(b.children) {
		panic("maligui: child index out of range")
	}
	child := b.children[index]
	copy(b.children[index:], b.children[index+1:])
	b.children[len(b.children)-1] = nil
	b.children = b.children[:len(b.children)-1]
	child.Node().parent = nil
	return child
}

// RemoveFromParent detaches this widget from its parent.
// No-op if it has no parent.
func (b *Base) RemoveFromParent() {
	if b.parent == nil {
		return
	}
	b.parent.removeChildByPtr(b)
	b.parent = nil
}

// Children returns the child list. The returned slice MUST NOT be mutated by the caller.
func (b *Base) Children() []Widget {
	return b.children
}

// NumChildren returns the number of children.
func (b *Base) NumChildren() int {
	return len(b.children)
}

// ChildAt returns the child at the given index. Panics when index is out of range.
func (b *Base) ChildAt(index int) Widget {
	if index < 0 || index >= len(b.children) {
		panic("maligui: child index out of range")
	}
	return b.children[index]
}

// --- Painting ---

// InitPainter binds a fresh Painter to device and the current geometry, for
// this widget and then every descendant. Call it again after the device
// changes, after geometry changes, or after attaching a subtree.
func (b *Base) InitPainter(device Device) {
	if globalDebug {
		debugCheckDisposed(b, "InitPainter")
	}
	b.painter = NewPainter(device, b.geometry)
	for _, c := range b.children {
		c.Node().InitPainter(device)
	}
}

// PaintChildren calls OnPaint on every child in order, so later children
// draw over earlier ones.
func (b *Base) PaintChildren() {
	for _, c := range b.children {
		c.OnPaint()
	}
}

// OnPaint draws nothing itself and paints the children.
func (b *Base) OnPaint() {
	b.PaintChildren()
}

// --- Disposal ---

// Dispose removes this widget from its parent, marks it as disposed, and
// recursively disposes all descendants, dropping their painters and handlers.
func (b *Base) Dispose() {
	if b.disposed {
		return
	}
	b.RemoveFromParent()
	b.dispose()
}

func (b *Base) dispose() {
	b.disposed = true
	b.ID = 0
	for _, c := range b.children {
		cn := c.Node()
		cn.parent = nil
		cn.dispose()
	}
	b.children = nil
	b.parent = nil
	b.painter = nil
	b.handler = nil
}

// IsDisposed returns true if this widget has been disposed.
func (b *Base) IsDisposed() bool {
	return b.disposed
}

// --- Helpers ---

// isAncestor reports whether candidate is node or one of its ancestors.
func isAncestor(candidate, node *Base) bool {
	for p := node; p != nil; p = p.parent {
		if p == candidate {
			return true
		}
	}
	return false
}

// removeChildByPtr removes child from b.children without clearing child.parent.
func (b *Base) removeChildByPtr(child *Base) {
	for i, c := range b.children {
		if c.Node() == child {
			copy(b.children[i:], b.children[i+1:])
			b.children[len(b.children)-1] = nil
			b.children = b.children[:len(b.children)-1]
			return
		}
	}
}

// walk visits w and its descendants pre-order, stopping early if fn returns false.
func walk(w Widget, fn func(Widget) bool) bool {
	if !fn(w) {
		return false
	}
	for _, c := range w.Node().children {
		if !walk(c, fn) {
			return false
		}
	}
	return true
}

// --- Container ---

// Container groups children and optionally fills its area before painting them.
type Container struct {
	*Base
	// Background is filled over the whole geometry when its alpha is non-zero.
	Background Color
}

// NewContainer returns an empty container with a transparent background.
func NewContainer(name string, geometry Rect) *Container {
	return &Container{Base: NewBase(name, geometry)}
}

func (c *Container) OnPaint() {
	if p := c.painter; p != nil && c.Background.A != 0 {
		p.Fill(c.Background)
	}
	c.PaintChildren()
}

// isNilWidget reports whether w is nil or a nil pointer stored in the
// interface. Calling Node on the latter dereferences the embedded Base.
func isNilWidget(w Widget) bool {
	if w == nil {
		return true
	}
	v := reflect.ValueOf(w)
	return v.Kind() == reflect.Ptr && v.IsNil()
}
