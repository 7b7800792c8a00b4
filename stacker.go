package maligui

// defaultScreenshotDir is where Screenshot writes when ScreenshotDir is empty.
const defaultScreenshotDir = "screenshots"

// Stacker is the single owner of the Device and the LIFO of top-level
// widgets. Only the top widget is painted by Refresh and receives input.
// Widgets pushed here are owned by the caller; Pop does not dispose them.
type Stacker struct {
	device Device
	stack  []Widget
	input  EventDispatcher[Point]
	debug  bool

	// ScreenshotDir is the directory Screenshot writes PNG files to.
	ScreenshotDir string
}

// NewStacker takes over device's input handler. Presses are dispatched to
// Input() subscribers; the first subscriber forwards them to OnClick.
func NewStacker(device Device) *Stacker {
	s := &Stacker{device: device, ScreenshotDir: defaultScreenshotDir}
	s.input.SubscribeFunc(s.OnClick)
	device.RegisterEventHandler(s.press)
	return s
}

func (s *Stacker) press(p Point) {
	Logger().Debug("press", "x", p.X, "y", p.Y)
	if err := s.input.Dispatch(p); err != nil {
		Logger().Warn("input subscriber failed", "x", p.X, "y", p.Y, "err", err)
	}
}

// Input returns the press dispatcher. Extra subscribers run after the top
// widget has handled the click.
func (s *Stacker) Input() *EventDispatcher[Point] {
	return &s.input
}

// Device returns the owned device.
func (s *Stacker) Device() Device { return s.device }

func (s *Stacker) Width() int  { return s.device.Width() }
func (s *Stacker) Height() int { return s.device.Height() }
func (s *Stacker) Size() int   { return s.device.Size() }

// Push binds painters for w's tree to the device, paints it, and makes it the
// sole receiver of input. Panics if w is nil.
func (s *Stacker) Push(w Widget) {
	if isNilWidget(w) || w.Node() == nil {
		panic("maligui: cannot push nil widget")
	}
	if s.debug {
		debugCheckTree(w)
	}
	s.stack = append(s.stack, w)
	w.Node().InitPainter(s.device)
	w.OnPaint()
	Logger().Debug("push", "widget", w.Node().Name, "depth", len(s.stack))
}

// Pop removes and returns the top widget, then repaints the new top.
// Returns nil when the stack is empty.
func (s *Stacker) Pop() Widget {
	if len(s.stack) == 0 {
		return nil
	}
	w := s.stack[len(s.stack)-1]
	s.stack[len(s.stack)-1] = nil
	s.stack = s.stack[:len(s.stack)-1]
	Logger().Debug("pop", "widget", w.Node().Name, "depth", len(s.stack))
	s.Refresh()
	return w
}

// Top returns the active widget, or nil.
func (s *Stacker) Top() Widget {
	if len(s.stack) == 0 {
		return nil
	}
	return s.stack[len(s.stack)-1]
}

// Len returns the number of stacked widgets.
func (s *Stacker) Len() int { return len(s.stack) }

// Refresh repaints the top widget. No-op when empty.
func (s *Stacker) Refresh() {
	if top := s.Top(); top != nil {
		top.OnPaint()
	}
}

// OnClick forwards p to the top widget regardless of its geometry.
// No-op when empty.
func (s *Stacker) OnClick(p Point) {
	if top := s.Top(); top != nil {
		PropagateClick(top, p)
	}
}

// InjectClick simulates a press at (x, y) through the device, exactly as a
// real press would arrive.
func (s *Stacker) InjectClick(x, y int) {
	s.device.OnPress(Point{X: x, Y: y})
}

// Update advances every Animator in the top tree by dt seconds and repaints
// the ones that report a change. Returns the number of repainted widgets.
func (s *Stacker) Update(dt float32) int {
	top := s.Top()
	if top == nil {
		return 0
	}
	n := 0
	walk(top, func(w Widget) bool {
		if a, ok := w.(Animator); ok && a.Update(dt) {
			w.OnPaint()
			n++
		}
		return true
	})
	return n
}

// SetDebugMode enables or disables debug mode. When enabled, disposed-widget
// use panics and tree depth and child count warnings are logged.
func (s *Stacker) SetDebugMode(enabled bool) {
	s.debug = enabled
	globalDebug = enabled
}

// globalDebug mirrors the most recently set Stacker debug flag so that widget
// operations (which lack a Stacker pointer) can check it cheaply.
var globalDebug bool
