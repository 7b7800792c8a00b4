// Package maligui is a small widget toolkit for embedded displays. It draws
// into any pixel sink that implements [Device] and turns presses on that
// device into clicks on a tree of widgets.
//
// # Quick start
//
// A [Stacker] owns the device and the active screen. Build a widget tree,
// push it, and the stacker paints it and routes presses to it:
//
//	dev := maligui.NewMemoryDevice(240, 320)
//	stacker := maligui.NewStacker(dev)
//
//	window := maligui.NewContainer("window", maligui.Rect{Width: 240, Height: 320})
//	ok := maligui.NewButton("ok", maligui.Rect{X: 20, Y: 20, Width: 80, Height: 30})
//	ok.SetText("OK")
//	ok.SetOnClick(func(w maligui.Widget, p maligui.Point) bool {
//		return false // handled; do not bubble
//	})
//	window.AddChild(ok)
//
//	stacker.Push(window)
//	stacker.InjectClick(30, 30)
//
// To show the same tree in a desktop window, use the ebitendev sub-package,
// whose Device also implements [ebiten.Game].
//
// # Widgets
//
// Every widget embeds [*Base], which holds geometry, the click handler, owned
// children and the [Painter] bound by [Base.InitPainter]. Concrete kinds
// ([Container], [Button], [Label]) override OnPaint to draw themselves
// before painting their children.
//
// Children paint in list order, so the last child is drawn on top. Clicks go
// the other way: [PropagateClick] tests children from last to first, recurses
// into the first hit, and runs handlers innermost first. A handler returning
// false stops the click from bubbling further.
//
// [MakeGrid] lays children out in a uniform grid inside their parent.
//
// # Fonts
//
// Text is drawn from glyph tables ([Font]) looked up by name and size in the
// process-wide registry returned by [Fonts]. The built-in registry is
// rasterized from the x/image fonts on first use; [InitFonts] replaces it
// with fonts built by [RasterizeTTF], [RasterizeFace] or [LoadBitmapFont].
// Lookups never fail: unknown fonts fall back to the default and unknown
// code points draw nothing.
//
// # Logging
//
// Nothing is logged by default. Install a [log/slog] logger with [SetLogger].
//
// [ebiten.Game]: https://pkg.go.dev/github.com/hajimehoshi/ebiten/v2#Game
package maligui
