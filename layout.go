package maligui

// MakeGrid arranges container's children into cols x rows uniform cells,
// row-major, starting at the container's origin. padH and padV are the gaps
// between columns and between rows. Children beyond cols*rows keep their
// previous geometry; cells beyond the child count stay empty.
//
// Panics if cols or rows is not positive. Painters are not rebound; run
// InitPainter afterwards if the tree was already initialized.
func MakeGrid(container Widget, cols, rows, padH, padV int) {
	if cols <= 0 || rows <= 0 {
		panic("maligui: grid needs positive column and row counts")
	}
	n := container.Node()
	g := n.geometry
	stepH := (g.Width - padH*(cols-1)) / cols
	stepV := (g.Height - padV*(rows-1)) / rows

	i := 0
	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			if i >= len(n.children) {
				return
			}
			n.children[i].Node().SetGeometry(Rect{
				X:      g.X + col*(stepH+padH),
				Y:      g.Y + row*(stepV+padV),
				Width:  stepH,
				Height: stepV,
			})
			i++
		}
	}
	if extra := len(n.children) - i; extra > 0 {
		Logger().Debug("grid overflow", "widget", n.Name, "unplaced", extra)
	}
}
