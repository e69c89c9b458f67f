package pane

// Rect is a pane's placement: origin plus size, in terminal cells.
type Rect struct {
	X, Y int
	W, H int
}

// NewRect builds a Rect, clamping negative components to zero.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: max(x, 0), Y: max(y, 0), W: max(w, 0), H: max(h, 0)}
}
