package pane

import "github.com/mattn/go-runewidth"

// StyleLabel names an entry in the styling table.
type StyleLabel string

const (
	LabelSelected  StyleLabel = "Selected"
	LabelDirectory StyleLabel = "Directory"
	LabelFile      StyleLabel = "File"
)

// Labels lists every label the renderer must be able to style.
var Labels = []StyleLabel{LabelSelected, LabelDirectory, LabelFile}

// Canvas is the rendering surface panes draw into. Row indices are relative
// to r; implementations own styling and cursor movement.
type Canvas interface {
	// Clear blanks every cell of r.
	Clear(r Rect)
	// Print places text on row of r. text is already fitted to r.W.
	Print(r Rect, row int, text string, label StyleLabel, selected bool)
}

const ellipsis = "…"

// Fit left-justifies s in a field w cells wide, truncating with an ellipsis
// when it does not fit.
func Fit(s string, w int) string {
	if w <= 0 {
		return ""
	}
	if runewidth.StringWidth(s) > w {
		s = runewidth.Truncate(s, w, ellipsis)
	}
	return runewidth.FillRight(s, w)
}
