package tui

import (
	"sort"
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/tormodhaugland/nv/internal/pane"
)

type span struct {
	x        int
	text     string
	label    pane.StyleLabel
	selected bool
}

// screen is an in-memory pane.Canvas. Panes print fitted text into it and
// render turns it into styled lines.
type screen struct {
	width  int
	height int
	rows   [][]span
}

func newScreen(width, height int) *screen {
	return &screen{
		width:  width,
		height: height,
		rows:   make([][]span, max(height, 0)),
	}
}

func (s *screen) Clear(r pane.Rect) {
	for y := r.Y; y < r.Y+r.H && y < s.height; y++ {
		if y < 0 {
			continue
		}
		kept := s.rows[y][:0]
		for _, sp := range s.rows[y] {
			if sp.x < r.X || sp.x >= r.X+r.W {
				kept = append(kept, sp)
			}
		}
		s.rows[y] = kept
	}
}

func (s *screen) Print(r pane.Rect, row int, text string, label pane.StyleLabel, selected bool) {
	y := r.Y + row
	if row < 0 || row >= r.H || y < 0 || y >= s.height {
		return
	}
	s.rows[y] = append(s.rows[y], span{x: r.X, text: text, label: label, selected: selected})
}

// render returns one line per row. Gaps between spans are filled with spaces
// and nothing is written past the screen width.
func (s *screen) render(styles Styles) string {
	lines := make([]string, s.height)
	for y, spans := range s.rows {
		sort.SliceStable(spans, func(i, j int) bool { return spans[i].x < spans[j].x })

		var b strings.Builder
		col := 0
		for _, sp := range spans {
			if sp.x < col || sp.x >= s.width {
				continue
			}
			b.WriteString(strings.Repeat(" ", sp.x-col))
			text := sp.text
			if room := s.width - sp.x; runewidth.StringWidth(text) > room {
				text = runewidth.Truncate(text, room, "")
			}
			b.WriteString(styles.For(sp.label, sp.selected).Render(text))
			col = sp.x + runewidth.StringWidth(text)
		}
		lines[y] = b.String()
	}
	return strings.Join(lines, "\n")
}
