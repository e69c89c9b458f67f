package tui

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tormodhaugland/nv/internal/pane"
)

func TestScreenRender(t *testing.T) {
	s := newScreen(12, 3)
	left := pane.NewRect(0, 0, 5, 3)
	right := pane.NewRect(6, 0, 5, 3)

	s.Clear(left)
	s.Print(left, 0, pane.Fit("alpha", 5), pane.LabelDirectory, true)
	s.Print(left, 1, pane.Fit("b", 5), pane.LabelFile, false)
	s.Clear(right)
	s.Print(right, 0, pane.Fit("inside", 5), pane.LabelFile, false)

	lines := strings.Split(s.render(plainStyles()), "\n")
	assert.Len(t, lines, 3)
	assert.Equal(t, "alpha insi…", lines[0])
	assert.Equal(t, "b    ", lines[1])
	assert.Equal(t, "", lines[2])
}

func TestScreenClearDropsSpans(t *testing.T) {
	s := newScreen(10, 2)
	r := pane.NewRect(0, 0, 4, 2)
	s.Print(r, 0, "old ", pane.LabelFile, false)
	s.Clear(r)
	s.Print(r, 1, "new ", pane.LabelFile, false)

	assert.Equal(t, "\nnew ", s.render(plainStyles()))
}

func TestScreenClipsOutOfRange(t *testing.T) {
	s := newScreen(6, 1)
	r := pane.NewRect(3, 0, 5, 2)
	s.Print(r, 0, "abcde", pane.LabelFile, false)
	s.Print(r, 1, "never", pane.LabelFile, false)
	s.Print(r, -1, "never", pane.LabelFile, false)

	assert.Equal(t, "   abc", s.render(plainStyles()))
}
