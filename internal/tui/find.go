package tui

import (
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/lipgloss"
	"github.com/sahilm/fuzzy"
)

// finder is the fuzzy find prompt. While active, edits move the focused
// pane's cursor to the best match; cancelling puts it back on restore.
type finder struct {
	input   textinput.Model
	active  bool
	names   []string
	restore int
}

func newFinder(prompt lipgloss.Style) finder {
	ti := textinput.New()
	ti.Prompt = "/"
	ti.PromptStyle = prompt
	ti.Placeholder = "find"
	ti.CharLimit = 256
	ti.Width = 40
	return finder{input: ti}
}

// best returns the row of the best fuzzy match for the current query. An
// empty query matches the row the prompt was opened on.
func (f finder) best() (int, bool) {
	query := f.input.Value()
	if query == "" {
		return f.restore, true
	}
	matches := fuzzy.Find(query, f.names)
	if len(matches) == 0 {
		return 0, false
	}
	return matches[0].Index, true
}
