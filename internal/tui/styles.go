package tui

import (
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/tormodhaugland/nv/internal/config"
	"github.com/tormodhaugland/nv/internal/pane"
)

// NewRenderer builds a lipgloss renderer for w. mode is one of the config
// colour modes; auto detects the profile from w.
func NewRenderer(w io.Writer, mode string) *lipgloss.Renderer {
	r := lipgloss.NewRenderer(w, termenv.WithColorCache(true))
	switch mode {
	case config.ColorAlways:
		r.SetColorProfile(termenv.TrueColor)
	case config.ColorNever:
		r.SetColorProfile(termenv.Ascii)
	}
	return r
}

// Styles is the styling table: one style per label, plus the selected
// variant of each, and the footer styles.
type Styles struct {
	labels   map[pane.StyleLabel]lipgloss.Style
	selected map[pane.StyleLabel]lipgloss.Style

	Status lipgloss.Style
	Error  lipgloss.Style
	Prompt lipgloss.Style
}

func NewStyles(r *lipgloss.Renderer, table map[string]config.StyleConfig) Styles {
	s := Styles{
		labels:   make(map[pane.StyleLabel]lipgloss.Style, len(pane.Labels)),
		selected: make(map[pane.StyleLabel]lipgloss.Style, len(pane.Labels)),
		Status:   r.NewStyle().Foreground(lipgloss.Color("241")),
		Error:    r.NewStyle().Foreground(lipgloss.Color("196")),
		Prompt:   r.NewStyle().Bold(true).Foreground(lipgloss.Color("212")),
	}

	for _, l := range pane.Labels {
		s.labels[l] = styleFrom(r, table[string(l)])
	}
	sel := s.labels[pane.LabelSelected]
	for _, l := range pane.Labels {
		s.selected[l] = sel.Inherit(s.labels[l])
	}
	return s
}

func styleFrom(r *lipgloss.Renderer, c config.StyleConfig) lipgloss.Style {
	st := r.NewStyle()
	if c.Fg != "" {
		st = st.Foreground(lipgloss.Color(c.Fg))
	}
	if c.Bg != "" {
		st = st.Background(lipgloss.Color(c.Bg))
	}
	if c.Bold {
		st = st.Bold(true)
	}
	if c.Reverse {
		st = st.Reverse(true)
	}
	if c.Underline {
		st = st.Underline(true)
	}
	return st
}

// For returns the style for an entry with label, combined with the Selected
// style when the entry is selected.
func (s Styles) For(label pane.StyleLabel, selected bool) lipgloss.Style {
	if selected {
		return s.selected[label]
	}
	return s.labels[label]
}
