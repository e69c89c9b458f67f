package tui

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/tormodhaugland/nv/internal/config"
	"github.com/tormodhaugland/nv/internal/fs"
	"github.com/tormodhaugland/nv/internal/nav"
	"github.com/tormodhaugland/nv/internal/pane"
)

// Options controls how the browser is presented.
type Options struct {
	Fullscreen bool
	Logger     *slog.Logger
}

// Model is the bubbletea model wrapping a Navigator.
type Model struct {
	nav    *nav.Navigator
	keys   KeyMap
	styles Styles
	help   help.Model
	find   finder
	log    *slog.Logger

	// configured region size; the terminal may shrink it
	width  int
	height int

	fullscreen bool
	showHelp   bool
	status     string
	statusErr  bool
	quitting   bool

	copy func(string) error
}

func New(n *nav.Navigator, cfg *config.Config, styles Styles, opts Options) Model {
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	h := help.New()
	h.ShowAll = true

	return Model{
		nav:        n,
		keys:       NewKeyMap(cfg.Bindings()),
		styles:     styles,
		help:       h,
		find:       newFinder(styles.Prompt),
		log:        logger,
		width:      cfg.Width,
		height:     cfg.Height,
		fullscreen: opts.Fullscreen,
		copy:       clipboard.WriteAll,
	}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, nil

	case tea.KeyMsg:
		if m.find.active {
			return m.updateFind(msg)
		}

		a, ok := m.keys.Lookup(msg)
		if !ok {
			return m, nil
		}
		m.log.Debug("action", "key", msg.String(), "action", a.String())
		return m.apply(a)
	}

	return m, nil
}

func (m Model) apply(a nav.Action) (tea.Model, tea.Cmd) {
	switch a.Kind {
	case nav.ActionQuit:
		m.quitting = true
		return m, tea.Quit

	case nav.ActionFind:
		d, ok := m.nav.FocusedDir()
		if !ok || d.EntryCount() == 0 {
			return m, nil
		}
		m.find.active = true
		m.find.names = d.Names()
		m.find.restore = d.Selection()[0]
		m.find.input.Reset()
		m.status = ""
		return m, m.find.input.Focus()

	case nav.ActionYank:
		m.yank()
		return m, nil

	case nav.ActionToggleHelp:
		m.showHelp = !m.showHelp
		return m, nil
	}

	if redraw, _ := m.nav.Dispatch(a); redraw {
		m.status = ""
	}
	return m, nil
}

func (m Model) updateFind(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "ctrl+c":
		m.nav.SelectRow(m.find.restore)
		m.closeFind()
		return m, nil
	case "enter":
		m.closeFind()
		return m, nil
	}

	var cmd tea.Cmd
	m.find.input, cmd = m.find.input.Update(msg)
	if row, ok := m.find.best(); ok {
		m.nav.SelectRow(row)
	}
	return m, cmd
}

func (m *Model) closeFind() {
	m.find.active = false
	m.find.input.Blur()
}

func (m *Model) yank() {
	path, ok := m.nav.SelectedPath()
	if !ok {
		return
	}
	if err := m.copy(path); err != nil {
		m.log.Warn("yank failed", "path", path, "error", err)
		m.status = fmt.Sprintf("yank: %v", err)
		m.statusErr = true
		return
	}
	m.status = "copied " + path
	m.statusErr = false
}

// resize fits the pane region into a terminal of w×h cells. Inline mode keeps
// the configured size unless the terminal is smaller.
func (m *Model) resize(w, h int) {
	footer := 1
	geo := pane.NewRect(0, 0, min(m.width, w), min(m.height, h-footer))
	if m.fullscreen {
		geo = pane.NewRect(0, 0, w, h-footer)
	}
	m.nav.Resize(geo)
	m.help.Width = w
}

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	geo := m.nav.Geometry()
	s := newScreen(geo.W, geo.H)
	m.nav.Draw(s)
	body := s.render(m.styles)

	var footer []string
	switch {
	case m.find.active:
		footer = append(footer, m.find.input.View())
	case m.status != "":
		style := m.styles.Status
		if m.statusErr {
			style = m.styles.Error
		}
		footer = append(footer, style.Render(m.status))
	}
	if m.showHelp {
		footer = append(footer, m.help.View(m.keys))
	}

	if len(footer) == 0 {
		return body
	}
	return lipgloss.JoinVertical(lipgloss.Left, body, strings.Join(footer, "\n"))
}

// Run starts the browser on dir and blocks until it quits. Output goes to
// stderr so stdout stays free for the caller.
func Run(cfg *config.Config, dir string, opts Options) error {
	renderer := NewRenderer(os.Stderr, cfg.Color)
	lipgloss.SetDefaultRenderer(renderer)

	hide, err := fs.BuildHideList(cfg.HideOptions())
	if err != nil {
		return err
	}

	n, err := nav.New(pane.NewRect(0, 0, cfg.Width, cfg.Height), dir, nav.Options{
		Panes:  cfg.Panes,
		Order:  cfg.SortOrder(),
		Hide:   hide,
		Logger: opts.Logger,
	})
	if err != nil {
		return err
	}

	m := New(n, cfg, NewStyles(renderer, cfg.Styles), opts)

	progOpts := []tea.ProgramOption{tea.WithOutput(os.Stderr)}
	if opts.Fullscreen {
		progOpts = append(progOpts, tea.WithAltScreen())
	}
	p := tea.NewProgram(m, progOpts...)

	_, err = p.Run()
	return err
}
