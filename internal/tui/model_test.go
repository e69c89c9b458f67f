package tui

import (
	"errors"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tormodhaugland/nv/internal/config"
	"github.com/tormodhaugland/nv/internal/nav"
	"github.com/tormodhaugland/nv/internal/pane"
)

func newTestModel(t *testing.T, dir string) Model {
	t.Helper()
	cfg := config.DefaultConfig()
	cfg.Width = 31
	cfg.Height = 4

	n, err := nav.New(pane.NewRect(0, 0, cfg.Width, cfg.Height), dir, nav.Options{Panes: cfg.Panes})
	require.NoError(t, err)
	return New(n, cfg, plainStyles(), Options{})
}

func send(t *testing.T, m Model, msgs ...tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	var cmd tea.Cmd
	for _, msg := range msgs {
		var next tea.Model
		next, cmd = m.Update(msg)
		m = next.(Model)
	}
	return m, cmd
}

func selectedName(t *testing.T, m Model) string {
	t.Helper()
	d, ok := m.nav.FocusedDir()
	require.True(t, ok)
	name, _ := d.SelectedName()
	return name
}

func TestModelMoves(t *testing.T) {
	root := tree(t, "a/bin/x", "a/cmd/", "a/go.mod")
	a := filepath.Join(root, "a")
	m := newTestModel(t, a)

	view := m.View()
	assert.Contains(t, view, "bin")
	assert.Contains(t, view, "go.mod")
	assert.Contains(t, view, "x", "preview of the selected directory")

	m, _ = send(t, m, runeKey('j'))
	assert.Equal(t, "cmd", selectedName(t, m))

	m, _ = send(t, m, runeKey('k'), runeKey('l'))
	assert.Equal(t, filepath.Join(a, "bin"), m.nav.Focus())

	m, _ = send(t, m, runeKey('h'))
	assert.Equal(t, a, m.nav.Focus())
	assert.Equal(t, "bin", selectedName(t, m))
}

func TestModelQuitClearsView(t *testing.T) {
	m := newTestModel(t, tree(t, "f"))

	m, cmd := send(t, m, runeKey('q'))
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
	assert.Empty(t, m.View())
}

func TestModelFind(t *testing.T) {
	root := tree(t, "a/alpha", "a/beta", "a/gamma.go")
	a := filepath.Join(root, "a")
	m := newTestModel(t, a)

	m, _ = send(t, m, runeKey('/'))
	require.True(t, m.find.active)
	assert.Contains(t, m.View(), "/")
	assert.Equal(t, m.styles.Prompt, m.find.input.PromptStyle, "prompt uses the styling table")

	m, _ = send(t, m, runeKey('g'), runeKey('o'))
	assert.Equal(t, "gamma.go", selectedName(t, m))
	got, _ := m.nav.Resolve(1)
	assert.Equal(t, filepath.Join(a, "gamma.go"), got)

	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.False(t, m.find.active)
	assert.Equal(t, "alpha", selectedName(t, m), "esc restores the selection")

	m, _ = send(t, m, runeKey('/'), runeKey('b'), tea.KeyMsg{Type: tea.KeyEnter})
	assert.False(t, m.find.active)
	assert.Equal(t, "beta", selectedName(t, m), "enter keeps the match")

	// keys go to the prompt while it is open
	m, _ = send(t, m, runeKey('/'), runeKey('q'))
	assert.True(t, m.find.active)
	assert.False(t, m.quitting)
}

func TestModelYank(t *testing.T) {
	root := tree(t, "a/file.txt")
	a := filepath.Join(root, "a")
	m := newTestModel(t, a)

	var copied string
	m.copy = func(s string) error {
		copied = s
		return nil
	}
	m, _ = send(t, m, runeKey('y'))
	assert.Equal(t, filepath.Join(a, "file.txt"), copied)
	assert.Contains(t, m.View(), "copied ")

	m.copy = func(string) error { return errors.New("no clipboard") }
	m, _ = send(t, m, runeKey('y'))
	assert.True(t, m.statusErr)
	assert.Contains(t, m.View(), "no clipboard")

	m, _ = send(t, m, runeKey('j'))
	assert.Contains(t, m.View(), "no clipboard", "a move that changes nothing keeps the status")
}

func TestModelHelpToggle(t *testing.T) {
	m := newTestModel(t, tree(t, "f"))
	before := m.View()

	m, _ = send(t, m, runeKey('?'))
	view := m.View()
	assert.Contains(t, view, "quit")
	assert.Greater(t, strings.Count(view, "\n"), strings.Count(before, "\n"))

	m, _ = send(t, m, runeKey('?'))
	assert.Equal(t, before, m.View())
}

func TestModelResize(t *testing.T) {
	m := newTestModel(t, tree(t, "f"))

	m, _ = send(t, m, tea.WindowSizeMsg{Width: 20, Height: 3})
	assert.Equal(t, pane.NewRect(0, 0, 20, 2), m.nav.Geometry())

	m, _ = send(t, m, tea.WindowSizeMsg{Width: 200, Height: 50})
	assert.Equal(t, pane.NewRect(0, 0, 31, 4), m.nav.Geometry(), "inline mode keeps the configured size")

	m.fullscreen = true
	m, _ = send(t, m, tea.WindowSizeMsg{Width: 200, Height: 50})
	assert.Equal(t, pane.NewRect(0, 0, 200, 49), m.nav.Geometry())
}
