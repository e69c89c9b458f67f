package tui

import (
	"os"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var (
	confirmLabelStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212"))
	confirmHintStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	confirmOnStyle    = lipgloss.NewStyle().Padding(0, 1).Reverse(true)
	confirmOffStyle   = lipgloss.NewStyle().Padding(0, 1)
)

type ConfirmResult struct {
	Confirmed bool
	Aborted   bool
}

type confirmKeys struct {
	Yes    key.Binding
	No     key.Binding
	Toggle key.Binding
	Accept key.Binding
	Abort  key.Binding
}

var confirmKeyMap = confirmKeys{
	Yes:    key.NewBinding(key.WithKeys("y", "Y")),
	No:     key.NewBinding(key.WithKeys("n", "N")),
	Toggle: key.NewBinding(key.WithKeys("left", "right", "h", "l", "tab")),
	Accept: key.NewBinding(key.WithKeys("enter")),
	Abort:  key.NewBinding(key.WithKeys("esc", "ctrl+c", "q")),
}

// confirmModel is a one-line yes/no question, answered inline.
type confirmModel struct {
	message string
	yes     bool
	done    bool
	result  ConfirmResult
}

func newConfirmModel(message string) confirmModel {
	return confirmModel{message: message, yes: true}
}

func (m confirmModel) Init() tea.Cmd {
	return nil
}

func (m confirmModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	km, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(km, confirmKeyMap.Abort):
		m.result.Aborted = true
	case key.Matches(km, confirmKeyMap.Yes):
		m.result.Confirmed = true
	case key.Matches(km, confirmKeyMap.No):
		m.result.Confirmed = false
	case key.Matches(km, confirmKeyMap.Accept):
		m.result.Confirmed = m.yes
	case key.Matches(km, confirmKeyMap.Toggle):
		m.yes = !m.yes
		return m, nil
	default:
		return m, nil
	}

	m.done = true
	return m, tea.Quit
}

func (m confirmModel) View() string {
	if m.done {
		return ""
	}

	yes, no := confirmOffStyle, confirmOnStyle
	if m.yes {
		yes, no = confirmOnStyle, confirmOffStyle
	}

	return confirmLabelStyle.Render(m.message) + " " +
		yes.Render("yes") + no.Render("no") + "  " +
		confirmHintStyle.Render("y/n • enter: confirm • esc: cancel")
}

// RunConfirm asks message on stderr and waits for an answer.
func RunConfirm(message string) (ConfirmResult, error) {
	p := tea.NewProgram(newConfirmModel(message), tea.WithOutput(os.Stderr))

	finalModel, err := p.Run()
	if err != nil {
		return ConfirmResult{Aborted: true}, err
	}

	return finalModel.(confirmModel).result, nil
}
