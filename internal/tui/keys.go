package tui

import (
	"sort"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/tormodhaugland/nv/internal/nav"
)

type binding struct {
	key.Binding
	action nav.Action
}

// KeyMap binds keys to navigator actions. Keys sharing an action share one
// binding so help lists them together.
type KeyMap struct {
	bindings []binding
}

// NewKeyMap groups a key → action table into bindings, ordered by action.
func NewKeyMap(table map[string]nav.Action) KeyMap {
	byAction := make(map[nav.Action][]string)
	for k, a := range table {
		byAction[a] = append(byAction[a], k)
	}

	actions := make([]nav.Action, 0, len(byAction))
	for a := range byAction {
		actions = append(actions, a)
	}
	sort.Slice(actions, func(i, j int) bool {
		if actions[i].Kind != actions[j].Kind {
			return actions[i].Kind < actions[j].Kind
		}
		return actions[i].N < actions[j].N
	})

	km := KeyMap{bindings: make([]binding, 0, len(actions))}
	for _, a := range actions {
		keys := byAction[a]
		sort.Slice(keys, func(i, j int) bool {
			if len(keys[i]) != len(keys[j]) {
				return len(keys[i]) < len(keys[j])
			}
			return keys[i] < keys[j]
		})
		km.bindings = append(km.bindings, binding{
			Binding: key.NewBinding(key.WithKeys(keys...), key.WithHelp(strings.Join(keys, "/"), a.String())),
			action:  a,
		})
	}
	return km
}

// Lookup returns the action bound to msg.
func (km KeyMap) Lookup(msg tea.KeyMsg) (nav.Action, bool) {
	for _, b := range km.bindings {
		if key.Matches(msg, b.Binding) {
			return b.action, true
		}
	}
	return nav.Action{}, false
}

// ShortHelp shows the primary key of every binding.
func (km KeyMap) ShortHelp() []key.Binding {
	out := make([]key.Binding, 0, len(km.bindings))
	for _, b := range km.bindings {
		keys := b.Keys()
		out = append(out, key.NewBinding(key.WithKeys(keys[0]), key.WithHelp(keys[0], b.Help().Desc)))
	}
	return out
}

func (km KeyMap) FullHelp() [][]key.Binding {
	out := make([][]key.Binding, 0, len(km.bindings))
	for _, b := range km.bindings {
		out = append(out, []key.Binding{b.Binding})
	}
	return out
}

// Row is one line of the key table.
type Row struct {
	Keys   []string
	Action nav.Action
}

func (km KeyMap) Rows() []Row {
	rows := make([]Row, 0, len(km.bindings))
	for _, b := range km.bindings {
		rows = append(rows, Row{Keys: b.Keys(), Action: b.action})
	}
	return rows
}
