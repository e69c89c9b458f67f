package nav

import (
	"fmt"
	"strconv"
	"strings"
)

// ActionKind enumerates what a key can ask the browser to do.
type ActionKind int

const (
	ActionNone ActionKind = iota
	ActionQuit
	ActionMoveUp
	ActionMoveDown
	ActionMoveLeft
	ActionMoveRight
	ActionRescan
	ActionFind
	ActionYank
	ActionToggleHelp
)

var actionNames = map[ActionKind]string{
	ActionQuit:       "quit",
	ActionMoveUp:     "up",
	ActionMoveDown:   "down",
	ActionMoveLeft:   "left",
	ActionMoveRight:  "right",
	ActionRescan:     "rescan",
	ActionFind:       "find",
	ActionYank:       "yank",
	ActionToggleHelp: "help",
}

// String returns the config spelling of the kind.
func (k ActionKind) String() string {
	if name, ok := actionNames[k]; ok {
		return name
	}
	return "none"
}

// counted reports whether the kind takes a step count.
func (k ActionKind) counted() bool {
	switch k {
	case ActionMoveUp, ActionMoveDown, ActionMoveLeft, ActionMoveRight:
		return true
	}
	return false
}

// Action is a kind plus a positive step count for moves.
type Action struct {
	Kind ActionKind
	N    int
}

func Quit() Action           { return Action{Kind: ActionQuit} }
func MoveUp(n int) Action    { return Action{Kind: ActionMoveUp, N: n} }
func MoveDown(n int) Action  { return Action{Kind: ActionMoveDown, N: n} }
func MoveLeft(n int) Action  { return Action{Kind: ActionMoveLeft, N: n} }
func MoveRight(n int) Action { return Action{Kind: ActionMoveRight, N: n} }

// String renders the action the way ParseAction reads it.
func (a Action) String() string {
	if a.Kind.counted() && a.N != 1 {
		return fmt.Sprintf("%s %d", a.Kind, a.N)
	}
	return a.Kind.String()
}

// ParseAction reads specs like "down", "down 5" or "quit".
func ParseAction(spec string) (Action, error) {
	fields := strings.Fields(spec)
	if len(fields) == 0 || len(fields) > 2 {
		return Action{}, fmt.Errorf("invalid action %q", spec)
	}

	var kind ActionKind
	for k, name := range actionNames {
		if name == fields[0] {
			kind = k
			break
		}
	}
	if kind == ActionNone {
		return Action{}, fmt.Errorf("unknown action %q", fields[0])
	}

	a := Action{Kind: kind}
	if !kind.counted() {
		if len(fields) == 2 {
			return Action{}, fmt.Errorf("action %q takes no count", fields[0])
		}
		return a, nil
	}

	a.N = 1
	if len(fields) == 2 {
		n, err := strconv.Atoi(fields[1])
		if err != nil || n <= 0 {
			return Action{}, fmt.Errorf("invalid count %q for action %q", fields[1], fields[0])
		}
		a.N = n
	}
	return a, nil
}
