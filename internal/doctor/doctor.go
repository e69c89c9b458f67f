package doctor

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/atotto/clipboard"
	"github.com/muesli/termenv"

	"github.com/tormodhaugland/nv/internal/config"
	"github.com/tormodhaugland/nv/internal/fs"
)

type Status string

const (
	StatusOK   Status = "ok"
	StatusWarn Status = "warn"
	StatusFail Status = "fail"
)

// Check is the outcome of one environment probe.
type Check struct {
	Name   string `json:"name"`
	Status Status `json:"status"`
	Detail string `json:"detail,omitempty"`
}

// Input is what the checks look at.
type Input struct {
	Config     *config.Config
	ConfigPath string // empty when no config file exists
	LoadErr    error  // from config.Load; Config holds the defaults when set
	Dir        string
	Profile    termenv.Profile
}

// Diagnose runs every check in a fixed order.
func Diagnose(in Input) []Check {
	return []Check{
		checkConfig(in),
		checkStartDir(in),
		checkLogDir(in),
		checkClipboard(),
		checkColor(in),
	}
}

// Failures counts checks that would stop nv from starting.
func Failures(checks []Check) int {
	n := 0
	for _, c := range checks {
		if c.Status == StatusFail {
			n++
		}
	}
	return n
}

func checkConfig(in Input) Check {
	c := Check{Name: "config"}
	switch {
	case in.LoadErr != nil:
		c.Status = StatusFail
		c.Detail = in.LoadErr.Error()
	case in.ConfigPath == "":
		c.Status = StatusWarn
		c.Detail = fmt.Sprintf("no config file, using defaults (create one at %s)", config.DefaultPath())
	default:
		c.Status = StatusOK
		c.Detail = in.ConfigPath
	}
	return c
}

func checkStartDir(in Input) Check {
	c := Check{Name: "directory"}

	dir, err := fs.Canonical(in.Dir)
	if err != nil {
		c.Status = StatusFail
		c.Detail = err.Error()
		return c
	}
	if fs.KindOf(dir) != fs.KindDir {
		c.Status = StatusFail
		c.Detail = dir + " is not a directory"
		return c
	}

	hide, err := fs.BuildHideList(in.Config.HideOptions())
	if err != nil {
		c.Status = StatusFail
		c.Detail = err.Error()
		return c
	}
	entries, err := fs.ReadDir(dir, hide)
	if err != nil {
		c.Status = StatusFail
		c.Detail = err.Error()
		return c
	}

	c.Status = StatusOK
	c.Detail = fmt.Sprintf("%s (%d visible entries)", dir, len(entries))
	return c
}

// checkLogDir walks up from the log directory to the first existing
// ancestor, which must be a directory for the log file to be created.
func checkLogDir(in Input) Check {
	c := Check{Name: "log file"}
	path := in.Config.LogPath()

	dir := filepath.Dir(path)
	for {
		info, err := os.Stat(dir)
		if err == nil {
			if !info.IsDir() {
				c.Status = StatusFail
				c.Detail = dir + " is not a directory"
				return c
			}
			break
		}
		parent, ok := fs.Parent(dir)
		if !ok {
			break
		}
		dir = parent
	}

	c.Status = StatusOK
	c.Detail = path
	return c
}

func checkClipboard() Check {
	if clipboard.Unsupported {
		return Check{Name: "clipboard", Status: StatusWarn, Detail: "no clipboard utility found; yank is unavailable"}
	}
	return Check{Name: "clipboard", Status: StatusOK}
}

func checkColor(in Input) Check {
	c := Check{Name: "colour", Status: StatusOK, Detail: profileName(in.Profile)}
	switch {
	case in.Config.Color == config.ColorNever:
		c.Detail = "disabled by config"
	case in.Profile == termenv.Ascii && in.Config.Color != config.ColorAlways:
		c.Status = StatusWarn
		c.Detail = "terminal reports no colour support; set \"color\": \"always\" to override"
	}
	return c
}

func profileName(p termenv.Profile) string {
	switch p {
	case termenv.TrueColor:
		return "true colour"
	case termenv.ANSI256:
		return "256 colours"
	case termenv.ANSI:
		return "16 colours"
	default:
		return "no colour"
	}
}
