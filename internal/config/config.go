package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/tormodhaugland/nv/internal/fs"
	"github.com/tormodhaugland/nv/internal/nav"
	"github.com/tormodhaugland/nv/internal/pane"
)

// StyleConfig describes how one style label is rendered. Colours are anything
// lipgloss accepts: ANSI numbers ("4") or hex ("#5f87ff").
type StyleConfig struct {
	Fg        string `json:"fg,omitempty"`
	Bg        string `json:"bg,omitempty"`
	Bold      bool   `json:"bold,omitempty"`
	Reverse   bool   `json:"reverse,omitempty"`
	Underline bool   `json:"underline,omitempty"`
}

type Config struct {
	Schema      int                    `json:"schema"`
	Panes       int                    `json:"panes"`
	Width       int                    `json:"width"`
	Height      int                    `json:"height"`
	Sort        string                 `json:"sort,omitempty"`
	ShowHidden  bool                   `json:"showHidden,omitempty"`
	Hide        []string               `json:"hide,omitempty"`
	BuiltinHide bool                   `json:"builtinHide,omitempty"`
	Color       string                 `json:"color,omitempty"`
	LogFile     string                 `json:"logFile,omitempty"`
	Keys        map[string]string      `json:"keys,omitempty"`
	Styles      map[string]StyleConfig `json:"styles,omitempty"`
}

const CurrentConfigSchema = 1

// Colour modes.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// Unbind removes a default key binding when used as a key's action.
const Unbind = "none"

func DefaultKeys() map[string]string {
	return map[string]string{
		"q":      "quit",
		"ctrl+c": "quit",
		"j":      "down",
		"k":      "up",
		"h":      "left",
		"l":      "right",
		"down":   "down",
		"up":     "up",
		"left":   "left",
		"right":  "right",
		"pgdown": "down 10",
		"pgup":   "up 10",
		"/":      "find",
		"y":      "yank",
		"r":      "rescan",
		"?":      "help",
	}
}

func DefaultStyles() map[string]StyleConfig {
	return map[string]StyleConfig{
		string(pane.LabelSelected):  {Reverse: true},
		string(pane.LabelDirectory): {Fg: "4", Bold: true},
		string(pane.LabelFile):      {},
	}
}

func DefaultConfig() *Config {
	return &Config{
		Schema: CurrentConfigSchema,
		Panes:  3,
		Width:  90,
		Height: 5,
		Sort:   pane.SortByName.String(),
		Color:  ColorAuto,
		Keys:   DefaultKeys(),
		Styles: DefaultStyles(),
	}
}

// Load reads the first config file that exists, layered over the defaults.
// With no file at all the defaults are returned.
func Load(configPath string) (*Config, error) {
	paths := getConfigPaths(configPath)

	for _, path := range paths {
		if path == "" {
			continue
		}

		data, err := os.ReadFile(path)
		if err != nil {
			if os.IsNotExist(err) && path != configPath {
				continue
			}
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}

		cfg, err := parse(data)
		if err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
		if err := cfg.Validate(); err != nil {
			return nil, fmt.Errorf("invalid config %s: %w", path, err)
		}
		return cfg, nil
	}

	return DefaultConfig(), nil
}

func parse(data []byte) (*Config, error) {
	var file Config
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, err
	}

	cfg := DefaultConfig()
	if file.Schema != 0 {
		cfg.Schema = file.Schema
	}
	if file.Panes != 0 {
		cfg.Panes = file.Panes
	}
	if file.Width != 0 {
		cfg.Width = file.Width
	}
	if file.Height != 0 {
		cfg.Height = file.Height
	}
	if file.Sort != "" {
		cfg.Sort = file.Sort
	}
	if file.Color != "" {
		cfg.Color = file.Color
	}
	cfg.ShowHidden = file.ShowHidden
	cfg.Hide = file.Hide
	cfg.BuiltinHide = file.BuiltinHide
	cfg.LogFile = file.LogFile

	for key, action := range file.Keys {
		if action == Unbind {
			delete(cfg.Keys, key)
			continue
		}
		cfg.Keys[key] = action
	}
	for label, style := range file.Styles {
		cfg.Styles[label] = style
	}

	cfg.expandPaths()
	return cfg, nil
}

// Locate returns the config file Load would read, or false when none exists.
func Locate(configPath string) (string, bool) {
	for _, path := range getConfigPaths(configPath) {
		if path == "" {
			continue
		}
		if _, err := os.Stat(path); err == nil {
			return path, true
		}
	}
	return "", false
}

// DefaultPath is where a new config file is written.
func DefaultPath() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "nv", "config.json")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "nv", "config.json")
}

// Save writes c to path as indented JSON, creating parent directories.
func (c *Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, append(data, '\n'), 0o644)
}

func getConfigPaths(explicit string) []string {
	home, _ := os.UserHomeDir()

	var paths []string

	if explicit != "" {
		paths = append(paths, explicit)
	}

	xdgConfig := os.Getenv("XDG_CONFIG_HOME")
	if xdgConfig != "" {
		paths = append(paths, filepath.Join(xdgConfig, "nv", "config.json"))
	}

	paths = append(paths, filepath.Join(home, ".config", "nv", "config.json"))

	return paths
}

func (c *Config) expandPaths() {
	home, _ := os.UserHomeDir()

	if len(c.LogFile) > 0 && c.LogFile[0] == '~' {
		c.LogFile = filepath.Join(home, c.LogFile[1:])
	}
}

// Validate reports every problem in the config at once.
func (c *Config) Validate() error {
	var errs []error

	if c.Schema > CurrentConfigSchema {
		errs = append(errs, fmt.Errorf("schema %d is newer than supported schema %d", c.Schema, CurrentConfigSchema))
	}
	if c.Panes < nav.MinPanes {
		errs = append(errs, fmt.Errorf("panes must be at least %d, got %d", nav.MinPanes, c.Panes))
	}
	if c.Width < 1 || c.Height < 1 {
		errs = append(errs, fmt.Errorf("width and height must be positive, got %dx%d", c.Width, c.Height))
	}
	if _, ok := pane.ParseSortOrder(c.Sort); !ok {
		errs = append(errs, fmt.Errorf("unknown sort order %q", c.Sort))
	}
	switch c.Color {
	case "", ColorAuto, ColorAlways, ColorNever:
	default:
		errs = append(errs, fmt.Errorf("color must be %s, %s or %s, got %q", ColorAuto, ColorAlways, ColorNever, c.Color))
	}
	if _, err := fs.BuildHideList(c.HideOptions()); err != nil {
		errs = append(errs, err)
	}

	for _, key := range sortedKeys(c.Keys) {
		if _, err := nav.ParseAction(c.Keys[key]); err != nil {
			errs = append(errs, fmt.Errorf("key %q: %w", key, err))
		}
	}
	for _, label := range sortedKeys(c.Styles) {
		if !isLabel(label) {
			errs = append(errs, fmt.Errorf("unknown style label %q", label))
		}
	}

	return errors.Join(errs...)
}

// SortOrder returns the parsed sort order, falling back to name order.
func (c *Config) SortOrder() pane.SortOrder {
	order, _ := pane.ParseSortOrder(c.Sort)
	return order
}

// HideOptions returns the hide list configuration. ShowHidden turns it off.
func (c *Config) HideOptions() fs.HideOptions {
	if c.ShowHidden {
		return fs.HideOptions{}
	}
	return fs.HideOptions{Patterns: c.Hide, Builtin: c.BuiltinHide}
}

// Bindings parses the key table. Keys with invalid actions are skipped; call
// Validate first to surface them.
func (c *Config) Bindings() map[string]nav.Action {
	bindings := make(map[string]nav.Action, len(c.Keys))
	for key, spec := range c.Keys {
		if a, err := nav.ParseAction(spec); err == nil {
			bindings[key] = a
		}
	}
	return bindings
}

// LogPath returns where debug logs are written.
func (c *Config) LogPath() string {
	if c.LogFile != "" {
		return c.LogFile
	}
	return DefaultLogPath()
}

func DefaultLogPath() string {
	state := os.Getenv("XDG_STATE_HOME")
	if state == "" {
		home, _ := os.UserHomeDir()
		state = filepath.Join(home, ".local", "state")
	}
	return filepath.Join(state, "nv", "nv.log")
}

func isLabel(s string) bool {
	for _, l := range pane.Labels {
		if string(l) == s {
			return true
		}
	}
	return false
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
