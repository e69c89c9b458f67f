package fs

import (
	"fmt"

	"github.com/gobwas/glob"
)

// BuiltinHides contains common clutter that is hidden when HideOptions.Builtin is set.
var BuiltinHides = []string{
	// === VCS ===
	".git",
	".hg",
	".svn",

	// === Editors ===
	"*.swp", // Vim swap
	"*.swo", // Vim swap
	"*~",    // Emacs backup

	// === Caches ===
	"__pycache__",
	"*.pyc",
	".cache",

	// === OS artifacts ===
	".DS_Store",
	"Thumbs.db",
	"Desktop.ini",
}

// HideOptions configures how the hide list is built.
type HideOptions struct {
	// Patterns are glob patterns matched against entry names.
	Patterns []string
	// Remove drops patterns from the built-in set.
	Remove []string
	// Builtin enables BuiltinHides.
	Builtin bool
}

// HideList is a compiled set of name patterns. A nil *HideList hides nothing.
type HideList struct {
	Patterns []string
	globs    []glob.Glob
}

// BuildHideList computes and compiles the effective hide list.
func BuildHideList(opts HideOptions) (*HideList, error) {
	patterns := make([]string, 0, len(BuiltinHides)+len(opts.Patterns))

	removeSet := make(map[string]bool, len(opts.Remove))
	for _, p := range opts.Remove {
		removeSet[p] = true
	}

	if opts.Builtin {
		for _, p := range BuiltinHides {
			if !removeSet[p] {
				patterns = append(patterns, p)
			}
		}
	}
	patterns = append(patterns, opts.Patterns...)
	patterns = dedupePatterns(patterns)

	list := &HideList{Patterns: patterns, globs: make([]glob.Glob, 0, len(patterns))}
	for _, p := range patterns {
		g, err := glob.Compile(p)
		if err != nil {
			return nil, fmt.Errorf("invalid hide pattern %q: %w", p, err)
		}
		list.globs = append(list.globs, g)
	}

	return list, nil
}

// Hides reports whether name matches any pattern.
func (h *HideList) Hides(name string) bool {
	if h == nil {
		return false
	}
	for _, g := range h.globs {
		if g.Match(name) {
			return true
		}
	}
	return false
}

// dedupePatterns removes duplicate patterns while preserving order.
func dedupePatterns(patterns []string) []string {
	seen := make(map[string]bool, len(patterns))
	result := make([]string, 0, len(patterns))

	for _, p := range patterns {
		if !seen[p] {
			seen[p] = true
			result = append(result, p)
		}
	}

	return result
}
