package tui

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/require"

	"github.com/tormodhaugland/nv/internal/config"
	"github.com/tormodhaugland/nv/internal/fs"
)

// plainStyles renders without escape sequences so output can be compared
// as text.
func plainStyles() Styles {
	r := lipgloss.NewRenderer(io.Discard)
	r.SetColorProfile(termenv.Ascii)
	return NewStyles(r, config.DefaultStyles())
}

func tree(t *testing.T, paths ...string) string {
	t.Helper()
	root, err := fs.Canonical(t.TempDir())
	require.NoError(t, err)
	for _, p := range paths {
		full := filepath.Join(root, p)
		if strings.HasSuffix(p, "/") {
			require.NoError(t, os.MkdirAll(full, 0o755))
			continue
		}
		require.NoError(t, os.MkdirAll(filepath.Dir(full), 0o755))
		require.NoError(t, os.WriteFile(full, nil, 0o644))
	}
	return root
}
