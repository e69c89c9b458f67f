package nav

import (
	"sort"

	"github.com/tormodhaugland/nv/internal/pane"
)

// ViewCache maps canonical paths to the panes materialised for them. It only
// grows: panes are added as navigation reaches them and never evicted.
type ViewCache struct {
	panes map[string]pane.Pane
}

func NewViewCache() *ViewCache {
	return &ViewCache{panes: make(map[string]pane.Pane)}
}

// Insert stores p under its own canonical path, replacing any previous pane.
func (c *ViewCache) Insert(p pane.Pane) {
	c.panes[p.Path()] = p
}

func (c *ViewCache) Get(path string) (pane.Pane, bool) {
	p, ok := c.panes[path]
	return p, ok
}

// Dir returns the directory pane cached at path.
func (c *ViewCache) Dir(path string) (*pane.DirPane, bool) {
	p, ok := c.panes[path]
	if !ok {
		return nil, false
	}
	return p.Dir()
}

func (c *ViewCache) Contains(path string) bool {
	_, ok := c.panes[path]
	return ok
}

func (c *ViewCache) Len() int { return len(c.panes) }

// Paths returns the cached keys in lexical order.
func (c *ViewCache) Paths() []string {
	paths := make([]string, 0, len(c.panes))
	for p := range c.panes {
		paths = append(paths, p)
	}
	sort.Strings(paths)
	return paths
}
