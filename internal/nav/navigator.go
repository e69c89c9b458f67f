// Package nav drives a row of panes over the filesystem. A Navigator keeps a
// focused path and a cache of panes keyed by canonical path, and resolves the
// visible panes relative to the focus by level offset: offset 0 is the focus,
// positive offsets follow the selected entry down, negative offsets walk up
// through parent directories.
package nav

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/tormodhaugland/nv/internal/fs"
	"github.com/tormodhaugland/nv/internal/pane"
)

// MinPanes is the smallest pane count that still shows a parent, the focus and
// a preview.
const MinPanes = 2

// Options configures a Navigator.
type Options struct {
	Panes  int            // visible pane count; offsets run from -(Panes-2) to +1
	Order  pane.SortOrder // applied to every pane on population
	Hide   *fs.HideList   // name filter inherited by every derived pane
	Logger *slog.Logger
}

// Placement is one visible pane after layout.
type Placement struct {
	Offset int
	Path   string
	Rect   pane.Rect
}

// Navigator owns the focus, the view cache and the layout rectangle.
type Navigator struct {
	geo   pane.Rect
	focus string
	cache *ViewCache

	panes int
	order pane.SortOrder
	log   *slog.Logger
	scans int
}

// New builds a navigator focused on dir. The start directory is scanned,
// sorted and selected immediately, and the preview and ancestor panes are
// populated. Failing to read dir is fatal.
func New(geo pane.Rect, dir string, opts Options) (*Navigator, error) {
	if opts.Panes < MinPanes {
		return nil, fmt.Errorf("pane count %d is below the minimum of %d", opts.Panes, MinPanes)
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	canonical, err := fs.Canonical(dir)
	if err != nil {
		return nil, fmt.Errorf("resolve start directory: %w", err)
	}
	if fs.KindOf(canonical) != fs.KindDir {
		return nil, fmt.Errorf("start path %s is not a directory", canonical)
	}

	n := &Navigator{
		geo:   geo,
		focus: canonical,
		cache: NewViewCache(),
		panes: opts.Panes,
		order: opts.Order,
		log:   logger,
	}

	root, err := pane.NewDirPane(geo, canonical)
	if err != nil {
		return nil, fmt.Errorf("open start directory: %w", err)
	}
	root.SetHide(opts.Hide)
	if err := n.scan(root); err != nil {
		return nil, err
	}
	root.SelectFirst()
	n.cache.Insert(pane.FromDir(root))

	n.fill()
	return n, nil
}

// MinOffset is the leftmost visible offset.
func (n *Navigator) MinOffset() int { return -(n.panes - 2) }

func (n *Navigator) Focus() string       { return n.focus }
func (n *Navigator) Cache() *ViewCache   { return n.cache }
func (n *Navigator) Geometry() pane.Rect { return n.geo }

// Scans counts directory reads, failed ones included.
func (n *Navigator) Scans() int { return n.scans }

// Focused returns the pane at offset 0.
func (n *Navigator) Focused() (pane.Pane, bool) { return n.cache.Get(n.focus) }

// FocusedDir returns the focused pane when it is a directory listing.
func (n *Navigator) FocusedDir() (*pane.DirPane, bool) {
	return n.cache.Dir(n.focus)
}

// Resolve computes the canonical path at offset relative to the focus. Forward
// steps follow the selected entry of each cached directory pane; backward steps
// take the parent directory. The cache is only read.
func (n *Navigator) Resolve(offset int) (string, bool) {
	path := n.focus
	for i := 0; i < offset; i++ {
		d, ok := n.cache.Dir(path)
		if !ok {
			return "", false
		}
		next, ok := d.SelectedTarget()
		if !ok {
			return "", false
		}
		path = next
	}
	for i := 0; i > offset; i-- {
		parent, ok := fs.Parent(path)
		if !ok {
			return "", false
		}
		path = parent
	}
	return path, true
}

// Pane returns the cached pane at offset.
func (n *Navigator) Pane(offset int) (pane.Pane, bool) {
	path, ok := n.Resolve(offset)
	if !ok {
		return pane.Pane{}, false
	}
	return n.cache.Get(path)
}

func (n *Navigator) dirAt(offset int) (*pane.DirPane, bool) {
	p, ok := n.Pane(offset)
	if !ok {
		return nil, false
	}
	return p.Dir()
}

// EnsurePopulated materialises every level between the focus and offset and
// returns how many of them are reachable, with the sign of offset. Levels
// already cached are not rescanned.
func (n *Navigator) EnsurePopulated(offset int) int {
	switch {
	case offset > 0:
		return n.populateForward(offset)
	case offset < 0:
		return n.populateBackward(offset)
	default:
		return 0
	}
}

func (n *Navigator) populateForward(offset int) int {
	for i := 1; i <= offset; i++ {
		if path, ok := n.Resolve(i); ok && n.cache.Contains(path) {
			continue
		}

		parent, ok := n.dirAt(i - 1)
		if !ok {
			return i - 1
		}
		child, ok := parent.DeriveChild()
		if !ok {
			return i - 1
		}
		if d, isDir := child.Dir(); isDir {
			if err := n.scan(d); err != nil {
				return i - 1
			}
			d.SelectFirst()
		}
		n.cache.Insert(child)
	}
	return offset
}

func (n *Navigator) populateBackward(offset int) int {
	for i := -1; i >= offset; i-- {
		child, ok := n.Pane(i + 1)
		if !ok {
			return i + 1
		}
		parentPath, ok := fs.Parent(child.Path())
		if !ok {
			return i + 1
		}
		if n.cache.Contains(parentPath) {
			continue
		}

		parent, ok := child.DeriveParent()
		if !ok {
			return i + 1
		}
		if err := n.scan(parent); err != nil {
			return i + 1
		}
		parent.SelectByName(child.Name())
		parent.EnsureSelectionVisible()
		n.cache.Insert(pane.FromDir(parent))
	}
	return offset
}

// scan reads and sorts d, counting the attempt.
func (n *Navigator) scan(d *pane.DirPane) error {
	n.scans++
	if err := d.Scan(); err != nil {
		var unreadable *pane.DirectoryUnreadableError
		if errors.As(err, &unreadable) {
			n.log.Warn("scan failed", "dir", unreadable.Path, "error", unreadable.Err)
		}
		return err
	}
	d.Sort(n.order)
	n.log.Debug("scanned", "dir", d.Dir(), "entries", d.EntryCount())
	return nil
}

// fill populates the whole visible offset range.
func (n *Navigator) fill() {
	n.EnsurePopulated(1)
	n.EnsurePopulated(n.MinOffset())
}

// Dispatch applies a to the navigator and reports whether the display changed
// and whether the program should exit.
func (n *Navigator) Dispatch(a Action) (redraw bool, quit bool) {
	switch a.Kind {
	case ActionQuit:
		return false, true
	case ActionMoveUp:
		return n.moveVertical(-a.N), false
	case ActionMoveDown:
		return n.moveVertical(a.N), false
	case ActionMoveLeft:
		return n.moveHorizontal(-a.N), false
	case ActionMoveRight:
		return n.moveHorizontal(a.N), false
	case ActionRescan:
		return n.Rescan(), false
	default:
		return false, false
	}
}

func (n *Navigator) moveVertical(delta int) bool {
	d, ok := n.FocusedDir()
	if !ok {
		return false
	}
	if d.IncrementSelection(delta) == 0 {
		return false
	}
	d.EnsureSelectionVisible()
	n.EnsurePopulated(1)
	return true
}

func (n *Navigator) moveHorizontal(levels int) bool {
	steps := n.EnsurePopulated(levels)
	if steps == 0 {
		return false
	}
	path, ok := n.Resolve(steps)
	if !ok {
		return false
	}
	n.log.Debug("focus", "from", n.focus, "to", path)
	n.focus = path
	n.fill()
	return true
}

// SelectRow puts the focused pane's cursor on a sorted row and refreshes the
// preview, the same way a vertical move does.
func (n *Navigator) SelectRow(row int) bool {
	d, ok := n.FocusedDir()
	if !ok {
		return false
	}
	if cur := d.Selection(); len(cur) > 0 && cur[0] == row {
		return false
	}
	if !d.SelectIndex(row) {
		return false
	}
	d.EnsureSelectionVisible()
	n.EnsurePopulated(1)
	return true
}

// Rescan re-reads the focused directory, keeping the cursor on the same name
// when that entry still exists.
func (n *Navigator) Rescan() bool {
	d, ok := n.FocusedDir()
	if !ok {
		return false
	}
	name, hadSelection := d.SelectedName()
	if err := n.scan(d); err != nil {
		return false
	}
	if hadSelection && !d.SelectByName(name) {
		n.log.Debug("selected entry vanished", "dir", d.Dir(), "name", name)
	}
	d.EnsureSelectionVisible()
	n.EnsurePopulated(1)
	return true
}

// SelectedPath is the path a yank copies: the selected entry of a focused
// directory, or the focused file itself.
func (n *Navigator) SelectedPath() (string, bool) {
	p, ok := n.Focused()
	if !ok {
		return "", false
	}
	if d, isDir := p.Dir(); isDir {
		return d.SelectedPath()
	}
	return p.Path(), true
}

// Resize changes the rectangle the panes are laid out in.
func (n *Navigator) Resize(geo pane.Rect) {
	n.geo = geo
	for _, pl := range n.Layout() {
		if d, ok := n.cache.Dir(pl.Path); ok {
			d.EnsureSelectionVisible()
		}
	}
}

// Layout places every resolvable visible pane left to right and writes each
// rectangle into its pane.
func (n *Navigator) Layout() []Placement {
	minOffset := n.MinOffset()
	width := max((n.geo.W-1)/n.panes, 0)

	placements := make([]Placement, 0, n.panes)
	for offset := minOffset; offset <= 1; offset++ {
		path, ok := n.Resolve(offset)
		if !ok {
			continue
		}
		p, ok := n.cache.Get(path)
		if !ok {
			continue
		}
		r := pane.NewRect(n.geo.X+(offset-minOffset)*width, n.geo.Y, width, n.geo.H)
		p.SetGeometry(r)
		placements = append(placements, Placement{Offset: offset, Path: path, Rect: r})
	}
	return placements
}

// Draw lays out and renders every visible pane onto c.
func (n *Navigator) Draw(c pane.Canvas) []Placement {
	placements := n.Layout()
	for _, pl := range placements {
		if p, ok := n.cache.Get(pl.Path); ok {
			p.Draw(c)
		}
	}
	return placements
}
