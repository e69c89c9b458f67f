package pane

import (
	"slices"
	"sort"

	"github.com/tormodhaugland/nv/internal/fs"
)

// SortOrder selects the comparator used by DirPane.Sort.
type SortOrder int

const (
	SortByName    SortOrder = iota // lexicographic on file name
	SortDirsFirst                  // directories before everything else, then by name
)

// String returns the config spelling of the order.
func (o SortOrder) String() string {
	switch o {
	case SortByName:
		return "name"
	case SortDirsFirst:
		return "dirs-first"
	default:
		return "unknown"
	}
}

// ParseSortOrder is the inverse of SortOrder.String.
func ParseSortOrder(s string) (SortOrder, bool) {
	switch s {
	case "", "name":
		return SortByName, true
	case "dirs-first":
		return SortDirsFirst, true
	default:
		return SortByName, false
	}
}

// DirPane is the listing of one directory: its entries in scan order, a sort
// permutation over them, a selection and a scroll offset.
//
// Selection values live in sorted-index space: sel[k] is a row of the current
// display order, and sel[0] is the primary cursor.
type DirPane struct {
	geo    Rect
	dir    string
	hide   *fs.HideList
	scroll int

	entries []fs.Entry // scan order; index = original index
	sorted  []int      // permutation of 0..len(entries)
	sel     []int
}

// NewDirPane creates an unscanned pane for dir. The path is canonicalised.
func NewDirPane(geo Rect, dir string) (*DirPane, error) {
	canonical, err := fs.Canonical(dir)
	if err != nil {
		return nil, err
	}
	return &DirPane{
		geo: geo,
		dir: canonical,
		sel: []int{0},
	}, nil
}

// SetHide installs the name filter used by Scan. Derived panes inherit it.
func (d *DirPane) SetHide(h *fs.HideList) { d.hide = h }

// Scan replaces the entries with the directory's current children and resets
// the sort to scan order. On failure the previous entries are kept.
func (d *DirPane) Scan() error {
	entries, err := fs.ReadDir(d.dir, d.hide)
	if err != nil {
		return &DirectoryUnreadableError{Path: d.dir, Err: err}
	}

	d.entries = entries
	if len(d.sel) == 0 || len(entries) <= slices.Max(d.sel) {
		d.sel = []int{0}
	}

	d.sorted = make([]int, len(entries))
	for i := range d.sorted {
		d.sorted[i] = i
	}
	return nil
}

// Sort recomputes the display order. Selected entries stay selected: each
// selection is mapped to its original index before sorting and back to its
// new row afterwards.
func (d *DirPane) Sort(order SortOrder) {
	if len(d.sorted) == 0 {
		return
	}

	for i, s := range d.sel {
		d.sel[i] = d.sorted[s]
	}

	less := d.comparator(order)
	sort.SliceStable(d.sorted, func(i, j int) bool {
		return less(d.sorted[i], d.sorted[j])
	})

	rowOf := make([]int, len(d.sorted))
	for row, abs := range d.sorted {
		rowOf[abs] = row
	}
	for i, abs := range d.sel {
		d.sel[i] = rowOf[abs]
	}
}

// comparator returns a less function over original indices.
func (d *DirPane) comparator(order SortOrder) func(a, b int) bool {
	byName := func(a, b int) bool {
		return fs.Name(d.entries[a].Path) < fs.Name(d.entries[b].Path)
	}

	switch order {
	case SortDirsFirst:
		return func(a, b int) bool {
			aDir := d.entries[a].Kind == fs.KindDir
			bDir := d.entries[b].Kind == fs.KindDir
			if aDir != bDir {
				return aDir
			}
			return byName(a, b)
		}
	default:
		return byName
	}
}

// IncrementSelection moves the primary cursor by delta rows, clamped to the
// entry range, and returns how far it actually moved.
func (d *DirPane) IncrementSelection(delta int) int {
	if len(d.entries) == 0 || len(d.sel) == 0 {
		return 0
	}
	old := d.sel[0]
	delta = min(max(delta, -old), len(d.entries)-1-old)
	d.sel[0] = old + delta
	return delta
}

// EnsureSelectionVisible scrolls the minimum amount needed to bring the
// primary cursor into [scroll, scroll+height).
func (d *DirPane) EnsureSelectionVisible() {
	if len(d.entries) == 0 || len(d.sel) == 0 || d.geo.H <= 0 {
		return
	}

	y := d.sel[0] - d.scroll
	switch {
	case y >= d.geo.H:
		d.scroll += y - d.geo.H + 1
	case y < 0:
		d.scroll += y
	}
}

// SelectFirst puts the primary cursor on the first row.
func (d *DirPane) SelectFirst() {
	if len(d.sel) > 0 && len(d.sorted) > 0 {
		d.sel[0] = 0
	}
}

// SelectByName puts the primary cursor on the entry called name. When no such
// entry exists the selection is left alone and false is returned.
func (d *DirPane) SelectByName(name string) bool {
	if len(d.sel) == 0 {
		return false
	}
	for row, abs := range d.sorted {
		if fs.Name(d.entries[abs].Path) == name {
			d.sel[0] = row
			return true
		}
	}
	return false
}

// SelectIndex puts the primary cursor on a sorted row.
func (d *DirPane) SelectIndex(row int) bool {
	if len(d.sel) == 0 || row < 0 || row >= len(d.sorted) {
		return false
	}
	d.sel[0] = row
	return true
}

func (d *DirPane) selected() (fs.Entry, bool) {
	if len(d.sel) == 0 || d.sel[0] >= len(d.sorted) {
		return fs.Entry{}, false
	}
	return d.entries[d.sorted[d.sel[0]]], true
}

// SelectedPath returns the path of the entry under the primary cursor.
func (d *DirPane) SelectedPath() (string, bool) {
	e, ok := d.selected()
	return e.Path, ok
}

// SelectedTarget is SelectedPath with symlinks resolved.
func (d *DirPane) SelectedTarget() (string, bool) {
	e, ok := d.selected()
	return e.Target, ok
}

// SelectedName returns the file name of the entry under the primary cursor.
func (d *DirPane) SelectedName() (string, bool) {
	e, ok := d.selected()
	if !ok {
		return "", false
	}
	return fs.Name(e.Path), true
}

func (d *DirPane) Dir() string          { return d.dir }
func (d *DirPane) Name() string         { return fs.Name(d.dir) }
func (d *DirPane) EntryCount() int      { return len(d.entries) }
func (d *DirPane) Scroll() int          { return d.scroll }
func (d *DirPane) Geometry() Rect       { return d.geo }
func (d *DirPane) SetGeometry(geo Rect) { d.geo = geo }

// Selection returns a copy of the selection, primary cursor first.
func (d *DirPane) Selection() []int { return slices.Clone(d.sel) }

// SortedIndices returns a copy of the current permutation.
func (d *DirPane) SortedIndices() []int { return slices.Clone(d.sorted) }

// Names returns the entry names in display order.
func (d *DirPane) Names() []string {
	names := make([]string, len(d.sorted))
	for row, abs := range d.sorted {
		names[row] = fs.Name(d.entries[abs].Path)
	}
	return names
}

// DeriveChild builds an unscanned pane for the selected entry. It returns
// false when nothing is selected or the entry is neither a directory nor a
// regular file.
func (d *DirPane) DeriveChild() (Pane, bool) {
	target, ok := d.SelectedTarget()
	if !ok {
		return Pane{}, false
	}

	switch fs.KindOf(target) {
	case fs.KindDir:
		child, err := NewDirPane(d.geo, target)
		if err != nil {
			return Pane{}, false
		}
		child.hide = d.hide
		return FromDir(child), true
	case fs.KindFile:
		f := NewFilePane(d.geo, target)
		f.hide = d.hide
		return FromFile(f), true
	default:
		return Pane{}, false
	}
}

// DeriveParent builds an unscanned pane for the parent directory, or false at
// the filesystem root.
func (d *DirPane) DeriveParent() (*DirPane, bool) {
	parent, ok := fs.Parent(d.dir)
	if !ok {
		return nil, false
	}
	p, err := NewDirPane(d.geo, parent)
	if err != nil {
		return nil, false
	}
	p.hide = d.hide
	return p, true
}

// Draw renders the visible rows of the listing.
func (d *DirPane) Draw(c Canvas) {
	c.Clear(d.geo)

	for row := 0; row < d.geo.H; row++ {
		i := d.scroll + row
		if i >= len(d.sorted) {
			break
		}
		e := d.entries[d.sorted[i]]

		label := LabelDirectory
		if e.Kind == fs.KindFile {
			label = LabelFile
		}
		c.Print(d.geo, row, Fit(fs.Name(e.Path), d.geo.W), label, slices.Contains(d.sel, i))
	}
}
