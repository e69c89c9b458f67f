// Package pane holds the per-column state of the browser: directory listings,
// file placeholders and the closed union over them.
package pane

// Kind tags which variant a Pane holds.
type Kind int

const (
	KindNone Kind = iota
	KindDir
	KindFile
)

// Pane is a closed union of *DirPane and *FilePane. The zero value holds
// neither and answers every accessor with a zero result.
type Pane struct {
	kind Kind
	dir  *DirPane
	file *FilePane
}

// FromDir wraps a directory pane.
func FromDir(d *DirPane) Pane { return Pane{kind: KindDir, dir: d} }

// FromFile wraps a file pane.
func FromFile(f *FilePane) Pane { return Pane{kind: KindFile, file: f} }

func (p Pane) Kind() Kind { return p.kind }

// Dir returns the directory variant.
func (p Pane) Dir() (*DirPane, bool) { return p.dir, p.kind == KindDir }

// File returns the file variant.
func (p Pane) File() (*FilePane, bool) { return p.file, p.kind == KindFile }

// Path is the canonical path the pane shows.
func (p Pane) Path() string {
	switch p.kind {
	case KindDir:
		return p.dir.Dir()
	case KindFile:
		return p.file.Path()
	}
	return ""
}

// Name is the last element of Path.
func (p Pane) Name() string {
	switch p.kind {
	case KindDir:
		return p.dir.Name()
	case KindFile:
		return p.file.Name()
	}
	return ""
}

func (p Pane) Geometry() Rect {
	switch p.kind {
	case KindDir:
		return p.dir.Geometry()
	case KindFile:
		return p.file.Geometry()
	}
	return Rect{}
}

func (p Pane) SetGeometry(geo Rect) {
	switch p.kind {
	case KindDir:
		p.dir.SetGeometry(geo)
	case KindFile:
		p.file.SetGeometry(geo)
	}
}

// DeriveParent builds an unscanned pane for the containing directory.
func (p Pane) DeriveParent() (*DirPane, bool) {
	switch p.kind {
	case KindDir:
		return p.dir.DeriveParent()
	case KindFile:
		return p.file.DeriveParent()
	}
	return nil, false
}

func (p Pane) Draw(c Canvas) {
	switch p.kind {
	case KindDir:
		p.dir.Draw(c)
	case KindFile:
		p.file.Draw(c)
	}
}
