package pane

import "github.com/tormodhaugland/nv/internal/fs"

// FilePane stands in for a regular file. It has no entries; content viewing
// is left to other tools.
type FilePane struct {
	geo    Rect
	path   string
	hide   *fs.HideList
	scroll int
}

// NewFilePane creates a pane for the file at path.
func NewFilePane(geo Rect, path string) *FilePane {
	return &FilePane{geo: geo, path: path}
}

func (f *FilePane) Path() string         { return f.path }
func (f *FilePane) Name() string         { return fs.Name(f.path) }
func (f *FilePane) Scroll() int          { return f.scroll }
func (f *FilePane) Geometry() Rect       { return f.geo }
func (f *FilePane) SetGeometry(geo Rect) { f.geo = geo }

// DeriveParent builds an unscanned pane for the directory holding the file.
func (f *FilePane) DeriveParent() (*DirPane, bool) {
	parent, ok := fs.Parent(f.path)
	if !ok {
		return nil, false
	}
	p, err := NewDirPane(f.geo, parent)
	if err != nil {
		return nil, false
	}
	p.hide = f.hide
	return p, true
}

// Draw blanks the pane's rectangle.
func (f *FilePane) Draw(c Canvas) {
	c.Clear(f.geo)
}
