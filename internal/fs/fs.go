package fs

import (
	"os"
	"path/filepath"
)

// Kind classifies a path by what the browser can show for it.
type Kind int

const (
	KindOther Kind = iota // sockets, devices, broken links
	KindDir
	KindFile
)

// String returns the string representation of the kind.
func (k Kind) String() string {
	switch k {
	case KindDir:
		return "dir"
	case KindFile:
		return "file"
	default:
		return "other"
	}
}

// Canonical returns the absolute, symlink-resolved form of path.
func Canonical(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}
	resolved, err := filepath.EvalSymlinks(abs)
	if err != nil {
		return "", err
	}
	return filepath.Clean(resolved), nil
}

// Parent returns the parent directory of path, or false at the filesystem root.
func Parent(path string) (string, bool) {
	clean := filepath.Clean(path)
	parent := filepath.Dir(clean)
	if parent == clean {
		return "", false
	}
	return parent, true
}

// Name returns the last element of path.
func Name(path string) string {
	return filepath.Base(path)
}

// KindOf stats path, following symlinks.
func KindOf(path string) Kind {
	info, err := os.Stat(path)
	if err != nil {
		return KindOther
	}
	switch {
	case info.IsDir():
		return KindDir
	case info.Mode().IsRegular():
		return KindFile
	default:
		return KindOther
	}
}

// Entry is one child of a scanned directory.
type Entry struct {
	Path   string // dir joined with the entry name
	Target string // canonical location; equals Path unless the entry is a symlink
	Kind   Kind
}

// ReadDir lists the children of dir in the order the filesystem returns them.
// Names hidden by hide (which may be nil) are skipped.
func ReadDir(dir string, hide *HideList) ([]Entry, error) {
	f, err := os.Open(dir)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	dirents, err := f.ReadDir(-1)
	if err != nil {
		return nil, err
	}

	entries := make([]Entry, 0, len(dirents))
	for _, d := range dirents {
		name := d.Name()
		if hide.Hides(name) {
			continue
		}

		p := filepath.Join(dir, name)
		e := Entry{Path: p, Target: p}

		switch {
		case d.Type()&os.ModeSymlink != 0:
			// Link targets are resolved so they key the same pane as the real path.
			if target, err := filepath.EvalSymlinks(p); err == nil {
				e.Target = target
				e.Kind = KindOf(target)
			}
		case d.IsDir():
			e.Kind = KindDir
		case d.Type().IsRegular():
			e.Kind = KindFile
		}

		entries = append(entries, e)
	}

	return entries, nil
}
