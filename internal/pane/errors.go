package pane

import "fmt"

// DirectoryUnreadableError indicates a directory scan failed (permissions,
// deletion between navigation and scan). The pane keeps its prior entries.
type DirectoryUnreadableError struct {
	Path string
	Err  error
}

func (e *DirectoryUnreadableError) Error() string {
	return fmt.Sprintf("directory unreadable: %s: %v", e.Path, e.Err)
}

func (e *DirectoryUnreadableError) Unwrap() error {
	return e.Err
}
