// File: pkg/extract/selection.go
package extract

import (
	"path/filepath"
	"strings"
)

// Selection is the two-set model for manually checked paths: a primary set
// of checked items plus an override set of per-path exceptions. Checking a
// directory implies checking its descendants; an override re-toggles a
// single descendant back to the opposite state. A single set cannot express
// "parent checked, one child unchecked", which is why both are kept.
type Selection struct {
	primary   map[string]struct{}
	overrides map[string]struct{}
}

// NewSelection builds a selection from explicitly checked paths.
func NewSelection(paths ...string) *Selection {
	s := &Selection{
		primary:   make(map[string]struct{}, len(paths)),
		overrides: make(map[string]struct{}),
	}
	for _, p := range paths {
		s.Add(p)
	}
	return s
}

// Add marks a path as checked.
func (s *Selection) Add(path string) {
	s.primary[filepath.Clean(path)] = struct{}{}
}

// Override marks a path as individually re-toggled: the path no longer
// inherits the checked state of its ancestors.
func (s *Selection) Override(path string) {
	s.overrides[filepath.Clean(path)] = struct{}{}
}

// Empty reports whether no path is checked. A nil selection is empty.
func (s *Selection) Empty() bool {
	return s == nil || len(s.primary) == 0
}

// Covers reports whether path is effectively selected: the path or one of
// its ancestor directories is checked, and the path itself has not been
// overridden.
func (s *Selection) Covers(path string) bool {
	if s == nil || len(s.primary) == 0 {
		return false
	}
	path = filepath.Clean(path)
	if _, ok := s.overrides[path]; ok {
		return false
	}
	for sel := range s.primary {
		if pathWithin(path, sel) {
			return true
		}
	}
	return false
}

// pathWithin reports whether path equals root or sits beneath it. The
// comparison is path-boundary safe so that /src2 never matches a selection
// of /src.
func pathWithin(path, root string) bool {
	if path == root {
		return true
	}
	return strings.HasPrefix(path, root+string(filepath.Separator))
}
