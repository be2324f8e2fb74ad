// File: pkg/extract/filter.go
package extract

import (
	"path/filepath"
	"sort"
	"strings"
)

// selectedInMode applies the manual-selection stage to a single file.
func selectedInMode(sel *Selection, mode Mode, path string) bool {
	if mode == ModeInclude {
		return sel.Covers(path)
	}
	return !sel.Covers(path)
}

// SelectCandidates computes the base candidate set from the manual
// selection, before any pattern is applied. In include mode an empty
// selection yields nothing; in exclude mode it yields everything.
func SelectCandidates(files []string, sel *Selection, mode Mode) []string {
	candidates := make([]string, 0, len(files))
	for _, f := range files {
		if selectedInMode(sel, mode, f) {
			candidates = append(candidates, f)
		}
	}
	return candidates
}

// ApplyPatterns layers the glob stages on top of the candidate set:
// candidates matching an exclude pattern are dropped, then any file in the
// full set matching an include pattern is added back — include patterns win
// over both exclude patterns and the manual selection. The result is sorted
// in tree order.
func ApplyPatterns(candidates, all []string, exclude, include PatternList, root string) []string {
	keep := make(map[string]struct{}, len(candidates))
	for _, f := range candidates {
		rel, name := relName(root, f)
		if exclude.Matches(rel, name) {
			continue
		}
		keep[f] = struct{}{}
	}

	if len(include) > 0 {
		for _, f := range all {
			rel, name := relName(root, f)
			if include.Matches(rel, name) {
				keep[f] = struct{}{}
			}
		}
	}

	final := make([]string, 0, len(keep))
	for f := range keep {
		final = append(final, f)
	}
	SortTreeOrder(final, root)
	return final
}

// relName returns the slash-separated path of f relative to root, plus the
// bare file name. Both forms are handed to pattern matching.
func relName(root, f string) (string, string) {
	rel, err := filepath.Rel(root, f)
	if err != nil {
		rel = f
	}
	return filepath.ToSlash(rel), filepath.Base(f)
}

// SortTreeOrder sorts file paths into the order the structure walk visits
// them: component by component, directories before files at each level,
// names compared case-insensitively. Contents therefore appear in the same
// order as the tree.
func SortTreeOrder(files []string, root string) {
	rels := make(map[string][]string, len(files))
	for _, f := range files {
		rel, _ := relName(root, f)
		rels[f] = strings.Split(rel, "/")
	}
	sort.Slice(files, func(i, j int) bool {
		return treeOrderLess(rels[files[i]], rels[files[j]])
	})
}

func treeOrderLess(a, b []string) bool {
	for i := 0; i < len(a) && i < len(b); i++ {
		aFile := i == len(a)-1
		bFile := i == len(b)-1
		if aFile != bFile {
			// Directories sort before files among siblings, and a
			// shorter path at this level is by definition a file while
			// the longer one is still inside a directory.
			return bFile
		}
		an, bn := strings.ToLower(a[i]), strings.ToLower(b[i])
		if an != bn {
			return an < bn
		}
		if a[i] != b[i] {
			return a[i] < b[i]
		}
	}
	return len(a) < len(b)
}
