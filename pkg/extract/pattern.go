// File: pkg/extract/pattern.go
package extract

import (
	"fmt"
	"os"
	"strings"

	"github.com/danwakefield/fnmatch"
)

// PatternList is an ordered sequence of glob patterns (`*`, `?`, `[seq]`,
// `[!seq]`). A pattern matches a file when it matches either the path
// relative to the source root or the bare file name. Matching is
// case-sensitive; an empty list matches nothing.
type PatternList []string

// Matches reports whether any pattern matches the relative path or name.
func (pl PatternList) Matches(relPath, name string) bool {
	for _, p := range pl {
		if fnmatch.Match(p, relPath, 0) || fnmatch.Match(p, name, 0) {
			return true
		}
	}
	return false
}

// LoadPatternFile reads newline-delimited patterns from a file. Blank lines
// and lines starting with '#' are skipped.
func LoadPatternFile(path string) (PatternList, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read pattern file %s: %w", path, err)
	}
	var patterns PatternList
	for _, line := range strings.Split(string(content), "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		patterns = append(patterns, line)
	}
	return patterns, nil
}
