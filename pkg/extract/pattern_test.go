package extract

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPatternListMatches(t *testing.T) {
	cases := []struct {
		name     string
		patterns PatternList
		relPath  string
		fileName string
		want     bool
	}{
		{"bare name wildcard", PatternList{"*.py"}, "src/main.py", "main.py", true},
		{"relative path pattern", PatternList{"src/*.py"}, "src/main.py", "main.py", true},
		{"exact relative path", PatternList{"src/main.py"}, "src/main.py", "main.py", true},
		{"question mark", PatternList{"gui?e.md"}, "docs/guide.md", "guide.md", true},
		{"character class", PatternList{"[gm]*.md"}, "docs/guide.md", "guide.md", true},
		{"negated class", PatternList{"[!g]*.md"}, "guide.md", "guide.md", false},
		{"case sensitive", PatternList{"*.PY"}, "src/main.py", "main.py", false},
		{"no match", PatternList{"*.go"}, "src/main.py", "main.py", false},
		{"second pattern wins", PatternList{"*.go", "*.py"}, "src/main.py", "main.py", true},
		{"empty list matches nothing", PatternList{}, "src/main.py", "main.py", false},
		{"nil list matches nothing", nil, "src/main.py", "main.py", false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.patterns.Matches(tc.relPath, tc.fileName))
		})
	}
}

func TestLoadPatternFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "patterns.txt")
	content := "# comment line\n\n*.py\n  docs/*.md  \n\n# another comment\nLICENSE\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	patterns, err := LoadPatternFile(path)
	require.NoError(t, err)
	assert.Equal(t, PatternList{"*.py", "docs/*.md", "LICENSE"}, patterns)
}

func TestLoadPatternFileMissing(t *testing.T) {
	_, err := LoadPatternFile(filepath.Join(t.TempDir(), "nope.txt"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, os.ErrNotExist))
}
