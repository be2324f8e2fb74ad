package extract

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestEnumerateFiles(t *testing.T) {
	proj := makeProject(t)

	files, err := EnumerateFiles(proj, "", zap.NewNop())
	require.NoError(t, err)
	assert.Len(t, files, 5)
	for _, f := range files {
		assert.True(t, filepath.IsAbs(f))
	}
}

func TestEnumerateFilesSkipsOutput(t *testing.T) {
	proj := makeProject(t)
	output := filepath.Join(proj, "report.txt")
	writeFile(t, output, "old report")

	files, err := EnumerateFiles(proj, output, zap.NewNop())
	require.NoError(t, err)
	assert.Len(t, files, 5)
	assert.NotContains(t, files, output)
}

func TestListChildren(t *testing.T) {
	base, err := filepath.EvalSymlinks(t.TempDir())
	require.NoError(t, err)
	require.NoError(t, os.MkdirAll(filepath.Join(base, "zeta"), 0o755))
	require.NoError(t, os.MkdirAll(filepath.Join(base, "Alpha"), 0o755))
	writeFile(t, filepath.Join(base, "beta.txt"), "b")
	writeFile(t, filepath.Join(base, "aaa.txt"), "a")
	writeFile(t, filepath.Join(base, "Case.txt"), "C")
	writeFile(t, filepath.Join(base, "case.txt"), "c")

	children, err := ListChildren(base)
	require.NoError(t, err)

	// Directories first, then files, case-insensitive within each group;
	// case-equal names fall back to original case.
	names := make([]string, len(children))
	for i, c := range children {
		names[i] = c.Name
	}
	assert.Equal(t, []string{"Alpha", "zeta", "aaa.txt", "beta.txt", "Case.txt", "case.txt"}, names)

	assert.True(t, children[0].IsDir)
	assert.False(t, children[2].IsDir)
	assert.Equal(t, filepath.Join(base, "aaa.txt"), children[2].Path)
	assert.Equal(t, int64(1), children[2].Size)
}

func TestListChildrenMissingDir(t *testing.T) {
	_, err := ListChildren(filepath.Join(t.TempDir(), "missing"))
	assert.Error(t, err)
}
