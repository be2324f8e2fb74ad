// File: pkg/extract/enumerate.go
package extract

import (
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"go.uber.org/zap"
)

// EnumerateFiles walks the tree rooted at root and returns the absolute
// paths of every regular file. Paths that cannot be accessed are logged and
// skipped rather than failing the walk. skip, when non-empty, names one
// absolute path to leave out — the report file itself, so a re-run never
// ingests its own output.
func EnumerateFiles(root, skip string, logger *zap.Logger) ([]string, error) {
	var files []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			logger.Warn("Error accessing path during enumeration",
				zap.String("path", path),
				zap.Error(err))
			return nil
		}
		if d.IsDir() {
			return nil
		}
		if !d.Type().IsRegular() {
			return nil
		}
		if skip != "" && path == skip {
			return nil
		}
		files = append(files, path)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return files, nil
}

// Entry describes one immediate child of a directory, as plain data. It is
// what a UI layer pages through when lazily expanding a folder.
type Entry struct {
	Name  string
	Path  string
	IsDir bool
	Size  int64
}

// ListChildren returns the immediate children of a directory, sorted the
// same way the report tree is drawn: directories first, then files, both in
// case-insensitive name order.
func ListChildren(path string) ([]Entry, error) {
	dirEntries, err := os.ReadDir(path)
	if err != nil {
		return nil, err
	}

	results := make([]Entry, 0, len(dirEntries))
	for _, e := range dirEntries {
		info, err := e.Info()
		if err != nil {
			continue // entry vanished between ReadDir and Info
		}
		results = append(results, Entry{
			Name:  e.Name(),
			Path:  filepath.Join(path, e.Name()),
			IsDir: e.IsDir(),
			Size:  info.Size(),
		})
	}

	sort.Slice(results, func(i, j int) bool {
		if results[i].IsDir != results[j].IsDir {
			return results[i].IsDir
		}
		ni, nj := strings.ToLower(results[i].Name), strings.ToLower(results[j].Name)
		if ni != nj {
			return ni < nj
		}
		return results[i].Name < results[j].Name
	})
	return results, nil
}
