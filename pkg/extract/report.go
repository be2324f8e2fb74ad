// File: pkg/extract/report.go
package extract

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"
	"unicode"

	"go.uber.org/zap"
)

// renderer writes one report: header, structure, then optionally contents.
// files must already be sorted in tree order.
type renderer struct {
	req      Request
	source   string // absolute source root
	files    []string
	included map[string]struct{}
	branches map[string]struct{} // directories with an included file somewhere beneath
	logger   *zap.Logger
}

func newRenderer(req Request, source string, files []string, logger *zap.Logger) *renderer {
	r := &renderer{
		req:      req,
		source:   source,
		files:    files,
		included: make(map[string]struct{}, len(files)),
		branches: make(map[string]struct{}),
		logger:   logger,
	}
	for _, f := range files {
		r.included[f] = struct{}{}
		for dir := filepath.Dir(f); pathWithin(dir, source); dir = filepath.Dir(dir) {
			r.branches[dir] = struct{}{}
			if dir == source {
				break
			}
		}
	}
	return r
}

// render writes the full report. The returned bool reports whether the run
// was cancelled partway through the contents section.
func (r *renderer) render(out io.Writer) (bool, error) {
	w := bufio.NewWriter(out)

	r.writeHeader(w)

	r.progress(25, "Writing project structure...")
	r.writeStructure(w)

	if !r.req.FilenamesOnly {
		if cancelled := r.writeContents(w); cancelled {
			return true, w.Flush()
		}
	}

	if err := w.Flush(); err != nil {
		return false, fmt.Errorf("failed to write report: %w", err)
	}
	return false, nil
}

func (r *renderer) progress(percent float64, status string) {
	if r.req.Progress != nil {
		r.req.Progress(percent, status)
	}
}

func (r *renderer) writeHeader(w *bufio.Writer) {
	fmt.Fprintf(w, "--- Project Extraction Report ---\n")
	fmt.Fprintf(w, "Timestamp: %s\n", time.Now().Format(time.RFC3339))
	fmt.Fprintf(w, "Selection Mode: %s checked items\n", r.req.Mode)
	fmt.Fprintf(w, "---\n\n")
}

func (r *renderer) writeStructure(w *bufio.Writer) {
	fmt.Fprintf(w, "### Project Structure\n\n")
	fmt.Fprintf(w, "%s\n", filepath.Base(r.source))
	r.writeTree(w, r.source, "")
	fmt.Fprintf(w, "\n")
}

// writeTree draws one directory level. A directory with no included file
// anywhere beneath it is pruned unless ShowExcluded is set; an excluded
// file that is drawn carries a trailing marker.
func (r *renderer) writeTree(w *bufio.Writer, dir, prefix string) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		// Treat an unreadable directory as having no children.
		r.logger.Warn("Failed to read directory for tree structure",
			zap.String("directory", dir),
			zap.Error(err))
		return
	}

	// Sort entries: directories first, then files, case-insensitively,
	// with the original case as tiebreak — the same ordering as
	// SortTreeOrder, so Structure and Contents never disagree.
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].IsDir() != entries[j].IsDir() {
			return entries[i].IsDir()
		}
		ni, nj := strings.ToLower(entries[i].Name()), strings.ToLower(entries[j].Name())
		if ni != nj {
			return ni < nj
		}
		return entries[i].Name() < entries[j].Name()
	})

	type node struct {
		name     string
		path     string
		isDir    bool
		included bool
	}
	var display []node
	for _, entry := range entries {
		path := filepath.Join(dir, entry.Name())
		if entry.IsDir() {
			_, live := r.branches[path]
			if !live && !r.req.ShowExcluded {
				continue
			}
			display = append(display, node{entry.Name(), path, true, live})
		} else {
			_, ok := r.included[path]
			if !ok && !r.req.ShowExcluded {
				continue
			}
			display = append(display, node{entry.Name(), path, false, ok})
		}
	}

	for i, n := range display {
		connector := "├── "
		extension := "│   "
		if i == len(display)-1 {
			connector = "└── "
			extension = "    "
		}

		marker := ""
		if !n.isDir && !n.included {
			marker = " [EXCLUDED]"
		}
		fmt.Fprintf(w, "%s%s%s%s\n", prefix, connector, n.name, marker)

		if n.isDir {
			r.writeTree(w, n.path, prefix+extension)
		}
	}
}

// writeContents dumps each included file between delimiter lines. A file
// that cannot be read gets an inline error marker instead of aborting the
// run. Returns true if cancelled between files.
func (r *renderer) writeContents(w *bufio.Writer) bool {
	fmt.Fprintf(w, "### File Contents\n\n")
	total := len(r.files)

	for i, path := range r.files {
		if r.req.Cancel.Cancelled() {
			return true
		}

		// Content writing owns the 25-100% span of the progress budget.
		r.progress(25+float64(i)/float64(total)*75,
			fmt.Sprintf("Writing %d/%d: %s", i+1, total, filepath.Base(path)))

		rel, _ := relName(r.source, path)
		fmt.Fprintf(w, "--- file: %s ---\n", rel)
		content, err := os.ReadFile(path)
		if err != nil {
			fmt.Fprintf(w, "[Error reading file: %v]\n", err)
		} else {
			fmt.Fprintf(w, "%s\n", cleanContent(content))
		}
		fmt.Fprintf(w, "---\n\n")
	}
	return false
}

// cleanContent decodes file bytes permissively, replacing undecodable
// sequences, and trims trailing whitespace.
func cleanContent(b []byte) string {
	s := strings.ToValidUTF8(string(b), "�")
	return strings.TrimRightFunc(s, unicode.IsSpace)
}
