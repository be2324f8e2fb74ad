// File: pkg/extract/extract.go

// Package extract implements the selection-and-report-generation engine:
// a manual selection stage, a glob pattern filter, and a report renderer
// that emits a header, an ASCII directory tree, and file contents into a
// single text file. One Run processes one source tree to completion,
// cancellation, or failure; the engine itself is synchronous and keeps no
// state between runs.
package extract

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"go.uber.org/zap"
)

// Run executes one extraction. It returns OutcomeCancelled as soon as the
// request's CancelFlag is observed set; the output file is not created if
// cancellation happens before rendering starts. Configuration problems
// (source is not a directory) and output problems (report destination
// cannot be written) come back as errors and leave the state machine in
// Failed; a per-file read error never does.
func Run(req Request, logger *zap.Logger) (Result, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	cancelled := Result{Outcome: OutcomeCancelled}

	if req.Cancel.Cancelled() {
		return cancelled, nil
	}

	start := time.Now()

	source, err := filepath.Abs(req.Source)
	if err != nil {
		return Result{}, fmt.Errorf("failed to resolve source path: %w", err)
	}
	info, err := os.Stat(source)
	if err != nil || !info.IsDir() {
		return Result{}, fmt.Errorf("source path %q is not a valid directory", req.Source)
	}
	absOutput, err := filepath.Abs(req.Output)
	if err != nil {
		return Result{}, fmt.Errorf("failed to resolve output path: %w", err)
	}

	logger.Debug("Starting extraction",
		zap.String("source", source),
		zap.String("output", absOutput),
		zap.String("mode", req.Mode.String()))

	if req.Progress != nil {
		req.Progress(0, "Gathering and filtering files...")
	}

	all, err := EnumerateFiles(source, absOutput, logger)
	if err != nil {
		return Result{}, fmt.Errorf("failed to enumerate files: %w", err)
	}
	if req.Cancel.Cancelled() {
		return cancelled, nil
	}

	// Manual-selection stage. Enumeration and filtering together own the
	// first 20% of the progress budget; cancellation is polled in batches
	// rather than per file.
	candidates := make([]string, 0, len(all))
	for i, f := range all {
		if i%100 == 0 {
			if req.Cancel.Cancelled() {
				return cancelled, nil
			}
			if req.Progress != nil {
				req.Progress(float64(i)/float64(len(all))*20,
					fmt.Sprintf("Filtering... (%d/%d)", i, len(all)))
			}
		}
		if selectedInMode(req.Selection, req.Mode, f) {
			candidates = append(candidates, f)
		}
	}

	final := ApplyPatterns(candidates, all, req.Exclude, req.Include, source)
	if req.Cancel.Cancelled() {
		return cancelled, nil
	}

	out, err := os.Create(absOutput)
	if err != nil {
		return Result{}, fmt.Errorf("cannot write output file %s: %w", req.Output, err)
	}

	r := newRenderer(req, source, final, logger)
	wasCancelled, renderErr := r.render(out)

	if closeErr := out.Close(); closeErr != nil && renderErr == nil {
		renderErr = fmt.Errorf("cannot write output file %s: %w", req.Output, closeErr)
	}
	if renderErr != nil {
		return Result{}, renderErr
	}
	if wasCancelled {
		logger.Info("Extraction cancelled",
			zap.String("output", absOutput),
			zap.Duration("elapsed", time.Since(start)))
		return cancelled, nil
	}

	logger.Info("Extraction completed",
		zap.String("output", absOutput),
		zap.Int("totalFiles", len(final)),
		zap.Duration("elapsed", time.Since(start)))
	return Result{Outcome: OutcomeCompleted, Files: len(final)}, nil
}
