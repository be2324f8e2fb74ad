// File: pkg/extract/types.go
package extract

// Mode governs how the manual selection maps to the base candidate set.
type Mode int

const (
	// ModeExclude processes every file except the selected ones.
	ModeExclude Mode = iota
	// ModeInclude processes only files covered by the selection.
	ModeInclude
)

// String returns the mode label used in the report header.
func (m Mode) String() string {
	if m == ModeInclude {
		return "INCLUDE"
	}
	return "EXCLUDE"
}

// ProgressFunc receives a percentage in [0,100] and a status line.
// It is invoked synchronously from the extraction goroutine; callers that
// drive a UI should forward the values over a channel.
type ProgressFunc func(percent float64, status string)

// Request holds every input for a single extraction run. All decisions made
// by the engine are a function of these values; nothing is read from shared
// state.
type Request struct {
	Source        string      // Root directory to extract from.
	Output        string      // Destination path for the report.
	Mode          Mode        // Include or exclude semantics for Selection.
	Selection     *Selection  // Manually checked paths, may be nil.
	Include       PatternList // Include patterns; always win.
	Exclude       PatternList // Exclude patterns; applied before includes.
	FilenamesOnly bool        // Skip the file-contents section.
	ShowExcluded  bool        // Draw the full tree, marking excluded files.
	Cancel        *CancelFlag // Cooperative stop signal, may be nil.
	Progress      ProgressFunc
}

// Outcome tags the terminal state of a run. A cancelled run is
// distinguishable from a completed run that matched zero files.
type Outcome int

const (
	OutcomeCompleted Outcome = iota
	OutcomeCancelled
)

// Result describes how a run ended. Files is only meaningful for
// OutcomeCompleted.
type Result struct {
	Outcome Outcome
	Files   int // Number of files in the final set.
}
