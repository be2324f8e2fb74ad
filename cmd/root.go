package cmd

import (
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"

	"pandabrew/pkg/extract"
	"pandabrew/pkg/logging"
	"pandabrew/pkg/version"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/term"
)

var logger *zap.Logger

var (
	includeFile   string
	excludeFile   string
	selectPaths   []string
	includeMode   bool
	filenamesOnly bool
	showExcluded  bool
	debug         bool
)

// RootCmd is the base command. The extraction itself lives on the root so
// the stable surface stays `pandabrew <source_dir> <output_file> [flags]`.
var RootCmd = &cobra.Command{
	Use:   "pandabrew <source_dir> <output_file>",
	Short: "PandaBrew selectively extracts a project tree into a single text report",
	Long: `PandaBrew walks a source directory and writes a single text report holding
the project structure as an ASCII tree plus the contents of the selected
files. Files are chosen by manual path selections combined with
gitignore-style include/exclude patterns; include patterns always win.`,
	Args:         cobra.ExactArgs(2),
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if !debug {
			return nil
		}
		if err := logging.Setup(true, "PandaBrew", version.Version); err != nil {
			return fmt.Errorf("failed to initialize debug logger: %w", err)
		}
		logger = logging.Logger
		return nil
	},
	RunE: runExtract,
}

func init() {
	RootCmd.Flags().StringVar(&includeFile, "include-file", "", "File of newline-separated include patterns; matches override all other filters")
	RootCmd.Flags().StringVar(&excludeFile, "exclude-file", "", "File of newline-separated exclude patterns; applied before include patterns")
	RootCmd.Flags().StringArrayVar(&selectPaths, "select", nil, "Manually selected path, relative to the source directory (repeatable)")
	RootCmd.Flags().BoolVar(&includeMode, "include-mode", false, "Process only selected paths instead of everything except them")
	RootCmd.Flags().BoolVar(&filenamesOnly, "filenames-only", false, "Write only the project structure, no file contents")
	RootCmd.Flags().BoolVar(&showExcluded, "show-excluded", false, "Draw excluded entries in the structure with an [EXCLUDED] marker")
	RootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "Enable debug logging")
}

// Execute runs the root command with the supplied logger.
func Execute(l *zap.Logger) error {
	logger = l
	return RootCmd.Execute()
}

type progressEvent struct {
	percent float64
	status  string
}

func runExtract(cmd *cobra.Command, args []string) error {
	source, output := args[0], args[1]

	include, err := readPatterns(includeFile)
	if err != nil {
		return err
	}
	exclude, err := readPatterns(excludeFile)
	if err != nil {
		return err
	}

	absSource, err := filepath.Abs(source)
	if err != nil {
		return fmt.Errorf("failed to resolve source path: %w", err)
	}
	selection := extract.NewSelection()
	for _, p := range selectPaths {
		if !filepath.IsAbs(p) {
			p = filepath.Join(absSource, p)
		}
		selection.Add(p)
	}

	mode := extract.ModeExclude
	if includeMode {
		mode = extract.ModeInclude
	}

	// Ctrl-C flips the run's cancel flag; the engine stops cooperatively.
	cancel := &extract.CancelFlag{}
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt)
	defer signal.Stop(sigCh)
	go func() {
		if _, ok := <-sigCh; ok {
			fmt.Fprintln(os.Stderr, "\nCancelling...")
			cancel.Cancel()
		}
	}()

	progressCh := make(chan progressEvent, 64)
	type resultMsg struct {
		res extract.Result
		err error
	}
	resultCh := make(chan resultMsg, 1)

	req := extract.Request{
		Source:        source,
		Output:        output,
		Mode:          mode,
		Selection:     selection,
		Include:       include,
		Exclude:       exclude,
		FilenamesOnly: filenamesOnly,
		ShowExcluded:  showExcluded,
		Cancel:        cancel,
		Progress: func(percent float64, status string) {
			progressCh <- progressEvent{percent, status}
		},
	}

	// The engine runs on a worker goroutine; progress flows back over the
	// channel and is drained here, so nothing crosses goroutines except
	// messages and the cancel flag.
	go func() {
		res, runErr := extract.Run(req, logger)
		close(progressCh)
		resultCh <- resultMsg{res: res, err: runErr}
	}()

	isTTY := term.IsTerminal(int(os.Stderr.Fd()))
	for ev := range progressCh {
		if isTTY {
			fmt.Fprintf(os.Stderr, "\r  [%3.0f%%] %-60s", ev.percent, ev.status)
		}
	}
	msg := <-resultCh
	if isTTY {
		fmt.Fprintln(os.Stderr)
	}

	if msg.err != nil {
		return msg.err
	}

	switch {
	case msg.res.Outcome == extract.OutcomeCancelled:
		fmt.Println("Operation cancelled.")
	case msg.res.Files > 0:
		fmt.Println("Extraction complete.")
		fmt.Printf("%d files processed and saved to '%s'.\n", msg.res.Files, output)
	default:
		fmt.Println("Extraction complete. No files matched the specified filters.")
	}
	return nil
}

// readPatterns loads a pattern file if one was given. A missing file is a
// warning, not an error, matching the behavior users expect from optional
// ignore files.
func readPatterns(path string) (extract.PatternList, error) {
	if path == "" {
		return nil, nil
	}
	patterns, err := extract.LoadPatternFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			fmt.Fprintf(os.Stderr, "Warning: pattern file not found: %s\n", path)
			return nil, nil
		}
		return nil, err
	}
	return patterns, nil
}
