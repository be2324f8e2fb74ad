package main

import (
	"log"
	"os"
	"strings"

	"pandabrew/cmd"
	"pandabrew/pkg/logging"
	"pandabrew/pkg/version"

	"golang.org/x/term"
)

func main() {
	if err := logging.Setup(false, "PandaBrew", version.Version); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	logger := logging.Logger

	err := cmd.Execute(logger)

	// Check if stderr is a terminal or a regular file before attempting to
	// sync; syncing a closed pipe reports "invalid argument".
	if term.IsTerminal(int(os.Stderr.Fd())) || isRegularFile(os.Stderr) {
		if syncErr := logger.Sync(); syncErr != nil {
			lowerErr := strings.ToLower(syncErr.Error())
			if !strings.Contains(lowerErr, "invalid argument") {
				log.Printf("Logger sync failed: %v", syncErr)
			}
		}
	}

	if err != nil {
		os.Exit(1)
	}
}

// isRegularFile checks if the given file is a regular file.
func isRegularFile(f *os.File) bool {
	fileInfo, err := f.Stat()
	if err != nil {
		return false // Assume not a regular file if we can't get the file info
	}
	return fileInfo.Mode().IsRegular()
}
