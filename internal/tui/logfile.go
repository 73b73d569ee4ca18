package tui

import (
	"os"
	"path/filepath"
)

// GetLogFilePath returns the path to the log file.
// If PUSHIT_LOG_FILE is set, uses that path.
// Otherwise, uses ~/.pushit/logs/pushit.log
func GetLogFilePath() string {
	if customPath := os.Getenv("PUSHIT_LOG_FILE"); customPath != "" {
		return customPath
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		// Fallback to current directory if we can't get home dir
		return "pushit.log"
	}

	return filepath.Join(homeDir, ".pushit", "logs", "pushit.log")
}
