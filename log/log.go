package log

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
)

var (
	InfoLog    *log.Logger
	WarningLog *log.Logger
	ErrorLog   *log.Logger
)

var logFile *os.File

const logFileName = "tickdo.log"

// Initialize sets up the package loggers writing to a log file under the
// user config directory. The TUI owns stdout, so nothing may print there.
// Call Close on shutdown.
func Initialize() {
	configDir, err := os.UserConfigDir()
	if err != nil {
		configDir = os.TempDir()
	}
	dir := filepath.Join(configDir, "tickdo")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		dir = os.TempDir()
	}

	f, err := os.OpenFile(filepath.Join(dir, logFileName), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		// Fall back to discarding rather than writing over the UI.
		f, _ = os.OpenFile(os.DevNull, os.O_WRONLY, 0)
	}
	logFile = f

	flags := log.Ldate | log.Ltime | log.Lshortfile
	InfoLog = log.New(f, "INFO: ", flags)
	WarningLog = log.New(f, "WARNING: ", flags)
	ErrorLog = log.New(f, "ERROR: ", flags)
}

// Close flushes and closes the log file.
func Close() {
	if logFile != nil {
		if err := logFile.Close(); err != nil {
			fmt.Fprintf(os.Stderr, "failed to close log file: %v\n", err)
		}
		logFile = nil
	}
}

func init() {
	// Tests and early callers get working loggers even before Initialize.
	flags := log.Ldate | log.Ltime | log.Lshortfile
	InfoLog = log.New(os.Stderr, "INFO: ", flags)
	WarningLog = log.New(os.Stderr, "WARNING: ", flags)
	ErrorLog = log.New(os.Stderr, "ERROR: ", flags)
}
