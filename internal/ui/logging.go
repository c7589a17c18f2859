package ui

import (
	"fmt"
	"io"
	"os"

	log "github.com/sirupsen/logrus"
)

// DebugLogPath is the fixed path for debug logs.
const DebugLogPath = "weekgrid-debug.log"

// setupLogging configures the global logger. With debug on, JSON entries go
// to DebugLogPath and the returned closer owns the file. Otherwise warnings
// go to stderr, or nowhere while the TUI owns the terminal.
func setupLogging(debug, interactive bool, stderr io.Writer) (io.Closer, error) {
	if debug {
		f, err := os.Create(DebugLogPath)
		if err != nil {
			return nil, fmt.Errorf("creating debug log: %w", err)
		}
		log.SetOutput(f)
		log.SetFormatter(&log.JSONFormatter{})
		log.SetLevel(log.DebugLevel)
		log.WithField("log_file", DebugLogPath).Debug("debug logging started")
		return f, nil
	}

	log.SetFormatter(&log.TextFormatter{DisableTimestamp: true})
	log.SetLevel(log.WarnLevel)
	if interactive {
		log.SetOutput(io.Discard)
	} else {
		log.SetOutput(stderr)
	}
	return nil, nil
}
