//go:build debug

package polyclip

import (
	"log"
	"os"
)

// Debug logger instance
var logger = log.New(os.Stderr, "[polyclip DEBUG] ", log.LstdFlags)

// logDebugf writes a formatted debug message to stderr (debug builds only).
func logDebugf(format string, v ...interface{}) {
	logger.Printf(format, v...)
}
