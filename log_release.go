//go:build !debug

package polyclip

// logDebugf is a no-op outside of debug builds (-tags debug).
func logDebugf(format string, v ...interface{}) {}
