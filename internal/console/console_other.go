//go:build !windows

// Package console provides console detection and Ctrl+C handling. On
// non-Windows platforms these are stubs.
package console

// IsRunningFromConsole returns true on non-Windows platforms as they always
// run in console mode.
func IsRunningFromConsole() bool {
	return true
}

// SetupConsoleHandler returns a no-op function on non-Windows platforms.
// Go's standard os.Interrupt signal handling works fine on Unix-like
// systems.
func SetupConsoleHandler(shutdownChan chan struct{}) func() {
	return func() {}
}
