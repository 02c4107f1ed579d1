//go:build windows

// Package console provides console detection and Ctrl+C handling. On
// Windows a program may start with or without a console depending on how it
// was built and launched; this package sorts out both cases and installs a
// control handler that keeps working while SDL holds the main thread with
// runtime.LockOSThread.
package console

import (
	"log"
	"os"
	"strings"
	"sync/atomic"
	"syscall"
	"unsafe"
)

var (
	kernel32 = syscall.NewLazyDLL("kernel32.dll")

	procGetConsoleWindow           = kernel32.NewProc("GetConsoleWindow")
	procAllocConsole               = kernel32.NewProc("AllocConsole")
	procFreeConsole                = kernel32.NewProc("FreeConsole")
	procGetStdHandle               = kernel32.NewProc("GetStdHandle")
	procOpenProcess                = kernel32.NewProc("OpenProcess")
	procQueryFullProcessImageNameW = kernel32.NewProc("QueryFullProcessImageNameW")
	procSetConsoleCtrlHandler      = kernel32.NewProc("SetConsoleCtrlHandler")
)

const (
	processQueryLimitedInfo = 0x1000
	maxPath                 = 260
	ctrlCEvent              = 0
	ctrlBreakEvent          = 1

	stdInputHandle  = ^uint32(0) - 10 + 1 // -10
	stdOutputHandle = ^uint32(0) - 11 + 1 // -11
	stdErrorHandle  = ^uint32(0) - 12 + 1 // -12
)

// IsRunningFromConsole reports whether the process should behave as a
// console program. A console-mode build double-clicked from Explorer frees
// its auto-created console and runs as a GUI app; a GUI-mode build launched
// from a terminal allocates a console so its output is visible.
func IsRunningFromConsole() bool {
	if hasConsoleWindow() {
		if launchedFromExplorer() {
			procFreeConsole.Call()
			return false
		}
		return true
	}

	if launchedFromExplorer() {
		return false
	}

	procAllocConsole.Call()
	redirectStdStreams()
	return true
}

func hasConsoleWindow() bool {
	hwnd, _, _ := procGetConsoleWindow.Call()
	return hwnd != 0
}

// redirectStdStreams rebinds os.Stdout/Stderr/Stdin to the freshly
// allocated console. Go captures the std handles at startup, before the
// console existed.
func redirectStdStreams() {
	nStdout, _, _ := procGetStdHandle.Call(uintptr(stdOutputHandle))
	nStderr, _, _ := procGetStdHandle.Call(uintptr(stdErrorHandle))
	nStdin, _, _ := procGetStdHandle.Call(uintptr(stdInputHandle))

	if nStdout == 0 || nStderr == 0 {
		return
	}

	os.Stdout = os.NewFile(nStdout, "/dev/stdout")
	os.Stderr = os.NewFile(nStderr, "/dev/stderr")
	if nStdin != 0 {
		os.Stdin = os.NewFile(nStdin, "/dev/stdin")
	}

	log.SetOutput(os.Stderr)
}

func launchedFromExplorer() bool {
	name := processImageName(os.Getppid())
	if name == "" {
		return false
	}
	for i := len(name) - 1; i >= 0; i-- {
		if name[i] == '\\' || name[i] == '/' {
			name = name[i+1:]
			break
		}
	}
	return strings.EqualFold(name, "explorer.exe")
}

func processImageName(pid int) string {
	hProcess, _, _ := procOpenProcess.Call(uintptr(processQueryLimitedInfo), 0, uintptr(pid))
	if hProcess == 0 {
		return ""
	}
	defer syscall.CloseHandle(syscall.Handle(hProcess))

	var nameBuf [maxPath]uint16
	size := uint32(maxPath)
	ret, _, _ := procQueryFullProcessImageNameW.Call(hProcess, 0,
		uintptr(unsafe.Pointer(&nameBuf[0])), uintptr(unsafe.Pointer(&size)))
	if ret == 0 {
		return ""
	}
	return syscall.UTF16ToString(nameBuf[:size])
}

type ctrlHandlerState struct {
	closed       int32
	shutdownChan chan struct{}
	callback     uintptr
}

// Kept global so the Windows callback can reach it.
var handlerState *ctrlHandlerState

// SetupConsoleHandler installs a console control handler that closes
// shutdownChan on Ctrl+C or Ctrl+Break. The returned function re-registers
// the handler; call it after SDL init, which overrides console handlers.
func SetupConsoleHandler(shutdownChan chan struct{}) func() {
	handlerState = &ctrlHandlerState{shutdownChan: shutdownChan}

	handlerState.callback = syscall.NewCallback(func(ctrlType uint32) uintptr {
		if ctrlType == ctrlCEvent || ctrlType == ctrlBreakEvent {
			if atomic.CompareAndSwapInt32(&handlerState.closed, 0, 1) {
				close(handlerState.shutdownChan)
			}
			return 1
		}
		return 0
	})

	register := func() {
		ret, _, _ := procSetConsoleCtrlHandler.Call(handlerState.callback, 1)
		if ret == 0 {
			log.Printf("Warning: failed to set console control handler")
		}
	}
	register()
	return register
}
