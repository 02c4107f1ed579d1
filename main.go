package main

import (
	"context"
	"io"
	"log"
	"net/http"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"github.com/soar/padframe/internal/backend"
	"github.com/soar/padframe/internal/config"
	"github.com/soar/padframe/internal/console"
	"github.com/soar/padframe/internal/framework"
	"github.com/soar/padframe/internal/hub"
	"github.com/soar/padframe/internal/server"
	"github.com/soar/padframe/internal/tray"
)

// Cross-platform signal handling: use os.Interrupt on all platforms
// On Windows: os.Interrupt is sent when Ctrl+C is pressed
// On Unix: os.Interrupt is equivalent to syscall.SIGINT
var shutdownSignals = []os.Signal{os.Interrupt, syscall.SIGTERM}

func main() {
	// GUI-mode launches get no console; drop log output instead of writing
	// to a detached handle.
	if !console.IsRunningFromConsole() {
		log.SetOutput(io.Discard)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Config error: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Console Ctrl+C handling that survives SDL taking the main thread.
	consoleShutdown := make(chan struct{})
	reregisterHandler := console.SetupConsoleHandler(consoleShutdown)

	// Handle shutdown signals
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, shutdownSignals...)

	// The execution context owns the gamepad registry; the pump is its only
	// writer.
	fctx := framework.NewContext()
	pump := backend.NewPump(fctx.Gamepads, cfg.AxisSensitivity)

	// Create and start hub
	h := hub.NewHub()
	go h.Run()

	// Create broadcaster
	broadcaster := hub.NewBroadcaster(h, pump.Changes())
	go broadcaster.Run()

	// Create and start HTTP server
	srv := server.New(h, broadcaster, pump, getFrontendFS(), cfg.ListenAddr)
	serverErrCh := make(chan error, 1)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErrCh <- err
		}
	}()

	viewerURL := "http://localhost" + cfg.ListenAddr
	log.Printf("padframe started: %s", viewerURL)

	// Channel for tray-triggered shutdown
	shutdownRequested := make(chan struct{})

	// Initialize system tray on Windows only
	if runtime.GOOS == "windows" && cfg.Tray {
		go func() {
			t := tray.New(viewerURL, func() {
				close(shutdownRequested)
			})
			t.Run(nil)
		}()
	} else {
		log.Println("Press Ctrl+C to exit")
	}

	// Run the pump in a goroutine; it locks its own OS thread and SDL init
	// may override the console handler, so re-register afterwards.
	pumpDone := make(chan struct{})
	go func() {
		pump.Run(ctx)
		close(pumpDone)
	}()
	reregisterHandler()

	// Wait for shutdown signal, tray request, or server error
	select {
	case <-sigCh:
		log.Println("Shutting down...")
		cancel()
	case <-consoleShutdown:
		log.Println("Shutting down...")
		cancel()
	case <-shutdownRequested:
		log.Println("Shutdown requested from tray")
		cancel()
	case err := <-serverErrCh:
		log.Printf("HTTP server error: %v", err)
		cancel()
	}

	// Wait for the pump to release its devices
	<-pumpDone

	// Shutdown the HTTP server gracefully
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("HTTP server shutdown error: %v", err)
	}

	log.Println("padframe stopped")
}
