//go:build !console

package main

import (
	"fmt"
	"log/slog"

	webview "github.com/webview/webview_go"
)

// runEmbeddedUI starts the web server and opens an embedded browser window
func runEmbeddedUI(config *Config, logger *slog.Logger) error {
	ws := NewWebServer(config, "localhost:0", logger)

	url, cleanup, err := ws.StartForEmbedded()
	if err != nil {
		return fmt.Errorf("failed to start server: %w", err)
	}
	defer cleanup()

	// Create webview window (false = no debug mode)
	w := webview.New(false)
	defer w.Destroy()

	w.SetTitle("ARR Calculator")
	w.SetSize(1100, 760, webview.HintNone)
	w.Navigate(url)

	// Run blocks until window is closed
	w.Run()

	return nil
}

// runGUI starts the graphical user interface (uses embedded browser)
func runGUI(config *Config, logger *slog.Logger) error {
	return runEmbeddedUI(config, logger)
}
