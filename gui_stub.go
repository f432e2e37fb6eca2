//go:build console

package main

import (
	"fmt"
	"log/slog"
)

// runEmbeddedUI is a stub for console-only builds
func runEmbeddedUI(config *Config, logger *slog.Logger) error {
	return fmt.Errorf("embedded UI not available in console build, use the serve command")
}

// runGUI is a stub for console-only builds
func runGUI(config *Config, logger *slog.Logger) error {
	return fmt.Errorf("GUI not available in console build, use the serve command")
}
