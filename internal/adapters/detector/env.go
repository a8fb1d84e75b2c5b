// Package detector picks the output mode for the current environment.
package detector

import (
	"os"

	"golang.org/x/term"
)

// OutputMode represents the rendering mode for the application.
type OutputMode int

const (
	// ModeAuto automatically detects the appropriate mode.
	ModeAuto OutputMode = iota
	// ModeTUI selects the interactive TUI.
	ModeTUI
	// ModeLinear selects plain line output.
	ModeLinear
)

// DetectEnvironment returns ModeTUI when stdout is a terminal and no CI
// environment is detected, ModeLinear otherwise.
func DetectEnvironment() OutputMode {
	return Detect(term.IsTerminal(int(os.Stdout.Fd())), os.Getenv("CI"))
}

// Detect is DetectEnvironment with its inputs made explicit.
func Detect(isTTY bool, ci string) OutputMode {
	isCI := ci == "true" || ci == "1"
	if !isTTY || isCI {
		return ModeLinear
	}
	return ModeTUI
}

// ResolveMode applies a user override to the detected mode. userFlag is one
// of "auto", "tui", "linear", "ci" or empty; anything else keeps autoDetected.
func ResolveMode(autoDetected OutputMode, userFlag string) OutputMode {
	switch userFlag {
	case "tui":
		return ModeTUI
	case "linear", "ci":
		return ModeLinear
	default:
		return autoDetected
	}
}
