// Package detector picks the progress renderer for the current terminal.
package detector

import (
	"os"

	"go.trai.ch/cook/internal/core/domain"
	"go.trai.ch/zerr"
	"golang.org/x/term"
)

// OutputMode selects how book sessions report progress.
type OutputMode int

const (
	// ModeAuto picks a mode from the environment.
	ModeAuto OutputMode = iota
	// ModeTUI forces the interactive renderer.
	ModeTUI
	// ModeLinear forces line-oriented CI logs.
	ModeLinear
)

// String returns the flag spelling of the mode.
func (m OutputMode) String() string {
	switch m {
	case ModeTUI:
		return "tui"
	case ModeLinear:
		return "linear"
	default:
		return "auto"
	}
}

// DetectEnvironment inspects stdout and the CI variable.
func DetectEnvironment() OutputMode {
	return Detect(term.IsTerminal(int(os.Stdout.Fd())), os.Getenv)
}

// Detect returns ModeLinear outside a terminal or on CI, ModeTUI otherwise.
func Detect(isTTY bool, getenv func(string) string) OutputMode {
	ci := getenv("CI")
	if !isTTY || ci == "true" || ci == "1" {
		return ModeLinear
	}
	return ModeTUI
}

// ResolveMode applies the --output flag to the detected mode.
// Accepted values are "auto", "tui", "linear" and its alias "ci".
func ResolveMode(detected OutputMode, flag string) (OutputMode, error) {
	switch flag {
	case "tui":
		return ModeTUI, nil
	case "linear", "ci":
		return ModeLinear, nil
	case "auto", "":
		return detected, nil
	default:
		return detected, zerr.With(domain.ErrInvalidConfig, "output", flag)
	}
}
