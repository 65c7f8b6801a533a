// Package detector provides environment detection for progress output selection.
package detector

import (
	"os"

	"github.com/wtsi-hgi/bam2cram-check/internal/core/domain"
	"go.trai.ch/zerr"
	"golang.org/x/term"
)

// ProgressMode represents the user's choice for stage progress output.
type ProgressMode int

const (
	// ModeAuto shows progress when stderr is an interactive terminal outside CI.
	ModeAuto ProgressMode = iota
	// ModeAlways forces progress output.
	ModeAlways
	// ModeNever disables progress output.
	ModeNever
)

// ParseProgressMode parses the --progress flag value.
func ParseProgressMode(value string) (ProgressMode, error) {
	switch value {
	case "auto", "":
		return ModeAuto, nil
	case "always":
		return ModeAlways, nil
	case "never":
		return ModeNever, nil
	default:
		return ModeAuto, zerr.With(zerr.Wrap(domain.ErrInvalidInput, "progress must be one of auto, always, never"), "progress", value)
	}
}

// DetectEnvironment reports whether stderr is a TTY and no CI environment variable is set.
func DetectEnvironment() bool {
	isTTY := term.IsTerminal(int(os.Stderr.Fd()))

	ci := os.Getenv("CI")
	isCI := ci == "true" || ci == "1"

	return isTTY && !isCI
}

// ResolveProgress applies the user's mode to the auto-detected environment.
func ResolveProgress(mode ProgressMode, interactive bool) bool {
	switch mode {
	case ModeAlways:
		return true
	case ModeNever:
		return false
	default:
		return interactive
	}
}
