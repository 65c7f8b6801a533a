// Package output builds the termenv outputs used for log records and stage progress.
package output

import (
	"io"
	"os"

	"github.com/muesli/termenv"
)

// Mode selects how the colour profile of an output is chosen.
type Mode int

const (
	// Detect asks the terminal for its capabilities.
	Detect Mode = iota
	// Basic uses the 16 colour ANSI profile, which CI log viewers understand.
	Basic
)

// Profile returns the termenv profile for the mode. NO_COLOR always yields Ascii.
func (m Mode) Profile() termenv.Profile {
	if os.Getenv("NO_COLOR") != "" {
		return termenv.Ascii
	}
	if m == Basic {
		return termenv.ANSI
	}
	return termenv.EnvColorProfile()
}

// New creates a termenv.Output writing to w, or to stderr when w is nil.
// Outputs are always treated as terminals so the profile alone decides about escape codes.
func New(w io.Writer, mode Mode) *termenv.Output {
	if w == nil {
		w = os.Stderr
	}
	return termenv.NewOutput(w,
		termenv.WithProfile(mode.Profile()),
		termenv.WithTTY(true),
	)
}
