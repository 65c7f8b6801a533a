// Package style holds the colours and icons shared by log records and stage progress.
package style

import (
	"log/slog"

	"github.com/charmbracelet/lipgloss"
)

// Palette.
var (
	Accent  = lipgloss.Color("#8B5CF6")
	Muted   = lipgloss.Color("#667085")
	Pass    = lipgloss.Color("#22A06B")
	Fail    = lipgloss.Color("#D93025")
	Caution = lipgloss.Color("#F59E0B")
)

// Icons.
const (
	Check   = "✓"
	Cross   = "✗"
	Warning = "!"
	Dot     = "●"
	Circle  = "○"
)

// Mark is the icon and colour something is rendered with. An empty Icon leaves text unprefixed.
type Mark struct {
	Icon  string
	Color lipgloss.Color
}

// Prefix returns text preceded by the mark's icon.
func (m Mark) Prefix(text string) string {
	if m.Icon == "" {
		return text
	}
	return m.Icon + " " + text
}

// ForLevel returns the mark for log records at level.
// Info records carry no icon so routine progress reads as plain text.
func ForLevel(level slog.Level) Mark {
	switch {
	case level >= slog.LevelError:
		return Mark{Icon: Cross, Color: Fail}
	case level >= slog.LevelWarn:
		return Mark{Icon: Warning, Color: Caution}
	case level < slog.LevelInfo:
		return Mark{Icon: Circle, Color: Accent}
	default:
		return Mark{Color: Muted}
	}
}

// ForStage returns the mark for a finished check stage.
func ForStage(failed bool) Mark {
	if failed {
		return Mark{Icon: Cross, Color: Fail}
	}
	return Mark{Icon: Check, Color: Pass}
}
