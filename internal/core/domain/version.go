package domain

import (
	"fmt"
	"strconv"
	"strings"

	"go.trai.ch/zerr"
)

// MinimumToolVersion is the oldest samtools release whose stats output carries comparable CHK lines.
var MinimumToolVersion = ToolVersion{Major: 1, Minor: 3}

// ToolVersion is the major.minor release of the external tool.
type ToolVersion struct {
	Major int
	Minor int
}

// String renders the version as major.minor.
func (v ToolVersion) String() string {
	return fmt.Sprintf("%d.%d", v.Major, v.Minor)
}

// AtLeast reports whether v is the same release as min or newer.
func (v ToolVersion) AtLeast(minimum ToolVersion) bool {
	if v.Major != minimum.Major {
		return v.Major > minimum.Major
	}
	return v.Minor >= minimum.Minor
}

// ParseToolVersion parses the output of `samtools --version`.
// Only the first line is considered; it has the form "<tool> <major>.<minor>[...]".
// Trailing characters after the minor digits ("1.17-12-gabc", "1.3.1") are ignored.
func ParseToolVersion(output string) (ToolVersion, error) {
	firstLine, _, _ := strings.Cut(strings.TrimLeft(output, "\r\n"), "\n")
	fields := strings.Fields(firstLine)
	if len(fields) < 2 {
		return ToolVersion{}, zerr.With(
			zerr.Wrap(ErrUnsupportedVersion, "version line has no version field"),
			"line", firstLine,
		)
	}

	raw := fields[1]
	majorPart, rest, ok := strings.Cut(raw, ".")
	if !ok {
		return ToolVersion{}, zerr.With(zerr.Wrap(ErrUnsupportedVersion, "version has no minor part"), "version", raw)
	}

	major, err := strconv.Atoi(majorPart)
	if err != nil || major < 0 {
		return ToolVersion{}, zerr.With(zerr.Wrap(ErrUnsupportedVersion, "major version is not a number"), "version", raw)
	}

	minorDigits := leadingDigits(rest)
	if minorDigits == "" {
		return ToolVersion{}, zerr.With(zerr.Wrap(ErrUnsupportedVersion, "minor version is not a number"), "version", raw)
	}

	minor, err := strconv.Atoi(minorDigits)
	if err != nil {
		return ToolVersion{}, zerr.With(zerr.Wrap(ErrUnsupportedVersion, "minor version is not a number"), "version", raw)
	}

	return ToolVersion{Major: major, Minor: minor}, nil
}

func leadingDigits(s string) string {
	end := 0
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	return s[:end]
}
