package domain

import "strings"

// Side identifies one of the two files being compared.
type Side int

const (
	// SideBAM is the original BAM file.
	SideBAM Side = iota
	// SideCRAM is the CRAM re-encoding.
	SideCRAM
)

// Sides lists both sides in reporting order.
var Sides = [2]Side{SideBAM, SideCRAM}

// String returns the file format name of the side.
func (s Side) String() string {
	if s == SideCRAM {
		return "CRAM"
	}
	return "BAM"
}

// FindingsKey is the span attribute holding the number of findings a check stage produced.
const FindingsKey = "findings"

// Verdict is the outcome of comparing a BAM file with its CRAM re-encoding.
// Findings are ordered by the stage that produced them; an empty list means equivalent.
type Verdict struct {
	BAM      string
	CRAM     string
	Findings []string
}

// Path returns the file path of the given side.
func (v Verdict) Path(s Side) string {
	if s == SideCRAM {
		return v.CRAM
	}
	return v.BAM
}

// Equivalent reports whether no findings were collected.
func (v Verdict) Equivalent() bool {
	return len(v.Findings) == 0
}

// CommandResult captures the outcome of one external tool invocation.
type CommandResult struct {
	Args     []string
	Stdout   string
	Stderr   string
	ExitCode int
}

// Succeeded reports whether the invocation exited zero without writing to stderr.
// Whitespace-only stderr does not count as output.
func (r CommandResult) Succeeded() bool {
	return r.ExitCode == 0 && strings.TrimSpace(r.Stderr) == ""
}
