// Package comparator compares the reports the alignment tool produced for two files.
//
// Every function is pure: mismatches are returned as human readable findings, never as errors.
package comparator

import (
	"fmt"
	"strings"

	"github.com/wtsi-hgi/bam2cram-check/internal/core/domain"
)

// absent renders a missing fingerprint in findings.
const absent = "<none>"

// Input is a report together with the name of the file it describes.
type Input struct {
	Name string
	Text string
}

// ExtractFingerprint returns the first line of report that starts with the CHK marker.
func ExtractFingerprint(report string) (string, bool) {
	for line := range strings.Lines(report) {
		line = strings.TrimRight(line, "\r\n")
		if strings.HasPrefix(line, domain.FingerprintMarker) {
			return line, true
		}
	}
	return "", false
}

// CompareFingerprints compares the CHK lines of two stats reports.
// An empty report yields a single finding. Otherwise each report without a CHK line
// yields a finding, followed by one more when the two lines differ.
func CompareFingerprints(a, b Input) []string {
	if a.Text == "" || b.Text == "" {
		return []string{fmt.Sprintf("missing stats report, cannot compare %s and %s", a.Name, b.Name)}
	}

	fpA, okA := ExtractFingerprint(a.Text)
	fpB, okB := ExtractFingerprint(b.Text)

	var findings []string
	if !okA {
		findings = append(findings, "no CHK line in the samtools stats of "+a.Name)
	}
	if !okB {
		findings = append(findings, "no CHK line in the samtools stats of "+b.Name)
	}

	if okA != okB || fpA != fpB {
		findings = append(findings, fmt.Sprintf(
			"stats sequence checksum differs: %s: %s and %s: %s",
			a.Name, orAbsent(fpA, okA), b.Name, orAbsent(fpB, okB),
		))
	}

	return findings
}

// CompareRawSummaries compares two summaries byte for byte.
func CompareRawSummaries(a, b Input) []string {
	if a.Text == "" || b.Text == "" {
		return []string{fmt.Sprintf("missing flagstat output, cannot compare %s and %s", a.Name, b.Name)}
	}
	if a.Text == b.Text {
		return nil
	}
	return []string{fmt.Sprintf(
		"flagstat differs: %s:\n%s\nand %s:\n%s",
		a.Name, strings.TrimRight(a.Text, "\n"), b.Name, strings.TrimRight(b.Text, "\n"),
	)}
}

func orAbsent(fp string, ok bool) string {
	if !ok {
		return absent
	}
	return fp
}
