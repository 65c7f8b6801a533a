package comparator_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/wtsi-hgi/bam2cram-check/internal/engine/comparator"
)

func TestExtractFingerprint(t *testing.T) {
	tests := []struct {
		name   string
		report string
		want   string
		wantOK bool
	}{
		{"empty", "", "", false},
		{"single line without marker", "SN\traw total sequences:\t100", "", false},
		{"multi line without marker", "# comment\nSN\t1\nFFQ\t1\t2\n", "", false},
		{"marker mid line is ignored", "SN CHK 1234\n", "", false},
		{"single marker line", "CHK\t1a2b\t3c4d\t5e6f", "CHK\t1a2b\t3c4d\t5e6f", true},
		{"first marker wins", "# header\nCHK 1\nCHK 2\n", "CHK 1", true},
		{"crlf line endings", "SN\t1\r\nCHK\tab\r\n", "CHK\tab", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := comparator.ExtractFingerprint(tt.report)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func in(name, text string) comparator.Input {
	return comparator.Input{Name: name, Text: text}
}

func TestCompareFingerprints(t *testing.T) {
	tests := []struct {
		name      string
		a, b      string
		wantCount int
	}{
		{"identical reports", "stats1\nCHK 1234", "stats1\nCHK 1234", 0},
		{"same fingerprint different reports", "stats1\nCHK 1234", "stats2\nCHK 1234", 0},
		{"fingerprints differ", "stats1\nCHK 1234", "stats2\nCHK 7777", 1},
		{"both missing fingerprints", "stats1\n", "stats2\n", 2},
		{"only first missing", "stats1\n", "stats2\nCHK 7777", 2},
		{"only second missing", "stats1\nCHK 1234", "stats2\n", 2},
		{"second empty", "stats1\nCHK 1234", "", 1},
		{"first empty", "", "stats2\nCHK 1234", 1},
		{"both empty", "", "", 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			findings := comparator.CompareFingerprints(in("a.bam", tt.a), in("a.cram", tt.b))
			assert.Len(t, findings, tt.wantCount, "findings: %v", findings)
		})
	}
}

func TestCompareFingerprints_Messages(t *testing.T) {
	findings := comparator.CompareFingerprints(in("a.bam", "stats1\n"), in("a.cram", "stats2\nCHK 7777"))
	assert.Equal(t, []string{
		"no CHK line in the samtools stats of a.bam",
		"stats sequence checksum differs: a.bam: <none> and a.cram: CHK 7777",
	}, findings)

	findings = comparator.CompareFingerprints(in("a.bam", "x"), in("a.cram", ""))
	assert.Equal(t, []string{"missing stats report, cannot compare a.bam and a.cram"}, findings)
}

func TestCompareFingerprints_BothMissingAreEqual(t *testing.T) {
	findings := comparator.CompareFingerprints(in("a.bam", "stats1\n"), in("a.cram", "stats2\n"))
	for _, f := range findings {
		assert.NotContains(t, f, "differs")
	}
}

func TestCompareRawSummaries(t *testing.T) {
	summary := "100 + 0 in total (QC-passed reads + QC-failed reads)\n0 + 0 secondary\n"

	assert.Empty(t, comparator.CompareRawSummaries(in("a.bam", summary), in("a.cram", summary)))

	findings := comparator.CompareRawSummaries(in("a.bam", summary), in("a.cram", "99 + 0 in total\n"))
	assert.Len(t, findings, 1)
	assert.Contains(t, findings[0], summary[:20])
	assert.Contains(t, findings[0], "99 + 0 in total")
	assert.Contains(t, findings[0], "a.bam")
	assert.Contains(t, findings[0], "a.cram")

	assert.Len(t, comparator.CompareRawSummaries(in("a.bam", ""), in("a.cram", summary)), 1)
	assert.Len(t, comparator.CompareRawSummaries(in("a.bam", summary), in("a.cram", "")), 1)
}

func TestCompareRawSummaries_TrailingNewlineMatters(t *testing.T) {
	findings := comparator.CompareRawSummaries(in("a.bam", "1 + 0\n"), in("a.cram", "1 + 0"))
	assert.Len(t, findings, 1)
}
