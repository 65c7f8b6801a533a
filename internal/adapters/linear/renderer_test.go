package linear_test

import (
	"bytes"
	"errors"
	"testing"
	"time"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/wtsi-hgi/bam2cram-check/internal/adapters/linear"
)

func TestRenderer_StageLifecycle(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	var buf bytes.Buffer
	r := linear.NewRenderer(&buf)

	start := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)
	r.OnStageStart("span1", "version", start)
	r.OnStageComplete("span1", start.Add(42*time.Millisecond), nil)

	r.OnStageStart("span2", "quickcheck", start)
	r.OnStageComplete("span2", start.Add(1500*time.Millisecond), errors.New("2 findings"))

	g := goldie.New(t)
	g.Assert(t, "stage_lifecycle", buf.Bytes())
}

func TestRenderer_UnknownSpan(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	var buf bytes.Buffer
	r := linear.NewRenderer(&buf)

	r.OnStageComplete("missing", time.Now(), nil)
	assert.Empty(t, buf.String())
}

func TestRenderer_ColoredOutput(t *testing.T) {
	t.Setenv("NO_COLOR", "")

	var buf bytes.Buffer
	r := linear.NewRenderer(&buf)

	start := time.Now()
	r.OnStageStart("span1", "stats", start)
	r.OnStageComplete("span1", start, nil)

	assert.Contains(t, buf.String(), "\x1b[")
	assert.Contains(t, buf.String(), "stats")
}
