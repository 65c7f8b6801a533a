package verifier_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wtsi-hgi/bam2cram-check/internal/core/domain"
	"github.com/wtsi-hgi/bam2cram-check/internal/core/ports/mocks"
	"github.com/wtsi-hgi/bam2cram-check/internal/engine/verifier"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
	"go.uber.org/mock/gomock"
)

const (
	bamPath  = "/data/sample.bam"
	cramPath = "/data/sample.cram"

	flagstatOut = "100 + 0 in total (QC-passed reads + QC-failed reads)\n"
	statsOut    = "# header\nCHK\t1a2b3c\t4d5e6f\t7a8b9c\nSN\traw total sequences:\t100\n"
)

type fixture struct {
	tool      *mocks.MockAlignmentTool
	cache     *mocks.MockStatsCache
	inspector *mocks.MockFileInspector
	logger    *mocks.MockLogger
	verifier  *verifier.Verifier
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	ctrl := gomock.NewController(t)

	f := &fixture{
		tool:      mocks.NewMockAlignmentTool(ctrl),
		cache:     mocks.NewMockStatsCache(ctrl),
		inspector: mocks.NewMockFileInspector(ctrl),
		logger:    mocks.NewMockLogger(ctrl),
	}
	f.logger.EXPECT().Debug(gomock.Any()).AnyTimes()
	f.verifier = verifier.New(f.tool, f.cache, f.inspector, f.logger)
	return f
}

func (f *fixture) expectValidFiles() {
	f.inspector.EXPECT().IsRegularFile(bamPath).Return(true)
	f.inspector.EXPECT().IsRegularFile(cramPath).Return(true)
	f.inspector.EXPECT().IsReadable(bamPath).Return(true)
	f.inspector.EXPECT().IsReadable(cramPath).Return(true)
}

func (f *fixture) expectVersion(out string) {
	f.tool.EXPECT().Version(gomock.Any()).Return(out, nil)
}

func (f *fixture) expectQuickcheckPass() {
	f.tool.EXPECT().Quickcheck(gomock.Any(), bamPath).Return(nil)
	f.tool.EXPECT().Quickcheck(gomock.Any(), cramPath).Return(nil)
}

func (f *fixture) expectFlagstat(bam, cram string) {
	f.tool.EXPECT().Flagstat(gomock.Any(), bamPath).Return(bam, nil)
	f.tool.EXPECT().Flagstat(gomock.Any(), cramPath).Return(cram, nil)
}

func hit(path, content string) domain.CacheEntry {
	return domain.CacheEntry{
		DataPath:  path,
		CachePath: domain.StatsPath(path),
		Content:   content,
		Status:    domain.CacheHit,
	}
}

func (f *fixture) expectStatsHits(bam, cram string) {
	f.cache.EXPECT().Fetch(gomock.Any(), bamPath, bamPath+".stats").Return(hit(bamPath, bam), nil)
	f.cache.EXPECT().Fetch(gomock.Any(), cramPath, cramPath+".stats").Return(hit(cramPath, cram), nil)
}

func TestVerify_Equivalent(t *testing.T) {
	f := newFixture(t)
	f.expectValidFiles()
	f.expectVersion("samtools 1.17\nUsing htslib 1.17\n")
	f.expectQuickcheckPass()
	f.expectFlagstat(flagstatOut, flagstatOut)
	f.expectStatsHits(statsOut, statsOut)

	verdict := f.verifier.Verify(context.Background(), bamPath, cramPath)

	assert.True(t, verdict.Equivalent())
	assert.Empty(t, verdict.Findings)
	assert.Equal(t, bamPath, verdict.BAM)
	assert.Equal(t, cramPath, verdict.CRAM)
}

func TestVerify_InvalidPathsShortCircuit(t *testing.T) {
	f := newFixture(t)
	f.inspector.EXPECT().IsRegularFile(bamPath).Return(false)
	f.inspector.EXPECT().IsRegularFile(cramPath).Return(false)

	verdict := f.verifier.Verify(context.Background(), bamPath, cramPath)

	require.Len(t, verdict.Findings, 2)
	assert.Contains(t, verdict.Findings[0], "BAM")
	assert.Contains(t, verdict.Findings[0], bamPath)
	assert.Contains(t, verdict.Findings[1], "CRAM")
	assert.Contains(t, verdict.Findings[1], cramPath)
}

func TestVerify_UnreadableShortCircuit(t *testing.T) {
	f := newFixture(t)
	f.inspector.EXPECT().IsRegularFile(gomock.Any()).Return(true).Times(2)
	f.inspector.EXPECT().IsReadable(bamPath).Return(true)
	f.inspector.EXPECT().IsReadable(cramPath).Return(false)

	verdict := f.verifier.Verify(context.Background(), bamPath, cramPath)

	assert.Equal(t, []string{"cannot read CRAM file " + cramPath}, verdict.Findings)
}

func TestVerify_VersionGate(t *testing.T) {
	tests := []struct {
		name    string
		out     string
		err     error
		wantSub string
	}{
		{name: "too old", out: "samtools 1.2\n", wantSub: "samtools 1.2 is not supported"},
		{name: "major zero", out: "samtools 0.1.19\n", wantSub: "samtools 0.1 is not supported"},
		{name: "unparseable", out: "samtools\n", wantSub: "cannot determine samtools version"},
		{name: "tool failure", err: domain.ErrExecutionFailed, wantSub: "cannot get samtools version"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			f.expectValidFiles()
			f.tool.EXPECT().Version(gomock.Any()).Return(tt.out, tt.err)

			verdict := f.verifier.Verify(context.Background(), bamPath, cramPath)

			require.Len(t, verdict.Findings, 1)
			assert.Contains(t, verdict.Findings[0], tt.wantSub)
		})
	}
}

func TestVerify_MinimumVersionAccepted(t *testing.T) {
	f := newFixture(t)
	f.expectValidFiles()
	f.expectVersion("samtools 1.3\n")
	f.expectQuickcheckPass()
	f.expectFlagstat(flagstatOut, flagstatOut)
	f.expectStatsHits(statsOut, statsOut)

	verdict := f.verifier.Verify(context.Background(), bamPath, cramPath)

	assert.Empty(t, verdict.Findings)
}

func TestVerify_BothQuickchecksFail(t *testing.T) {
	f := newFixture(t)
	f.expectValidFiles()
	f.expectVersion("samtools 1.9\n")
	f.tool.EXPECT().Quickcheck(gomock.Any(), bamPath).Return(domain.ErrExecutionFailed)
	f.tool.EXPECT().Quickcheck(gomock.Any(), cramPath).Return(domain.ErrExecutionFailed)

	verdict := f.verifier.Verify(context.Background(), bamPath, cramPath)

	require.Len(t, verdict.Findings, 2)
	assert.Contains(t, verdict.Findings[0], bamPath)
	assert.Contains(t, verdict.Findings[1], cramPath)
}

func TestVerify_FlagstatFailureStillComparesStats(t *testing.T) {
	f := newFixture(t)
	f.expectValidFiles()
	f.expectVersion("samtools 1.9\n")
	f.expectQuickcheckPass()
	f.tool.EXPECT().Flagstat(gomock.Any(), bamPath).Return("", domain.ErrExecutionFailed)
	f.tool.EXPECT().Flagstat(gomock.Any(), cramPath).Return(flagstatOut, nil)
	f.expectStatsHits(statsOut, "CHK\tffffff\tffffff\tffffff\n")

	verdict := f.verifier.Verify(context.Background(), bamPath, cramPath)

	require.Len(t, verdict.Findings, 2)
	assert.Contains(t, verdict.Findings[0], "cannot get samtools flagstat for BAM file")
	assert.Contains(t, verdict.Findings[1], "stats sequence checksum differs")
}

func TestVerify_FlagstatDiffers(t *testing.T) {
	f := newFixture(t)
	f.expectValidFiles()
	f.expectVersion("samtools 1.9\n")
	f.expectQuickcheckPass()
	f.expectFlagstat(flagstatOut, "99 + 0 in total (QC-passed reads + QC-failed reads)\n")
	f.expectStatsHits(statsOut, statsOut)

	verdict := f.verifier.Verify(context.Background(), bamPath, cramPath)

	require.Len(t, verdict.Findings, 1)
	assert.Contains(t, verdict.Findings[0], "flagstat differs")
	assert.Contains(t, verdict.Findings[0], "99 + 0 in total")
}

func TestVerify_StatsFetchFailureSkipsComparison(t *testing.T) {
	f := newFixture(t)
	f.expectValidFiles()
	f.expectVersion("samtools 1.9\n")
	f.expectQuickcheckPass()
	f.expectFlagstat(flagstatOut, flagstatOut)
	f.cache.EXPECT().Fetch(gomock.Any(), bamPath, gomock.Any()).Return(hit(bamPath, statsOut), nil)
	f.cache.EXPECT().Fetch(gomock.Any(), cramPath, gomock.Any()).Return(domain.CacheEntry{}, domain.ErrExecutionFailed)

	verdict := f.verifier.Verify(context.Background(), bamPath, cramPath)

	require.Len(t, verdict.Findings, 1)
	assert.Contains(t, verdict.Findings[0], "cannot get samtools stats for CRAM file")
}

func TestVerify_PersistsRegeneratedReports(t *testing.T) {
	f := newFixture(t)
	f.expectValidFiles()
	f.expectVersion("samtools 1.9\n")
	f.expectQuickcheckPass()
	f.expectFlagstat(flagstatOut, flagstatOut)

	missed := hit(cramPath, statsOut)
	missed.Status = domain.CacheMiss
	f.cache.EXPECT().Fetch(gomock.Any(), bamPath, gomock.Any()).Return(hit(bamPath, statsOut), nil)
	f.cache.EXPECT().Fetch(gomock.Any(), cramPath, gomock.Any()).Return(missed, nil)
	f.cache.EXPECT().Persist(statsOut, cramPath+".stats").Return(true, nil)

	verdict := f.verifier.Verify(context.Background(), bamPath, cramPath)

	assert.Empty(t, verdict.Findings)
}

func TestVerify_PersistFailureIsAFinding(t *testing.T) {
	f := newFixture(t)
	f.expectValidFiles()
	f.expectVersion("samtools 1.9\n")
	f.expectQuickcheckPass()
	f.expectFlagstat(flagstatOut, flagstatOut)

	bam := hit(bamPath, statsOut)
	bam.Status = domain.CacheStale
	cram := hit(cramPath, "CHK\t000000\t000000\t000000\n")
	cram.Status = domain.CacheMiss
	f.cache.EXPECT().Fetch(gomock.Any(), bamPath, gomock.Any()).Return(bam, nil)
	f.cache.EXPECT().Fetch(gomock.Any(), cramPath, gomock.Any()).Return(cram, nil)
	f.cache.EXPECT().Persist(bam.Content, bam.CachePath).Return(false, nil)
	f.cache.EXPECT().Persist(cram.Content, cram.CachePath).Return(false, domain.ErrCacheWriteFailed)

	verdict := f.verifier.Verify(context.Background(), bamPath, cramPath)

	require.Len(t, verdict.Findings, 2)
	assert.Contains(t, verdict.Findings[0], "stats sequence checksum differs")
	assert.Contains(t, verdict.Findings[1], "cannot save stats to disk for CRAM file")
}

func TestVerify_ParallelKeepsFindingOrder(t *testing.T) {
	f := newFixture(t)
	f.verifier.WithParallel(true)
	f.expectValidFiles()
	f.expectVersion("samtools 1.9\n")
	f.tool.EXPECT().Quickcheck(gomock.Any(), bamPath).Return(errors.New("bam truncated"))
	f.tool.EXPECT().Quickcheck(gomock.Any(), cramPath).Return(errors.New("cram truncated"))

	verdict := f.verifier.Verify(context.Background(), bamPath, cramPath)

	require.Len(t, verdict.Findings, 2)
	assert.Contains(t, verdict.Findings[0], "bam truncated")
	assert.Contains(t, verdict.Findings[1], "cram truncated")
}

func TestVerify_ParallelEquivalent(t *testing.T) {
	f := newFixture(t)
	f.verifier.WithParallel(true)
	f.expectValidFiles()
	f.expectVersion("samtools 1.9\n")
	f.expectQuickcheckPass()
	f.expectFlagstat(flagstatOut, flagstatOut)
	f.expectStatsHits(statsOut, statsOut)

	verdict := f.verifier.Verify(context.Background(), bamPath, cramPath)

	assert.True(t, verdict.Equivalent())
}

func TestVerify_RecordsSpanPerStage(t *testing.T) {
	recorder := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))
	t.Cleanup(func() { _ = tp.Shutdown(context.Background()) })

	f := newFixture(t)
	f.verifier.WithTracer(tp.Tracer("test"))
	f.expectValidFiles()
	f.expectVersion("samtools 1.9\n")
	f.tool.EXPECT().Quickcheck(gomock.Any(), bamPath).Return(nil)
	f.tool.EXPECT().Quickcheck(gomock.Any(), cramPath).Return(domain.ErrExecutionFailed)

	f.verifier.Verify(context.Background(), bamPath, cramPath)

	spans := recorder.Ended()
	require.Len(t, spans, 4)

	names := make([]string, 0, len(spans))
	for _, s := range spans {
		names = append(names, s.Name())
	}
	assert.Equal(t, []string{
		verifier.StagePaths,
		verifier.StageReadability,
		verifier.StageVersion,
		verifier.StageQuickcheck,
	}, names)
	assert.Equal(t, codes.Unset, spans[2].Status().Code)
	assert.Equal(t, codes.Error, spans[3].Status().Code)
	assert.Equal(t, "1 finding(s)", spans[3].Status().Description)
	assert.Contains(t, spans[3].Attributes(), attribute.Int(domain.FindingsKey, 1))
	assert.Contains(t, spans[2].Attributes(), attribute.Int(domain.FindingsKey, 0))
}
