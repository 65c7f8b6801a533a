// Package verifier runs the BAM/CRAM equivalence check as a sequence of gated stages.
package verifier

import (
	"context"
	"fmt"

	"github.com/wtsi-hgi/bam2cram-check/internal/core/domain"
	"github.com/wtsi-hgi/bam2cram-check/internal/core/ports"
	"github.com/wtsi-hgi/bam2cram-check/internal/engine/comparator"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"
	"golang.org/x/sync/errgroup"
)

// Stage names, also used as span names.
const (
	StagePaths       = "validate paths"
	StageReadability = "check readability"
	StageVersion     = "check samtools version"
	StageQuickcheck  = "quickcheck"
	StageFlagstat    = "compare flagstat"
	StageStats       = "compare stats"
)

// Verifier checks a BAM file against its CRAM re-encoding.
// It never fails: every problem becomes a finding in the returned verdict.
type Verifier struct {
	tool      ports.AlignmentTool
	cache     ports.StatsCache
	inspector ports.FileInspector
	logger    ports.Logger
	tracer    trace.Tracer
	parallel  bool
}

// New creates a Verifier that runs both sides of each stage sequentially and records no spans.
func New(
	tool ports.AlignmentTool,
	cache ports.StatsCache,
	inspector ports.FileInspector,
	logger ports.Logger,
) *Verifier {
	return &Verifier{
		tool:      tool,
		cache:     cache,
		inspector: inspector,
		logger:    logger,
		tracer:    noop.NewTracerProvider().Tracer(""),
	}
}

// WithTracer sets the tracer used to open one span per stage.
func (v *Verifier) WithTracer(tracer trace.Tracer) *Verifier {
	if tracer != nil {
		v.tracer = tracer
	}
	return v
}

// WithParallel makes the quickcheck, flagstat and stats stages process both files concurrently.
func (v *Verifier) WithParallel(parallel bool) *Verifier {
	v.parallel = parallel
	return v
}

type stageFunc func(ctx context.Context, verdict domain.Verdict) []string

// Verify runs every stage in order and returns the collected findings.
// Path, readability, version and quickcheck failures stop the remaining stages.
func (v *Verifier) Verify(ctx context.Context, bamPath, cramPath string) domain.Verdict {
	verdict := domain.Verdict{BAM: bamPath, CRAM: cramPath}

	stages := []struct {
		name  string
		run   stageFunc
		gates bool
	}{
		{StagePaths, v.checkPaths, true},
		{StageReadability, v.checkReadability, true},
		{StageVersion, v.checkVersion, true},
		{StageQuickcheck, v.quickcheck, true},
		{StageFlagstat, v.compareFlagstat, false},
		{StageStats, v.compareStats, false},
	}

	for _, stage := range stages {
		findings := v.runStage(ctx, stage.name, verdict, stage.run)
		verdict.Findings = append(verdict.Findings, findings...)
		if stage.gates && len(findings) > 0 {
			v.logger.Debug(fmt.Sprintf("%s failed; skipping remaining checks", stage.name))
			break
		}
	}

	return verdict
}

func (v *Verifier) runStage(ctx context.Context, name string, verdict domain.Verdict, run stageFunc) []string {
	ctx, span := v.tracer.Start(ctx, name, trace.WithAttributes(
		attribute.String("bam", verdict.BAM),
		attribute.String("cram", verdict.CRAM),
	))
	defer span.End()

	findings := run(ctx, verdict)
	span.SetAttributes(attribute.Int(domain.FindingsKey, len(findings)))
	if len(findings) > 0 {
		span.SetStatus(codes.Error, fmt.Sprintf("%d finding(s)", len(findings)))
	}
	return findings
}

// forEachSide calls fn for the BAM and the CRAM side, concurrently when parallel is set.
// fn must only write to the slot of its own side.
func (v *Verifier) forEachSide(ctx context.Context, fn func(ctx context.Context, side domain.Side)) {
	if !v.parallel {
		for _, side := range domain.Sides {
			fn(ctx, side)
		}
		return
	}

	g, gctx := errgroup.WithContext(ctx)
	for _, side := range domain.Sides {
		g.Go(func() error {
			fn(gctx, side)
			return nil
		})
	}
	_ = g.Wait()
}

func (v *Verifier) checkPaths(_ context.Context, verdict domain.Verdict) []string {
	var findings []string
	for _, side := range domain.Sides {
		if path := verdict.Path(side); !v.inspector.IsRegularFile(path) {
			findings = append(findings, fmt.Sprintf("the %s file path %q is not valid", side, path))
		}
	}
	return findings
}

func (v *Verifier) checkReadability(_ context.Context, verdict domain.Verdict) []string {
	var findings []string
	for _, side := range domain.Sides {
		if path := verdict.Path(side); !v.inspector.IsReadable(path) {
			findings = append(findings, fmt.Sprintf("cannot read %s file %s", side, path))
		}
	}
	return findings
}

func (v *Verifier) checkVersion(ctx context.Context, _ domain.Verdict) []string {
	out, err := v.tool.Version(ctx)
	if err != nil {
		return []string{"cannot get samtools version: " + err.Error()}
	}

	version, err := domain.ParseToolVersion(out)
	if err != nil {
		return []string{"cannot determine samtools version: " + err.Error()}
	}

	if !version.AtLeast(domain.MinimumToolVersion) {
		return []string{fmt.Sprintf(
			"samtools %s is not supported, version %s or newer is required",
			version, domain.MinimumToolVersion,
		)}
	}

	v.logger.Debug("using samtools " + version.String())
	return nil
}

func (v *Verifier) quickcheck(ctx context.Context, verdict domain.Verdict) []string {
	var errs [2]error
	v.forEachSide(ctx, func(ctx context.Context, side domain.Side) {
		errs[side] = v.tool.Quickcheck(ctx, verdict.Path(side))
	})

	var findings []string
	for _, side := range domain.Sides {
		if errs[side] != nil {
			findings = append(findings, fmt.Sprintf(
				"samtools quickcheck failed for %s file %s: %v", side, verdict.Path(side), errs[side],
			))
		}
	}
	return findings
}

func (v *Verifier) compareFlagstat(ctx context.Context, verdict domain.Verdict) []string {
	var outs [2]string
	var errs [2]error
	v.forEachSide(ctx, func(ctx context.Context, side domain.Side) {
		outs[side], errs[side] = v.tool.Flagstat(ctx, verdict.Path(side))
	})

	var findings []string
	for _, side := range domain.Sides {
		if errs[side] != nil {
			findings = append(findings, fmt.Sprintf(
				"cannot get samtools flagstat for %s file %s: %v", side, verdict.Path(side), errs[side],
			))
		}
	}
	if len(findings) > 0 {
		return findings
	}

	v.logger.Debug(fmt.Sprintf(
		"comparing flagstat (xxh64 %s and %s)", domain.Digest(outs[domain.SideBAM]), domain.Digest(outs[domain.SideCRAM]),
	))
	return comparator.CompareRawSummaries(
		comparator.Input{Name: verdict.BAM, Text: outs[domain.SideBAM]},
		comparator.Input{Name: verdict.CRAM, Text: outs[domain.SideCRAM]},
	)
}

func (v *Verifier) compareStats(ctx context.Context, verdict domain.Verdict) []string {
	var entries [2]domain.CacheEntry
	var errs [2]error
	v.forEachSide(ctx, func(ctx context.Context, side domain.Side) {
		path := verdict.Path(side)
		entries[side], errs[side] = v.cache.Fetch(ctx, path, domain.StatsPath(path))
	})

	var findings []string
	for _, side := range domain.Sides {
		if errs[side] != nil {
			findings = append(findings, fmt.Sprintf(
				"cannot get samtools stats for %s file %s: %v", side, verdict.Path(side), errs[side],
			))
		}
	}

	if len(findings) == 0 {
		findings = append(findings, comparator.CompareFingerprints(
			comparator.Input{Name: verdict.BAM, Text: entries[domain.SideBAM].Content},
			comparator.Input{Name: verdict.CRAM, Text: entries[domain.SideCRAM].Content},
		)...)
	}

	for _, side := range domain.Sides {
		entry := entries[side]
		if errs[side] != nil || !entry.Status.Regenerated() {
			continue
		}
		if _, err := v.cache.Persist(entry.Content, entry.CachePath); err != nil {
			findings = append(findings, fmt.Sprintf(
				"cannot save stats to disk for %s file %s: %v", side, verdict.Path(side), err,
			))
		}
	}

	return findings
}
