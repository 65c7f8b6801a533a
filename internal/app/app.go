// Package app implements the application layer for bam2cram-check.
package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/wtsi-hgi/bam2cram-check/internal/adapters/cache"
	"github.com/wtsi-hgi/bam2cram-check/internal/adapters/config"
	"github.com/wtsi-hgi/bam2cram-check/internal/adapters/detector"
	"github.com/wtsi-hgi/bam2cram-check/internal/adapters/linear"
	"github.com/wtsi-hgi/bam2cram-check/internal/adapters/logger"
	"github.com/wtsi-hgi/bam2cram-check/internal/adapters/samtools"
	"github.com/wtsi-hgi/bam2cram-check/internal/adapters/telemetry"
	"github.com/wtsi-hgi/bam2cram-check/internal/core/domain"
	"github.com/wtsi-hgi/bam2cram-check/internal/core/ports"
	"github.com/wtsi-hgi/bam2cram-check/internal/engine/verifier"
	"go.trai.ch/zerr"
)

// LogFormatJSON selects structured JSON log records.
const LogFormatJSON = "json"

// configurableLogger is implemented by loggers whose output can be adjusted at runtime.
type configurableLogger interface {
	SetOutput(w io.Writer)
	SetJSON(enable bool)
	SetLevel(level slog.Level)
}

// App represents the main application logic.
type App struct {
	configLoader ports.ConfigLoader
	runner       ports.CommandRunner
	inspector    ports.FileInspector
	logger       ports.Logger
	stdout       io.Writer
	stderr       io.Writer
	interactive  func() bool
}

// New creates a new App instance.
func New(
	loader ports.ConfigLoader,
	runner ports.CommandRunner,
	inspector ports.FileInspector,
	log ports.Logger,
) *App {
	return &App{
		configLoader: loader,
		runner:       runner,
		inspector:    inspector,
		logger:       log,
		stdout:       os.Stdout,
		stderr:       os.Stderr,
		interactive:  detector.DetectEnvironment,
	}
}

// WithOutput sets the streams used for findings and progress output.
// This is primarily used for testing.
func (a *App) WithOutput(stdout, stderr io.Writer) *App {
	a.stdout = stdout
	a.stderr = stderr
	return a
}

// WithInteractive overrides terminal detection for --progress auto.
func (a *App) WithInteractive(detect func() bool) *App {
	a.interactive = detect
	return a
}

// Overrides carries command line values that take precedence over the config file.
// Empty values keep the file's setting.
type Overrides struct {
	ConfigPath string
	Samtools   string
	Timeout    string
	Parallel   bool
}

// CheckOptions configuration for the Check method.
type CheckOptions struct {
	Overrides

	BAM       string
	CRAM      string
	ErrorFile string
	LogFile   string
	Verbosity int
	Progress  string
	LogFormat string
}

// Check compares a BAM file with its CRAM re-encoding and reports the findings.
// It returns domain.ErrNotEquivalent when at least one finding was collected.
func (a *App) Check(ctx context.Context, opts CheckOptions) error {
	if opts.BAM == "" || opts.CRAM == "" {
		return zerr.With(zerr.Wrap(domain.ErrMissingArgument, "both -b and -c are required"), "bam", opts.BAM)
	}

	// 1. Configure logging
	restore, err := a.configureLogger(opts.LogFile, opts.LogFormat, opts.Verbosity)
	if err != nil {
		return err
	}
	defer restore()

	// 2. Load configuration
	cfg, err := a.resolveConfig(opts.Overrides)
	if err != nil {
		return err
	}

	mode, err := detector.ParseProgressMode(opts.Progress)
	if err != nil {
		return err
	}

	// 3. Initialize Renderer and Telemetry
	var renderer ports.Renderer
	if detector.ResolveProgress(mode, a.interactive()) {
		renderer = linear.NewRenderer(a.stderr)
	}

	provider := telemetry.NewProvider(renderer)
	defer func() {
		_ = provider.Shutdown(context.WithoutCancel(ctx))
	}()

	// 4. Run the verifier
	tool := samtools.NewClient(a.runner, cfg.Tool, cfg.Timeout)
	v := verifier.New(tool, cache.NewStore(tool, a.inspector, a.logger), a.inspector, a.logger).
		WithTracer(provider.Tracer()).
		WithParallel(cfg.Parallel)

	verdict := v.Verify(ctx, opts.BAM, opts.CRAM)

	// 5. Report
	if verdict.Equivalent() {
		a.logger.Info(fmt.Sprintf("%s and %s are equivalent", opts.BAM, opts.CRAM))
		return nil
	}

	if err := a.writeFindings(opts.ErrorFile, verdict.Findings); err != nil {
		return err
	}

	return zerr.With(
		zerr.Wrap(domain.ErrNotEquivalent, fmt.Sprintf("%d finding(s)", len(verdict.Findings))),
		"cram", opts.CRAM,
	)
}

// CleanOptions configuration for the Clean method.
type CleanOptions struct {
	Overrides

	Files []string
	Force bool
}

// Clean removes the cached stats reports of the given data files.
// Without Force only reports older than their data file are removed.
func (a *App) Clean(_ context.Context, opts CleanOptions) error {
	if len(opts.Files) == 0 {
		return zerr.Wrap(domain.ErrMissingArgument, "no data files given")
	}

	cfg, err := a.resolveConfig(opts.Overrides)
	if err != nil {
		return err
	}

	tool := samtools.NewClient(a.runner, cfg.Tool, cfg.Timeout)
	store := cache.NewStore(tool, a.inspector, a.logger)

	var errs error
	removed := 0
	for _, file := range opts.Files {
		ok, err := store.Prune(file, domain.StatsPath(file), opts.Force)
		if err != nil {
			errs = errors.Join(errs, err)
			continue
		}
		if ok {
			removed++
		}
	}

	a.logger.Info(fmt.Sprintf("removed %d of %d stats file(s)", removed, len(opts.Files)))
	return errs
}

func (a *App) resolveConfig(o Overrides) (domain.Config, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return domain.Config{}, zerr.Wrap(err, "failed to determine working directory")
	}

	cfg, err := a.configLoader.Load(cwd, o.ConfigPath)
	if err != nil {
		return domain.Config{}, zerr.Wrap(err, "failed to load configuration")
	}

	if o.Samtools != "" {
		cfg.Tool = o.Samtools
	}
	if o.Timeout != "" {
		var timeout time.Duration
		if timeout, err = config.ParseTimeout(o.Timeout); err != nil {
			return domain.Config{}, err
		}
		cfg.Timeout = timeout
	}
	if o.Parallel {
		cfg.Parallel = true
	}

	return cfg, nil
}

// configureLogger applies level, format and destination to the logger.
// The returned func closes the log file and points the logger back at stderr.
func (a *App) configureLogger(logFile, format string, verbosity int) (func(), error) {
	cl, ok := a.logger.(configurableLogger)
	if !ok {
		return func() {}, nil
	}

	cl.SetLevel(logger.LevelForVerbosity(verbosity))
	cl.SetJSON(format == LogFormatJSON)

	if logFile == "" {
		return func() {}, nil
	}

	//nolint:gosec // log file path is chosen by the operator
	f, err := os.OpenFile(logFile, os.O_WRONLY|os.O_CREATE|os.O_APPEND, domain.FilePerm)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(domain.ErrLogFileOpenFailed, err.Error()), "path", logFile)
	}
	cl.SetOutput(f)

	return func() {
		cl.SetOutput(a.stderr)
		_ = f.Close()
	}, nil
}

// writeFindings writes one finding per line to path, or to stdout when path is empty.
func (a *App) writeFindings(path string, findings []string) error {
	body := strings.Join(findings, "\n") + "\n"

	if path == "" {
		_, err := io.WriteString(a.stdout, body)
		return err
	}

	if err := os.WriteFile(path, []byte(body), domain.FilePerm); err != nil {
		return zerr.With(zerr.Wrap(domain.ErrErrorFileWriteFailed, err.Error()), "path", path)
	}
	a.logger.Info(fmt.Sprintf("wrote %d finding(s) to %s", len(findings), path))
	return nil
}
