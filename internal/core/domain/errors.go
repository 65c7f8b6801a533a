package domain

import "go.trai.ch/zerr"

var (
	// ErrInvalidInput is returned when a cache or comparison operation receives missing or unusable arguments.
	ErrInvalidInput = zerr.New("invalid input")

	// ErrNotFound is returned when a file that was assumed to exist is missing or unreadable.
	ErrNotFound = zerr.New("file not found or not readable")

	// ErrExecutionFailed is returned when the external tool cannot be started, exits non-zero or writes to stderr.
	ErrExecutionFailed = zerr.New("tool execution failed")

	// ErrExecutionTimedOut is returned when an external tool invocation exceeds its deadline.
	// It wraps ErrExecutionFailed.
	ErrExecutionTimedOut = zerr.Wrap(ErrExecutionFailed, "tool execution timed out")

	// ErrExecutionCancelled is returned when the run was interrupted while a tool was running.
	ErrExecutionCancelled = zerr.Wrap(ErrExecutionFailed, "tool execution cancelled")

	// ErrUnsupportedVersion is returned when the external tool is too old or reports an unparseable version.
	ErrUnsupportedVersion = zerr.New("unsupported samtools version")

	// ErrNotEquivalent is returned by the application when a check produced findings.
	ErrNotEquivalent = zerr.New("BAM and CRAM are not equivalent")

	// ErrMissingArgument is returned when a required command line argument is absent.
	ErrMissingArgument = zerr.New("missing required argument")

	// ErrCacheReadFailed is returned when a stats cache file cannot be read.
	ErrCacheReadFailed = zerr.New("failed to read stats cache file")

	// ErrCacheWriteFailed is returned when a stats cache file cannot be written.
	ErrCacheWriteFailed = zerr.New("failed to write stats cache file")

	// ErrCacheRemoveFailed is returned when a stats cache file cannot be removed.
	ErrCacheRemoveFailed = zerr.New("failed to remove stats cache file")

	// ErrConfigReadFailed is returned when the config file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read config file")

	// ErrConfigParseFailed is returned when the config file cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse config file")

	// ErrInvalidTimeout is returned when a configured timeout is not a valid positive duration.
	ErrInvalidTimeout = zerr.New("invalid timeout, expected a positive duration such as 30m")

	// ErrErrorFileWriteFailed is returned when the findings cannot be written to the error file.
	ErrErrorFileWriteFailed = zerr.New("failed to write error file")

	// ErrLogFileOpenFailed is returned when the log file cannot be opened.
	ErrLogFileOpenFailed = zerr.New("failed to open log file")
)
