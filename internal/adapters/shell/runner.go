// Package shell provides a subprocess runner for the external alignment tools.
package shell

import (
	"bytes"
	"context"
	"errors"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/wtsi-hgi/bam2cram-check/internal/core/domain"
	"github.com/wtsi-hgi/bam2cram-check/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/sys/unix"
)

// waitDelay bounds how long Run waits for the output pipes to close after the tool was killed.
const waitDelay = time.Second

// Runner implements ports.CommandRunner using os/exec.
type Runner struct {
	logger ports.Logger
	env    func() []string
}

// NewRunner creates a new Runner that logs the outcome of every invocation.
func NewRunner(logger ports.Logger) *Runner {
	return &Runner{
		logger: logger,
		env:    os.Environ,
	}
}

// Run executes args[0] and waits for it to finish.
func (r *Runner) Run(ctx context.Context, args []string) (domain.CommandResult, error) {
	result := domain.CommandResult{Args: args, ExitCode: -1}
	if len(args) == 0 {
		return result, zerr.Wrap(domain.ErrInvalidInput, "empty command")
	}

	cmdEnv := filterSystemEnv(r.env())
	name := args[0]

	executable := name
	if !filepath.IsAbs(name) && !strings.ContainsRune(name, filepath.Separator) {
		lp, err := lookPath(name, cmdEnv)
		if err != nil {
			r.logger.Error(zerr.With(zerr.Wrap(err, "could not locate executable"), "command", name))
			return result, zerr.With(zerr.Wrap(domain.ErrExecutionFailed, "executable not found"), "command", name)
		}
		executable = lp
	}

	var stdout, stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, executable, args[1:]...) //nolint:gosec // tool path comes from operator config
	cmd.Args[0] = name
	cmd.Env = cmdEnv
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	// Wrapper scripts fork the real tool; kill the whole group on cancellation.
	cmd.SysProcAttr = &syscall.SysProcAttr{Setpgid: true}
	cmd.Cancel = func() error {
		return unix.Kill(-cmd.Process.Pid, unix.SIGKILL)
	}
	cmd.WaitDelay = waitDelay

	r.logger.Debug("running " + strings.Join(args, " "))
	runErr := cmd.Run()

	result.Stdout = stdout.String()
	result.Stderr = stderr.String()
	if cmd.ProcessState != nil {
		result.ExitCode = cmd.ProcessState.ExitCode()
	}

	if ctxErr := ctx.Err(); ctxErr != nil {
		sentinel := domain.ErrExecutionCancelled
		if errors.Is(ctxErr, context.DeadlineExceeded) {
			sentinel = domain.ErrExecutionTimedOut
		}
		err := zerr.With(zerr.Wrap(sentinel, ctxErr.Error()), "command", strings.Join(args, " "))
		r.logger.Error(err)
		return result, err
	}

	var exitErr *exec.ExitError
	if runErr != nil && !errors.As(runErr, &exitErr) {
		r.logger.Error(zerr.With(zerr.Wrap(runErr, "could not start command"), "command", strings.Join(args, " ")))
		return result, zerr.With(zerr.Wrap(domain.ErrExecutionFailed, "could not start command"), "command", name)
	}

	if err := r.classify(result); err != nil {
		r.logger.Error(err)
		return result, err
	}

	r.logger.Info(strings.Join(args, " ") + " ran successfully")
	return result, nil
}

// classify turns a finished invocation into an error when it exited non-zero or wrote to stderr.
func (r *Runner) classify(result domain.CommandResult) error {
	if result.Succeeded() {
		return nil
	}

	command := strings.Join(result.Args, " ")
	stderr := strings.TrimSpace(result.Stderr)

	var err error
	switch {
	case result.ExitCode == 0:
		err = zerr.Wrap(domain.ErrExecutionFailed, command+" exited with status 0 but wrote to stderr")
	case stderr == "":
		err = zerr.Wrap(domain.ErrExecutionFailed, command+" wrote nothing to stderr but exited with a non-zero status")
	default:
		err = zerr.Wrap(domain.ErrExecutionFailed, command+" exited with a non-zero status and wrote to stderr")
	}

	err = zerr.With(err, "exit_code", result.ExitCode)
	if stderr != "" {
		err = zerr.With(err, "stderr", stderr)
	}
	return err
}

// allowListedEnvVars are the system environment variables inherited by the tool.
// REF_PATH and REF_CACHE locate the reference sequences CRAM decoding needs.
var allowListedEnvVars = map[string]struct{}{
	"HOME":      {},
	"USER":      {},
	"TERM":      {},
	"PATH":      {},
	"TMPDIR":    {},
	"REF_PATH":  {},
	"REF_CACHE": {},
}

func filterSystemEnv(sysEnv []string) []string {
	env := make([]string, 0, len(allowListedEnvVars))
	for _, entry := range sysEnv {
		k, _, ok := strings.Cut(entry, "=")
		if !ok {
			continue
		}
		if _, allowed := allowListedEnvVars[k]; allowed {
			env = append(env, entry)
		}
	}
	return env
}

// lookPath searches for an executable in the directories named by the PATH entry of env.
func lookPath(file string, env []string) (string, error) {
	var path string
	for _, e := range env {
		if strings.HasPrefix(e, "PATH=") {
			path = strings.TrimPrefix(e, "PATH=")
			break
		}
	}

	if path == "" {
		return "", exec.ErrNotFound
	}

	for _, dir := range filepath.SplitList(path) {
		if dir == "" {
			// Unix shell semantics: path element "" means "."
			dir = "."
		}
		path := filepath.Join(dir, file)
		if err := findExecutable(path); err == nil {
			return path, nil
		}
	}
	return "", exec.ErrNotFound
}

func findExecutable(file string) error {
	d, err := os.Stat(file)
	if err != nil {
		return err
	}
	if m := d.Mode(); !m.IsDir() && m&0o111 != 0 {
		return nil
	}
	return os.ErrPermission
}
