// Package samtools adapts the samtools command line to ports.AlignmentTool.
package samtools

import (
	"context"
	"time"

	"github.com/wtsi-hgi/bam2cram-check/internal/core/domain"
	"github.com/wtsi-hgi/bam2cram-check/internal/core/ports"
	"go.trai.ch/zerr"
)

// Client implements ports.AlignmentTool on top of a ports.CommandRunner.
type Client struct {
	runner  ports.CommandRunner
	binary  string
	timeout time.Duration
}

// NewClient creates a Client invoking binary. A zero timeout leaves invocations unbounded.
func NewClient(runner ports.CommandRunner, binary string, timeout time.Duration) *Client {
	if binary == "" {
		binary = domain.DefaultToolBinary
	}
	return &Client{
		runner:  runner,
		binary:  binary,
		timeout: timeout,
	}
}

// Version returns the output of `samtools --version`.
func (c *Client) Version(ctx context.Context) (string, error) {
	return c.output(ctx, "--version")
}

// Quickcheck runs `samtools quickcheck -v` against path.
func (c *Client) Quickcheck(ctx context.Context, path string) error {
	_, err := c.output(ctx, "quickcheck", "-v", path)
	if err != nil {
		return zerr.With(zerr.Wrap(err, "quickcheck failed"), "path", path)
	}
	return nil
}

// Flagstat returns the output of `samtools flagstat`.
func (c *Client) Flagstat(ctx context.Context, path string) (string, error) {
	out, err := c.output(ctx, "flagstat", path)
	if err != nil {
		return "", zerr.With(zerr.Wrap(err, "flagstat failed"), "path", path)
	}
	return out, nil
}

// Stats returns the output of `samtools stats`.
func (c *Client) Stats(ctx context.Context, path string) (string, error) {
	out, err := c.output(ctx, "stats", path)
	if err != nil {
		return "", zerr.With(zerr.Wrap(err, "stats failed"), "path", path)
	}
	return out, nil
}

func (c *Client) output(ctx context.Context, args ...string) (string, error) {
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	result, err := c.runner.Run(ctx, append([]string{c.binary}, args...))
	if err != nil {
		return "", err
	}
	return result.Stdout, nil
}
