// Package commands implements the CLI commands for bam2cram-check.
package commands

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/wtsi-hgi/bam2cram-check/internal/app"
	"github.com/wtsi-hgi/bam2cram-check/internal/build"
)

// CLI represents the command line interface for bam2cram-check.
type CLI struct {
	app     Application
	rootCmd *cobra.Command
}

// Application represents the application logic interface.
type Application interface {
	Check(ctx context.Context, opts app.CheckOptions) error
	Clean(ctx context.Context, opts app.CleanOptions) error
}

// New creates a new CLI instance with the given app.
func New(a Application) *CLI {
	c := &CLI{app: a}

	rootCmd := &cobra.Command{
		Use:   "bam2cram-check -b <bam> -c <cram>",
		Short: "Check that a CRAM file holds the same data as the BAM file it was converted from",
		Long: "Runs samtools quickcheck, flagstat and stats on both files and reports every\n" +
			"difference found. Stats reports are cached next to each file as <file>.stats.",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
		RunE:          c.runCheck,
	}

	flags := rootCmd.Flags()
	flags.StringP("bam", "b", "", "File path to the BAM file")
	flags.StringP("cram", "c", "", "File path to the CRAM file")
	flags.StringP("errors", "e", "", "File path to write findings to instead of stdout")
	flags.String("log", "", "Append log records to this file instead of stderr")
	flags.CountP("verbose", "v", "Verbosity: -v errors, -vv warnings, -vvv info, -vvvv debug")
	flags.String("progress", "auto", "Stage progress output: auto, always, or never")
	flags.String("log-format", "pretty", "Log record format: pretty or json")
	flags.Bool("parallel", false, "Run samtools on both files concurrently")
	_ = rootCmd.MarkFlagRequired("bam")
	_ = rootCmd.MarkFlagRequired("cram")

	persistent := rootCmd.PersistentFlags()
	persistent.String("config", "", "Path to the config file (default ./bam2cram.yaml when present)")
	persistent.String("samtools", "", "samtools binary to run (overrides the config file)")
	persistent.String("timeout", "", "Timeout for each samtools invocation, e.g. 30m")

	rootCmd.SetVersionTemplate(fmt.Sprintf(
		"{{.Name}} version {{.Version}} (commit: %s, date: %s)\n",
		build.Commit,
		build.Date,
	))
	rootCmd.InitDefaultVersionFlag()
	rootCmd.Flags().Lookup("version").Usage = "Print the application version"

	rootCmd.InitDefaultHelpFlag()
	rootCmd.Flags().Lookup("help").Usage = "Show help for command"

	c.rootCmd = rootCmd

	rootCmd.AddCommand(c.newCleanCmd())
	rootCmd.AddCommand(c.newVersionCmd())

	return c
}

func (c *CLI) runCheck(cmd *cobra.Command, _ []string) error {
	flags := cmd.Flags()
	bam, _ := flags.GetString("bam")
	cram, _ := flags.GetString("cram")
	errFile, _ := flags.GetString("errors")
	logFile, _ := flags.GetString("log")
	verbosity, _ := flags.GetCount("verbose")
	progress, _ := flags.GetString("progress")
	logFormat, _ := flags.GetString("log-format")

	return c.app.Check(cmd.Context(), app.CheckOptions{
		Overrides: overrides(cmd),
		BAM:       bam,
		CRAM:      cram,
		ErrorFile: errFile,
		LogFile:   logFile,
		Verbosity: verbosity,
		Progress:  progress,
		LogFormat: logFormat,
	})
}

// overrides reads the flags shared by all commands.
func overrides(cmd *cobra.Command) app.Overrides {
	flags := cmd.Flags()
	configPath, _ := flags.GetString("config")
	samtools, _ := flags.GetString("samtools")
	timeout, _ := flags.GetString("timeout")
	parallel, _ := flags.GetBool("parallel")

	return app.Overrides{
		ConfigPath: configPath,
		Samtools:   samtools,
		Timeout:    timeout,
		Parallel:   parallel,
	}
}

// Execute runs the root command with the given context.
func (c *CLI) Execute(ctx context.Context) error {
	c.rootCmd.SetContext(ctx)
	return c.rootCmd.Execute()
}

// SetArgs sets the arguments for the root command. Used for testing.
func (c *CLI) SetArgs(args []string) {
	c.rootCmd.SetArgs(args)
}

// SetOutput sets the output and error streams for the root command. Used for testing.
func (c *CLI) SetOutput(out, err io.Writer) {
	c.rootCmd.SetOut(out)
	c.rootCmd.SetErr(err)
}
