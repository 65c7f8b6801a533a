package domain

import "time"

// Config holds the tunables of a check run.
type Config struct {
	// Tool is the samtools executable, either a bare name resolved through PATH or a path.
	Tool string
	// Timeout bounds every single samtools invocation. Zero disables the limit.
	Timeout time.Duration
	// Parallel processes the BAM and CRAM side of each stage concurrently.
	Parallel bool
}

// DefaultConfig returns the configuration used when no config file is present.
func DefaultConfig() Config {
	return Config{
		Tool: DefaultToolBinary,
	}
}
