package domain

const (
	// StatsSuffix is appended to a data file path to obtain its stats cache path.
	StatsSuffix = ".stats"

	// FingerprintMarker prefixes the checksum lines of a samtools stats report.
	FingerprintMarker = "CHK"

	// ConfigFileName is the name of the optional configuration file looked up in the working directory.
	ConfigFileName = "bam2cram.yaml"

	// DefaultToolBinary is the samtools executable used when none is configured.
	DefaultToolBinary = "samtools"

	// FilePerm is the default permission for files (rw-r--r--).
	FilePerm = 0o644
)

// StatsPath returns the conventional stats cache path for a data file.
func StatsPath(dataPath string) string {
	return dataPath + StatsSuffix
}
