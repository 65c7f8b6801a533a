package config

// Configfile represents the structure of the bam2cram.yaml configuration file.
type Configfile struct {
	Samtools string `yaml:"samtools"`
	Timeout  string `yaml:"timeout"`
	Parallel bool   `yaml:"parallel"`
}
