// Package config provides the configuration loader for bam2cram-check.
package config

import (
	"bytes"
	"errors"
	"io"
	iofs "io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/wtsi-hgi/bam2cram-check/internal/core/domain"
	"github.com/wtsi-hgi/bam2cram-check/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// Loader implements ports.ConfigLoader using a YAML file.
type Loader struct {
	Logger ports.Logger
}

// NewLoader creates a new Loader with the given logger.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{Logger: logger}
}

// Load reads the configuration. With an empty path the default file in cwd is used
// when present; an explicitly named file must exist.
func (l *Loader) Load(cwd, path string) (domain.Config, error) {
	explicit := path != ""
	if !explicit {
		path = domain.ConfigFileName
	}
	if !filepath.IsAbs(path) {
		path = filepath.Join(cwd, path)
	}

	// #nosec G304 -- path is chosen by the operator
	data, err := os.ReadFile(path)
	if err != nil {
		if !explicit && errors.Is(err, iofs.ErrNotExist) {
			l.Logger.Debug("no " + domain.ConfigFileName + " found; using defaults")
			return domain.DefaultConfig(), nil
		}
		return domain.Config{}, zerr.With(zerr.Wrap(domain.ErrConfigReadFailed, err.Error()), "path", path)
	}

	cfg, err := parse(data)
	if err != nil {
		return domain.Config{}, zerr.With(err, "path", path)
	}

	l.Logger.Debug("loaded configuration from " + path)
	return cfg, nil
}

func parse(data []byte) (domain.Config, error) {
	var file Configfile
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&file); err != nil && !errors.Is(err, io.EOF) {
		return domain.Config{}, zerr.Wrap(domain.ErrConfigParseFailed, err.Error())
	}

	cfg := domain.DefaultConfig()
	if file.Samtools != "" {
		cfg.Tool = file.Samtools
	}
	cfg.Parallel = file.Parallel

	if file.Timeout != "" {
		timeout, err := ParseTimeout(file.Timeout)
		if err != nil {
			return domain.Config{}, err
		}
		cfg.Timeout = timeout
	}

	return cfg, nil
}

// ParseTimeout parses a positive Go duration such as "30m" or "1h30m".
func ParseTimeout(value string) (time.Duration, error) {
	d, err := time.ParseDuration(value)
	if err != nil || d <= 0 {
		return 0, zerr.With(zerr.Wrap(domain.ErrInvalidTimeout, "cannot use timeout"), "timeout", value)
	}
	return d, nil
}
