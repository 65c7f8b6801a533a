// Package cache implements the stats report cache kept next to each data file.
package cache

import (
	"context"
	"errors"
	"fmt"
	iofs "io/fs"
	"os"

	"github.com/wtsi-hgi/bam2cram-check/internal/core/domain"
	"github.com/wtsi-hgi/bam2cram-check/internal/core/ports"
	"go.trai.ch/zerr"
)

// Store implements ports.StatsCache using one plain text file per data file.
type Store struct {
	tool      ports.AlignmentTool
	inspector ports.FileInspector
	logger    ports.Logger
}

// NewStore creates a new Store that regenerates missing or stale reports through tool.
func NewStore(tool ports.AlignmentTool, inspector ports.FileInspector, logger ports.Logger) *Store {
	return &Store{
		tool:      tool,
		inspector: inspector,
		logger:    logger,
	}
}

// Fetch returns the stats report for dataPath.
// The cache file is used when its modification time is not older than the data file's;
// stale files are left untouched on disk.
func (s *Store) Fetch(ctx context.Context, dataPath, cachePath string) (domain.CacheEntry, error) {
	entry := domain.CacheEntry{DataPath: dataPath, CachePath: cachePath, Status: domain.CacheMiss}

	if dataPath == "" || cachePath == "" {
		return entry, zerr.Wrap(domain.ErrInvalidInput, "data and cache paths are required")
	}
	if !s.inspector.IsRegularFile(dataPath) || !s.inspector.IsReadable(dataPath) {
		return entry, zerr.With(zerr.Wrap(domain.ErrInvalidInput, "data file is not a readable regular file"), "path", dataPath)
	}

	if s.inspector.IsRegularFile(cachePath) {
		content, status := s.lookup(dataPath, cachePath)
		if status == domain.CacheHit {
			entry.Content = content
			entry.Status = domain.CacheHit
			s.logger.Info(fmt.Sprintf("using cached stats %s for %s (xxh64 %s)", cachePath, dataPath, domain.Digest(content)))
			return entry, nil
		}
		entry.Status = status
	}

	if entry.Status == domain.CacheStale {
		s.logger.Warn(fmt.Sprintf(
			"stats file %s is older than %s; regenerating. The stale file is left in place for you to remove",
			cachePath, dataPath,
		))
	} else {
		s.logger.Info(fmt.Sprintf("no usable stats file at %s; running samtools stats on %s", cachePath, dataPath))
	}

	content, err := s.tool.Stats(ctx, dataPath)
	if err != nil {
		return entry, err
	}

	entry.Content = content
	s.logger.Debug(fmt.Sprintf("generated stats for %s (%s, xxh64 %s)", dataPath, entry.Status, domain.Digest(content)))
	return entry, nil
}

// lookup reads a fresh cache file. Unreadable or uncomparable files count as a miss.
func (s *Store) lookup(dataPath, cachePath string) (string, domain.CacheStatus) {
	if !s.inspector.IsReadable(cachePath) {
		s.warnUnreadable(zerr.Wrap(domain.ErrCacheReadFailed, cachePath+" is not readable"))
		return "", domain.CacheMiss
	}

	cmp, err := s.inspector.CompareModTime(dataPath, cachePath)
	if err != nil {
		s.logger.Warn(fmt.Sprintf("cannot compare modification times of %s and %s: %v", dataPath, cachePath, err))
		return "", domain.CacheMiss
	}
	if cmp > 0 {
		return "", domain.CacheStale
	}

	//nolint:gosec // Path is derived from an operator supplied data file
	data, err := os.ReadFile(cachePath)
	if err != nil {
		s.warnUnreadable(zerr.Wrap(domain.ErrCacheReadFailed, err.Error()))
		return "", domain.CacheMiss
	}
	return string(data), domain.CacheHit
}

func (s *Store) warnUnreadable(err error) {
	s.logger.Warn(err.Error() + "; treating it as missing")
}

// Persist writes report to cachePath. An existing file is never overwritten.
func (s *Store) Persist(report, cachePath string) (bool, error) {
	if report == "" || cachePath == "" {
		return false, zerr.Wrap(domain.ErrInvalidInput, "report and cache path are required")
	}

	//nolint:gosec // Path is derived from an operator supplied data file
	f, err := os.OpenFile(cachePath, os.O_WRONLY|os.O_CREATE|os.O_EXCL, domain.FilePerm)
	if err != nil {
		if errors.Is(err, iofs.ErrExist) {
			s.logger.Warn(fmt.Sprintf("stats file %s already exists; leaving it untouched", cachePath))
			return false, nil
		}
		return false, zerr.With(zerr.Wrap(domain.ErrCacheWriteFailed, err.Error()), "path", cachePath)
	}

	if _, err := f.WriteString(report); err != nil {
		_ = f.Close()
		_ = os.Remove(cachePath)
		return false, zerr.With(zerr.Wrap(domain.ErrCacheWriteFailed, err.Error()), "path", cachePath)
	}
	if err := f.Close(); err != nil {
		_ = os.Remove(cachePath)
		return false, zerr.With(zerr.Wrap(domain.ErrCacheWriteFailed, err.Error()), "path", cachePath)
	}

	s.logger.Debug(fmt.Sprintf("saved stats to %s (xxh64 %s)", cachePath, domain.Digest(report)))
	return true, nil
}

// Prune removes cachePath when it is older than dataPath, or unconditionally when force is set.
func (s *Store) Prune(dataPath, cachePath string, force bool) (bool, error) {
	if cachePath == "" {
		return false, zerr.Wrap(domain.ErrInvalidInput, "cache path is required")
	}

	if _, err := os.Lstat(cachePath); err != nil {
		if errors.Is(err, iofs.ErrNotExist) {
			s.logger.Debug(fmt.Sprintf("no stats file at %s", cachePath))
			return false, nil
		}
		return false, zerr.With(zerr.Wrap(domain.ErrCacheRemoveFailed, err.Error()), "path", cachePath)
	}

	if !force {
		cmp, err := s.inspector.CompareModTime(dataPath, cachePath)
		if err != nil {
			return false, err
		}
		if cmp <= 0 {
			s.logger.Info(fmt.Sprintf("stats file %s is up to date; keeping it", cachePath))
			return false, nil
		}
	}

	if err := os.Remove(cachePath); err != nil {
		return false, zerr.With(zerr.Wrap(domain.ErrCacheRemoveFailed, err.Error()), "path", cachePath)
	}

	s.logger.Info("removed stats file " + cachePath)
	return true, nil
}
