package ports

import (
	"context"

	"github.com/wtsi-hgi/bam2cram-check/internal/core/domain"
)

// StatsCache defines the interface for reusing stats reports stored next to their data files.
//
//go:generate mockgen -source=stats_cache.go -destination=mocks/mock_stats_cache.go -package=mocks
type StatsCache interface {
	// Fetch returns the report for dataPath, read from cachePath when that file is
	// fresh and regenerated by the external tool otherwise.
	Fetch(ctx context.Context, dataPath, cachePath string) (domain.CacheEntry, error)

	// Persist writes report to cachePath unless a file already exists there.
	// It reports whether the file was written.
	Persist(report, cachePath string) (bool, error)

	// Prune removes cachePath when it is older than dataPath, or unconditionally when force is set.
	// It reports whether a file was removed.
	Prune(dataPath, cachePath string, force bool) (bool, error)
}
