// Package domain contains the core types of the BAM/CRAM equivalence check.
package domain

// CacheStatus describes where the content of a CacheEntry came from.
type CacheStatus uint8

const (
	// CacheHit means the content was read from a fresh cache file.
	CacheHit CacheStatus = iota
	// CacheMiss means no usable cache file existed and the report was regenerated.
	CacheMiss
	// CacheStale means a cache file existed but was older than the data file, so the report was regenerated.
	CacheStale
)

// String returns a lower-case label for log records.
func (s CacheStatus) String() string {
	switch s {
	case CacheHit:
		return "hit"
	case CacheMiss:
		return "miss"
	case CacheStale:
		return "stale"
	default:
		return "unknown"
	}
}

// Regenerated reports whether the content was produced by the external tool during this run.
func (s CacheStatus) Regenerated() bool {
	return s != CacheHit
}

// CacheEntry holds a stats report together with the data file it describes and its cache location.
type CacheEntry struct {
	DataPath  string
	CachePath string
	Content   string
	Status    CacheStatus
}
