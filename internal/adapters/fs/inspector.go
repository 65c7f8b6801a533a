// Package fs provides file system checks for the data and cache files.
package fs

import (
	"os"
	"time"

	"github.com/wtsi-hgi/bam2cram-check/internal/core/domain"
	"go.trai.ch/zerr"
	"golang.org/x/sys/unix"
)

// Inspector implements ports.FileInspector against the local file system.
type Inspector struct{}

// NewInspector creates a new Inspector.
func NewInspector() *Inspector {
	return &Inspector{}
}

// IsRegularFile reports whether path exists and is a regular file. Symlinks are followed.
func (i *Inspector) IsRegularFile(path string) bool {
	if path == "" {
		return false
	}
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return info.Mode().IsRegular()
}

// IsReadable reports whether the current process has read permission on path.
func (i *Inspector) IsReadable(path string) bool {
	if path == "" {
		return false
	}
	return unix.Access(path, unix.R_OK) == nil
}

// CompareModTime returns -1, 0 or 1 as the modification time of a is before, equal to or after that of b.
func (i *Inspector) CompareModTime(a, b string) (int, error) {
	aTime, err := i.modTime(a)
	if err != nil {
		return 0, err
	}
	bTime, err := i.modTime(b)
	if err != nil {
		return 0, err
	}
	return aTime.Compare(bTime), nil
}

func (i *Inspector) modTime(path string) (time.Time, error) {
	if !i.IsReadable(path) {
		return time.Time{}, zerr.With(zerr.Wrap(domain.ErrNotFound, "cannot read modification time"), "path", path)
	}
	info, err := os.Stat(path)
	if err != nil {
		return time.Time{}, zerr.With(zerr.Wrap(domain.ErrNotFound, err.Error()), "path", path)
	}
	return info.ModTime(), nil
}
