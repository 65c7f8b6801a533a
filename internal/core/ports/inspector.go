package ports

// FileInspector defines the interface for the file system checks of the pipeline.
//
//go:generate mockgen -source=inspector.go -destination=mocks/mock_inspector.go -package=mocks
type FileInspector interface {
	// IsRegularFile reports whether path exists and is a regular file.
	IsRegularFile(path string) bool

	// IsReadable reports whether the current process may read path.
	IsReadable(path string) bool

	// CompareModTime compares the modification times of a and b and returns
	// -1 if a is older, 0 if they are equal and 1 if a is newer.
	CompareModTime(a, b string) (int, error)
}
