package ports

import "context"

// AlignmentTool defines the samtools operations the check relies on.
//
//go:generate mockgen -source=tool.go -destination=mocks/mock_tool.go -package=mocks
type AlignmentTool interface {
	// Version returns the raw output of the tool's version command.
	Version(ctx context.Context) (string, error)

	// Quickcheck verifies that the file at path is structurally intact.
	Quickcheck(ctx context.Context, path string) error

	// Flagstat returns the flag summary of the file at path.
	Flagstat(ctx context.Context, path string) (string, error)

	// Stats returns the detailed statistics report of the file at path.
	Stats(ctx context.Context, path string) (string, error)
}
