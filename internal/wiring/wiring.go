// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "github.com/wtsi-hgi/bam2cram-check/internal/adapters/config"
	_ "github.com/wtsi-hgi/bam2cram-check/internal/adapters/fs"
	_ "github.com/wtsi-hgi/bam2cram-check/internal/adapters/logger"
	_ "github.com/wtsi-hgi/bam2cram-check/internal/adapters/shell"
	// Register app nodes.
	_ "github.com/wtsi-hgi/bam2cram-check/internal/app"
)
