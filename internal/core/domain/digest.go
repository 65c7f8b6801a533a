package domain

import (
	"strconv"

	"github.com/cespare/xxhash/v2"
)

// Digest returns the hex encoded XXHash of content, used to identify reports in log records.
func Digest(content string) string {
	return strconv.FormatUint(xxhash.Sum64String(content), 16)
}
