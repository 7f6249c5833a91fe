package pathkit

import (
	"path/filepath"
	"time"
)

// Concat joins any number of path components into a single path.
func Concat(parts ...string) string {
	return filepath.Join(parts...)
}

// TimestampFormat is the layout used by Timestamp and Stamp.
// Dots separate the time fields so the result stays a legal filename.
const TimestampFormat = "2006-01-02 15.04.05"

// Timestamp returns the current local time formatted for filenames,
// at second resolution.
func Timestamp() string {
	return time.Now().Format(TimestampFormat)
}

// splitExt splits path into its stem and extension, where the extension
// includes the leading dot and may be empty.
func splitExt(path string) (string, string) {
	ext := filepath.Ext(path)
	return path[:len(path)-len(ext)], ext
}
