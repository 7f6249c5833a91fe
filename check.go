package pathkit

import (
	"os"
	"strings"
)

// Exists reports whether a file or directory exists at path.
func Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// IsFile reports whether path is an existing regular file.
// Symlinks are followed, so a link pointing at a file counts as one.
func IsFile(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}

// IsDir reports whether path is an existing directory.
func IsDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

// IsSymlink reports whether path itself is a symbolic link.
// The link target is not resolved.
func IsSymlink(path string) bool {
	info, err := os.Lstat(path)
	return err == nil && info.Mode()&os.ModeSymlink != 0
}

// ContainsWord reports whether the file at path contains quarry as a
// substring. Returns false if the file cannot be read.
func ContainsWord(path, quarry string) bool {
	text, ok, err := Read(path)
	if err != nil || !ok {
		return false
	}

	return strings.Contains(text, quarry)
}
