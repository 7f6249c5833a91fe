package pathkit

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"syscall"
)

// Create creates the full directory chain at dir if it is missing and
// returns the confirmed path. When the path already exists as a file the
// result is empty without an error; callers treat that as "not created".
func Create(dir string) (string, error) {
	if !Exists(dir) {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return "", err
		}

		return dir, nil
	}

	if IsFile(dir) {
		return "", nil
	}

	return dir, nil
}

// Clear removes the contents of dir while leaving dir itself present.
// Without recursive only the files directly inside dir are removed;
// subdirectories stay untouched. With recursive every descendant is
// removed: files and symlinks are unlinked individually, subdirectories
// are removed as whole subtrees.
//
// A missing dir is a no-op. An existing file is a precondition violation.
// A failure mid-clear may leave the tree partially cleared.
func Clear(dir string, recursive bool) error {
	if IsFile(dir) {
		return fmt.Errorf("%w: %s", ErrNotDirectory, dir)
	}
	if !Exists(dir) {
		return nil
	}

	if recursive {
		children, err := Children(dir, WithAbsolutePaths())
		if err != nil {
			return err
		}

		for _, child := range children {
			switch {
			case IsSymlink(child):
				if err := Unlink(child); err != nil {
					return err
				}
			case IsFile(child):
				if err := DeleteFile(child); err != nil {
					return err
				}
			default:
				if err := Delete(child, true); err != nil {
					return err
				}
			}
		}

		return nil
	}

	files, err := Files(dir)
	if err != nil {
		return err
	}

	for _, name := range files {
		if err := DeleteFile(Concat(dir, name)); err != nil {
			return err
		}
	}

	return nil
}

// ClearAll removes every descendant of dir, leaving dir itself empty.
func ClearAll(dir string) error {
	if IsFile(dir) {
		return fmt.Errorf("%w: %s", ErrNotDirectory, dir)
	}

	return Clear(dir, true)
}

// ClearFiles removes the files directly inside dir, leaving
// subdirectories untouched.
func ClearFiles(dir string) error {
	if IsFile(dir) {
		return fmt.Errorf("%w: %s", ErrNotDirectory, dir)
	}

	return Clear(dir, false)
}

// Delete removes path. A symlink is unlinked, a plain file is removed.
// With recursive the remaining directory and its whole subtree are removed,
// tolerating a target that is already gone. Without recursive the directory
// is removed only when empty; a non-empty directory is an error.
func Delete(path string, recursive bool) error {
	if IsSymlink(path) {
		if err := Unlink(path); err != nil {
			return err
		}
	} else if IsFile(path) {
		if err := os.Remove(path); err != nil {
			return err
		}
	}

	if recursive {
		// RemoveAll reports nil for a missing target, which covers the
		// already-removed case during concurrent clears.
		return os.RemoveAll(path)
	}

	if err := os.Remove(path); err != nil {
		if errors.Is(err, syscall.ENOTEMPTY) || errors.Is(err, syscall.EEXIST) {
			return fmt.Errorf("%w: %s", ErrDirectoryNotEmpty, path)
		}
		if errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("%w: %s", ErrNotExist, path)
		}

		return err
	}

	return nil
}

// Parent strips depth trailing components from path by repeatedly taking
// the parent directory. Reports ok=false when path does not exist.
func Parent(path string, depth int) (string, bool) {
	if !Exists(path) {
		return "", false
	}

	for depth > 0 {
		path = filepath.Dir(path)
		depth--
	}

	return path, true
}
