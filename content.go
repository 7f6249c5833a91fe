package pathkit

import (
	"fmt"
	"os"
)

// Open opens the file at path with the given access mode and returns the
// handle. The caller owns the handle and must close it on every exit path.
// An existing directory is a precondition violation.
func Open(path string, mode AccessMode) (*os.File, error) {
	if IsDir(path) {
		return nil, fmt.Errorf("%w: %s", ErrIsDirectory, path)
	}

	flags, err := mode.flags()
	if err != nil {
		return nil, err
	}

	return os.OpenFile(path, flags, 0644)
}

// Read returns the full text content of the file at path.
// Reports ok=false when path is not an existing file.
func Read(path string) (string, bool, error) {
	if !IsFile(path) {
		return "", false, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", false, err
	}

	return string(data), true, nil
}

// Write truncate-writes text to path. When path already exists and
// overwrite is false the write is refused with ErrExist.
func Write(path, text string, overwrite bool) error {
	if !overwrite && Exists(path) {
		return fmt.Errorf("%w: %s", ErrExist, path)
	}

	file, err := Open(path, AccessWrite)
	if err != nil {
		return err
	}

	if _, err := file.WriteString(text); err != nil {
		file.Close()
		return err
	}

	return file.Close()
}

// Touch creates an empty file at path, honoring the same overwrite
// contract as Write.
func Touch(path string, overwrite bool) error {
	return Write(path, "", overwrite)
}

// Copy reads the donor file fully into memory and writes it to the
// recipient path. Either path being a directory, a missing donor, or an
// existing recipient without overwrite are precondition violations.
func Copy(donor, recipient string, overwrite bool) error {
	if IsDir(donor) {
		return fmt.Errorf("%w: donor %s", ErrIsDirectory, donor)
	}
	if IsDir(recipient) {
		return fmt.Errorf("%w: recipient %s", ErrIsDirectory, recipient)
	}
	if !Exists(donor) {
		return fmt.Errorf("%w: donor %s", ErrNotExist, donor)
	}
	if !overwrite && Exists(recipient) {
		return fmt.Errorf("%w: recipient %s", ErrExist, recipient)
	}

	text, _, err := Read(donor)
	if err != nil {
		return err
	}

	return Write(recipient, text, overwrite)
}

// DeleteFile removes the file at path. A missing path is a no-op;
// a directory is a precondition violation.
func DeleteFile(path string) error {
	if IsDir(path) {
		return fmt.Errorf("%w: %s", ErrIsDirectory, path)
	}
	if !Exists(path) {
		return nil
	}

	return os.Remove(path)
}

// Unlink removes the symlink entry at path. It is a distinct entry point
// from DeleteFile for callers that know the target is a link.
func Unlink(path string) error {
	return os.Remove(path)
}
