package pathkit

import "fmt"

// Entry is a path-bound entity: either a *File or a *Directory.
// Join returns one of the two depending on what the live filesystem
// reports at call time.
type Entry interface {
	Path() string
}

// Directory binds one filesystem path to the directory-oriented
// operations. It is an immutable value object; mutating methods act on the
// filesystem, never on the entity itself.
type Directory struct {
	dir string
}

// NewDirectory binds path to a Directory entity. An existing path that is
// not a directory is a precondition violation; a missing path is accepted.
func NewDirectory(path string) (*Directory, error) {
	if Exists(path) && !IsDir(path) {
		return nil, fmt.Errorf("%w: %s", ErrNotDirectory, path)
	}

	return &Directory{dir: path}, nil
}

// Path returns the path the entity is bound to.
func (d *Directory) Path() string {
	return d.dir
}

// Clear removes the directory's contents, leaving the directory itself.
func (d *Directory) Clear(recursive bool) error {
	return Clear(d.dir, recursive)
}

// ClearAll removes every descendant of the directory.
func (d *Directory) ClearAll() error {
	return ClearAll(d.dir)
}

// ClearFiles removes only the files directly inside the directory.
func (d *Directory) ClearFiles() error {
	return ClearFiles(d.dir)
}

// Children lists subdirectory and file entries.
func (d *Directory) Children(opts ...ListOption) ([]string, error) {
	return Children(d.dir, opts...)
}

// Directories lists only subdirectory entries.
func (d *Directory) Directories(opts ...ListOption) ([]string, error) {
	return Directories(d.dir, opts...)
}

// Files lists only file entries.
func (d *Directory) Files(opts ...ListOption) ([]string, error) {
	return Files(d.dir, opts...)
}

// Create creates the directory chain if missing and returns the confirmed
// path; empty when the path exists as a file.
func (d *Directory) Create() (string, error) {
	return Create(d.dir)
}

// Delete removes the directory, recursively when requested.
func (d *Directory) Delete(recursive bool) error {
	return Delete(d.dir, recursive)
}

// Parent strips depth trailing components from the directory's path.
func (d *Directory) Parent(depth int) (string, bool) {
	return Parent(d.dir, depth)
}

// Join appends sub-path components to the directory and wraps the result.
// The kind is decided against the live filesystem at call time: an
// existing directory yields a *Directory, anything else a *File.
func (d *Directory) Join(parts ...string) (Entry, error) {
	full := Concat(append([]string{d.dir}, parts...)...)
	if IsDir(full) {
		return NewDirectory(full)
	}

	return NewFile(full)
}
