package pathkit

import (
	"fmt"
	"os"
	"path/filepath"
)

// File binds one filesystem path to the file-oriented capability groups.
// The path is stored once in the entity; every capability sub-object holds
// only a back-reference, so all groups observe the same path. The derived
// directory and base name are computed at construction and never refreshed;
// reconstruct the entity after a rename.
type File struct {
	fullPath string
	dir      string
	name     string

	Check     FileCheck
	Count     FileCount
	Find      FileFind
	IO        FileIO
	Names     FileNames
	Transform FileTransform
}

// NewFile binds path to a File entity. An existing path that is not a file
// is a precondition violation; a missing path is accepted.
func NewFile(path string) (*File, error) {
	if Exists(path) && !IsFile(path) {
		return nil, fmt.Errorf("%w: %s", ErrNotFile, path)
	}

	f := &File{
		fullPath: path,
		dir:      filepath.Dir(path),
		name:     filepath.Base(path),
	}

	f.Check = FileCheck{f}
	f.Count = FileCount{f}
	f.Find = FileFind{f}
	f.IO = FileIO{f}
	f.Names = FileNames{f}
	f.Transform = FileTransform{f}

	return f, nil
}

// Path returns the full path the entity is bound to.
func (f *File) Path() string {
	return f.fullPath
}

// Dir returns the parent component computed at construction.
func (f *File) Dir() string {
	return f.dir
}

// Name returns the final path component computed at construction.
func (f *File) Name() string {
	return f.name
}

// Parent strips depth trailing components from the entity's path.
func (f *File) Parent(depth int) (string, bool) {
	return Parent(f.fullPath, depth)
}

// Overwrite truncate-writes text regardless of prior existence.
func (f *File) Overwrite(text string) error {
	return Write(f.fullPath, text, true)
}

// OverwriteFrom force-copies the donor file over the entity's path.
func (f *File) OverwriteFrom(donor string) error {
	return Copy(donor, f.fullPath, true)
}

// FileCheck exposes the existence and search predicates for one entity.
type FileCheck struct {
	file *File
}

func (c FileCheck) Exists() bool {
	return Exists(c.file.fullPath)
}

func (c FileCheck) ContainsWord(quarry string) bool {
	return ContainsWord(c.file.fullPath, quarry)
}

// FileCount exposes the text metrics for one entity.
type FileCount struct {
	file *File
}

func (c FileCount) Characters() (int, bool, error) {
	return Characters(c.file.fullPath)
}

func (c FileCount) Lines() (int, bool, error) {
	return LineCount(c.file.fullPath)
}

func (c FileCount) Words() (int, bool, error) {
	return WordCount(c.file.fullPath)
}

// FileFind exposes line search for one entity.
type FileFind struct {
	file *File
}

func (f FileFind) LineNumber(word string) (int, bool, error) {
	return LineNumber(f.file.fullPath, word)
}

// FileIO exposes content and object I/O for one entity.
type FileIO struct {
	file *File
}

func (io FileIO) Open(mode AccessMode) (*os.File, error) {
	return Open(io.file.fullPath, mode)
}

func (io FileIO) Read() (string, bool, error) {
	return Read(io.file.fullPath)
}

func (io FileIO) Write(text string, overwrite bool) error {
	return Write(io.file.fullPath, text, overwrite)
}

func (io FileIO) Touch(overwrite bool) error {
	return Touch(io.file.fullPath, overwrite)
}

func (io FileIO) Copy(recipient string, overwrite bool) error {
	return Copy(io.file.fullPath, recipient, overwrite)
}

func (io FileIO) Delete() error {
	return DeleteFile(io.file.fullPath)
}

func (io FileIO) Unlink() error {
	return Unlink(io.file.fullPath)
}

func (io FileIO) SaveObject(value any, overwrite bool) error {
	return SaveObject(io.file.fullPath, value, overwrite)
}

func (io FileIO) LoadObject(out any) (bool, error) {
	return LoadObject(io.file.fullPath, out)
}

// FileNames derives sibling names for one entity.
type FileNames struct {
	file *File
}

// Stamp returns a new entity bound to the timestamp-suffixed sibling name.
func (n FileNames) Stamp() (*File, error) {
	return NewFile(Stamp(n.file.fullPath))
}

// Unique returns a new entity bound to a UUIDv7-suffixed sibling name.
func (n FileNames) Unique() (*File, error) {
	return NewFile(Unique(n.file.fullPath))
}

// FileTransform exposes line and word sequences for one entity.
type FileTransform struct {
	file *File
}

func (t FileTransform) Lines() ([]string, bool, error) {
	return Lines(t.file.fullPath)
}

func (t FileTransform) Words() ([]string, bool, error) {
	return Words(t.file.fullPath)
}
