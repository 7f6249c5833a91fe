package pathkit

import "errors"

// Standard errors returned by pathkit operations.
// Absence of an optional read target is never reported through these;
// optional queries return an ok=false sentinel instead.
var (
	// Path-kind precondition errors
	ErrNotDirectory = errors.New("pathkit: path must be a directory, not a file")
	ErrIsDirectory  = errors.New("pathkit: path cannot be a directory")
	ErrNotFile      = errors.New("pathkit: path must be a file")

	// Existence and overwrite errors
	ErrExist             = errors.New("pathkit: path already exists")
	ErrNotExist          = errors.New("pathkit: path does not exist")
	ErrDirectoryNotEmpty = errors.New("pathkit: directory not empty")

	// Argument errors
	ErrInvalidPath = errors.New("pathkit: invalid path")
	ErrInvalidMode = errors.New("pathkit: invalid access mode")
)
