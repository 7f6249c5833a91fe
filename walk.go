package pathkit

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ListOptions controls how directory listings are produced.
// A zero value lists the first level only, returning bare entry names.
type ListOptions struct {
	Recursive bool
	Absolute  bool
	Extension string
}

type ListOption func(*ListOptions)

// WithRecursive descends breadth-first into every subdirectory,
// accumulating entries across all levels.
func WithRecursive() ListOption {
	return func(opts *ListOptions) {
		opts.Recursive = true
	}
}

// WithAbsolutePaths returns entries joined with their parent directory
// instead of bare names.
func WithAbsolutePaths() ListOption {
	return func(opts *ListOptions) {
		opts.Absolute = true
	}
}

// WithExtension filters file entries whose extension matches ext.
// A leading dot is optional. Directories are never filtered.
func WithExtension(ext string) ListOption {
	return func(opts *ListOptions) {
		opts.Extension = ext
	}
}

func newListOptions(opts ...ListOption) *ListOptions {
	options := &ListOptions{}
	for _, opt := range opts {
		opt(options)
	}

	return options
}

// Children lists the subdirectory and file names inside dir, directories
// first per level. A missing dir yields an empty listing; an existing file
// is a precondition violation.
func Children(dir string, opts ...ListOption) ([]string, error) {
	return walk(dir, newListOptions(opts...), true, true)
}

// Directories lists only the subdirectory entries of dir.
// The extension option has no effect here.
func Directories(dir string, opts ...ListOption) ([]string, error) {
	return walk(dir, newListOptions(opts...), true, false)
}

// Files lists only the file entries of dir.
func Files(dir string, opts ...ListOption) ([]string, error) {
	return walk(dir, newListOptions(opts...), false, true)
}

// walk enumerates dir level by level. Symlinks that resolve to directories
// are listed as directories but never descended into.
func walk(dir string, opts *ListOptions, wantDirs, wantFiles bool) ([]string, error) {
	if IsFile(dir) {
		return nil, fmt.Errorf("%w: %s", ErrNotDirectory, dir)
	}

	results := []string{}
	queue := []string{dir}

	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]

		entries, err := os.ReadDir(current)
		if err != nil {
			// The root may legitimately be absent; deeper levels may have
			// raced with a concurrent removal. Either way the level is empty.
			continue
		}

		var dirs, files []string
		for _, entry := range entries {
			name := entry.Name()
			full := filepath.Join(current, name)

			switch {
			case entry.IsDir():
				dirs = append(dirs, name)
				queue = appendQueue(queue, full, opts)
			case entry.Type()&os.ModeSymlink != 0 && IsDir(full):
				// Counts as a directory entry, but the traversal never
				// follows the link.
				dirs = append(dirs, name)
			default:
				files = append(files, name)
			}
		}

		if opts.Extension != "" {
			files = FilterByExtension(files, opts.Extension)
		}

		if wantDirs {
			results = appendEntries(results, current, dirs, opts)
		}
		if wantFiles {
			results = appendEntries(results, current, files, opts)
		}

		if !opts.Recursive {
			break
		}
	}

	return results, nil
}

func appendQueue(queue []string, dir string, opts *ListOptions) []string {
	if !opts.Recursive {
		return queue
	}

	return append(queue, dir)
}

func appendEntries(results []string, parent string, names []string, opts *ListOptions) []string {
	for _, name := range names {
		if opts.Absolute {
			results = append(results, filepath.Join(parent, name))
		} else {
			results = append(results, name)
		}
	}

	return results
}

// FilterByExtension returns the file names whose extension exactly matches
// ext. A leading dot is added to ext when missing.
func FilterByExtension(names []string, ext string) []string {
	if !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}

	filtered := []string{}
	for _, name := range names {
		if filepath.Ext(name) == ext {
			filtered = append(filtered, name)
		}
	}

	return filtered
}
