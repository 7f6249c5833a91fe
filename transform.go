package pathkit

import (
	"fmt"
	"strings"
)

// Lines returns the lines of the file at path, one entry per line with the
// line terminator preserved as read. Reports ok=false when path does not
// exist; an existing directory is a precondition violation.
func Lines(path string) ([]string, bool, error) {
	if !Exists(path) {
		return nil, false, nil
	}
	if IsDir(path) {
		return nil, false, fmt.Errorf("%w: %s", ErrIsDirectory, path)
	}

	text, ok, err := Read(path)
	if err != nil || !ok {
		return nil, false, err
	}

	return splitLines(text), true, nil
}

// Words returns the tokens of every line, split on single-space boundaries
// only. Consecutive spaces produce empty tokens and tabs are not split on;
// the naive behavior is part of the contract.
func Words(path string) ([]string, bool, error) {
	lines, ok, err := Lines(path)
	if err != nil || !ok {
		return nil, false, err
	}

	words := []string{}
	for _, line := range lines {
		words = append(words, strings.Split(line, " ")...)
	}

	return words, true, nil
}

// splitLines cuts text after every newline, keeping the terminator
// attached to its line.
func splitLines(text string) []string {
	lines := []string{}
	for len(text) > 0 {
		i := strings.IndexByte(text, '\n')
		if i < 0 {
			lines = append(lines, text)
			break
		}

		lines = append(lines, text[:i+1])
		text = text[i+1:]
	}

	return lines
}
