package pathkit

import (
	"bufio"
	"slices"
	"strings"
)

// LineNumber returns the 1-based number of the first line containing word
// as a whole whitespace-delimited token. Returns -1 when no line matches.
// Reports ok=false when path is not an existing file, which is distinct
// from the -1 no-match result.
func LineNumber(path, word string) (int, bool, error) {
	if !IsFile(path) {
		return 0, false, nil
	}

	file, err := Open(path, AccessRead)
	if err != nil {
		return 0, false, err
	}
	defer file.Close()

	number := 0
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		number++
		if slices.Contains(strings.Fields(scanner.Text()), word) {
			return number, true, nil
		}
	}

	if err := scanner.Err(); err != nil {
		return 0, false, err
	}

	return -1, true, nil
}
