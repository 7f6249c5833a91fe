package pathkit

// Characters returns the total character count of the file at path, summed
// over every line as read. Reports ok=false when the file is absent.
func Characters(path string) (int, bool, error) {
	lines, ok, err := Lines(path)
	if err != nil || !ok {
		return 0, false, err
	}

	count := 0
	for _, line := range lines {
		count += len(line)
	}

	return count, true, nil
}

// LineCount returns the number of lines in the file at path.
// An absent file and an empty file both report ok=false.
func LineCount(path string) (int, bool, error) {
	lines, ok, err := Lines(path)
	if err != nil || !ok || len(lines) == 0 {
		return 0, false, err
	}

	return len(lines), true, nil
}

// WordCount returns the number of space-separated tokens in the file at
// path. An absent file and an empty file both report ok=false.
func WordCount(path string) (int, bool, error) {
	words, ok, err := Words(path)
	if err != nil || !ok || len(words) == 0 {
		return 0, false, err
	}

	return len(words), true, nil
}
