package pathkit

import "os"

// AccessMode represents file access modes for Open.
// Modes can be combined using bitwise OR, though Read, Write and Append
// are mutually exclusive.
type AccessMode int

const (
	AccessRead   AccessMode = 1 << iota // open for reading only
	AccessWrite                         // truncate-write, created if missing
	AccessAppend                        // append, created if missing, readable
)

// IsRead checks if the mode opens for reading only.
func (m AccessMode) IsRead() bool {
	return m&AccessRead != 0 && m&(AccessWrite|AccessAppend) == 0
}

// IsWrite checks if the mode opens for truncate-write.
func (m AccessMode) IsWrite() bool {
	return m&AccessWrite != 0
}

// IsAppend checks if the mode opens for appending.
func (m AccessMode) IsAppend() bool {
	return m&AccessAppend != 0
}

// flags translates the mode into os.OpenFile flags.
func (m AccessMode) flags() (int, error) {
	switch {
	case m.IsWrite() && m.IsAppend():
		return 0, ErrInvalidMode
	case m.IsWrite():
		return os.O_WRONLY | os.O_CREATE | os.O_TRUNC, nil
	case m.IsAppend():
		return os.O_RDWR | os.O_CREATE | os.O_APPEND, nil
	default:
		return os.O_RDONLY, nil
	}
}
