package pathkit

import (
	"fmt"

	"github.com/google/uuid"
)

// Stamp returns a sibling filename with a human-readable timestamp between
// stem and extension, e.g. "report 2026-08-25 14.03.59.csv".
// Two calls within the same second produce the same name; use Unique when
// collisions matter.
func Stamp(path string) string {
	stem, ext := splitExt(path)
	return fmt.Sprintf("%s %s%s", stem, Timestamp(), ext)
}

// Unique returns a sibling filename with a UUIDv7 between stem and
// extension. Unlike Stamp the result is collision-free and sorts by
// creation time.
func Unique(path string) string {
	stem, ext := splitExt(path)
	return fmt.Sprintf("%s %s%s", stem, uuid.Must(uuid.NewV7()).String(), ext)
}
