// Package codec provides the pluggable object-serialization collaborator
// used by the pathkit object store. A Codec turns an arbitrary in-memory
// value into bytes and back; implementations must support values carrying
// custom state, not just plain data.
package codec

import "errors"

var (
	// ErrUnknownCodec is returned when a registry lookup fails.
	ErrUnknownCodec = errors.New("codec: unknown codec")
)

// Codec serializes and deserializes arbitrary values.
type Codec interface {
	// Name returns the identifier this codec registers under.
	Name() string

	// Extensions returns the file extensions (with leading dot) this
	// codec claims for extension-based resolution.
	Extensions() []string

	// Marshal encodes value into a byte slice.
	Marshal(value any) ([]byte, error)

	// Unmarshal decodes data into the value pointed to by out.
	Unmarshal(data []byte, out any) error
}
