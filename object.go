package pathkit

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/mwantia/pathkit/codec"
)

// Store persists arbitrary values at filesystem paths through a pluggable
// codec. The zero-config store resolves the codec per path extension
// (".json" encodes as JSON, everything else as gob).
type Store struct {
	codec    codec.Codec
	registry *codec.Registry
}

type StoreOption func(*Store)

// WithCodec pins the store to a single codec, bypassing extension-based
// resolution.
func WithCodec(c codec.Codec) StoreOption {
	return func(s *Store) {
		s.codec = c
	}
}

// WithRegistry resolves codecs through a custom registry instead of
// codec.DefaultRegistry.
func WithRegistry(r *codec.Registry) StoreOption {
	return func(s *Store) {
		s.registry = r
	}
}

func NewStore(opts ...StoreOption) *Store {
	store := &Store{
		registry: codec.DefaultRegistry,
	}
	for _, opt := range opts {
		opt(store)
	}

	return store
}

func (s *Store) codecFor(path string) codec.Codec {
	if s.codec != nil {
		return s.codec
	}

	return s.registry.ByExtension(filepath.Ext(path), codec.NewGobCodec())
}

// Save serializes value and writes it to path, honoring the same
// existence/overwrite contract as Write. An existing directory is a
// precondition violation.
func (s *Store) Save(path string, value any, overwrite bool) error {
	if IsDir(path) {
		return fmt.Errorf("%w: %s", ErrIsDirectory, path)
	}
	if !overwrite && Exists(path) {
		return fmt.Errorf("%w: %s", ErrExist, path)
	}

	data, err := s.codecFor(path).Marshal(value)
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

// Load reads path and deserializes its content into the value pointed to
// by out. Reports ok=false when path is not an existing file; an existing
// directory is a precondition violation.
func (s *Store) Load(path string, out any) (bool, error) {
	if IsDir(path) {
		return false, fmt.Errorf("%w: %s", ErrIsDirectory, path)
	}
	if !IsFile(path) {
		return false, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return false, err
	}

	if err := s.codecFor(path).Unmarshal(data, out); err != nil {
		return false, err
	}

	return true, nil
}

// defaultStore backs the module-level object operations.
var defaultStore = NewStore()

// SaveObject serializes value to path using the default store.
func SaveObject(path string, value any, overwrite bool) error {
	return defaultStore.Save(path, value, overwrite)
}

// LoadObject deserializes the value stored at path into out using the
// default store. Reports ok=false when path is not an existing file.
func LoadObject(path string, out any) (bool, error) {
	return defaultStore.Load(path, out)
}
