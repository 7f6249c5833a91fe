package codec

import (
	"fmt"
	"strings"
	"sync"

	"github.com/tidwall/btree"
)

// Registry resolves codecs by name or by file extension.
// Lookups by extension let callers pick an encoding per target path
// without threading codec choices through every call site.
type Registry struct {
	mu         sync.RWMutex
	names      *btree.Map[string, Codec]
	extensions *btree.Map[string, Codec]
}

func NewRegistry() *Registry {
	return &Registry{
		names:      btree.NewMap[string, Codec](0), // degree 0 = auto-optimize
		extensions: btree.NewMap[string, Codec](0),
	}
}

// Register adds a codec under its name and claimed extensions,
// replacing any previous registration.
func (r *Registry) Register(c Codec) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.names.Set(c.Name(), c)
	for _, ext := range c.Extensions() {
		r.extensions.Set(strings.ToLower(ext), c)
	}
}

// Lookup returns the codec registered under name.
func (r *Registry) Lookup(name string) (Codec, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	c, ok := r.names.Get(name)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownCodec, name)
	}

	return c, nil
}

// ByExtension returns the codec claiming ext (leading dot, case
// insensitive), or the fallback when no codec claims it.
func (r *Registry) ByExtension(ext string, fallback Codec) Codec {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if c, ok := r.extensions.Get(strings.ToLower(ext)); ok {
		return c
	}

	return fallback
}

// Names returns the registered codec names in sorted order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, r.names.Len())
	r.names.Scan(func(name string, _ Codec) bool {
		names = append(names, name)
		return true
	})

	return names
}

// DefaultRegistry holds the built-in codecs. The gob codec doubles as the
// fallback for unclaimed extensions.
var DefaultRegistry = func() *Registry {
	r := NewRegistry()
	r.Register(NewGobCodec())
	r.Register(NewJSONCodec())

	return r
}()
