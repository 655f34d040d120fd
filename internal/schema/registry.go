package schema

import (
	"fmt"
	"strings"
	"sync"
)

// Registry collects entity descriptors at startup, preserving insertion
// order. It is safe for concurrent use.
type Registry struct {
	mu    sync.RWMutex
	descs []Descriptor
	names map[string]struct{}
}

// NewRegistry returns an empty Registry.
func NewRegistry() *Registry {
	return &Registry{names: map[string]struct{}{}}
}

// Add registers d. Descriptors without the entity marker are rejected with
// *NotEntityError, as is a second descriptor resolving to an already
// registered table name (compared case-insensitively).
func (r *Registry) Add(d Descriptor) error {
	if !d.Entity {
		return &NotEntityError{Type: d.Name}
	}
	key := strings.ToLower(tableName(d))

	r.mu.Lock()
	defer r.mu.Unlock()
	if _, dup := r.names[key]; dup {
		return fmt.Errorf("schema: table %q registered twice", tableName(d))
	}
	r.names[key] = struct{}{}
	r.descs = append(r.descs, d.clone())
	return nil
}

// AddValue describes v and registers the result.
func (r *Registry) AddValue(v any) error {
	d, err := Describe(v)
	if err != nil {
		return err
	}
	return r.Add(d)
}

// Descriptors returns copies of the registered descriptors in insertion order.
func (r *Registry) Descriptors() []Descriptor {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Descriptor, len(r.descs))
	for i, d := range r.descs {
		out[i] = d.clone()
	}
	return out
}

// Len reports the number of registered descriptors.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.descs)
}

// Tables derives a Table for every registered descriptor.
func (r *Registry) Tables(opts ...Option) ([]*Table, error) {
	descs := r.Descriptors()
	out := make([]*Table, 0, len(descs))
	for _, d := range descs {
		t, err := Of(d, opts...)
		if err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, nil
}
