// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package registry holds the in-memory catalog of pattern schemas.
//
// The registry is append-only and does no validation: several packs may
// register independently, and malformed patterns are caught when their
// slots fail to bind.
package registry

import (
	"sync"

	"github.com/pdiddy/sentence-engine/pkg/types"
)

// Registry is an ordered, id-deduplicated list of patterns. It is safe for
// concurrent use.
type Registry struct {
	mu      sync.RWMutex
	schemas []types.PatternSchema
	ids     map[string]struct{}
}

// New returns an empty registry.
func New() *Registry {
	return &Registry{ids: make(map[string]struct{})}
}

// Register appends schemas whose id is not yet known and returns how many
// were added. The first registration of an id wins.
func (r *Registry) Register(schemas ...types.PatternSchema) int {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.ids == nil {
		r.ids = make(map[string]struct{})
	}
	added := 0
	for _, s := range schemas {
		if _, dup := r.ids[s.ID]; dup {
			continue
		}
		r.ids[s.ID] = struct{}{}
		r.schemas = append(r.schemas, s)
		added++
	}
	return added
}

// All returns a copy of the registered schemas in registration order.
func (r *Registry) All() []types.PatternSchema {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]types.PatternSchema, len(r.schemas))
	copy(out, r.schemas)
	return out
}

// Get returns the schema with id.
func (r *Registry) Get(id string) (types.PatternSchema, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, s := range r.schemas {
		if s.ID == id {
			return s, true
		}
	}
	return types.PatternSchema{}, false
}

// Len returns the number of registered schemas.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.schemas)
}

// Clear removes every schema.
func (r *Registry) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.schemas = nil
	r.ids = make(map[string]struct{})
}
