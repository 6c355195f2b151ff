// Released under an MIT license. See LICENSE.

// Package hash provides cclisp's name to value mapping type.
package hash

import (
	"sort"
	"sync"

	"github.com/redstar-bot/cclisp/internal/common/interface/cell"
	"github.com/redstar-bot/cclisp/internal/common/interface/reference"
	"github.com/redstar-bot/cclisp/internal/common/struct/slot"
)

// T (hash) maps names to values.
type T struct {
	sync.RWMutex
	m map[string]reference.I
}

type hash = T

// New creates a new hash.
func New() *hash {
	return &hash{m: map[string]reference.I{}}
}

// Clear removes every association in the hash h.
func (h *hash) Clear() {
	h.Lock()
	defer h.Unlock()

	h.m = map[string]reference.I{}
}

// Copy creates a new hash with a copy of every reference.
func (h *hash) Copy() *hash {
	if h == nil {
		return nil
	}

	h.RLock()
	defer h.RUnlock()

	fresh := New()
	for k, v := range h.m {
		fresh.m[k] = v.Copy()
	}

	return fresh
}

// Del frees the name k from any association in the hash h.
func (h *hash) Del(k string) bool {
	if h == nil {
		return false
	}

	h.Lock()
	defer h.Unlock()

	_, ok := h.m[k]
	if !ok {
		return false
	}

	delete(h.m, k)

	return true
}

// Get retrieves the reference associated with the name k in the hash h.
func (h *hash) Get(k string) reference.I {
	if h == nil {
		return nil
	}

	h.RLock()
	defer h.RUnlock()

	return h.m[k]
}

// Names returns the sorted names in the hash h.
func (h *hash) Names() []string {
	h.RLock()
	defer h.RUnlock()

	names := make([]string, 0, len(h.m))
	for k := range h.m {
		names = append(names, k)
	}

	sort.Strings(names)

	return names
}

// Set associates the name k with the cell v in the hash h.
// An existing reference is updated rather than replaced.
func (h *hash) Set(k string, v cell.I) {
	h.Lock()
	defer h.Unlock()

	if r, ok := h.m[k]; ok {
		r.Set(v)

		return
	}

	h.m[k] = slot.New(v)
}

// Size returns the number of entries in the hash h.
func (h *hash) Size() int {
	h.RLock()
	defer h.RUnlock()

	return len(h.m)
}
