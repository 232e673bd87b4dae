package registry

import (
	"strconv"
	"sync"
)

type (
	// IdentifierRegistry hands out small sequential identifiers for the most recent restaurant listing.
	// An external identifier is only meaningful until the next Rebuild.
	IdentifierRegistry interface {
		Rebuild(restaurantIDs []string) map[string]string
		Resolve(externalID string) string
		ReverseLookup(restaurantID string) (int, bool)
		Len() int
	}

	entry struct {
		externalID   int
		restaurantID string
	}

	identifierRegistry struct {
		mu         sync.RWMutex
		entries    []entry
		byExternal map[string]string
	}
)

func NewIdentifierRegistry() IdentifierRegistry {
	return &identifierRegistry{
		byExternal: make(map[string]string),
	}
}

// Rebuild drops the previous mapping and numbers restaurantIDs from 1 in the order given.
func (r *identifierRegistry) Rebuild(restaurantIDs []string) map[string]string {
	entries := make([]entry, 0, len(restaurantIDs))
	byExternal := make(map[string]string, len(restaurantIDs))
	mapping := make(map[string]string, len(restaurantIDs))

	for i, restaurantID := range restaurantIDs {
		externalID := i + 1
		key := strconv.Itoa(externalID)
		entries = append(entries, entry{externalID: externalID, restaurantID: restaurantID})
		byExternal[key] = restaurantID
		mapping[key] = restaurantID
	}

	r.mu.Lock()
	r.entries = entries
	r.byExternal = byExternal
	r.mu.Unlock()

	return mapping
}

// Resolve returns the restaurant identifier behind externalID. On a miss the input is returned
// unchanged and treated as a restaurant identifier by the caller.
func (r *identifierRegistry) Resolve(externalID string) string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if restaurantID, ok := r.byExternal[externalID]; ok {
		return restaurantID
	}
	return externalID
}

func (r *identifierRegistry) ReverseLookup(restaurantID string) (int, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, e := range r.entries {
		if e.restaurantID == restaurantID {
			return e.externalID, true
		}
	}
	return 0, false
}

func (r *identifierRegistry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.entries)
}
