package record

import (
	"reflect"
	"sync"
)

// Cache memoizes composed record types keyed by the reflected type of the
// composition target, so a declarative definition is resolved once no
// matter how often it is composed. Lookups with different options for the
// same target are indistinguishable; use distinct definition types for
// distinct configurations.
type Cache struct {
	mu    sync.Mutex
	types map[reflect.Type]*Type
}

// NewCache returns an empty type cache. The zero value is not usable.
func NewCache() *Cache {
	return &Cache{types: make(map[reflect.Type]*Type)}
}

// Compose returns the memoized type for target, composing it on first use.
// Repeated calls with the same target return the identical *Type.
func (c *Cache) Compose(target any, opts ...Option) (*Type, error) {
	if target == nil {
		// Nothing to key on; compose uncached.
		return Compose(target, opts...)
	}
	key := indirect(reflect.TypeOf(target))
	c.mu.Lock()
	defer c.mu.Unlock()
	if t, ok := c.types[key]; ok {
		return t, nil
	}
	t, err := Compose(target, opts...)
	if err != nil {
		return nil, err
	}
	c.types[key] = t
	return t, nil
}

// Len returns the number of cached types.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.types)
}

// Clear removes all cached types.
func (c *Cache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	clear(c.types)
}
