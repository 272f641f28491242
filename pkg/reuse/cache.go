// Package reuse pools expensive content (typically native handles) so views
// can release it on disappear and pick it up again on the next appear.
//
// A [Cache] maps a reuse identifier to a stack of idle instances: the most
// recently released instance is the first one handed out again. The cache is
// best-effort. Dropping pooled entries changes performance, never behavior,
// so [Cache.Reset] and [Cache.Trim] may be called at any time (for example on
// a memory-pressure signal).
//
// A Cache is safe for concurrent use. Hooks run outside the lock.
package reuse

import (
	"fmt"
	"sort"
	"sync"

	"github.com/go-drift/quickly/pkg/errors"
)

// Reusable describes one kind of pooled content owned by O.
type Reusable[O, C any] struct {
	// ID keys the pool. Every Reusable sharing an ID must produce the same C.
	ID string

	// Create makes a new instance when the pool is empty.
	Create func(owner O) C

	// Configure prepares an instance for owner before Get returns it.
	Configure func(owner O, content C)

	// Cleanup strips owner-specific state before Set pools the instance.
	Cleanup func(owner O, content C)
}

// Cache is a keyed pool of idle instances.
type Cache struct {
	mu    sync.Mutex
	pools map[string][]any
}

// New creates an empty cache.
func New() *Cache {
	return &Cache{pools: make(map[string][]any)}
}

// Get pops the most recently released instance for r.ID, or creates one,
// then configures it for owner. With a nil cache every call creates.
func Get[O, C any](c *Cache, r Reusable[O, C], owner O) C {
	content, ok := c.pop(r.ID)
	var result C
	if ok {
		result, ok = content.(C)
		if !ok {
			errors.Report(&errors.ViewError{
				Op:   "reuse.Get",
				Kind: errors.KindReuse,
				Err:  fmt.Errorf("pooled %T does not match requested %T for %q", content, result, r.ID),
			})
		}
	}
	if !ok {
		result = r.Create(owner)
	}
	if r.Configure != nil {
		r.Configure(owner, result)
	}
	return result
}

// Set cleans content up for owner and pushes it onto the pool for r.ID.
func Set[O, C any](c *Cache, r Reusable[O, C], owner O, content C) {
	if r.Cleanup != nil {
		r.Cleanup(owner, content)
	}
	if c == nil {
		return
	}
	c.mu.Lock()
	c.pools[r.ID] = append(c.pools[r.ID], content)
	c.mu.Unlock()
}

func (c *Cache) pop(id string) (any, bool) {
	if c == nil {
		return nil, false
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	pool := c.pools[id]
	if len(pool) == 0 {
		return nil, false
	}
	content := pool[len(pool)-1]
	pool[len(pool)-1] = nil
	c.pools[id] = pool[:len(pool)-1]
	return content, true
}

// Reset drops every pooled instance. Like the methods below it is a no-op
// on a nil cache.
func (c *Cache) Reset() {
	if c == nil {
		return
	}
	c.mu.Lock()
	c.pools = make(map[string][]any)
	c.mu.Unlock()
}

// Trim truncates every pool to at most limit instances, keeping the ones
// released first. A negative limit is treated as zero.
func (c *Cache) Trim(limit int) {
	if c == nil {
		return
	}
	limit = max(limit, 0)
	c.mu.Lock()
	defer c.mu.Unlock()
	for id, pool := range c.pools {
		if len(pool) <= limit {
			continue
		}
		clear(pool[limit:])
		c.pools[id] = pool[:limit]
	}
}

// Len returns the number of idle instances pooled for id.
func (c *Cache) Len(id string) int {
	if c == nil {
		return 0
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.pools[id])
}

// IDs returns the identifiers with at least one idle instance, sorted.
func (c *Cache) IDs() []string {
	if c == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	ids := make([]string, 0, len(c.pools))
	for id, pool := range c.pools {
		if len(pool) > 0 {
			ids = append(ids, id)
		}
	}
	sort.Strings(ids)
	return ids
}
