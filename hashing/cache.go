package hashing

// Cache is a per-instance memoization cell for a hash code. Embed it in a
// struct and hand out pointer instances, and hash generators that cache
// will compute the code once and reuse it for the lifetime of the
// instance, no matter how the instance's fields change afterward.
//
// The cell is deliberately unsynchronized. An instance is assumed to have
// a single owner when its hash is first computed; populating the cache
// concurrently from multiple goroutines is a misuse the cell does not
// protect against.
type Cache struct {
	code uint64
	done bool
}

// Cacher is implemented by instances that carry a Cache cell. Embedding
// Cache satisfies it for free on pointer instances.
type Cacher interface {
	HashCache() *Cache
}

// HashCache returns the cell itself, satisfying Cacher for any struct
// that embeds Cache.
func (c *Cache) HashCache() *Cache { return c }

// Memoize returns the cached code, computing and storing it on the first
// call. Later calls never re-invoke compute; a stale code after field
// mutation is the holder's responsibility, not the cell's.
func (c *Cache) Memoize(compute func() uint64) uint64 {
	if !c.done {
		c.code = compute()
		c.done = true
	}

	return c.code
}

// Computed reports whether a code has been stored. Useful in tests and
// debugging; normal code flow should not branch on it.
func (c *Cache) Computed() bool {
	return c.done
}

// Reset discards the stored code so the next Memoize call recomputes.
// Invalidation is always explicit: nothing calls Reset automatically.
func (c *Cache) Reset() {
	c.code = 0
	c.done = false
}
