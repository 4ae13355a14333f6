package search

import "sync"

// DefaultCacheSize bounds the number of cached result pages.
const DefaultCacheSize = 512

// CacheKey identifies a request by its normalized form, so queries differing
// only in case or accents share an entry.
type CacheKey struct {
	text   TextQuery
	facets Facets
	page   int
	size   int
}

// textKey drops the term slice so the key stays comparable.
type textKey struct {
	present bool
	text    string
}

type cacheKey struct {
	text   textKey
	facets Facets
	page   int
	size   int
}

// KeyFor builds the cache key of q after clamping.
func KeyFor(q Query) CacheKey {
	q = q.Clamped()
	return CacheKey{
		text:   CompileText(q.Text),
		facets: CompileFacets(q),
		page:   q.Page,
		size:   q.Size,
	}
}

func (k CacheKey) comparable() cacheKey {
	return cacheKey{
		text:   textKey{present: k.text.present, text: k.text.text},
		facets: k.facets,
		page:   k.page,
		size:   k.size,
	}
}

// Cache memoizes search results for one corpus version at a time.
// Entries tagged with any other version are never served.
type Cache struct {
	mu      sync.RWMutex
	max     int
	version uint64
	entries map[cacheKey]Result
}

// NewCache returns a cache holding at most max entries; max <= 0 disables caching.
func NewCache(max int) *Cache {
	return &Cache{
		max:     max,
		entries: make(map[cacheKey]Result),
	}
}

// Get returns the cached result for key if it was computed against version.
func (c *Cache) Get(version uint64, key CacheKey) (Result, bool) {
	if c == nil || c.max <= 0 {
		return Result{}, false
	}
	c.mu.RLock()
	defer c.mu.RUnlock()

	if version != c.version {
		return Result{}, false
	}
	res, ok := c.entries[key.comparable()]
	return res, ok
}

// Put stores res. Results computed against a stale version are dropped.
// A full cache is emptied before the insert.
func (c *Cache) Put(version uint64, key CacheKey, res Result) {
	if c == nil || c.max <= 0 {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	if version != c.version {
		return
	}
	if len(c.entries) >= c.max {
		c.entries = make(map[cacheKey]Result)
	}
	c.entries[key.comparable()] = res
}

// Invalidate drops every entry and starts accepting results for version.
func (c *Cache) Invalidate(version uint64) {
	if c == nil {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	c.version = version
	c.entries = make(map[cacheKey]Result)
}

// Len reports the number of cached entries.
func (c *Cache) Len() int {
	if c == nil {
		return 0
	}
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}
