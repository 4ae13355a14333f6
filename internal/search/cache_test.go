package search

import (
	"sync"
	"testing"
)

func TestCacheHitAndMiss(t *testing.T) {
	c := NewCache(4)
	key := KeyFor(Query{Text: "saka"})

	if _, ok := c.Get(0, key); ok {
		t.Fatalf("expected miss on empty cache")
	}
	c.Put(0, key, NewResult(nil, 0, 20, 3))

	res, ok := c.Get(0, key)
	if !ok || res.Total != 3 {
		t.Fatalf("expected cached result, got %+v (ok=%v)", res, ok)
	}
}

func TestCacheKeysAreNormalized(t *testing.T) {
	c := NewCache(4)
	c.Put(0, KeyFor(Query{Text: "Müller", Club: "Bayern", Size: 0}), NewResult(nil, 0, 20, 1))

	same := []Query{
		{Text: "  muller ", Club: "Bayern", Size: 0},
		{Text: "MULLER", Club: "Bayern", Size: 99},
		{Text: "Muller", Club: "Bayern", Page: -1},
	}
	for _, q := range same {
		if _, ok := c.Get(0, KeyFor(q)); !ok {
			t.Fatalf("expected %+v to share the cached entry", q)
		}
	}

	different := []Query{
		{Text: "muller", Club: "bayern munchen"},
		{Text: "muller", Club: "Bayern", Page: 1},
		{Text: "muller"},
	}
	for _, q := range different {
		if _, ok := c.Get(0, KeyFor(q)); ok {
			t.Fatalf("expected %+v to miss", q)
		}
	}
}

func TestCacheBlankFacetsShareEntry(t *testing.T) {
	c := NewCache(4)
	c.Put(0, KeyFor(Query{}), NewResult(nil, 0, 20, 9))

	if _, ok := c.Get(0, KeyFor(Query{Text: "  ", Club: " ", Position: "\t"})); !ok {
		t.Fatalf("expected blank query and facets to hit the empty-query entry")
	}
}

func TestCacheVersioning(t *testing.T) {
	c := NewCache(4)
	key := KeyFor(Query{Text: "saka"})
	c.Put(0, key, NewResult(nil, 0, 20, 1))

	if _, ok := c.Get(1, key); ok {
		t.Fatalf("expected miss for a different version")
	}

	c.Invalidate(1)
	if c.Len() != 0 {
		t.Fatalf("expected invalidate to clear entries, got %d", c.Len())
	}
	if _, ok := c.Get(0, key); ok {
		t.Fatalf("expected stale version to miss after invalidate")
	}

	c.Put(0, key, NewResult(nil, 0, 20, 1))
	if c.Len() != 0 {
		t.Fatalf("expected stale put to be dropped")
	}

	c.Put(1, key, NewResult(nil, 0, 20, 2))
	if res, ok := c.Get(1, key); !ok || res.Total != 2 {
		t.Fatalf("expected fresh entry, got %+v (ok=%v)", res, ok)
	}
}

func TestCacheResetsWhenFull(t *testing.T) {
	c := NewCache(2)
	a, b, d := KeyFor(Query{Text: "a"}), KeyFor(Query{Text: "b"}), KeyFor(Query{Text: "d"})

	c.Put(0, a, Result{})
	c.Put(0, b, Result{})
	if c.Len() != 2 {
		t.Fatalf("expected 2 entries, got %d", c.Len())
	}
	c.Put(0, d, Result{})
	if c.Len() != 1 {
		t.Fatalf("expected reset before insert, got %d entries", c.Len())
	}
	if _, ok := c.Get(0, d); !ok {
		t.Fatalf("expected newest entry to survive the reset")
	}
}

func TestCacheDisabled(t *testing.T) {
	for _, c := range []*Cache{NewCache(0), NewCache(-1), nil} {
		key := KeyFor(Query{})
		c.Put(0, key, Result{})
		if _, ok := c.Get(0, key); ok {
			t.Fatalf("expected disabled cache to miss")
		}
		if c.Len() != 0 {
			t.Fatalf("expected disabled cache to stay empty")
		}
		c.Invalidate(1)
	}
}

func TestCacheConcurrentAccess(t *testing.T) {
	c := NewCache(8)
	keys := []CacheKey{KeyFor(Query{Text: "a"}), KeyFor(Query{Text: "b"}), KeyFor(Query{Text: "c"})}

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				k := keys[(i+j)%len(keys)]
				c.Put(uint64(j%2), k, Result{Total: j})
				c.Get(uint64(j%2), k)
				if j%25 == 0 {
					c.Invalidate(uint64(j % 2))
				}
			}
		}(i)
	}
	wg.Wait()
}
