// Package cache provides a small generic LRU cache.
//
//	c := cache.New[string, int](64)
//	v := c.GetOrCreate("key", func() int { return 42 })
//
// Cache is safe for concurrent use and must not be copied after creation.
package cache
