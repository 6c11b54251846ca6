// SPDX-License-Identifier: MIT

package gauss

import "sync"

// cacheKey identifies a rule by order and the options that produced it.
type cacheKey struct {
	n    int
	opts Options
}

// Cache memoizes rules by (order, options). It is safe for concurrent use.
// Failures are not cached, so a failing order is recomputed on every call.
//
// Rules are stored and returned as private copies; callers may mutate what
// they receive without affecting the cache.
type Cache struct {
	mu    sync.Mutex
	rules map[cacheKey]Rule
}

// NewCache returns an empty cache.
func NewCache() *Cache {
	return &Cache{rules: make(map[cacheKey]Rule)}
}

// Solve behaves like the package-level Solve, computing each distinct
// (n, options) pair at most once.
func (c *Cache) Solve(n int, opts ...Option) (Rule, error) {
	o, err := gatherOptions(opts)
	if err != nil {
		return Rule{}, err
	}
	key := cacheKey{n: n, opts: o}
	if o.Method == MethodGolubWelsch {
		// Newton fields do not influence Golub–Welsch output.
		key.opts = Options{Method: MethodGolubWelsch}
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if r, ok := c.rules[key]; ok {
		return r.Clone(), nil
	}
	r, err := solve(n, o)
	if err != nil {
		return Rule{}, err
	}
	c.rules[key] = r

	return r.Clone(), nil
}

// Len returns the number of cached rules.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	return len(c.rules)
}

// Reset drops every cached rule.
func (c *Cache) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.rules = make(map[cacheKey]Rule)
}
