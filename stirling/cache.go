// SPDX-License-Identifier: MIT

package stirling

import "sync"

// Cache memoizes Generate. The zero value is ready to use and safe for
// concurrent callers. Returned tables share rows with the cache and must
// be treated as read-only.
type Cache struct {
	mu  sync.RWMutex
	tbl Table
}

// NewCache returns an empty Cache.
func NewCache() *Cache { return &Cache{} }

// Get returns the same rows as Generate(n), extending the memoized table
// when n is larger than anything requested before.
func (c *Cache) Get(n int) (Table, error) {
	if n < 0 {
		return Generate(n)
	}
	rows := n
	if rows < 1 {
		rows = 1
	}

	c.mu.RLock()
	if len(c.tbl) >= rows {
		out := c.tbl[:rows:rows]
		c.mu.RUnlock()

		return out, nil
	}
	c.mu.RUnlock()

	c.mu.Lock()
	defer c.mu.Unlock()
	if len(c.tbl) < rows {
		base := c.tbl
		if len(base) == 0 {
			base = Table{{1}}
		}
		grown, err := extend(base, rows)
		if err != nil {
			return nil, err
		}
		c.tbl = grown
	}

	return c.tbl[:rows:rows], nil
}

// Len reports how many rows are currently memoized.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return len(c.tbl)
}
