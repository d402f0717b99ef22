package cmd

import (
	"sync"
	"time"

	"github.com/mj1618/active-window/internal/windows"
)

// mcpCacheEntry holds a cached enumeration with its timestamp.
type mcpCacheEntry struct {
	result    windows.Result
	timestamp time.Time
}

// mcpResultCache provides a TTL-based cache of enumeration results, so agents
// polling in a tight loop do not re-script the browser on every call.
type mcpResultCache struct {
	mu      sync.Mutex
	entries map[windows.Options]mcpCacheEntry
	ttl     time.Duration
}

// newMCPResultCache creates a new cache. A ttl of 0 disables caching.
func newMCPResultCache(ttl time.Duration) *mcpResultCache {
	return &mcpResultCache{
		entries: make(map[windows.Options]mcpCacheEntry),
		ttl:     ttl,
	}
}

// get returns the cached result for opts if within TTL, otherwise runs fetch.
// Errors are never cached.
func (c *mcpResultCache) get(opts windows.Options, fetch func() (windows.Result, error)) (windows.Result, error) {
	if c.ttl == 0 {
		return fetch()
	}

	c.mu.Lock()
	if entry, ok := c.entries[opts]; ok && time.Since(entry.timestamp) < c.ttl {
		result := entry.result
		c.mu.Unlock()
		return result, nil
	}
	c.mu.Unlock()

	result, err := fetch()
	if err != nil {
		return windows.Result{}, err
	}

	c.mu.Lock()
	c.entries[opts] = mcpCacheEntry{result: result, timestamp: time.Now()}
	c.mu.Unlock()

	return result, nil
}
