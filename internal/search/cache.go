package search

import "github.com/lgbarn/chess-ai-go/internal/hashing"

// Bound records how a cached value relates to the true score.
type Bound int8

const (
	Exact      Bound = iota
	LowerBound       // the search failed high; the score is at least Value
	UpperBound       // the search failed low; the score is at most Value
)

// Entry is a cached search result.
type Entry struct {
	Value int
	Depth int
	Bound Bound
}

// CacheStats counts cache traffic since the cache was created.
type CacheStats struct {
	Probes int
	Hits   int
	Stores int
	Clears int
}

// TranspositionCache maps canonical position keys to search results. It
// holds at most limit entries: a store that takes it past the limit
// clears it.
type TranspositionCache struct {
	entries map[hashing.Key]Entry
	limit   int
	stats   CacheStats
}

// NewTranspositionCache creates an empty cache holding at most limit entries.
func NewTranspositionCache(limit int) *TranspositionCache {
	return &TranspositionCache{
		entries: make(map[hashing.Key]Entry),
		limit:   limit,
	}
}

// Probe returns the entry for key if it was searched at least as deep as
// depth.
func (c *TranspositionCache) Probe(key hashing.Key, depth int) (Entry, bool) {
	c.stats.Probes++
	e, ok := c.entries[key]
	if !ok || e.Depth < depth {
		return Entry{}, false
	}
	c.stats.Hits++
	return e, true
}

// Store records an entry, keeping an existing deeper result.
func (c *TranspositionCache) Store(key hashing.Key, e Entry) {
	if old, ok := c.entries[key]; ok && old.Depth > e.Depth {
		return
	}
	c.entries[key] = e
	c.stats.Stores++
	if c.limit > 0 && len(c.entries) > c.limit {
		c.Clear()
	}
}

// Len returns the number of cached entries.
func (c *TranspositionCache) Len() int {
	return len(c.entries)
}

// Limit returns the maximum number of entries.
func (c *TranspositionCache) Limit() int {
	return c.limit
}

// Clear removes every entry.
func (c *TranspositionCache) Clear() {
	c.entries = make(map[hashing.Key]Entry)
	c.stats.Clears++
}

// Stats returns the traffic counters.
func (c *TranspositionCache) Stats() CacheStats {
	return c.stats
}
