package suggest

import (
	"math"
	"sync"

	"github.com/charmbracelet/log"
)

// Cache is a bounded word-to-suggestions cache with least-recently-used
// eviction. Repeated checks of the same misspellings in a document make
// the suggestion pipeline the hot path; the cache short-circuits it.
type Cache struct {
	entries map[string][]Suggestion
	access  map[string]int64
	counter int64
	maxSize int
	mu      sync.RWMutex
}

// NewCache returns a Cache holding at most maxSize entries.
func NewCache(maxSize int) *Cache {
	if maxSize <= 0 {
		maxSize = 1
	}
	return &Cache{
		entries: make(map[string][]Suggestion, maxSize),
		access:  make(map[string]int64, maxSize),
		maxSize: maxSize,
	}
}

// Get returns the cached suggestions for word and marks it recently used.
// The returned slice is a copy.
func (c *Cache) Get(word string) ([]Suggestion, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	sugs, ok := c.entries[word]
	if !ok {
		return nil, false
	}
	c.counter++
	c.access[word] = c.counter

	out := make([]Suggestion, len(sugs))
	copy(out, sugs)
	return out, true
}

// Put stores suggestions for word, evicting the least recently used entry
// when the cache is full.
func (c *Cache) Put(word string, sugs []Suggestion) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, exists := c.entries[word]; !exists && len(c.entries) >= c.maxSize {
		c.evictLRU()
	}
	stored := make([]Suggestion, len(sugs))
	copy(stored, sugs)
	c.entries[word] = stored
	c.counter++
	c.access[word] = c.counter
}

// Purge drops every entry. Called after any lexicon mutation, since
// cached rankings embed frequencies and membership.
func (c *Cache) Purge() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[string][]Suggestion, c.maxSize)
	c.access = make(map[string]int64, c.maxSize)
}

// Len returns the number of cached words.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

func (c *Cache) evictLRU() {
	var oldest string
	var oldestAt int64 = math.MaxInt64
	for word, at := range c.access {
		if at < oldestAt {
			oldestAt = at
			oldest = word
		}
	}
	if oldest != "" {
		delete(c.entries, oldest)
		delete(c.access, oldest)
		log.Debugf("suggest: evicted %q from cache", oldest)
	}
}
