// Package dnscache maps process labels to the ports their backends listen on.
// It is read by the DNS responder and the reverse proxy and written by the
// launcher when a process receives a port at spawn time.
package dnscache

import (
	"sync"

	"devproc/internal/process"
)

// Entry describes where a label's backend listens.
type Entry struct {
	Port int `json:"port"`
}

// Observer receives cache traffic. Implementations must be safe for concurrent use.
type Observer interface {
	ObserveLookup(hit bool)
	ObserveAdd()
}

// Option configures a Cache.
type Option func(*Cache)

// WithObserver reports lookups and additions to o.
func WithObserver(o Observer) Option {
	return func(c *Cache) {
		c.observer = o
	}
}

// Cache is a threadsafe label -> Entry table. Every access goes through mu.
type Cache struct {
	mu      sync.Mutex
	entries map[string]Entry

	// saveMu orders snapshot writes so the last file on disk reflects the
	// newest table.
	saveMu sync.Mutex

	observer Observer
}

// New seeds the cache with every process that has a port.
func New(procs []process.Process, opts ...Option) *Cache {
	c := &Cache{entries: make(map[string]Entry, len(procs))}
	for _, opt := range opts {
		opt(c)
	}
	for _, p := range procs {
		if p.HasPort() {
			c.entries[p.Label] = Entry{Port: p.Port}
		}
	}
	return c
}

// Lookup returns the entry for label.
func (c *Cache) Lookup(label string) (Entry, bool) {
	c.mu.Lock()
	e, ok := c.entries[label]
	c.mu.Unlock()

	if c.observer != nil {
		c.observer.ObserveLookup(ok)
	}
	return e, ok
}

// Add inserts or replaces the entry for label.
func (c *Cache) Add(label string, port int) {
	c.mu.Lock()
	c.entries[label] = Entry{Port: port}
	c.mu.Unlock()

	if c.observer != nil {
		c.observer.ObserveAdd()
	}
}

// Len returns the number of entries.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

// Snapshot returns a copy of the table.
func (c *Cache) Snapshot() map[string]Entry {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make(map[string]Entry, len(c.entries))
	for k, v := range c.entries {
		out[k] = v
	}
	return out
}
