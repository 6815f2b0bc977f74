package pkg

import "sync"

// Logical view tags invalidated by money mutations.
const (
	CacheTagWallet        = "wallet"
	CacheTagTransactions  = "transactions"
	CacheTagNotifications = "notifications"
)

// Cache is a tag-keyed store with invalidation signaling. Mutation services
// call Invalidate with the logical views a successful mutation staled;
// read-side callers either cache responses under a tag or subscribe to hear
// about invalidations. Duplicate invalidations are harmless: the entry is
// simply gone and subscribers fire again.
type Cache struct {
	mu      sync.RWMutex
	entries map[string]any
	subs    map[string][]func(tag string)
}

// NewCache creates an empty Cache.
func NewCache() *Cache {
	return &Cache{
		entries: make(map[string]any),
		subs:    make(map[string][]func(tag string)),
	}
}

// Get returns the value cached under tag, if any.
func (c *Cache) Get(tag string) (any, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	v, ok := c.entries[tag]
	return v, ok
}

// Set stores a value under tag.
func (c *Cache) Set(tag string, value any) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[tag] = value
}

// Invalidate drops the entries for the given tags and notifies subscribers.
func (c *Cache) Invalidate(tags ...string) {
	c.mu.Lock()
	var notify []func(string)
	var notifyTags []string
	for _, tag := range tags {
		delete(c.entries, tag)
		for _, fn := range c.subs[tag] {
			notify = append(notify, fn)
			notifyTags = append(notifyTags, tag)
		}
	}
	c.mu.Unlock()

	// Callbacks run outside the lock so subscribers may touch the cache.
	for i, fn := range notify {
		fn(notifyTags[i])
	}
}

// Subscribe registers fn to be called whenever tag is invalidated.
func (c *Cache) Subscribe(tag string, fn func(tag string)) {
	if fn == nil {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.subs[tag] = append(c.subs[tag], fn)
}
