// Package cache holds process-lifetime snapshots of upstream data. Entries
// expire after a uniform TTL and are rebuilt from upstream on demand; the
// cache is never persisted.
package cache

import (
	"fmt"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"
)

const (
	DefaultTTL      = 24 * time.Hour
	janitorInterval = 10 * time.Minute

	// AllProjectsKey caches the aggregated project listing.
	AllProjectsKey = "allProjects"
)

func RepoKey(owner, name string) string {
	return fmt.Sprintf("repo:%s/%s", owner, name)
}

func IssuesKey(projectID, state string) string {
	return fmt.Sprintf("issues:%s:%s", projectID, state)
}

func CommentsKey(owner, repo string, issueNumber int) string {
	return fmt.Sprintf("comments:%s/%s/%d", owner, repo, issueNumber)
}

type entry struct {
	value     any
	expiresAt time.Time
}

// Cache is a mutex-guarded string-keyed store with per-entry expiry. An
// expired entry is treated as absent; readers never observe a value past
// its lifetime. Fill-on-miss work should be routed through Do so that
// concurrent misses on one key collapse into a single upstream fetch.
type Cache struct {
	mu      sync.RWMutex
	entries map[string]entry

	ttl   time.Duration
	group singleflight.Group

	stop     chan struct{}
	stopOnce sync.Once
}

// New creates a cache with the given default TTL (DefaultTTL if zero) and
// starts a background janitor that drops expired entries.
func New(ttl time.Duration) *Cache {
	if ttl <= 0 {
		ttl = DefaultTTL
	}

	c := &Cache{
		entries: make(map[string]entry),
		ttl:     ttl,
		stop:    make(chan struct{}),
	}

	go c.janitor()

	return c
}

// Get returns the live value for key, or false on absence or expiry.
func (c *Cache) Get(key string) (any, bool) {
	c.mu.RLock()
	e, ok := c.entries[key]
	c.mu.RUnlock()

	if !ok || time.Now().After(e.expiresAt) {
		return nil, false
	}
	return e.value, true
}

// Set stores value under key with the default TTL, overwriting
// unconditionally.
func (c *Cache) Set(key string, value any) {
	c.SetWithTTL(key, value, c.ttl)
}

// SetWithTTL stores value under key with an explicit TTL.
func (c *Cache) SetWithTTL(key string, value any, ttl time.Duration) {
	c.mu.Lock()
	c.entries[key] = entry{value: value, expiresAt: time.Now().Add(ttl)}
	c.mu.Unlock()
}

// Delete removes key if present.
func (c *Cache) Delete(key string) {
	c.mu.Lock()
	delete(c.entries, key)
	c.mu.Unlock()
}

// Do runs fn through a per-key single-flight group: concurrent callers for
// the same key share one execution and its result. The value is not stored
// here; fn decides what to cache.
func (c *Cache) Do(key string, fn func() (any, error)) (any, error) {
	v, err, _ := c.group.Do(key, fn)
	return v, err
}

// Stop terminates the janitor. Further Get/Set calls remain safe.
func (c *Cache) Stop() {
	c.stopOnce.Do(func() { close(c.stop) })
}

func (c *Cache) janitor() {
	ticker := time.NewTicker(janitorInterval)
	defer ticker.Stop()

	for {
		select {
		case <-c.stop:
			return
		case now := <-ticker.C:
			c.mu.Lock()
			for key, e := range c.entries {
				if now.After(e.expiresAt) {
					delete(c.entries, key)
				}
			}
			c.mu.Unlock()
		}
	}
}
