package blog_cache

import (
	"sync"
	"time"

	"github.com/al-mohaimin-farabi/pet-club-backend/models"
)

const TTL = 5 * time.Minute

// ── Blog list cache ──────────────────────────────────────────────────────────
// Blogs have no write endpoints, so a short in-process TTL is the only
// staleness bound needed. Both the list route and the by-title route read
// from this.

type entry struct {
	blogs     []models.Blog
	fetchedAt time.Time
}

var (
	mu    sync.RWMutex
	cache *entry
)

func Get() ([]models.Blog, bool) {
	mu.RLock()
	defer mu.RUnlock()
	if cache != nil && time.Since(cache.fetchedAt) < TTL {
		return cache.blogs, true
	}
	return nil, false
}

func Set(blogs []models.Blog) {
	mu.Lock()
	defer mu.Unlock()
	cache = &entry{blogs: blogs, fetchedAt: time.Now()}
}

// Invalidate drops the cached list so the next read refetches.
func Invalidate() {
	mu.Lock()
	cache = nil
	mu.Unlock()
}
