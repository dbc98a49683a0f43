package cache

import (
	"time"

	"github.com/patrickmn/go-cache"
)

// NoExpiry ... default expiry for caches whose entries are superseded only
const NoExpiry = cache.NoExpiration

// Memory ... process-local cache, safe for concurrent readers and writers
type Memory struct {
	Cache *cache.Cache
}

// Initialize ...
func Initialize(expiry time.Duration, purgeInterval time.Duration) *Memory {
	newCache := cache.New(expiry, purgeInterval)
	memoryCache := Memory{
		Cache: newCache,
	}
	return &memoryCache
}

// Set ... entries written with expiry=false stay until overwritten
func (memory *Memory) Set(key string, value interface{}, expiry bool) {
	if expiry {
		memory.Cache.Set(key, value, cache.DefaultExpiration)
	} else {
		memory.Cache.Set(key, value, cache.NoExpiration)
	}
}

// Get ...
func (memory *Memory) Get(key string) interface{} {
	cacheValue, _ := memory.Cache.Get(key)
	return cacheValue
}

// Delete ...
func (memory *Memory) Delete(key string) {
	memory.Cache.Delete(key)
}
