package facts

import (
	"context"
	"encoding/json"

	"github.com/coocood/freecache"
	log "github.com/sirupsen/logrus"
)

const (
	catalogCacheSize       = 512 * 1024 // the whole exercise catalog is tiny
	catalogCacheTTLSeconds = 300
)

var catalogCacheKey = []byte("exercise-catalog")

// CachedStore decorates a Store with a freecache layer over the
// exercise catalog. The catalog is static reference data, so a short
// TTL is enough; all fact reads pass straight through because reports
// must always be computed from the current facts.
type CachedStore struct {
	Store
	cache *freecache.Cache
}

var _ Store = (*CachedStore)(nil)

func NewCachedStore(store Store) *CachedStore {
	return &CachedStore{
		Store: store,
		cache: freecache.NewCache(catalogCacheSize),
	}
}

func (c *CachedStore) Exercises(ctx context.Context) ([]Exercise, error) {
	if cached, err := c.cache.Get(catalogCacheKey); err == nil {
		var exercises []Exercise
		if err := json.Unmarshal(cached, &exercises); err == nil {
			return exercises, nil
		}
		log.Warnf("corrupt exercise catalog cache entry, falling back to store")
	}

	exercises, err := c.Store.Exercises(ctx)
	if err != nil {
		return nil, err
	}

	encoded, err := json.Marshal(exercises)
	if err != nil {
		log.Warnf("failed to encode exercise catalog for cache: %s", err)
		return exercises, nil
	}
	if err := c.cache.Set(catalogCacheKey, encoded, catalogCacheTTLSeconds); err != nil {
		log.Warnf("failed to cache exercise catalog: %s", err)
	}

	return exercises, nil
}
