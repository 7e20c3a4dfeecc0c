package challenges

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/2beens/fitchallenge/internal/goals"

	"github.com/coocood/freecache"
	log "github.com/sirupsen/logrus"
)

type catalogSource interface {
	FindChallenges(ctx context.Context, goalType goals.GoalType) ([]CatalogChallenge, error)
}

// CachedCatalog keeps catalog reads in memory for a short while. The catalog only changes
// through administration, so a stale read lasts at most ttlSeconds.
type CachedCatalog struct {
	source     catalogSource
	cache      *freecache.Cache
	ttlSeconds int
}

func NewCachedCatalog(source catalogSource, sizeMB, ttlSeconds int) *CachedCatalog {
	megabyte := 1024 * 1024
	return &CachedCatalog{
		source:     source,
		cache:      freecache.NewCache(sizeMB * megabyte),
		ttlSeconds: ttlSeconds,
	}
}

func (c *CachedCatalog) FindChallenges(ctx context.Context, goalType goals.GoalType) ([]CatalogChallenge, error) {
	cacheKey := []byte(fmt.Sprintf("catalog::%s", goalType))
	if cached, err := c.cache.Get(cacheKey); err == nil {
		var list []CatalogChallenge
		if err := json.Unmarshal(cached, &list); err == nil {
			log.Tracef("catalog for goal type %s found in cache", goalType)
			return list, nil
		} else {
			log.Errorf("unmarshal cached catalog for goal type %s: %s", goalType, err)
		}
	}

	list, err := c.source.FindChallenges(ctx, goalType)
	if err != nil {
		return nil, err
	}

	// an empty catalog is not cached, so newly added challenges show up right away
	if len(list) == 0 {
		return list, nil
	}

	listJson, err := json.Marshal(list)
	if err != nil {
		log.Errorf("marshal catalog for goal type %s: %s", goalType, err)
		return list, nil
	}
	if err := c.cache.Set(cacheKey, listJson, c.ttlSeconds); err != nil {
		log.Errorf("set catalog cache for goal type %s: %s", goalType, err)
	}

	return list, nil
}

// Invalidate drops the cached catalog of the goal type.
func (c *CachedCatalog) Invalidate(goalType goals.GoalType) {
	c.cache.Del([]byte(fmt.Sprintf("catalog::%s", goalType)))
}
