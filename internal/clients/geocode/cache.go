package geocode

import (
	"context"
	"encoding/json"
	"log"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"turisflow/internal/observability"
)

const cacheTTL = 7 * 24 * time.Hour

// CachedGeocoder fronts another Geocoder with Redis. Cache trouble is never
// fatal: a miss, a down Redis and a decode error all fall through to the
// upstream lookup.
type CachedGeocoder struct {
	Next Geocoder
	RDB  *redis.Client
}

func NewCachedGeocoder(next Geocoder, rdb *redis.Client) *CachedGeocoder {
	return &CachedGeocoder{Next: next, RDB: rdb}
}

func (c *CachedGeocoder) Search(ctx context.Context, query string) ([]Match, error) {
	key := cacheKey(query)

	if c.RDB != nil {
		if payload, err := c.RDB.Get(ctx, key).Result(); err == nil {
			var cached []Match
			if err := json.Unmarshal([]byte(payload), &cached); err == nil {
				observability.GeocodeCacheHits.Inc()
				return cached, nil
			}
		}
	}

	observability.GeocodeLookups.Inc()
	matches, err := c.Next.Search(ctx, query)
	if err != nil {
		return nil, err
	}

	if c.RDB != nil {
		if payload, err := json.Marshal(matches); err == nil {
			if err := c.RDB.Set(ctx, key, payload, cacheTTL).Err(); err != nil {
				log.Printf("geocode cache set failed: %v", err)
			}
		}
	}
	return matches, nil
}

func cacheKey(query string) string {
	return "geocode:" + strings.ToLower(strings.Join(strings.Fields(query), " "))
}
