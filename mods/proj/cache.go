package proj

import (
	"time"

	"github.com/jellydator/ttlcache/v3"
)

// parsed is the definition dependent part of a parsed projection.
type parsed struct {
	kind Kind
	unit string
	be   backend
}

const (
	parseCacheCapacity = 256
	parseCacheTTL      = 10 * time.Minute
)

// parseCache keeps recently parsed definition strings, so that registering
// the same definition under several names parses it once.
var parseCache = ttlcache.New(
	ttlcache.WithCapacity[string, *parsed](parseCacheCapacity),
	ttlcache.WithTTL[string, *parsed](parseCacheTTL),
)

func cachedParse(def string) *parsed {
	item := parseCache.Get(def)
	if item == nil {
		return nil
	}
	return item.Value()
}

func storeParse(def string, p *parsed) {
	parseCache.Set(def, p, ttlcache.DefaultTTL)
}

// ParseCacheLen returns the number of cached definitions.
func ParseCacheLen() int {
	return parseCache.Len()
}
