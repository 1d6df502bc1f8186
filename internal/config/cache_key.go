package config

import (
	"fmt"

	"github.com/google/uuid"
)

type CacheKeyStruct struct{}

func NewCacheKeyStruct() *CacheKeyStruct {
	return &CacheKeyStruct{}
}

// StatsVersionKey returns the cache key for a user's grade-stats version
// counter. The counter is bumped on every grade mutation so stale cached
// stats fall out of scope without scanning for keys.
func (r *CacheKeyStruct) StatsVersionKey(userID uuid.UUID) string {
	return fmt.Sprintf("user:%s:stats_version", userID)
}

// StatsKey returns the cache key for a computed grade-stats payload,
// scoped to the filters and the user's current stats version.
func (r *CacheKeyStruct) StatsKey(userID uuid.UUID, schoolYear string, semester int, version int64) string {
	return fmt.Sprintf("user:%s:stats:%s:%d:v%d", userID, schoolYear, semester, version)
}

var CacheKey = NewCacheKeyStruct()
