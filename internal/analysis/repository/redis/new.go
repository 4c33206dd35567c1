package redis

import (
	"time"

	"insight-srv/internal/analysis/repository"
	"insight-srv/pkg/log"
	pkgRedis "insight-srv/pkg/redis"
)

const defaultDashboardTTL = 24 * time.Hour

type implCacheRepository struct {
	redis pkgRedis.IRedis
	l     log.Logger
	ttl   time.Duration
}

// New - Factory. A non-positive ttl falls back to a day.
func New(redis pkgRedis.IRedis, l log.Logger, ttl time.Duration) repository.CacheRepository {
	if ttl <= 0 {
		ttl = defaultDashboardTTL
	}
	return &implCacheRepository{
		redis: redis,
		l:     l,
		ttl:   ttl,
	}
}
