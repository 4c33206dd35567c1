package redis

import (
	"time"

	"insight-srv/internal/session/repository"
	"insight-srv/pkg/log"
	pkgRedis "insight-srv/pkg/redis"
)

const defaultSessionTTL = time.Minute

type implCacheRepository struct {
	redis pkgRedis.IRedis
	l     log.Logger
	ttl   time.Duration
}

func New(redis pkgRedis.IRedis, l log.Logger, ttl time.Duration) repository.CacheRepository {
	if ttl <= 0 {
		ttl = defaultSessionTTL
	}
	return &implCacheRepository{
		redis: redis,
		l:     l,
		ttl:   ttl,
	}
}
