package redis

import (
	"context"
	"encoding/json"
	"fmt"

	"insight-srv/internal/analysis/repository"
	"insight-srv/internal/insight"
	pkgRedis "insight-srv/pkg/redis"
)

// Every language variant of a dashboard lives in one hash so invalidation is a single DEL.
func dashboardKey(analysisID string) string {
	return fmt.Sprintf("dashboard:%s", analysisID)
}

func (r *implCacheRepository) GetDashboard(ctx context.Context, analysisID, lang string) (*insight.Dashboard, error) {
	data, err := r.redis.GetClient().HGet(ctx, dashboardKey(analysisID), lang).Bytes()
	if pkgRedis.IsNil(err) {
		return nil, repository.ErrCacheMiss
	}
	if err != nil {
		r.l.Errorf(ctx, "analysis.repository.redis.GetDashboard: Failed to read cache: %v", err)
		return nil, err
	}

	var d insight.Dashboard
	if err := json.Unmarshal(data, &d); err != nil {
		r.l.Warnf(ctx, "analysis.repository.redis.GetDashboard: Dropping unreadable entry for %s: %v", analysisID, err)
		_ = r.InvalidateDashboard(ctx, analysisID)
		return nil, repository.ErrCacheMiss
	}
	return &d, nil
}

func (r *implCacheRepository) SaveDashboard(ctx context.Context, analysisID, lang string, d insight.Dashboard) error {
	data, err := json.Marshal(d)
	if err != nil {
		return err
	}

	key := dashboardKey(analysisID)
	pipe := r.redis.GetClient().TxPipeline()
	pipe.HSet(ctx, key, lang, data)
	pipe.Expire(ctx, key, r.ttl)
	if _, err := pipe.Exec(ctx); err != nil {
		r.l.Errorf(ctx, "analysis.repository.redis.SaveDashboard: Failed to save to cache: %v", err)
		return err
	}
	return nil
}

func (r *implCacheRepository) InvalidateDashboard(ctx context.Context, analysisID string) error {
	if err := r.redis.Delete(ctx, dashboardKey(analysisID)); err != nil {
		r.l.Errorf(ctx, "analysis.repository.redis.InvalidateDashboard: Failed to delete cache: %v", err)
		return err
	}
	return nil
}
