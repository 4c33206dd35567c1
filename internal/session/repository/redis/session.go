package redis

import (
	"context"
	"encoding/json"
	"fmt"

	"insight-srv/internal/session"
	"insight-srv/internal/session/repository"
	pkgRedis "insight-srv/pkg/redis"
)

func sessionKey(userID string) string {
	return fmt.Sprintf("session:%s", userID)
}

func (r *implCacheRepository) GetSnapshot(ctx context.Context, userID string) (*session.Snapshot, error) {
	data, err := r.redis.Get(ctx, sessionKey(userID))
	if pkgRedis.IsNil(err) {
		return nil, repository.ErrCacheMiss
	}
	if err != nil {
		r.l.Errorf(ctx, "session.repository.redis.GetSnapshot: Failed to read cache: %v", err)
		return nil, err
	}

	var s session.Snapshot
	if err := json.Unmarshal([]byte(data), &s); err != nil {
		r.l.Warnf(ctx, "session.repository.redis.GetSnapshot: Dropping unreadable entry for %s: %v", userID, err)
		_ = r.DeleteSnapshot(ctx, userID)
		return nil, repository.ErrCacheMiss
	}
	return &s, nil
}

func (r *implCacheRepository) SaveSnapshot(ctx context.Context, userID string, s session.Snapshot) error {
	data, err := json.Marshal(s)
	if err != nil {
		return err
	}
	if err := r.redis.Set(ctx, sessionKey(userID), data, r.ttl); err != nil {
		r.l.Errorf(ctx, "session.repository.redis.SaveSnapshot: Failed to save to cache: %v", err)
		return err
	}
	return nil
}

func (r *implCacheRepository) DeleteSnapshot(ctx context.Context, userID string) error {
	if err := r.redis.Delete(ctx, sessionKey(userID)); err != nil {
		r.l.Errorf(ctx, "session.repository.redis.DeleteSnapshot: Failed to delete cache: %v", err)
		return err
	}
	return nil
}
