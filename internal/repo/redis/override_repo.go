package redis

import (
	"context"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/jayeshnarola-afk/pet-meeting-admin/internal/moderation"
)

const (
	imageOverridePrefix = "img_overrides:"
	photoOverridePrefix = "photo_overrides:"

	overrideBlockValue   = "block"
	overrideUnblockValue = "unblock"
)

// OverrideRepo persists per-session moderation overrides. Each session keeps
// two hashes, one for pet images keyed petID::url and one for profile photos
// keyed by user id. Overrides expire with the session.
type OverrideRepo struct {
	client *goredis.Client
	ttl    time.Duration
}

func NewOverrideRepo(client *goredis.Client, ttl time.Duration) *OverrideRepo {
	return &OverrideRepo{client: client, ttl: ttl}
}

func (r *OverrideRepo) SetImageOverride(ctx context.Context, sid, key string, o moderation.Override) error {
	return r.set(ctx, imageOverridePrefix+sid, key, o)
}

func (r *OverrideRepo) ImageOverrides(ctx context.Context, sid string) (map[string]moderation.Override, error) {
	return r.all(ctx, imageOverridePrefix+sid)
}

func (r *OverrideRepo) SetPhotoOverride(ctx context.Context, sid, userID string, o moderation.Override) error {
	return r.set(ctx, photoOverridePrefix+sid, userID, o)
}

func (r *OverrideRepo) PhotoOverrides(ctx context.Context, sid string) (map[string]moderation.Override, error) {
	return r.all(ctx, photoOverridePrefix+sid)
}

func (r *OverrideRepo) set(ctx context.Context, hashKey, field string, o moderation.Override) error {
	if r.client == nil {
		return fmt.Errorf("redis client is nil")
	}

	if o == moderation.OverrideNone {
		if err := r.client.HDel(ctx, hashKey, field).Err(); err != nil {
			return fmt.Errorf("clear override: %w", err)
		}
		return nil
	}

	pipe := r.client.TxPipeline()
	pipe.HSet(ctx, hashKey, field, encodeOverride(o))
	pipe.Expire(ctx, hashKey, r.ttl)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("store override: %w", err)
	}
	return nil
}

func (r *OverrideRepo) all(ctx context.Context, hashKey string) (map[string]moderation.Override, error) {
	if r.client == nil {
		return nil, fmt.Errorf("redis client is nil")
	}

	values, err := r.client.HGetAll(ctx, hashKey).Result()
	if err != nil {
		return nil, fmt.Errorf("load overrides: %w", err)
	}

	overrides := make(map[string]moderation.Override, len(values))
	for field, value := range values {
		if o, ok := decodeOverride(value); ok {
			overrides[field] = o
		}
	}
	return overrides, nil
}

func encodeOverride(o moderation.Override) string {
	if o == moderation.OverrideUnblock {
		return overrideUnblockValue
	}
	return overrideBlockValue
}

func decodeOverride(value string) (moderation.Override, bool) {
	switch value {
	case overrideBlockValue:
		return moderation.OverrideBlock, true
	case overrideUnblockValue:
		return moderation.OverrideUnblock, true
	default:
		return moderation.OverrideNone, false
	}
}
