package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/petrkoval/notes-api/internal/logger"
	"github.com/petrkoval/notes-api/internal/models"
)

// UserCacheRepository keeps the public projection of users in Redis so that
// repeated profile reads skip the database. Every mutating user operation
// must invalidate the entry.
type UserCacheRepository struct {
	client *redis.Client
	exp    time.Duration // expiration for cached users
}

// NewUserCacheRepository creates a new cache repository with the given TTL.
func NewUserCacheRepository(client *redis.Client, expiration time.Duration) *UserCacheRepository {
	return &UserCacheRepository{
		client: client,
		exp:    expiration,
	}
}

func userCacheKey(id int64) string {
	return fmt.Sprintf("user:%d", id)
}

// GetByID fetches a cached user. A cache miss returns (nil, nil).
func (r *UserCacheRepository) GetByID(ctx context.Context, id int64) (*models.PublicUser, error) {
	key := userCacheKey(id)

	val, err := r.client.Get(ctx, key).Result()
	if err != nil {
		logger.Log.Infow("cache read",
			"key", key,
			"error", err,
		)
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, err
	}

	var user models.PublicUser
	if err := json.Unmarshal([]byte(val), &user); err != nil {
		logger.Log.Errorw("corrupt cache entry", "key", key, "error", err)
		return nil, err
	}

	logger.Log.Infow("cache read",
		"key", key,
		"result", user.ID,
		"error", nil,
	)

	return &user, nil
}

// SetByID caches a user's public projection with expiration.
func (r *UserCacheRepository) SetByID(ctx context.Context, user *models.PublicUser) error {
	key := userCacheKey(user.ID)

	data, err := json.Marshal(user)
	if err != nil {
		return err
	}

	err = r.client.Set(ctx, key, data, r.exp).Err()

	logger.Log.Infow("cache write",
		"key", key,
		"error", err,
	)

	return err
}

// Invalidate drops the cached entry for the user, if any.
func (r *UserCacheRepository) Invalidate(ctx context.Context, id int64) error {
	key := userCacheKey(id)
	err := r.client.Del(ctx, key).Err()

	logger.Log.Infow("cache invalidate",
		"key", key,
		"error", err,
	)

	return err
}
