package infrastructure

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"contact-service/internal/domain/entities"
	"contact-service/internal/domain/repositories"
	"contact-service/internal/shared"
)

const userKeyPrefix = "user:"

// RedisUserCache stores JSON snapshots of users under user:<email> keys.
// JSON keeps the cached values inspectable from any Redis client.
type RedisUserCache struct {
	client *redis.Client
}

func NewRedisUserCache(client *redis.Client) repositories.UserCache {
	return &RedisUserCache{client: client}
}

func (c *RedisUserCache) Get(ctx context.Context, email string) (*entities.User, error) {
	data, err := c.client.Get(ctx, userKeyPrefix+email).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("%w: user cache get: %v", shared.ErrDependency, err)
	}

	var user entities.User
	if err := json.Unmarshal([]byte(data), &user); err != nil {
		return nil, fmt.Errorf("%w: user cache decode: %v", shared.ErrDependency, err)
	}

	return &user, nil
}

func (c *RedisUserCache) Set(ctx context.Context, email string, user *entities.User, ttl time.Duration) error {
	data, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("%w: user cache encode: %v", shared.ErrDependency, err)
	}
	if err := c.client.Set(ctx, userKeyPrefix+email, data, ttl).Err(); err != nil {
		return fmt.Errorf("%w: user cache set: %v", shared.ErrDependency, err)
	}
	return nil
}

func (c *RedisUserCache) Invalidate(ctx context.Context, email string) error {
	if err := c.client.Del(ctx, userKeyPrefix+email).Err(); err != nil {
		return fmt.Errorf("%w: user cache invalidate: %v", shared.ErrDependency, err)
	}
	return nil
}
