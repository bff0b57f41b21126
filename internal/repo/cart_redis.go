package repo

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/nupl21/dieta-app/internal/planner"
	"github.com/redis/go-redis/v9"
)

const cartKeyPrefix = "dieta:cart:"

// RedisCartRepository stores carts as JSON values that expire after ttl
// without activity.
type RedisCartRepository struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewRedisCartRepository(rdb *redis.Client, ttl time.Duration) *RedisCartRepository {
	return &RedisCartRepository{rdb: rdb, ttl: ttl}
}

// Load reads the cart and pushes its expiry back by ttl in the same
// command, so a session stays alive while it is being used.
func (r *RedisCartRepository) Load(ctx context.Context, sessionID string) (planner.Cart, error) {
	data, err := r.rdb.GetEx(ctx, cartKeyPrefix+sessionID, r.ttl).Bytes()
	if errors.Is(err, redis.Nil) {
		return planner.Cart{}, ErrSessionNotFound
	}
	if err != nil {
		return planner.Cart{}, fmt.Errorf("%w: loading cart: %v", ErrStoreFailure, err)
	}

	var cart planner.Cart
	if err := json.Unmarshal(data, &cart); err != nil {
		return planner.Cart{}, fmt.Errorf("%w: decoding cart: %v", ErrStoreFailure, err)
	}
	return cart, nil
}

func (r *RedisCartRepository) Save(ctx context.Context, sessionID string, cart planner.Cart) error {
	data, err := json.Marshal(cart)
	if err != nil {
		return fmt.Errorf("%w: encoding cart: %v", ErrStoreFailure, err)
	}
	if err := r.rdb.Set(ctx, cartKeyPrefix+sessionID, data, r.ttl).Err(); err != nil {
		return fmt.Errorf("%w: saving cart: %v", ErrStoreFailure, err)
	}
	return nil
}
