package session

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"

	"go-storefront/internal/models"
)

const cartKeyPrefix = "cart:"

// RedisRegistry stores carts as JSON in Redis so sessions survive restarts
// and can be shared across instances. Carts expire with the session TTL.
type RedisRegistry struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisRegistry connects to the Redis at addr and verifies the connection.
func NewRedisRegistry(addr string, ttl time.Duration) (*RedisRegistry, error) {
	client := redis.NewClient(&redis.Options{Addr: addr})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("connect to redis at %s: %w", addr, err)
	}

	return &RedisRegistry{client: client, ttl: ttl}, nil
}

var _ CartRegistry = (*RedisRegistry)(nil)

func (r *RedisRegistry) Get(ctx context.Context, sessionID string) (*models.Cart, error) {
	data, err := r.client.Get(ctx, cartKeyPrefix+sessionID).Result()
	if err == redis.Nil {
		return models.NewCart(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("load cart for session %s: %w", sessionID, err)
	}

	var lines []models.CartLine
	if err := json.Unmarshal([]byte(data), &lines); err != nil {
		return nil, fmt.Errorf("decode cart for session %s: %w", sessionID, err)
	}
	return models.RestoreCart(lines), nil
}

func (r *RedisRegistry) Save(ctx context.Context, sessionID string, cart *models.Cart) error {
	data, err := json.Marshal(cart.Lines())
	if err != nil {
		return fmt.Errorf("encode cart for session %s: %w", sessionID, err)
	}
	if err := r.client.Set(ctx, cartKeyPrefix+sessionID, data, r.ttl).Err(); err != nil {
		return fmt.Errorf("save cart for session %s: %w", sessionID, err)
	}
	return nil
}

// RemoveProduct scans every cart key and rewrites carts that hold the
// product. Carts shrink, they never gain lines here, so a concurrent add can
// still race this sweep; that matches the catalog's own weak guarantees.
func (r *RedisRegistry) RemoveProduct(ctx context.Context, productID int) error {
	iter := r.client.Scan(ctx, 0, cartKeyPrefix+"*", 0).Iterator()
	for iter.Next(ctx) {
		key := iter.Val()
		sessionID := key[len(cartKeyPrefix):]

		cart, err := r.Get(ctx, sessionID)
		if err != nil {
			return err
		}
		before := cart.Len()
		cart.RemoveLine(models.Product{ID: productID})
		if cart.Len() == before {
			continue
		}
		if err := r.Save(ctx, sessionID, cart); err != nil {
			return err
		}
	}
	return iter.Err()
}

// Close releases the Redis connection.
func (r *RedisRegistry) Close() error {
	return r.client.Close()
}
