package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// Marks live as long as a bearer token does; MongoDB stays authoritative, so
// an expired or evicted mark only costs one extra store lookup.
const dedupTTL = time.Hour

// OrderDedup is the advisory duplicate-order marker.
// Key format: order:dedup:<email>:<partsName>
type OrderDedup struct {
	client *redis.Client
}

// NewOrderDedup creates an OrderDedup wrapping the given Redis client.
func NewOrderDedup(client *redis.Client) *OrderDedup {
	return &OrderDedup{client: client}
}

// IsDuplicate reports whether an order for this (partsName, email) pair has
// recently been accepted.
func (d *OrderDedup) IsDuplicate(ctx context.Context, partsName, email string) (bool, error) {
	n, err := d.client.Exists(ctx, d.key(partsName, email)).Result()
	if err != nil {
		return false, fmt.Errorf("dedup check: %w", err)
	}
	return n > 0, nil
}

// Mark records an accepted order (expires after dedupTTL).
func (d *OrderDedup) Mark(ctx context.Context, partsName, email string) error {
	return d.client.Set(ctx, d.key(partsName, email), "1", dedupTTL).Err()
}

func (d *OrderDedup) key(partsName, email string) string {
	return fmt.Sprintf("order:dedup:%s:%s", email, partsName)
}
