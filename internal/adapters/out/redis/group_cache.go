// Package redis provides the delivery-group fingerprint cache.
// A fingerprint maps to at most one group forever, so entries are written
// without a TTL and never invalidated.
package redis

import (
	"context"
	"errors"
	"fmt"

	"lensdispatch/internal/core/domain/model/kernel"

	"github.com/redis/go-redis/v9"
)

const keyPrefix = "lensdispatch:group:"

// GroupCache implements the DeliveryGroupCache port on go-redis.
type GroupCache struct {
	client *redis.Client
}

// NewGroupCache creates a fingerprint cache backed by the given client.
func NewGroupCache(client *redis.Client) *GroupCache {
	return &GroupCache{client: client}
}

// GetGroupID looks up the group id cached for a fingerprint.
// A missing key is reported as absent, not as an error.
func (c *GroupCache) GetGroupID(ctx context.Context, fingerprint string) (kernel.UUID, bool, error) {
	data, err := c.client.Get(ctx, keyPrefix+fingerprint).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return kernel.UUID{}, false, nil
		}
		return kernel.UUID{}, false, fmt.Errorf("group cache get: %w", err)
	}

	id, err := kernel.UUIDFromString(data)
	if err != nil {
		// A corrupt entry behaves like a miss; the repository is authoritative.
		return kernel.UUID{}, false, nil
	}

	return id, true, nil
}

// PutGroupID stores the fingerprint to group id mapping without expiry.
func (c *GroupCache) PutGroupID(ctx context.Context, fingerprint string, groupID kernel.UUID) error {
	if err := c.client.Set(ctx, keyPrefix+fingerprint, groupID.String(), 0).Err(); err != nil {
		return fmt.Errorf("group cache put: %w", err)
	}
	return nil
}
