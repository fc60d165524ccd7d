package ports

import (
	"context"

	"lensdispatch/internal/core/domain/model/kernel"
)

// DeliveryGroupCache is a read-through cache from normalized address
// fingerprint to delivery group id. Fingerprints map to at most one group
// forever, so cached entries never need invalidation. Implementations must
// treat the cache as advisory: a miss or error falls through to the
// repository.
type DeliveryGroupCache interface {
	// GetGroupID looks up the group id for a fingerprint.
	// The second return value reports whether the entry was present.
	GetGroupID(ctx context.Context, fingerprint string) (kernel.UUID, bool, error)

	// PutGroupID stores the mapping for a fingerprint.
	PutGroupID(ctx context.Context, fingerprint string, groupID kernel.UUID) error
}
