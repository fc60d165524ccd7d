package commands

import (
	"context"
	"errors"

	"lensdispatch/internal/core/domain/model/deliverygroup"
	"lensdispatch/internal/core/domain/model/kernel"
	"lensdispatch/internal/core/ports"
	"lensdispatch/internal/pkg/errs"
)

// groupResolveAttempts bounds the find-or-create loop when two commands race
// to register the same address.
const groupResolveAttempts = 3

// DeliveryGroupResolver maps a raw address to its delivery group, creating
// the group on first sight of the address. Resolution is find-or-create:
// concurrent creations for the same fingerprint lose the unique-index race
// and re-read the winning row.
//
// The cache is optional. It only ever holds fingerprint to group id
// mappings, which are immutable, so a stale or missing cache is always safe.
// Only ids read back from the repository are cached; a freshly created group
// enters the cache on its next resolution, after its transaction committed.
type DeliveryGroupResolver struct {
	cache ports.DeliveryGroupCache
}

// NewDeliveryGroupResolver creates a resolver with an optional cache.
// Pass nil to resolve against the repository alone.
func NewDeliveryGroupResolver(cache ports.DeliveryGroupCache) DeliveryGroupResolver {
	return DeliveryGroupResolver{cache: cache}
}

// Resolve returns the delivery group id for the given address, creating the
// group if the address has never been seen. Gives up with the underlying
// ConflictError if the creation race cannot be resolved within a bounded
// number of attempts.
func (r DeliveryGroupResolver) Resolve(
	ctx context.Context,
	repo ports.DeliveryGroupRepository,
	fullAddress, city, postalCode string,
) (kernel.UUID, error) {
	fingerprint := kernel.NewNormalizedAddress(fullAddress, postalCode).Fingerprint()

	if r.cache != nil {
		if id, ok, err := r.cache.GetGroupID(ctx, fingerprint); err == nil && ok {
			return id, nil
		}
	}

	var lastErr error
	for attempt := 0; attempt < groupResolveAttempts; attempt++ {
		group, err := repo.GetByFingerprint(ctx, fingerprint)
		if err == nil {
			r.cacheGroup(ctx, fingerprint, group.ID())
			return group.ID(), nil
		}

		var notFound errs.ObjectNotFoundError
		if !errors.As(err, &notFound) {
			return kernel.UUID{}, err
		}

		group, err = deliverygroup.NewDeliveryGroup(kernel.NewUUID(), fullAddress, city, postalCode)
		if err != nil {
			return kernel.UUID{}, err
		}

		err = repo.Add(ctx, group)
		if err == nil {
			// Not cached here: the surrounding transaction may still roll
			// back, and the cache must never hold an id that was not
			// committed.
			return group.ID(), nil
		}

		var conflict errs.ConflictError
		if !errors.As(err, &conflict) {
			return kernel.UUID{}, err
		}

		// Another transaction created the group first; re-read it.
		lastErr = err
	}

	return kernel.UUID{}, lastErr
}

// cacheGroup writes the mapping best-effort; cache failures are ignored
// because the repository remains authoritative.
func (r DeliveryGroupResolver) cacheGroup(ctx context.Context, fingerprint string, id kernel.UUID) {
	if r.cache == nil {
		return
	}
	_ = r.cache.PutGroupID(ctx, fingerprint, id)
}
