package commands_test

import (
	"testing"

	"lensdispatch/internal/core/application/usecases/commands"
	"lensdispatch/internal/core/domain/model/deliverygroup"
	"lensdispatch/internal/core/domain/model/kernel"
	"lensdispatch/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const (
	resolverAddress = "12 MG Road, Indiranagar"
	resolverCity    = "Bengaluru"
	resolverPin     = "560038"
)

func resolverFingerprint() string {
	return kernel.NewNormalizedAddress(resolverAddress, resolverPin).Fingerprint()
}

func existingGroup(t *testing.T) *deliverygroup.DeliveryGroup {
	t.Helper()

	group, err := deliverygroup.NewDeliveryGroup(kernel.NewUUID(), resolverAddress, resolverCity, resolverPin)
	require.NoError(t, err)
	return group
}

func TestDeliveryGroupResolver_Resolve_ExistingGroup(t *testing.T) {
	// Arrange
	ctx := t.Context()
	group := existingGroup(t)

	mockRepo := new(MockDeliveryGroupRepository)
	mockRepo.On("GetByFingerprint", ctx, resolverFingerprint()).Return(group, nil).Once()

	resolver := commands.NewDeliveryGroupResolver(nil)

	// Act
	id, err := resolver.Resolve(ctx, mockRepo, resolverAddress, resolverCity, resolverPin)

	// Assert
	require.NoError(t, err)
	assert.True(t, id.IsEqual(group.ID()))
	mockRepo.AssertExpectations(t)
}

func TestDeliveryGroupResolver_Resolve_CreatesGroupOnFirstSight(t *testing.T) {
	// Arrange
	ctx := t.Context()
	notFound := errs.NewObjectNotFoundError("delivery_group", resolverFingerprint())

	mockRepo := new(MockDeliveryGroupRepository)
	mock.InOrder(
		mockRepo.On("GetByFingerprint", ctx, resolverFingerprint()).Return(nil, notFound).Once(),
		mockRepo.On("Add", ctx, mock.AnythingOfType("*deliverygroup.DeliveryGroup")).Return(nil).Once(),
	)

	resolver := commands.NewDeliveryGroupResolver(nil)

	// Act
	id, err := resolver.Resolve(ctx, mockRepo, resolverAddress, resolverCity, resolverPin)

	// Assert
	require.NoError(t, err)
	assert.NoError(t, id.Validate())
	mockRepo.AssertExpectations(t)
}

func TestDeliveryGroupResolver_Resolve_LosesRaceThenReReads(t *testing.T) {
	// Arrange
	ctx := t.Context()
	group := existingGroup(t)
	notFound := errs.NewObjectNotFoundError("delivery_group", resolverFingerprint())
	conflict := errs.NewConflictError("delivery_group", resolverFingerprint())

	mockRepo := new(MockDeliveryGroupRepository)
	mock.InOrder(
		mockRepo.On("GetByFingerprint", ctx, resolverFingerprint()).Return(nil, notFound).Once(),
		mockRepo.On("Add", ctx, mock.AnythingOfType("*deliverygroup.DeliveryGroup")).Return(conflict).Once(),
		mockRepo.On("GetByFingerprint", ctx, resolverFingerprint()).Return(group, nil).Once(),
	)

	resolver := commands.NewDeliveryGroupResolver(nil)

	// Act
	id, err := resolver.Resolve(ctx, mockRepo, resolverAddress, resolverCity, resolverPin)

	// Assert
	require.NoError(t, err)
	assert.True(t, id.IsEqual(group.ID()))
	mockRepo.AssertExpectations(t)
}

func TestDeliveryGroupResolver_Resolve_GivesUpAfterRepeatedConflicts(t *testing.T) {
	// Arrange
	ctx := t.Context()
	notFound := errs.NewObjectNotFoundError("delivery_group", resolverFingerprint())
	conflict := errs.NewConflictError("delivery_group", resolverFingerprint())

	mockRepo := new(MockDeliveryGroupRepository)
	mockRepo.On("GetByFingerprint", ctx, resolverFingerprint()).Return(nil, notFound).Times(3)
	mockRepo.On("Add", ctx, mock.AnythingOfType("*deliverygroup.DeliveryGroup")).Return(conflict).Times(3)

	resolver := commands.NewDeliveryGroupResolver(nil)

	// Act
	_, err := resolver.Resolve(ctx, mockRepo, resolverAddress, resolverCity, resolverPin)

	// Assert
	var conflictErr errs.ConflictError
	require.ErrorAs(t, err, &conflictErr)
	mockRepo.AssertExpectations(t)
}

func TestDeliveryGroupResolver_Resolve_CacheHitSkipsRepository(t *testing.T) {
	// Arrange
	ctx := t.Context()
	groupID := kernel.NewUUID()

	mockRepo := new(MockDeliveryGroupRepository)
	mockCache := new(MockGroupCache)
	mockCache.On("GetGroupID", ctx, resolverFingerprint()).Return(groupID, true, nil).Once()

	resolver := commands.NewDeliveryGroupResolver(mockCache)

	// Act
	id, err := resolver.Resolve(ctx, mockRepo, resolverAddress, resolverCity, resolverPin)

	// Assert
	require.NoError(t, err)
	assert.True(t, id.IsEqual(groupID))
	mockRepo.AssertNotCalled(t, "GetByFingerprint", mock.Anything, mock.Anything)
	mockCache.AssertExpectations(t)
}

func TestDeliveryGroupResolver_Resolve_FreshGroupIsNotCached(t *testing.T) {
	// Arrange
	ctx := t.Context()
	notFound := errs.NewObjectNotFoundError("delivery_group", resolverFingerprint())

	mockRepo := new(MockDeliveryGroupRepository)
	mockCache := new(MockGroupCache)
	mockCache.On("GetGroupID", ctx, resolverFingerprint()).Return(kernel.UUID{}, false, nil).Twice()
	mockRepo.On("GetByFingerprint", ctx, resolverFingerprint()).Return(nil, notFound).Twice()
	mockRepo.On("Add", ctx, mock.AnythingOfType("*deliverygroup.DeliveryGroup")).Return(nil).Twice()

	resolver := commands.NewDeliveryGroupResolver(mockCache)

	// Act: resolve twice. The first creation could still be rolled back by
	// its transaction, so the second resolution must go back to the
	// repository instead of trusting a cached id.
	first, err := resolver.Resolve(ctx, mockRepo, resolverAddress, resolverCity, resolverPin)
	require.NoError(t, err)
	require.NoError(t, first.Validate())

	second, err := resolver.Resolve(ctx, mockRepo, resolverAddress, resolverCity, resolverPin)

	// Assert
	require.NoError(t, err)
	require.NoError(t, second.Validate())
	mockCache.AssertNotCalled(t, "PutGroupID", mock.Anything, mock.Anything, mock.Anything)
	mockRepo.AssertExpectations(t)
	mockCache.AssertExpectations(t)
}

func TestDeliveryGroupResolver_Resolve_CacheMissFallsThrough(t *testing.T) {
	// Arrange
	ctx := t.Context()
	group := existingGroup(t)

	mockRepo := new(MockDeliveryGroupRepository)
	mockCache := new(MockGroupCache)
	mock.InOrder(
		mockCache.On("GetGroupID", ctx, resolverFingerprint()).Return(kernel.UUID{}, false, nil).Once(),
		mockRepo.On("GetByFingerprint", ctx, resolverFingerprint()).Return(group, nil).Once(),
		mockCache.On("PutGroupID", ctx, resolverFingerprint(), group.ID()).Return(nil).Once(),
	)

	resolver := commands.NewDeliveryGroupResolver(mockCache)

	// Act
	id, err := resolver.Resolve(ctx, mockRepo, resolverAddress, resolverCity, resolverPin)

	// Assert
	require.NoError(t, err)
	assert.True(t, id.IsEqual(group.ID()))
	mockCache.AssertExpectations(t)
	mockRepo.AssertExpectations(t)
}
