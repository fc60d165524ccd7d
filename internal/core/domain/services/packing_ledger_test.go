package services_test

import (
	"testing"
	"time"

	"lensdispatch/internal/core/domain/model/box"
	"lensdispatch/internal/core/domain/model/kernel"
	"lensdispatch/internal/core/domain/model/order"
	"lensdispatch/internal/core/domain/services"
	"lensdispatch/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	dispatchDate = time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC)
	orderDate    = time.Date(2026, 3, 12, 0, 0, 0, 0, time.UTC)
)

func newOrder(t *testing.T) *order.Order {
	t.Helper()

	o, err := order.NewOrder(kernel.NewUUID(), "CUST-1", "ST-001", orderDate)
	require.NoError(t, err)
	return o
}

func newBox(t *testing.T, groupID kernel.UUID) *box.Box {
	t.Helper()

	b, err := box.NewBox(kernel.NewUUID(), dispatchDate, groupID)
	require.NoError(t, err)
	return b
}

func TestPackingLedger_AssignOrderToBox(t *testing.T) {
	ledger := services.NewPackingLedger()

	t.Run("first_assignment_starts_packing", func(t *testing.T) {
		groupID := kernel.NewUUID()
		b := newBox(t, groupID)
		o := newOrder(t)

		require.NoError(t, ledger.AssignOrderToBox(o, b, groupID))

		assert.Equal(t, box.Packing, b.Status())
		require.NotNil(t, o.Box())
		assert.True(t, o.Box().IsEqual(b.ID()))
	})

	t.Run("second_assignment_keeps_box_packing", func(t *testing.T) {
		groupID := kernel.NewUUID()
		b := newBox(t, groupID)
		require.NoError(t, ledger.AssignOrderToBox(newOrder(t), b, groupID))

		require.NoError(t, ledger.AssignOrderToBox(newOrder(t), b, groupID))

		assert.Equal(t, box.Packing, b.Status())
	})

	t.Run("rejects_cross_group_assignment", func(t *testing.T) {
		b := newBox(t, kernel.NewUUID())
		o := newOrder(t)

		err := ledger.AssignOrderToBox(o, b, kernel.NewUUID())

		require.ErrorIs(t, err, errs.ErrIntegrityViolation)
		assert.Nil(t, o.Box())
		assert.Equal(t, box.Pending, b.Status())
	})

	t.Run("rejects_packed_box", func(t *testing.T) {
		groupID := kernel.NewUUID()
		b, err := box.RestoreBox(kernel.NewUUID(), dispatchDate, groupID, box.Packed)
		require.NoError(t, err)

		err = ledger.AssignOrderToBox(newOrder(t), b, groupID)

		require.ErrorIs(t, err, errs.ErrIllegalTransition)
	})
}

func TestPackingLedger_RefreshBoxStatus(t *testing.T) {
	ledger := services.NewPackingLedger()

	packInBox := func(t *testing.T, b *box.Box, groupID kernel.UUID, n int) []*order.Order {
		t.Helper()

		orders := make([]*order.Order, 0, n)
		for range n {
			o := newOrder(t)
			require.NoError(t, ledger.AssignOrderToBox(o, b, groupID))
			orders = append(orders, o)
		}
		return orders
	}

	t.Run("closes_box_when_all_orders_packed", func(t *testing.T) {
		groupID := kernel.NewUUID()
		b := newBox(t, groupID)
		orders := packInBox(t, b, groupID, 2)

		require.NoError(t, orders[0].MarkPacked())
		closed, err := ledger.RefreshBoxStatus(b, orders)
		require.NoError(t, err)
		assert.False(t, closed, "box must stay open while an order is pending")

		require.NoError(t, orders[1].MarkPacked())
		closed, err = ledger.RefreshBoxStatus(b, orders)
		require.NoError(t, err)
		assert.True(t, closed)
		assert.Equal(t, box.Packed, b.Status())
	})

	t.Run("returned_orders_leave_the_accounting", func(t *testing.T) {
		groupID := kernel.NewUUID()
		b := newBox(t, groupID)
		orders := packInBox(t, b, groupID, 2)

		require.NoError(t, orders[0].MarkPacked())
		require.NoError(t, orders[1].Return())

		closed, err := ledger.RefreshBoxStatus(b, orders)

		require.NoError(t, err)
		assert.True(t, closed, "a returned order must not block completion")
	})

	t.Run("all_orders_returned_keeps_box_open", func(t *testing.T) {
		groupID := kernel.NewUUID()
		b := newBox(t, groupID)
		orders := packInBox(t, b, groupID, 2)

		require.NoError(t, orders[0].Return())
		require.NoError(t, orders[1].Return())

		closed, err := ledger.RefreshBoxStatus(b, orders)

		require.NoError(t, err)
		assert.False(t, closed)
		assert.Equal(t, box.Packing, b.Status())
	})

	t.Run("packed_box_stays_packed_after_late_return", func(t *testing.T) {
		groupID := kernel.NewUUID()
		b := newBox(t, groupID)
		orders := packInBox(t, b, groupID, 1)

		require.NoError(t, orders[0].MarkPacked())
		closed, err := ledger.RefreshBoxStatus(b, orders)
		require.NoError(t, err)
		require.True(t, closed)

		require.NoError(t, orders[0].Return())
		closed, err = ledger.RefreshBoxStatus(b, orders)

		require.NoError(t, err)
		assert.False(t, closed)
		assert.Equal(t, box.Packed, b.Status())
	})

	t.Run("rejects_foreign_orders", func(t *testing.T) {
		groupID := kernel.NewUUID()
		b := newBox(t, groupID)
		stray := newOrder(t)

		_, err := ledger.RefreshBoxStatus(b, []*order.Order{stray})

		require.ErrorIs(t, err, errs.ErrIntegrityViolation)
	})
}
