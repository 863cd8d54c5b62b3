package order_test

import (
	"testing"

	"titipin/internal/core/domain/model/kernel"
	"titipin/internal/core/domain/model/order"
	"titipin/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustAddress(t *testing.T, raw string) kernel.Address {
	t.Helper()
	addr, err := kernel.NewAddress(raw)
	require.NoError(t, err)
	return addr
}

func newWaitingOrder(t *testing.T) *order.Order {
	t.Helper()
	o, err := order.NewOrder(
		kernel.NewUUID(), kernel.NewUUID(),
		"Nasi Goreng x2", 2, mustAddress(t, "Jl. A No.1"),
	)
	require.NoError(t, err)
	return o
}

func TestNewOrder(t *testing.T) {
	t.Run("creates_order_waiting_for_offers", func(t *testing.T) {
		id := kernel.NewUUID()
		requester := kernel.NewUUID()

		o, err := order.NewOrder(id, requester, "Nasi Goreng x2", 2, mustAddress(t, "Jl. A No.1"))

		require.NoError(t, err)
		require.NoError(t, o.Validate())
		assert.True(t, o.ID().IsEqual(id))
		assert.True(t, o.Requester().IsEqual(requester))
		assert.Equal(t, order.WaitingForOffers, o.Status())
		assert.Nil(t, o.Deliverer())
		assert.Nil(t, o.FinalFee())
		assert.Equal(t, "Nasi Goreng x2", o.ItemDescription())
		assert.Equal(t, 2, o.Quantity())
	})

	t.Run("empty_item_description_rejected", func(t *testing.T) {
		_, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), "", 1, mustAddress(t, "Jl. A"))
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("non_positive_quantity_rejected", func(t *testing.T) {
		for _, qty := range []int{0, -1} {
			_, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), "Teh Botol", qty, mustAddress(t, "Jl. A"))
			require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		}
	})

	t.Run("invalid_ids_rejected", func(t *testing.T) {
		var zero kernel.UUID
		_, err := order.NewOrder(zero, kernel.NewUUID(), "Teh Botol", 1, mustAddress(t, "Jl. A"))
		require.Error(t, err)

		_, err = order.NewOrder(kernel.NewUUID(), zero, "Teh Botol", 1, mustAddress(t, "Jl. A"))
		require.Error(t, err)
	})

	t.Run("zero_value_destination_rejected", func(t *testing.T) {
		var addr kernel.Address
		_, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), "Teh Botol", 1, addr)
		require.Error(t, err)
	})
}

func TestOrder_Validate(t *testing.T) {
	t.Run("zero_value_order_is_invalid", func(t *testing.T) {
		var o order.Order
		require.ErrorIs(t, o.Validate(), order.ErrOrderIsNotConstructed)
	})

	t.Run("nil_order_is_invalid", func(t *testing.T) {
		var o *order.Order
		require.ErrorIs(t, o.Validate(), order.ErrOrderIsNotConstructed)
	})
}

func TestOrder_AcceptOffer(t *testing.T) {
	t.Run("binds_deliverer_and_fixes_fee", func(t *testing.T) {
		o := newWaitingOrder(t)
		deliverer := kernel.NewUUID()

		require.NoError(t, o.AcceptOffer(deliverer, 8000))

		assert.Equal(t, order.OfferAccepted, o.Status())
		require.NotNil(t, o.Deliverer())
		assert.True(t, o.Deliverer().IsEqual(deliverer))
		require.NotNil(t, o.FinalFee())
		assert.Equal(t, int64(8000), *o.FinalFee())
		assert.True(t, o.IsAssignedDeliverer(deliverer))
	})

	t.Run("second_acceptance_rejected", func(t *testing.T) {
		o := newWaitingOrder(t)
		require.NoError(t, o.AcceptOffer(kernel.NewUUID(), 8000))

		err := o.AcceptOffer(kernel.NewUUID(), 7000)

		require.Error(t, err)
		assert.Equal(t, int64(8000), *o.FinalFee())
	})

	t.Run("non_positive_fee_rejected", func(t *testing.T) {
		o := newWaitingOrder(t)
		require.ErrorIs(t, o.AcceptOffer(kernel.NewUUID(), 0), errs.ErrValueIsInvalid)
	})

	t.Run("acceptance_on_cancelled_order_rejected", func(t *testing.T) {
		o := newWaitingOrder(t)
		require.NoError(t, o.Cancel())

		require.ErrorIs(t, o.AcceptOffer(kernel.NewUUID(), 8000), errs.ErrInvalidState)
	})
}

func TestOrder_DeliveryProgression(t *testing.T) {
	o := newWaitingOrder(t)
	deliverer := kernel.NewUUID()
	require.NoError(t, o.AcceptOffer(deliverer, 10000))

	require.NoError(t, o.StartDelivery())
	assert.Equal(t, order.OnDelivery, o.Status())

	// Re-applying an already applied transition is rejected, state unchanged.
	require.ErrorIs(t, o.StartDelivery(), errs.ErrInvalidState)
	assert.Equal(t, order.OnDelivery, o.Status())

	require.NoError(t, o.Complete())
	assert.Equal(t, order.Completed, o.Status())
	assert.True(t, o.IsAssignedDeliverer(deliverer))

	require.ErrorIs(t, o.Complete(), errs.ErrInvalidState)
}

func TestOrder_Cancel(t *testing.T) {
	t.Run("cancel_while_waiting", func(t *testing.T) {
		o := newWaitingOrder(t)

		require.NoError(t, o.Cancel())

		assert.Equal(t, order.Cancelled, o.Status())
		assert.Nil(t, o.Deliverer())
	})

	t.Run("cancel_after_acceptance_releases_assignment", func(t *testing.T) {
		o := newWaitingOrder(t)
		require.NoError(t, o.AcceptOffer(kernel.NewUUID(), 9000))

		require.NoError(t, o.Cancel())

		assert.Equal(t, order.Cancelled, o.Status())
		assert.Nil(t, o.Deliverer())
		assert.Nil(t, o.FinalFee())
	})

	t.Run("cancel_during_delivery_rejected", func(t *testing.T) {
		o := newWaitingOrder(t)
		require.NoError(t, o.AcceptOffer(kernel.NewUUID(), 9000))
		require.NoError(t, o.StartDelivery())

		require.ErrorIs(t, o.Cancel(), errs.ErrInvalidState)
	})

	t.Run("cancel_completed_order_rejected", func(t *testing.T) {
		o := newWaitingOrder(t)
		require.NoError(t, o.AcceptOffer(kernel.NewUUID(), 9000))
		require.NoError(t, o.StartDelivery())
		require.NoError(t, o.Complete())

		require.ErrorIs(t, o.Cancel(), errs.ErrInvalidState)
		assert.Equal(t, order.Completed, o.Status())
	})
}

func TestOrder_Participants(t *testing.T) {
	o := newWaitingOrder(t)
	requester := o.Requester()
	deliverer := kernel.NewUUID()
	stranger := kernel.NewUUID()

	assert.True(t, o.HasParticipant(requester))
	assert.False(t, o.HasParticipant(deliverer))
	assert.False(t, o.HasParticipant(stranger))

	require.NoError(t, o.AcceptOffer(deliverer, 5000))

	assert.True(t, o.HasParticipant(deliverer))
	assert.False(t, o.HasParticipant(stranger))
}

func TestRestoreOrder(t *testing.T) {
	id := kernel.NewUUID()
	requester := kernel.NewUUID()
	deliverer := kernel.NewUUID()
	fee := int64(8000)

	t.Run("restores_assigned_order", func(t *testing.T) {
		o, err := order.RestoreOrder(id, requester, "Nasi Goreng x2", 2, mustAddress(t, "Jl. A No.1"),
			order.OnDelivery, &deliverer, &fee)

		require.NoError(t, err)
		assert.Equal(t, order.OnDelivery, o.Status())
		require.NotNil(t, o.Deliverer())
		assert.True(t, o.Deliverer().IsEqual(deliverer))
		assert.Equal(t, fee, *o.FinalFee())
	})

	t.Run("rejects_deliverer_without_assignment_status", func(t *testing.T) {
		_, err := order.RestoreOrder(id, requester, "Nasi Goreng x2", 2, mustAddress(t, "Jl. A No.1"),
			order.WaitingForOffers, &deliverer, &fee)
		require.Error(t, err)
	})

	t.Run("rejects_assignment_status_without_deliverer", func(t *testing.T) {
		_, err := order.RestoreOrder(id, requester, "Nasi Goreng x2", 2, mustAddress(t, "Jl. A No.1"),
			order.Completed, nil, nil)
		require.Error(t, err)
	})

	t.Run("rejects_deliverer_without_fee", func(t *testing.T) {
		_, err := order.RestoreOrder(id, requester, "Nasi Goreng x2", 2, mustAddress(t, "Jl. A No.1"),
			order.OfferAccepted, &deliverer, nil)
		require.Error(t, err)
	})

	t.Run("rejects_unknown_status", func(t *testing.T) {
		_, err := order.RestoreOrder(id, requester, "Nasi Goreng x2", 2, mustAddress(t, "Jl. A No.1"),
			order.Unknown, nil, nil)
		require.Error(t, err)
	})
}
