package order_test

import (
	"testing"

	"titipin/internal/core/domain/model/order"
	"titipin/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatus_String(t *testing.T) {
	tests := []struct {
		status   order.Status
		expected string
	}{
		{order.Unknown, "UNKNOWN"},
		{order.WaitingForOffers, "WAITING_FOR_OFFERS"},
		{order.OfferAccepted, "OFFER_ACCEPTED"},
		{order.OnDelivery, "ON_DELIVERY"},
		{order.Completed, "COMPLETED"},
		{order.Cancelled, "CANCELLED"},
		{order.Status(42), "UNKNOWN"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, tt.status.String())
	}
}

func TestStatusFromString(t *testing.T) {
	t.Run("parses_all_valid_statuses", func(t *testing.T) {
		for _, s := range []order.Status{
			order.WaitingForOffers, order.OfferAccepted,
			order.OnDelivery, order.Completed, order.Cancelled,
		} {
			parsed, err := order.StatusFromString(s.String())
			require.NoError(t, err)
			assert.Equal(t, s, parsed)
		}
	})

	t.Run("rejects_unknown_strings", func(t *testing.T) {
		_, err := order.StatusFromString("DELIVERING")
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)

		_, err = order.StatusFromString("UNKNOWN")
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestStatus_Validate(t *testing.T) {
	for _, s := range []order.Status{
		order.WaitingForOffers, order.OfferAccepted,
		order.OnDelivery, order.Completed, order.Cancelled,
	} {
		require.NoError(t, s.Validate())
	}

	require.Error(t, order.Unknown.Validate())
	require.Error(t, order.Status(42).Validate())
}

func TestStatus_Transitions(t *testing.T) {
	tests := []struct {
		name       string
		from       order.Status
		transition func(order.Status) (order.Status, error)
		want       order.Status
		wantErr    bool
	}{
		{"accept_from_waiting", order.WaitingForOffers, order.Status.AcceptOffer, order.OfferAccepted, false},
		{"accept_from_accepted_rejected", order.OfferAccepted, order.Status.AcceptOffer, 0, true},
		{"accept_from_cancelled_rejected", order.Cancelled, order.Status.AcceptOffer, 0, true},
		{"start_from_accepted", order.OfferAccepted, order.Status.StartDelivery, order.OnDelivery, false},
		{"start_from_waiting_rejected", order.WaitingForOffers, order.Status.StartDelivery, 0, true},
		{"start_from_on_delivery_rejected", order.OnDelivery, order.Status.StartDelivery, 0, true},
		{"complete_from_on_delivery", order.OnDelivery, order.Status.Complete, order.Completed, false},
		{"complete_from_accepted_rejected", order.OfferAccepted, order.Status.Complete, 0, true},
		{"complete_from_completed_rejected", order.Completed, order.Status.Complete, 0, true},
		{"cancel_from_waiting", order.WaitingForOffers, order.Status.Cancel, order.Cancelled, false},
		{"cancel_from_accepted", order.OfferAccepted, order.Status.Cancel, order.Cancelled, false},
		{"cancel_from_on_delivery_rejected", order.OnDelivery, order.Status.Cancel, 0, true},
		{"cancel_from_completed_rejected", order.Completed, order.Status.Cancel, 0, true},
		{"cancel_from_cancelled_rejected", order.Cancelled, order.Status.Cancel, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.transition(tt.from)
			if tt.wantErr {
				require.ErrorIs(t, err, errs.ErrInvalidState)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestStatus_TransitionTo(t *testing.T) {
	t.Run("routes_to_matching_transition", func(t *testing.T) {
		got, err := order.OfferAccepted.TransitionTo(order.OnDelivery)
		require.NoError(t, err)
		assert.Equal(t, order.OnDelivery, got)
	})

	t.Run("reapplying_applied_transition_fails", func(t *testing.T) {
		_, err := order.OnDelivery.TransitionTo(order.OnDelivery)
		require.ErrorIs(t, err, errs.ErrInvalidState)
	})

	t.Run("waiting_is_not_a_valid_target", func(t *testing.T) {
		_, err := order.OfferAccepted.TransitionTo(order.WaitingForOffers)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestStatus_IsTerminal(t *testing.T) {
	assert.True(t, order.Completed.IsTerminal())
	assert.True(t, order.Cancelled.IsTerminal())
	assert.False(t, order.WaitingForOffers.IsTerminal())
	assert.False(t, order.OfferAccepted.IsTerminal())
	assert.False(t, order.OnDelivery.IsTerminal())
}

func TestStatus_ValidateCanHaveDeliverer(t *testing.T) {
	t.Run("assigned_statuses_require_deliverer", func(t *testing.T) {
		for _, s := range []order.Status{order.OfferAccepted, order.OnDelivery, order.Completed} {
			require.NoError(t, s.ValidateCanHaveDeliverer(true))
			require.Error(t, s.ValidateCanHaveDeliverer(false))
		}
	})

	t.Run("unassigned_statuses_forbid_deliverer", func(t *testing.T) {
		for _, s := range []order.Status{order.WaitingForOffers, order.Cancelled} {
			require.NoError(t, s.ValidateCanHaveDeliverer(false))
			require.Error(t, s.ValidateCanHaveDeliverer(true))
		}
	})
}
