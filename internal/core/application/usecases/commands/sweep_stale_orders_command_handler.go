package commands

import (
	"context"
	"errors"
	"time"

	"titipin/internal/core/domain/model/order"
	"titipin/internal/pkg/errs"
)

// SweepStaleOrdersCommandHandler cancels orders that sat in WaitingForOffers
// past the configured age. Each cancellation uses the guarded update, so an
// order accepted while the sweep runs is left alone rather than clobbered.
type SweepStaleOrdersCommandHandler struct {
	uowFactory OrderUoWFactory

	// now is replaceable in tests.
	now func() time.Time
}

// NewSweepStaleOrdersCommandHandler creates a handler for the stale order
// sweep.
func NewSweepStaleOrdersCommandHandler(uowFactory OrderUoWFactory) SweepStaleOrdersCommandHandler {
	return SweepStaleOrdersCommandHandler{
		uowFactory: uowFactory,
		now:        time.Now,
	}
}

// Handle cancels every stale order and returns how many were cancelled.
// Orders that lose the guarded update to a concurrent acceptance are skipped,
// not treated as failures.
func (h SweepStaleOrdersCommandHandler) Handle(ctx context.Context, cmd SweepStaleOrdersCommand) (int, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()

	cutoff := h.now().Add(-cmd.MaxAge()).Unix()
	stale, err := orderRepo.GetAllWaitingForOffersOlderThan(ctx, cutoff)
	if err != nil {
		return 0, err
	}

	cancelled := 0
	for _, ord := range stale {
		if err = ord.Cancel(); err != nil {
			return 0, err
		}

		err = orderRepo.UpdateGuarded(ctx, ord, order.WaitingForOffers)
		if errors.Is(err, errs.ErrInvalidState) {
			continue
		}
		if err != nil {
			return 0, err
		}

		cancelled++
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return cancelled, nil
}
