// Package ports defines the contracts between the application core and
// infrastructure: repositories, the unit of work, and the realtime publisher.
// These interfaces enable dependency inversion and testability.
package ports

import (
	"context"

	"titipin/internal/core/domain/model/kernel"
	"titipin/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
type OrderRepository interface {
	// Add persists a new order aggregate to storage.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate.
	Update(ctx context.Context, aggregate *order.Order) error

	// UpdateGuarded persists changes to an existing order only if its stored
	// status still equals expected (a conditional write: "... WHERE status =
	// expected"). When the row was concurrently moved out of expected, no
	// change is made and an errs.InvalidStateError is returned.
	//
	// This is the serialization point for offer acceptance: two concurrent
	// accepts both read WaitingForOffers, but only the first guarded update
	// matches the predicate; the loser observes the error and reports the
	// conflict. A read-then-Update without this guard would let both win.
	UpdateGuarded(ctx context.Context, aggregate *order.Order, expected order.Status) error

	// Get retrieves an order aggregate by its unique identifier.
	// Returns an errs.ObjectNotFoundError if no such order exists.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetForUpdate retrieves an order aggregate and row-locks it for the
	// remainder of the current transaction (SELECT ... FOR UPDATE). Callers
	// that read the order's status and then write dependent rows use this to
	// serialize against a concurrent acceptance moving the order out of
	// WaitingForOffers mid-flight.
	// Returns an errs.ObjectNotFoundError if no such order exists.
	GetForUpdate(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetAllWaitingForOffersOlderThan retrieves orders still collecting
	// offers whose creation time is before the cutoff. Used by the stale
	// order sweep.
	GetAllWaitingForOffersOlderThan(ctx context.Context, cutoffUnix int64) ([]*order.Order, error)
}
