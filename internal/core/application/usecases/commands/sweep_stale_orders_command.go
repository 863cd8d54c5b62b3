package commands

import (
	"errors"
	"fmt"
	"time"

	"titipin/internal/pkg/errs"
	"titipin/internal/pkg/guard"
)

var (
	ErrSweepStaleOrdersCommandIsNotConstructed = errors.New(
		"SweepStaleOrdersCommand must be created via NewSweepStaleOrdersCommand constructor",
	)
)

// SweepStaleOrdersCommand requests cancellation of orders that have been
// collecting offers for longer than the given age without being accepted.
type SweepStaleOrdersCommand struct { //nolint:recvcheck //using for validation
	maxAge time.Duration

	guard guard.ConstructorGuard
}

// NewSweepStaleOrdersCommand creates a sweep command. maxAge must be positive.
func NewSweepStaleOrdersCommand(maxAge time.Duration) (SweepStaleOrdersCommand, error) {
	cmd := SweepStaleOrdersCommand{
		guard: guard.NewConstructorGuard(),
	}

	if maxAge <= 0 {
		return SweepStaleOrdersCommand{}, errs.NewValueIsInvalidErrorWithCause("maxAge",
			fmt.Errorf("%s is not greater than 0", maxAge))
	}

	cmd.maxAge = maxAge
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c SweepStaleOrdersCommand) Validate() error {
	return c.guard.Validate(ErrSweepStaleOrdersCommandIsNotConstructed)
}

// MaxAge returns how long an order may wait for offers before the sweep
// cancels it.
func (c SweepStaleOrdersCommand) MaxAge() time.Duration {
	return c.maxAge
}
