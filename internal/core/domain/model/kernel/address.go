package kernel

import (
	"strings"

	"titipin/internal/pkg/errs"
	"titipin/internal/pkg/guard"
)

// AddressMaxLength is the maximum accepted length of a destination address,
// matching the column size in the orders table.
const AddressMaxLength = 500

// ErrAddressIsNotConstructed is returned when attempting to use an improperly
// initialized Address. Addresses must be created via NewAddress.
var ErrAddressIsNotConstructed = errs.NewValueIsRequiredError(
	"address must be created via the NewAddress constructor")

// Address represents a validated delivery destination. Address is an immutable
// value object: the raw text is trimmed on construction and must be non-empty.
// The zero value of Address is invalid and will fail validation.
//
// Example:
//
//	dest, err := kernel.NewAddress("Jl. A No.1")
//	if err != nil {
//	    // handle validation error
//	}
type Address struct { //nolint:recvcheck //using for validation
	value string
	guard guard.ConstructorGuard
}

// NewAddress creates an Address from raw text. Leading and trailing whitespace
// is trimmed. Returns an error if the result is empty or exceeds
// AddressMaxLength.
func NewAddress(raw string) (Address, error) {
	value := strings.TrimSpace(raw)
	if value == "" {
		return Address{}, errs.NewValueIsRequiredError("address")
	}
	if len(value) > AddressMaxLength {
		return Address{}, errs.NewValueIsOutOfRangeError("address length", len(value), 1, AddressMaxLength)
	}

	return Address{
		value: value,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// String returns the address text.
func (a Address) String() string {
	return a.value
}

// IsEqual compares two addresses by their text.
func (a Address) IsEqual(other Address) bool {
	return a.value == other.value
}

// Validate checks that the Address was created via NewAddress.
func (a Address) Validate() error {
	return a.guard.Validate(ErrAddressIsNotConstructed)
}
