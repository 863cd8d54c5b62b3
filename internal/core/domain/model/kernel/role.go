package kernel

import (
	"fmt"

	"titipin/internal/pkg/errs"
)

// Role is the authorization tag attached to a user by the identity provider.
// The core treats it as an opaque capability class; what each role may do is
// decided by the access policy, not by the role itself.
type Role string

const (
	// RoleCustomer places orders, accepts offers, and chats with the
	// assigned deliverer.
	RoleCustomer Role = "CUSTOMER"

	// RoleDeliverer bids on pending orders and fulfills assignments.
	RoleDeliverer Role = "DELIVERER"

	// RoleMerchant manages a storefront; not a participant of the core
	// bidding workflow.
	RoleMerchant Role = "MERCHANT"

	// RoleAdmin covers the administrative/finance staff family.
	RoleAdmin Role = "ADMIN"
)

// RoleFromString parses the transport representation of a role.
func RoleFromString(s string) (Role, error) {
	role := Role(s)
	if err := role.Validate(); err != nil {
		return "", err
	}
	return role, nil
}

// Validate checks the role is one of the defined tags.
func (r Role) Validate() error {
	switch r {
	case RoleCustomer, RoleDeliverer, RoleMerchant, RoleAdmin:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause("role",
			fmt.Errorf("%q is not a recognized role", string(r)))
	}
}

// String returns the transport name of the role.
func (r Role) String() string {
	return string(r)
}
