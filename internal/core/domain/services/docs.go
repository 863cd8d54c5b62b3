// Package services contains stateless domain services that coordinate rules
// spanning more than one entity. AccessPolicy centralizes every
// actor/action/order capability decision of the marketplace workflow.
package services
