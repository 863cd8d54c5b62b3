// Package order provides the Order aggregate root for the delivery
// marketplace and the Status state machine that governs its lifecycle.
//
// Key business rules:
//   - Orders are created by a customer in WaitingForOffers status
//   - Accepting an offer binds exactly one deliverer and fixes the final fee
//   - Only the WaitingForOffers -> OfferAccepted transition assigns a deliverer,
//     so at most one offer per order ever wins
//   - The deliverer advances OfferAccepted -> OnDelivery -> Completed
//   - The requester may cancel up to (but not during or after) the delivery run
//   - Completed and Cancelled are terminal
//
// The package follows Domain-Driven Design principles: private fields,
// constructor validation, and transition methods that refuse illegal state
// changes rather than trusting callers.
package order
