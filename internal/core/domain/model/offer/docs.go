// Package offer provides the Offer entity for the bidding workflow: a
// deliverer's proposed fee to fulfill a pending order. Offers are owned by
// their parent order, created only while the order collects bids, and kept
// forever as audit history once the order is assigned.
package offer
