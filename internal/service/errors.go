// Package service implements the business operations of the MunchBox
// backend on top of the storage.Store abstraction. Every operation
// loads the relevant collection, applies the mutation in memory and
// persists the full collection back: there is no partial update at
// the storage boundary.
package service

import "errors"

var (
	// ErrNotFound signals a requested id absent from a collection.
	ErrNotFound = errors.New("not found")

	// ErrUnknownStatus signals a status outside the enumerated set.
	ErrUnknownStatus = errors.New("unknown order status")

	// ErrBadTransition signals a move off the forward path while
	// strict transitions are enabled.
	ErrBadTransition = errors.New("status transition not allowed")

	// ErrMissingFields signals a create request without its required
	// fields, rejected before any write.
	ErrMissingFields = errors.New("missing required fields")
)
