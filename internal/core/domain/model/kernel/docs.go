// Package kernel provides shared value objects used across the domain model.
//
// The package includes:
//   - UUID: validated unique identifier wrapping github.com/google/uuid
//   - Address: validated delivery destination text
//
// All kernel types are immutable value objects whose zero values are invalid;
// instances must be created through the provided constructor functions so
// validation cannot be bypassed.
package kernel
