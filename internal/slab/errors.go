package slab

import "errors"

var (
	// ErrUnsortedSlabSizes is returned when the producible sizes are not in
	// ascending order. Table construction must abort rather than correct this.
	ErrUnsortedSlabSizes = errors.New("slab sizes must be sorted in ascending order")
	// ErrInvalidSlabSizes is returned when the sizes are missing or contain
	// non-positive entries.
	ErrInvalidSlabSizes = errors.New("slab sizes must contain at least one positive integer")
	// ErrInvalidUpperBound is returned when the requested table bound is negative.
	ErrInvalidUpperBound = errors.New("upper bound must be a non-negative integer")
	// ErrInvalidCandidate is returned when a candidate references an order
	// index outside the instance. Such candidates cannot be scored meaningfully.
	ErrInvalidCandidate = errors.New("candidate references an order index outside the instance")
)
