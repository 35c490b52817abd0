package sched

import "errors"

var (
	// ErrInvalidInput is returned for an empty task set or a structurally
	// invalid task. No partial result accompanies it.
	ErrInvalidInput = errors.New("invalid input")

	// ErrUnknownAlgorithm is returned for an unrecognised algorithm token.
	ErrUnknownAlgorithm = errors.New("unknown algorithm")
)
