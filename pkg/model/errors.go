package model

import "errors"

// Failure kinds surfaced by the domain. The handler layer translates them
// into HTTP statuses: ErrNotFound becomes a 404, the rest become 400s.
var (
	ErrInvalidFormat   = errors.New("invalid format")
	ErrInvalidSequence = errors.New("invalid sequence")
	ErrInvalidPosition = errors.New("invalid position")
	ErrInvalidResidue  = errors.New("invalid residue")
	ErrNotFound        = errors.New("not found")
)
