// Model for stored protein sequence records and point mutations

package model

import (
	"fmt"
	"strconv"
	"strings"
)

// ProteinSequence is one stored sequence record. Length and Composition are
// derived from Sequence when the record is created and never change after.
type ProteinSequence struct {
	ID          int         `json:"id"`
	Name        string      `json:"name"`
	Sequence    string      `json:"sequence"`
	Length      int         `json:"length"`
	Composition Composition `json:"composition"`
}

// Mutation is the outcome of a single-residue substitution, ready to be
// stored as a new record. Label uses 1-based notation (e.g. "K2A") even
// though positions are 0-based everywhere else in the API.
type Mutation struct {
	Label    string
	Name     string
	Sequence string
}

// Mutate substitutes the residue at a 0-based position with newResidue and
// returns the label, name, and sequence of the derived record. The input
// record is left untouched. Position bounds are checked before the residue.
func Mutate(p ProteinSequence, position int, newResidue string) (Mutation, error) {
	if position < 0 || position >= len(p.Sequence) {
		return Mutation{}, fmt.Errorf("%w: position must be between 0 and %d",
			ErrInvalidPosition, len(p.Sequence)-1)
	}

	newResidue = strings.ToUpper(newResidue)
	if !IsResidue(newResidue) {
		return Mutation{}, fmt.Errorf("%w: invalid amino acid: %q", ErrInvalidResidue, newResidue)
	}

	oldResidue := p.Sequence[position : position+1]
	label := oldResidue + strconv.Itoa(position+1) + newResidue

	return Mutation{
		Label:    label,
		Name:     p.Name + "_mut_" + label,
		Sequence: p.Sequence[:position] + newResidue + p.Sequence[position+1:],
	}, nil
}
