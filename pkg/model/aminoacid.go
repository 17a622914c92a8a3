// Model for the amino-acid alphabet and composition analysis

package model

import (
	"fmt"
	"sort"
	"strings"
)

// AminoAcids maps the one-letter code of each of the twenty standard amino
// acids to its full name. These keys are the only residues the service
// accepts; every sequence is validated against them after uppercasing.
var AminoAcids = map[string]string{
	"A": "Alanine",
	"R": "Arginine",
	"N": "Asparagine",
	"D": "Aspartic acid",
	"C": "Cysteine",
	"E": "Glutamic acid",
	"Q": "Glutamine",
	"G": "Glycine",
	"H": "Histidine",
	"I": "Isoleucine",
	"L": "Leucine",
	"K": "Lysine",
	"M": "Methionine",
	"F": "Phenylalanine",
	"P": "Proline",
	"S": "Serine",
	"T": "Threonine",
	"W": "Tryptophan",
	"Y": "Tyrosine",
	"V": "Valine",
}

// Composition maps an amino-acid code to its occurrence count in a sequence.
type Composition map[string]int

// IsResidue reports whether code is a known one-letter amino-acid code.
// Matching is case sensitive; callers uppercase their input first.
func IsResidue(code string) bool {
	_, ok := AminoAcids[code]
	return ok
}

// ValidateSequence checks that every character of an already uppercased
// sequence is a known amino-acid code. The error lists the offending
// characters, deduplicated and sorted.
func ValidateSequence(sequence string) error {
	if sequence == "" {
		return fmt.Errorf("%w: sequence is empty", ErrInvalidSequence)
	}

	seen := make(map[rune]bool)
	for _, r := range sequence {
		if !IsResidue(string(r)) {
			seen[r] = true
		}
	}
	if len(seen) == 0 {
		return nil
	}

	invalid := make([]string, 0, len(seen))
	for r := range seen {
		invalid = append(invalid, fmt.Sprintf("%q", string(r)))
	}
	sort.Strings(invalid)
	return fmt.Errorf("%w: invalid amino acids found: %s", ErrInvalidSequence, strings.Join(invalid, ", "))
}

// Analyze counts how often each amino acid occurs in a sequence. Residues
// that never occur are left out of the map. The sequence is assumed valid.
func Analyze(sequence string) Composition {
	composition := make(Composition)
	for code := range AminoAcids {
		if n := strings.Count(sequence, code); n > 0 {
			composition[code] = n
		}
	}
	return composition
}
