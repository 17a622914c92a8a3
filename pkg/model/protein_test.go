package model

import (
	"errors"
	"strings"
	"testing"
)

func testProtein(sequence string) ProteinSequence {
	return ProteinSequence{
		ID:          1,
		Name:        "test",
		Sequence:    sequence,
		Length:      len(sequence),
		Composition: Analyze(sequence),
	}
}

func TestMutateBuildsLabelNameAndSequence(t *testing.T) {
	original := testProtein("MKV")

	mutation, err := Mutate(original, 1, "A")
	if err != nil {
		t.Fatalf("mutate: %v", err)
	}
	if mutation.Label != "K2A" {
		t.Errorf("label = %q, want %q", mutation.Label, "K2A")
	}
	if mutation.Name != "test_mut_K2A" {
		t.Errorf("name = %q, want %q", mutation.Name, "test_mut_K2A")
	}
	if mutation.Sequence != "MAV" {
		t.Errorf("sequence = %q, want %q", mutation.Sequence, "MAV")
	}
	if original.Sequence != "MKV" {
		t.Errorf("original sequence changed to %q", original.Sequence)
	}
}

func TestMutateUppercasesResidue(t *testing.T) {
	mutation, err := Mutate(testProtein("MKV"), 0, "a")
	if err != nil {
		t.Fatalf("mutate: %v", err)
	}
	if mutation.Label != "M1A" || mutation.Sequence != "AKV" {
		t.Fatalf("got label %q sequence %q, want M1A / AKV", mutation.Label, mutation.Sequence)
	}
}

func TestMutateSameResidue(t *testing.T) {
	// Substituting a residue with itself is still a valid mutation.
	mutation, err := Mutate(testProtein("MKV"), 1, "K")
	if err != nil {
		t.Fatalf("mutate: %v", err)
	}
	if mutation.Label != "K2K" || mutation.Sequence != "MKV" {
		t.Fatalf("got label %q sequence %q, want K2K / MKV", mutation.Label, mutation.Sequence)
	}
}

func TestMutatePositionOutOfRange(t *testing.T) {
	for _, position := range []int{-1, 3, 100} {
		_, err := Mutate(testProtein("MKV"), position, "A")
		if !errors.Is(err, ErrInvalidPosition) {
			t.Errorf("position %d: expected ErrInvalidPosition, got %v", position, err)
		}
	}

	_, err := Mutate(testProtein("MKV"), 3, "A")
	if !strings.Contains(err.Error(), "between 0 and 2") {
		t.Errorf("error %q should state the valid range", err)
	}
}

func TestMutateInvalidResidue(t *testing.T) {
	for _, residue := range []string{"B", "Z", "1", "", "AA"} {
		_, err := Mutate(testProtein("MKV"), 0, residue)
		if !errors.Is(err, ErrInvalidResidue) {
			t.Errorf("residue %q: expected ErrInvalidResidue, got %v", residue, err)
		}
	}
}

func TestMutatePositionCheckedBeforeResidue(t *testing.T) {
	// When both are invalid the position error wins.
	_, err := Mutate(testProtein("MKV"), 99, "?")
	if !errors.Is(err, ErrInvalidPosition) {
		t.Fatalf("expected ErrInvalidPosition, got %v", err)
	}
}

func TestMutateChangesExactlyOnePosition(t *testing.T) {
	original := testProtein("ACDEFGHIKL")

	mutation, err := Mutate(original, 4, "W")
	if err != nil {
		t.Fatalf("mutate: %v", err)
	}
	if len(mutation.Sequence) != len(original.Sequence) {
		t.Fatalf("length changed from %d to %d", len(original.Sequence), len(mutation.Sequence))
	}
	for i := range original.Sequence {
		same := original.Sequence[i] == mutation.Sequence[i]
		if i == 4 && same {
			t.Errorf("position 4 not substituted in %q", mutation.Sequence)
		}
		if i != 4 && !same {
			t.Errorf("position %d changed unexpectedly in %q", i, mutation.Sequence)
		}
	}
}
