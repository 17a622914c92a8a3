// FASTA upload decoding on top of the poly parser

package model

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/bebop/poly/io/fasta"
)

// Sequence lines longer than this fail parsing. Far beyond any realistic
// protein record.
const maxFastaLine = 1 << 20

// fastaBodyCleaner strips the spaces and carriage returns sequence lines may
// carry. Any other whitespace is left in place for validation to reject.
var fastaBodyCleaner = strings.NewReplacer(" ", "", "\r", "")

// FirstFastaRecord decodes FASTA text and returns the name and raw sequence
// of the first record. The name is the first whitespace-delimited token of
// the header line, empty for a bare ">" header. Every record is read, so a
// malformed later record still fails the whole upload; only the first one is
// returned. The sequence keeps its original case, with spaces and carriage
// returns dropped so CRLF and space-padded input parse like plain LF input.
func FirstFastaRecord(r io.Reader) (name, sequence string, err error) {
	parser := fasta.NewParser(r, maxFastaLine)

	var (
		found bool
		first fasta.Fasta
	)
	for {
		record, _, parseErr := parser.ParseNext()
		if parseErr != nil && !errors.Is(parseErr, io.EOF) {
			return "", "", fmt.Errorf("%w: error parsing FASTA: %s", ErrInvalidFormat, parseErr)
		}
		// The final record arrives together with io.EOF when the input has
		// no trailing newline.
		if !found && (record.Name != "" || record.Sequence != "") {
			first = record
			found = true
		}
		if parseErr != nil {
			break
		}
	}

	if !found {
		return "", "", fmt.Errorf("%w: no valid FASTA sequence found", ErrInvalidFormat)
	}

	if fields := strings.Fields(first.Name); len(fields) > 0 {
		name = fields[0]
	}
	return name, fastaBodyCleaner.Replace(first.Sequence), nil
}
