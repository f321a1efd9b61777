// internal/translate/translate.go
package translate

import (
	"context"
	"errors"
	"fmt"
	"io/fs"

	"varseq/internal/fasta"
	"varseq/internal/protein"
)

// InputFormatError means the reference input cannot be used: wrong number of
// records or a byte outside A/C/G/T.
type InputFormatError struct {
	Source string
	Reason string
	Err    error
}

func (e *InputFormatError) Error() string {
	if e.Source == "" {
		return "input format: " + e.Reason
	}
	return fmt.Sprintf("input format: %s: %s", e.Source, e.Reason)
}

func (e *InputFormatError) Unwrap() error { return e.Err }

// Translation is the protein read from one nucleotide sequence.
type Translation struct {
	Protein protein.Sequence
	Codons  int  // codons consumed, stop codon included
	Stopped bool // true if translation ended on a stop codon
}

// Translate maps consecutive codons through the standard code, stopping at
// the first stop codon (excluded) or at the end of nt. A trailing partial
// codon is ignored. nt is case-insensitive and must hold only A/C/G/T, also
// past a stop codon.
func Translate(nt []byte) (Translation, error) {
	up := make([]byte, len(nt))
	for i, b := range nt {
		switch b {
		case 'A', 'C', 'G', 'T':
		case 'a', 'c', 'g', 't':
			b -= 'a' - 'A'
		default:
			return Translation{}, &InputFormatError{
				Reason: fmt.Sprintf("invalid nucleotide %q at %d; allowed: A C G T", b, i+1),
			}
		}
		up[i] = b
	}

	var (
		out = make([]byte, 0, len(up)/3)
		tr  Translation
	)
	for i := 0; i+3 <= len(up); i += 3 {
		aa, _ := Codon(string(up[i : i+3]))
		tr.Codons++
		if aa == stop {
			tr.Stopped = true
			break
		}
		out = append(out, aa)
	}
	tr.Protein = protein.FromCanonical(out)
	return tr, nil
}

// Reference is a translated reference record.
type Reference struct {
	ID     string
	Source string
	Translation
}

// LoadReference reads the single nucleotide record at path and translates it.
// Format errors name path once, through InputFormatError.Source.
func LoadReference(ctx context.Context, path string) (Reference, error) {
	rec, err := fasta.ReadSingle(ctx, path)
	switch {
	case errors.Is(err, fasta.ErrNoRecords), errors.Is(err, fasta.ErrMultipleRecords):
		return Reference{}, &InputFormatError{Source: path, Reason: "ambiguous reference: exactly one record is required", Err: err}
	case err != nil:
		var pe *fs.PathError
		if ctx.Err() != nil || errors.As(err, &pe) {
			return Reference{}, err
		}
		return Reference{}, &InputFormatError{Source: path, Reason: err.Error(), Err: err}
	}
	tr, err := Translate(rec.Seq)
	if err != nil {
		var ife *InputFormatError
		if errors.As(err, &ife) {
			ife.Source = path
		}
		return Reference{}, err
	}
	return Reference{ID: rec.ID, Source: path, Translation: tr}, nil
}
