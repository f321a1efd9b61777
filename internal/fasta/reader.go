// internal/fasta/reader.go
package fasta

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/biogo/biogo/alphabet"
	"github.com/biogo/biogo/io/seqio"
	biofasta "github.com/biogo/biogo/io/seqio/fasta"
	"github.com/biogo/biogo/seq/linear"
)

var (
	ErrNoRecords       = errors.New("no FASTA record found")
	ErrMultipleRecords = errors.New("more than one FASTA record")
)

// Record is one parsed FASTA entry. Seq has line wrapping removed but is
// otherwise as found in the file (case preserved, no validation).
type Record struct {
	ID   string
	Desc string
	Seq  []byte
}

// ReadSingle opens path and returns its only record. Inputs holding zero or
// several records fail with ErrNoRecords / ErrMultipleRecords. Parse errors
// do not repeat path; the caller names the source.
func ReadSingle(ctx context.Context, path string) (Record, error) {
	rc, err := Open(path)
	if err != nil {
		return Record{}, err
	}
	defer rc.Close()
	return ReadSingleFrom(ctx, rc)
}

// ReadSingleFrom is ReadSingle over an already opened stream.
func ReadSingleFrom(ctx context.Context, r io.Reader) (Record, error) {
	sc := seqio.NewScanner(biofasta.NewReader(r, linear.NewSeq("", nil, alphabet.DNA)))

	var (
		rec Record
		n   int
	)
	for sc.Next() {
		if err := ctx.Err(); err != nil {
			return Record{}, err
		}
		s, ok := sc.Seq().(*linear.Seq)
		if !ok {
			return Record{}, fmt.Errorf("fasta: unexpected sequence type %T", sc.Seq())
		}
		n++
		if n > 1 {
			return Record{}, fmt.Errorf("%w (first %q, then %q)", ErrMultipleRecords, rec.ID, s.Name())
		}
		rec = Record{
			ID:   s.Name(),
			Desc: s.Description(),
			Seq:  squeeze(alphabet.LettersToBytes(s.Seq)),
		}
	}
	if err := sc.Error(); err != nil {
		return Record{}, fmt.Errorf("fasta scan: %w", err)
	}
	if n == 0 {
		return Record{}, ErrNoRecords
	}
	return rec, nil
}

// squeeze drops any whitespace left inside sequence lines.
func squeeze(b []byte) []byte {
	if bytes.IndexFunc(b, isSpace) < 0 {
		return append([]byte(nil), b...)
	}
	out := make([]byte, 0, len(b))
	for _, c := range b {
		if !isSpace(rune(c)) {
			out = append(out, c)
		}
	}
	return out
}

func isSpace(r rune) bool { return r == ' ' || r == '\t' || r == '\r' || r == '\n' }
