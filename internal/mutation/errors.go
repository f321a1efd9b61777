// internal/mutation/errors.go
package mutation

import (
	"errors"
	"fmt"
)

var (
	ErrMalformedToken      = errors.New("malformed mutation token")
	ErrPositionOutOfRange  = errors.New("position out of range")
	ErrOverlappingDeletion = errors.New("overlapping deletion ranges")
)

// TokenError is returned by Parse for a token that fits neither grammar.
type TokenError struct {
	Token  string
	Index  int // 0-based token index
	Reason string
}

func (e *TokenError) Error() string {
	return fmt.Sprintf("%v %q (token %d): %s", ErrMalformedToken, e.Token, e.Index+1, e.Reason)
}

func (e *TokenError) Unwrap() error { return ErrMalformedToken }

// RangeError is returned by Apply when an operation reaches outside the
// reference.
type RangeError struct {
	Op       Operation
	Position int
	Length   int
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("%v: %q (token %d) refers to position %d, sequence length is %d",
		ErrPositionOutOfRange, e.Op.Token, e.Op.Index+1, e.Position, e.Length)
}

func (e *RangeError) Unwrap() error { return ErrPositionOutOfRange }

// OverlapError is returned by Apply when two deletion ranges share residues
// under original numbering.
type OverlapError struct {
	First, Second Operation
}

func (e *OverlapError) Error() string {
	return fmt.Sprintf("%v: %q (token %d) and %q (token %d)",
		ErrOverlappingDeletion, e.First.Token, e.First.Index+1, e.Second.Token, e.Second.Index+1)
}

func (e *OverlapError) Unwrap() error { return ErrOverlappingDeletion }

// Mismatch records a substitution whose expected residue differs from the
// residue found at its position. It is a warning, never an error.
type Mismatch struct {
	Op       Operation
	Position int
	Expected byte
	Found    byte
	Applied  bool // false when the mismatched site was left untouched
}

func (m Mismatch) String() string {
	return fmt.Sprintf("%s: expected %c at position %d, found %c", m.Op.Token, m.Expected, m.Position, m.Found)
}
