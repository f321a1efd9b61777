// internal/protein/sequence.go
package protein

import "fmt"

// Sequence is an immutable, 1-indexed run of amino-acid residues.
// The zero value is the empty sequence.
type Sequence struct {
	res string
}

// InvalidResidueError reports a byte outside the 20-letter alphabet.
type InvalidResidueError struct {
	Residue  byte
	Position int // 1-based
}

func (e *InvalidResidueError) Error() string {
	return fmt.Sprintf("invalid residue %q at %d; allowed: %s", e.Residue, e.Position, Alphabet)
}

// New validates s against the amino-acid alphabet and returns it uppercased.
func New(s string) (Sequence, error) {
	b := []byte(s)
	for i, r := range b {
		c, ok := Canonical(r)
		if !ok {
			return Sequence{}, &InvalidResidueError{Residue: r, Position: i + 1}
		}
		b[i] = c
	}
	return Sequence{res: string(b)}, nil
}

// MustNew is New for literals known to be valid; it panics otherwise.
func MustNew(s string) Sequence {
	seq, err := New(s)
	if err != nil {
		panic(err)
	}
	return seq
}

// FromCanonical wraps residues already known to be uppercase and valid.
// The byte slice is copied.
func FromCanonical(b []byte) Sequence { return Sequence{res: string(b)} }

func (s Sequence) Len() int { return len(s.res) }

// At returns the residue at 1-based position pos.
func (s Sequence) At(pos int) (byte, bool) {
	if pos < 1 || pos > len(s.res) {
		return 0, false
	}
	return s.res[pos-1], true
}

// InRange reports whether pos is a valid 1-based position.
func (s Sequence) InRange(pos int) bool { return pos >= 1 && pos <= len(s.res) }

func (s Sequence) String() string { return s.res }

// Bytes returns a fresh copy of the residues; callers may mutate it.
func (s Sequence) Bytes() []byte { return []byte(s.res) }

func (s Sequence) Equal(o Sequence) bool { return s.res == o.res }
