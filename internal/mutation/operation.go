// internal/mutation/operation.go
package mutation

import (
	"fmt"
	"strings"
)

// Kind tags an Operation.
type Kind int

const (
	KindSubstitution Kind = iota + 1
	KindDeletion
)

func (k Kind) String() string {
	switch k {
	case KindSubstitution:
		return "substitution"
	case KindDeletion:
		return "deletion"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Operation is one parsed token. For substitutions Position, Expected and
// Replacement are set; for deletions Start and End (inclusive). All
// positions are 1-based original numbering.
type Operation struct {
	Kind  Kind
	Token string // token text as written in the profile
	Index int    // 0-based token index in the profile

	Position    int
	Expected    byte
	Replacement byte

	Start int
	End   int
}

// Substitution builds a substitution operation; residues must be canonical.
func Substitution(pos int, expected, replacement byte) Operation {
	op := Operation{Kind: KindSubstitution, Position: pos, Expected: expected, Replacement: replacement}
	op.Token = op.Canonical()
	return op
}

// Deletion builds a deletion of start..end inclusive.
func Deletion(start, end int) Operation {
	op := Operation{Kind: KindDeletion, Start: start, End: end}
	op.Token = op.Canonical()
	return op
}

// Span returns the number of residues a deletion removes (0 otherwise).
func (op Operation) Span() int {
	if op.Kind != KindDeletion {
		return 0
	}
	return op.End - op.Start + 1
}

// Canonical renders the operation in profile grammar (N501Y, del69/70).
func (op Operation) Canonical() string {
	switch op.Kind {
	case KindSubstitution:
		return fmt.Sprintf("%c%d%c", op.Expected, op.Position, op.Replacement)
	case KindDeletion:
		return fmt.Sprintf("del%d/%d", op.Start, op.End)
	}
	return op.Token
}

func (op Operation) String() string { return op.Canonical() }

// overlaps reports whether two deletions share at least one position.
func (op Operation) overlaps(o Operation) bool {
	return op.Start <= o.End && o.Start <= op.End
}

// Profile is a parsed mutation profile. Substitutions and Deletions each
// keep the order in which their tokens appeared.
type Profile struct {
	Substitutions []Operation
	Deletions     []Operation
}

// Len is the total number of operations.
func (p Profile) Len() int { return len(p.Substitutions) + len(p.Deletions) }

// Empty reports whether the profile holds no operation.
func (p Profile) Empty() bool { return p.Len() == 0 }

// Operations returns every operation in original token order.
func (p Profile) Operations() []Operation {
	out := make([]Operation, 0, p.Len())
	i, j := 0, 0
	for i < len(p.Substitutions) || j < len(p.Deletions) {
		switch {
		case j == len(p.Deletions):
			out = append(out, p.Substitutions[i])
			i++
		case i == len(p.Substitutions):
			out = append(out, p.Deletions[j])
			j++
		case p.Substitutions[i].Index < p.Deletions[j].Index:
			out = append(out, p.Substitutions[i])
			i++
		default:
			out = append(out, p.Deletions[j])
			j++
		}
	}
	return out
}

// String renders the profile canonically, space-separated, in token order.
func (p Profile) String() string {
	ops := p.Operations()
	parts := make([]string, len(ops))
	for i, op := range ops {
		parts[i] = op.Canonical()
	}
	return strings.Join(parts, " ")
}
