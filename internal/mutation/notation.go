// internal/mutation/notation.go
package mutation

import (
	"fmt"

	"varseq/internal/protein"
)

// HGVS renders op in HGVS protein notation with three-letter codes. ref is
// used to name the residues bounding a deletion; pass the zero Sequence when
// it is not at hand and positions alone are printed.
func (op Operation) HGVS(ref protein.Sequence) string {
	switch op.Kind {
	case KindSubstitution:
		if op.Expected == op.Replacement {
			return fmt.Sprintf("p.%s%d=", protein.ThreeLetter(op.Expected), op.Position)
		}
		return fmt.Sprintf("p.%s%d%s", protein.ThreeLetter(op.Expected), op.Position, protein.ThreeLetter(op.Replacement))
	case KindDeletion:
		first, okFirst := ref.At(op.Start)
		last, okLast := ref.At(op.End)
		if !okFirst || !okLast {
			if op.Start == op.End {
				return fmt.Sprintf("p.%ddel", op.Start)
			}
			return fmt.Sprintf("p.%d_%ddel", op.Start, op.End)
		}
		if op.Start == op.End {
			return fmt.Sprintf("p.%s%ddel", protein.ThreeLetter(first), op.Start)
		}
		return fmt.Sprintf("p.%s%d_%s%ddel", protein.ThreeLetter(first), op.Start, protein.ThreeLetter(last), op.End)
	}
	return ""
}
