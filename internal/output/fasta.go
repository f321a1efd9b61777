// internal/output/fasta.go
package output

import (
	"fmt"
	"io"

	"github.com/biogo/biogo/alphabet"
	biofasta "github.com/biogo/biogo/io/seqio/fasta"
	"github.com/biogo/biogo/seq/linear"

	"varseq/internal/engine"
)

// FASTAWidth is the line width of FASTA output.
const FASTAWidth = 60

// StreamFASTA writes every successful variant as a protein FASTA record.
// Failed profiles are skipped.
func StreamFASTA(w io.Writer, in <-chan engine.Variant) error {
	fw := biofasta.NewWriter(w, FASTAWidth)
	for v := range in {
		if !v.OK() {
			continue
		}
		s := linear.NewSeq(v.Name, alphabet.BytesToLetters(v.Sequence.Bytes()), alphabet.Protein)
		s.Desc = fmt.Sprintf("len=%d subs=%d deleted=%d mismatches=%d", v.Sequence.Len(), v.Substitutions, v.Deleted, len(v.Mismatches))
		if _, err := fw.Write(s); err != nil {
			return err
		}
	}
	return nil
}
