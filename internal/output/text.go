// internal/output/text.go
package output

import (
	"fmt"
	"io"
	"strings"

	"varseq/internal/engine"
)

// FormatRowTSV returns one TSV row (no trailing newline). The last column is
// the derived sequence, or the error for a failed profile.
func FormatRowTSV(v engine.Variant) string {
	result := v.Sequence.String()
	if v.Err != nil {
		result = oneLine(v.Err.Error())
	}
	return fmt.Sprintf("%s\t%s\t%d\t%d\t%d\t%d\t%s",
		v.Name, v.Status(), v.Sequence.Len(), v.Substitutions, v.Deleted, len(v.Mismatches), result)
}

// StreamText writes rows as variants arrive.
func StreamText(w io.Writer, in <-chan engine.Variant, header bool) error {
	if header {
		if _, err := fmt.Fprintln(w, TSVHeader); err != nil {
			return err
		}
	}
	for v := range in {
		if _, err := fmt.Fprintln(w, FormatRowTSV(v)); err != nil {
			return err
		}
	}
	return nil
}

func oneLine(s string) string {
	return strings.NewReplacer("\t", " ", "\n", " ", "\r", " ").Replace(s)
}
