// internal/output/json.go
package output

import (
	"encoding/json"
	"io"

	"varseq/internal/engine"
	"varseq/internal/protein"
	"varseq/pkg/api"
)

// ToAPIVariant converts a domain Variant to the stable wire schema (v1).
// ref names the residues bounding deletions in HGVS text.
func ToAPIVariant(v engine.Variant, ref protein.Sequence) api.VariantV1 {
	out := api.VariantV1{
		Name:    v.Name,
		Source:  v.Source,
		Status:  v.Status(),
		Profile: v.Text,
		Length:  v.Sequence.Len(),
		Deleted: v.Deleted,
	}
	if v.Err != nil {
		out.Error = v.Err.Error()
		return out
	}
	out.Sequence = v.Sequence.String()
	for _, op := range v.Profile.Substitutions {
		out.Substitutions = append(out.Substitutions, api.SubstitutionV1{
			Token:       op.Token,
			Position:    op.Position,
			Expected:    string(op.Expected),
			Replacement: string(op.Replacement),
			HGVS:        op.HGVS(ref),
		})
	}
	for _, op := range v.Profile.Deletions {
		out.Deletions = append(out.Deletions, api.DeletionV1{
			Token: op.Token,
			Start: op.Start,
			End:   op.End,
			HGVS:  op.HGVS(ref),
		})
	}
	for _, m := range v.Mismatches {
		out.Mismatches = append(out.Mismatches, api.MismatchV1{
			Token:    m.Op.Token,
			Position: m.Position,
			Expected: string(m.Expected),
			Found:    string(m.Found),
			Applied:  m.Applied,
		})
	}
	return out
}

// WriteJSON writes a single JSON array of v1 variants (pretty-indented).
func WriteJSON(w io.Writer, list []engine.Variant, ref protein.Sequence) error {
	out := make([]api.VariantV1, 0, len(list))
	for _, v := range list {
		out = append(out, ToAPIVariant(v, ref))
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}
