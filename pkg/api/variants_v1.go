// pkg/api/variants_v1.go
package api

// VariantV1 is the stable JSON/JSONL schema for one applied profile.
// Keep fields, names, and types stable. Add new fields only with ",omitempty".
type VariantV1 struct {
	Name          string           `json:"name"`
	Source        string           `json:"source,omitempty"`
	Status        string           `json:"status"` // "ok" | "error"
	Profile       string           `json:"profile"`
	Length        int              `json:"length"`
	Deleted       int              `json:"deleted"`
	Substitutions []SubstitutionV1 `json:"substitutions,omitempty"`
	Deletions     []DeletionV1     `json:"deletions,omitempty"`
	Mismatches    []MismatchV1     `json:"mismatches,omitempty"`
	Sequence      string           `json:"sequence,omitempty"`
	Error         string           `json:"error,omitempty"`
}

// SubstitutionV1 describes one parsed substitution token.
type SubstitutionV1 struct {
	Token       string `json:"token"`
	Position    int    `json:"position"`
	Expected    string `json:"expected"`
	Replacement string `json:"replacement"`
	HGVS        string `json:"hgvs"`
}

// DeletionV1 describes one parsed deletion range (inclusive, 1-based).
type DeletionV1 struct {
	Token string `json:"token"`
	Start int    `json:"start"`
	End   int    `json:"end"`
	HGVS  string `json:"hgvs"`
}

// MismatchV1 is a substitution whose expected residue was not found.
type MismatchV1 struct {
	Token    string `json:"token"`
	Position int    `json:"position"`
	Expected string `json:"expected"`
	Found    string `json:"found"`
	Applied  bool   `json:"applied"`
}
