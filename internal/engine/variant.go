// internal/engine/variant.go
package engine

import (
	"varseq/internal/mutation"
	"varseq/internal/protein"
)

// Variant is the outcome of one profile. Exactly one of Err or a usable
// Sequence is meaningful: when Err is set, Sequence is empty.
type Variant struct {
	Index  int    // position of the profile in the batch
	Name   string // profile name
	Source string // profile path ("" inline, "-" stdin)
	Text   string // profile text as read

	Profile    mutation.Profile
	Sequence   protein.Sequence
	Mismatches []mutation.Mismatch

	Substitutions int
	Deleted       int

	Err error
}

// OK reports whether the profile was applied.
func (v Variant) OK() bool { return v.Err == nil }

// Status is "ok" or "error".
func (v Variant) Status() string {
	if v.Err != nil {
		return "error"
	}
	return "ok"
}
