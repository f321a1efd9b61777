// internal/engine/engine.go
package engine

import (
	"varseq/internal/mutation"
	"varseq/internal/profiles"
	"varseq/internal/protein"
)

// Config holds per-run engine settings.
type Config struct {
	SkipMismatched bool // leave sites whose expected residue differs untouched
}

// Engine applies profiles to one reference. It is safe for concurrent use:
// the reference is immutable and Derive keeps no state.
type Engine struct {
	ref  protein.Sequence
	opts []mutation.Option
}

func New(ref protein.Sequence, c Config) *Engine {
	e := &Engine{ref: ref}
	if c.SkipMismatched {
		e.opts = append(e.opts, mutation.WithMismatchPolicy(mutation.SkipMismatched))
	}
	return e
}

// Reference returns the sequence every profile is applied to.
func (e *Engine) Reference() protein.Sequence { return e.ref }

// Derive parses and applies one profile. Failures land in Variant.Err.
func (e *Engine) Derive(idx int, src profiles.Source) Variant {
	v := Variant{Index: idx, Name: src.Name, Source: src.Path, Text: src.Text}
	p, err := mutation.Parse(src.Text)
	if err != nil {
		v.Err = err
		return v
	}
	v.Profile = p
	res, err := mutation.Apply(e.ref, p, e.opts...)
	if err != nil {
		v.Err = err
		return v
	}
	v.Sequence = res.Sequence
	v.Mismatches = res.Mismatches
	v.Substitutions = res.Substitutions
	v.Deleted = res.Deleted
	return v
}
