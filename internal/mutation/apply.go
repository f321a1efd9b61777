// internal/mutation/apply.go
package mutation

import "varseq/internal/protein"

// MismatchPolicy decides what happens at a substitution site whose residue
// differs from the token's expected residue. Both policies report the
// mismatch.
type MismatchPolicy int

const (
	// SubstituteAlways writes the replacement residue regardless.
	SubstituteAlways MismatchPolicy = iota
	// SkipMismatched leaves the site as found.
	SkipMismatched
)

// Option customizes Apply.
type Option func(*config)

type config struct {
	policy MismatchPolicy
}

func WithMismatchPolicy(p MismatchPolicy) Option {
	return func(c *config) { c.policy = p }
}

// Result is a derived sequence plus what it took to get there.
type Result struct {
	Sequence      protein.Sequence
	Mismatches    []Mismatch
	Substitutions int // substitutions written
	Deleted       int // residues removed
}

// Validate checks every operation of p against ref without touching it:
// positions and deletion bounds must lie in [1, ref.Len()] and no two
// deletion ranges may overlap.
func Validate(ref protein.Sequence, p Profile) error {
	n := ref.Len()
	for _, op := range p.Substitutions {
		if !ref.InRange(op.Position) {
			return &RangeError{Op: op, Position: op.Position, Length: n}
		}
	}
	for i, op := range p.Deletions {
		if !ref.InRange(op.Start) {
			return &RangeError{Op: op, Position: op.Start, Length: n}
		}
		if !ref.InRange(op.End) {
			return &RangeError{Op: op, Position: op.End, Length: n}
		}
		for _, prev := range p.Deletions[:i] {
			if prev.overlaps(op) {
				return &OverlapError{First: prev, Second: op}
			}
		}
	}
	return nil
}

// Apply derives a new sequence from ref. ref is never modified. On error no
// sequence is returned.
func Apply(ref protein.Sequence, p Profile, opts ...Option) (Result, error) {
	var cfg config
	for _, o := range opts {
		o(&cfg)
	}
	if err := Validate(ref, p); err != nil {
		return Result{}, err
	}
	if p.Empty() {
		return Result{Sequence: ref}, nil
	}

	var res Result
	work := ref.Bytes()
	for _, op := range p.Substitutions {
		i := op.Position - 1
		if found := work[i]; found != op.Expected {
			m := Mismatch{Op: op, Position: op.Position, Expected: op.Expected, Found: found}
			m.Applied = cfg.policy == SubstituteAlways
			res.Mismatches = append(res.Mismatches, m)
			if !m.Applied {
				continue
			}
		}
		work[i] = op.Replacement
		res.Substitutions++
	}

	if len(p.Deletions) > 0 {
		drop := make([]bool, len(work))
		for _, op := range p.Deletions {
			for i := op.Start - 1; i < op.End; i++ {
				drop[i] = true
			}
			res.Deleted += op.Span()
		}
		kept := work[:0]
		for i, r := range work {
			if !drop[i] {
				kept = append(kept, r)
			}
		}
		work = kept
	}

	res.Sequence = protein.FromCanonical(work)
	return res, nil
}

// ApplyText parses text and applies it to ref.
func ApplyText(ref protein.Sequence, text string, opts ...Option) (Result, error) {
	p, err := Parse(text)
	if err != nil {
		return Result{}, err
	}
	return Apply(ref, p, opts...)
}
