// internal/mutation/parse.go
package mutation

import (
	"strconv"
	"strings"

	"varseq/internal/protein"
)

const deletionPrefix = "del"

// Parse splits text on whitespace and classifies every token. The first
// malformed token aborts the profile with a *TokenError.
func Parse(text string) (Profile, error) {
	var p Profile
	for i, tok := range strings.Fields(text) {
		op, err := parseToken(tok, i)
		if err != nil {
			return Profile{}, err
		}
		switch op.Kind {
		case KindDeletion:
			p.Deletions = append(p.Deletions, op)
		default:
			p.Substitutions = append(p.Substitutions, op)
		}
	}
	return p, nil
}

// MustParse is Parse for literals; it panics on error.
func MustParse(text string) Profile {
	p, err := Parse(text)
	if err != nil {
		panic(err)
	}
	return p
}

func parseToken(tok string, idx int) (Operation, error) {
	bad := func(reason string) (Operation, error) {
		return Operation{}, &TokenError{Token: tok, Index: idx, Reason: reason}
	}

	if rest, ok := strings.CutPrefix(tok, deletionPrefix); ok {
		lo, hi, found := strings.Cut(rest, "/")
		if !found {
			return bad("deletion must be del<start>/<end>")
		}
		start, err := parsePosition(lo)
		if err != nil {
			return bad("deletion start: " + err.Error())
		}
		end, err := parsePosition(hi)
		if err != nil {
			return bad("deletion end: " + err.Error())
		}
		if start > end {
			return bad("deletion start is after end")
		}
		return Operation{Kind: KindDeletion, Token: tok, Index: idx, Start: start, End: end}, nil
	}

	if len(tok) < 3 {
		return bad("substitution must be <residue><position><residue>")
	}
	expected, ok := protein.Canonical(tok[0])
	if !ok {
		return bad("expected residue is not an amino acid")
	}
	replacement, ok := protein.Canonical(tok[len(tok)-1])
	if !ok {
		return bad("replacement residue is not an amino acid")
	}
	pos, err := parsePosition(tok[1 : len(tok)-1])
	if err != nil {
		return bad("position: " + err.Error())
	}
	return Operation{
		Kind:        KindSubstitution,
		Token:       tok,
		Index:       idx,
		Position:    pos,
		Expected:    expected,
		Replacement: replacement,
	}, nil
}

type positionError string

func (e positionError) Error() string { return string(e) }

// parsePosition accepts a plain run of decimal digits with value >= 1.
func parsePosition(s string) (int, error) {
	if s == "" {
		return 0, positionError("missing number")
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return 0, positionError("not a positive integer: " + strconv.Quote(s))
		}
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, positionError("number too large: " + s)
	}
	if n < 1 {
		return 0, positionError("positions start at 1")
	}
	return n, nil
}
