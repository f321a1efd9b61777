package mutation

import (
	"errors"
	"testing"
)

func TestParseClassifiesTokens(t *testing.T) {
	p, err := Parse("  del69/70 N501Y\n\tE484K del144/144  d614g ")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if len(p.Substitutions) != 3 || len(p.Deletions) != 2 {
		t.Fatalf("got %d subs, %d dels", len(p.Substitutions), len(p.Deletions))
	}
	want := []string{"N501Y", "E484K", "D614G"}
	for i, op := range p.Substitutions {
		if op.Canonical() != want[i] {
			t.Fatalf("sub %d = %s, want %s", i, op.Canonical(), want[i])
		}
	}
	d := p.Deletions[0]
	if d.Start != 69 || d.End != 70 || d.Index != 0 || d.Span() != 2 {
		t.Fatalf("unexpected deletion %+v", d)
	}
	if p.Substitutions[2].Token != "d614g" {
		t.Fatalf("token text should be kept verbatim, got %q", p.Substitutions[2].Token)
	}
	if got := p.String(); got != "del69/70 N501Y E484K del144/144 D614G" {
		t.Fatalf("String() = %q", got)
	}
}

func TestParseEmpty(t *testing.T) {
	for _, in := range []string{"", "   ", "\n\t"} {
		p, err := Parse(in)
		if err != nil || !p.Empty() {
			t.Fatalf("Parse(%q) = %+v, %v", in, p, err)
		}
	}
}

func TestParseMalformed(t *testing.T) {
	cases := []struct {
		in    string
		token string
		index int
	}{
		{"N5", "N5", 0},
		{"N501Y NY", "NY", 1},
		{"N0Y", "N0Y", 0},
		{"N-5Y", "N-5Y", 0},
		{"N+5Y", "N+5Y", 0},
		{"N5.0Y", "N5.0Y", 0},
		{"B501Y", "B501Y", 0},
		{"N501*", "N501*", 0},
		{"1501Y", "1501Y", 0},
		{"del69", "del69", 0},
		{"del70/69", "del70/69", 0},
		{"del/70", "del/70", 0},
		{"del69/", "del69/", 0},
		{"del0/3", "del0/3", 0},
		{"del69-70", "del69-70", 0},
		{"del69/70/71", "del69/70/71", 0},
		{"A1B del1/2 Q9", "A1B", 0},
		{"N99999999999999999999Y", "N99999999999999999999Y", 0},
	}
	for _, tc := range cases {
		_, err := Parse(tc.in)
		if !errors.Is(err, ErrMalformedToken) {
			t.Fatalf("Parse(%q): expected ErrMalformedToken, got %v", tc.in, err)
		}
		var te *TokenError
		if !errors.As(err, &te) {
			t.Fatalf("Parse(%q): expected *TokenError, got %T", tc.in, err)
		}
		if te.Token != tc.token || te.Index != tc.index {
			t.Fatalf("Parse(%q): token=%q index=%d; want %q %d", tc.in, te.Token, te.Index, tc.token, tc.index)
		}
	}
}

func TestParseDeletionSingleResidue(t *testing.T) {
	p := MustParse("del144/144")
	if p.Deletions[0].Span() != 1 {
		t.Fatalf("span = %d", p.Deletions[0].Span())
	}
}

func TestOperationsKeepTokenOrder(t *testing.T) {
	p := MustParse("del3/4 A1C del6/6 G2W")
	ops := p.Operations()
	want := []Kind{KindDeletion, KindSubstitution, KindDeletion, KindSubstitution}
	if len(ops) != len(want) {
		t.Fatalf("got %d operations", len(ops))
	}
	for i, op := range ops {
		if op.Kind != want[i] || op.Index != i {
			t.Fatalf("op %d = %v (%v, index %d)", i, op, op.Kind, op.Index)
		}
	}
}
